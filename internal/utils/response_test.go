package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, http.StatusCreated, gin.H{"sessionId": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"sessionId":"abc"}}`, w.Body.String())
}

func TestErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, http.StatusNotFound, "Session not found or expired")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Session not found or expired", body["error"])
	assert.NotContains(t, body, "data")
}

func TestValidationMessage(t *testing.T) {
	type payload struct {
		SessionID string `validate:"required,uuid"`
		Action    string `validate:"required,oneof=like skip"`
	}
	err := validator.New().Struct(payload{SessionID: "nope", Action: "love"})

	assert.Equal(t, "sessionID must be a valid UUID; action must be one of: like skip", ValidationMessage(err))
	assert.Equal(t, "Invalid request data", ValidationMessage(errors.New("unexpected EOF")))
}
