package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"kitchenswipe/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectDatabase(cfg *config.Config) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Millisecond * 500, // Log queries slower than 500ms
			Colorful:                  true,
			IgnoreRecordNotFoundError: true, // Undo on an empty history is a normal miss
		},
	)

	gormConfig := &gorm.Config{
		Logger:                                   newLogger,
		PrepareStmt:                              true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.SQLitePath)
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s application_name=kitchenswipe",
			cfg.Database.Host, cfg.Database.User, cfg.Database.Password,
			cfg.Database.Name, cfg.Database.Port, cfg.Database.SSLMode,
		)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	if cfg.Database.Driver == "postgres" {
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
		sqlDB.SetConnMaxIdleTime(15 * time.Minute)
	} else {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Connected to %s database successfully", cfg.Database.Driver)

	return db, nil
}

func MonitorDBConnections(db *gorm.DB, stop <-chan struct{}) {
	ticker := time.NewTicker(30 * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				stats := sqlDB.Stats()
				if stats.InUse > 40 {
					log.Printf("DB Connection Pool: InUse=%d, Idle=%d, Open=%d",
						stats.InUse, stats.Idle, stats.OpenConnections)
				}
			}
		}
	}()
}
