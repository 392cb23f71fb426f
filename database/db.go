package database

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cortado/internal/config"
	"cortado/internal/models"
)

// DSN builds the postgres connection string. The channel is always
// encrypted: sslmode and channel_binding are both pinned to require.
func DSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s sslmode=require channel_binding=require",
		cfg.PSQLHost, cfg.PSQLUsername, cfg.PSQLPassword, cfg.PSQLDatabase,
	)
}

// ConnectDB opens the shared connection pool and creates the schema.
// TranslateError turns driver duplicate-key errors into
// gorm.ErrDuplicatedKey so callers can detect get-or-create races
// portably.
func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Verify the connection
	if err := sqlDB.Ping(); err != nil {
		// close the pool if ping fails to avoid a resource leak
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Info("Connected to the database successfully", "host", cfg.PSQLHost, "database", cfg.PSQLDatabase)
	return db, nil
}

// Migrate creates the user, restaurant and rating tables. Idempotent, safe
// to invoke on every process start.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Rating{},
	)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
