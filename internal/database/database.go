package database

import (
	"fmt"
	"time"

	"github.com/vflopes/fake-ecommerce-api/internal/config"
	"github.com/vflopes/fake-ecommerce-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the connection pool and verifies it with a ping. The
// returned *gorm.DB is meant to be injected into the handlers; there is no
// package-level instance.
func Connect(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for every entity. Referential
// actions (cascade, set-null) live in the foreign key constraints.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Cliente{},
		&models.Endereco{},
		&models.Fornecedor{},
		&models.Categoria{},
		&models.Produto{},
		&models.Venda{},
		&models.ItemVenda{},
	)
}
