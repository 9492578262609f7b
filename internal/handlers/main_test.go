package handlers

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/vflopes/fake-ecommerce-api/internal/database"
	"github.com/vflopes/fake-ecommerce-api/internal/validation"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.RegisterCustomValidators()
	os.Exit(m.Run())
}

func strPtr(s string) *string { return &s }

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect to test database")
	}

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		panic("failed to get test database instance")
	}
	sqlDB.SetMaxOpenConns(1)

	// sqlite does not enforce foreign keys unless told to; the cascade and
	// set-null behavior under test depends on them
	db.Exec("PRAGMA foreign_keys = ON")

	if err := database.Migrate(db); err != nil {
		panic("failed to migrate test database")
	}
	return db
}
