package store

import (
	"testing"

	"github.com/inkwell-dev/inkwell/internal/auth"
	"github.com/inkwell-dev/inkwell/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database and migrates the schema.
// The pool is pinned to a single connection so every query sees the same
// in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to in-memory SQLite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	err = db.AutoMigrate(&models.User{}, &models.Post{}, &models.Vote{})
	require.NoError(t, err, "Failed to migrate database schema")

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
	}

	require.NoError(t, db.Create(user).Error, "Failed to create test user")

	return user
}

func createTestPost(t *testing.T, db *gorm.DB, ownerID uint, title string) *models.Post {
	t.Helper()

	post := &models.Post{
		Title:     title,
		Content:   "test content",
		Published: true,
		OwnerID:   ownerID,
	}

	require.NoError(t, db.Create(post).Error, "Failed to create test post")

	return post
}
