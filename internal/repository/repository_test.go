package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/GianlucaAlves/cinelog/internal/domain"
)

// newTestDB opens an in-memory sqlite database migrated with the full
// schema. A single connection keeps every query on the same in-memory
// database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Movie{},
		&domain.Review{},
		&domain.WatchlistEntry{},
	))
	return db
}

// createTestUser inserts a user directly, bypassing the service layer.
func createTestUser(t *testing.T, db *gorm.DB, email, username string) *domain.User {
	t.Helper()
	user := &domain.User{Email: email, Username: username, Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createTestMovie inserts a shadow record directly.
func createTestMovie(t *testing.T, db *gorm.DB, tmdbID int64) *domain.Movie {
	t.Helper()
	movie := &domain.Movie{TMDBID: tmdbID, Title: "Unknown", Type: "movie"}
	require.NoError(t, db.Create(movie).Error)
	return movie
}
