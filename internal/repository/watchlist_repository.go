package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/GianlucaAlves/cinelog/internal/domain"
)

// watchlistRepository implements domain.WatchlistRepository using GORM.
type watchlistRepository struct {
	db *gorm.DB
}

// NewWatchlistRepository creates a new WatchlistRepository with the given GORM DB instance.
func NewWatchlistRepository(db *gorm.DB) domain.WatchlistRepository {
	return &watchlistRepository{db: db}
}

// Exists reports whether an entry exists for the (user, movie) pair.
func (r *watchlistRepository) Exists(userID, movieID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.WatchlistEntry{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check watchlist: %w", err)
	}
	return count > 0, nil
}

// Add creates the entry unless one already exists for the pair. The check
// and the insert share a transaction so duplicate adds cannot race into two
// rows.
func (r *watchlistRepository) Add(entry *domain.WatchlistEntry) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing domain.WatchlistEntry
		err := tx.Where("user_id = ? AND movie_id = ?", entry.UserID, entry.MovieID).
			First(&existing).Error
		if err == nil {
			return domain.ErrAlreadyInWatchlist
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(entry).Error
	})
	if errors.Is(err, domain.ErrAlreadyInWatchlist) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to add watchlist entry: %w", err)
	}
	return nil
}

// RemoveAll deletes any entries for the pair. Zero rows affected is still
// success, which keeps repeated removes idempotent.
func (r *watchlistRepository) RemoveAll(userID, movieID uint) error {
	err := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&domain.WatchlistEntry{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove watchlist entry: %w", err)
	}
	return nil
}
