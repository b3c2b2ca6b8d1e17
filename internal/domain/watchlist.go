package domain

import "time"

type WatchlistEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_watchlist_user_movie"`
	MovieID   uint      `json:"movie_id" gorm:"uniqueIndex:idx_watchlist_user_movie"`
	CreatedAt time.Time `json:"created_at"`
}

type WatchlistRepository interface {
	Exists(userID, movieID uint) (bool, error)
	// Add creates an entry for (userID, movieID) and fails with
	// ErrAlreadyInWatchlist when one exists. Runs in a single transaction.
	Add(entry *WatchlistEntry) error
	// RemoveAll deletes any entries for the pair; deleting zero rows is
	// still success, so repeated removes are idempotent.
	RemoveAll(userID, movieID uint) error
}

type WatchlistService interface {
	Status(userID uint, tmdbID int64) (bool, error)
	Add(userID uint, tmdbID int64, hints MovieHints) (*WatchlistEntry, error)
	Remove(userID uint, tmdbID int64) error
}
