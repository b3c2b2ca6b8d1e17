package service

import (
	"errors"

	"github.com/GianlucaAlves/cinelog/internal/domain"
)

// watchlistService enforces idempotent membership: at most one entry per
// (user, movie), safe removal when nothing is there.
type watchlistService struct {
	catalog domain.CatalogService
	movies  domain.MovieRepository
	entries domain.WatchlistRepository
}

// NewWatchlistService creates a new WatchlistService.
func NewWatchlistService(catalog domain.CatalogService, movies domain.MovieRepository, entries domain.WatchlistRepository) domain.WatchlistService {
	return &watchlistService{catalog: catalog, movies: movies, entries: entries}
}

// Status reports whether the user's watchlist holds the title. An unknown
// title is simply "not in the watchlist".
func (s *watchlistService) Status(userID uint, tmdbID int64) (bool, error) {
	movie, err := s.movies.GetByTMDBID(tmdbID)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.entries.Exists(userID, movie.ID)
}

// Add puts the title on the user's watchlist, creating the shadow record if
// needed. A second add for the same pair fails with ErrAlreadyInWatchlist.
func (s *watchlistService) Add(userID uint, tmdbID int64, hints domain.MovieHints) (*domain.WatchlistEntry, error) {
	movie, err := s.catalog.ResolveOrCreate(tmdbID, hints)
	if err != nil {
		return nil, err
	}
	entry := &domain.WatchlistEntry{UserID: userID, MovieID: movie.ID}
	if err := s.entries.Add(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Remove takes the title off the user's watchlist. A title that was never
// referenced is ErrMovieNotFound; removing an absent entry from a known
// title succeeds, so repeated removes are idempotent.
func (s *watchlistService) Remove(userID uint, tmdbID int64) error {
	movie, err := s.movies.GetByTMDBID(tmdbID)
	if err != nil {
		return err
	}
	return s.entries.RemoveAll(userID, movie.ID)
}
