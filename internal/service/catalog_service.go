package service

import (
	"time"

	"github.com/GianlucaAlves/cinelog/internal/domain"
)

// catalogService resolves external catalog ids to local shadow records.
type catalogService struct {
	movies domain.MovieRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(movies domain.MovieRepository) domain.CatalogService {
	return &catalogService{movies: movies}
}

// ResolveOrCreate returns the shadow record for tmdbID, creating it from the
// caller's hints when absent. Missing hints fall back to defaults. When the
// record exists the hints are discarded; stored display fields are never
// refreshed by later references.
func (s *catalogService) ResolveOrCreate(tmdbID int64, hints domain.MovieHints) (*domain.Movie, error) {
	movie := &domain.Movie{
		TMDBID:      tmdbID,
		Title:       hints.Title,
		Type:        hints.Type,
		ReleaseDate: parseReleaseDate(hints.ReleaseDate),
		PosterPath:  hints.PosterPath,
	}
	if movie.Title == "" {
		movie.Title = "Unknown"
	}
	if movie.Type == "" {
		movie.Type = "movie"
	}
	if err := s.movies.FindOrCreate(movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func parseReleaseDate(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}
