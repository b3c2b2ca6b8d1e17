package service

import (
	"github.com/GianlucaAlves/cinelog/internal/adapter"
	"github.com/GianlucaAlves/cinelog/internal/domain"
)

// shelfService composes the curated home-page shelves from the catalog's
// popular lists.
type shelfService struct {
	tmdb adapter.TMDBAdapter
}

// NewShelfService creates a new ShelfService.
func NewShelfService(tmdb adapter.TMDBAdapter) domain.ShelfService {
	return &shelfService{tmdb: tmdb}
}

// GetShelves returns the popular-movies and popular-series shelves. A
// catalog failure surfaces as-is; there is no partial result.
func (s *shelfService) GetShelves() ([]domain.Shelf, error) {
	movies, err := s.tmdb.GetPopularMovies(1)
	if err != nil {
		return nil, err
	}
	series, err := s.tmdb.GetPopularSeries(1)
	if err != nil {
		return nil, err
	}
	return []domain.Shelf{
		{ID: "popular-movies", Title: "Popular Movies", Movies: shelfItems(movies, "movie")},
		{ID: "popular-series", Title: "Popular Series", Movies: shelfItems(series, "tv")},
	}, nil
}

// shelfItems trims a TMDB list response down to shelf items. Movies carry
// "title", series carry "name".
func shelfItems(data map[string]interface{}, mediaType string) []domain.ShelfItem {
	items := []domain.ShelfItem{}
	results, ok := data["results"].([]interface{})
	if !ok {
		return items
	}
	for _, r := range results {
		entry, ok := r.(map[string]interface{})
		if !ok {
			continue
		}
		item := domain.ShelfItem{MediaType: mediaType}
		if id, ok := entry["id"].(float64); ok {
			item.ID = int64(id)
		}
		if title, ok := entry["title"].(string); ok {
			item.Title = title
		} else if name, ok := entry["name"].(string); ok {
			item.Title = name
		}
		if poster, ok := entry["poster_path"].(string); ok {
			item.PosterPath = poster
		}
		items = append(items, item)
	}
	return items
}
