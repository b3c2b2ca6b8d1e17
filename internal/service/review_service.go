package service

import (
	"errors"
	"fmt"

	"github.com/GianlucaAlves/cinelog/internal/domain"
)

// reviewService enforces one review per (user, movie). It is the sole
// enforcement point of that invariant; writes that bypass it are not
// supported.
type reviewService struct {
	catalog domain.CatalogService
	movies  domain.MovieRepository
	reviews domain.ReviewRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(catalog domain.CatalogService, movies domain.MovieRepository, reviews domain.ReviewRepository) domain.ReviewService {
	return &reviewService{catalog: catalog, movies: movies, reviews: reviews}
}

// Submit creates the user's review for a title or overwrites the existing
// one. The returned review carries the author's username.
func (s *reviewService) Submit(userID uint, tmdbID int64, req domain.SubmitReviewRequest) (*domain.Review, error) {
	if req.Rating == 0 || req.Text == "" {
		return nil, fmt.Errorf("%w: rating and text are required", domain.ErrValidation)
	}
	movie, err := s.catalog.ResolveOrCreate(tmdbID, req.MovieHints)
	if err != nil {
		return nil, err
	}
	review := &domain.Review{
		UserID:  userID,
		MovieID: movie.ID,
		Rating:  req.Rating,
		Text:    req.Text,
	}
	if err := s.reviews.Upsert(review); err != nil {
		return nil, err
	}
	return s.reviews.GetWithAuthor(review.ID)
}

// List returns all reviews for the title, newest first. A title that has
// never been referenced yields an empty list, not an error, and no shadow
// record is created.
func (s *reviewService) List(tmdbID int64) ([]*domain.Review, error) {
	movie, err := s.movies.GetByTMDBID(tmdbID)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return []*domain.Review{}, nil
		}
		return nil, err
	}
	return s.reviews.ListByMovie(movie.ID)
}
