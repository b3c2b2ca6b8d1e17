package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/GianlucaAlves/cinelog/internal/domain"
)

// movieRepository implements domain.MovieRepository using GORM.
type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new MovieRepository with the given GORM DB instance.
func NewMovieRepository(db *gorm.DB) domain.MovieRepository {
	return &movieRepository{db: db}
}

// GetByTMDBID retrieves the shadow record for an external catalog id.
func (r *movieRepository) GetByTMDBID(tmdbID int64) (*domain.Movie, error) {
	var movie domain.Movie
	if err := r.db.Where("tmdb_id = ?", tmdbID).First(&movie).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return &movie, nil
}

// FindOrCreate loads the record for movie.TMDBID into movie, creating it
// with movie's fields when absent. An existing record is returned unchanged;
// the caller's display fields are discarded. The read and the write share a
// transaction so concurrent first references cannot race into duplicates.
func (r *movieRepository) FindOrCreate(movie *domain.Movie) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// String condition: a struct condition would drop a zero tmdb_id
		// and match the first row in the table.
		return tx.Where("tmdb_id = ?", movie.TMDBID).
			Attrs(domain.Movie{
				Title:       movie.Title,
				Type:        movie.Type,
				ReleaseDate: movie.ReleaseDate,
				PosterPath:  movie.PosterPath,
			}).
			FirstOrCreate(movie).Error
	})
	if err != nil {
		return fmt.Errorf("failed to find or create movie: %w", err)
	}
	return nil
}
