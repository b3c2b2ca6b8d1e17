package domain

import "time"

// Movie is the local shadow of a TMDB entry. It is created lazily the first
// time a review or watchlist entry references the external id; later
// references keep the stored fields as-is, whatever hints they carry.
type Movie struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TMDBID      int64     `json:"tmdb_id" gorm:"column:tmdb_id;uniqueIndex"`
	Title       string    `json:"title"`
	Type        string    `json:"type"` // "movie" or "tv"
	ReleaseDate time.Time `json:"release_date"`
	PosterPath  string    `json:"poster_path"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MovieHints are the optional display fields a client may supply when it
// first references a title. Missing fields fall back to defaults.
type MovieHints struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	ReleaseDate string `json:"releaseDate"`
	PosterPath  string `json:"posterPath"`
}

type MovieRepository interface {
	// GetByTMDBID returns ErrMovieNotFound when no shadow record exists.
	GetByTMDBID(tmdbID int64) (*Movie, error)
	// FindOrCreate returns the existing record for movie.TMDBID or creates
	// one; the read and the write run in a single transaction.
	FindOrCreate(movie *Movie) error
}

// CatalogService resolves an external catalog id to a local shadow record.
type CatalogService interface {
	ResolveOrCreate(tmdbID int64, hints MovieHints) (*Movie, error)
}
