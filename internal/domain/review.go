package domain

import "time"

type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"uniqueIndex:idx_reviews_user_movie"`
	MovieID    uint      `json:"movie_id" gorm:"uniqueIndex:idx_reviews_user_movie"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name,omitempty" gorm:"->;-:migration"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type SubmitReviewRequest struct {
	Rating int    `json:"rating" binding:"required"`
	Text   string `json:"text" binding:"required"`
	MovieHints
}

type ReviewRepository interface {
	// Upsert enforces one review per (user, movie): an existing review gets
	// its rating and text overwritten in place (creation timestamp kept),
	// otherwise a new row is created. Runs in a single transaction.
	Upsert(review *Review) error
	// GetWithAuthor returns the review joined with the author's username.
	GetWithAuthor(id uint) (*Review, error)
	// ListByMovie returns all reviews for a movie joined with the author's
	// username, newest first.
	ListByMovie(movieID uint) ([]*Review, error)
}

type ReviewService interface {
	Submit(userID uint, tmdbID int64, req SubmitReviewRequest) (*Review, error)
	List(tmdbID int64) ([]*Review, error)
}
