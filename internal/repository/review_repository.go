package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/GianlucaAlves/cinelog/internal/domain"
)

// reviewRepository implements domain.ReviewRepository using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new ReviewRepository with the given GORM DB instance.
func NewReviewRepository(db *gorm.DB) domain.ReviewRepository {
	return &reviewRepository{db: db}
}

// Upsert creates the review or, when the (user, movie) pair already has one,
// overwrites its rating and text in place. The original creation timestamp
// is preserved on overwrite. The find and the write share a transaction so
// duplicate submissions cannot race past the one-review-per-pair invariant.
func (r *reviewRepository) Upsert(review *domain.Review) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing domain.Review
		err := tx.Where("user_id = ? AND movie_id = ?", review.UserID, review.MovieID).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(review).Error
			}
			return err
		}
		res := tx.Model(&existing).Updates(map[string]interface{}{
			"rating": review.Rating,
			"text":   review.Text,
		})
		if res.Error != nil {
			return res.Error
		}
		*review = existing
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to upsert review: %w", err)
	}
	return nil
}

// GetWithAuthor retrieves a review by id joined with the author's username.
func (r *reviewRepository) GetWithAuthor(id uint) (*domain.Review, error) {
	var review domain.Review
	err := r.db.Model(&domain.Review{}).
		Select("reviews.*, users.username AS author_name").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.id = ?", id).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review not found")
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &review, nil
}

// ListByMovie returns all reviews for a movie joined with the author's
// username, newest first.
func (r *reviewRepository) ListByMovie(movieID uint) ([]*domain.Review, error) {
	reviews := []*domain.Review{}
	err := r.db.Model(&domain.Review{}).
		Select("reviews.*, users.username AS author_name").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.movie_id = ?", movieID).
		Order("reviews.created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
