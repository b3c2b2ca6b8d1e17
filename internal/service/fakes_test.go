package service

import (
	"github.com/GianlucaAlves/cinelog/internal/domain"
)

// fakeMovieRepo is an in-memory domain.MovieRepository.
type fakeMovieRepo struct {
	movies map[int64]*domain.Movie
	nextID uint
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: map[int64]*domain.Movie{}, nextID: 1}
}

func (r *fakeMovieRepo) GetByTMDBID(tmdbID int64) (*domain.Movie, error) {
	if m, ok := r.movies[tmdbID]; ok {
		copied := *m
		return &copied, nil
	}
	return nil, domain.ErrMovieNotFound
}

func (r *fakeMovieRepo) FindOrCreate(movie *domain.Movie) error {
	if existing, ok := r.movies[movie.TMDBID]; ok {
		*movie = *existing
		return nil
	}
	movie.ID = r.nextID
	r.nextID++
	stored := *movie
	r.movies[movie.TMDBID] = &stored
	return nil
}

// fakeReviewRepo is an in-memory domain.ReviewRepository keyed by
// (user, movie).
type fakeReviewRepo struct {
	reviews map[[2]uint]*domain.Review
	nextID  uint
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[[2]uint]*domain.Review{}, nextID: 1}
}

func (r *fakeReviewRepo) Upsert(review *domain.Review) error {
	key := [2]uint{review.UserID, review.MovieID}
	if existing, ok := r.reviews[key]; ok {
		existing.Rating = review.Rating
		existing.Text = review.Text
		*review = *existing
		return nil
	}
	review.ID = r.nextID
	r.nextID++
	stored := *review
	r.reviews[key] = &stored
	return nil
}

func (r *fakeReviewRepo) GetWithAuthor(id uint) (*domain.Review, error) {
	for _, rev := range r.reviews {
		if rev.ID == id {
			copied := *rev
			copied.AuthorName = "author"
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeReviewRepo) ListByMovie(movieID uint) ([]*domain.Review, error) {
	out := []*domain.Review{}
	for _, rev := range r.reviews {
		if rev.MovieID == movieID {
			copied := *rev
			out = append(out, &copied)
		}
	}
	return out, nil
}

// fakeWatchlistRepo is an in-memory domain.WatchlistRepository.
type fakeWatchlistRepo struct {
	entries map[[2]uint]*domain.WatchlistEntry
	nextID  uint
}

func newFakeWatchlistRepo() *fakeWatchlistRepo {
	return &fakeWatchlistRepo{entries: map[[2]uint]*domain.WatchlistEntry{}, nextID: 1}
}

func (r *fakeWatchlistRepo) Exists(userID, movieID uint) (bool, error) {
	_, ok := r.entries[[2]uint{userID, movieID}]
	return ok, nil
}

func (r *fakeWatchlistRepo) Add(entry *domain.WatchlistEntry) error {
	key := [2]uint{entry.UserID, entry.MovieID}
	if _, ok := r.entries[key]; ok {
		return domain.ErrAlreadyInWatchlist
	}
	entry.ID = r.nextID
	r.nextID++
	stored := *entry
	r.entries[key] = &stored
	return nil
}

func (r *fakeWatchlistRepo) RemoveAll(userID, movieID uint) error {
	delete(r.entries, [2]uint{userID, movieID})
	return nil
}
