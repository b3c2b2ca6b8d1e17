package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GianlucaAlves/cinelog/internal/adapter"
	"github.com/GianlucaAlves/cinelog/internal/domain"
	"github.com/GianlucaAlves/cinelog/internal/middleware"
)

// MovieHandler handles title detail, review and watchlist HTTP requests.
type MovieHandler struct {
	TMDB      adapter.TMDBAdapter
	Reviews   domain.ReviewService
	Watchlist domain.WatchlistService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(tmdb adapter.TMDBAdapter, reviews domain.ReviewService, watchlist domain.WatchlistService) *MovieHandler {
	return &MovieHandler{TMDB: tmdb, Reviews: reviews, Watchlist: watchlist}
}

// Detail handles GET /api/movies/:tmdbId?type=movie|tv, a pass-through to
// the catalog.
func (h *MovieHandler) Detail(c *gin.Context) {
	tmdbID, ok := tmdbIDParam(c)
	if !ok {
		return
	}
	data, err := h.TMDB.GetDetail(tmdbID, c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// ListReviews handles GET /api/movies/:tmdbId/reviews. Public; a title that
// was never referenced yields an empty list.
func (h *MovieHandler) ListReviews(c *gin.Context) {
	tmdbID, ok := tmdbIDParam(c)
	if !ok {
		return
	}
	reviews, err := h.Reviews.List(tmdbID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview handles POST /api/movies/:tmdbId/reviews behind the auth
// middleware. Resubmission overwrites the user's existing review.
func (h *MovieHandler) CreateReview(c *gin.Context) {
	tmdbID, ok := tmdbIDParam(c)
	if !ok {
		return
	}
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token is required"})
		return
	}
	var req domain.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating and text are required"})
		return
	}
	review, err := h.Reviews.Submit(userID, tmdbID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// WatchlistStatus handles GET /api/movies/:tmdbId/watchlist.
func (h *MovieHandler) WatchlistStatus(c *gin.Context) {
	tmdbID, ok := tmdbIDParam(c)
	if !ok {
		return
	}
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token is required"})
		return
	}
	inWatchlist, err := h.Watchlist.Status(userID, tmdbID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inWatchlist": inWatchlist})
}

// AddToWatchlist handles POST /api/movies/:tmdbId/watchlist. The body is
// optional display hints for a first reference; a duplicate add is 409.
func (h *MovieHandler) AddToWatchlist(c *gin.Context) {
	tmdbID, ok := tmdbIDParam(c)
	if !ok {
		return
	}
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token is required"})
		return
	}
	// All hint fields are optional and a missing body is fine, but a body
	// that is present and malformed is rejected.
	var hints domain.MovieHints
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&hints); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}
	entry, err := h.Watchlist.Add(userID, tmdbID, hints)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// RemoveFromWatchlist handles DELETE /api/movies/:tmdbId/watchlist.
// Removing an absent entry from a known title still succeeds.
func (h *MovieHandler) RemoveFromWatchlist(c *gin.Context) {
	tmdbID, ok := tmdbIDParam(c)
	if !ok {
		return
	}
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token is required"})
		return
	}
	if err := h.Watchlist.Remove(userID, tmdbID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func tmdbIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("tmdbId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tmdb id"})
		return 0, false
	}
	return id, true
}
