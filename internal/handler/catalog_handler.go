package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GianlucaAlves/cinelog/internal/adapter"
	"github.com/GianlucaAlves/cinelog/internal/domain"
)

// CatalogHandler serves the read-only catalog endpoints: popular lists and
// the curated shelves.
type CatalogHandler struct {
	TMDB    adapter.TMDBAdapter
	Shelves domain.ShelfService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(tmdb adapter.TMDBAdapter, shelves domain.ShelfService) *CatalogHandler {
	return &CatalogHandler{TMDB: tmdb, Shelves: shelves}
}

// PopularMovies handles GET /api/tmdb/movies/popular.
func (h *CatalogHandler) PopularMovies(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	data, err := h.TMDB.GetPopularMovies(page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// PopularSeries handles GET /api/tmdb/series/popular.
func (h *CatalogHandler) PopularSeries(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	data, err := h.TMDB.GetPopularSeries(page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetShelves handles GET /api/shelves.
func (h *CatalogHandler) GetShelves(c *gin.Context) {
	shelves, err := h.Shelves.GetShelves()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shelves)
}
