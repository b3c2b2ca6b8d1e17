package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/GianlucaAlves/cinelog/internal/middleware"
	"github.com/GianlucaAlves/cinelog/internal/token"
)

// RegisterRoutes mounts the API under /api. Protected routes sit behind the
// bearer-token middleware; the refresh endpoint relies on its scoped cookie
// instead.
func RegisterRoutes(r *gin.Engine, tokens token.Manager, auth *AuthHandler, movies *MovieHandler, catalog *CatalogHandler) {
	requireAuth := middleware.RequireAuth(tokens)

	api := r.Group("/api")

	a := api.Group("/auth")
	a.POST("/register", auth.Register)
	a.POST("/login", auth.Login)
	a.POST("/logout", auth.Logout)
	a.GET("/me", requireAuth, auth.Me)
	a.GET("/refresh", auth.Refresh)

	m := api.Group("/movies")
	m.GET("/:tmdbId", movies.Detail)
	m.GET("/:tmdbId/reviews", movies.ListReviews)
	m.POST("/:tmdbId/reviews", requireAuth, movies.CreateReview)
	m.GET("/:tmdbId/watchlist", requireAuth, movies.WatchlistStatus)
	m.POST("/:tmdbId/watchlist", requireAuth, movies.AddToWatchlist)
	m.DELETE("/:tmdbId/watchlist", requireAuth, movies.RemoveFromWatchlist)

	t := api.Group("/tmdb")
	t.GET("/movies/popular", catalog.PopularMovies)
	t.GET("/series/popular", catalog.PopularSeries)

	api.GET("/shelves", catalog.GetShelves)
}
