package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GianlucaAlves/cinelog/internal/adapter"
	"github.com/GianlucaAlves/cinelog/internal/config"
	"github.com/GianlucaAlves/cinelog/internal/domain"
	"github.com/GianlucaAlves/cinelog/internal/handler"
	"github.com/GianlucaAlves/cinelog/internal/repository"
	"github.com/GianlucaAlves/cinelog/internal/service"
	"github.com/GianlucaAlves/cinelog/internal/token"
)

func main() {

	conf := config.Load()

	db, err := gorm.Open(postgres.Open(conf.PostgresDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Movie{},
		&domain.Review{},
		&domain.WatchlistEntry{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	tokens := token.NewManager(token.Config{
		AccessSecret:  conf.JWTAccessSecret,
		RefreshSecret: conf.JWTRefreshSecret,
		AccessTTL:     conf.AccessTokenTTL,
		RefreshTTL:    conf.RefreshTokenTTL,
	})

	users := repository.NewUserRepository(db)
	movies := repository.NewMovieRepository(db)
	reviews := repository.NewReviewRepository(db)
	watchlist := repository.NewWatchlistRepository(db)

	tmdb := adapter.NewTMDBAdapter(conf.TMDBBaseURL, conf.TMDBAPIKey)

	authSvc := service.NewAuthService(users, tokens)
	catalogSvc := service.NewCatalogService(movies)
	reviewSvc := service.NewReviewService(catalogSvc, movies, reviews)
	watchlistSvc := service.NewWatchlistService(catalogSvc, movies, watchlist)
	shelfSvc := service.NewShelfService(tmdb)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{conf.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	handler.RegisterRoutes(r, tokens,
		handler.NewAuthHandler(authSvc, conf),
		handler.NewMovieHandler(tmdb, reviewSvc, watchlistSvc),
		handler.NewCatalogHandler(tmdb, shelfSvc),
	)

	if err := r.Run(":" + conf.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
