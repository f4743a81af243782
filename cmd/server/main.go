package main

import (
	"log"
	"net/http"
	"os"

	"devconnect/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"devconnect/internal/auth"
	"devconnect/internal/cache"
	"devconnect/internal/config"
	"devconnect/internal/db"
	"devconnect/internal/github"
	"devconnect/internal/handler"
	"devconnect/internal/model"
	"devconnect/internal/repository"
	"devconnect/internal/router"
	"devconnect/internal/service"
)

// @title DevConnect API
// @version 1.0
// @description Developer social network: profiles, experience/education, posts, likes and comments.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-auth-token
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Comment{},
			&model.Like{},
			&model.Post{},
			&model.Education{},
			&model.Experience{},
			&model.Profile{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Experience{},
		&model.Education{},
		&model.Post{},
		&model.Like{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)

	// Initialize collaborators
	tokenCodec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	githubClient := github.NewClient(cfg.GithubAPIURL, cfg.GithubToken, cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenCodec)
	profileService := service.NewProfileService(profileRepo, userRepo, postRepo, cacheClient, githubClient)
	postService := service.NewPostService(postRepo, userRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	postHandler := handler.NewPostHandler(postService)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	// Register routes
	router.Register(e, cfg, authHandler, profileHandler, postHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
