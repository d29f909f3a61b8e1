package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/reuben-idan/alx-listing-app-04/internal/config"
	"github.com/reuben-idan/alx-listing-app-04/internal/handler"
	"github.com/reuben-idan/alx-listing-app-04/internal/middleware"
	appmongo "github.com/reuben-idan/alx-listing-app-04/internal/mongo"
	"github.com/reuben-idan/alx-listing-app-04/internal/repository"
	"github.com/reuben-idan/alx-listing-app-04/internal/service"
	"github.com/reuben-idan/alx-listing-app-04/internal/web"
)

func main() {
	cfg := config.Load()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	propertyRepo := repository.NewPropertyRepository(db)
	if err := propertyRepo.EnsureSchema(ctx); err != nil {
		log.Fatalf("properties schema error: %v", err)
	}

	client := appmongo.NewMongoClient(cfg.MongoURI)
	if err := appmongo.EnsureReviewSchema(ctx, client.Database(cfg.MongoDB)); err != nil {
		log.Fatalf("reviews schema error: %v", err)
	}

	reviewRepo := repository.NewReviewRepository(client, cfg.MongoDB)
	reviewSvc := service.NewReviewService(reviewRepo)

	r := gin.Default()
	r.Use(middleware.CORS())

	handler.NewReviewHandler(reviewSvc).RegisterRoutes(r)
	(&handler.PropertyHandler{Repo: propertyRepo}).RegisterRoutes(r)

	pages := web.NewPageHandler(propertyRepo, web.NewReviewsClient(cfg.APIBaseURL))
	pages.RegisterRoutes(r)

	log.Printf("Listing app running on :%s …", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
