package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/dreamhome/realestate-api/docs"
	"github.com/dreamhome/realestate-api/internal/api/handler"
	"github.com/dreamhome/realestate-api/internal/api/middleware"
	"github.com/dreamhome/realestate-api/internal/core/domain"
	"github.com/dreamhome/realestate-api/internal/core/service"
	"github.com/dreamhome/realestate-api/internal/infrastructure/config"
	mongodb "github.com/dreamhome/realestate-api/internal/infrastructure/db/mongo"
	redisdb "github.com/dreamhome/realestate-api/internal/infrastructure/db/redis"
	"github.com/dreamhome/realestate-api/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Each protected route declares its guards in order; the first failing guard
// short-circuits the request.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("dreamhome"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	wishlistRepo := mongodb.NewWishlistRepository(db)
	offerRepo := mongodb.NewOfferRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	// --- Audit trail dispatcher ---
	activityService := service.NewActivityService(activityRepo, log)
	dispatcher := queue.NewDispatcher(0, activityService, log)
	dispatcher.Start(ctx)

	// --- Services ---
	tokenService := service.NewTokenService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.RequirePassword)
	userService := service.NewUserService(userRepo, dispatcher, log)
	propertyService := service.NewPropertyService(propertyRepo, dispatcher, log)
	reviewService := service.NewReviewService(reviewRepo, log)
	wishlistService := service.NewWishlistService(wishlistRepo, log)
	offerService := service.NewOfferService(offerRepo, dispatcher, log)

	// --- Handlers ---
	limiter := redisdb.NewRateLimiter(rdb, cfg.Auth.TokenRateLimit, cfg.Auth.TokenRateWindow)
	tokenHandler := handler.NewTokenHandler(tokenService, limiter)
	userHandler := handler.NewUserHandler(userService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	wishlistHandler := handler.NewWishlistHandler(wishlistService)
	offerHandler := handler.NewOfferHandler(offerService)
	activityHandler := handler.NewActivityHandler(activityService)

	// --- Guards ---
	auth := middleware.Auth(tokenService)
	adminOnly := middleware.RequireRole(userRepo, domain.RoleAdmin)
	agentOnly := middleware.RequireRole(userRepo, domain.RoleAgent)

	// --- Auth ---
	e.POST("/auth/token", tokenHandler.Issue)

	// --- Users ---
	e.POST("/users", userHandler.Register)
	e.GET("/users", userHandler.List, auth)
	e.GET("/users/role/:email", userHandler.Role, auth, middleware.RequireSelf("email"))
	e.PATCH("/users/role/:id", userHandler.UpdateRole, auth, adminOnly)
	e.DELETE("/users/:id", userHandler.Delete, auth, adminOnly)

	// --- Properties ---
	e.GET("/properties", propertyHandler.List, auth)
	e.GET("/properties/:id", propertyHandler.Get, auth)
	e.POST("/properties", propertyHandler.Create, auth, agentOnly)
	e.PATCH("/properties/:id", propertyHandler.Update, auth, agentOnly)
	e.DELETE("/properties/:id", propertyHandler.Delete, auth, agentOnly)

	// --- Reviews ---
	e.POST("/reviews", reviewHandler.Create, auth)
	e.GET("/reviews", reviewHandler.List, auth)
	e.DELETE("/reviews/:id", reviewHandler.Delete, auth)

	// --- Wishlists ---
	e.POST("/wishLists", wishlistHandler.Create, auth)
	e.GET("/wishLists", wishlistHandler.List, auth)
	e.DELETE("/wishLists/:id", wishlistHandler.Delete, auth)

	// --- Offers ---
	e.POST("/makeOffers", offerHandler.Create, auth)
	e.GET("/makeOffers", offerHandler.List, auth)
	e.PATCH("/makeOffers/:id/status", offerHandler.UpdateStatus, auth, agentOnly)
	e.DELETE("/makeOffers/:id", offerHandler.Delete, auth)

	// --- Audit trail ---
	e.GET("/activities", activityHandler.List, auth, adminOnly)

	// --- Observability and docs (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
