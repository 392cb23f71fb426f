package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cortado/internal/cache"
	"cortado/internal/config"
	"cortado/internal/handler"
	"cortado/internal/middleware"
	"cortado/internal/repository"
	"cortado/internal/service"
)

// Setup wires repositories, services, handlers and middleware onto one gin
// engine. Everything hangs off the explicit db handle passed in; there is
// no package-level state.
func Setup(cfg *config.Config, db *gorm.DB, ratingsCache *cache.RatingsCache, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	ratingRepo := repository.NewRatingRepository(db)

	ratingService := service.NewRatingService(db, ratingsCache)
	dashboardService := service.NewDashboardService(ratingRepo, ratingsCache)

	handler.NewHealthHandler(db).RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).RateLimit())
	{
		handler.NewRatingHandler(ratingService, logger).RegisterRoutes(api)
		handler.NewDashboardHandler(dashboardService, logger).RegisterRoutes(api)
	}

	return r
}
