package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cortado/internal/dto"
	"cortado/internal/repository"
	"cortado/internal/service"
)

// RatingHandler exposes the submission endpoint. It is the boundary the
// submission UI talks to: it assembles the three input shapes (from manual
// fields or a location-picker result) and surfaces the recorded rating or
// the propagated failure.
type RatingHandler struct {
	ratingService service.RatingService
	logger        *slog.Logger
}

func NewRatingHandler(ratingService service.RatingService, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
		logger:        logger,
	}
}

// RegisterRoutes registers submission routes.
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/ratings", h.Submit)
}

// Submit records a new rating.
// POST /api/ratings
func (h *RatingHandler) Submit(c *gin.Context) {
	var req dto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := resolveRestaurantInput(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.NewRating(c.Request.Context(), restaurant, req.User, req.Rating)
	if err != nil {
		h.logger.Error("rating submission failed", "error", err, "request_id", c.GetString("requestID"))
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case repository.IsDuplicateKey(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToRatingResponse(rating))
}

// resolveRestaurantInput picks the explicit restaurant when present,
// otherwise derives one from the raw location-picker result.
func resolveRestaurantInput(req *dto.SubmitRatingRequest) (dto.RestaurantInput, error) {
	if req.Restaurant != nil {
		return *req.Restaurant, nil
	}
	if req.Place != nil {
		in := req.Place.ToRestaurantInput()
		if in.Name == "" {
			return dto.RestaurantInput{}, errors.New("location result carries no place name")
		}
		return in, nil
	}
	return dto.RestaurantInput{}, errors.New("either restaurant or place is required")
}
