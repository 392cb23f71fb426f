package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cortado/internal/cache"
	"cortado/internal/dto"
	"cortado/internal/models"
	"cortado/internal/repository"
)

// ErrInvalidInput marks submissions rejected before any write happens.
var ErrInvalidInput = errors.New("invalid input")

// RatingService records new ratings. The whole submission runs as one
// transaction with a single commit: either the restaurant, user and rating
// rows all land, or none of them do.
type RatingService interface {
	NewRating(ctx context.Context, restaurant dto.RestaurantInput, user dto.UserInput, rating dto.RatingInput) (*models.Rating, error)
}

type ratingService struct {
	db    *gorm.DB
	cache *cache.RatingsCache
}

// NewRatingService creates a RatingService on the shared pool. cache may be
// nil when dashboard caching is disabled.
func NewRatingService(db *gorm.DB, ratingsCache *cache.RatingsCache) RatingService {
	return &ratingService{db: db, cache: ratingsCache}
}

// NewRating resolves or creates the restaurant (by google place id) and the
// user (by name), then inserts the rating referencing both. Any failure
// rolls the whole session back and the error is returned unchanged; there
// are no retries. The persisted rating, including its generated id, is
// returned.
func (s *ratingService) NewRating(ctx context.Context, restaurantIn dto.RestaurantInput, userIn dto.UserInput, ratingIn dto.RatingInput) (*models.Rating, error) {
	if err := validateSubmission(restaurantIn, userIn, ratingIn); err != nil {
		return nil, err
	}

	var recorded *models.Rating
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurant, err := getOrCreateRestaurant(tx, restaurantIn)
		if err != nil {
			return err
		}

		user, err := getOrCreateUser(tx, userIn)
		if err != nil {
			return err
		}

		rating := ratingIn.ToModel()
		rating.RestaurantID = restaurant.ID
		rating.UserID = user.ID
		if err := repository.NewRatingRepository(tx).Create(rating); err != nil {
			return err
		}

		recorded = rating
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return recorded, nil
}

// getOrCreateRestaurant looks the restaurant up by google place id and
// creates it when missing. A nil place id can never match, so it always
// creates a new row. The insert runs under a savepoint: a unique violation
// from a concurrent submission doesn't poison the enclosing transaction and
// converts into re-fetch-and-reuse.
func getOrCreateRestaurant(tx *gorm.DB, in dto.RestaurantInput) (*models.Restaurant, error) {
	repo := repository.NewRestaurantRepository(tx)

	if in.GooglePlaceID != nil {
		existing, err := repo.FindByPlaceID(*in.GooglePlaceID)
		if err == nil {
			// first write's attributes win
			return existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	restaurant := in.ToModel()
	err := tx.Transaction(func(tx *gorm.DB) error {
		return repository.NewRestaurantRepository(tx).Create(restaurant)
	})
	if err != nil {
		if repository.IsDuplicateKey(err) && in.GooglePlaceID != nil {
			return repo.FindByPlaceID(*in.GooglePlaceID)
		}
		return nil, err
	}
	return restaurant, nil
}

// getOrCreateUser is the same get-or-create over the user's name. A
// duplicate key that is not the name (a reused unique email) is not a race
// to convert and propagates as the constraint violation it is.
func getOrCreateUser(tx *gorm.DB, in dto.UserInput) (*models.User, error) {
	repo := repository.NewUserRepository(tx)

	existing, err := repo.FindByName(in.Name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := in.ToModel()
	createErr := tx.Transaction(func(tx *gorm.DB) error {
		return repository.NewUserRepository(tx).Create(user)
	})
	if createErr != nil {
		if repository.IsDuplicateKey(createErr) {
			if refetched, err := repo.FindByName(in.Name); err == nil {
				return refetched, nil
			}
		}
		return nil, createErr
	}
	return user, nil
}

// validateSubmission rejects inputs the storage schema cannot catch on its
// own (Go zero values satisfy NOT NULL for strings). Stars range is also
// enforced by a check constraint; this keeps the contract identical for
// callers that bypass HTTP binding.
func validateSubmission(restaurant dto.RestaurantInput, user dto.UserInput, rating dto.RatingInput) error {
	if restaurant.Name == "" {
		return fmt.Errorf("%w: restaurant name is required", ErrInvalidInput)
	}
	if user.Name == "" {
		return fmt.Errorf("%w: user name is required", ErrInvalidInput)
	}
	if rating.Stars < 1 || rating.Stars > 5 {
		return fmt.Errorf("%w: stars must be between 1 and 5", ErrInvalidInput)
	}
	if rating.PriceZAR == nil {
		return fmt.Errorf("%w: price_zar is required", ErrInvalidInput)
	}
	return nil
}
