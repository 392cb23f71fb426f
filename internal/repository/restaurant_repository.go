package repository

import (
	"cortado/internal/models"

	"gorm.io/gorm"
)

// RestaurantRepository defines the interface for restaurant data operations.
type RestaurantRepository interface {
	Create(restaurant *models.Restaurant) error
	FindByPlaceID(placeID string) (*models.Restaurant, error)
	FindByID(id string) (*models.Restaurant, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(restaurant *models.Restaurant) error {
	return r.db.Create(restaurant).Error
}

// FindByPlaceID looks a restaurant up by its google place id. Callers must
// not pass an empty id; absence of a place id means a lookup can never
// match and a new row is always created.
func (r *restaurantRepository) FindByPlaceID(placeID string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.Where("google_place_id = ?", placeID).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) FindByID(id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.First(&restaurant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}
