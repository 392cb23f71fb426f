package repository

import (
	"cortado/internal/dto"
	"cortado/internal/models"

	"gorm.io/gorm"
)

// RatingRepository defines the interface for rating data operations,
// including the read-only projections the dashboard consumes.
type RatingRepository interface {
	Create(rating *models.Rating) error
	FindByID(id string) (*models.Rating, error)
	ListRows() ([]dto.RatingRow, error)
	Stats() (*dto.StatsResponse, error)
	Leaderboard() ([]dto.LeaderboardEntry, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

func (r *ratingRepository) FindByID(id string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Preload("User").Preload("Restaurant").First(&rating, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListRows returns the joined projection, one row per rating with all
// display attributes, newest first. "user" is quoted because it is a
// reserved word in postgres.
func (r *ratingRepository) ListRows() ([]dto.RatingRow, error) {
	var rows []dto.RatingRow
	err := r.db.Table("rating").
		Select(`rating.id, rating.stars, rating.price_zar, rating.num_shots, rating.notes,
			rating.cookie, rating.take_away, rating.created_at,
			restaurant.name AS restaurant_name, restaurant.address,
			restaurant.latitude, restaurant.longitude, restaurant.restaurant_rating,
			"user".name AS user_name, "user".email`).
		Joins(`JOIN restaurant ON restaurant.id = rating.restaurant_id`).
		Joins(`JOIN "user" ON "user".id = rating.user_id`).
		Order("rating.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Stats computes the dashboard's aggregate statistics in one pass.
func (r *ratingRepository) Stats() (*dto.StatsResponse, error) {
	var stats dto.StatsResponse
	err := r.db.Table("rating").
		Select(`COUNT(*) AS total_ratings,
			COALESCE(AVG(stars), 0) AS average_rating,
			COALESCE(SUM(CASE WHEN cookie THEN 1 ELSE 0 END), 0) AS total_cookies,
			COUNT(DISTINCT restaurant_id) AS unique_restaurants,
			COUNT(DISTINCT user_id) AS unique_users,
			COALESCE(AVG(price_zar), 0) AS average_price,
			COALESCE(SUM(price_zar), 0) AS total_spent`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Leaderboard returns per-restaurant aggregates ordered by average stars.
func (r *ratingRepository) Leaderboard() ([]dto.LeaderboardEntry, error) {
	var entries []dto.LeaderboardEntry
	err := r.db.Table("rating").
		Select(`restaurant.name AS restaurant_name,
			COALESCE(AVG(rating.stars), 0) AS average_rating,
			COUNT(rating.id) AS total_ratings,
			COALESCE(SUM(CASE WHEN rating.cookie THEN 1 ELSE 0 END), 0) AS total_cookies,
			COALESCE(AVG(rating.price_zar), 0) AS average_price`).
		Joins(`JOIN restaurant ON restaurant.id = rating.restaurant_id`).
		Group("restaurant.id, restaurant.name").
		Order("average_rating DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
