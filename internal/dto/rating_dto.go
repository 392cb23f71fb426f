package dto

import (
	"cortado/internal/models"
)

// RestaurantInput carries the restaurant attributes a caller supplies when
// submitting a rating. Generated fields (id, timestamps) are never part of
// the input contract.
type RestaurantInput struct {
	Name             string   `json:"name" binding:"required,max=255"`
	Address          *string  `json:"address,omitempty"`
	GooglePlaceID    *string  `json:"google_place_id,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	Website          *string  `json:"website,omitempty"`
	RestaurantRating *float64 `json:"restaurant_rating,omitempty" binding:"omitempty,min=0,max=5"`
}

func (in *RestaurantInput) ToModel() *models.Restaurant {
	return &models.Restaurant{
		Name:             in.Name,
		Address:          in.Address,
		GooglePlaceID:    in.GooglePlaceID,
		Latitude:         in.Latitude,
		Longitude:        in.Longitude,
		Website:          in.Website,
		RestaurantRating: in.RestaurantRating,
	}
}

// UserInput identifies the submitting user. Name is the business key used
// for get-or-create; the match is case-sensitive and exact.
type UserInput struct {
	Name  string  `json:"name" binding:"required,max=200"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

func (in *UserInput) ToModel() *models.User {
	return &models.User{
		Name:  in.Name,
		Email: in.Email,
	}
}

// RatingInput carries the rating attributes for one visit.
type RatingInput struct {
	Stars    int      `json:"stars" binding:"required,min=1,max=5"`
	PriceZAR *float64 `json:"price_zar" binding:"required"`
	NumShots *string  `json:"num_shots,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
	Cookie   bool     `json:"cookie"`
	TakeAway bool     `json:"take_away"`
}

func (in *RatingInput) ToModel() *models.Rating {
	return &models.Rating{
		Stars:    in.Stars,
		PriceZAR: in.PriceZAR,
		NumShots: in.NumShots,
		Notes:    in.Notes,
		Cookie:   in.Cookie,
		TakeAway: in.TakeAway,
	}
}

// SubmitRatingRequest is the submission endpoint body. Either an explicit
// restaurant or a raw location-picker result must be present; when both are
// given the explicit restaurant wins.
type SubmitRatingRequest struct {
	Restaurant *RestaurantInput `json:"restaurant,omitempty"`
	Place      *PlaceResult     `json:"place,omitempty"`
	User       UserInput        `json:"user" binding:"required"`
	Rating     RatingInput      `json:"rating" binding:"required"`
}

// RatingResponse is the recorded rating returned to the submitter,
// including the generated id.
type RatingResponse struct {
	ID           string   `json:"id"`
	RestaurantID string   `json:"restaurant_id"`
	UserID       string   `json:"user_id"`
	Stars        int      `json:"stars"`
	PriceZAR     *float64 `json:"price_zar,omitempty"`
	NumShots     *string  `json:"num_shots,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	Cookie       bool     `json:"cookie"`
	TakeAway     bool     `json:"take_away"`
	CreatedAt    float64  `json:"created_at"`
}

// FromModelToRatingResponse converts a persisted Rating to its response DTO.
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:           rating.ID,
		RestaurantID: rating.RestaurantID,
		UserID:       rating.UserID,
		Stars:        rating.Stars,
		PriceZAR:     rating.PriceZAR,
		NumShots:     rating.NumShots,
		Notes:        rating.Notes,
		Cookie:       rating.Cookie,
		TakeAway:     rating.TakeAway,
		CreatedAt:    rating.CreatedAt,
	}
}
