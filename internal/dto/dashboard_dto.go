package dto

// RatingRow is one row of the read-only dashboard projection: a rating
// joined with its restaurant and user display attributes. The gorm tags
// match the aliases used by the projection query's Select.
type RatingRow struct {
	ID               string   `gorm:"column:id" json:"id"`
	Stars            int      `gorm:"column:stars" json:"stars"`
	PriceZAR         *float64 `gorm:"column:price_zar" json:"price_zar,omitempty"`
	NumShots         *string  `gorm:"column:num_shots" json:"num_shots,omitempty"`
	Notes            *string  `gorm:"column:notes" json:"notes,omitempty"`
	Cookie           bool     `gorm:"column:cookie" json:"cookie"`
	TakeAway         bool     `gorm:"column:take_away" json:"take_away"`
	CreatedAt        float64  `gorm:"column:created_at" json:"created_at"`
	RestaurantName   string   `gorm:"column:restaurant_name" json:"restaurant_name"`
	Address          *string  `gorm:"column:address" json:"address,omitempty"`
	Latitude         *float64 `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude        *float64 `gorm:"column:longitude" json:"longitude,omitempty"`
	RestaurantRating *float64 `gorm:"column:restaurant_rating" json:"restaurant_rating,omitempty"`
	UserName         string   `gorm:"column:user_name" json:"user_name"`
	Email            *string  `gorm:"column:email" json:"email,omitempty"`
}

// StatsResponse holds the aggregate statistics shown on the dashboard.
type StatsResponse struct {
	TotalRatings      int64   `gorm:"column:total_ratings" json:"total_ratings"`
	AverageRating     float64 `gorm:"column:average_rating" json:"average_rating"`
	TotalCookies      int64   `gorm:"column:total_cookies" json:"total_cookies"`
	UniqueRestaurants int64   `gorm:"column:unique_restaurants" json:"unique_restaurants"`
	UniqueUsers       int64   `gorm:"column:unique_users" json:"unique_users"`
	AveragePrice      float64 `gorm:"column:average_price" json:"average_price"`
	TotalSpent        float64 `gorm:"column:total_spent" json:"total_spent"`
}

// LeaderboardEntry is one restaurant's aggregate line, ordered by average
// stars on the dashboard's performance ranking.
type LeaderboardEntry struct {
	RestaurantName string  `gorm:"column:restaurant_name" json:"restaurant_name"`
	AverageRating  float64 `gorm:"column:average_rating" json:"average_rating"`
	TotalRatings   int64   `gorm:"column:total_ratings" json:"total_ratings"`
	TotalCookies   int64   `gorm:"column:total_cookies" json:"total_cookies"`
	AveragePrice   float64 `gorm:"column:average_price" json:"average_price"`
}
