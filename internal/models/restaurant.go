package models

type Restaurant struct {
	Timestamped

	Name    string  `gorm:"size:255;not null" json:"name"`
	Address *string `gorm:"type:text" json:"address,omitempty"`

	// GooglePlaceID is the business key, not Name: two restaurants with
	// the same name but different place ids are distinct rows. The unique
	// index exempts NULLs, so a missing place id always creates a new row.
	GooglePlaceID *string  `gorm:"column:google_place_id;size:100;uniqueIndex" json:"google_place_id,omitempty"`
	Latitude      *float64 `gorm:"type:decimal(10,8)" json:"latitude,omitempty"`
	Longitude     *float64 `gorm:"type:decimal(11,8)" json:"longitude,omitempty"`

	Website *string `gorm:"size:500" json:"website,omitempty"`
	// RestaurantRating is the external source's own rating, 0.0-5.0.
	RestaurantRating *float64 `gorm:"type:decimal(2,1)" json:"restaurant_rating,omitempty"`

	Ratings []Rating `gorm:"foreignKey:RestaurantID" json:"ratings,omitempty"`
}

func (Restaurant) TableName() string {
	return "restaurant"
}
