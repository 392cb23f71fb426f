package models

type Rating struct {
	Timestamped

	UserID       string `gorm:"column:user_id;size:26;not null;index" json:"user_id"`
	RestaurantID string `gorm:"column:restaurant_id;size:26;not null;index" json:"restaurant_id"`

	Stars    int      `gorm:"not null;check:stars >= 1 AND stars <= 5" json:"stars"`
	PriceZAR *float64 `gorm:"column:price_zar;type:decimal(8,2)" json:"price_zar,omitempty"`
	// NumShots is a free-form label, e.g. "single" or "double".
	NumShots *string `gorm:"column:num_shots;size:50" json:"num_shots,omitempty"`
	Notes    *string `gorm:"type:text" json:"notes,omitempty"`

	Cookie   bool `gorm:"not null;default:false" json:"cookie"`
	TakeAway bool `gorm:"column:take_away;not null;default:false" json:"take_away"`

	User       User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Restaurant Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}

func (Rating) TableName() string {
	return "rating"
}
