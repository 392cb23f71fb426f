package models

type User struct {
	Timestamped

	// Name is the business key for get-or-create: the unique index backs
	// the lookup-before-insert path so two racing submissions with the
	// same new name cannot create duplicates.
	Name  string  `gorm:"size:200;not null;uniqueIndex" json:"name"`
	Email *string `gorm:"size:255;uniqueIndex" json:"email,omitempty"`

	Ratings []Rating `gorm:"foreignKey:UserID" json:"ratings,omitempty"`
}

func (User) TableName() string {
	return "user"
}
