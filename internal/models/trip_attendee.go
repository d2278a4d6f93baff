package models

import "time"

// TripAttendee records that a user is attending a trip. The composite
// primary key is what makes concurrent joins safe: a duplicate insert
// hits the key instead of racing past an existence check.
type TripAttendee struct {
	TripID    string `gorm:"primaryKey"`
	UserID    string `gorm:"primaryKey"`
	CreatedAt time.Time

	// Relationships
	Trip Trip `gorm:"foreignKey:TripID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
