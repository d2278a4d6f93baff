package models

import (
	"time"

	"gorm.io/datatypes"
)

type Trip struct {
	ID           string `gorm:"primaryKey"`
	Title        string `gorm:"not null"`
	Description  string
	ImageURL     string
	LocationName string    `gorm:"not null"`
	Lat          float64   `gorm:"not null"`
	Lng          float64   `gorm:"not null"`
	StartDate    time.Time `gorm:"not null;index"`
	EndDate      time.Time `gorm:"not null"`
	Budget       *float64
	Tags         datatypes.JSON
	Capacity     *int
	OrganizerID  string `gorm:"not null;index"`

	CreatedAt time.Time

	// Relationships
	Organizer User           `gorm:"foreignKey:OrganizerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Attendees []TripAttendee `gorm:"foreignKey:TripID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
