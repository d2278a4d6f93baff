package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string // empty for accounts created without a password
	AvatarURL    string

	// Optional profile fields
	Age     *int
	Gender  string
	Hobbies datatypes.JSON

	CreatedAt time.Time

	// Relationships
	OrganizedTrips  []Trip         `gorm:"foreignKey:OrganizerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	TripAttendances []TripAttendee `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
