package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100" json:"name"`
	Surname      string    `gorm:"size:100" json:"surname"`
	Username     string    `gorm:"uniqueIndex;size:150" json:"username"`
	Password     string    `gorm:"size:255" json:"-"` // store hashed password, never return in JSON
	ProfilePhoto string    `gorm:"size:255" json:"profilePhoto"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultProfilePhoto is assigned at signup when no photo was provided.
const DefaultProfilePhoto = "/images/default-profile-photo.jpg"
