package models

import (
	"gobhraman/src/types"
)

type User struct {
	ID           string `gorm:"primarykey;type:uuid" json:"id"`
	Name         string `json:"name,omitempty"`
	Email        string `gorm:"uniqueIndex" json:"email,omitempty"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"default:user" json:"role,omitempty"`

	Bookings []Booking `gorm:"foreignKey:user_id" json:"bookings,omitempty"`

	types.Timestamps
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
