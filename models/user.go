package models

import (
	"time"
)

// User is the authoritative account record. Every user owns at most one
// PlayerProfile and any number of Games; both are removed with the user.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// ExternalID links an outside identity (OAuth subject); guest accounts
	// get a generated uuid here so the column stays unique either way.
	ExternalID *string `gorm:"uniqueIndex;size:100" json:"external_id,omitempty"`
	Email      *string `gorm:"uniqueIndex;size:120" json:"email,omitempty"`

	Name      string  `gorm:"size:120;not null" json:"name"`
	Handle    string  `gorm:"size:140;index" json:"handle"`
	AvatarURL *string `gorm:"size:500" json:"avatar_url,omitempty"`
	IsAdmin   bool    `gorm:"default:false" json:"is_admin"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Profile *PlayerProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Games   []Game         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
