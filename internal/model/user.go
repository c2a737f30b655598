package model

import "time"

// User is a group member, keyed by display name. Names are case-sensitive
// and stored exactly as submitted (after trimming at the gate); there are no
// per-user credentials and users are never deleted.
type User struct {
	Name      string    `gorm:"primaryKey;size:128" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"-"`

	// Associations
	Availabilities []Availability `gorm:"foreignKey:Name;references:Name;constraint:OnDelete:CASCADE" json:"-"`
}
