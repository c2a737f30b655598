package model

import "time"

// Availability is one cell of the availability table: whether a user can
// attend a given slot on a given day. The composite primary key makes writes
// idempotent upserts; explicit false rows are persisted and read the same as
// absent ones.
type Availability struct {
	Name      string    `gorm:"primaryKey;size:128" json:"name"`
	Day       string    `gorm:"primaryKey;size:10" json:"day"` // ISO date, YYYY-MM-DD
	Slot      string    `gorm:"primaryKey;size:64" json:"slot"`
	Available bool      `gorm:"not null" json:"available"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}
