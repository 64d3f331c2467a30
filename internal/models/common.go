package models

import "time"

// Typed identifiers. Ownership checks compare these; distinct types keep a
// JobID from ever being handed to something expecting a UserID.
type (
	UserID        string
	JobID         string
	ApplicationID string
	ProfileID     string
)

type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
