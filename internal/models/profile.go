package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Profile is a job seeker's public profile, one per user. Saves are
// wholesale: the first save creates it, later saves overwrite every field.
type Profile struct {
	ID         ProfileID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     UserID         `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Bio        string         `json:"bio"`
	Skills     datatypes.JSON `gorm:"type:jsonb" json:"-"`
	Resume     string         `json:"resume"` // URL to an externally hosted resume
	Experience string         `json:"experience"`
	Timestamps
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = ProfileID(uuid.NewString())
	}
	return nil
}

func (p *Profile) GetSkills() []string  { return listFromJSON(p.Skills) }
func (p *Profile) SetSkills(v []string) { p.Skills = listToJSON(v) }
