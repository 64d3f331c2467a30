package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           UserID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	Timestamps

	// Relations
	Jobs         []Job         `gorm:"foreignKey:EmployerID" json:"-"`
	Applications []Application `gorm:"foreignKey:ApplicantID" json:"-"`
	Profile      *Profile      `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = UserID(uuid.NewString())
	}
	return nil
}
