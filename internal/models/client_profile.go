package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	FullName    string    `gorm:"type:varchar(120);not null" json:"full_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `gorm:"type:varchar(10)" json:"gender"`
	Address     Address   `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	IsProfileComplete bool  `gorm:"default:false" json:"is_profile_complete"`
	TotalJobsPosted   int   `gorm:"default:0" json:"total_jobs_posted"`
	TotalSpent        int64 `gorm:"default:0" json:"total_spent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (p *ClientProfile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
