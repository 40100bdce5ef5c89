package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobOpen      JobStatus = "open"
	JobAssigned  JobStatus = "assigned"
	JobCompleted JobStatus = "completed"
	JobCancelled JobStatus = "cancelled"
)

type Job struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"client_id"`
	FreelancerID *uuid.UUID `gorm:"type:uuid;index" json:"freelancer_id,omitempty"`

	Title          string  `gorm:"type:varchar(200);not null" json:"title"`
	Description    string  `gorm:"type:text;not null" json:"description"`
	Amount         int64   `gorm:"not null" json:"amount"`
	NumberOfPeople int     `gorm:"default:1" json:"number_of_people"`
	Address        Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	// any / male / female
	GenderPreference string `gorm:"type:varchar(10);default:'any'" json:"gender_preference"`

	Status   JobStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	AssignedAt         *time.Time `json:"assigned_at,omitempty"`
	WorkCompletedAt    *time.Time `json:"work_completed_at,omitempty"`
	PaymentCompletedAt *time.Time `json:"payment_completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Client     *User `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Freelancer *User `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) (err error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return
}
