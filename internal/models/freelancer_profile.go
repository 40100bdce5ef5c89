package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VerificationStatus string

const (
	VerificationPending     VerificationStatus = "pending"
	VerificationResubmitted VerificationStatus = "resubmitted"
	VerificationUnderReview VerificationStatus = "under_review"
	VerificationApproved    VerificationStatus = "approved"
	VerificationRejected    VerificationStatus = "rejected"
)

// PendingVerificationStatuses are the statuses an admin still has to act on.
var PendingVerificationStatuses = []VerificationStatus{
	VerificationPending,
	VerificationResubmitted,
}

type Address struct {
	Street  string `gorm:"type:varchar(200)" json:"street"`
	City    string `gorm:"type:varchar(120)" json:"city"`
	State   string `gorm:"type:varchar(120)" json:"state"`
	Pincode string `gorm:"type:varchar(10)" json:"pincode"`
}

type FreelancerProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	FullName    string    `gorm:"type:varchar(120);not null" json:"full_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `gorm:"type:varchar(10)" json:"gender"`
	Address     Address   `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	// Document kind -> stored URL (aadhaar_front, pan_card, selfie, ...).
	Documents datatypes.JSONMap `json:"documents"`

	VerificationStatus VerificationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"verification_status"`

	// Assigned only on approval; nil otherwise. Uniqueness is enforced at the
	// DB level on top of the in-transaction check in the verification service.
	FreelancerID    *string `gorm:"type:varchar(30);uniqueIndex" json:"freelancer_id,omitempty"`
	RejectionReason string  `gorm:"type:text" json:"rejection_reason,omitempty"`

	IsProfileComplete bool    `gorm:"default:false" json:"is_profile_complete"`
	Rating            float64 `gorm:"default:0" json:"rating"`
	TotalJobs         int     `gorm:"default:0" json:"total_jobs"`
	CompletedJobs     int     `gorm:"default:0" json:"completed_jobs"`
	TotalEarnings     int64   `gorm:"default:0" json:"total_earnings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (p *FreelancerProfile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
