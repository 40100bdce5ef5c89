package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OfferStatus string

const (
	OfferPending   OfferStatus = "pending"
	OfferAccepted  OfferStatus = "accepted"
	OfferRejected  OfferStatus = "rejected"
	OfferWithdrawn OfferStatus = "withdrawn"
)

type OfferType string

const (
	OfferDirectApply OfferType = "direct_apply"
	OfferCustom      OfferType = "custom_offer"
)

type Offer struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobID        uuid.UUID `gorm:"type:uuid;index;not null" json:"job_id"`
	FreelancerID uuid.UUID `gorm:"type:uuid;index;not null" json:"freelancer_id"`
	ClientID     uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`

	OriginalAmount int64  `gorm:"not null" json:"original_amount"`
	OfferedAmount  int64  `gorm:"not null" json:"offered_amount"`
	Message        string `gorm:"type:text" json:"message"`

	Status    OfferStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	OfferType OfferType   `gorm:"type:varchar(20);not null;default:'direct_apply'" json:"offer_type"`

	RespondedAt     *time.Time `json:"responded_at,omitempty"`
	ResponseMessage string     `gorm:"type:text" json:"response_message,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Job        *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Freelancer *User `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
	Client     *User `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

func (o *Offer) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}
