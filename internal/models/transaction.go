package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionPayment    TransactionType = "payment"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionRefund     TransactionType = "refund"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionCancelled TransactionStatus = "cancelled"
)

type BankDetails struct {
	AccountNumber     string `gorm:"type:varchar(30)" json:"account_number"`
	IFSCCode          string `gorm:"type:varchar(20)" json:"ifsc_code"`
	AccountHolderName string `gorm:"type:varchar(120)" json:"account_holder_name"`
}

// Transaction records both job payments and withdrawal requests. The amount is
// immutable after creation; only the status and its companion fields move.
type Transaction struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	JobID        *uuid.UUID `gorm:"type:uuid;index" json:"job_id,omitempty"`
	ClientID     *uuid.UUID `gorm:"type:uuid;index" json:"client_id,omitempty"`
	FreelancerID uuid.UUID  `gorm:"type:uuid;index;not null" json:"freelancer_id"`

	Amount int64           `gorm:"not null" json:"amount"`
	Type   TransactionType `gorm:"type:varchar(20);not null;index" json:"type"`

	Status        TransactionStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Description   string            `gorm:"type:text" json:"description"`
	PaymentMethod string            `gorm:"type:varchar(30)" json:"payment_method"`
	BankDetails   BankDetails       `gorm:"embedded;embeddedPrefix:bank_" json:"bank_details"`
	FailureReason string            `gorm:"type:text" json:"failure_reason,omitempty"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Freelancer *User `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
	Client     *User `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Job        *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
