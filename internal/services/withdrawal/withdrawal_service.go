// Package withdrawal implements the admin settlement lifecycle for wallet
// withdrawal requests. Funds are debited when the request is created, so
// approval records that the manual bank transfer happened and rejection is
// the one compensating transaction that credits the amount back.
package withdrawal

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/models"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/wallet"
)

type WithdrawalService struct {
	DB            *gorm.DB
	WalletService *wallet.WalletService
}

func NewWithdrawalService(db *gorm.DB, ws *wallet.WalletService) *WithdrawalService {
	return &WithdrawalService{DB: db, WalletService: ws}
}

type ApproveResult struct {
	Transaction     *models.Transaction
	AlreadyApproved bool
}

type RejectResult struct {
	Transaction     *models.Transaction
	AlreadyRejected bool
	// Refunded is false when the freelancer has no wallet record; the
	// rejection still stands and the anomaly is logged.
	Refunded bool
}

// Get loads a withdrawal transaction with its freelancer.
func (s *WithdrawalService) Get(transactionID uuid.UUID) (*models.Transaction, error) {
	var trx models.Transaction
	err := s.DB.Preload("Freelancer").
		First(&trx, "id = ? AND type = ?", transactionID, models.TransactionWithdrawal).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("%w: withdrawal %s", services.ErrNotFound, transactionID)
	}
	if err != nil {
		return nil, err
	}
	return &trx, nil
}

// ListPending returns pending withdrawals, newest first.
func (s *WithdrawalService) ListPending() ([]models.Transaction, error) {
	var trxs []models.Transaction
	err := s.DB.Preload("Freelancer").
		Where("type = ? AND status = ?", models.TransactionWithdrawal, models.TransactionPending).
		Order("created_at DESC").
		Find(&trxs).Error
	return trxs, err
}

// ListRecent returns the most recent withdrawals regardless of status.
func (s *WithdrawalService) ListRecent(limit int) ([]models.Transaction, error) {
	var trxs []models.Transaction
	err := s.DB.Preload("Freelancer").
		Where("type = ?", models.TransactionWithdrawal).
		Order("created_at DESC").
		Limit(limit).
		Find(&trxs).Error
	return trxs, err
}

// Approve marks a pending withdrawal completed and stamps the completion
// time. The wallet is untouched: the amount was already debited when the
// request was created, and approval only confirms the manual transfer.
// An already-completed withdrawal is reported via AlreadyApproved; any other
// non-pending status is ErrInvalidState.
func (s *WithdrawalService) Approve(transactionID uuid.UUID) (*ApproveResult, error) {
	res := &ApproveResult{}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var trx models.Transaction
		err := tx.Set("gorm:query_option", "FOR UPDATE").
			First(&trx, "id = ? AND type = ?", transactionID, models.TransactionWithdrawal).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("%w: withdrawal %s", services.ErrNotFound, transactionID)
			}
			return err
		}

		if trx.Status == models.TransactionCompleted {
			res.Transaction = &trx
			res.AlreadyApproved = true
			return nil
		}
		if trx.Status != models.TransactionPending {
			return fmt.Errorf("%w: withdrawal is %s, not pending", services.ErrInvalidState, trx.Status)
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":       models.TransactionCompleted,
			"completed_at": now,
		}
		if err := tx.Model(&trx).Updates(updates).Error; err != nil {
			return err
		}

		trx.Status = models.TransactionCompleted
		trx.CompletedAt = &now
		res.Transaction = &trx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Reject marks a pending withdrawal failed and credits the amount back to the
// freelancer's wallet in the same DB transaction. The pending-status guard
// makes the refund single-fire: repeated reject calls cannot credit twice.
// A missing wallet downgrades the refund to a logged anomaly; the rejection
// itself still succeeds.
func (s *WithdrawalService) Reject(transactionID uuid.UUID, reason string) (*RejectResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", services.ErrValidation)
	}

	res := &RejectResult{}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var trx models.Transaction
		err := tx.Set("gorm:query_option", "FOR UPDATE").
			First(&trx, "id = ? AND type = ?", transactionID, models.TransactionWithdrawal).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("%w: withdrawal %s", services.ErrNotFound, transactionID)
			}
			return err
		}

		if trx.Status == models.TransactionFailed {
			res.Transaction = &trx
			res.AlreadyRejected = true
			return nil
		}
		if trx.Status != models.TransactionPending {
			return fmt.Errorf("%w: withdrawal is %s, not pending", services.ErrInvalidState, trx.Status)
		}

		updates := map[string]interface{}{
			"status":         models.TransactionFailed,
			"failure_reason": reason,
		}
		if err := tx.Model(&trx).Updates(updates).Error; err != nil {
			return err
		}

		desc := "Refund for rejected withdrawal " + trx.ID.String()
		err = s.WalletService.Credit(tx, trx.FreelancerID, trx.Amount, models.WalletTrxRefund, trx.ID, desc)
		switch {
		case err == nil:
			res.Refunded = true
		case errors.Is(err, services.ErrNotFound):
			// Data-integrity anomaly: the withdrawal exists but the wallet
			// does not. Record the rejection anyway.
			log.Printf("withdrawal reject: no wallet for freelancer %s, refund of %d skipped", trx.FreelancerID, trx.Amount)
		default:
			return err
		}

		trx.Status = models.TransactionFailed
		trx.FailureReason = reason
		res.Transaction = &trx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Stats aggregates withdrawal counts and totals per status.
type StatusStat struct {
	Status      models.TransactionStatus
	Count       int64
	TotalAmount int64
}

func (s *WithdrawalService) Stats() ([]StatusStat, error) {
	var rows []StatusStat
	err := s.DB.Model(&models.Transaction{}).
		Select("status, count(*) as count, sum(amount) as total_amount").
		Where("type = ?", models.TransactionWithdrawal).
		Group("status").
		Scan(&rows).Error
	return rows, err
}
