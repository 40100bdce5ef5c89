package wallet

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/models"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services"
)

type WalletService struct {
	DB *gorm.DB
}

func NewWalletService(db *gorm.DB) *WalletService {
	return &WalletService{DB: db}
}

// Credit adds funds to a wallet and writes a ledger entry. The balance change
// is a single atomic increment; idempotency is the caller's responsibility.
// This should be called within a DB transaction.
func (s *WalletService) Credit(tx *gorm.DB, userID uuid.UUID, amount int64, trxType models.WalletTrxType, referenceID uuid.UUID, description string) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount to credit must be greater than zero", services.ErrValidation)
	}

	result := tx.Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", amount))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: wallet for user %s", services.ErrNotFound, userID)
	}

	ledger := models.WalletTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Type:        trxType,
		Description: description,
		ReferenceID: &referenceID,
	}
	return tx.Create(&ledger).Error
}

// Debit deducts funds, guarded so the balance can never go negative. The
// check and the write are one conditional UPDATE, not a read followed by a
// write. This should be called within a DB transaction.
func (s *WalletService) Debit(tx *gorm.DB, userID uuid.UUID, amount int64, referenceID uuid.UUID, description string) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount to debit must be greater than zero", services.ErrValidation)
	}

	var w models.Wallet
	if err := tx.First(&w, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("%w: wallet for user %s", services.ErrNotFound, userID)
		}
		return err
	}

	result := tx.Model(&models.Wallet{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: insufficient balance", services.ErrValidation)
	}

	ledger := models.WalletTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Type:        models.WalletTrxDebit,
		Description: description,
		ReferenceID: &referenceID,
	}
	return tx.Create(&ledger).Error
}

// Balance reads the current balance for a user.
func (s *WalletService) Balance(userID uuid.UUID) (*models.Wallet, error) {
	var w models.Wallet
	if err := s.DB.First(&w, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: wallet for user %s", services.ErrNotFound, userID)
		}
		return nil, err
	}
	return &w, nil
}
