package wallet

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/models"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/servicetest"
)

func seedWallet(t *testing.T, db *gorm.DB, balance int64) uuid.UUID {
	t.Helper()

	user := models.User{Phone: "8" + uuid.NewString()[:9], Role: models.RoleFreelancer, IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Wallet{UserID: user.ID, Balance: balance}).Error)
	return user.ID
}

func TestCredit(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewWalletService(db)
	userID := seedWallet(t, db, 100)
	ref := uuid.New()

	err := svc.Credit(db, userID, 250, models.WalletTrxRefund, ref, "refund for rejected withdrawal")
	require.NoError(t, err)

	w, err := svc.Balance(userID)
	require.NoError(t, err)
	assert.Equal(t, int64(350), w.Balance)

	var ledger []models.WalletTransaction
	require.NoError(t, db.Where("user_id = ?", userID).Find(&ledger).Error)
	require.Len(t, ledger, 1)
	assert.Equal(t, models.WalletTrxRefund, ledger[0].Type)
	assert.Equal(t, int64(250), ledger[0].Amount)
	require.NotNil(t, ledger[0].ReferenceID)
	assert.Equal(t, ref, *ledger[0].ReferenceID)
}

func TestCreditValidation(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewWalletService(db)
	userID := seedWallet(t, db, 100)

	for _, amount := range []int64{0, -50} {
		err := svc.Credit(db, userID, amount, models.WalletTrxCredit, uuid.New(), "bad amount")
		assert.ErrorIs(t, err, services.ErrValidation)
	}
}

func TestCreditMissingWallet(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewWalletService(db)

	err := svc.Credit(db, uuid.New(), 100, models.WalletTrxCredit, uuid.New(), "no wallet")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDebit(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewWalletService(db)
	userID := seedWallet(t, db, 500)
	ref := uuid.New()

	require.NoError(t, svc.Debit(db, userID, 300, ref, "withdrawal request"))

	w, err := svc.Balance(userID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), w.Balance)

	var ledger models.WalletTransaction
	require.NoError(t, db.Where("user_id = ?", userID).First(&ledger).Error)
	assert.Equal(t, models.WalletTrxDebit, ledger.Type)
}

func TestDebitInsufficientBalance(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewWalletService(db)
	userID := seedWallet(t, db, 200)

	err := svc.Debit(db, userID, 300, uuid.New(), "too much")
	assert.ErrorIs(t, err, services.ErrValidation)

	// Balance untouched, no ledger entry.
	w, err := svc.Balance(userID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), w.Balance)

	var count int64
	db.Model(&models.WalletTransaction{}).Where("user_id = ?", userID).Count(&count)
	assert.Zero(t, count)
}

func TestDebitMissingWallet(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewWalletService(db)

	err := svc.Debit(db, uuid.New(), 100, uuid.New(), "no wallet")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBalanceMissingWallet(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewWalletService(db)

	_, err := svc.Balance(uuid.New())
	assert.ErrorIs(t, err, services.ErrNotFound)
}
