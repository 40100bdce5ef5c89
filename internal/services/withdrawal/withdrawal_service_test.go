package withdrawal

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/models"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/servicetest"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/wallet"
)

func newService(db *gorm.DB) *WithdrawalService {
	return NewWithdrawalService(db, wallet.NewWalletService(db))
}

func seedFreelancer(t *testing.T, db *gorm.DB, balance int64, withWallet bool) uuid.UUID {
	t.Helper()

	user := models.User{Phone: "8" + uuid.NewString()[:9], Name: "Arjun Verma", Role: models.RoleFreelancer, IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	if withWallet {
		require.NoError(t, db.Create(&models.Wallet{UserID: user.ID, Balance: balance}).Error)
	}
	return user.ID
}

func seedWithdrawal(t *testing.T, db *gorm.DB, freelancerID uuid.UUID, amount int64, status models.TransactionStatus) models.Transaction {
	t.Helper()

	trx := models.Transaction{
		FreelancerID:  freelancerID,
		Amount:        amount,
		Type:          models.TransactionWithdrawal,
		Status:        status,
		Description:   "Withdrawal request",
		PaymentMethod: "bank_transfer",
		BankDetails: models.BankDetails{
			AccountNumber:     "50100234567890",
			IFSCCode:          "HDFC0001234",
			AccountHolderName: "Arjun Verma",
		},
	}
	require.NoError(t, db.Create(&trx).Error)
	return trx
}

func walletBalance(t *testing.T, db *gorm.DB, userID uuid.UUID) int64 {
	t.Helper()

	var w models.Wallet
	require.NoError(t, db.First(&w, "user_id = ?", userID).Error)
	return w.Balance
}

func TestApprove(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := newService(db)
	fid := seedFreelancer(t, db, 100, true)
	trx := seedWithdrawal(t, db, fid, 500, models.TransactionPending)

	res, err := svc.Approve(trx.ID)
	require.NoError(t, err)
	assert.False(t, res.AlreadyApproved)
	assert.Equal(t, models.TransactionCompleted, res.Transaction.Status)
	require.NotNil(t, res.Transaction.CompletedAt)

	// Approval never touches the wallet; the debit happened at request time.
	assert.Equal(t, int64(100), walletBalance(t, db, fid))
}

func TestApproveIdempotent(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := newService(db)
	fid := seedFreelancer(t, db, 100, true)
	trx := seedWithdrawal(t, db, fid, 500, models.TransactionPending)

	_, err := svc.Approve(trx.ID)
	require.NoError(t, err)

	res, err := svc.Approve(trx.ID)
	require.NoError(t, err)
	assert.True(t, res.AlreadyApproved)
	assert.Equal(t, models.TransactionCompleted, res.Transaction.Status)
}

func TestApproveInvalidState(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := newService(db)
	fid := seedFreelancer(t, db, 100, true)
	trx := seedWithdrawal(t, db, fid, 500, models.TransactionFailed)

	_, err := svc.Approve(trx.ID)
	assert.ErrorIs(t, err, services.ErrInvalidState)
}

func TestApproveNotFound(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := newService(db)

	_, err := svc.Approve(uuid.New())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestReject(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := newService(db)
	fid := seedFreelancer(t, db, 100, true)
	trx := seedWithdrawal(t, db, fid, 500, models.TransactionPending)

	res, err := svc.Reject(trx.ID, "bank account could not be verified")
	require.NoError(t, err)
	assert.False(t, res.AlreadyRejected)
	assert.True(t, res.Refunded)
	assert.Equal(t, models.TransactionFailed, res.Transaction.Status)
	assert.Equal(t, "bank account could not be verified", res.Transaction.FailureReason)

	assert.Equal(t, int64(600), walletBalance(t, db, fid))

	var ledger models.WalletTransaction
	require.NoError(t, db.First(&ledger, "user_id = ?", fid).Error)
	assert.Equal(t, models.WalletTrxRefund, ledger.Type)
	assert.Equal(t, int64(500), ledger.Amount)
	require.NotNil(t, ledger.ReferenceID)
	assert.Equal(t, trx.ID, *ledger.ReferenceID)
}

func TestRejectRefundsOnlyOnce(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := newService(db)
	fid := seedFreelancer(t, db, 100, true)
	trx := seedWithdrawal(t, db, fid, 500, models.TransactionPending)

	_, err := svc.Reject(trx.ID, "first rejection")
	require.NoError(t, err)

	res, err := svc.Reject(trx.ID, "second rejection")
	require.NoError(t, err)
	assert.True(t, res.AlreadyRejected)
	assert.False(t, res.Refunded)

	// The second call must not credit again.
	assert.Equal(t, int64(600), walletBalance(t, db, fid))

	var count int64
	db.Model(&models.WalletTransaction{}).Where("user_id = ?", fid).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRejectMissingWallet(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := newService(db)
	fid := seedFreelancer(t, db, 0, false)
	trx := seedWithdrawal(t, db, fid, 500, models.TransactionPending)

	// Rejection still succeeds; the refund is skipped and flagged.
	res, err := svc.Reject(trx.ID, "bank details invalid")
	require.NoError(t, err)
	assert.False(t, res.Refunded)
	assert.Equal(t, models.TransactionFailed, res.Transaction.Status)
}

func TestRejectRequiresReason(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := newService(db)
	fid := seedFreelancer(t, db, 100, true)
	trx := seedWithdrawal(t, db, fid, 500, models.TransactionPending)

	_, err := svc.Reject(trx.ID, "  ")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestRejectCompletedWithdrawal(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := newService(db)
	fid := seedFreelancer(t, db, 100, true)
	trx := seedWithdrawal(t, db, fid, 500, models.TransactionCompleted)

	_, err := svc.Reject(trx.ID, "too late")
	assert.ErrorIs(t, err, services.ErrInvalidState)

	assert.Equal(t, int64(100), walletBalance(t, db, fid))
}

func TestListPending(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := newService(db)
	fid := seedFreelancer(t, db, 100, true)

	seedWithdrawal(t, db, fid, 500, models.TransactionPending)
	seedWithdrawal(t, db, fid, 200, models.TransactionCompleted)
	seedWithdrawal(t, db, fid, 300, models.TransactionFailed)

	trxs, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, trxs, 1)
	assert.Equal(t, int64(500), trxs[0].Amount)
	require.NotNil(t, trxs[0].Freelancer)
	assert.Equal(t, "Arjun Verma", trxs[0].Freelancer.Name)
}

func TestStats(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := newService(db)
	fid := seedFreelancer(t, db, 100, true)

	seedWithdrawal(t, db, fid, 500, models.TransactionPending)
	seedWithdrawal(t, db, fid, 300, models.TransactionPending)
	seedWithdrawal(t, db, fid, 200, models.TransactionCompleted)

	stats, err := svc.Stats()
	require.NoError(t, err)

	byStatus := map[models.TransactionStatus]StatusStat{}
	for _, s := range stats {
		byStatus[s.Status] = s
	}
	assert.Equal(t, int64(2), byStatus[models.TransactionPending].Count)
	assert.Equal(t, int64(800), byStatus[models.TransactionPending].TotalAmount)
	assert.Equal(t, int64(1), byStatus[models.TransactionCompleted].Count)
	assert.Equal(t, int64(200), byStatus[models.TransactionCompleted].TotalAmount)
}
