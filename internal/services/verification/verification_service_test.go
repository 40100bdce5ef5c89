package verification

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/models"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/servicetest"
)

func seedProfile(t *testing.T, db *gorm.DB, name string, status models.VerificationStatus) models.FreelancerProfile {
	t.Helper()

	user := models.User{Phone: "8" + uuid.NewString()[:9], Name: name, Role: models.RoleFreelancer, IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	profile := models.FreelancerProfile{
		UserID:             user.ID,
		FullName:           name,
		VerificationStatus: status,
		IsProfileComplete:  true,
	}
	require.NoError(t, db.Create(&profile).Error)
	return profile
}

func TestApprove(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewVerificationService(db)
	profile := seedProfile(t, db, "Arjun Verma", models.VerificationPending)

	res, err := svc.Approve(profile.ID, "FL2025001001")
	require.NoError(t, err)
	assert.False(t, res.AlreadyApproved)
	assert.Equal(t, models.VerificationApproved, res.Profile.VerificationStatus)
	require.NotNil(t, res.Profile.FreelancerID)
	assert.Equal(t, "FL2025001001", *res.Profile.FreelancerID)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", profile.UserID).Error)
	assert.True(t, user.IsVerified)
}

func TestApproveIdempotent(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewVerificationService(db)
	profile := seedProfile(t, db, "Arjun Verma", models.VerificationPending)

	_, err := svc.Approve(profile.ID, "FL2025001001")
	require.NoError(t, err)

	// Second approval, even with a different ID, changes nothing.
	res, err := svc.Approve(profile.ID, "FL2025009999")
	require.NoError(t, err)
	assert.True(t, res.AlreadyApproved)
	require.NotNil(t, res.Profile.FreelancerID)
	assert.Equal(t, "FL2025001001", *res.Profile.FreelancerID)
}

func TestApproveInvalidID(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewVerificationService(db)
	profile := seedProfile(t, db, "Arjun Verma", models.VerificationPending)

	for _, id := range []string{"", "12345", "F12345678", "FL1234567", "FLX2345678", "FL12345678X"} {
		_, err := svc.Approve(profile.ID, id)
		assert.ErrorIs(t, err, services.ErrValidation, "id %q", id)
	}

	// Still pending after the failed attempts.
	var fresh models.FreelancerProfile
	require.NoError(t, db.First(&fresh, "id = ?", profile.ID).Error)
	assert.Equal(t, models.VerificationPending, fresh.VerificationStatus)
}

func TestApproveDuplicateID(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewVerificationService(db)
	first := seedProfile(t, db, "Arjun Verma", models.VerificationPending)
	second := seedProfile(t, db, "Priya Singh", models.VerificationPending)

	_, err := svc.Approve(first.ID, "FL2025001001")
	require.NoError(t, err)

	_, err = svc.Approve(second.ID, "FL2025001001")
	assert.ErrorIs(t, err, services.ErrConflict)

	var fresh models.FreelancerProfile
	require.NoError(t, db.First(&fresh, "id = ?", second.ID).Error)
	assert.Equal(t, models.VerificationPending, fresh.VerificationStatus)
	assert.Nil(t, fresh.FreelancerID)
}

func TestApproveNotFound(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewVerificationService(db)

	_, err := svc.Approve(uuid.New(), "FL2025001001")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestReject(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewVerificationService(db)
	profile := seedProfile(t, db, "Arjun Verma", models.VerificationPending)

	res, err := svc.Reject(profile.ID, "document photo unreadable")
	require.NoError(t, err)
	assert.False(t, res.AlreadyRejected)
	assert.Equal(t, models.VerificationRejected, res.Profile.VerificationStatus)
	assert.Equal(t, "document photo unreadable", res.Profile.RejectionReason)
	assert.Nil(t, res.Profile.FreelancerID)
}

func TestRejectFreesFreelancerID(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewVerificationService(db)
	first := seedProfile(t, db, "Arjun Verma", models.VerificationPending)
	second := seedProfile(t, db, "Priya Singh", models.VerificationPending)

	_, err := svc.Approve(first.ID, "FL2025001001")
	require.NoError(t, err)

	_, err = svc.Reject(first.ID, "documents forged")
	require.NoError(t, err)

	// The freed ID is assignable again.
	res, err := svc.Approve(second.ID, "FL2025001001")
	require.NoError(t, err)
	require.NotNil(t, res.Profile.FreelancerID)
	assert.Equal(t, "FL2025001001", *res.Profile.FreelancerID)
}

func TestRejectRequiresReason(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewVerificationService(db)
	profile := seedProfile(t, db, "Arjun Verma", models.VerificationPending)

	_, err := svc.Reject(profile.ID, "   ")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestRejectIdempotent(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewVerificationService(db)
	profile := seedProfile(t, db, "Arjun Verma", models.VerificationPending)

	_, err := svc.Reject(profile.ID, "first reason")
	require.NoError(t, err)

	res, err := svc.Reject(profile.ID, "second reason")
	require.NoError(t, err)
	assert.True(t, res.AlreadyRejected)
	assert.Equal(t, "first reason", res.Profile.RejectionReason)
}

func TestListPending(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewVerificationService(db)

	older := seedProfile(t, db, "Arjun Verma", models.VerificationPending)
	resubmitted := seedProfile(t, db, "Priya Singh", models.VerificationResubmitted)
	newest := seedProfile(t, db, "Kiran Patel", models.VerificationPending)
	seedProfile(t, db, "Approved One", models.VerificationApproved)
	seedProfile(t, db, "Rejected One", models.VerificationRejected)

	base := time.Now().Add(-time.Hour)
	for i, p := range []models.FreelancerProfile{older, resubmitted, newest} {
		require.NoError(t, db.Model(&models.FreelancerProfile{}).
			Where("id = ?", p.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	profiles, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, newest.ID, profiles[0].ID)
	assert.Equal(t, resubmitted.ID, profiles[1].ID)
	assert.Equal(t, older.ID, profiles[2].ID)
	require.NotNil(t, profiles[0].User)
	assert.Equal(t, "Kiran Patel", profiles[0].User.Name)
}

func TestSplitFreelancerID(t *testing.T) {
	prefix, number, err := SplitFreelancerID("FL2025001001")
	require.NoError(t, err)
	assert.Equal(t, "FL", prefix)
	assert.Equal(t, int64(2025001001), number)

	_, _, err = SplitFreelancerID("2025001001")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestBulkApprove(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewVerificationService(db)

	a := seedProfile(t, db, "Arjun Verma", models.VerificationPending)
	b := seedProfile(t, db, "Priya Singh", models.VerificationPending)
	c := seedProfile(t, db, "Kiran Patel", models.VerificationResubmitted)

	// Fix the retrieval order: c newest, then b, then a.
	base := time.Now().Add(-time.Hour)
	for i, p := range []models.FreelancerProfile{a, b, c} {
		require.NoError(t, db.Model(&models.FreelancerProfile{}).
			Where("id = ?", p.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	// FL2025001001 is already taken, so the second item in the batch fails.
	taken := seedProfile(t, db, "Holder", models.VerificationUnderReview)
	_, err := svc.Approve(taken.ID, "FL2025001001")
	require.NoError(t, err)

	res, err := svc.BulkApprove("FL2025001000")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Items, 3)

	assert.Equal(t, c.ID, res.Items[0].ProfileID)
	assert.Equal(t, "FL2025001000", res.Items[0].FreelancerID)
	assert.NoError(t, res.Items[0].Err)

	assert.Equal(t, b.ID, res.Items[1].ProfileID)
	assert.ErrorIs(t, res.Items[1].Err, services.ErrConflict)

	assert.Equal(t, a.ID, res.Items[2].ProfileID)
	assert.Equal(t, "FL2025001002", res.Items[2].FreelancerID)
	assert.NoError(t, res.Items[2].Err)

	// The failed profile is still pending for a retry.
	var fresh models.FreelancerProfile
	require.NoError(t, db.First(&fresh, "id = ?", b.ID).Error)
	assert.Equal(t, models.VerificationPending, fresh.VerificationStatus)
}

func TestBulkApproveInvalidStartID(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewVerificationService(db)

	_, err := svc.BulkApprove("not-an-id")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestBulkReject(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewVerificationService(db)

	seedProfile(t, db, "Arjun Verma", models.VerificationPending)
	seedProfile(t, db, "Priya Singh", models.VerificationResubmitted)
	approved := seedProfile(t, db, "Approved One", models.VerificationApproved)

	res, err := svc.BulkReject("verification drive closed")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Succeeded)
	assert.Zero(t, res.Failed)

	// The approved profile is untouched.
	var fresh models.FreelancerProfile
	require.NoError(t, db.First(&fresh, "id = ?", approved.ID).Error)
	assert.Equal(t, models.VerificationApproved, fresh.VerificationStatus)
}

func TestStats(t *testing.T) {
	db := servicetest.OpenDB(t)
	svc := NewVerificationService(db)

	seedProfile(t, db, "A", models.VerificationPending)
	seedProfile(t, db, "B", models.VerificationPending)
	seedProfile(t, db, "C", models.VerificationApproved)
	seedProfile(t, db, "D", models.VerificationRejected)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats[models.VerificationPending])
	assert.Equal(t, int64(1), stats[models.VerificationApproved])
	assert.Equal(t, int64(1), stats[models.VerificationRejected])
	assert.Zero(t, stats[models.VerificationResubmitted])
}
