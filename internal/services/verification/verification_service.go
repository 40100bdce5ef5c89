// Package verification implements the admin-reviewed identity verification
// lifecycle for freelancer profiles: approve with freelancer ID issuance,
// reject with a reason, and the bulk variants with per-item failure isolation.
package verification

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/models"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services"
)

// Freelancer IDs are a two-letter prefix followed by at least 8 digits,
// e.g. FL2025001001.
var freelancerIDPattern = regexp.MustCompile(`^[A-Za-z]{2}[0-9]{8,}$`)

type VerificationService struct {
	DB *gorm.DB
}

func NewVerificationService(db *gorm.DB) *VerificationService {
	return &VerificationService{DB: db}
}

type ApproveResult struct {
	Profile         *models.FreelancerProfile
	AlreadyApproved bool
}

type RejectResult struct {
	Profile         *models.FreelancerProfile
	AlreadyRejected bool
}

// BulkItem records the outcome of one entity inside a bulk operation.
type BulkItem struct {
	ProfileID    uuid.UUID
	FullName     string
	FreelancerID string
	Err          error
}

type BulkResult struct {
	Succeeded int
	Failed    int
	Items     []BulkItem
}

// Get loads a profile with its linked user.
func (s *VerificationService) Get(profileID uuid.UUID) (*models.FreelancerProfile, error) {
	var profile models.FreelancerProfile
	err := s.DB.Preload("User").First(&profile, "id = ?", profileID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("%w: profile %s", services.ErrNotFound, profileID)
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListPending returns profiles awaiting review (pending or resubmitted),
// newest first.
func (s *VerificationService) ListPending() ([]models.FreelancerProfile, error) {
	var profiles []models.FreelancerProfile
	err := s.DB.Preload("User").
		Where("verification_status IN ?", models.PendingVerificationStatuses).
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

// Approve transitions a profile to approved and issues the freelancer ID.
// The status check, the uniqueness check and the writes happen inside one DB
// transaction with the profile row locked, so two concurrent approvals cannot
// both claim the same ID. Approving an already-approved profile is a no-op
// reported via AlreadyApproved.
func (s *VerificationService) Approve(profileID uuid.UUID, freelancerID string) (*ApproveResult, error) {
	freelancerID = strings.TrimSpace(freelancerID)
	if !freelancerIDPattern.MatchString(freelancerID) {
		return nil, fmt.Errorf("%w: freelancer ID must be two letters followed by at least 8 digits", services.ErrValidation)
	}

	res := &ApproveResult{}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var profile models.FreelancerProfile
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&profile, "id = ?", profileID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("%w: profile %s", services.ErrNotFound, profileID)
			}
			return err
		}

		if profile.VerificationStatus == models.VerificationApproved {
			res.Profile = &profile
			res.AlreadyApproved = true
			return nil
		}

		var existing models.FreelancerProfile
		err := tx.Where("freelancer_id = ? AND id <> ?", freelancerID, profileID).First(&existing).Error
		if err == nil {
			return fmt.Errorf("%w: freelancer ID %s already exists", services.ErrConflict, freelancerID)
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		updates := map[string]interface{}{
			"verification_status": models.VerificationApproved,
			"freelancer_id":       freelancerID,
			"rejection_reason":    "",
		}
		if err := tx.Model(&profile).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", profile.UserID).
			Update("is_verified", true).Error; err != nil {
			return err
		}

		profile.VerificationStatus = models.VerificationApproved
		profile.FreelancerID = &freelancerID
		profile.RejectionReason = ""
		res.Profile = &profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Reject transitions a profile to rejected, stores the reason and frees the
// freelancer ID for reuse. Rejecting an already-rejected profile is a no-op
// reported via AlreadyRejected.
func (s *VerificationService) Reject(profileID uuid.UUID, reason string) (*RejectResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", services.ErrValidation)
	}

	res := &RejectResult{}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var profile models.FreelancerProfile
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&profile, "id = ?", profileID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("%w: profile %s", services.ErrNotFound, profileID)
			}
			return err
		}

		if profile.VerificationStatus == models.VerificationRejected {
			res.Profile = &profile
			res.AlreadyRejected = true
			return nil
		}

		updates := map[string]interface{}{
			"verification_status": models.VerificationRejected,
			"rejection_reason":    reason,
			"freelancer_id":       nil,
		}
		if err := tx.Model(&profile).Updates(updates).Error; err != nil {
			return err
		}

		profile.VerificationStatus = models.VerificationRejected
		profile.RejectionReason = reason
		profile.FreelancerID = nil
		res.Profile = &profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// SplitFreelancerID splits an ID like FL2025001001 into its letter prefix and
// numeric part.
func SplitFreelancerID(id string) (prefix string, number int64, err error) {
	id = strings.TrimSpace(id)
	if !freelancerIDPattern.MatchString(id) {
		return "", 0, fmt.Errorf("%w: freelancer ID must be two letters followed by at least 8 digits", services.ErrValidation)
	}
	prefix = id[:2]
	number, err = strconv.ParseInt(id[2:], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", services.ErrValidation, err)
	}
	return prefix, number, nil
}

// BulkApprove approves every profile currently awaiting review, assigning
// sequential freelancer IDs starting at startID in retrieval order. The set
// is snapshotted up front; profiles submitted while the batch runs are not
// included. Each approval is attempted independently: a failure is tallied
// and does not abort the rest of the batch.
func (s *VerificationService) BulkApprove(startID string) (*BulkResult, error) {
	prefix, start, err := SplitFreelancerID(startID)
	if err != nil {
		return nil, err
	}

	profiles, err := s.ListPending()
	if err != nil {
		return nil, err
	}

	res := &BulkResult{}
	for i, p := range profiles {
		fid := fmt.Sprintf("%s%d", prefix, start+int64(i))
		item := BulkItem{ProfileID: p.ID, FullName: p.FullName, FreelancerID: fid}

		if _, err := s.Approve(p.ID, fid); err != nil {
			item.Err = err
			res.Failed++
			log.Printf("bulk approve: failed for %s (%s): %v", p.FullName, p.ID, err)
		} else {
			res.Succeeded++
		}
		res.Items = append(res.Items, item)
	}
	return res, nil
}

// BulkReject rejects every profile currently awaiting review with the same
// reason, with the same per-item failure isolation as BulkApprove.
func (s *VerificationService) BulkReject(reason string) (*BulkResult, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", services.ErrValidation)
	}

	profiles, err := s.ListPending()
	if err != nil {
		return nil, err
	}

	res := &BulkResult{}
	for _, p := range profiles {
		item := BulkItem{ProfileID: p.ID, FullName: p.FullName}

		if _, err := s.Reject(p.ID, reason); err != nil {
			item.Err = err
			res.Failed++
			log.Printf("bulk reject: failed for %s (%s): %v", p.FullName, p.ID, err)
		} else {
			res.Succeeded++
		}
		res.Items = append(res.Items, item)
	}
	return res, nil
}

// Stats counts profiles per verification status.
func (s *VerificationService) Stats() (map[models.VerificationStatus]int64, error) {
	type row struct {
		VerificationStatus models.VerificationStatus
		Count              int64
	}
	var rows []row
	err := s.DB.Model(&models.FreelancerProfile{}).
		Select("verification_status, count(*) as count").
		Group("verification_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make(map[models.VerificationStatus]int64, len(rows))
	for _, r := range rows {
		stats[r.VerificationStatus] = r.Count
	}
	return stats, nil
}
