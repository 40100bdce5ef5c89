package stats

import (
	"gorm.io/gorm"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/models"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

type PlatformStats struct {
	TotalUsers          int64 `json:"total_users"`
	TotalClients        int64 `json:"total_clients"`
	TotalFreelancers    int64 `json:"total_freelancers"`
	VerifiedFreelancers int64 `json:"verified_freelancers"`

	TotalJobs     int64 `json:"total_jobs"`
	OpenJobs      int64 `json:"open_jobs"`
	CompletedJobs int64 `json:"completed_jobs"`

	TotalTransactions  int64 `json:"total_transactions"`
	PendingWithdrawals int64 `json:"pending_withdrawals"`
}

func (s *StatsService) Platform() (*PlatformStats, error) {
	var st PlatformStats

	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&st.TotalUsers, s.DB.Model(&models.User{})},
		{&st.TotalClients, s.DB.Model(&models.User{}).Where("role = ?", models.RoleClient)},
		{&st.TotalFreelancers, s.DB.Model(&models.User{}).Where("role = ?", models.RoleFreelancer)},
		{&st.VerifiedFreelancers, s.DB.Model(&models.FreelancerProfile{}).Where("verification_status = ?", models.VerificationApproved)},
		{&st.TotalJobs, s.DB.Model(&models.Job{})},
		{&st.OpenJobs, s.DB.Model(&models.Job{}).Where("status = ? AND is_active = ?", models.JobOpen, true)},
		{&st.CompletedJobs, s.DB.Model(&models.Job{}).Where("status = ?", models.JobCompleted)},
		{&st.TotalTransactions, s.DB.Model(&models.Transaction{})},
		{&st.PendingWithdrawals, s.DB.Model(&models.Transaction{}).Where("type = ? AND status = ?", models.TransactionWithdrawal, models.TransactionPending)},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &st, nil
}
