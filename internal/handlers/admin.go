package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/stats"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/verification"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/withdrawal"
)

// AdminHandler exposes the same verification and withdrawal workflow the CLI
// drives, over HTTP.
type AdminHandler struct {
	Verifications *verification.VerificationService
	Withdrawals   *withdrawal.WithdrawalService
	Stats         *stats.StatsService
}

func NewAdminHandler(v *verification.VerificationService, w *withdrawal.WithdrawalService, s *stats.StatsService) *AdminHandler {
	return &AdminHandler{Verifications: v, Withdrawals: w, Stats: s}
}

func (h *AdminHandler) PendingVerifications(c *fiber.Ctx) error {
	profiles, err := h.Verifications.ListPending()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"verifications": profiles},
	})
}

type ApproveVerificationReq struct {
	FreelancerID string `json:"freelancer_id"`
}

func (h *AdminHandler) ApproveVerification(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid profile ID")
	}

	var req ApproveVerificationReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}

	res, err := h.Verifications.Approve(profileID, req.FreelancerID)
	if err != nil {
		return serviceError(c, err)
	}

	msg := "Verification approved"
	if res.AlreadyApproved {
		msg = "Verification is already approved"
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": msg,
		"data":    fiber.Map{"profile": res.Profile},
	})
}

type RejectReq struct {
	Reason string `json:"reason"`
}

func (h *AdminHandler) RejectVerification(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid profile ID")
	}

	var req RejectReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}

	res, err := h.Verifications.Reject(profileID, req.Reason)
	if err != nil {
		return serviceError(c, err)
	}

	msg := "Verification rejected"
	if res.AlreadyRejected {
		msg = "Verification is already rejected"
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": msg,
		"data":    fiber.Map{"profile": res.Profile},
	})
}

type BulkApproveReq struct {
	StartFreelancerID string `json:"start_freelancer_id"`
}

func (h *AdminHandler) BulkApproveVerifications(c *fiber.Ctx) error {
	var req BulkApproveReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}

	res, err := h.Verifications.BulkApprove(req.StartFreelancerID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    bulkResultMap(res),
	})
}

func (h *AdminHandler) BulkRejectVerifications(c *fiber.Ctx) error {
	var req RejectReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}

	res, err := h.Verifications.BulkReject(req.Reason)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    bulkResultMap(res),
	})
}

func bulkResultMap(res *verification.BulkResult) fiber.Map {
	items := make([]fiber.Map, 0, len(res.Items))
	for _, it := range res.Items {
		m := fiber.Map{
			"profile_id": it.ProfileID,
			"full_name":  it.FullName,
		}
		if it.FreelancerID != "" {
			m["freelancer_id"] = it.FreelancerID
		}
		if it.Err != nil {
			m["error"] = it.Err.Error()
		}
		items = append(items, m)
	}
	return fiber.Map{
		"succeeded": res.Succeeded,
		"failed":    res.Failed,
		"items":     items,
	}
}

func (h *AdminHandler) PendingWithdrawals(c *fiber.Ctx) error {
	trxs, err := h.Withdrawals.ListPending()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"withdrawals": trxs},
	})
}

func (h *AdminHandler) ApproveWithdrawal(c *fiber.Ctx) error {
	trxID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid transaction ID")
	}

	res, err := h.Withdrawals.Approve(trxID)
	if err != nil {
		return serviceError(c, err)
	}

	msg := "Withdrawal approved; transfer the funds manually"
	if res.AlreadyApproved {
		msg = "Withdrawal is already approved"
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": msg,
		"data":    fiber.Map{"transaction": res.Transaction},
	})
}

func (h *AdminHandler) RejectWithdrawal(c *fiber.Ctx) error {
	trxID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid transaction ID")
	}

	var req RejectReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}

	res, err := h.Withdrawals.Reject(trxID, req.Reason)
	if err != nil {
		return serviceError(c, err)
	}

	msg := "Withdrawal rejected"
	switch {
	case res.AlreadyRejected:
		msg = "Withdrawal is already rejected"
	case res.Refunded:
		msg = "Withdrawal rejected, amount refunded to wallet"
	default:
		msg = "Withdrawal rejected; wallet missing, refund skipped"
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": msg,
		"data":    fiber.Map{"transaction": res.Transaction},
	})
}

func (h *AdminHandler) PlatformStats(c *fiber.Ctx) error {
	st, err := h.Stats.Platform()
	if err != nil {
		return serviceError(c, err)
	}

	verStats, err := h.Verifications.Stats()
	if err != nil {
		return serviceError(c, err)
	}
	byStatus := fiber.Map{}
	for status, count := range verStats {
		byStatus[string(status)] = count
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"users": fiber.Map{
				"total":       st.TotalUsers,
				"clients":     st.TotalClients,
				"freelancers": st.TotalFreelancers,
				"verified":    st.VerifiedFreelancers,
			},
			"jobs": fiber.Map{
				"total":     st.TotalJobs,
				"open":      st.OpenJobs,
				"completed": st.CompletedJobs,
			},
			"transactions": fiber.Map{
				"total":               st.TotalTransactions,
				"pending_withdrawals": st.PendingWithdrawals,
			},
			"verifications": byStatus,
		},
	})
}
