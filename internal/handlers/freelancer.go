package handlers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/models"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/wallet"
)

type FreelancerHandler struct {
	DB            *gorm.DB
	WalletService *wallet.WalletService
}

func NewFreelancerHandler(db *gorm.DB, ws *wallet.WalletService) *FreelancerHandler {
	return &FreelancerHandler{DB: db, WalletService: ws}
}

func (h *FreelancerHandler) GetProfile(c *fiber.Ctx) error {
	uid, ok := currentUserUUID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var profile models.FreelancerProfile
	if err := h.DB.Where("user_id = ?", uid).First(&profile).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "profile not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"profile": profile},
	})
}

type FreelancerProfileReq struct {
	FullName    string            `json:"full_name"`
	DateOfBirth string            `json:"date_of_birth"` // 2006-01-02
	Gender      string            `json:"gender"`
	Address     models.Address    `json:"address"`
	Documents   map[string]string `json:"documents"`
}

// UpdateProfile upserts the freelancer profile and submits it for review. A
// first submission goes to pending; an edit after rejection goes to
// resubmitted. Approved profiles are not reopened by edits.
func (h *FreelancerHandler) UpdateProfile(c *fiber.Ctx) error {
	uid, ok := currentUserUUID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req FreelancerProfileReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return fail(c, fiber.StatusBadRequest, "full name is required")
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
	}

	docs := datatypes.JSONMap{}
	for k, v := range req.Documents {
		docs[k] = v
	}

	var profile models.FreelancerProfile
	err = h.DB.Where("user_id = ?", uid).First(&profile).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		profile = models.FreelancerProfile{
			UserID:             uid,
			FullName:           req.FullName,
			DateOfBirth:        dob,
			Gender:             req.Gender,
			Address:            req.Address,
			Documents:          docs,
			VerificationStatus: models.VerificationPending,
			IsProfileComplete:  true,
		}
		if err := h.DB.Create(&profile).Error; err != nil {
			log.Println("failed to create freelancer profile:", err)
			return fail(c, fiber.StatusInternalServerError, "failed to save profile")
		}
		// Every freelancer gets a wallet with the profile.
		if err := h.DB.Create(&models.Wallet{UserID: uid}).Error; err != nil {
			log.Println("failed to create wallet:", err)
		}
	case err != nil:
		return fail(c, fiber.StatusInternalServerError, "internal server error")
	default:
		updates := map[string]interface{}{
			"full_name":           req.FullName,
			"date_of_birth":       dob,
			"gender":              req.Gender,
			"documents":           docs,
			"is_profile_complete": true,
		}
		updates["address_street"] = req.Address.Street
		updates["address_city"] = req.Address.City
		updates["address_state"] = req.Address.State
		updates["address_pincode"] = req.Address.Pincode

		if profile.VerificationStatus == models.VerificationRejected {
			updates["verification_status"] = models.VerificationResubmitted
			updates["rejection_reason"] = ""
		}
		if err := h.DB.Model(&profile).Updates(updates).Error; err != nil {
			return fail(c, fiber.StatusInternalServerError, "failed to save profile")
		}
		h.DB.Where("user_id = ?", uid).First(&profile)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile submitted for verification",
		"data":    fiber.Map{"profile": profile},
	})
}

func (h *FreelancerHandler) AvailableJobs(c *fiber.Ctx) error {
	var jobs []models.Job
	err := h.DB.Preload("Client").
		Where("status = ? AND is_active = ?", models.JobOpen, true).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "failed to fetch jobs")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"jobs": jobs},
	})
}

type ApplyReq struct {
	OfferedAmount int64  `json:"offered_amount"`
	Message       string `json:"message"`
	OfferType     string `json:"offer_type"` // direct_apply / custom_offer
}

func (h *FreelancerHandler) Apply(c *fiber.Ctx) error {
	uid, ok := currentUserUUID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid job ID")
	}

	var req ApplyReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}

	var profile models.FreelancerProfile
	if err := h.DB.Where("user_id = ?", uid).First(&profile).Error; err != nil {
		return fail(c, fiber.StatusForbidden, "complete your profile before applying")
	}
	if profile.VerificationStatus != models.VerificationApproved {
		return fail(c, fiber.StatusForbidden, "only verified freelancers can apply")
	}

	var job models.Job
	if err := h.DB.First(&job, "id = ?", jobID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "job not found")
	}
	if job.Status != models.JobOpen || !job.IsActive {
		return fail(c, fiber.StatusConflict, "job is not open")
	}

	var existing models.Offer
	err = h.DB.Where("job_id = ? AND freelancer_id = ? AND status = ?", jobID, uid, models.OfferPending).
		First(&existing).Error
	if err == nil {
		return fail(c, fiber.StatusConflict, "you already have a pending offer on this job")
	}

	offerType := models.OfferType(req.OfferType)
	if offerType != models.OfferCustom {
		offerType = models.OfferDirectApply
	}
	amount := req.OfferedAmount
	if offerType == models.OfferDirectApply || amount <= 0 {
		amount = job.Amount
	}

	offer := models.Offer{
		JobID:          jobID,
		FreelancerID:   uid,
		ClientID:       job.ClientID,
		OriginalAmount: job.Amount,
		OfferedAmount:  amount,
		Message:        req.Message,
		Status:         models.OfferPending,
		OfferType:      offerType,
	}
	if err := h.DB.Create(&offer).Error; err != nil {
		log.Println("failed to create offer:", err)
		return fail(c, fiber.StatusInternalServerError, "failed to submit application")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Application submitted",
		"data":    fiber.Map{"offer": offer},
	})
}

func (h *FreelancerHandler) Wallet(c *fiber.Ctx) error {
	uid, ok := currentUserUUID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	w, err := h.WalletService.Balance(uid)
	if err != nil {
		return serviceError(c, err)
	}

	var ledger []models.WalletTransaction
	h.DB.Where("user_id = ?", uid).Order("created_at DESC").Limit(20).Find(&ledger)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"wallet":       w,
			"transactions": ledger,
		},
	})
}

type WithdrawReq struct {
	Amount      int64              `json:"amount"`
	BankDetails models.BankDetails `json:"bank_details"`
}

// RequestWithdrawal debits the wallet and records a pending withdrawal for
// manual admin settlement. The debit happens here, at request time, so the
// balance always reflects funds earmarked; admin rejection credits it back.
func (h *FreelancerHandler) RequestWithdrawal(c *fiber.Ctx) error {
	uid, ok := currentUserUUID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req WithdrawReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}
	if req.Amount <= 0 {
		return fail(c, fiber.StatusBadRequest, "amount must be positive")
	}
	if req.BankDetails.AccountNumber == "" || req.BankDetails.IFSCCode == "" || req.BankDetails.AccountHolderName == "" {
		return fail(c, fiber.StatusBadRequest, "complete bank details are required")
	}

	var pending models.Transaction
	err := h.DB.Where("freelancer_id = ? AND type = ? AND status = ?",
		uid, models.TransactionWithdrawal, models.TransactionPending).
		First(&pending).Error
	if err == nil {
		return fail(c, fiber.StatusConflict, "you already have a pending withdrawal")
	}

	trx := models.Transaction{
		ID:            uuid.New(),
		FreelancerID:  uid,
		Amount:        req.Amount,
		Type:          models.TransactionWithdrawal,
		Status:        models.TransactionPending,
		Description:   "Withdrawal request",
		PaymentMethod: "bank_transfer",
		BankDetails:   req.BankDetails,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.WalletService.Debit(tx, uid, req.Amount, trx.ID, "Withdrawal request"); err != nil {
			return err
		}
		return tx.Create(&trx).Error
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Withdrawal requested, pending admin approval",
		"data":    fiber.Map{"transaction": trx},
	})
}

func (h *FreelancerHandler) ListWithdrawals(c *fiber.Ctx) error {
	uid, ok := currentUserUUID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var trxs []models.Transaction
	err := h.DB.Where("freelancer_id = ? AND type = ?", uid, models.TransactionWithdrawal).
		Order("created_at DESC").
		Find(&trxs).Error
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "failed to fetch withdrawals")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"withdrawals": trxs},
	})
}
