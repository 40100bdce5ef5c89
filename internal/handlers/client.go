package handlers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/models"
)

type ClientHandler struct {
	DB *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{DB: db}
}

func (h *ClientHandler) GetProfile(c *fiber.Ctx) error {
	uid, ok := currentUserUUID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var profile models.ClientProfile
	if err := h.DB.Where("user_id = ?", uid).First(&profile).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "profile not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"profile": profile},
	})
}

type ClientProfileReq struct {
	FullName    string         `json:"full_name"`
	DateOfBirth string         `json:"date_of_birth"`
	Gender      string         `json:"gender"`
	Address     models.Address `json:"address"`
}

func (h *ClientHandler) UpdateProfile(c *fiber.Ctx) error {
	uid, ok := currentUserUUID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req ClientProfileReq
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

	var profile models.ClientProfile
	err = h.DB.Where("user_id = ?", uid).First(&profile).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		profile = models.ClientProfile{
			UserID:            uid,
			FullName:          req.FullName,
			DateOfBirth:       dob,
			Gender:            req.Gender,
			Address:           req.Address,
			IsProfileComplete: true,
		}
		if err := h.DB.Create(&profile).Error; err != nil {
			log.Println("failed to create client profile:", err)
			return fail(c, fiber.StatusInternalServerError, "failed to save profile")
		}
	case err != nil:
		return fail(c, fiber.StatusInternalServerError, "internal server error")
	default:
		updates := map[string]interface{}{
			"full_name":           req.FullName,
			"date_of_birth":       dob,
			"gender":              req.Gender,
			"address_street":      req.Address.Street,
			"address_city":        req.Address.City,
			"address_state":       req.Address.State,
			"address_pincode":     req.Address.Pincode,
			"is_profile_complete": true,
		}
		if err := h.DB.Model(&profile).Updates(updates).Error; err != nil {
			return fail(c, fiber.StatusInternalServerError, "failed to save profile")
		}
		h.DB.Where("user_id = ?", uid).First(&profile)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile saved",
		"data":    fiber.Map{"profile": profile},
	})
}

type CreateJobReq struct {
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Amount           int64          `json:"amount"`
	NumberOfPeople   int            `json:"number_of_people"`
	Address          models.Address `json:"address"`
	GenderPreference string         `json:"gender_preference"`
}

func (h *ClientHandler) CreateJob(c *fiber.Ctx) error {
	uid, ok := currentUserUUID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req CreateJobReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return fail(c, fiber.StatusBadRequest, "title and description are required")
	}
	if req.Amount <= 0 {
		return fail(c, fiber.StatusBadRequest, "amount must be positive")
	}

	people := req.NumberOfPeople
	if people < 1 {
		people = 1
	}
	pref := req.GenderPreference
	if pref != "male" && pref != "female" {
		pref = "any"
	}

	job := models.Job{
		ClientID:         uid,
		Title:            req.Title,
		Description:      req.Description,
		Amount:           req.Amount,
		NumberOfPeople:   people,
		Address:          req.Address,
		GenderPreference: pref,
		Status:           models.JobOpen,
		IsActive:         true,
	}
	if err := h.DB.Create(&job).Error; err != nil {
		log.Println("failed to create job:", err)
		return fail(c, fiber.StatusInternalServerError, "failed to post job")
	}

	h.DB.Model(&models.ClientProfile{}).
		Where("user_id = ?", uid).
		Update("total_jobs_posted", gorm.Expr("total_jobs_posted + 1"))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Job posted",
		"data":    fiber.Map{"job": job},
	})
}

func (h *ClientHandler) ListJobs(c *fiber.Ctx) error {
	uid, ok := currentUserUUID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var jobs []models.Job
	err := h.DB.Where("client_id = ?", uid).
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

func (h *ClientHandler) JobOffers(c *fiber.Ctx) error {
	uid, ok := currentUserUUID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid job ID")
	}

	var job models.Job
	if err := h.DB.First(&job, "id = ? AND client_id = ?", jobID, uid).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "job not found")
	}

	var offers []models.Offer
	err = h.DB.Preload("Freelancer").Preload("Freelancer.FreelancerProfile").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&offers).Error
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "failed to fetch offers")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"offers": offers},
	})
}

// AcceptOffer assigns the job to the offer's freelancer and rejects the
// sibling pending offers, all in one transaction.
func (h *ClientHandler) AcceptOffer(c *fiber.Ctx) error {
	uid, ok := currentUserUUID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	offerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid offer ID")
	}

	var accepted models.Offer
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var offer models.Offer
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&offer, "id = ?", offerID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "offer not found")
		}
		if offer.ClientID != uid {
			return fiber.NewError(fiber.StatusForbidden, "only the job owner can accept offers")
		}
		if offer.Status != models.OfferPending {
			return fiber.NewError(fiber.StatusConflict, "offer is not pending")
		}

		var job models.Job
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&job, "id = ?", offer.JobID).Error; err != nil {
			return err
		}
		if job.Status != models.JobOpen {
			return fiber.NewError(fiber.StatusConflict, "job is not open")
		}

		now := time.Now()
		if err := tx.Model(&offer).Updates(map[string]interface{}{
			"status":           models.OfferAccepted,
			"responded_at":     now,
			"response_message": "Accepted",
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&job).Updates(map[string]interface{}{
			"status":        models.JobAssigned,
			"freelancer_id": offer.FreelancerID,
			"assigned_at":   now,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Offer{}).
			Where("job_id = ? AND id <> ? AND status = ?", job.ID, offer.ID, models.OfferPending).
			Updates(map[string]interface{}{
				"status":           models.OfferRejected,
				"responded_at":     now,
				"response_message": "Another offer was accepted",
			}).Error; err != nil {
			return err
		}

		offer.Status = models.OfferAccepted
		accepted = offer
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fail(c, fe.Code, fe.Message)
		}
		log.Println("failed to accept offer:", err)
		return fail(c, fiber.StatusInternalServerError, "failed to accept offer")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Offer accepted",
		"data":    fiber.Map{"offer": accepted},
	})
}
