package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/models"
)

type JobsHandler struct {
	DB *gorm.DB
}

func NewJobsHandler(db *gorm.DB) *JobsHandler {
	return &JobsHandler{DB: db}
}

// ListPublic is the flat filtered job listing: city, status and amount range
// filters over open, active jobs.
func (h *JobsHandler) ListPublic(c *fiber.Ctx) error {
	q := h.DB.Model(&models.Job{}).Where("is_active = ?", true)

	if city := c.Query("city"); city != "" {
		q = q.Where("address_city = ?", city)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	} else {
		q = q.Where("status = ?", models.JobOpen)
	}
	if min := c.QueryInt("min_amount"); min > 0 {
		q = q.Where("amount >= ?", min)
	}
	if max := c.QueryInt("max_amount"); max > 0 {
		q = q.Where("amount <= ?", max)
	}

	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	var jobs []models.Job
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "failed to fetch jobs")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"jobs": jobs},
	})
}

func (h *JobsHandler) StatsOverview(c *fiber.Ctx) error {
	var total, open, completed int64
	if err := h.DB.Model(&models.Job{}).Count(&total).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "failed to fetch stats")
	}
	h.DB.Model(&models.Job{}).Where("status = ? AND is_active = ?", models.JobOpen, true).Count(&open)
	h.DB.Model(&models.Job{}).Where("status = ?", models.JobCompleted).Count(&completed)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"totalJobs":     total,
			"openJobs":      open,
			"completedJobs": completed,
		},
	})
}
