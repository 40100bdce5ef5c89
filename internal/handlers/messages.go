package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/models"
)

// MessagesHandler stores and lists messages between two users. There is no
// realtime delivery; clients poll the conversation endpoint.
type MessagesHandler struct {
	DB *gorm.DB
}

func NewMessagesHandler(db *gorm.DB) *MessagesHandler {
	return &MessagesHandler{DB: db}
}

type SendMessageReq struct {
	ReceiverID string `json:"receiver_id"`
	JobID      string `json:"job_id"`
	Text       string `json:"text"`
}

func (h *MessagesHandler) Send(c *fiber.Ctx) error {
	uid, ok := currentUserUUID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req SendMessageReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return fail(c, fiber.StatusBadRequest, "text is required")
	}

	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid receiver ID")
	}

	var receiver models.User
	if err := h.DB.First(&receiver, "id = ?", receiverID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "receiver not found")
	}

	msg := models.Message{
		SenderID:   uid,
		ReceiverID: receiverID,
		Text:       req.Text,
	}
	if req.JobID != "" {
		jobID, err := uuid.Parse(req.JobID)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "invalid job ID")
		}
		msg.JobID = &jobID
	}

	if err := h.DB.Create(&msg).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "failed to send message")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"message": msg},
	})
}

// Conversation lists messages between the caller and the other user, oldest
// first, and marks the received ones read.
func (h *MessagesHandler) Conversation(c *fiber.Ctx) error {
	uid, ok := currentUserUUID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid user ID")
	}

	var msgs []models.Message
	err = h.DB.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		uid, otherID, otherID, uid,
	).Order("created_at ASC").Find(&msgs).Error
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "failed to fetch messages")
	}

	h.DB.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", otherID, uid, false).
		Update("is_read", true)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"messages": msgs},
	})
}
