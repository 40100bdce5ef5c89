package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/models"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/otp"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/utils"
)

type AuthHandler struct {
	DB        *gorm.DB
	OTP       *otp.Store
	JWTSecret string
	Expires   int
}

type SendOTPReq struct {
	Phone string `json:"phone"`
}

// SendOTP issues a one-time code for the phone. Delivery via an SMS provider
// is out of scope; the code is logged for development.
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var req SendOTPReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}

	phone := strings.TrimSpace(req.Phone)
	if len(phone) < 8 {
		return fail(c, fiber.StatusBadRequest, "valid phone number is required")
	}

	code, err := h.OTP.Issue(c.Context(), phone)
	if err != nil {
		log.Println("failed to issue OTP:", err)
		return fail(c, fiber.StatusInternalServerError, "failed to send OTP")
	}
	log.Printf("OTP for %s: %s", phone, code)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP sent",
	})
}

type VerifyOTPReq struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
	Role  string `json:"role"` // client / freelancer, used on first login only
}

// VerifyOTP checks the code and logs the user in, creating the account on
// first successful authentication.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req VerifyOTPReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}

	phone := strings.TrimSpace(req.Phone)
	code := strings.TrimSpace(req.OTP)
	role := strings.ToLower(strings.TrimSpace(req.Role))

	if phone == "" || code == "" {
		return fail(c, fiber.StatusBadRequest, "phone and otp are required")
	}
	if role != string(models.RoleClient) && role != string(models.RoleFreelancer) {
		return fail(c, fiber.StatusBadRequest, "role must be client or freelancer")
	}

	ok, err := h.OTP.Verify(c.Context(), phone, code)
	if err != nil {
		log.Println("failed to verify OTP:", err)
		return fail(c, fiber.StatusInternalServerError, "failed to verify OTP")
	}
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "invalid or expired OTP")
	}

	var u models.User
	err = h.DB.Where("phone = ?", phone).First(&u).Error
	if err == gorm.ErrRecordNotFound {
		u = models.User{
			Phone:    phone,
			Role:     models.Role(role),
			IsActive: true,
		}
		if err := h.DB.Create(&u).Error; err != nil {
			log.Println("failed to create user:", err)
			return fail(c, fiber.StatusInternalServerError, "failed to create account")
		}
	} else if err != nil {
		return fail(c, fiber.StatusInternalServerError, "internal server error")
	}

	if !u.IsActive {
		return fail(c, fiber.StatusForbidden, "account is deactivated")
	}

	token, err := utils.SignJWT(h.JWTSecret, u.ID.String(), string(u.Role), h.Expires)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "failed to create token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data": fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":          u.ID,
				"phone":       u.Phone,
				"role":        u.Role,
				"is_verified": u.IsVerified,
			},
		},
	})
}

type AdminLoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req AdminLoginReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" {
		return fail(c, fiber.StatusBadRequest, "email and password are required")
	}

	var u models.User
	err := h.DB.Where("email = ? AND role = ?", email, models.RoleAdmin).First(&u).Error
	if err != nil || !utils.CheckPassword(u.Password, password) {
		return fail(c, fiber.StatusUnauthorized, "invalid email or password")
	}
	if !u.IsActive {
		return fail(c, fiber.StatusForbidden, "account is deactivated")
	}

	token, err := utils.SignJWT(h.JWTSecret, u.ID.String(), string(u.Role), h.Expires)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "failed to create token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data": fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":    u.ID,
				"email": u.Email,
				"role":  u.Role,
			},
		},
	})
}
