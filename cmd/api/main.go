package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/config"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/db"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/handlers"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/middleware"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/models"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/otp"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/stats"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/verification"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/wallet"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/withdrawal"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("redis not reachable:", err)
	}

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.ClientProfile{},
		&models.FreelancerProfile{},
		&models.Wallet{},
		&models.WalletTransaction{},
		&models.Transaction{},
		&models.Job{},
		&models.Offer{},
		&models.Message{},
	); err != nil {
		log.Fatal(err)
	}

	otpStore := otp.NewStore(rdb, time.Duration(cfg.OTPTTLMin)*time.Minute)

	walletSvc := wallet.NewWalletService(gdb)
	verificationSvc := verification.NewVerificationService(gdb)
	withdrawalSvc := withdrawal.NewWithdrawalService(gdb, walletSvc)
	statsSvc := stats.NewStatsService(gdb)

	authH := &handlers.AuthHandler{
		DB:        gdb,
		OTP:       otpStore,
		JWTSecret: cfg.JWTSecret,
		Expires:   cfg.JWTExpiresMin,
	}
	googleH := &handlers.GoogleOAuthHandler{
		DB:              gdb,
		JWTSecret:       cfg.JWTSecret,
		Expires:         cfg.JWTExpiresMin,
		GoogleClientID:  cfg.GoogleClientID,
		GoogleSecret:    cfg.GoogleSecret,
		GoogleRedirect:  cfg.GoogleRedirect,
		FrontendBaseURL: cfg.FrontendBaseURL,
	}
	jobsH := handlers.NewJobsHandler(gdb)
	clientH := handlers.NewClientHandler(gdb)
	freelancerH := handlers.NewFreelancerHandler(gdb, walletSvc)
	messagesH := handlers.NewMessagesHandler(gdb)
	adminH := handlers.NewAdminHandler(verificationSvc, withdrawalSvc, statsSvc)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://127.0.0.1:3000, http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	app.Options("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	app.Static("/uploads", "./uploads")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": "ok"})
	})

	api := app.Group("/api")

	// public
	otpLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
	})
	api.Post("/auth/send-otp", otpLimiter, authH.SendOTP)
	api.Post("/auth/verify-otp", authH.VerifyOTP)
	api.Post("/auth/admin/login", authH.AdminLogin)
	api.Get("/auth/google/start", googleH.GoogleStart)
	api.Get("/auth/google/callback", googleH.GoogleCallback)
	api.Get("/jobs", jobsH.ListPublic)
	api.Get("/jobs/stats/overview", jobsH.StatsOverview)

	// protected (JWT)
	protected := api.Group("/",
		middleware.JWTFromHeader(cfg.JWTSecret),
		middleware.AttachJWTLocals(),
	)

	protected.Get("/me", func(c *fiber.Ctx) error {
		uid := c.Locals("userId")

		var user models.User
		if err := gdb.First(&user, "id = ?", uid).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "user not found",
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"id":          user.ID,
				"phone":       user.Phone,
				"name":        user.Name,
				"email":       user.Email,
				"role":        user.Role,
				"is_verified": user.IsVerified,
			},
		})
	})

	// client only
	client := protected.Group("/client", middleware.RequireRoles("client"))
	client.Get("/profile", clientH.GetProfile)
	client.Put("/profile", clientH.UpdateProfile)
	client.Post("/jobs", clientH.CreateJob)
	client.Get("/jobs", clientH.ListJobs)
	client.Get("/jobs/:id/offers", clientH.JobOffers)
	client.Post("/offers/:id/accept", clientH.AcceptOffer)

	// freelancer only
	freelancer := protected.Group("/freelancer", middleware.RequireRoles("freelancer"))
	freelancer.Get("/profile", freelancerH.GetProfile)
	freelancer.Put("/profile", freelancerH.UpdateProfile)
	freelancer.Get("/jobs/available", freelancerH.AvailableJobs)
	freelancer.Post("/jobs/:id/apply", freelancerH.Apply)
	freelancer.Get("/wallet", freelancerH.Wallet)
	freelancer.Post("/wallet/withdraw", freelancerH.RequestWithdrawal)
	freelancer.Get("/withdrawals", freelancerH.ListWithdrawals)

	// any authenticated user
	protected.Post("/messages", messagesH.Send)
	protected.Get("/messages/:userId", messagesH.Conversation)

	// admin only
	admin := protected.Group("/admin", middleware.RequireRoles("admin"))
	admin.Get("/verifications/pending", adminH.PendingVerifications)
	admin.Post("/verifications/:id/approve", adminH.ApproveVerification)
	admin.Post("/verifications/:id/reject", adminH.RejectVerification)
	admin.Post("/verifications/bulk-approve", adminH.BulkApproveVerifications)
	admin.Post("/verifications/bulk-reject", adminH.BulkRejectVerifications)
	admin.Get("/withdrawals/pending", adminH.PendingWithdrawals)
	admin.Post("/withdrawals/:id/approve", adminH.ApproveWithdrawal)
	admin.Post("/withdrawals/:id/reject", adminH.RejectWithdrawal)
	admin.Get("/stats", adminH.PlatformStats)

	log.Fatal(app.Listen(":" + cfg.AppPort))
}
