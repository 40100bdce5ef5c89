// Command seed wipes and repopulates the database with a small demo dataset:
// one admin, two clients, three freelancers (two approved, one under review),
// funded wallets, open jobs, offers and a settled withdrawal.
package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/config"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/db"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/models"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/utils"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
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

	if err := gdb.Transaction(seed); err != nil {
		log.Fatal("seed failed:", err)
	}
	log.Println("seed complete")
	log.Println("admin login: admin@freelancingplatform.com / admin123")
}

func seed(tx *gorm.DB) error {
	// Order matters for the foreign keys.
	for _, m := range []interface{}{
		&models.Message{},
		&models.Offer{},
		&models.WalletTransaction{},
		&models.Transaction{},
		&models.Job{},
		&models.Wallet{},
		&models.FreelancerProfile{},
		&models.ClientProfile{},
		&models.User{},
	} {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return err
		}
	}

	adminPassword, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}
	adminEmail := "admin@freelancingplatform.com"
	admin := models.User{
		ID:         uuid.New(),
		Phone:      "9999999999",
		Name:       "Platform Admin",
		Email:      &adminEmail,
		Password:   adminPassword,
		Role:       models.RoleAdmin,
		IsVerified: true,
		IsActive:   true,
	}
	if err := tx.Create(&admin).Error; err != nil {
		return err
	}

	clients := []models.User{
		{ID: uuid.New(), Phone: "9000000001", Name: "Ramesh Gupta", Role: models.RoleClient, IsActive: true},
		{ID: uuid.New(), Phone: "9000000002", Name: "Sunita Sharma", Role: models.RoleClient, IsActive: true},
	}
	if err := tx.Create(&clients).Error; err != nil {
		return err
	}

	clientProfiles := []models.ClientProfile{
		{
			UserID:      clients[0].ID,
			FullName:    "Ramesh Gupta",
			DateOfBirth: date(1985, 3, 12),
			Gender:      "male",
			Address: models.Address{
				Street: "14 MG Road", City: "Mumbai", State: "Maharashtra", Pincode: "400001",
			},
			IsProfileComplete: true,
		},
		{
			UserID:      clients[1].ID,
			FullName:    "Sunita Sharma",
			DateOfBirth: date(1990, 7, 25),
			Gender:      "female",
			Address: models.Address{
				Street: "5 Park Street", City: "Delhi", State: "Delhi", Pincode: "110001",
			},
			IsProfileComplete: true,
		},
	}
	if err := tx.Create(&clientProfiles).Error; err != nil {
		return err
	}

	freelancers := []models.User{
		{ID: uuid.New(), Phone: "8000000001", Name: "Arjun Verma", Role: models.RoleFreelancer, IsVerified: true, IsActive: true},
		{ID: uuid.New(), Phone: "8000000002", Name: "Priya Singh", Role: models.RoleFreelancer, IsVerified: true, IsActive: true},
		{ID: uuid.New(), Phone: "8000000003", Name: "Kiran Patel", Role: models.RoleFreelancer, IsActive: true},
	}
	if err := tx.Create(&freelancers).Error; err != nil {
		return err
	}

	fid1, fid2 := "FL2025001001", "FL2025001002"
	profiles := []models.FreelancerProfile{
		{
			UserID:      freelancers[0].ID,
			FullName:    "Arjun Verma",
			DateOfBirth: date(1995, 1, 18),
			Gender:      "male",
			Address: models.Address{
				Street: "22 Nehru Nagar", City: "Mumbai", State: "Maharashtra", Pincode: "400012",
			},
			Documents: datatypes.JSONMap{
				"aadhaar_front": "/uploads/demo/arjun_aadhaar.jpg",
				"selfie":        "/uploads/demo/arjun_selfie.jpg",
			},
			VerificationStatus: models.VerificationApproved,
			FreelancerID:       &fid1,
			IsProfileComplete:  true,
			Rating:             4.6,
			TotalJobs:          12,
			CompletedJobs:      11,
			TotalEarnings:      5400,
		},
		{
			UserID:      freelancers[1].ID,
			FullName:    "Priya Singh",
			DateOfBirth: date(1997, 9, 2),
			Gender:      "female",
			Address: models.Address{
				Street: "8 Lake View", City: "Delhi", State: "Delhi", Pincode: "110034",
			},
			Documents: datatypes.JSONMap{
				"aadhaar_front": "/uploads/demo/priya_aadhaar.jpg",
				"selfie":        "/uploads/demo/priya_selfie.jpg",
			},
			VerificationStatus: models.VerificationApproved,
			FreelancerID:       &fid2,
			IsProfileComplete:  true,
			Rating:             4.9,
			TotalJobs:          20,
			CompletedJobs:      20,
			TotalEarnings:      9100,
		},
		{
			UserID:      freelancers[2].ID,
			FullName:    "Kiran Patel",
			DateOfBirth: date(1999, 11, 30),
			Gender:      "male",
			Address: models.Address{
				Street: "3 Gandhi Chowk", City: "Ahmedabad", State: "Gujarat", Pincode: "380001",
			},
			Documents: datatypes.JSONMap{
				"aadhaar_front": "/uploads/demo/kiran_aadhaar.jpg",
				"selfie":        "/uploads/demo/kiran_selfie.jpg",
			},
			VerificationStatus: models.VerificationUnderReview,
			IsProfileComplete:  true,
		},
	}
	if err := tx.Create(&profiles).Error; err != nil {
		return err
	}

	wallets := []models.Wallet{
		{UserID: freelancers[0].ID, Balance: 1200},
		{UserID: freelancers[1].ID, Balance: 800},
		{UserID: freelancers[2].ID, Balance: 0},
	}
	if err := tx.Create(&wallets).Error; err != nil {
		return err
	}

	jobs := []models.Job{
		{
			ID:             uuid.New(),
			ClientID:       clients[0].ID,
			Title:          "Help moving apartment furniture",
			Description:    "Need two people for half a day to move furniture to a new flat nearby.",
			Amount:         1500,
			NumberOfPeople: 2,
			Address: models.Address{
				Street: "14 MG Road", City: "Mumbai", State: "Maharashtra", Pincode: "400001",
			},
			GenderPreference: "any",
			Status:           models.JobOpen,
			IsActive:         true,
		},
		{
			ID:             uuid.New(),
			ClientID:       clients[0].ID,
			Title:          "Garden cleanup",
			Description:    "One-time backyard weeding and cleanup, tools provided.",
			Amount:         600,
			NumberOfPeople: 1,
			Address: models.Address{
				Street: "14 MG Road", City: "Mumbai", State: "Maharashtra", Pincode: "400001",
			},
			GenderPreference: "any",
			Status:           models.JobOpen,
			IsActive:         true,
		},
		{
			ID:             uuid.New(),
			ClientID:       clients[1].ID,
			Title:          "Cook for a family dinner",
			Description:    "Prepare dinner for eight guests on Saturday evening.",
			Amount:         1000,
			NumberOfPeople: 1,
			Address: models.Address{
				Street: "5 Park Street", City: "Delhi", State: "Delhi", Pincode: "110001",
			},
			GenderPreference: "female",
			Status:           models.JobOpen,
			IsActive:         true,
		},
	}
	if err := tx.Create(&jobs).Error; err != nil {
		return err
	}

	offers := []models.Offer{
		{
			JobID:          jobs[0].ID,
			FreelancerID:   freelancers[0].ID,
			ClientID:       clients[0].ID,
			OriginalAmount: jobs[0].Amount,
			OfferedAmount:  jobs[0].Amount,
			Message:        "I have done several moving jobs in this area.",
			Status:         models.OfferPending,
			OfferType:      models.OfferDirectApply,
		},
		{
			JobID:          jobs[2].ID,
			FreelancerID:   freelancers[1].ID,
			ClientID:       clients[1].ID,
			OriginalAmount: jobs[2].Amount,
			OfferedAmount:  1200,
			Message:        "I can do a full three-course dinner for 1200.",
			Status:         models.OfferPending,
			OfferType:      models.OfferCustom,
		},
	}
	if err := tx.Create(&offers).Error; err != nil {
		return err
	}

	completedAt := time.Now().AddDate(0, 0, -7)
	transactions := []models.Transaction{
		{
			ID:            uuid.New(),
			FreelancerID:  freelancers[1].ID,
			Amount:        500,
			Type:          models.TransactionWithdrawal,
			Status:        models.TransactionCompleted,
			Description:   "Withdrawal request",
			PaymentMethod: "bank_transfer",
			BankDetails: models.BankDetails{
				AccountNumber:     "50100234567890",
				IFSCCode:          "HDFC0001234",
				AccountHolderName: "Priya Singh",
			},
			CompletedAt: &completedAt,
		},
		{
			ID:            uuid.New(),
			FreelancerID:  freelancers[0].ID,
			Amount:        300,
			Type:          models.TransactionWithdrawal,
			Status:        models.TransactionPending,
			Description:   "Withdrawal request",
			PaymentMethod: "bank_transfer",
			BankDetails: models.BankDetails{
				AccountNumber:     "91602012345678",
				IFSCCode:          "ICIC0004567",
				AccountHolderName: "Arjun Verma",
			},
		},
	}
	if err := tx.Create(&transactions).Error; err != nil {
		return err
	}

	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
