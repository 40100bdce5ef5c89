// Command admincli is the operator console for the platform: reviewing
// freelancer verifications, settling withdrawals and inspecting stats,
// straight against the database.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/db"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/stats"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/verification"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/wallet"
	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/services/withdrawal"
)

var (
	gdb             *gorm.DB
	verificationSvc *verification.VerificationService
	withdrawalSvc   *withdrawal.WithdrawalService
	statsSvc        *stats.StatsService
)

var rootCmd = &cobra.Command{
	Use:   "admincli",
	Short: "Admin console for verifications, withdrawals and platform stats",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			return fmt.Errorf("missing env: DB_DSN")
		}

		var err error
		gdb, err = db.Connect(dsn)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}

		walletSvc := wallet.NewWalletService(gdb)
		verificationSvc = verification.NewVerificationService(gdb)
		withdrawalSvc = withdrawal.NewWithdrawalService(gdb, walletSvc)
		statsSvc = stats.NewStatsService(gdb)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Platform-wide counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := statsSvc.Platform()
		if err != nil {
			return err
		}

		color.New(color.FgCyan, color.Bold).Println("Platform stats")
		rows := [][2]string{
			{"Total users", fmt.Sprint(st.TotalUsers)},
			{"Clients", fmt.Sprint(st.TotalClients)},
			{"Freelancers", fmt.Sprint(st.TotalFreelancers)},
			{"Verified freelancers", fmt.Sprint(st.VerifiedFreelancers)},
			{"Total jobs", fmt.Sprint(st.TotalJobs)},
			{"Open jobs", fmt.Sprint(st.OpenJobs)},
			{"Completed jobs", fmt.Sprint(st.CompletedJobs)},
			{"Total transactions", fmt.Sprint(st.TotalTransactions)},
			{"Pending withdrawals", fmt.Sprint(st.PendingWithdrawals)},
		}
		return renderKV(rows)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
