package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var withdrawalsCmd = &cobra.Command{
	Use:   "withdrawals",
	Short: "Settle wallet withdrawal requests",
}

var withdrawalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending withdrawals, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		trxs, err := withdrawalSvc.ListPending()
		if err != nil {
			return err
		}
		if len(trxs) == 0 {
			color.Green("No withdrawals pending.")
			return nil
		}

		rows := make([][]string, 0, len(trxs))
		for _, t := range trxs {
			name := ""
			if t.Freelancer != nil {
				name = t.Freelancer.Name
				if name == "" {
					name = t.Freelancer.Phone
				}
			}
			rows = append(rows, []string{
				t.ID.String(),
				name,
				fmt.Sprintf("₹%d", t.Amount),
				t.BankDetails.AccountNumber,
				t.BankDetails.IFSCCode,
				t.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
		return renderTable([]string{"Transaction ID", "Freelancer", "Amount", "Account", "IFSC", "Requested"}, rows)
	},
}

var withdrawalsAllCmd = &cobra.Command{
	Use:   "all",
	Short: "List recent withdrawals of any status",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		trxs, err := withdrawalSvc.ListRecent(limit)
		if err != nil {
			return err
		}
		if len(trxs) == 0 {
			color.Green("No withdrawals recorded.")
			return nil
		}

		rows := make([][]string, 0, len(trxs))
		for _, t := range trxs {
			name := ""
			if t.Freelancer != nil {
				name = t.Freelancer.Name
				if name == "" {
					name = t.Freelancer.Phone
				}
			}
			detail := ""
			switch {
			case t.FailureReason != "":
				detail = t.FailureReason
			case t.CompletedAt != nil:
				detail = "completed " + t.CompletedAt.Format("2006-01-02 15:04")
			}
			rows = append(rows, []string{
				t.ID.String(),
				name,
				fmt.Sprintf("₹%d", t.Amount),
				statusColor(string(t.Status)),
				detail,
			})
		}
		return renderTable([]string{"Transaction ID", "Freelancer", "Amount", "Status", "Detail"}, rows)
	},
}

var withdrawalsApproveCmd = &cobra.Command{
	Use:   "approve <transaction-id>",
	Short: "Mark a pending withdrawal completed after the manual bank transfer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid transaction ID: %w", err)
		}

		res, err := withdrawalSvc.Approve(id)
		if err != nil {
			return err
		}

		if res.AlreadyApproved {
			color.Yellow("Withdrawal %s is already completed, nothing changed.", res.Transaction.ID)
			return nil
		}
		color.Green("Withdrawal %s marked completed (₹%d). Transfer the funds to account %s / %s.",
			res.Transaction.ID, res.Transaction.Amount,
			res.Transaction.BankDetails.AccountNumber, res.Transaction.BankDetails.IFSCCode)
		return nil
	},
}

var withdrawalsRejectCmd = &cobra.Command{
	Use:   "reject <transaction-id> <reason...>",
	Short: "Reject a pending withdrawal and refund the amount to the wallet",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid transaction ID: %w", err)
		}
		reason := strings.Join(args[1:], " ")

		res, err := withdrawalSvc.Reject(id, reason)
		if err != nil {
			return err
		}

		switch {
		case res.AlreadyRejected:
			color.Yellow("Withdrawal %s is already rejected, nothing changed.", res.Transaction.ID)
		case res.Refunded:
			color.Green("Withdrawal %s rejected, ₹%d refunded to the wallet.", res.Transaction.ID, res.Transaction.Amount)
		default:
			color.Yellow("Withdrawal %s rejected, but the freelancer has no wallet; refund skipped.", res.Transaction.ID)
		}
		return nil
	},
}

var withdrawalsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Withdrawal counts and totals per status",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := withdrawalSvc.Stats()
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			color.Green("No withdrawals recorded.")
			return nil
		}

		rows := make([][]string, 0, len(stats))
		for _, s := range stats {
			rows = append(rows, []string{
				statusColor(string(s.Status)),
				fmt.Sprint(s.Count),
				fmt.Sprintf("₹%d", s.TotalAmount),
			})
		}
		return renderTable([]string{"Status", "Count", "Total"}, rows)
	},
}

func init() {
	withdrawalsAllCmd.Flags().Int("limit", 20, "maximum number of withdrawals to list")
	withdrawalsCmd.AddCommand(
		withdrawalsListCmd,
		withdrawalsAllCmd,
		withdrawalsApproveCmd,
		withdrawalsRejectCmd,
		withdrawalsStatsCmd,
	)
	rootCmd.AddCommand(withdrawalsCmd)
}
