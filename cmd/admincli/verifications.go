package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jaiswarrohan010-debug/PEOPLE-BACKEUP/internal/models"
)

var verificationsCmd = &cobra.Command{
	Use:   "verifications",
	Short: "Review freelancer identity verifications",
}

var verificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles awaiting review, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := verificationSvc.ListPending()
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			color.Green("No verifications pending.")
			return nil
		}

		rows := make([][]string, 0, len(profiles))
		for _, p := range profiles {
			phone := ""
			if p.User != nil {
				phone = p.User.Phone
			}
			rows = append(rows, []string{
				p.ID.String(),
				p.FullName,
				phone,
				p.Address.City,
				statusColor(string(p.VerificationStatus)),
				p.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
		return renderTable([]string{"Profile ID", "Name", "Phone", "City", "Status", "Submitted"}, rows)
	},
}

var verificationsShowCmd = &cobra.Command{
	Use:   "show <profile-id>",
	Short: "Show one profile with its documents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid profile ID: %w", err)
		}

		p, err := verificationSvc.Get(id)
		if err != nil {
			return err
		}

		fid := "-"
		if p.FreelancerID != nil {
			fid = *p.FreelancerID
		}
		phone := ""
		if p.User != nil {
			phone = p.User.Phone
		}

		rows := [][2]string{
			{"Profile ID", p.ID.String()},
			{"Name", p.FullName},
			{"Phone", phone},
			{"Gender", p.Gender},
			{"Date of birth", p.DateOfBirth.Format("2006-01-02")},
			{"Address", fmt.Sprintf("%s, %s, %s %s", p.Address.Street, p.Address.City, p.Address.State, p.Address.Pincode)},
			{"Status", statusColor(string(p.VerificationStatus))},
			{"Freelancer ID", fid},
		}
		if p.RejectionReason != "" {
			rows = append(rows, [2]string{"Rejection reason", p.RejectionReason})
		}
		for kind, url := range p.Documents {
			rows = append(rows, [2]string{"Document: " + kind, fmt.Sprint(url)})
		}
		return renderKV(rows)
	},
}

var verificationsApproveCmd = &cobra.Command{
	Use:   "approve <profile-id> <freelancer-id>",
	Short: "Approve a profile and assign its freelancer ID",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid profile ID: %w", err)
		}

		res, err := verificationSvc.Approve(id, args[1])
		if err != nil {
			return err
		}

		if res.AlreadyApproved {
			color.Yellow("Profile %s is already approved (ID %s), nothing changed.", res.Profile.FullName, derefStr(res.Profile.FreelancerID))
			return nil
		}
		color.Green("Approved %s with freelancer ID %s.", res.Profile.FullName, derefStr(res.Profile.FreelancerID))
		return nil
	},
}

var verificationsRejectCmd = &cobra.Command{
	Use:   "reject <profile-id> <reason...>",
	Short: "Reject a profile with a reason; frees any assigned freelancer ID",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid profile ID: %w", err)
		}
		reason := strings.Join(args[1:], " ")

		res, err := verificationSvc.Reject(id, reason)
		if err != nil {
			return err
		}

		if res.AlreadyRejected {
			color.Yellow("Profile %s is already rejected, nothing changed.", res.Profile.FullName)
			return nil
		}
		color.Green("Rejected %s: %s", res.Profile.FullName, res.Profile.RejectionReason)
		return nil
	},
}

var verificationsBulkApproveCmd = &cobra.Command{
	Use:   "bulk-approve <start-freelancer-id>",
	Short: "Approve every pending profile with sequential IDs from the start ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := verificationSvc.BulkApprove(args[0])
		if err != nil {
			return err
		}
		return printBulkOutcome(res.Succeeded, res.Failed, func() [][]string {
			rows := make([][]string, 0, len(res.Items))
			for _, it := range res.Items {
				outcome := color.GreenString("approved")
				if it.Err != nil {
					outcome = color.RedString(it.Err.Error())
				}
				rows = append(rows, []string{it.FullName, it.FreelancerID, outcome})
			}
			return rows
		}, []string{"Name", "Freelancer ID", "Outcome"})
	},
}

var verificationsBulkRejectCmd = &cobra.Command{
	Use:   "bulk-reject <reason...>",
	Short: "Reject every pending profile with the same reason",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := verificationSvc.BulkReject(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printBulkOutcome(res.Succeeded, res.Failed, func() [][]string {
			rows := make([][]string, 0, len(res.Items))
			for _, it := range res.Items {
				outcome := color.GreenString("rejected")
				if it.Err != nil {
					outcome = color.RedString(it.Err.Error())
				}
				rows = append(rows, []string{it.FullName, outcome})
			}
			return rows
		}, []string{"Name", "Outcome"})
	},
}

var verificationsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Profile counts per verification status",
	RunE: func(cmd *cobra.Command, args []string) error {
		byStatus, err := verificationSvc.Stats()
		if err != nil {
			return err
		}

		order := []models.VerificationStatus{
			models.VerificationPending,
			models.VerificationResubmitted,
			models.VerificationUnderReview,
			models.VerificationApproved,
			models.VerificationRejected,
		}
		rows := make([][2]string, 0, len(order))
		for _, status := range order {
			rows = append(rows, [2]string{statusColor(string(status)), fmt.Sprint(byStatus[status])})
		}
		return renderKV(rows)
	},
}

func printBulkOutcome(succeeded, failed int, rowsFn func() [][]string, header []string) error {
	if succeeded == 0 && failed == 0 {
		color.Green("No verifications pending, nothing to do.")
		return nil
	}
	if err := renderTable(header, rowsFn()); err != nil {
		return err
	}
	fmt.Printf("%s, %s\n",
		color.GreenString("%d succeeded", succeeded),
		color.RedString("%d failed", failed))
	return nil
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func init() {
	verificationsCmd.AddCommand(
		verificationsListCmd,
		verificationsShowCmd,
		verificationsApproveCmd,
		verificationsRejectCmd,
		verificationsBulkApproveCmd,
		verificationsBulkRejectCmd,
		verificationsStatsCmd,
	)
	rootCmd.AddCommand(verificationsCmd)
}
