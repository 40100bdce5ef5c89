package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// renderTable prints a header row followed by data rows.
func renderTable(header []string, rows [][]string) error {
	table := tablewriter.NewWriter(os.Stdout)
	if err := table.Append(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// renderKV prints label/value pairs as a two-column table.
func renderKV(rows [][2]string) error {
	table := tablewriter.NewWriter(os.Stdout)
	for _, row := range rows {
		if err := table.Append([]string{row[0], row[1]}); err != nil {
			return err
		}
	}
	return table.Render()
}

func statusColor(status string) string {
	switch status {
	case "approved", "completed":
		return color.GreenString(status)
	case "rejected", "failed":
		return color.RedString(status)
	case "pending", "resubmitted", "under_review":
		return color.YellowString(status)
	default:
		return status
	}
}
