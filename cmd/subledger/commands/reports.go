package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// NewReportsCommand creates the reports command group.
func NewReportsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report"},
		Short:   "Manage reports",
		Long:    "List, create, render, and inspect reports within a book",
	}

	cmd.PersistentFlags().String("org", "", "organization ID")
	cmd.PersistentFlags().String("book", "", "book ID")

	cmd.AddCommand(newReportsListCommand())
	cmd.AddCommand(newReportsGetCommand())
	cmd.AddCommand(newReportsCreateCommand())
	cmd.AddCommand(newReportsUpdateCommand())
	cmd.AddCommand(newReportStateCommand("activate", "Activate an archived report"))
	cmd.AddCommand(newReportStateCommand("archive", "Archive a report"))
	cmd.AddCommand(newReportsAttachCommand())
	cmd.AddCommand(newReportsDetachCommand())
	cmd.AddCommand(newReportsRenderCommand())
	cmd.AddCommand(newReportsRenderingCommand())

	return cmd
}

func reportsClient(cmd *cobra.Command) (subledger.ReportsClient, error) {
	book, err := targetBook(cmd)
	if err != nil {
		return nil, err
	}

	return book.Reports(), nil
}

func reportClient(cmd *cobra.Command, reportID string) (subledger.ReportClient, error) {
	book, err := targetBook(cmd)
	if err != nil {
		return nil, err
	}

	return book.Report(reportID), nil
}

func newReportsListCommand() *cobra.Command {
	var state, action, cursor string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := reportsClient(cmd)
			if err != nil {
				return err
			}

			params := &subledger.ListParams{State: state, Action: action, Description: cursor}

			result, err := reports.List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list reports: %w", err)
			}

			return outputReports(result.Reports())
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "report state (active, archived)")
	cmd.Flags().StringVar(&action, "action", "", "pagination action (ending, before, starting, after)")
	cmd.Flags().StringVar(&cursor, "cursor", "", "pagination cursor")

	return cmd
}

func newReportsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get REPORT_ID",
		Short: "Get report details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := reportClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := report.Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get report: %w", err)
			}

			return outputReport(result.Report())
		},
	}
}

func newReportsCreateCommand() *cobra.Command {
	var description, reference string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := reportsClient(cmd)
			if err != nil {
				return err
			}

			result, err := reports.Create(context.Background(), &subledger.ReportCreateRequest{
				Description: description,
				Reference:   reference,
			})
			if err != nil {
				return fmt.Errorf("failed to create report: %w", err)
			}

			return outputReport(result.Report())
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "report description")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference URL")

	return cmd
}

func newReportsUpdateCommand() *cobra.Command {
	var (
		description, reference string
		version                int
	)

	cmd := &cobra.Command{
		Use:   "update REPORT_ID",
		Short: "Update a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := reportClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := report.Update(context.Background(), &subledger.ReportUpdateRequest{
				Description: description,
				Reference:   reference,
				Version:     version,
			})
			if err != nil {
				return fmt.Errorf("failed to update report: %w", err)
			}

			return outputReport(result.Report())
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "report description")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference URL")
	cmd.Flags().IntVar(&version, "version", 0, "current resource version (required)")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func newReportStateCommand(verb, short string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " REPORT_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := reportClient(cmd, args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			var result *subledger.ReportResponse
			if verb == "activate" {
				result, err = report.Activate(ctx)
			} else {
				result, err = report.Archive(ctx)
			}

			if err != nil {
				return fmt.Errorf("failed to %s report: %w", verb, err)
			}

			return outputReport(result.Report())
		},
	}
}

func newReportsAttachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attach REPORT_ID CATEGORY_ID",
		Short: "Attach a category to a report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := reportClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := report.Attach(context.Background(), args[1])
			if err != nil {
				return fmt.Errorf("failed to attach category: %w", err)
			}

			return outputReport(result.Report())
		},
	}
}

func newReportsDetachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detach REPORT_ID CATEGORY_ID",
		Short: "Detach a category from a report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := reportClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := report.Detach(context.Background(), args[1])
			if err != nil {
				return fmt.Errorf("failed to detach category: %w", err)
			}

			return outputReport(result.Report())
		},
	}
}

func newReportsRenderCommand() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "render REPORT_ID",
		Short: "Render a report",
		Long:  "Start an asynchronous rendering of a report at a point in time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := reportClient(cmd, args[0])
			if err != nil {
				return err
			}

			atTime, err := parseAtFlag(at)
			if err != nil {
				return err
			}

			result, err := report.Render(context.Background(), atTime)
			if err != nil {
				return fmt.Errorf("failed to render report: %w", err)
			}

			return outputReportRendering(result.ReportRendering())
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "rendering timestamp (RFC3339, default now)")

	return cmd
}

func newReportsRenderingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rendering RENDERING_ID",
		Short: "Get report rendering details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := targetBook(cmd)
			if err != nil {
				return err
			}

			result, err := book.ReportRendering(args[0]).Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get report rendering: %w", err)
			}

			return outputReportRendering(result.ReportRendering())
		},
	}
}

func outputReports(reports []subledger.Report) error {
	if done, err := renderStructured(reports); done {
		return err
	}

	if len(reports) == 0 {
		_, _ = os.Stdout.WriteString("No reports found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Description", "Reference", "Version")

	for _, report := range reports {
		_ = table.Append(report.ID, orDefault(report.Description),
			orDefault(report.Reference), fmt.Sprintf("%d", report.Version))
	}

	_ = table.Render()

	return nil
}

func outputReport(report *subledger.Report) error {
	if report == nil {
		_, _ = os.Stdout.WriteString("No report returned\n")

		return nil
	}

	if done, err := renderStructured(report); done {
		return err
	}

	return outputReports([]subledger.Report{*report})
}

func outputReportRendering(rendering *subledger.ReportRendering) error {
	if rendering == nil {
		_, _ = os.Stdout.WriteString("No report rendering returned\n")

		return nil
	}

	if done, err := renderStructured(rendering); done {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Report", "State", "Effective At")
	_ = table.Append(rendering.ID, orDefault(rendering.Report), orDefault(rendering.State),
		formatTimestamp(rendering.EffectiveAt))
	_ = table.Render()

	return nil
}
