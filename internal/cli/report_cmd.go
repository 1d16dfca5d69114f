package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rhyrak/go-dashboard/internal/dashboard"
	"github.com/rhyrak/go-dashboard/internal/formatter"
)

func newReportCmd(app *App, out *printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Save and inspect generated reports",
	}
	cmd.AddCommand(
		newReportSaveCmd(app),
		newReportListCmd(app, out),
		newReportShowCmd(app),
		newReportDeleteCmd(app),
	)
	return cmd
}

func newReportSaveCmd(app *App) *cobra.Command {
	var params string
	cmd := &cobra.Command{
		Use:   "save <kind>",
		Short: "Generate a view and store it",
		Long:  "Generate a view and store it. Kinds: " + strings.Join(dashboard.ReportKinds(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := json.RawMessage(params)
			if !json.Valid(raw) {
				return fmt.Errorf("--params is not valid JSON")
			}
			payload, err := app.Service.GenerateJSON(args[0], raw)
			if err != nil {
				return err
			}
			report, err := app.Reports.Save(cmd.Context(), args[0], raw, payload)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s report %s\n", report.Kind, formatter.Bold(report.ID))
			return nil
		},
	}
	cmd.Flags().StringVar(&params, "params", "{}", "view parameters as JSON")
	return cmd
}

func newReportListCmd(app *App, out *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved reports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := app.Reports.List(cmd.Context())
			if err != nil {
				return err
			}
			return out.print(cmd.OutOrStdout(), reports, nil, func() string { return formatter.FormatReports(reports) })
		},
	}
}

func newReportShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the stored payload of a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Reports.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
}

func newReportDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Reports.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted report %s\n", args[0])
			return nil
		},
	}
}
