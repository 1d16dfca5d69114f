package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rhyrak/go-dashboard/internal/dashboard"
	"github.com/rhyrak/go-dashboard/internal/store"
)

// Output formats.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// ReportRepo persists generated reports.
type ReportRepo interface {
	Save(ctx context.Context, kind string, params, payload any) (*store.Report, error)
	Get(ctx context.Context, id string) (*store.Report, error)
	List(ctx context.Context) ([]store.Report, error)
	Delete(ctx context.Context, id string) error
}

// App holds what the commands work on.
type App struct {
	Service   *dashboard.Service
	Reports   ReportRepo
	Delimiter rune
}

// NewRootCmd creates the top-level "dashboard" command and registers all
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	var format string
	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Academic operations dashboard: courses, teachers, admissions and rooms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case FormatTable, FormatCSV, FormatJSON:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want table, csv or json)", format)
			}
		},
	}
	root.PersistentFlags().StringVarP(&format, "format", "f", FormatTable, "output format: table, csv or json")

	out := &printer{app: app, format: &format}
	root.AddCommand(
		newSemestersCmd(app, out),
		newCoursesCmd(app, out),
		newTeachersCmd(app, out),
		newUnassignedCmd(app, out),
		newFacultiesCmd(app, out),
		newSectionsCmd(app, out),
		newClassroomsCmd(app, out),
		newAdmittedCmd(app, out),
		newDirectoryCmd(app, out),
		newResourcesCmd(app, out),
		newAuditCmd(app, out),
		newReportCmd(app, out),
	)
	return root
}

// printer writes a view in the selected format.
type printer struct {
	app    *App
	format *string
}

// print writes data as JSON, csvRows through writeCSV, or the table text.
// A nil writeCSV means the view has no CSV form.
func (p *printer) print(w io.Writer, data any, writeCSV func(io.Writer, rune) error, table func() string) error {
	switch *p.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatCSV:
		if writeCSV == nil {
			return fmt.Errorf("this view has no csv output")
		}
		return writeCSV(w, p.app.Delimiter)
	default:
		_, err := fmt.Fprint(w, table())
		return err
	}
}
