package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	cfgpkg "github.com/KaramelBytes/enrolldeck-cli/internal/config"
	"github.com/KaramelBytes/enrolldeck-cli/internal/ingest"
	"github.com/KaramelBytes/enrolldeck-cli/internal/report"
	"github.com/KaramelBytes/enrolldeck-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	genOutput      string
	genSheetName   string
	genTitle       string
	genAttribution string
	genPageSize    string
)

var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Generate the registration report PDF from an .xlsx/.csv export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustConfig()
		if err != nil {
			return err
		}
		sheet := c.SheetName
		if genSheetName != "" {
			sheet = genSheetName
		}
		ds, err := ingest.ReadFile(args[0], columnsFromConfig(c), sheet)
		if err != nil {
			return err
		}
		if debug {
			fmt.Fprintf(os.Stderr, "read %d rows, %d columns from %s\n", len(ds.Records), len(ds.Header), args[0])
		}

		opt := optionsFromConfig(c)
		if genTitle != "" {
			opt.Labels.ReportTitle = genTitle
		}
		if genAttribution != "" {
			opt.Labels.Attribution = genAttribution
		}
		if genPageSize != "" {
			opt.PageSize = genPageSize
		}

		res, err := report.Generate(ds.Records, opt)
		if err != nil {
			return err
		}

		out := genOutput
		if out == "" {
			name := fmt.Sprintf("reporte_inscripciones_%s.pdf", time.Now().Format("20060102_150405"))
			out = filepath.Join(c.OutputDir, name)
		}
		if dir := filepath.Dir(out); dir != "." {
			if err := utils.EnsureDir(dir); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := utils.SafeWriteFile(out, res.PDF); err != nil {
			return err
		}

		if res.DroppedRows > 0 {
			fmt.Fprintf(os.Stderr, "⚠ Dropped %d of %d rows (missing fields or unparseable timestamps)\n",
				res.DroppedRows, res.RawRows)
		}
		s := res.Summary
		fmt.Printf("✓ Wrote %s (%d pages)\n", out, res.Pages)
		fmt.Printf("  Report ID: %s\n", res.ReportID)
		fmt.Printf("  Registrants: %d | Period: %s — %s (%d days)\n",
			s.UniquePersons, s.Earliest.Format(opt.DateFormat), s.Latest.Format(opt.DateFormat), s.PeriodDays)
		for _, cc := range res.Ranking {
			fmt.Printf("  • %s: %d\n", cc.Course, cc.Count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output PDF path (default reporte_inscripciones_<timestamp>.pdf)")
	generateCmd.Flags().StringVar(&genSheetName, "sheet-name", "", "XLSX: worksheet to read (default first sheet)")
	generateCmd.Flags().StringVar(&genTitle, "title", "", "report title (overrides config)")
	generateCmd.Flags().StringVar(&genAttribution, "attribution", "", "attribution line (overrides config)")
	generateCmd.Flags().StringVar(&genPageSize, "page-size", "", "page size: Letter | A4 | Legal (overrides config)")
}

// columnsFromConfig maps the configured column names onto the ingest layer.
func columnsFromConfig(c *cfgpkg.Global) ingest.Columns {
	return ingest.Columns{
		FullName:  c.ColumnFullName,
		Course:    c.ColumnCourse,
		Timestamp: c.ColumnTimestamp,
		Email:     c.ColumnEmail,
	}
}

// optionsFromConfig maps the configured rendering settings onto the report
// pipeline. Label text beyond the title and attribution is fixed-language by
// design.
func optionsFromConfig(c *cfgpkg.Global) report.Options {
	opt := report.DefaultOptions()
	if c.ReportTitle != "" {
		opt.Labels.ReportTitle = c.ReportTitle
	}
	if c.Attribution != "" {
		opt.Labels.Attribution = c.Attribution
	}
	if c.PageSize != "" {
		opt.PageSize = c.PageSize
	}
	if c.DateFormat != "" {
		opt.DateFormat = c.DateFormat
	}
	if c.DateTimeFormat != "" {
		opt.DateTimeFormat = c.DateTimeFormat
	}
	return opt
}
