package cmd

import (
	"fmt"
	"time"

	"github.com/KaramelBytes/enrolldeck-cli/internal/ingest"
	"github.com/KaramelBytes/enrolldeck-cli/internal/report"
	"github.com/spf13/cobra"
)

var statsSheetName string

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Validate and aggregate a registration export without rendering the PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustConfig()
		if err != nil {
			return err
		}
		sheet := c.SheetName
		if statsSheetName != "" {
			sheet = statsSheetName
		}
		ds, err := ingest.ReadFile(args[0], columnsFromConfig(c), sheet)
		if err != nil {
			return err
		}

		fmt.Printf("File: %s\n", ds.Path)
		if ds.Sheet != "" {
			fmt.Printf("Sheet: %s\n", ds.Sheet)
		}
		fmt.Printf("Columns (%d):\n", len(ds.Header))
		for _, h := range ds.Header {
			fmt.Printf("- %s\n", h)
		}
		fmt.Println()

		clean, dropped := report.Clean(ds.Records)
		agg, err := report.Aggregate(clean, time.Now())
		if err != nil {
			return err
		}
		fmt.Print(agg.Markdown(len(ds.Records), dropped))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVar(&statsSheetName, "sheet-name", "", "XLSX: worksheet to read (default first sheet)")
}
