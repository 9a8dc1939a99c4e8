package cmd

import (
	"fmt"

	cfgpkg "github.com/KaramelBytes/enrolldeck-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set EnrollDeck configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustConfig()
		if err != nil {
			return err
		}
		fmt.Printf("column_full_name: %s\n", c.ColumnFullName)
		fmt.Printf("column_course: %s\n", c.ColumnCourse)
		fmt.Printf("column_timestamp: %s\n", c.ColumnTimestamp)
		fmt.Printf("column_email: %s\n", c.ColumnEmail)
		if c.SheetName != "" {
			fmt.Printf("sheet_name: %s\n", c.SheetName)
		}
		fmt.Printf("report_title: %s\n", c.ReportTitle)
		fmt.Printf("attribution: %s\n", c.Attribution)
		fmt.Printf("page_size: %s\n", c.PageSize)
		fmt.Printf("date_format: %s\n", c.DateFormat)
		fmt.Printf("datetime_format: %s\n", c.DateTimeFormat)
		if c.OutputDir != "" {
			fmt.Printf("output_dir: %s\n", c.OutputDir)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c, err := mustConfig()
		if err != nil {
			return err
		}
		switch key {
		case "column_full_name":
			c.ColumnFullName = val
		case "column_course":
			c.ColumnCourse = val
		case "column_timestamp":
			c.ColumnTimestamp = val
		case "column_email":
			c.ColumnEmail = val
		case "sheet_name":
			c.SheetName = val
		case "report_title":
			c.ReportTitle = val
		case "attribution":
			c.Attribution = val
		case "page_size":
			switch val {
			case "Letter", "A4", "Legal":
				c.PageSize = val
			default:
				return fmt.Errorf("invalid page_size: %s (use Letter, A4, or Legal)", val)
			}
		case "date_format":
			c.DateFormat = val
		case "datetime_format":
			c.DateTimeFormat = val
		case "output_dir":
			c.OutputDir = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
