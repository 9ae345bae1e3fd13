package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schedlink/schedlink"
	"github.com/schedlink/schedlink/internal/artifacts"
	"github.com/schedlink/schedlink/pkg/logging"
	"github.com/schedlink/schedlink/pkg/sheet"
)

var (
	normalizeSheets     string
	normalizeSheetDates string
	normalizeOutput     string
)

// normalizeCmd runs only the source normalizer, for inspecting what the
// spreadsheet side contributes before any matching happens.
var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize the spreadsheet workbook into flat events",
	RunE:  runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringVar(&normalizeSheets, "sheets", "", "extracted workbook artifact (JSON)")
	normalizeCmd.Flags().StringVar(&normalizeSheetDates, "sheet-dates", "", "sheet to default-date mapping (YAML)")
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "output", "o", "xlsx_events.json", "normalized events output path")

	_ = normalizeCmd.MarkFlagRequired("sheets")
	_ = normalizeCmd.MarkFlagRequired("sheet-dates")
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	cfg, err := sheet.LoadConfig(normalizeSheetDates)
	if err != nil {
		return err
	}
	wb, err := artifacts.LoadWorkbook(normalizeSheets)
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), logging.Default())
	events, stats := schedlink.Normalize(ctx, wb, cfg)

	if err := artifacts.Save(normalizeOutput, events); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d events written to %s (%d rows skipped)\n",
		len(events), normalizeOutput, stats.RowsSkipped)
	return nil
}
