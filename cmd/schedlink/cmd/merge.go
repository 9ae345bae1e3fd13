package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schedlink/schedlink"
	"github.com/schedlink/schedlink/internal/artifacts"
	"github.com/schedlink/schedlink/pkg/logging"
	"github.com/schedlink/schedlink/pkg/reconcile"
	"github.com/schedlink/schedlink/pkg/sheet"
)

var (
	mergeSheets          string
	mergeProduction      string
	mergeSheetDates      string
	mergeOutput          string
	mergeComparison      string
	mergeNeedsEnrichment string
	mergeMargin          int
	mergeNoReport        bool
)

// mergeCmd runs the full reconciliation pipeline.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Reconcile the spreadsheet and production schedules",
	Long: `Normalize the extracted workbook, link its sessions against the
production events, and write the merged dataset.

Input artifacts are whole-file JSON: the extracted workbook (sheet name
to rows) and the production event list. The sheet-dates file maps each
event sheet to its default calendar date; sheets not listed are ignored.

Examples:
  schedlink merge --sheets xlsx_parsed.json --production events.json \
      --sheet-dates sheets.yaml --output events_merged.json
  schedlink merge ... --comparison comparison_data.json \
      --needs-enrichment needs_enrichment.json`,
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVar(&mergeSheets, "sheets", "", "extracted workbook artifact (JSON)")
	mergeCmd.Flags().StringVar(&mergeProduction, "production", "", "production events artifact (JSON)")
	mergeCmd.Flags().StringVar(&mergeSheetDates, "sheet-dates", "", "sheet to default-date mapping (YAML)")
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "events_merged.json", "merged dataset output path")
	mergeCmd.Flags().StringVar(&mergeComparison, "comparison", "", "write the comparison diagnostics artifact here")
	mergeCmd.Flags().StringVar(&mergeNeedsEnrichment, "needs-enrichment", "", "write records awaiting enrichment here")
	mergeCmd.Flags().IntVar(&mergeMargin, "description-margin", reconcile.DefaultDescriptionMargin,
		"extra characters a spreadsheet description needs to count as richer")
	mergeCmd.Flags().BoolVar(&mergeNoReport, "no-report", false, "suppress the console report tables")

	_ = mergeCmd.MarkFlagRequired("sheets")
	_ = mergeCmd.MarkFlagRequired("production")
	_ = mergeCmd.MarkFlagRequired("sheet-dates")
}

func runMerge(cmd *cobra.Command, _ []string) error {
	cfg, err := sheet.LoadConfig(mergeSheetDates)
	if err != nil {
		return err
	}
	wb, err := artifacts.LoadWorkbook(mergeSheets)
	if err != nil {
		return err
	}
	production, err := artifacts.LoadProduction(mergeProduction)
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), logging.Default())
	result, err := schedlink.Merge(ctx, wb, cfg, production,
		reconcile.WithDescriptionMargin(mergeMargin))
	if err != nil {
		return err
	}

	if err := artifacts.Save(mergeOutput, result.Merged); err != nil {
		return err
	}
	if mergeComparison != "" {
		if err := artifacts.Save(mergeComparison, result.Comparison); err != nil {
			return err
		}
	}
	if mergeNeedsEnrichment != "" {
		if err := artifacts.Save(mergeNeedsEnrichment, result.NeedsEnrichment()); err != nil {
			return err
		}
	}

	if !mergeNoReport {
		fmt.Fprintln(cmd.OutOrStdout(), result.Comparison.RenderTables())
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Summary())

	logging.Default().Info().
		Str("output", mergeOutput).
		Int("events", len(result.Merged)).
		Msg("merged dataset written")
	return nil
}
