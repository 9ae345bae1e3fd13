// Package schedlink reconciles two independently produced descriptions
// of the same event schedule into one merged dataset. Sessions appearing
// in both sources are linked by title similarity and logistics agreement
// and merged under a deterministic precedence policy; sessions unique to
// either source are preserved and tagged.
//
// The pipeline runs Normalizer -> Classifier -> Assignment -> Reconciler;
// this package is the thin facade that wires those stages together. The
// underlying packages remain usable on their own.
package schedlink

import (
	"context"

	"github.com/schedlink/schedlink/pkg/logging"
	"github.com/schedlink/schedlink/pkg/reconcile"
	"github.com/schedlink/schedlink/pkg/schedule"
	"github.com/schedlink/schedlink/pkg/sheet"
)

// Merge normalizes the workbook's configured sheets and reconciles the
// resulting events against the production events. The logger carried by
// ctx (if any) receives run diagnostics.
func Merge(ctx context.Context, wb sheet.Workbook, cfg *sheet.Config, production []*schedule.ProductionEvent, opts ...reconcile.Option) (*reconcile.Result, error) {
	logger := logging.FromContext(ctx)

	normalizer := sheet.NewNormalizer(cfg, sheet.WithLogger(*logger))
	events, _ := normalizer.Normalize(wb)

	for date, count := range schedule.CountByDate(events) {
		logger.Debug().Str("date", date).Int("events", count).Msg("normalized events by date")
	}

	reconciler, err := reconcile.New(opts...)
	if err != nil {
		return nil, err
	}
	return reconciler.Reconcile(ctx, events, production)
}

// Normalize runs only the source normalizer, returning the flat
// canonical event list for the workbook's configured sheets.
func Normalize(ctx context.Context, wb sheet.Workbook, cfg *sheet.Config) ([]*schedule.Event, sheet.Stats) {
	logger := logging.FromContext(ctx)
	normalizer := sheet.NewNormalizer(cfg, sheet.WithLogger(*logger))
	return normalizer.Normalize(wb)
}
