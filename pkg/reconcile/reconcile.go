// Package reconcile merges the two normalized schedule sources into the
// single dataset downstream consumers depend on. Matched pairs become one
// record with field-level precedence applied, source-unique records pass
// through tagged with their origin, and a diagnostic comparison of the
// run is aggregated alongside the merged sequence.
package reconcile

import (
	"context"

	"github.com/schedlink/schedlink/pkg/errors"
	"github.com/schedlink/schedlink/pkg/logging"
	"github.com/schedlink/schedlink/pkg/match"
	"github.com/schedlink/schedlink/pkg/schedule"
)

// Reconciler merges spreadsheet events with production events. It is a
// single synchronous batch computation: one invocation over two fully
// materialized inputs yields one immutable result.
type Reconciler interface {
	Reconcile(ctx context.Context, sheetEvents []*schedule.Event, production []*schedule.ProductionEvent) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	classifier *match.Classifier
	merger     *Merger
}

// Option configures a Reconciler.
type Option func(*reconciler) error

// New creates a Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	r := &reconciler{
		classifier: match.NewClassifier(),
		merger:     NewMerger(DefaultDescriptionMargin),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Reconcile runs assignment and field reconciliation over the two event
// sequences. It never fails on input content; the only errors are
// programming errors surfaced by options at construction time.
func (r *reconciler) Reconcile(ctx context.Context, sheetEvents []*schedule.Event, production []*schedule.ProductionEvent) (*Result, error) {
	logger := logging.FromContext(ctx)
	builder := NewResultBuilder()

	// Project production records onto the canonical shape for matching,
	// keeping the full records addressable by identity for the merge.
	prodEvents := make([]*schedule.Event, 0, len(production))
	prodByID := make(map[string]*schedule.ProductionEvent, len(production))
	for _, p := range production {
		prodEvents = append(prodEvents, p.Event())
		prodByID[p.EventID] = p
	}

	assignment := match.Assign(sheetEvents, prodEvents, r.classifier)

	merged := make([]*schedule.MergedEvent, 0, len(assignment.Pairs)+len(assignment.UnmatchedA)+len(assignment.UnmatchedB))
	for _, pair := range assignment.Pairs {
		merged = append(merged, r.merger.MergePair(prodByID[pair.B.ID], pair.A, pair.Quality))
	}
	for _, b := range assignment.UnmatchedB {
		merged = append(merged, r.merger.Passthrough(prodByID[b.ID]))
	}
	for _, a := range assignment.UnmatchedA {
		merged = append(merged, r.merger.Synthesize(a))
	}
	schedule.SortMerged(merged)

	comparison := buildComparison(assignment, r.merger.descriptionMargin)

	stats := Statistics{
		SheetEvents:      len(sheetEvents),
		ProductionEvents: len(production),
		Matched:          len(assignment.Pairs),
		SheetOnly:        len(assignment.UnmatchedA),
		ProductionOnly:   len(assignment.UnmatchedB),
	}

	logger.Info().
		Int("sheet_events", stats.SheetEvents).
		Int("production_events", stats.ProductionEvents).
		Int("matched", stats.Matched).
		Int("sheet_only", stats.SheetOnly).
		Int("production_only", stats.ProductionOnly).
		Msg("reconciled schedule sources")

	return builder.
		WithMerged(merged).
		WithComparison(comparison).
		WithStatistics(stats).
		Build(), nil
}

// Option Functions
// ================

// WithClassifier sets the match classifier.
func WithClassifier(classifier *match.Classifier) Option {
	return func(r *reconciler) error {
		if classifier == nil {
			return errors.New("classifier cannot be nil")
		}
		r.classifier = classifier
		return nil
	}
}

// WithThresholds sets the classifier tier thresholds.
func WithThresholds(t match.Thresholds) Option {
	return func(r *reconciler) error {
		r.classifier = match.NewClassifier(match.WithThresholds(t))
		return nil
	}
}

// WithDescriptionMargin sets how many characters longer a spreadsheet
// description must be before it is considered richer than the
// production one.
func WithDescriptionMargin(margin int) Option {
	return func(r *reconciler) error {
		if margin < 0 {
			return errors.NewValidationError("description margin", margin, "must not be negative")
		}
		r.merger = NewMerger(margin)
		return nil
	}
}
