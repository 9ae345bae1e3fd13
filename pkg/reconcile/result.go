package reconcile

import (
	"fmt"
	"time"

	"github.com/agentstation/utc"

	"github.com/schedlink/schedlink/pkg/schedule"
)

// Result is the outcome of one reconciliation run: the full merged
// sequence (the sole artifact consumers depend on), the diagnostic
// comparison, and run metadata.
type Result struct {
	// Merged is the reconciled dataset, sorted by date then start time.
	Merged []*schedule.MergedEvent

	// Comparison holds the per-tier and per-field-difference
	// diagnostics aggregated during the run.
	Comparison *Comparison

	// Metadata about the run.
	Metadata ResultMetadata
}

// ResultMetadata describes when the run happened and what it processed.
type ResultMetadata struct {
	StartTime utc.Time
	EndTime   utc.Time
	Duration  time.Duration
	Stats     Statistics
}

// Statistics counts what one run processed and produced.
type Statistics struct {
	SheetEvents      int
	ProductionEvents int
	Matched          int
	SheetOnly        int
	ProductionOnly   int
	TotalTimeMs      int64
}

// NeedsEnrichment returns the merged records still awaiting the
// downstream enrichment pass.
func (r *Result) NeedsEnrichment() []*schedule.MergedEvent {
	var out []*schedule.MergedEvent
	for _, e := range r.Merged {
		if e.NeedsEnrichment() {
			out = append(out, e)
		}
	}
	return out
}

// Summary returns a one-line human-readable summary of the run.
func (r *Result) Summary() string {
	s := r.Metadata.Stats
	return fmt.Sprintf("%d merged events (%d matched, %d production-only, %d xlsx-only)",
		len(r.Merged), s.Matched, s.ProductionOnly, s.SheetOnly)
}

// ResultBuilder constructs Result objects.
type ResultBuilder struct {
	result *Result
}

// NewResultBuilder creates a ResultBuilder stamped with the start time.
func NewResultBuilder() *ResultBuilder {
	return &ResultBuilder{
		result: &Result{
			Metadata: ResultMetadata{StartTime: utc.Now()},
		},
	}
}

// WithMerged sets the merged sequence.
func (b *ResultBuilder) WithMerged(merged []*schedule.MergedEvent) *ResultBuilder {
	b.result.Merged = merged
	return b
}

// WithComparison sets the diagnostic comparison.
func (b *ResultBuilder) WithComparison(comparison *Comparison) *ResultBuilder {
	b.result.Comparison = comparison
	return b
}

// WithStatistics sets the run statistics.
func (b *ResultBuilder) WithStatistics(stats Statistics) *ResultBuilder {
	b.result.Metadata.Stats = stats
	return b
}

// Build finalizes and returns the Result.
func (b *ResultBuilder) Build() *Result {
	b.result.Metadata.EndTime = utc.Now()
	b.result.Metadata.Duration = b.result.Metadata.EndTime.Sub(b.result.Metadata.StartTime)
	b.result.Metadata.Stats.TotalTimeMs = b.result.Metadata.Duration.Milliseconds()
	return b.result
}
