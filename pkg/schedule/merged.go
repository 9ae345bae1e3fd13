package schedule

import "sort"

// Source tags a merged record with where its data came from.
type Source string

// Merged record origins.
const (
	SourceBoth           Source = "both"
	SourceProductionOnly Source = "production_only"
	SourceXLSXOnly       Source = "xlsx_only"
)

// String returns the string representation of a source tag.
func (s Source) String() string { return string(s) }

// MatchQuality records how a cross-source pair was matched: the tier
// (lower is stronger), the title similarity score that produced it, and
// the name of the tier rule that fired.
type MatchQuality struct {
	Tier   int     `json:"tier"`
	Score  float64 `json:"score"`
	Method string  `json:"method"`
}

// MergedEvent is the final output unit of a reconciliation run. It is a
// production record (real or synthesized) tagged with its origin and, for
// matched pairs, the match quality plus any supplemental spreadsheet
// fields the production side was missing. Created once per run and never
// mutated afterward.
type MergedEvent struct {
	ProductionEvent

	Source       Source        `json:"source"`
	MatchQuality *MatchQuality `json:"match_quality,omitempty"`

	// Supplemental spreadsheet data retained alongside the production
	// fields rather than overwriting them.
	XLSXSpeakers    []string `json:"xlsx_speakers,omitempty"`
	XLSXDescription string   `json:"xlsx_description,omitempty"`
	XLSXTimeRaw     string   `json:"xlsx_time_raw,omitempty"`
}

// NeedsEnrichment reports whether the record still requires the
// downstream enrichment pass. Spreadsheet-only records start without any
// enrichment attributes.
func (m *MergedEvent) NeedsEnrichment() bool {
	return m.Source == SourceXLSXOnly && m.SummaryOneLiner == nil
}

// SortMerged orders the merged sequence ascending by date, then start
// time, with absent start times first. This is the ordering every
// downstream consumer depends on.
func SortMerged(events []*MergedEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].StartTime < events[j].StartTime
	})
}

// CountBySource tallies merged records per origin tag.
func CountBySource(events []*MergedEvent) map[Source]int {
	counts := make(map[Source]int, 3)
	for _, e := range events {
		counts[e.Source]++
	}
	return counts
}
