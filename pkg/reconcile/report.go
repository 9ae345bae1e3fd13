package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/schedlink/schedlink/pkg/match"
	"github.com/schedlink/schedlink/pkg/schedule"
	"github.com/schedlink/schedlink/pkg/similarity"
)

// Comparison aggregates the diagnostics of one reconciliation run:
// per-tier counts, per-field-difference counters, and the detailed
// records behind them. Peripheral bookkeeping only; nothing here feeds
// back into the merge.
type Comparison struct {
	Summary     Summary           `json:"summary"`
	FieldCounts FieldCounts       `json:"field_comparison"`
	Matches     []MatchRecord     `json:"matches"`
	SheetOnly   []*schedule.Event `json:"xlsx_only_events"`
	ProdOnly    []ProductionRef   `json:"production_only_events"`
	FieldDiffs  []FieldDiff       `json:"field_diffs"`
}

// Summary holds the headline counts of a run.
type Summary struct {
	SheetTotal    int            `json:"xlsx_total_events"`
	ProdTotal     int            `json:"production_total_events"`
	Matched       int            `json:"matched"`
	SheetOnly     int            `json:"xlsx_only"`
	ProdOnly      int            `json:"production_only"`
	TierBreakdown map[string]int `json:"tier_breakdown"`
}

// FieldCounts tallies how often each supplemental-field category fired
// across the matched pairs.
type FieldCounts struct {
	MoreSpeakers      int `json:"xlsx_has_more_speakers"`
	LongerDescription int `json:"xlsx_has_longer_description"`
	EndTimeOnlySheet  int `json:"xlsx_has_end_time"`
	DiffRooms         int `json:"diff_rooms"`
	DiffTitles        int `json:"diff_titles"`
}

// MatchRecord is one committed pair, reduced to what diagnostics need.
type MatchRecord struct {
	SheetTitle  string                `json:"xlsx_title"`
	ProdTitle   string                `json:"prod_title"`
	ProdEventID string                `json:"prod_event_id"`
	Quality     schedule.MatchQuality `json:"quality"`
}

// ProductionRef references an unmatched production event.
type ProductionRef struct {
	EventID   string `json:"event_id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"start_time,omitempty"`
	Room      string `json:"room,omitempty"`
}

// Per-field difference details for a matched pair.

// TitleDiff records titles that differ after normalization.
type TitleDiff struct {
	Sheet      string  `json:"xlsx"`
	Prod       string  `json:"prod"`
	Similarity float64 `json:"similarity"`
}

// SpeakerDiff records a pair where the spreadsheet lists more speakers.
type SpeakerDiff struct {
	SheetCount    int      `json:"xlsx_count"`
	ProdCount     int      `json:"prod_count"`
	SheetSpeakers []string `json:"xlsx_speakers"`
	ProdSpeakers  []string `json:"prod_speakers"`
}

// DescriptionDiff records a pair where the spreadsheet description is
// richer under the margin rule.
type DescriptionDiff struct {
	SheetLength int `json:"xlsx_len"`
	ProdLength  int `json:"prod_len"`
}

// EndTimeDiff records an end time only the spreadsheet carries.
type EndTimeDiff struct {
	Sheet string `json:"xlsx"`
}

// RoomDiff records rooms that differ after normalization.
type RoomDiff struct {
	Sheet string `json:"xlsx"`
	Prod  string `json:"prod"`
}

// FieldDiff collects every field difference observed for one matched
// pair. Only pairs with at least one difference are recorded.
type FieldDiff struct {
	SheetTitle  string `json:"xlsx_title"`
	ProdTitle   string `json:"prod_title"`
	ProdEventID string `json:"prod_event_id"`

	Title             *TitleDiff       `json:"title,omitempty"`
	MoreSpeakers      *SpeakerDiff     `json:"more_speakers,omitempty"`
	LongerDescription *DescriptionDiff `json:"longer_description,omitempty"`
	HasEndTime        *EndTimeDiff     `json:"has_end_time,omitempty"`
	DiffRoom          *RoomDiff        `json:"diff_room,omitempty"`
}

// TierLabel renders the breakdown key for a match quality.
func TierLabel(q schedule.MatchQuality) string {
	return fmt.Sprintf("Tier %d (%s)", q.Tier, q.Method)
}

// buildComparison walks the assignment once and aggregates every
// diagnostic the run reports.
func buildComparison(assignment *match.Assignment, descriptionMargin int) *Comparison {
	c := &Comparison{
		Summary: Summary{
			SheetTotal:    len(assignment.Pairs) + len(assignment.UnmatchedA),
			ProdTotal:     len(assignment.Pairs) + len(assignment.UnmatchedB),
			Matched:       len(assignment.Pairs),
			SheetOnly:     len(assignment.UnmatchedA),
			ProdOnly:      len(assignment.UnmatchedB),
			TierBreakdown: make(map[string]int, 5),
		},
	}

	for _, pair := range assignment.Pairs {
		c.Summary.TierBreakdown[TierLabel(pair.Quality)]++
		c.Matches = append(c.Matches, MatchRecord{
			SheetTitle:  pair.A.Title,
			ProdTitle:   pair.B.Title,
			ProdEventID: pair.B.ID,
			Quality:     pair.Quality,
		})

		if diff := diffPair(pair, descriptionMargin, &c.FieldCounts); diff != nil {
			c.FieldDiffs = append(c.FieldDiffs, *diff)
		}
	}

	c.SheetOnly = assignment.UnmatchedA
	for _, b := range assignment.UnmatchedB {
		c.ProdOnly = append(c.ProdOnly, ProductionRef{
			EventID:   b.ID,
			Title:     b.Title,
			Date:      b.Date,
			StartTime: b.StartTime,
			Room:      b.Room,
		})
	}

	return c
}

// diffPair compares one committed pair field by field, bumping the
// category counters and returning the detail record when anything
// differed.
func diffPair(pair match.Candidate, descriptionMargin int, counts *FieldCounts) *FieldDiff {
	a, b := pair.A, pair.B
	diff := &FieldDiff{
		SheetTitle:  a.Title,
		ProdTitle:   b.Title,
		ProdEventID: b.ID,
	}
	dirty := false

	if similarity.Normalize(a.Title) != similarity.Normalize(b.Title) {
		diff.Title = &TitleDiff{Sheet: a.Title, Prod: b.Title, Similarity: pair.Quality.Score}
		counts.DiffTitles++
		dirty = true
	}

	if len(a.Speakers) > len(b.Speakers) {
		diff.MoreSpeakers = &SpeakerDiff{
			SheetCount:    len(a.Speakers),
			ProdCount:     len(b.Speakers),
			SheetSpeakers: a.Speakers,
			ProdSpeakers:  b.Speakers,
		}
		counts.MoreSpeakers++
		dirty = true
	}

	if a.Description != "" && (b.Description == "" || len(a.Description) > len(b.Description)+descriptionMargin) {
		diff.LongerDescription = &DescriptionDiff{
			SheetLength: len(a.Description),
			ProdLength:  len(b.Description),
		}
		counts.LongerDescription++
		dirty = true
	}

	if a.EndTime != "" && b.EndTime == "" {
		diff.HasEndTime = &EndTimeDiff{Sheet: a.EndTime}
		counts.EndTimeOnlySheet++
		dirty = true
	}

	if a.Room != "" && b.Room != "" && similarity.Normalize(a.Room) != similarity.Normalize(b.Room) {
		diff.DiffRoom = &RoomDiff{Sheet: a.Room, Prod: b.Room}
		counts.DiffRooms++
		dirty = true
	}

	if !dirty {
		return nil
	}
	return diff
}

// RenderTables renders the comparison as console tables: source totals,
// tier breakdown, and field-difference counters.
func (c *Comparison) RenderTables() string {
	var b strings.Builder

	b.WriteString(renderTable(
		"MATCHING RESULTS",
		table.Row{"Category", "Count"},
		[]table.Row{
			{"XLSX events", c.Summary.SheetTotal},
			{"Production events", c.Summary.ProdTotal},
			{"Matched", c.Summary.Matched},
			{"XLSX-only", c.Summary.SheetOnly},
			{"Production-only", c.Summary.ProdOnly},
		},
	))
	b.WriteByte('\n')

	tiers := make([]string, 0, len(c.Summary.TierBreakdown))
	for label := range c.Summary.TierBreakdown {
		tiers = append(tiers, label)
	}
	sort.Strings(tiers)
	tierRows := make([]table.Row, 0, len(tiers))
	for _, label := range tiers {
		tierRows = append(tierRows, table.Row{label, c.Summary.TierBreakdown[label]})
	}
	b.WriteString(renderTable("MATCH TIERS", table.Row{"Tier", "Count"}, tierRows))
	b.WriteByte('\n')

	b.WriteString(renderTable(
		"FIELD COMPARISON",
		table.Row{"Difference", "Count"},
		[]table.Row{
			{"XLSX has more speakers", c.FieldCounts.MoreSpeakers},
			{"XLSX has longer description", c.FieldCounts.LongerDescription},
			{"XLSX has end time, production doesn't", c.FieldCounts.EndTimeOnlySheet},
			{"Different rooms", c.FieldCounts.DiffRooms},
			{"Different titles", c.FieldCounts.DiffTitles},
		},
	))

	return b.String()
}

// renderTable renders one titled two-column table.
func renderTable(title string, header table.Row, rows []table.Row) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(title)
	tw.AppendHeader(header)
	tw.AppendRows(rows)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	return tw.Render() + "\n"
}
