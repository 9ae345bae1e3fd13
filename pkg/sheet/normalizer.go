package sheet

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/schedlink/schedlink/pkg/logging"
	"github.com/schedlink/schedlink/pkg/schedule"
)

// Column layout of the schedule export. Speaker and description data is
// spread across several columns; the priority order below is the order
// values are consolidated in.
const (
	titleColumn = "Title"
	dateColumn  = "Date"
	timeColumn  = "Time"
	venueColumn = "Location"
	roomColumn  = "ROom" // sic, as typed in the export
)

var (
	speakerColumns = []string{"Name", "name", "name_1", "name_2", "name_3"}

	descriptionColumns = []string{
		"Description", "Description_1", "Description_2", "Description_3",
		"Description_4", "Description_5", "Description_6", "Description_7",
	}

	// Stray header values that leak into data cells when a sheet repeats
	// its header row.
	placeholderValues = map[string]bool{
		"Title":       true,
		"Speakers":    true,
		"Description": true,
	}
)

// Stats counts the anomalies a normalization run tolerated. Malformed
// rows are expected in spreadsheet data and are skipped, not failed.
type Stats struct {
	RowsSeen     int // rows examined across configured sheets
	RowsSkipped  int // rows dropped for missing/placeholder title
	TimeFailures int // rows with time text that yielded no start time
}

// Normalizer converts raw per-sheet rows into the canonical flat Event
// sequence.
type Normalizer struct {
	cfg    *Config
	logger zerolog.Logger
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithLogger sets the logger used for per-row diagnostics.
func WithLogger(logger zerolog.Logger) NormalizerOption {
	return func(n *Normalizer) { n.logger = logger }
}

// NewNormalizer creates a Normalizer for the given sheet-date config.
func NewNormalizer(cfg *Config, opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		cfg:    cfg,
		logger: *logging.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize flattens the configured sheets of a workbook into Event
// records. Rows without a usable title are skipped silently. Identities
// are assigned in row-encounter order across sheets in config order, so
// a run over the same workbook is always reproducible.
func (n *Normalizer) Normalize(wb Workbook) ([]*schedule.Event, Stats) {
	var (
		events []*schedule.Event
		stats  Stats
		serial int
	)

	for _, sd := range n.cfg.Sheets {
		rows := wb[sd.Sheet]
		for _, row := range rows {
			stats.RowsSeen++

			title := row[titleColumn].Trimmed()
			if title == "" || placeholderValues[title] {
				stats.RowsSkipped++
				continue
			}

			serial++
			event := n.normalizeRow(row, sd, title, serial)
			if event.TimeRaw != "" && event.StartTime == "" {
				stats.TimeFailures++
				n.logger.Debug().
					Str("sheet", sd.Sheet).
					Str("title", title).
					Str("time_raw", event.TimeRaw).
					Msg("time text unparseable, leaving times unset")
			}
			events = append(events, event)
		}
	}

	n.logger.Info().
		Int("events", len(events)).
		Int("rows_seen", stats.RowsSeen).
		Int("rows_skipped", stats.RowsSkipped).
		Int("time_failures", stats.TimeFailures).
		Msg("normalized spreadsheet rows")

	return events, stats
}

// normalizeRow builds one Event from a row that already passed the title
// check.
func (n *Normalizer) normalizeRow(row RawRow, sd SheetDate, title string, serial int) *schedule.Event {
	speakers := collectSpeakers(row)

	timeRaw := timeText(row[timeColumn])
	start, end := ParseTimeRange(timeRaw)

	return &schedule.Event{
		ID:             fmt.Sprintf("xlsx_%d", serial),
		Title:          title,
		Date:           rowDate(row[dateColumn], sd.Date),
		StartTime:      start,
		EndTime:        end,
		Venue:          row[venueColumn].Trimmed(),
		Room:           row[roomColumn].Trimmed(),
		Speakers:       speakers,
		SpeakersJoined: schedule.JoinSpeakers(speakers),
		Description:    collectDescription(row),
		TimeRaw:        timeRaw,
		SourceTag:      sd.Sheet,
	}
}

// rowDate resolves the event date: a numeric cell is a spreadsheet
// serial, a textual cell is used when it is already a valid ISO date,
// anything else falls back to the sheet's default date.
func rowDate(cell Cell, sheetDefault string) string {
	switch cell.Kind {
	case KindNumber:
		return SerialToISODate(cell.Number)
	case KindText:
		text := cell.Trimmed()
		if _, err := time.Parse("2006-01-02", text); err == nil {
			return text
		}
	}
	return sheetDefault
}

// timeText renders the time cell as range text. A numeric cell below 1.0
// is a fraction of a day; anything else passes through as written.
func timeText(cell Cell) string {
	if cell.Kind == KindNumber && cell.Number < 1 {
		return FractionOfDayToClock(cell.Number)
	}
	return cell.Trimmed()
}

// collectSpeakers gathers distinct non-empty speaker names across the
// speaker columns in priority order, excluding stray header values.
func collectSpeakers(row RawRow) []string {
	var speakers []string
	seen := make(map[string]bool, len(speakerColumns))
	for _, col := range speakerColumns {
		name := row[col].Trimmed()
		if name == "" || placeholderValues[name] || seen[name] {
			continue
		}
		seen[name] = true
		speakers = append(speakers, name)
	}
	return speakers
}

// collectDescription joins all non-empty, non-placeholder, non-URL
// description fragments with single spaces. Some description columns
// hold image URLs; those are dropped.
func collectDescription(row RawRow) string {
	var parts []string
	for _, col := range descriptionColumns {
		text := row[col].Trimmed()
		if text == "" || placeholderValues[text] || strings.HasPrefix(text, "http") {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}
