package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedlink/schedlink/pkg/logging"
	"github.com/schedlink/schedlink/pkg/sheet"
)

func dayConfig() *sheet.Config {
	return &sheet.Config{Sheets: []sheet.SheetDate{
		{Sheet: "Day 16", Date: "2026-02-16"},
		{Sheet: "Day 17", Date: "2026-02-17"},
	}}
}

func TestNormalizeBasicRow(t *testing.T) {
	wb := sheet.Workbook{
		"Day 16": {
			{
				"Title":       sheet.TextCell("Opening Keynote"),
				"Time":        sheet.TextCell("9:30 AM - 10:30 AM"),
				"Location":    sheet.TextCell("Main Hall"),
				"ROom":        sheet.TextCell("Hall A"),
				"Name":        sheet.TextCell("Ada Lovelace"),
				"Description": sheet.TextCell("The opening session."),
			},
		},
	}

	n := sheet.NewNormalizer(dayConfig(), sheet.WithLogger(logging.Nop))
	events, stats := n.Normalize(wb)

	require.Len(t, events, 1)
	e := events[0]
	assert.Equal(t, "xlsx_1", e.ID)
	assert.Equal(t, "Opening Keynote", e.Title)
	assert.Equal(t, "2026-02-16", e.Date)
	assert.Equal(t, "09:30:00.000", e.StartTime)
	assert.Equal(t, "10:30:00.000", e.EndTime)
	assert.Equal(t, "Main Hall", e.Venue)
	assert.Equal(t, "Hall A", e.Room)
	assert.Equal(t, []string{"Ada Lovelace"}, e.Speakers)
	assert.Equal(t, "The opening session.", e.Description)
	assert.Equal(t, "9:30 AM - 10:30 AM", e.TimeRaw)
	assert.Equal(t, "Day 16", e.SourceTag)

	assert.Equal(t, 1, stats.RowsSeen)
	assert.Equal(t, 0, stats.RowsSkipped)
}

func TestNormalizeSkipsUnusableRows(t *testing.T) {
	wb := sheet.Workbook{
		"Day 16": {
			{"Title": sheet.TextCell("Title")}, // repeated header row
			{"Name": sheet.TextCell("No Title Here")},
			{"Title": sheet.TextCell("   ")},
			{"Title": sheet.TextCell("Real Session")},
			{"Title": sheet.AbsentCell()},
			{"Title": sheet.TextCell("Another Real Session")},
		},
	}

	n := sheet.NewNormalizer(dayConfig(), sheet.WithLogger(logging.Nop))
	events, stats := n.Normalize(wb)

	require.Len(t, events, 2)
	// Identities number only the usable rows, so blank rows in the
	// middle of a sheet never shift later events.
	assert.Equal(t, "xlsx_1", events[0].ID)
	assert.Equal(t, "Real Session", events[0].Title)
	assert.Equal(t, "xlsx_2", events[1].ID)
	assert.Equal(t, "Another Real Session", events[1].Title)

	assert.Equal(t, 6, stats.RowsSeen)
	assert.Equal(t, 4, stats.RowsSkipped)
}

func TestNormalizeIdentityOrderAcrossSheets(t *testing.T) {
	wb := sheet.Workbook{
		"Day 17": {
			{"Title": sheet.TextCell("Second Day Session")},
		},
		"Day 16": {
			{"Title": sheet.TextCell("First Day Session")},
		},
	}

	n := sheet.NewNormalizer(dayConfig(), sheet.WithLogger(logging.Nop))
	events, _ := n.Normalize(wb)

	// Sheets are walked in config order, not map order.
	require.Len(t, events, 2)
	assert.Equal(t, "First Day Session", events[0].Title)
	assert.Equal(t, "xlsx_1", events[0].ID)
	assert.Equal(t, "Second Day Session", events[1].Title)
	assert.Equal(t, "xlsx_2", events[1].ID)
	assert.Equal(t, "2026-02-17", events[1].Date)
}

func TestNormalizeIgnoresUnconfiguredSheets(t *testing.T) {
	wb := sheet.Workbook{
		"Day 16":    {{"Title": sheet.TextCell("Session")}},
		"Attendees": {{"Title": sheet.TextCell("Not An Event")}},
	}

	n := sheet.NewNormalizer(dayConfig(), sheet.WithLogger(logging.Nop))
	events, stats := n.Normalize(wb)

	require.Len(t, events, 1)
	assert.Equal(t, "Session", events[0].Title)
	assert.Equal(t, 1, stats.RowsSeen)
}

func TestNormalizeDateResolution(t *testing.T) {
	wb := sheet.Workbook{
		"Day 16": {
			{"Title": sheet.TextCell("Serial Date"), "Date": sheet.NumberCell(45000)},
			{"Title": sheet.TextCell("ISO Text Date"), "Date": sheet.TextCell("2026-02-18")},
			{"Title": sheet.TextCell("Garbage Date"), "Date": sheet.TextCell("next Tuesday")},
			{"Title": sheet.TextCell("No Date")},
		},
	}

	n := sheet.NewNormalizer(dayConfig(), sheet.WithLogger(logging.Nop))
	events, _ := n.Normalize(wb)

	require.Len(t, events, 4)
	assert.Equal(t, "2023-03-15", events[0].Date)
	assert.Equal(t, "2026-02-18", events[1].Date)
	assert.Equal(t, "2026-02-16", events[2].Date)
	assert.Equal(t, "2026-02-16", events[3].Date)
}

func TestNormalizeNumericTimeCell(t *testing.T) {
	wb := sheet.Workbook{
		"Day 16": {
			{"Title": sheet.TextCell("Morning Session"), "Time": sheet.NumberCell(0.395833333)},
		},
	}

	n := sheet.NewNormalizer(dayConfig(), sheet.WithLogger(logging.Nop))
	events, _ := n.Normalize(wb)

	require.Len(t, events, 1)
	assert.Equal(t, "9:30 AM", events[0].TimeRaw)
	assert.Equal(t, "09:30:00.000", events[0].StartTime)
	assert.Equal(t, "", events[0].EndTime)
}

func TestNormalizeUnparseableTimeCounted(t *testing.T) {
	wb := sheet.Workbook{
		"Day 16": {
			{"Title": sheet.TextCell("Vague Session"), "Time": sheet.TextCell("after lunch")},
		},
	}

	n := sheet.NewNormalizer(dayConfig(), sheet.WithLogger(logging.Nop))
	events, stats := n.Normalize(wb)

	require.Len(t, events, 1)
	assert.Equal(t, "after lunch", events[0].TimeRaw)
	assert.Equal(t, "", events[0].StartTime)
	assert.Equal(t, 1, stats.TimeFailures)
}

func TestNormalizeSpeakerConsolidation(t *testing.T) {
	wb := sheet.Workbook{
		"Day 16": {
			{
				"Title":  sheet.TextCell("Panel"),
				"Name":   sheet.TextCell("Ada Lovelace"),
				"name":   sheet.TextCell("Speakers"), // stray header value
				"name_1": sheet.TextCell("Grace Hopper"),
				"name_2": sheet.TextCell("Ada Lovelace"), // duplicate
				"name_3": sheet.TextCell("  "),
			},
		},
	}

	n := sheet.NewNormalizer(dayConfig(), sheet.WithLogger(logging.Nop))
	events, _ := n.Normalize(wb)

	require.Len(t, events, 1)
	assert.Equal(t, []string{"Ada Lovelace", "Grace Hopper"}, events[0].Speakers)
	assert.Equal(t, "Ada Lovelace; Grace Hopper", events[0].SpeakersJoined)
}

func TestNormalizeDescriptionConsolidation(t *testing.T) {
	wb := sheet.Workbook{
		"Day 16": {
			{
				"Title":         sheet.TextCell("Workshop"),
				"Description":   sheet.TextCell("Part one."),
				"Description_1": sheet.TextCell("https://cdn.example.com/logo.png"),
				"Description_2": sheet.TextCell("Description"), // stray header value
				"Description_3": sheet.TextCell("Part two."),
			},
		},
	}

	n := sheet.NewNormalizer(dayConfig(), sheet.WithLogger(logging.Nop))
	events, _ := n.Normalize(wb)

	require.Len(t, events, 1)
	assert.Equal(t, "Part one. Part two.", events[0].Description)
}
