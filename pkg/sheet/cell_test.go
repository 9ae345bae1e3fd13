package sheet_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedlink/schedlink/pkg/sheet"
)

func TestCellUnmarshalJSON(t *testing.T) {
	raw := `{
		"Title": "Opening Keynote",
		"Date": 45342,
		"Time": 0.5,
		"Note": null,
		"Flag": true,
		"Tags": ["a", "b"]
	}`

	var row sheet.RawRow
	require.NoError(t, json.Unmarshal([]byte(raw), &row))

	assert.Equal(t, sheet.TextCell("Opening Keynote"), row["Title"])
	assert.Equal(t, sheet.NumberCell(45342), row["Date"])
	assert.Equal(t, sheet.NumberCell(0.5), row["Time"])
	assert.True(t, row["Note"].IsAbsent())
	assert.True(t, row["Flag"].IsAbsent(), "booleans are not usable cell values")
	assert.True(t, row["Tags"].IsAbsent(), "nested values are not usable cell values")
}

func TestCellMissingKeyIsAbsent(t *testing.T) {
	row := sheet.RawRow{}
	assert.True(t, row["Anything"].IsAbsent())
	assert.Equal(t, "", row["Anything"].Trimmed())
}

func TestCellTrimmed(t *testing.T) {
	assert.Equal(t, "hello", sheet.TextCell("  hello  ").Trimmed())
	assert.Equal(t, "45342", sheet.NumberCell(45342).Trimmed())
	assert.Equal(t, "0.5", sheet.NumberCell(0.5).Trimmed())
	assert.Equal(t, "", sheet.AbsentCell().Trimmed())
}

func TestCellMarshalRoundTrip(t *testing.T) {
	cells := []sheet.Cell{
		sheet.TextCell("Workshop"),
		sheet.NumberCell(45000),
		sheet.AbsentCell(),
	}
	for _, c := range cells {
		data, err := json.Marshal(c)
		require.NoError(t, err)

		var back sheet.Cell
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, c, back)
	}
}

func TestWorkbookDecode(t *testing.T) {
	raw := `{
		"Day 16": [
			{"Title": "Session A", "Time": "9:00 AM - 10:00 AM"},
			{"Title": null}
		],
		"Attendees": [
			{"Name": "Somebody"}
		]
	}`

	var wb sheet.Workbook
	require.NoError(t, json.Unmarshal([]byte(raw), &wb))

	require.Len(t, wb["Day 16"], 2)
	assert.Equal(t, "Session A", wb["Day 16"][0]["Title"].Trimmed())
	assert.True(t, wb["Day 16"][1]["Title"].IsAbsent())
	require.Len(t, wb["Attendees"], 1)
}
