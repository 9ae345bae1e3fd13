// Package sheet normalizes raw spreadsheet rows into canonical schedule
// events: typed cell decoding, spreadsheet serial date and fractional-day
// time conversion, free-text time-range parsing, and consolidation of the
// multi-column speaker and description layouts the export uses.
package sheet

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// CellKind discriminates the value forms a spreadsheet cell can take once
// extracted. Numeric and textual values need different handling for dates
// and times, so the distinction is made by type, not by guessing.
type CellKind int

// Cell value kinds.
const (
	KindAbsent CellKind = iota
	KindNumber
	KindText
)

// Cell is a tagged variant for one extracted cell value:
// Number | Text | Absent.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

// Text, Number and Absent construct cells of each kind.

// TextCell returns a text-valued cell.
func TextCell(s string) Cell { return Cell{Kind: KindText, Text: s} }

// NumberCell returns a number-valued cell.
func NumberCell(f float64) Cell { return Cell{Kind: KindNumber, Number: f} }

// AbsentCell returns an absent cell.
func AbsentCell() Cell { return Cell{Kind: KindAbsent} }

// IsAbsent reports whether the cell holds no value.
func (c Cell) IsAbsent() bool { return c.Kind == KindAbsent }

// Trimmed renders the cell as trimmed text. Numbers are formatted with
// minimal digits, mirroring how untyped consumers stringify them. Absent
// cells render empty.
func (c Cell) Trimmed() string {
	switch c.Kind {
	case KindText:
		return strings.TrimSpace(c.Text)
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

var nullToken = []byte("null")

// UnmarshalJSON decodes a raw cell. JSON null maps to Absent, numbers to
// Number, strings to Text. Any other shape (booleans, nested values) is
// treated as absent rather than failing the whole row.
func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, nullToken) {
		*c = AbsentCell()
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = TextCell(s)
	case 't', 'f', '[', '{':
		*c = AbsentCell()
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			*c = AbsentCell()
			return nil
		}
		*c = NumberCell(f)
	}
	return nil
}

// MarshalJSON encodes the cell back to its raw JSON form.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case KindText:
		return json.Marshal(c.Text)
	case KindNumber:
		return json.Marshal(c.Number)
	default:
		return nullToken, nil
	}
}

// RawRow is one extracted spreadsheet row: an unordered mapping from
// column name to cell value. Shapes vary per sheet.
type RawRow map[string]Cell

// Workbook maps sheet names to their extracted row sequences.
type Workbook map[string][]RawRow
