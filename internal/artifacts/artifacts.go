// Package artifacts reads and writes the whole-file JSON artifacts that
// bracket a reconciliation run: the extracted workbook and production
// events on the way in, the merged dataset and diagnostics on the way
// out. Each operation is a single buffered read or write; a failure on
// an input artifact is fatal and happens before the core runs.
package artifacts

import (
	"encoding/json"
	"os"

	"github.com/schedlink/schedlink/pkg/errors"
	"github.com/schedlink/schedlink/pkg/schedule"
	"github.com/schedlink/schedlink/pkg/sheet"
)

// LoadWorkbook reads an extracted-workbook artifact: sheet name mapped
// to its row sequence, cell values typed by the sheet.Cell variant.
func LoadWorkbook(path string) (sheet.Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var wb sheet.Workbook
	if err := json.Unmarshal(data, &wb); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return wb, nil
}

// LoadProduction reads the production events artifact.
func LoadProduction(path string) ([]*schedule.ProductionEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var events []*schedule.ProductionEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return events, nil
}

// Save writes any artifact as indented JSON in one shot.
func Save(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapParse("json", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
