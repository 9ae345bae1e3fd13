package sheet

import (
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/schedlink/schedlink/pkg/errors"
)

// SheetDate associates one sheet name with the default calendar date its
// rows fall on. Sheet names are free text supplied by humans, so the
// association is enumerated configuration, never inferred.
type SheetDate struct {
	Sheet string `yaml:"sheet" json:"sheet"`
	Date  string `yaml:"date" json:"date"` // YYYY-MM-DD
}

// Config is the normalizer configuration: the ordered list of event
// sheets to consume. Sheets absent from the list are ignored entirely
// (non-event data such as attendee rosters).
type Config struct {
	Sheets []SheetDate `yaml:"sheets" json:"sheets"`
}

// LoadConfig reads and validates a sheet-date configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.NewConfigError("sheet dates", err.Error(), err)
	}
	return &cfg, nil
}

// Validate checks that every entry names a sheet and carries a parseable
// ISO date, and that no sheet is listed twice.
func (c *Config) Validate() error {
	if len(c.Sheets) == 0 {
		return errors.NewValidationError("sheets", nil, "at least one sheet mapping is required")
	}

	seen := make(map[string]bool, len(c.Sheets))
	for _, sd := range c.Sheets {
		if sd.Sheet == "" {
			return errors.NewValidationError("sheet", sd.Sheet, "sheet name must not be empty")
		}
		if seen[sd.Sheet] {
			return errors.NewValidationError("sheet", sd.Sheet, "sheet listed more than once")
		}
		seen[sd.Sheet] = true

		if _, err := time.Parse("2006-01-02", sd.Date); err != nil {
			return errors.NewValidationError("date", sd.Date, "date must be YYYY-MM-DD")
		}
	}
	return nil
}
