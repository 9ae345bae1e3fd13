package sheet_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedlink/schedlink/pkg/errors"
	"github.com/schedlink/schedlink/pkg/sheet"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `sheets:
  - sheet: "Day 16"
    date: "2026-02-16"
  - sheet: "Day 17"
    date: "2026-02-17"
`)

	cfg, err := sheet.LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Sheets, 2)
	assert.Equal(t, "Day 16", cfg.Sheets[0].Sheet)
	assert.Equal(t, "2026-02-17", cfg.Sheets[1].Date)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := sheet.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeConfig(t, "sheets: [unclosed\n")
	_, err := sheet.LoadConfig(path)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     sheet.Config
		wantErr string
	}{
		{
			name:    "empty",
			cfg:     sheet.Config{},
			wantErr: "at least one sheet",
		},
		{
			name: "unnamed sheet",
			cfg: sheet.Config{Sheets: []sheet.SheetDate{
				{Sheet: "", Date: "2026-02-16"},
			}},
			wantErr: "must not be empty",
		},
		{
			name: "duplicate sheet",
			cfg: sheet.Config{Sheets: []sheet.SheetDate{
				{Sheet: "Day 16", Date: "2026-02-16"},
				{Sheet: "Day 16", Date: "2026-02-17"},
			}},
			wantErr: "more than once",
		},
		{
			name: "bad date",
			cfg: sheet.Config{Sheets: []sheet.SheetDate{
				{Sheet: "Day 16", Date: "16/02/2026"},
			}},
			wantErr: "YYYY-MM-DD",
		},
		{
			name: "valid",
			cfg: sheet.Config{Sheets: []sheet.SheetDate{
				{Sheet: "Day 16", Date: "2026-02-16"},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
