package sheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/utc"
)

// serialEpoch is the spreadsheet day-zero: 1899-12-30 UTC. The two-day
// shift from 1900-01-01 absorbs both 1-based serials and the historical
// phantom 1900-02-29. Arithmetic stays in UTC so conversions never drift
// across a date boundary.
var serialEpoch = utc.New(time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC))

const millisPerDay = 24 * 60 * 60 * 1000

// SerialToISODate converts a spreadsheet serial day count to a
// YYYY-MM-DD date string.
func SerialToISODate(serial float64) string {
	ms := time.Duration(serial*millisPerDay) * time.Millisecond
	return serialEpoch.Add(ms).UTC().Format("2006-01-02")
}

// FractionOfDayToClock renders a sub-1.0 fraction of a day as 12-hour
// clock text ("9:30 AM"), the same shape the textual time cells use.
// Minutes are rounded.
func FractionOfDayToClock(frac float64) string {
	total := int(frac*24*60 + 0.5)
	hours := total / 60
	minutes := total % 60

	meridiem := "AM"
	if hours >= 12 {
		meridiem = "PM"
	}
	display := hours
	switch {
	case hours > 12:
		display = hours - 12
	case hours == 0:
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minutes, meridiem)
}

var (
	rangePattern = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:AM|PM)?)\s*[-–]\s*(\d{1,2}:\d{2}\s*(?:AM|PM)?)`)
	clockPattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)?`)
	ampmPattern  = regexp.MustCompile(`(?i)(AM|PM)`)
)

// ParseTimeRange parses free-text time cells such as
// "9:30 AM – 10:30 AM" into 24-hour HH:MM:SS.mmm endpoints. A lone time
// yields only a start. When the start endpoint lacks an AM/PM marker it
// is inferred from the end endpoint. Unparseable text yields empty
// endpoints, never an error.
func ParseTimeRange(raw string) (start, end string) {
	str := strings.TrimSpace(raw)
	if str == "" {
		return "", ""
	}

	if m := rangePattern.FindStringSubmatch(str); m != nil {
		return parseClock(strings.TrimSpace(m[1]), strings.TrimSpace(m[2])),
			parseClock(strings.TrimSpace(m[2]), "")
	}
	return parseClock(str, ""), ""
}

// parseClock converts one clock fragment to HH:MM:SS.mmm. A missing
// AM/PM marker is inferred from reference when it carries one; with no
// marker anywhere the hour is taken as written.
func parseClock(fragment, reference string) string {
	m := clockPattern.FindStringSubmatch(fragment)
	if m == nil {
		return ""
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	meridiem := strings.ToUpper(m[3])

	if meridiem == "" && reference != "" {
		if ref := ampmPattern.FindString(reference); ref != "" {
			meridiem = strings.ToUpper(ref)
		}
	}

	if meridiem == "PM" && hours != 12 {
		hours += 12
	}
	if meridiem == "AM" && hours == 12 {
		hours = 0
	}

	return fmt.Sprintf("%02d:%02d:00.000", hours, minutes)
}
