// Package schedule defines the canonical data model for the schedule
// reconciliation engine: the normalized Event record produced from
// spreadsheet rows, the ProductionEvent record loaded from the content
// store, and the MergedEvent record the engine emits.
package schedule

import (
	"sort"
	"strings"
)

// Event is the canonical, source-neutral session record the matching and
// reconciliation engine operates on. Both sources are normalized into this
// shape before any comparison happens.
type Event struct {
	// ID is a source-scoped identity assigned in row-encounter order.
	// It is unique within one source's event list and carries no meaning
	// across sources.
	ID string `json:"event_id"`

	Title     string `json:"title"`                // Never empty after normalization
	Date      string `json:"date"`                 // Calendar date, YYYY-MM-DD
	StartTime string `json:"start_time,omitempty"` // 24-hour HH:MM:SS.mmm, or empty
	EndTime   string `json:"end_time,omitempty"`   // 24-hour HH:MM:SS.mmm, or empty
	Venue     string `json:"venue,omitempty"`
	Room      string `json:"room,omitempty"`

	// Speakers is the ordered list of distinct non-empty speaker names.
	// SpeakersJoined is the semicolon-joined rendering kept for display
	// and storage compatibility.
	Speakers       []string `json:"speakers_list,omitempty"`
	SpeakersJoined string   `json:"speakers,omitempty"`

	Description string `json:"description,omitempty"`

	// TimeRaw preserves the original time cell text for diagnostics.
	TimeRaw string `json:"time_raw,omitempty"`

	// SourceTag records which sheet or section produced the row.
	// Diagnostic only; never used for matching.
	SourceTag string `json:"source_tag,omitempty"`
}

// HasStartTime reports whether the event carries a start time.
func (e *Event) HasStartTime() bool { return e.StartTime != "" }

// HasEndTime reports whether the event carries an end time.
func (e *Event) HasEndTime() bool { return e.EndTime != "" }

// StartMinute returns the HH:MM prefix of the start time, or empty.
// Seconds are deliberately ignored when comparing start times.
func (e *Event) StartMinute() string {
	if len(e.StartTime) < 5 {
		return e.StartTime
	}
	return e.StartTime[:5]
}

// JoinSpeakers renders a speaker list the way events are stored: joined
// by "; " in order.
func JoinSpeakers(speakers []string) string {
	return strings.Join(speakers, "; ")
}

// SplitSpeakers parses a semicolon-joined speaker string back into the
// list form, dropping empty fragments.
func SplitSpeakers(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SortEvents orders events ascending by date, then by start time.
// Comparison is lexicographic on the serialized forms, so absent start
// times (empty strings) sort first within a date. The sort is stable so
// input order breaks remaining ties deterministically.
func SortEvents(events []*Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].StartTime < events[j].StartTime
	})
}

// CountByDate tallies events per calendar date. Used for the
// post-normalization diagnostic log.
func CountByDate(events []*Event) map[string]int {
	counts := make(map[string]int, 8)
	for _, e := range events {
		counts[e.Date]++
	}
	return counts
}
