// Package match links session records across the two sources: a tiered
// classifier decides whether a cross-source pair describes the same
// session, and a greedy assignment engine commits a deterministic
// one-to-one subset of the classified pairs.
package match

import (
	"github.com/schedlink/schedlink/pkg/schedule"
	"github.com/schedlink/schedlink/pkg/similarity"
)

// Match tiers, ordered by confidence. Lower is stronger.
const (
	TierExactTitleDate    = 1
	TierHighTitleDate     = 2
	TierDateRoomTime      = 3
	TierModerateTitleDate = 4
	TierTitleOnly         = 5
)

// Method names identifying which tier rule fired.
const (
	MethodExactTitleDate    = "exact_title_date"
	MethodHighTitleDate     = "high_title_date"
	MethodDateRoomTime      = "date_room_time"
	MethodModerateTitleDate = "moderate_title_date"
	MethodTitleOnly         = "title_only"
)

// Thresholds holds the title-similarity bounds the tier rules compare
// against. The defaults are empirically chosen; changing them changes
// which real-world session pairs are considered duplicates, so they are
// configuration, not derivation.
type Thresholds struct {
	ExactTitle     float64 // tier 1, with matching date
	HighTitle      float64 // tier 2, with matching date
	ModerateTitle  float64 // tier 4, with matching date
	TitleOnly      float64 // tier 5, date ignored
	LogisticsFloor float64 // tier 3 minimum similarity when date+room+time agree
}

// DefaultThresholds returns the standard tier thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ExactTitle:     0.95,
		HighTitle:      0.75,
		ModerateTitle:  0.55,
		TitleOnly:      0.85,
		LogisticsFloor: 0.3,
	}
}

// Classifier evaluates the fixed, ordered set of tier rules over one
// record from each source. It is total: any pair of valid events yields
// either a quality or no match, never an error.
type Classifier struct {
	thresholds Thresholds
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithThresholds overrides the default tier thresholds.
func WithThresholds(t Thresholds) ClassifierOption {
	return func(c *Classifier) { c.thresholds = t }
}

// NewClassifier creates a Classifier with options.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{thresholds: DefaultThresholds()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Thresholds returns the thresholds in use.
func (c *Classifier) Thresholds() Thresholds { return c.thresholds }

// Classify evaluates the tier rules in order against a spreadsheet event
// and a production event; the first rule that fires wins. The boolean is
// false when no rule fires.
//
// Rule order matters: tier 3 recovers pairs whose titles were
// substantially rewritten but whose date, room and start time all agree,
// and tier 5 recovers pairs whose date was corrected between sources.
func (c *Classifier) Classify(a, b *schedule.Event) (schedule.MatchQuality, bool) {
	score := similarity.Score(a.Title, b.Title)
	date := sameDate(a, b)

	switch {
	case score > c.thresholds.ExactTitle && date:
		return schedule.MatchQuality{Tier: TierExactTitleDate, Score: score, Method: MethodExactTitleDate}, true

	case score > c.thresholds.HighTitle && date:
		return schedule.MatchQuality{Tier: TierHighTitleDate, Score: score, Method: MethodHighTitleDate}, true

	case date && sameRoom(a, b) && sameStartTime(a, b) && score > c.thresholds.LogisticsFloor:
		return schedule.MatchQuality{Tier: TierDateRoomTime, Score: score, Method: MethodDateRoomTime}, true

	case score > c.thresholds.ModerateTitle && date:
		return schedule.MatchQuality{Tier: TierModerateTitleDate, Score: score, Method: MethodModerateTitleDate}, true

	case score > c.thresholds.TitleOnly:
		return schedule.MatchQuality{Tier: TierTitleOnly, Score: score, Method: MethodTitleOnly}, true
	}

	return schedule.MatchQuality{}, false
}

// sameDate compares dates by exact string equality.
func sameDate(a, b *schedule.Event) bool {
	return a.Date == b.Date
}

// sameRoom requires both rooms present and equal after normalization.
func sameRoom(a, b *schedule.Event) bool {
	return a.Room != "" && b.Room != "" &&
		similarity.Normalize(a.Room) == similarity.Normalize(b.Room)
}

// sameStartTime requires both start times present and equal on the
// HH:MM prefix. Seconds are ignored.
func sameStartTime(a, b *schedule.Event) bool {
	return a.HasStartTime() && b.HasStartTime() && a.StartMinute() == b.StartMinute()
}
