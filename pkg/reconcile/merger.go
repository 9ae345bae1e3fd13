package reconcile

import (
	"github.com/schedlink/schedlink/pkg/schedule"
)

// DefaultDescriptionMargin is how many characters longer a spreadsheet
// description must be than the production one before it is attached as
// supplemental data. The margin exists to avoid flagging trivial
// rewordings as richer. Empirically chosen; treat as configuration.
const DefaultDescriptionMargin = 50

// Merger produces one merged record per committed pair and passthrough
// or synthesized records for the unmatched residue. The production
// record always wins where both sources carry a value; spreadsheet data
// only fills gaps or rides along as supplemental fields.
type Merger struct {
	descriptionMargin int
}

// NewMerger creates a Merger with the given description margin.
func NewMerger(descriptionMargin int) *Merger {
	return &Merger{descriptionMargin: descriptionMargin}
}

// MergePair merges a committed pair: the production record verbatim,
// tagged "both", with spreadsheet enrichment applied only where
// production is missing or strictly weaker.
func (m *Merger) MergePair(p *schedule.ProductionEvent, x *schedule.Event, quality schedule.MatchQuality) *schedule.MergedEvent {
	merged := &schedule.MergedEvent{
		ProductionEvent: *p,
		Source:          schedule.SourceBoth,
		MatchQuality:    &quality,
	}

	if x.EndTime != "" && merged.EndTime == "" {
		merged.EndTime = x.EndTime
	}
	if len(x.Speakers) > 0 {
		merged.XLSXSpeakers = x.Speakers
	}
	if m.richerDescription(x.Description, merged.Description) {
		merged.XLSXDescription = x.Description
	}
	if x.TimeRaw != "" {
		merged.XLSXTimeRaw = x.TimeRaw
	}

	return merged
}

// Passthrough wraps an unmatched production record unchanged.
func (m *Merger) Passthrough(p *schedule.ProductionEvent) *schedule.MergedEvent {
	return &schedule.MergedEvent{
		ProductionEvent: *p,
		Source:          schedule.SourceProductionOnly,
	}
}

// Synthesize builds a merged record entirely from spreadsheet fields.
// All enrichment attributes stay explicitly unset; the record is flagged
// for the later enrichment pass. The spreadsheet identity stands in for
// the production event_id until then.
func (m *Merger) Synthesize(x *schedule.Event) *schedule.MergedEvent {
	return &schedule.MergedEvent{
		ProductionEvent: schedule.ProductionEvent{
			Title:         x.Title,
			Description:   x.Description,
			Date:          x.Date,
			StartTime:     x.StartTime,
			EndTime:       x.EndTime,
			Venue:         x.Venue,
			Room:          x.Room,
			Speakers:      x.SpeakersJoined,
			EventID:       x.ID,
			AddToCalendar: true,
			LogoURLs:      []string{},
		},
		Source:       schedule.SourceXLSXOnly,
		XLSXSpeakers: x.Speakers,
		XLSXTimeRaw:  x.TimeRaw,
	}
}

// richerDescription applies the margin rule: the spreadsheet description
// counts as richer when production has none, or when it is more than the
// margin longer.
func (m *Merger) richerDescription(sheetDesc, prodDesc string) bool {
	if sheetDesc == "" {
		return false
	}
	return prodDesc == "" || len(sheetDesc) > len(prodDesc)+m.descriptionMargin
}
