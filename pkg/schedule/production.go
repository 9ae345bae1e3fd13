package schedule

// Keyword is a categorized topic tag attached to production events by the
// enrichment pipeline.
type Keyword struct {
	Category string `json:"category"`
	Keyword  string `json:"keyword"`
}

// NetworkingSignals is the enrichment block describing who an event tends
// to attract.
type NetworkingSignals struct {
	IsHeavyHitter        bool   `json:"is_heavy_hitter"`
	DecisionMakerDensity string `json:"decision_maker_density"` // High | Medium | Low
	InvestorPresence     string `json:"investor_presence"`      // Likely | Unlikely
}

// ProductionEvent is a session record as stored in the production content
// store. It carries the same scheduling fields as Event plus the
// enrichment attributes that only exist on the production side.
//
// Enrichment fields are pointers so that a synthesized record can leave
// them explicitly unset pending a later enrichment pass.
type ProductionEvent struct {
	ID          *int64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Venue       string `json:"venue,omitempty"`
	Room        string `json:"room,omitempty"`
	Speakers    string `json:"speakers,omitempty"` // semicolon-joined

	KnowledgePartners *string `json:"knowledge_partners"`
	SessionType       *string `json:"session_type"`

	// EventID is the production store's stable identifier. For
	// synthesized spreadsheet-only records it holds the spreadsheet
	// identity as a placeholder until enrichment assigns a real one.
	EventID string `json:"event_id"`

	AddToCalendar bool    `json:"add_to_calendar"`
	Notes         *string `json:"notes"`

	// Enrichment attributes. Absent on records that have not been
	// through the enrichment pass.
	SummaryOneLiner   *string            `json:"summary_one_liner"`
	TechnicalDepth    *int               `json:"technical_depth"`
	TargetPersonas    []string           `json:"target_personas"`
	NetworkingSignals *NetworkingSignals `json:"networking_signals"`
	Keywords          []Keyword          `json:"keywords"`
	GoalRelevance     []string           `json:"goal_relevance"`
	Icebreaker        *string            `json:"icebreaker"`
	NetworkingTip     *string            `json:"networking_tip"`
	LogoURLs          []string           `json:"logo_urls"`
}

// SpeakerList returns the parsed speaker names from the joined rendering.
func (p *ProductionEvent) SpeakerList() []string {
	return SplitSpeakers(p.Speakers)
}

// Event projects the production record onto the canonical Event shape so
// it can flow through the classifier and assignment engine. Identity is
// the production event_id.
func (p *ProductionEvent) Event() *Event {
	return &Event{
		ID:             p.EventID,
		Title:          p.Title,
		Date:           p.Date,
		StartTime:      p.StartTime,
		EndTime:        p.EndTime,
		Venue:          p.Venue,
		Room:           p.Room,
		Speakers:       p.SpeakerList(),
		SpeakersJoined: p.Speakers,
		Description:    p.Description,
		SourceTag:      "production",
	}
}
