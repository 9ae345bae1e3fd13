package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schedlink/schedlink/pkg/schedule"
)

func TestStartMinute(t *testing.T) {
	tests := []struct {
		startTime string
		want      string
	}{
		{"09:30:00.000", "09:30"},
		{"09:30:45.000", "09:30"},
		{"", ""},
		{"9:30", "9:30"},
	}
	for _, tt := range tests {
		e := &schedule.Event{StartTime: tt.startTime}
		assert.Equal(t, tt.want, e.StartMinute(), "start time %q", tt.startTime)
	}
}

func TestSpeakerRoundTrip(t *testing.T) {
	speakers := []string{"Ada Lovelace", "Grace Hopper"}
	joined := schedule.JoinSpeakers(speakers)
	assert.Equal(t, "Ada Lovelace; Grace Hopper", joined)
	assert.Equal(t, speakers, schedule.SplitSpeakers(joined))
}

func TestSplitSpeakers(t *testing.T) {
	assert.Nil(t, schedule.SplitSpeakers(""))
	assert.Equal(t, []string{"Solo Speaker"}, schedule.SplitSpeakers("Solo Speaker"))
	assert.Equal(t, []string{"A", "B"}, schedule.SplitSpeakers("A;; B ;"))
}

func TestSortEvents(t *testing.T) {
	events := []*schedule.Event{
		{ID: "3", Date: "2026-02-17", StartTime: "09:00:00.000"},
		{ID: "1", Date: "2026-02-16", StartTime: "10:00:00.000"},
		{ID: "2", Date: "2026-02-16"}, // no start time sorts first in its date
		{ID: "0", Date: "2026-02-16", StartTime: "09:00:00.000"},
	}

	schedule.SortEvents(events)

	got := make([]string, len(events))
	for i, e := range events {
		got[i] = e.ID
	}
	assert.Equal(t, []string{"2", "0", "1", "3"}, got)
}

func TestSortEventsStable(t *testing.T) {
	events := []*schedule.Event{
		{ID: "a", Date: "2026-02-16", StartTime: "09:00:00.000"},
		{ID: "b", Date: "2026-02-16", StartTime: "09:00:00.000"},
	}
	schedule.SortEvents(events)
	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "b", events[1].ID)
}

func TestCountByDate(t *testing.T) {
	events := []*schedule.Event{
		{Date: "2026-02-16"},
		{Date: "2026-02-16"},
		{Date: "2026-02-17"},
	}
	assert.Equal(t, map[string]int{"2026-02-16": 2, "2026-02-17": 1}, schedule.CountByDate(events))
}
