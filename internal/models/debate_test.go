package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected Status
	}{
		{"window open", now.Add(-day), now.Add(day), StatusActive},
		{"window in future", now.Add(day), now.Add(2 * day), StatusScheduled},
		{"window in past", now.Add(-2 * day), now.Add(-day), StatusExpired},
		{"now equals start", now, now.Add(day), StatusActive},
		{"now equals end", now.Add(-day), now, StatusActive},
		{"end before start, now after end", now.Add(day), now.Add(-day), StatusExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveStatus(now, tt.start, tt.end))
		})
	}
}

// Status must never regress as now advances: once a debate is expired it
// stays expired, and scheduled can only move forward through active.
func TestDeriveStatus_MonotonicInNow(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	rank := map[Status]int{StatusScheduled: 0, StatusActive: 1, StatusExpired: 2}

	prev := StatusScheduled
	for now := start.Add(-72 * time.Hour); now.Before(end.Add(72 * time.Hour)); now = now.Add(time.Hour) {
		got := DeriveStatus(now, start, end)
		assert.GreaterOrEqual(t, rank[got], rank[prev], "status regressed at %s", now)
		prev = got
	}
	assert.Equal(t, StatusExpired, prev)
}

func TestDebate_HasParticipant(t *testing.T) {
	d := &Debate{Participants: []string{"a", "b"}}
	assert.True(t, d.HasParticipant("a"))
	assert.False(t, d.HasParticipant("c"))
	assert.False(t, (&Debate{}).HasParticipant("a"))
}
