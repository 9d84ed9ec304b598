package models

import "time"

// Status is the lifecycle state of a debate, derived from its time window.
type Status string

// Debate status values, ordered scheduled -> active -> expired.
const (
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
)

// DeriveStatus maps a time window to a debate status. The stored status is
// only a cache of this function's result; callers listing several debates
// must pass the same now to every call so the statuses shown together are
// mutually consistent.
func DeriveStatus(now, start, end time.Time) Status {
	if now.After(end) {
		return StatusExpired
	}
	if now.Before(start) {
		return StatusScheduled
	}
	return StatusActive
}

// Debate is a time-boxed discussion tied to at most one topic. TopicID is a
// weak reference; 0 means the debate was created standalone. Participants is
// an insertion-ordered set of user ids.
type Debate struct {
	ID            int       `json:"id"`
	TopicID       int       `json:"topicId"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Status        Status    `json:"status"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Participants  []string  `json:"participants"`
	Comments      []Comment `json:"comments"`
	LastCommentID int       `json:"lastCommentId,omitempty"`
}

// HasParticipant reports whether the user already joined the debate.
func (d *Debate) HasParticipant(userID string) bool {
	for _, id := range d.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

// Comment is a single debate comment. Author is a snapshot of the user's
// display name at post time and is never recomputed from UserID.
type Comment struct {
	ID      int       `json:"id"`
	UserID  string    `json:"userId"`
	Author  string    `json:"author"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}
