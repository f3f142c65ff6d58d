package model

import "time"

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

// DefaultAgendaDuration is applied when a staged agenda item carries no
// duration; durations below one minute are clamped up to one.
const DefaultAgendaDuration = 15

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Meeting struct {
	ID           string
	Title        string
	Description  string
	Location     string
	StartTime    time.Time
	EndTime      time.Time
	CreatedBy    string
	CreatedAt    time.Time
	Participants []Participant
	AgendaItems  []AgendaItem
}

// Participant is the join record linking a user to a meeting, carrying the
// invitation response status and a denormalized copy of the user's identity
// for display.
type Participant struct {
	ID        string
	MeetingID string
	UserID    string
	Name      string
	Email     string
	Status    string
}

type AgendaItem struct {
	ID              string
	MeetingID       string
	Title           string
	Description     string
	DurationMinutes int
	Order           int
}

// MeetingDraft is the staged form input for a meeting before submission.
// Date and the two times-of-day arrive as entered and are combined into
// absolute timestamps by the creation workflow.
type MeetingDraft struct {
	Title        string
	Description  string
	Location     string
	Date         string // 2006-01-02
	StartTime    string // 15:04
	EndTime      string // 15:04
	Participants []ParticipantDraft
	AgendaItems  []AgendaDraft
}

type ParticipantDraft struct {
	Name  string
	Email string
}

type AgendaDraft struct {
	Title           string
	Description     string
	DurationMinutes int
}
