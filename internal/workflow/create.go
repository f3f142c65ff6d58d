// Package workflow turns a staged meeting draft into persisted rows: the
// meeting itself, one user and one participant link per staged participant,
// and one agenda item per staged entry.
package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"meeting-planner-api/internal/model"
)

// Store is the slice of the persistence layer the workflow drives.
type Store interface {
	CreateMeeting(ctx context.Context, m *model.Meeting) error
	ReconcileUserByEmail(ctx context.Context, id, email, name string) (string, error)
	AddParticipant(ctx context.Context, p *model.Participant) error
	AddAgendaItem(ctx context.Context, a *model.AgendaItem) error
}

type Step string

const (
	StepMeeting      Step = "meeting"
	StepParticipants Step = "participants"
	StepAgenda       Step = "agenda"
)

// StepError reports which phase of the workflow failed and, for the
// per-record phases, the index of the record that failed. Earlier writes are
// not rolled back; the error is the only record of the partial state.
type StepError struct {
	Step  Step
	Index int
	Err   error
}

func (e *StepError) Error() string {
	if e.Step == StepMeeting {
		return fmt.Sprintf("create meeting: %v", e.Err)
	}
	return fmt.Sprintf("create meeting: %s[%d]: %v", e.Step, e.Index, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

type Creator struct {
	store Store
}

func NewCreator(st Store) *Creator {
	return &Creator{store: st}
}

// Create runs the submission workflow for creatorID. The steps are strictly
// sequential: meeting first, then each participant in staged order (email
// reconciled to a user id, then the pending link), then each agenda item
// with its 1-based position. A failure aborts the remaining steps and leaves
// everything already written in place.
//
// The time range is stored exactly as entered; an end before the start is
// accepted.
func (c *Creator) Create(ctx context.Context, creatorID string, d model.MeetingDraft) (*model.Meeting, error) {
	start, err := combineDateTime(d.Date, d.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start: %w", err)
	}
	end, err := combineDateTime(d.Date, d.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end: %w", err)
	}

	m := &model.Meeting{
		ID:          uuid.New().String(),
		Title:       d.Title,
		Description: d.Description,
		Location:    d.Location,
		StartTime:   start,
		EndTime:     end,
		CreatedBy:   creatorID,
	}
	if err := c.store.CreateMeeting(ctx, m); err != nil {
		return nil, &StepError{Step: StepMeeting, Err: err}
	}

	for i, pd := range d.Participants {
		userID, err := c.store.ReconcileUserByEmail(ctx, uuid.New().String(), pd.Email, pd.Name)
		if err != nil {
			return nil, &StepError{Step: StepParticipants, Index: i, Err: err}
		}
		p := model.Participant{
			ID:        uuid.New().String(),
			MeetingID: m.ID,
			UserID:    userID,
			Name:      pd.Name,
			Email:     pd.Email,
			Status:    model.StatusPending,
		}
		if err := c.store.AddParticipant(ctx, &p); err != nil {
			return nil, &StepError{Step: StepParticipants, Index: i, Err: err}
		}
		m.Participants = append(m.Participants, p)
	}

	for i, ad := range d.AgendaItems {
		dur := ad.DurationMinutes
		if dur == 0 {
			dur = model.DefaultAgendaDuration
		}
		if dur < 1 {
			dur = 1
		}
		a := model.AgendaItem{
			ID:              uuid.New().String(),
			MeetingID:       m.ID,
			Title:           ad.Title,
			Description:     ad.Description,
			DurationMinutes: dur,
			Order:           i + 1,
		}
		if err := c.store.AddAgendaItem(ctx, &a); err != nil {
			return nil, &StepError{Step: StepAgenda, Index: i, Err: err}
		}
		m.AgendaItems = append(m.AgendaItems, a)
	}

	return m, nil
}

func combineDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
}
