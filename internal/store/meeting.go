package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"meeting-planner-api/internal/model"
)

func (s *Store) CreateMeeting(ctx context.Context, m *model.Meeting) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO meetings (id, title, description, location, start_time, end_time, created_by)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 RETURNING created_at`,
		m.ID, m.Title, m.Description, m.Location, m.StartTime, m.EndTime, m.CreatedBy,
	).Scan(&m.CreatedAt)
}

func (s *Store) AddParticipant(ctx context.Context, p *model.Participant) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO meeting_participants (id, meeting_id, user_id, status) VALUES ($1,$2,$3,$4)`,
		p.ID, p.MeetingID, p.UserID, p.Status,
	)
	return err
}

func (s *Store) AddAgendaItem(ctx context.Context, a *model.AgendaItem) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO agenda_items (id, meeting_id, title, description, duration_minutes, "order")
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		a.ID, a.MeetingID, a.Title, a.Description, a.DurationMinutes, a.Order,
	)
	return err
}

// ListMeetingsCreatedBy returns the meetings the user organizes, ordered by
// start time, with participants and agenda expanded.
func (s *Store) ListMeetingsCreatedBy(ctx context.Context, userID string) ([]model.Meeting, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, description, location, start_time, end_time, created_by, created_at
		 FROM meetings
		 WHERE created_by = $1
		 ORDER BY start_time`, userID,
	)
	if err != nil {
		return nil, err
	}
	meetings, err := scanMeetings(rows)
	if err != nil {
		return nil, err
	}
	return s.expandMeetings(ctx, meetings)
}

// ListMeetingsParticipating returns meetings where the user holds a
// participant link but is not the creator.
func (s *Store) ListMeetingsParticipating(ctx context.Context, userID string) ([]model.Meeting, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT m.id, m.title, m.description, m.location, m.start_time, m.end_time, m.created_by, m.created_at
		 FROM meetings m
		 JOIN meeting_participants mp ON mp.meeting_id = m.id
		 WHERE mp.user_id = $1 AND m.created_by <> $1
		 ORDER BY m.start_time`, userID,
	)
	if err != nil {
		return nil, err
	}
	meetings, err := scanMeetings(rows)
	if err != nil {
		return nil, err
	}
	return s.expandMeetings(ctx, meetings)
}

func scanMeetings(rows pgx.Rows) ([]model.Meeting, error) {
	defer rows.Close()
	var out []model.Meeting
	for rows.Next() {
		var m model.Meeting
		if err := rows.Scan(
			&m.ID, &m.Title, &m.Description, &m.Location,
			&m.StartTime, &m.EndTime, &m.CreatedBy, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// expandMeetings loads participant links (joined with user identity) and
// agenda items for the given meetings in two queries.
func (s *Store) expandMeetings(ctx context.Context, meetings []model.Meeting) ([]model.Meeting, error) {
	if len(meetings) == 0 {
		return meetings, nil
	}

	ids := make([]string, len(meetings))
	byID := make(map[string]*model.Meeting, len(meetings))
	for i := range meetings {
		ids[i] = meetings[i].ID
		byID[meetings[i].ID] = &meetings[i]
	}

	rows, err := s.pool.Query(ctx,
		`SELECT mp.id, mp.meeting_id, mp.user_id, u.name, u.email, mp.status
		 FROM meeting_participants mp
		 JOIN users u ON u.id = mp.user_id
		 WHERE mp.meeting_id = ANY($1)
		 ORDER BY mp.created_at`, ids,
	)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var p model.Participant
		if err := rows.Scan(&p.ID, &p.MeetingID, &p.UserID, &p.Name, &p.Email, &p.Status); err != nil {
			rows.Close()
			return nil, err
		}
		if m := byID[p.MeetingID]; m != nil {
			m.Participants = append(m.Participants, p)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx,
		`SELECT id, meeting_id, title, description, COALESCE(duration_minutes, 0), "order"
		 FROM agenda_items
		 WHERE meeting_id = ANY($1)
		 ORDER BY meeting_id, "order"`, ids,
	)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var a model.AgendaItem
		if err := rows.Scan(&a.ID, &a.MeetingID, &a.Title, &a.Description, &a.DurationMinutes, &a.Order); err != nil {
			rows.Close()
			return nil, err
		}
		if m := byID[a.MeetingID]; m != nil {
			m.AgendaItems = append(m.AgendaItems, a)
		}
	}
	rows.Close()
	return meetings, rows.Err()
}
