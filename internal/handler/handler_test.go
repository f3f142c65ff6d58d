package handler_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"meeting-planner-api/internal/handler"
	"meeting-planner-api/internal/middleware"
	"meeting-planner-api/internal/session"
	"meeting-planner-api/internal/store"
	pb "meeting-planner-api/rpc/meetingv1"
)

func setup(t *testing.T) (*handler.Handler, *store.Store, *session.Hub) {
	t.Helper()
	_ = godotenv.Load("../../.env")
	dbURL := os.Getenv("DATABASE_URL")
	secret := os.Getenv("JWT_SECRET")
	if dbURL == "" || secret == "" {
		t.Skip("DATABASE_URL or JWT_SECRET not set")
	}
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(pool.Close)

	if migration, err := os.ReadFile("../../db/migrations/001_init.sql"); err == nil {
		_, _ = pool.Exec(context.Background(), string(migration))
	}

	st := store.New(pool)
	sessions := session.NewHub()
	return handler.New(st, sessions, secret), st, sessions
}

func authedCtx(uid string) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, uid)
}

func registerUser(t *testing.T, h *handler.Handler) (userID, email string) {
	t.Helper()
	email = fmt.Sprintf("test-%s@test.com", uuid.New().String()[:8])
	rr, err := h.Register(context.Background(), &pb.RegisterRequest{
		Email: email, Password: "testpass123", Name: "Test User",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return rr.UserId, email
}

func createMeeting(t *testing.T, h *handler.Handler, ctx context.Context, title, date, start, end string) *pb.Meeting {
	t.Helper()
	cr, err := h.CreateMeeting(ctx, &pb.CreateMeetingRequest{
		Title:     title,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		t.Fatalf("create meeting: %v", err)
	}
	return cr.Meeting
}

// ----- auth tests -----

func TestRegister(t *testing.T) {
	h, _, _ := setup(t)

	email := fmt.Sprintf("test-%s@test.com", uuid.New().String()[:8])
	rr, err := h.Register(context.Background(), &pb.RegisterRequest{
		Email: email, Password: "testpass123", Name: "Test User",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if rr.UserId == "" || rr.Token == "" || rr.RefreshToken == "" {
		t.Fatalf("incomplete response: %+v", rr)
	}
}

func TestRegisterValidation(t *testing.T) {
	h, _, _ := setup(t)

	tests := []struct {
		name string
		req  *pb.RegisterRequest
	}{
		{"empty email", &pb.RegisterRequest{Email: "", Password: "testpass123", Name: "X"}},
		{"empty password", &pb.RegisterRequest{Email: "a@b.com", Password: "", Name: "X"}},
		{"short password", &pb.RegisterRequest{Email: "a@b.com", Password: "short", Name: "X"}},
		{"empty name", &pb.RegisterRequest{Email: "a@b.com", Password: "testpass123", Name: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Register(context.Background(), tt.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			s, _ := status.FromError(err)
			if s.Code() != codes.InvalidArgument {
				t.Errorf("expected InvalidArgument, got %v", s.Code())
			}
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	h, _, _ := setup(t)
	_, email := registerUser(t, h)

	_, err := h.Register(context.Background(), &pb.RegisterRequest{
		Email: email, Password: "testpass123", Name: "Second",
	})
	if err == nil {
		t.Fatal("expected error for duplicate email")
	}
	s, _ := status.FromError(err)
	if s.Code() != codes.AlreadyExists {
		t.Errorf("expected AlreadyExists, got %v", s.Code())
	}
}

func TestLoginSuccess(t *testing.T) {
	h, _, _ := setup(t)
	_, email := registerUser(t, h)

	lr, err := h.Login(context.Background(), &pb.LoginRequest{
		Email: email, Password: "testpass123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if lr.Token == "" || lr.RefreshToken == "" {
		t.Fatal("missing tokens")
	}
	if lr.Name != "Test User" {
		t.Errorf("expected name 'Test User', got '%s'", lr.Name)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h, _, _ := setup(t)
	_, email := registerUser(t, h)

	_, err := h.Login(context.Background(), &pb.LoginRequest{
		Email: email, Password: "wrongpassword",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	s, _ := status.FromError(err)
	if s.Code() != codes.Unauthenticated {
		t.Errorf("expected Unauthenticated, got %v", s.Code())
	}
}

func TestRefreshRotation(t *testing.T) {
	h, _, _ := setup(t)
	_, email := registerUser(t, h)

	lr, err := h.Login(context.Background(), &pb.LoginRequest{Email: email, Password: "testpass123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	rr, err := h.Refresh(context.Background(), &pb.RefreshRequest{RefreshToken: lr.RefreshToken})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rr.Token == "" || rr.RefreshToken == "" || rr.RefreshToken == lr.RefreshToken {
		t.Fatalf("expected rotated tokens, got %+v", rr)
	}

	// the old token is revoked by rotation
	if _, err := h.Refresh(context.Background(), &pb.RefreshRequest{RefreshToken: lr.RefreshToken}); err == nil {
		t.Fatal("expected old refresh token to be rejected")
	}
}

func TestLogoutRevokesTokens(t *testing.T) {
	h, _, _ := setup(t)
	_, email := registerUser(t, h)

	lr, err := h.Login(context.Background(), &pb.LoginRequest{Email: email, Password: "testpass123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := h.Logout(context.Background(), &pb.LogoutRequest{RefreshToken: lr.RefreshToken}); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := h.Refresh(context.Background(), &pb.RefreshRequest{RefreshToken: lr.RefreshToken}); err == nil {
		t.Fatal("expected refresh to fail after logout")
	}

	// logging out again is a no-op
	if _, err := h.Logout(context.Background(), &pb.LogoutRequest{RefreshToken: lr.RefreshToken}); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestGetSession(t *testing.T) {
	h, _, _ := setup(t)
	uid, email := registerUser(t, h)

	gr, err := h.GetSession(authedCtx(uid), &pb.GetSessionRequest{})
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if gr.User == nil || gr.User.Id != uid || gr.User.Email != email {
		t.Errorf("session user: %+v", gr.User)
	}
}

func TestSessionEventsPublished(t *testing.T) {
	h, _, sessions := setup(t)

	var kinds []session.EventKind
	defer sessions.Subscribe(func(e session.Event) { kinds = append(kinds, e.Kind) })()

	_, email := registerUser(t, h)
	lr, _ := h.Login(context.Background(), &pb.LoginRequest{Email: email, Password: "testpass123"})
	h.Logout(context.Background(), &pb.LogoutRequest{RefreshToken: lr.RefreshToken})

	want := []session.EventKind{session.SignedIn, session.SignedIn, session.SignedOut}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d: got %s, want %s", i, kinds[i], want[i])
		}
	}
}

// ----- meeting creation -----

func TestCreateMeeting(t *testing.T) {
	h, _, _ := setup(t)
	uid, _ := registerUser(t, h)
	ctx := authedCtx(uid)

	beaEmail := fmt.Sprintf("bea-%s@x.com", uuid.New().String()[:8])
	cr, err := h.CreateMeeting(ctx, &pb.CreateMeetingRequest{
		Title:       "Sync",
		Description: "weekly sync",
		Location:    "Room A",
		Date:        "2031-01-10",
		StartTime:   "09:00",
		EndTime:     "09:30",
		Participants: []*pb.ParticipantDraft{
			{Name: "Bea", Email: beaEmail},
		},
		AgendaItems: []*pb.AgendaDraft{
			{Title: "Status", DurationMinutes: 15},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	m := cr.Meeting
	if m.Id == "" || m.Title != "Sync" || m.CreatedBy != uid {
		t.Fatalf("meeting: %+v", m)
	}
	if len(m.Participants) != 1 || m.Participants[0].Status != "pending" {
		t.Fatalf("participants: %+v", m.Participants)
	}
	if len(m.AgendaItems) != 1 || m.AgendaItems[0].Order != 1 || m.AgendaItems[0].DurationMinutes != 15 {
		t.Fatalf("agenda: %+v", m.AgendaItems)
	}
}

func TestCreateMeetingValidation(t *testing.T) {
	h, _, _ := setup(t)
	uid, _ := registerUser(t, h)
	ctx := authedCtx(uid)

	tests := []struct {
		name string
		req  *pb.CreateMeetingRequest
	}{
		{"empty title", &pb.CreateMeetingRequest{Date: "2031-01-10", StartTime: "09:00", EndTime: "10:00"}},
		{"missing date", &pb.CreateMeetingRequest{Title: "X", StartTime: "09:00", EndTime: "10:00"}},
		{"missing start", &pb.CreateMeetingRequest{Title: "X", Date: "2031-01-10", EndTime: "10:00"}},
		{"missing end", &pb.CreateMeetingRequest{Title: "X", Date: "2031-01-10", StartTime: "09:00"}},
		{"bad date", &pb.CreateMeetingRequest{Title: "X", Date: "someday", StartTime: "09:00", EndTime: "10:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.CreateMeeting(ctx, tt.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			s, _ := status.FromError(err)
			if s.Code() != codes.InvalidArgument {
				t.Errorf("expected InvalidArgument, got %v", s.Code())
			}
		})
	}
}

func TestCreateMeetingAcceptsInvertedRange(t *testing.T) {
	h, _, _ := setup(t)
	uid, _ := registerUser(t, h)
	ctx := authedCtx(uid)

	// end before start is stored as entered, not rejected
	m := createMeeting(t, h, ctx, "Backwards", "2031-01-10", "17:00", "09:00")
	if !m.EndTime.AsTime().Before(m.StartTime.AsTime()) {
		t.Error("expected inverted range to be persisted as entered")
	}
}

func TestCreateMeetingReusesParticipantAccount(t *testing.T) {
	h, _, _ := setup(t)
	uidA, _ := registerUser(t, h)
	uidB, emailB := registerUser(t, h)
	ctx := authedCtx(uidA)

	cr, err := h.CreateMeeting(ctx, &pb.CreateMeetingRequest{
		Title: "Sync", Date: "2031-01-10", StartTime: "09:00", EndTime: "09:30",
		Participants: []*pb.ParticipantDraft{{Name: "Someone Else", Email: emailB}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if cr.Meeting.Participants[0].UserId != uidB {
		t.Errorf("expected link to existing account %s, got %s", uidB, cr.Meeting.Participants[0].UserId)
	}
}

// ----- listing -----

func TestListMeetingsMergedAndSorted(t *testing.T) {
	h, _, _ := setup(t)
	uidA, emailA := registerUser(t, h)
	uidB, _ := registerUser(t, h)

	// A organizes two meetings, B invites A to a third in between
	createMeeting(t, h, authedCtx(uidA), "First", "2031-03-01", "09:00", "10:00")
	createMeeting(t, h, authedCtx(uidA), "Third", "2031-03-03", "09:00", "10:00")
	_, err := h.CreateMeeting(authedCtx(uidB), &pb.CreateMeetingRequest{
		Title: "Second", Date: "2031-03-02", StartTime: "09:00", EndTime: "10:00",
		Participants: []*pb.ParticipantDraft{{Name: "A", Email: emailA}},
	})
	if err != nil {
		t.Fatalf("create as B: %v", err)
	}

	lr, err := h.ListMeetings(authedCtx(uidA), &pb.ListMeetingsRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lr.Meetings) != 3 {
		t.Fatalf("expected 3 meetings, got %d", len(lr.Meetings))
	}
	for i := 1; i < len(lr.Meetings); i++ {
		if lr.Meetings[i].StartTime.AsTime().Before(lr.Meetings[i-1].StartTime.AsTime()) {
			t.Fatal("meetings not sorted by start time")
		}
	}
	if lr.Meetings[1].Title != "Second" || lr.Meetings[1].CreatedBy != uidB {
		t.Errorf("guest meeting misplaced: %+v", lr.Meetings[1])
	}
}

func TestListMeetingsEmpty(t *testing.T) {
	h, _, _ := setup(t)
	uid, _ := registerUser(t, h)

	lr, err := h.ListMeetings(authedCtx(uid), &pb.ListMeetingsRequest{})
	if err != nil {
		t.Fatalf("empty list must not error: %v", err)
	}
	if len(lr.Meetings) != 0 {
		t.Errorf("expected no meetings, got %d", len(lr.Meetings))
	}
}

func TestAgendaOrderPersisted(t *testing.T) {
	h, _, _ := setup(t)
	uid, _ := registerUser(t, h)
	ctx := authedCtx(uid)

	_, err := h.CreateMeeting(ctx, &pb.CreateMeetingRequest{
		Title: "Planning", Date: "2031-04-01", StartTime: "09:00", EndTime: "11:00",
		AgendaItems: []*pb.AgendaDraft{
			{Title: "Intro", DurationMinutes: 5},
			{Title: "Roadmap", DurationMinutes: 45},
			{Title: "AOB"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	lr, err := h.ListMeetings(ctx, &pb.ListMeetingsRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var items []*pb.AgendaItem
	for _, m := range lr.Meetings {
		if m.Title == "Planning" {
			items = m.AgendaItems
		}
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 agenda items, got %d", len(items))
	}
	for i, it := range items {
		if it.Order != int32(i+1) {
			t.Errorf("item %d: order=%d", i, it.Order)
		}
	}
	if items[2].DurationMinutes != 15 {
		t.Errorf("default duration: got %d", items[2].DurationMinutes)
	}
}
