package handler

import (
	"context"
	"errors"
	"sort"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"meeting-planner-api/internal/middleware"
	"meeting-planner-api/internal/model"
	"meeting-planner-api/internal/workflow"
	pb "meeting-planner-api/rpc/meetingv1"
)

func uid(ctx context.Context) string {
	return ctx.Value(middleware.UserIDKey).(string)
}

func (h *Handler) CreateMeeting(ctx context.Context, req *pb.CreateMeetingRequest) (*pb.CreateMeetingResponse, error) {
	userID := uid(ctx)

	// required-field checks only; the time range itself is not validated,
	// an inverted range is stored as entered
	if req.Title == "" {
		return nil, status.Error(codes.InvalidArgument, "title required")
	}
	if req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		return nil, status.Error(codes.InvalidArgument, "date and times required")
	}

	draft := model.MeetingDraft{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	for _, p := range req.Participants {
		if p == nil {
			continue
		}
		draft.Participants = append(draft.Participants, model.ParticipantDraft{
			Name:  p.Name,
			Email: p.Email,
		})
	}
	for _, a := range req.AgendaItems {
		if a == nil {
			continue
		}
		draft.AgendaItems = append(draft.AgendaItems, model.AgendaDraft{
			Title:           a.Title,
			Description:     a.Description,
			DurationMinutes: int(a.DurationMinutes),
		})
	}

	m, err := h.creator.Create(ctx, userID, draft)
	if err != nil {
		return nil, creationStatus(err)
	}
	return &pb.CreateMeetingResponse{Meeting: toProto(m)}, nil
}

func (h *Handler) ListMeetings(ctx context.Context, _ *pb.ListMeetingsRequest) (*pb.ListMeetingsResponse, error) {
	userID := uid(ctx)

	created, err := h.store.ListMeetingsCreatedBy(ctx, userID)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	participating, err := h.store.ListMeetingsParticipating(ctx, userID)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	// both sets arrive ordered, but the concatenation is re-sorted as a whole
	all := append(created, participating...)
	sort.Slice(all, func(i, j int) bool {
		return all[i].StartTime.Before(all[j].StartTime)
	})

	out := make([]*pb.Meeting, len(all))
	for i := range all {
		out[i] = toProto(&all[i])
	}
	return &pb.ListMeetingsResponse{Meetings: out}, nil
}

// creationStatus maps workflow failures onto the error banner the submitter
// sees. The message is surfaced as-is; nothing already persisted is undone.
func creationStatus(err error) error {
	var se *workflow.StepError
	if errors.As(err, &se) {
		return status.Error(codes.Internal, se.Error())
	}
	// unparseable date or time-of-day
	return status.Error(codes.InvalidArgument, err.Error())
}

func toProto(m *model.Meeting) *pb.Meeting {
	p := &pb.Meeting{
		Id:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Location:    m.Location,
		CreatedBy:   m.CreatedBy,
	}
	if !m.StartTime.IsZero() {
		p.StartTime = timestamppb.New(m.StartTime)
	}
	if !m.EndTime.IsZero() {
		p.EndTime = timestamppb.New(m.EndTime)
	}
	if !m.CreatedAt.IsZero() {
		p.CreatedAt = timestamppb.New(m.CreatedAt)
	}

	for _, pt := range m.Participants {
		p.Participants = append(p.Participants, &pb.Participant{
			Id:     pt.ID,
			UserId: pt.UserID,
			Name:   pt.Name,
			Email:  pt.Email,
			Status: pt.Status,
		})
	}

	// fetch order is not guaranteed to match the order column; re-sort
	// before serializing
	items := append([]model.AgendaItem(nil), m.AgendaItems...)
	sort.Slice(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	for _, a := range items {
		p.AgendaItems = append(p.AgendaItems, &pb.AgendaItem{
			Id:              a.ID,
			Title:           a.Title,
			Description:     a.Description,
			DurationMinutes: int32(a.DurationMinutes),
			Order:           int32(a.Order),
		})
	}

	return p
}
