package handler

import (
	"meeting-planner-api/internal/session"
	"meeting-planner-api/internal/store"
	"meeting-planner-api/internal/workflow"
	pb "meeting-planner-api/rpc/meetingv1"
)

type Handler struct {
	pb.UnimplementedMeetingServiceServer
	store    *store.Store
	creator  *workflow.Creator
	sessions *session.Hub
	secret   string
}

func New(st *store.Store, sessions *session.Hub, secret string) *Handler {
	return &Handler{
		store:    st,
		creator:  workflow.NewCreator(st),
		sessions: sessions,
		secret:   secret,
	}
}
