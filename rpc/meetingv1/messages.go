// Package meetingv1 holds the wire types for the MeetingService RPC surface.
//
// The messages mirror proto/meeting/v1/meeting.proto but are maintained by
// hand: encoding and decoding go through protowire directly (see wire.go)
// instead of protoc-generated reflection code, which keeps the dependency
// surface identical to the gRPC-Web bridge that frames the same bytes.
package meetingv1

import "google.golang.org/protobuf/types/known/timestamppb"

type RegisterRequest struct {
	Email    string
	Password string
	Name     string
}

type RegisterResponse struct {
	UserId       string
	Token        string
	RefreshToken string
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResponse struct {
	Token        string
	UserId       string
	Name         string
	RefreshToken string
}

type RefreshRequest struct {
	RefreshToken string
}

type RefreshResponse struct {
	Token        string
	RefreshToken string
}

type LogoutRequest struct {
	RefreshToken string
}

type LogoutResponse struct{}

type GetSessionRequest struct{}

type GetSessionResponse struct {
	User *User
}

type User struct {
	Id    string
	Email string
	Name  string
}

type ParticipantDraft struct {
	Name  string
	Email string
}

type AgendaDraft struct {
	Title           string
	Description     string
	DurationMinutes int32
}

type CreateMeetingRequest struct {
	Title       string
	Description string
	Location    string
	// Date is "2006-01-02"; StartTime/EndTime are "15:04" times of day.
	Date         string
	StartTime    string
	EndTime      string
	Participants []*ParticipantDraft
	AgendaItems  []*AgendaDraft
}

type CreateMeetingResponse struct {
	Meeting *Meeting
}

type ListMeetingsRequest struct{}

type ListMeetingsResponse struct {
	Meetings []*Meeting
}

type Meeting struct {
	Id           string
	Title        string
	Description  string
	Location     string
	StartTime    *timestamppb.Timestamp
	EndTime      *timestamppb.Timestamp
	CreatedBy    string
	Participants []*Participant
	AgendaItems  []*AgendaItem
	CreatedAt    *timestamppb.Timestamp
}

type Participant struct {
	Id     string
	UserId string
	Name   string
	Email  string
	Status string
}

type AgendaItem struct {
	Id              string
	Title           string
	Description     string
	DurationMinutes int32
	Order           int32
}
