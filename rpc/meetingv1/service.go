package meetingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	MeetingService_Register_FullMethodName      = "/meeting.v1.MeetingService/Register"
	MeetingService_Login_FullMethodName         = "/meeting.v1.MeetingService/Login"
	MeetingService_Refresh_FullMethodName       = "/meeting.v1.MeetingService/Refresh"
	MeetingService_Logout_FullMethodName        = "/meeting.v1.MeetingService/Logout"
	MeetingService_GetSession_FullMethodName    = "/meeting.v1.MeetingService/GetSession"
	MeetingService_CreateMeeting_FullMethodName = "/meeting.v1.MeetingService/CreateMeeting"
	MeetingService_ListMeetings_FullMethodName  = "/meeting.v1.MeetingService/ListMeetings"
)

type MeetingServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Refresh(context.Context, *RefreshRequest) (*RefreshResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error)
	CreateMeeting(context.Context, *CreateMeetingRequest) (*CreateMeetingResponse, error)
	ListMeetings(context.Context, *ListMeetingsRequest) (*ListMeetingsResponse, error)
}

// UnimplementedMeetingServiceServer can be embedded for forward compatibility.
type UnimplementedMeetingServiceServer struct{}

func (UnimplementedMeetingServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedMeetingServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedMeetingServiceServer) Refresh(context.Context, *RefreshRequest) (*RefreshResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Refresh not implemented")
}
func (UnimplementedMeetingServiceServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedMeetingServiceServer) GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSession not implemented")
}
func (UnimplementedMeetingServiceServer) CreateMeeting(context.Context, *CreateMeetingRequest) (*CreateMeetingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateMeeting not implemented")
}
func (UnimplementedMeetingServiceServer) ListMeetings(context.Context, *ListMeetingsRequest) (*ListMeetingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMeetings not implemented")
}

func RegisterMeetingServiceServer(s grpc.ServiceRegistrar, srv MeetingServiceServer) {
	s.RegisterService(&MeetingService_ServiceDesc, srv)
}

func unaryHandler[Req any, Resp any](
	fullMethod string,
	call func(MeetingServiceServer, context.Context, *Req) (*Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MeetingServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(srv.(MeetingServiceServer), ctx, req.(*Req))
		})
	}
}

var MeetingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "meeting.v1.MeetingService",
	HandlerType: (*MeetingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler:    unaryHandler(MeetingService_Register_FullMethodName, MeetingServiceServer.Register),
		},
		{
			MethodName: "Login",
			Handler:    unaryHandler(MeetingService_Login_FullMethodName, MeetingServiceServer.Login),
		},
		{
			MethodName: "Refresh",
			Handler:    unaryHandler(MeetingService_Refresh_FullMethodName, MeetingServiceServer.Refresh),
		},
		{
			MethodName: "Logout",
			Handler:    unaryHandler(MeetingService_Logout_FullMethodName, MeetingServiceServer.Logout),
		},
		{
			MethodName: "GetSession",
			Handler:    unaryHandler(MeetingService_GetSession_FullMethodName, MeetingServiceServer.GetSession),
		},
		{
			MethodName: "CreateMeeting",
			Handler:    unaryHandler(MeetingService_CreateMeeting_FullMethodName, MeetingServiceServer.CreateMeeting),
		},
		{
			MethodName: "ListMeetings",
			Handler:    unaryHandler(MeetingService_ListMeetings_FullMethodName, MeetingServiceServer.ListMeetings),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/meeting/v1/meeting.proto",
}
