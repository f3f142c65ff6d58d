package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"meeting-planner-api/internal/auth"
	"meeting-planner-api/internal/model"
	"meeting-planner-api/internal/session"
	pb "meeting-planner-api/rpc/meetingv1"
)

func (h *Handler) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "all fields required")
	}
	if len(req.Password) < 8 {
		return nil, status.Error(codes.InvalidArgument, "password too short")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	// profile row and auth identity share one id
	u := &model.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	}
	if err := h.store.CreateUser(ctx, u); err != nil {
		// unique violation = dup email, but don't reveal that
		return nil, status.Error(codes.AlreadyExists, "registration failed")
	}

	tok, refresh, err := h.issueTokens(ctx, u.ID)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	h.sessions.Publish(session.Event{Kind: session.SignedIn, UserID: u.ID})
	return &pb.RegisterResponse{UserId: u.ID, Token: tok, RefreshToken: refresh}, nil
}

func (h *Handler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "email and password required")
	}

	u, err := h.store.UserByEmail(ctx, req.Email)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	tok, refresh, err := h.issueTokens(ctx, u.ID)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	h.sessions.Publish(session.Event{Kind: session.SignedIn, UserID: u.ID})
	return &pb.LoginResponse{Token: tok, UserId: u.ID, Name: u.Name, RefreshToken: refresh}, nil
}

func (h *Handler) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.RefreshResponse, error) {
	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token required")
	}

	rt, err := h.store.RefreshTokenByHash(ctx, auth.HashRefreshToken(req.RefreshToken))
	if err != nil || rt.Revoked || time.Now().After(rt.ExpiresAt) {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}

	newRaw, newHash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	newID := uuid.New().String()
	if err := h.store.RotateRefreshToken(ctx, rt.ID, newID, rt.UserID, newHash, time.Now().Add(auth.RefreshTokenTTL)); err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	tok, err := auth.MakeToken(rt.UserID, h.secret)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	h.sessions.Publish(session.Event{Kind: session.Refreshed, UserID: rt.UserID})
	return &pb.RefreshResponse{Token: tok, RefreshToken: newRaw}, nil
}

// Logout revokes every refresh token the caller holds. An unknown token is a
// no-op, so signing out is idempotent.
func (h *Handler) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	if req.RefreshToken == "" {
		return &pb.LogoutResponse{}, nil
	}

	rt, err := h.store.RefreshTokenByHash(ctx, auth.HashRefreshToken(req.RefreshToken))
	if err != nil {
		return &pb.LogoutResponse{}, nil
	}
	if err := h.store.RevokeAllRefreshTokens(ctx, rt.UserID); err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	h.sessions.Publish(session.Event{Kind: session.SignedOut, UserID: rt.UserID})
	return &pb.LogoutResponse{}, nil
}

func (h *Handler) GetSession(ctx context.Context, _ *pb.GetSessionRequest) (*pb.GetSessionResponse, error) {
	u, err := h.store.UserByID(ctx, uid(ctx))
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no session")
	}
	return &pb.GetSessionResponse{
		User: &pb.User{Id: u.ID, Email: u.Email, Name: u.Name},
	}, nil
}

func (h *Handler) issueTokens(ctx context.Context, userID string) (access, refresh string, err error) {
	access, err = auth.MakeToken(userID, h.secret)
	if err != nil {
		return "", "", err
	}
	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return "", "", err
	}
	if _, err := h.store.CreateRefreshToken(ctx, userID, hash, time.Now().Add(auth.RefreshTokenTTL)); err != nil {
		return "", "", err
	}
	return access, raw, nil
}
