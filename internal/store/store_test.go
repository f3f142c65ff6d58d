package store_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"meeting-planner-api/internal/model"
	"meeting-planner-api/internal/store"
)

func setup(t *testing.T) *store.Store {
	t.Helper()
	_ = godotenv.Load("../../.env")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(pool.Close)

	if migration, err := os.ReadFile("../../db/migrations/001_init.sql"); err == nil {
		_, _ = pool.Exec(context.Background(), string(migration))
	}
	return store.New(pool)
}

func testEmail() string {
	return fmt.Sprintf("store-%s@test.com", uuid.New().String()[:8])
}

func TestReconcileUserByEmailCreates(t *testing.T) {
	st := setup(t)
	ctx := context.Background()

	id := uuid.New().String()
	got, err := st.ReconcileUserByEmail(ctx, id, testEmail(), "New Person")
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if got != id {
		t.Errorf("expected new row to keep supplied id %s, got %s", id, got)
	}
}

func TestReconcileUserByEmailReturnsExistingID(t *testing.T) {
	st := setup(t)
	ctx := context.Background()
	email := testEmail()

	u := &model.User{ID: uuid.New().String(), Email: email, Name: "Original Name"}
	if err := st.CreateUser(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}

	got, err := st.ReconcileUserByEmail(ctx, uuid.New().String(), email, "Different Name")
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if got != u.ID {
		t.Errorf("expected existing id %s, got %s", u.ID, got)
	}

	// the conflict path must not touch the stored profile
	after, err := st.UserByEmail(ctx, email)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if after.Name != "Original Name" {
		t.Errorf("name overwritten: %s", after.Name)
	}
}

func TestReconcileUserByEmailIdempotent(t *testing.T) {
	st := setup(t)
	ctx := context.Background()
	email := testEmail()

	first, err := st.ReconcileUserByEmail(ctx, uuid.New().String(), email, "P")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := st.ReconcileUserByEmail(ctx, uuid.New().String(), email, "P")
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first != second {
		t.Errorf("same email resolved to two ids: %s vs %s", first, second)
	}
}

func TestRefreshTokenLifecycle(t *testing.T) {
	st := setup(t)
	ctx := context.Background()

	u := &model.User{ID: uuid.New().String(), Email: testEmail(), Name: "T", PasswordHash: "x"}
	if err := st.CreateUser(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}

	hash := uuid.New().String()
	id, err := st.CreateRefreshToken(ctx, u.ID, hash, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	rt, err := st.RefreshTokenByHash(ctx, hash)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if rt.ID != id || rt.UserID != u.ID || rt.Revoked {
		t.Fatalf("token row: %+v", rt)
	}

	newID := uuid.New().String()
	newHash := uuid.New().String()
	if err := st.RotateRefreshToken(ctx, rt.ID, newID, u.ID, newHash, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("rotate: %v", err)
	}

	old, err := st.RefreshTokenByHash(ctx, hash)
	if err != nil {
		t.Fatalf("old lookup: %v", err)
	}
	if !old.Revoked || old.ReplacedBy == nil || *old.ReplacedBy != newID {
		t.Errorf("old token after rotation: %+v", old)
	}

	if err := st.RevokeAllRefreshTokens(ctx, u.ID); err != nil {
		t.Fatalf("revoke all: %v", err)
	}
	cur, err := st.RefreshTokenByHash(ctx, newHash)
	if err != nil {
		t.Fatalf("new lookup: %v", err)
	}
	if !cur.Revoked {
		t.Error("expected replacement token to be revoked")
	}
}
