package store

import (
	"context"

	"meeting-planner-api/internal/model"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash) VALUES ($1,$2,$3,$4)`,
		u.ID, u.Email, u.Name, u.PasswordHash,
	)
	return err
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, created_at, updated_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) UserByID(ctx context.Context, id string) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, created_at, updated_at
		 FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ReconcileUserByEmail resolves an email to a user id in one round trip,
// creating the user with the supplied id and name when the email is new.
// The no-op DO UPDATE makes RETURNING yield the existing row's id on
// conflict; an existing user's name is never overwritten.
func (s *Store) ReconcileUserByEmail(ctx context.Context, id, email, name string) (string, error) {
	var out string
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (id, email, name) VALUES ($1,$2,$3)
		 ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		 RETURNING id`, id, email, name,
	).Scan(&out)
	return out, err
}
