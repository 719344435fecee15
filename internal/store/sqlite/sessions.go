package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fintrackhq/fintrack-backend/internal/errs"
	"github.com/fintrackhq/fintrack-backend/internal/models"
)

func (s *Store) CreateSession(ctx context.Context, session *models.Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (token, email, created_at) VALUES (?, ?, ?)`,
		session.Token, session.Email, session.CreatedAt)
	if err != nil {
		return errs.NewDatabaseError("create session", err.Error())
	}
	return nil
}

func (s *Store) GetSession(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := s.db.QueryRowContext(ctx,
		`SELECT token, email, created_at FROM sessions WHERE token = ?`,
		token).Scan(&session.Token, &session.Email, &session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewNotFoundError("session not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("get session", err.Error())
	}
	return &session, nil
}

func (s *Store) DeleteSession(ctx context.Context, token string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	if err != nil {
		return errs.NewDatabaseError("delete session", err.Error())
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errs.NewDatabaseError("delete session", err.Error())
	}
	if n == 0 {
		return errs.NewNotFoundError("session not found")
	}
	return nil
}
