package services

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fintrackhq/fintrack-backend/internal/errs"
	"github.com/fintrackhq/fintrack-backend/internal/models"
	"github.com/fintrackhq/fintrack-backend/pkg/logger"
)

type authAccountStore interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccount(ctx context.Context, email string) (*models.Account, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

type authSessionStore interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, token string) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

type authService struct {
	accounts authAccountStore
	sessions authSessionStore
}

func NewAuthService(accounts authAccountStore, sessions authSessionStore) *authService {
	return &authService{accounts: accounts, sessions: sessions}
}

// Register creates a new account and an initial session for it. The
// account becomes the authenticated subject immediately, matching the
// register-then-logged-in flow of the entry view.
func (s *authService) Register(ctx context.Context, email, password string) (*models.Account, *models.Session, error) {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, nil, errs.NewValidationError("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	account := &models.Account{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.accounts.CreateAccount(ctx, account); err != nil {
		return nil, nil, err
	}

	session, err := s.newSession(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	log.Info("account registered", "email", email)
	return account, session, nil
}

// Login authenticates by exact email plus password match and opens a new
// session. Accounts created before hashing was introduced hold the raw
// password; those are compared literally and upgraded to a bcrypt hash
// on the first successful login.
func (s *authService) Login(ctx context.Context, email, password string) (*models.Account, *models.Session, error) {
	log := logger.FromContext(ctx)

	account, err := s.accounts.GetAccount(ctx, email)
	if err != nil {
		if _, ok := err.(*errs.NotFoundError); ok {
			return nil, nil, errs.NewUnauthorizedError("invalid email or password")
		}
		return nil, nil, err
	}

	if !s.verifyPassword(ctx, account, password) {
		log.Warn("login rejected", "email", email)
		return nil, nil, errs.NewUnauthorizedError("invalid email or password")
	}

	session, err := s.newSession(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	log.Info("login succeeded", "email", email)
	return account, session, nil
}

// Logout deletes the session record. Stored accounts and ledgers are
// untouched.
func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.DeleteSession(ctx, token); err != nil {
		if _, ok := err.(*errs.NotFoundError); ok {
			return errs.NewUnauthorizedError("unknown session")
		}
		return err
	}
	return nil
}

// Session resolves a persisted token back to its account, the startup
// resume path for a view that kept its token across restarts.
func (s *authService) Session(ctx context.Context, token string) (*models.Account, error) {
	session, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		if _, ok := err.(*errs.NotFoundError); ok {
			return nil, errs.NewUnauthorizedError("unknown session")
		}
		return nil, err
	}
	return s.accounts.GetAccount(ctx, session.Email)
}

func (s *authService) newSession(ctx context.Context, email string) (*models.Session, error) {
	session := &models.Session{
		Token:     uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *authService) verifyPassword(ctx context.Context, account *models.Account, password string) bool {
	if strings.HasPrefix(account.PasswordHash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) == nil
	}

	// Legacy plaintext record
	if subtle.ConstantTimeCompare([]byte(account.PasswordHash), []byte(password)) != 1 {
		return false
	}
	if hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost); err == nil {
		if err := s.accounts.UpdatePassword(ctx, account.Email, string(hash)); err != nil {
			logger.FromContext(ctx).Warn("failed to upgrade legacy credential", "email", account.Email, "error", err)
		}
	}
	return true
}
