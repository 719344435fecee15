package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fintrackhq/fintrack-backend/internal/models"
	"github.com/fintrackhq/fintrack-backend/pkg/logger"
)

// SessionResolver turns a bearer token back into its account.
type SessionResolver interface {
	Session(ctx context.Context, token string) (*models.Account, error)
}

type Middleware struct {
	Sessions SessionResolver
}

func NewMiddleware(sessions SessionResolver) *Middleware {
	return &Middleware{Sessions: sessions}
}

// context keys
type contextKey string

const (
	EmailKey contextKey = "email"
	TokenKey contextKey = "token"
)

// SessionAuth resolves the Authorization bearer token to an account and
// puts the account email (and the raw token, for logout) on the context.
func (m *Middleware) SessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "missing Authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			http.Error(w, "invalid Authorization header", http.StatusUnauthorized)
			return
		}

		token := parts[1]

		account, err := m.Sessions.Session(r.Context(), token)
		if err != nil {
			http.Error(w, "unknown session", http.StatusUnauthorized)
			return
		}

		// Add account email to context and the request-scoped logger
		_, ctx := logger.With(r.Context(), "email", account.Email)
		ctx = context.WithValue(ctx, EmailKey, account.Email)
		ctx = context.WithValue(ctx, TokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Helper to extract the authenticated account email
func Email(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// Helper to extract the presented session token
func Token(ctx context.Context) string {
	token, _ := ctx.Value(TokenKey).(string)
	return token
}
