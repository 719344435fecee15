package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/errs"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
	"github.com/fintrackhq/fintrack-backend/internal/models"
	"github.com/fintrackhq/fintrack-backend/internal/response"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (*models.Account, *models.Session, error)
	Login(ctx context.Context, email, password string) (*models.Account, *models.Session, error)
	Logout(ctx context.Context, token string) error
	Session(ctx context.Context, token string) (*models.Account, error)
}

type authHandlers struct {
	ResponseHandler response.ResponseHandler
	AuthSvc         AuthService
	Middleware      *middleware.Middleware
}

func NewAuthHandlers(deps *Deps, mw *middleware.Middleware) *authHandlers {
	return &authHandlers{
		ResponseHandler: deps.ResponseHandler,
		AuthSvc:         deps.AuthSvc,
		Middleware:      mw,
	}
}

func (h *authHandlers) AuthRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Group(func(r chi.Router) {
		r.Use(h.Middleware.SessionAuth)
		r.Post("/logout", h.Logout)
		r.Get("/session", h.GetSession)
	})
	return r
}

func (h *authHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	account, session, err := h.AuthSvc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, dto.AuthResponse{
		Token:   session.Token,
		Account: *account,
	})
}

func (h *authHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	account, session, err := h.AuthSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.AuthResponse{
		Token:   session.Token,
		Account: *account,
	})
}

func (h *authHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.Token(r.Context())
	if err := h.AuthSvc.Logout(r.Context(), token); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *authHandlers) GetSession(w http.ResponseWriter, r *http.Request) {
	account, err := h.AuthSvc.Session(r.Context(), middleware.Token(r.Context()))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.SessionResponse{Account: *account})
}
