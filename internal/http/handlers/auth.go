package handlers

import (
	"net/http"
	"time"

	"internmatch/internal/app"
	"internmatch/internal/common"
	"internmatch/internal/domain/user"
	"internmatch/internal/http/middleware"
	"internmatch/internal/http/response"
	"internmatch/internal/security"
)

type AuthHandler struct {
	auth       *app.AuthService
	sessions   *security.SessionProvider
	sessionTTL time.Duration
	limiter    middleware.Limiter
}

func NewAuthHandler(auth *app.AuthService, sessions *security.SessionProvider, sessionTTL time.Duration, limiter middleware.Limiter) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, sessionTTL: sessionTTL, limiter: limiter}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Company  string `json:"company"`
}

type sessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      user.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		if !h.limiter.Allow("register:"+middleware.ClientIP(r), 5, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "too many registrations", nil))
			return
		}
	}
	created, err := h.auth.Register(r.Context(), app.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     user.Role(req.Role),
		Company:  req.Company,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	token, expiresAt, err := h.sessions.Generate(created.ID, string(created.Role), h.sessionTTL)
	if err != nil {
		response.Error(w, common.NewError(common.CodeInternal, "failed to create session", err))
		return
	}
	response.JSON(w, http.StatusCreated, sessionResponse{Token: token, ExpiresAt: expiresAt, User: *created})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		if !h.limiter.Allow("login:"+middleware.ClientIP(r), 10, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "too many login attempts", nil))
			return
		}
	}
	account, err := h.auth.Login(r.Context(), req.Email, req.Password, user.Role(req.Role))
	if err != nil {
		response.Error(w, err)
		return
	}
	token, expiresAt, err := h.sessions.Generate(account.ID, string(account.Role), h.sessionTTL)
	if err != nil {
		response.Error(w, common.NewError(common.CodeInternal, "failed to create session", err))
		return
	}
	response.JSON(w, http.StatusOK, sessionResponse{Token: token, ExpiresAt: expiresAt, User: *account})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	account, err := h.auth.Get(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, account)
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req app.ProfileUpdate
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.auth.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
