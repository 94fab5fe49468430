package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/response"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokens, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	response.Success(w, tokens)
}

// Register implements AuthHandler.
func (h *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokens, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	response.Created(w, "Account created", tokens)
}

// Logout implements AuthHandler.
func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken := ""
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshToken = cookie.Value
	}

	if err := h.authService.Logout(r.Context(), refreshToken); err != nil {
		response.HandleError(w, err)
		return
	}

	// Expire the cookie.
	http.SetCookie(w, h.jwtService.RefreshTokenCookie("", 0))
	response.SuccessWithMessage(w, "Logged out", nil)
}

// RefreshToken implements AuthHandler.
func (h *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req auth.RefreshTokenRequest

	if cookie, err := r.Cookie("refresh_token"); err == nil {
		req.RefreshToken = cookie.Value
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RefreshToken decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	token, err := h.authService.RefreshToken(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, token)
}

// Me implements AuthHandler.
func (h *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	current, err := h.authService.CurrentUser()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, auth.UserResponse{
		ID:        current.ID,
		Email:     current.Email,
		Role:      string(current.Role),
		FirstName: current.FirstName,
		LastName:  current.LastName,
		AvatarURL: current.AvatarURL,
		CreatedAt: current.CreatedAt.Format(time.RFC3339),
		UpdatedAt: current.UpdatedAt.Format(time.RFC3339),
	})
}
