package auth

import (
	"context"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/user"
)

// AuthService tracks the current authenticated identity for the running
// session and exposes role-derived capabilities.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)

	// Restore loads a previously persisted session at startup, if any.
	Restore(ctx context.Context) error

	// CurrentUser returns the restored/last-authenticated identity, or
	// ErrNotAuthenticated when none is present.
	CurrentUser() (user.User, error)
	IsAuthenticated() bool
	IsAdmin() bool
	IsEmployee() bool

	// Loading reports true while a login/register is in flight or the
	// startup session restore has not finished.
	Loading() bool
}
