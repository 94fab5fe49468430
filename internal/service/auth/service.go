package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/user"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/session"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	sessions   session.SessionStorage
	loginDelay time.Duration

	mu      sync.RWMutex
	current *user.User
	loading bool
}

// NewAuthService wires the identity registry, the token service and the
// session file. loginDelay simulates the identity-provider round trip and
// should be 0 in tests.
func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, sessions session.SessionStorage, loginDelay time.Duration) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		sessions:       sessions,
		loginDelay:     loginDelay,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// simulateRoundTrip blocks for the configured login delay, honoring
// cancellation.
func (a *AuthServiceImpl) simulateRoundTrip(ctx context.Context) error {
	if a.loginDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(a.loginDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (a *AuthServiceImpl) setLoading(v bool) {
	a.mu.Lock()
	a.loading = v
	a.mu.Unlock()
}

func (a *AuthServiceImpl) setCurrent(u user.User) {
	a.mu.Lock()
	a.current = &u
	a.mu.Unlock()
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}
	tokenResponse.User = toUserResponse(userData)
	return tokenResponse, nil
}

func (a *AuthServiceImpl) persistSession(ctx context.Context, userData user.User) error {
	return a.sessions.Save(ctx, session.Identity{
		UserID:    userData.ID,
		Email:     userData.Email,
		Role:      string(userData.Role),
		FirstName: userData.FirstName,
		LastName:  userData.LastName,
	})
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	a.setLoading(true)
	defer a.setLoading(false)

	if err := a.simulateRoundTrip(ctx); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	tokenResponse, err := a.issueTokens(userData)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	a.setCurrent(userData)
	if err := a.persistSession(ctx, userData); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to persist session: %w", err)
	}

	return tokenResponse, nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	a.setLoading(true)
	defer a.setLoading(false)

	if err := a.simulateRoundTrip(ctx); err != nil {
		return auth.TokenResponse{}, err
	}

	if _, err := a.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return auth.TokenResponse{}, auth.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	role := user.Role(req.Role)
	if role != user.RoleAdmin && role != user.RoleEmployee {
		return auth.TokenResponse{}, auth.ErrInvalidRole
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	tokenResponse, err := a.issueTokens(created)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	a.setCurrent(created)
	if err := a.persistSession(ctx, created); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to persist session: %w", err)
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.Service.RevokeToken(refreshToken)
	}

	a.mu.Lock()
	a.current = nil
	a.mu.Unlock()

	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if a.Service.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := a.Service.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		if errors.Is(err, jwxjwt.ErrTokenExpired()) {
			return auth.AccessTokenResponse{}, auth.ErrTokenExpired
		}
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	accessToken, expiresIn, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresIn,
	}, nil
}

// Restore implements auth.AuthService.
func (a *AuthServiceImpl) Restore(ctx context.Context) error {
	a.setLoading(true)
	defer a.setLoading(false)

	identity, found, err := a.sessions.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if !found {
		return nil
	}

	userData, err := a.UserRepository.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// The persisted identity no longer exists; drop the stale file.
			return a.sessions.Clear(ctx)
		}
		return fmt.Errorf("failed to restore user: %w", err)
	}

	a.setCurrent(userData)
	return nil
}

// CurrentUser implements auth.AuthService.
func (a *AuthServiceImpl) CurrentUser() (user.User, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.current == nil {
		return user.User{}, auth.ErrNotAuthenticated
	}
	return *a.current, nil
}

// IsAuthenticated implements auth.AuthService.
func (a *AuthServiceImpl) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current != nil
}

// IsAdmin implements auth.AuthService.
func (a *AuthServiceImpl) IsAdmin() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current != nil && a.current.IsAdmin()
}

// IsEmployee implements auth.AuthService.
func (a *AuthServiceImpl) IsEmployee() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current != nil && a.current.IsEmployee()
}

// Loading implements auth.AuthService.
func (a *AuthServiceImpl) Loading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading
}

func toUserResponse(u user.User) auth.UserResponse {
	return auth.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}
