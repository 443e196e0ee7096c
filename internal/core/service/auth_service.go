package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/controlhs/datacore/internal/core/domain"
	"github.com/controlhs/datacore/internal/port"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

type tokenClaims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type AuthService struct {
	users    port.UserRepository
	sessions port.SessionStore
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users port.UserRepository, sessions port.SessionStore, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Login verifies the credentials, issues a signed bearer token and
// stores the matching session record.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)

	token, err := s.signToken(user, now, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	session := domain.Session{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &session, nil
}

// Logout revokes the session behind a token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Resolve turns a bearer token into the session snapshot the access
// policy consumes. It never fails: an unreachable session backend maps
// to a loading snapshot, everything else to an absent user.
func (s *AuthService) Resolve(ctx context.Context, token string) domain.SessionState {
	if token == "" {
		return domain.SessionState{}
	}

	claims, err := s.parseToken(token)
	if err != nil {
		return domain.SessionState{LastError: "invalid token"}
	}

	session, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		return domain.SessionState{Loading: true, LastError: err.Error()}
	}
	if session == nil || session.UserID != claims.UserID {
		return domain.SessionState{LastError: "session expired"}
	}

	return domain.SessionState{
		User: &domain.SessionUser{
			ID:       session.UserID,
			Username: session.Username,
			Role:     session.Role,
		},
	}
}

// CreateUser registers a new user with a freshly hashed password.
func (s *AuthService) CreateUser(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	existing, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &user, nil
}

// ChangePassword verifies the current password before storing the new one.
func (s *AuthService) ChangePassword(ctx context.Context, username, current, updated string) error {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(updated), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

func (s *AuthService) signToken(user *domain.User, issuedAt, expiresAt time.Time) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &tokenClaims{
		UserID: user.ID,
		Role:   string(user.Role),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
	})
	return t.SignedString(s.secret)
}

func (s *AuthService) parseToken(token string) (*tokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
