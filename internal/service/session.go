package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mamasaathi/backend/internal/logger"
	"github.com/mamasaathi/backend/internal/models"
	"github.com/mamasaathi/backend/internal/store"
)

// TokenClaims are the claims carried by a session bearer token.
type TokenClaims struct {
	SessionID string
	UserID    string
}

// SessionService owns the authentication lifecycle. A user is authenticated
// when they hold a valid token whose session record is still live; the
// current user is resolved per request, never kept in a global.
type SessionService struct {
	profiles  *store.Store
	sessions  SessionStore
	jwtSecret string
	ttl       time.Duration
	logger    *logger.Logger
}

func NewSessionService(profiles *store.Store, sessions SessionStore, jwtSecret string, ttl time.Duration, log *logger.Logger) *SessionService {
	return &SessionService{
		profiles:  profiles,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		ttl:       ttl,
		logger:    log,
	}
}

// Login authenticates against the profile store and opens a session.
func (s *SessionService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.profiles.Login(email, password)
	if err != nil {
		return nil, "", err
	}
	return s.openSession(ctx, user)
}

// Register completes a placeholder profile and opens a session, matching the
// original flow where a successful registration logs the user in.
func (s *SessionService) Register(ctx context.Context, req models.RegistrationRequest, password string) (*models.User, string, error) {
	user, err := s.profiles.Register(req, password)
	if err != nil {
		return nil, "", err
	}
	return s.openSession(ctx, user)
}

// ResetPassword delegates to the profile store. Existing sessions are not
// touched: a reset does not log anyone in or out.
func (s *SessionService) ResetPassword(_ context.Context, email, newPassword string) error {
	return s.profiles.ResetPassword(email, newPassword)
}

// Current restores the authenticated user from a bearer token. A corrupt
// session record is discarded and reads as unauthenticated.
func (s *SessionService) Current(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.ValidateToken(token)
	if err != nil {
		return nil, &store.AuthError{Reason: "invalid session token"}
	}

	payload, err := s.sessions.Get(ctx, claims.SessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, &store.AuthError{Reason: "session expired"}
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		s.logger.Warn().Str("session_id", claims.SessionID).Msg("discarding corrupt session record")
		_ = s.sessions.Delete(ctx, claims.SessionID)
		return nil, &store.AuthError{Reason: "session expired"}
	}
	return &user, nil
}

// Logout closes the session behind a token. Unknown or already-closed
// sessions are not an error.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	claims, err := s.ValidateToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.SessionID)
}

func (s *SessionService) openSession(ctx context.Context, user *models.User) (*models.User, string, error) {
	sessionID := uuid.NewString()

	payload, err := json.Marshal(user)
	if err != nil {
		return nil, "", err
	}
	if err := s.sessions.Save(ctx, sessionID, payload, s.ttl); err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(sessionID, user.UserID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *SessionService) generateToken(sessionID, userID string) (string, error) {
	claims := jwt.MapClaims{
		"sid":     sessionID,
		"user_id": userID,
		"exp":     time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken checks the signature and expiry of a session token and
// extracts its claims.
func (s *SessionService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sessionID, ok := claims["sid"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return &TokenClaims{SessionID: sessionID, UserID: userID}, nil
}
