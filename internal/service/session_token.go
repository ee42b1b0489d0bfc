package service

import (
	"errors"
	"fmt"
	"time"

	"samayak/internal/dto"
	"samayak/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const sessionTokenIssuer = "samayak"

var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionTokenService issues and verifies the bearer tokens that bind a client to its session.
type SessionTokenService interface {
	Issue(sessionID, title string) (token string, expiresAt time.Time, err error)
	Verify(token string) (*dto.SessionClaims, error)
}

type sessionTokenServiceImpl struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionTokenService signs tokens with HS256.
func NewSessionTokenService(secret string, ttl time.Duration) (SessionTokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("session secret must be at least 16 bytes long")
	}
	return &sessionTokenServiceImpl{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *sessionTokenServiceImpl) Issue(sessionID, title string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := dto.SessionClaims{
		Title: title,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionTokenIssuer,
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *sessionTokenServiceImpl) Verify(tokenString string) (*dto.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(sessionTokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		logger.Get().Warn("Session token validation failed", zap.Error(err), zap.Bool("expired", errors.Is(err, jwt.ErrTokenExpired)))
		return nil, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}

	claims, ok := token.Claims.(*dto.SessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidSessionToken
	}
	return claims, nil
}
