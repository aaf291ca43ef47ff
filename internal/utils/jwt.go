package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// TokenManager signs and verifies the two bearer token classes. Access and
// refresh tokens are signed with independent secrets so one class can never
// be replayed as the other, and each secret can be rotated on its own.
type TokenManager struct {
	AccessSecret  []byte
	RefreshSecret []byte
	Issuer        string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

type Claims struct {
	UserID string `json:"sub"`
	jwt.RegisteredClaims
}

func (m *TokenManager) IssueAccessToken(userID string) (string, time.Duration, error) {
	ttl := m.AccessTTL
	if ttl == 0 {
		ttl = 7 * 24 * time.Hour
	}
	token, err := m.sign(userID, m.AccessSecret, ttl)
	return token, ttl, err
}

func (m *TokenManager) IssueRefreshToken(userID string) (string, time.Duration, error) {
	ttl := m.RefreshTTL
	if ttl == 0 {
		ttl = 30 * 24 * time.Hour
	}
	token, err := m.sign(userID, m.RefreshSecret, ttl)
	return token, ttl, err
}

func (m *TokenManager) VerifyAccessToken(tokenString string) (string, error) {
	return m.verify(tokenString, m.AccessSecret)
}

func (m *TokenManager) VerifyRefreshToken(tokenString string) (string, error) {
	return m.verify(tokenString, m.RefreshSecret)
}

func (m *TokenManager) sign(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (m *TokenManager) verify(tokenString string, secret []byte) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

func (m *TokenManager) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}
