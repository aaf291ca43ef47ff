package service

import (
	"context"
	"time"

	"internlink/internal/entity"

	"golang.org/x/crypto/bcrypt"
)

// dummyPasswordHash is compared against when the email is unknown so a login
// attempt takes the same time whether or not the account exists.
const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

// AuthConfig carries the policy constants consumed by the session manager.
// The 7-day access token lifetime and 6-character password minimum preserve
// the deployed system's observed behavior; both are weaker than current
// practice and should be tightened deliberately, not silently.
type AuthConfig struct {
	AccessTokenTTL       time.Duration
	RefreshTokenTTL      time.Duration
	VerificationTokenTTL time.Duration
	ResetTokenTTL        time.Duration
	MinPasswordLength    int
}

func (c AuthConfig) minPasswordLength() int {
	if c.MinPasswordLength > 0 {
		return c.MinPasswordLength
	}
	return 6
}

func (c AuthConfig) verificationTokenTTL() time.Duration {
	if c.VerificationTokenTTL > 0 {
		return c.VerificationTokenTTL
	}
	return 24 * time.Hour
}

func (c AuthConfig) resetTokenTTL() time.Duration {
	if c.ResetTokenTTL > 0 {
		return c.ResetTokenTTL
	}
	return 10 * time.Minute
}

type EmailSender interface {
	SendWelcomeEmail(ctx context.Context, email string, name string, role entity.UserRole, verificationToken string) error
	SendPasswordResetEmail(ctx context.Context, email string, name string, resetToken string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) bool
}

// TokenIssuer mints and validates the two bearer token classes. Verifying a
// token of one class against the other must fail.
type TokenIssuer interface {
	IssueAccessToken(userID string) (string, time.Duration, error)
	IssueRefreshToken(userID string) (string, time.Duration, error)
	VerifyAccessToken(token string) (string, error)
	VerifyRefreshToken(token string) (string, error)
}

type GoogleIdentity struct {
	SubjectID string
	Email     string
	Name      string
	Picture   string
}

type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

type BcryptPasswordHasher struct {
	Cost int
}

func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h BcryptPasswordHasher) Verify(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
