package service

import (
	"context"
	"time"

	"internlink/internal/dto"
	"internlink/internal/entity"
	"internlink/internal/repository"
	"internlink/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuthService orchestrates the credential flows. It is the only writer of
// credential state; everything else reads through the middleware chain.
type AuthService struct {
	users     repository.UserRepository
	profiles  repository.ProfileRepository
	auditLogs repository.AuditLogRepository

	emailSender  EmailSender
	passwordHash PasswordHasher
	tokens       TokenIssuer
	google       GoogleVerifier
	clock        Clock
	logger       logrus.FieldLogger
	config       AuthConfig
}

type AuthResult struct {
	User             *entity.User
	AccessToken      string
	AccessExpiresIn  int64
	RefreshToken     string
	RefreshExpiresIn int64
}

func NewAuthService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	auditLogs repository.AuditLogRepository,
	emailSender EmailSender,
	passwordHash PasswordHasher,
	tokens TokenIssuer,
	google GoogleVerifier,
	clock Clock,
	logger logrus.FieldLogger,
	config AuthConfig,
) *AuthService {
	return &AuthService{
		users:        users,
		profiles:     profiles,
		auditLogs:    auditLogs,
		emailSender:  emailSender,
		passwordHash: passwordHash,
		tokens:       tokens,
		google:       google,
		clock:        clock,
		logger:       logger,
		config:       config,
	}
}

// Register creates the principal and its role extension as one unit, stores a
// hashed email-verification token and sends the welcome email best-effort:
// a delivery failure is logged, never fatal, since the user can log in and
// request a fresh verification link.
func (s *AuthService) Register(ctx context.Context, input dto.RegisterRequest) (*AuthResult, error) {
	if err := validateRegistration(input, s.config.minPasswordLength()); err != nil {
		return nil, err
	}

	email := utils.NormalizeEmail(input.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateIdentity
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	rawToken, err := utils.GenerateRandomToken(32)
	if err != nil {
		return nil, err
	}
	tokenHash := utils.HashToken(rawToken)
	tokenExpiry := s.now().Add(s.config.verificationTokenTTL())

	user := &entity.User{
		Email:                      email,
		PasswordHash:               &hash,
		Name:                       input.Name,
		Role:                       entity.UserRole(input.Role),
		IsActive:                   true,
		EmailVerificationTokenHash: &tokenHash,
		EmailVerificationExpiresAt: &tokenExpiry,
	}
	if input.Phone != "" {
		user.Phone = &input.Phone
	}

	if err := s.users.CreateWithProfile(ctx, user, buildProfile(input)); err != nil {
		if err == repository.ErrDuplicate {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}

	if s.emailSender != nil {
		if err := s.emailSender.SendWelcomeEmail(ctx, user.Email, user.Name, user.Role, rawToken); err != nil {
			s.log().WithError(err).WithField("email", user.Email).Warn("welcome email failed")
		}
	}

	return s.issueTokens(user)
}

// Login deliberately reports the same error for an unknown email and a wrong
// password, and burns a bcrypt compare on the unknown-email path so response
// timing does not leak which one happened.
func (s *AuthService) Login(ctx context.Context, input dto.LoginRequest, ipAddress *string) (*AuthResult, error) {
	email := utils.NormalizeEmail(input.Email)
	user, err := s.users.FindByEmailWithSecret(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		s.logAudit(ctx, nil, ipAddress, entity.AuditLoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	if !s.passwordHash.Verify(*user.PasswordHash, input.Password) {
		s.logAudit(ctx, &user.ID, ipAddress, entity.AuditLoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	now := s.now()
	user.LastLoginAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logAudit(ctx, &user.ID, ipAddress, entity.AuditLoginSuccess, nil)
	return s.issueTokens(user)
}

// LoginWithGoogle verifies the provider token, then either binds the Google
// subject to an existing account or provisions a new one with a role inferred
// from the email domain. The inferred role is a convenience default only.
func (s *AuthService) LoginWithGoogle(ctx context.Context, providerToken string, ipAddress *string) (*AuthResult, error) {
	if s.google == nil {
		return nil, ErrInvalidGoogleToken
	}
	identity, err := s.google.Verify(ctx, providerToken)
	if err != nil {
		return nil, ErrInvalidGoogleToken
	}

	email := utils.NormalizeEmail(identity.Email)
	user, err := s.users.FindByGoogleID(ctx, identity.SubjectID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		if user, err = s.users.FindByEmail(ctx, email); err != nil {
			return nil, err
		}
	}

	now := s.now()
	if user != nil {
		if !user.IsActive {
			return nil, ErrAccountDeactivated
		}
		if user.GoogleID == nil {
			user.GoogleID = &identity.SubjectID
		}
		user.IsEmailVerified = true
		user.LastLoginAt = &now
		if err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}
	} else {
		role := InferRoleFromEmail(email)
		user = &entity.User{
			Email:           email,
			Name:            identity.Name,
			Role:            role,
			GoogleID:        &identity.SubjectID,
			IsEmailVerified: true,
			IsActive:        true,
			LastLoginAt:     &now,
		}
		if identity.Picture != "" {
			user.ProfilePicture = &identity.Picture
		}
		if err := s.users.CreateWithProfile(ctx, user, emptyProfile(role)); err != nil {
			if err == repository.ErrDuplicate {
				return nil, ErrDuplicateIdentity
			}
			return nil, err
		}
		if s.emailSender != nil {
			if err := s.emailSender.SendWelcomeEmail(ctx, user.Email, user.Name, user.Role, ""); err != nil {
				s.log().WithError(err).WithField("email", user.Email).Warn("welcome email failed")
			}
		}
	}

	s.logAudit(ctx, &user.ID, ipAddress, entity.AuditLoginSuccess, map[string]any{"provider": "google"})
	return s.issueTokens(user)
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.users.FindByVerificationTokenHash(ctx, utils.HashToken(token), s.now())
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidOrExpiredToken
	}

	user.IsEmailVerified = true
	user.EmailVerificationTokenHash = nil
	user.EmailVerificationExpiresAt = nil
	return s.users.Update(ctx, user)
}

// ForgotPassword stores a fresh reset token, superseding any outstanding one.
// Unlike registration, a delivery failure here is fatal: the stored token is
// rolled back and the caller sees the error, because the emailed link is the
// user's only path forward.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	rawToken, err := utils.GenerateRandomToken(32)
	if err != nil {
		return err
	}
	tokenHash := utils.HashToken(rawToken)
	tokenExpiry := s.now().Add(s.config.resetTokenTTL())

	user.PasswordResetTokenHash = &tokenHash
	user.PasswordResetExpiresAt = &tokenExpiry
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	if s.emailSender == nil {
		return ErrEmailDeliveryFailed
	}
	if err := s.emailSender.SendPasswordResetEmail(ctx, user.Email, user.Name, rawToken); err != nil {
		s.log().WithError(err).WithField("email", user.Email).Error("reset email failed")
		user.PasswordResetTokenHash = nil
		user.PasswordResetExpiresAt = nil
		if rollbackErr := s.users.Update(ctx, user); rollbackErr != nil {
			s.log().WithError(rollbackErr).Error("reset token rollback failed")
		}
		return ErrEmailDeliveryFailed
	}

	s.logAudit(ctx, &user.ID, nil, entity.AuditPasswordReset, map[string]any{"stage": "requested"})
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token string, newPassword string) error {
	if len(newPassword) < s.config.minPasswordLength() {
		validation := &ValidationError{}
		validation.Add("newPassword", passwordLengthMessage(s.config.minPasswordLength()))
		return validation
	}

	user, err := s.users.FindByResetTokenHash(ctx, utils.HashToken(token), s.now())
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidOrExpiredToken
	}

	hash, err := s.passwordHash.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	user.PasswordResetTokenHash = nil
	user.PasswordResetExpiresAt = nil
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logAudit(ctx, &user.ID, nil, entity.AuditPasswordReset, map[string]any{"stage": "completed"})
	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword string, newPassword string) error {
	if len(newPassword) < s.config.minPasswordLength() {
		validation := &ValidationError{}
		validation.Add("newPassword", passwordLengthMessage(s.config.minPasswordLength()))
		return validation
	}

	user, err := s.users.FindByIDWithSecret(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || user.PasswordHash == nil || !s.passwordHash.Verify(*user.PasswordHash, currentPassword) {
		return ErrInvalidCredentials
	}

	hash, err := s.passwordHash.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.logAudit(ctx, &user.ID, nil, entity.AuditPasswordChanged, nil)
	return nil
}

// Refresh rotates both tokens. There is no server-side token registry, so the
// previous refresh token is not invalidated; rotation is advisory and the
// real bound is the token's own expiry.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	subject, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidRefreshToken
	}

	return s.issueTokens(user)
}

// Logout clears nothing server-side: tokens are stateless and remain valid
// until expiry. The transport layer drops the refresh cookie.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID, ipAddress *string) error {
	s.logAudit(ctx, &userID, ipAddress, entity.AuditLogout, nil)
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*AuthResult, error) {
	accessToken, accessTTL, err := s.tokens.IssueAccessToken(user.ID.String())
	if err != nil {
		return nil, err
	}
	refreshToken, refreshTTL, err := s.tokens.IssueRefreshToken(user.ID.String())
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		User:             user,
		AccessToken:      accessToken,
		AccessExpiresIn:  int64(accessTTL.Seconds()),
		RefreshToken:     refreshToken,
		RefreshExpiresIn: int64(refreshTTL.Seconds()),
	}, nil
}

func (s *AuthService) logAudit(ctx context.Context, userID *uuid.UUID, ipAddress *string, action entity.AuditAction, metadata map[string]any) {
	if s.auditLogs == nil {
		return
	}
	payload, err := auditMetadata(metadata)
	if err != nil {
		s.log().WithError(err).Warn("audit metadata marshal failed")
		return
	}
	log := &entity.AuditLog{
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
	}
	if err := s.auditLogs.Log(ctx, log); err != nil {
		s.log().WithError(err).Warn("audit log write failed")
	}
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *AuthService) log() logrus.FieldLogger {
	if s.logger == nil {
		return logrus.StandardLogger()
	}
	return s.logger
}
