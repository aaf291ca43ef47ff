package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"internlink/internal/dto"
	"internlink/internal/entity"
	"internlink/internal/repository"
	"internlink/internal/utils"

	"github.com/google/uuid"
)

// --- in-memory fakes ---

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
	// profiles created through CreateWithProfile, keyed by user id
	profiles map[uuid.UUID]any
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[uuid.UUID]*entity.User),
		profiles: make(map[uuid.UUID]any),
	}
}

func copyUser(u *entity.User, withSecret bool) *entity.User {
	clone := *u
	if !withSecret {
		clone.PasswordHash = nil
	}
	return &clone
}

func (r *fakeUserRepo) CreateWithProfile(_ context.Context, user *entity.User, profile any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile == nil {
		return errors.New("role profile is required")
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	stored := *user
	r.users[user.ID] = &stored
	r.profiles[user.ID] = profile
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return copyUser(u, false), nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByIDWithSecret(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return copyUser(u, true), nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.findByEmail(email, false)
}

func (r *fakeUserRepo) FindByEmailWithSecret(_ context.Context, email string) (*entity.User, error) {
	return r.findByEmail(email, true)
}

func (r *fakeUserRepo) findByEmail(email string, withSecret bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return copyUser(u, withSecret), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByGoogleID(_ context.Context, googleID string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return copyUser(u, false), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByVerificationTokenHash(_ context.Context, hash string, now time.Time) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.EmailVerificationTokenHash != nil && *u.EmailVerificationTokenHash == hash &&
			u.EmailVerificationExpiresAt != nil && u.EmailVerificationExpiresAt.After(now) {
			return copyUser(u, false), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByResetTokenHash(_ context.Context, hash string, now time.Time) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.PasswordResetTokenHash != nil && *u.PasswordResetTokenHash == hash &&
			u.PasswordResetExpiresAt != nil && u.PasswordResetExpiresAt.After(now) {
			return copyUser(u, false), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context, role *entity.UserRole, limit, offset int) ([]entity.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []entity.User
	for _, u := range r.users {
		if !u.IsActive {
			continue
		}
		if role != nil && u.Role != *role {
			continue
		}
		matched = append(matched, *copyUser(u, false))
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

// Update preserves the stored password hash, mirroring the production
// repository's omit of that column.
func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.users[user.ID]
	if !ok {
		return errors.New("user not found")
	}
	updated := *user
	updated.PasswordHash = existing.PasswordHash
	r.users[user.ID] = &updated
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.PasswordHash = &hash
	}
	return nil
}

func (r *fakeUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.IsActive = active
	}
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	delete(r.profiles, id)
	return nil
}

type fakeProfileRepo struct {
	students map[uuid.UUID]*entity.StudentProfile
	faculty  map[uuid.UUID]*entity.FacultyProfile
	industry map[uuid.UUID]*entity.IndustryProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		students: make(map[uuid.UUID]*entity.StudentProfile),
		faculty:  make(map[uuid.UUID]*entity.FacultyProfile),
		industry: make(map[uuid.UUID]*entity.IndustryProfile),
	}
}

func (r *fakeProfileRepo) FindStudent(_ context.Context, userID uuid.UUID) (*entity.StudentProfile, error) {
	return r.students[userID], nil
}

func (r *fakeProfileRepo) FindFaculty(_ context.Context, userID uuid.UUID) (*entity.FacultyProfile, error) {
	return r.faculty[userID], nil
}

func (r *fakeProfileRepo) FindIndustry(_ context.Context, userID uuid.UUID) (*entity.IndustryProfile, error) {
	return r.industry[userID], nil
}

func (r *fakeProfileRepo) SaveStudent(_ context.Context, profile *entity.StudentProfile) error {
	r.students[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) SaveFaculty(_ context.Context, profile *entity.FacultyProfile) error {
	r.faculty[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) SaveIndustry(_ context.Context, profile *entity.IndustryProfile) error {
	r.industry[profile.UserID] = profile
	return nil
}

type fakeAuditRepo struct {
	entries []entity.AuditLog
}

func (r *fakeAuditRepo) Log(_ context.Context, log *entity.AuditLog) error {
	r.entries = append(r.entries, *log)
	return nil
}

func (r *fakeAuditRepo) lastAction() entity.AuditAction {
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[len(r.entries)-1].Action
}

type fakeEmailSender struct {
	welcomeTokens []string
	resetTokens   []string
	failNext      bool
}

func (s *fakeEmailSender) SendWelcomeEmail(_ context.Context, _ string, _ string, _ entity.UserRole, token string) error {
	if s.failNext {
		return errors.New("smtp down")
	}
	s.welcomeTokens = append(s.welcomeTokens, token)
	return nil
}

func (s *fakeEmailSender) SendPasswordResetEmail(_ context.Context, _ string, _ string, token string) error {
	if s.failNext {
		return errors.New("smtp down")
	}
	s.resetTokens = append(s.resetTokens, token)
	return nil
}

// plainHasher keeps tests fast; bcrypt itself is covered by its own package.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Verify(hash string, password string) bool { return hash == "hashed:"+password }

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeGoogleVerifier struct {
	identity *GoogleIdentity
	err      error
}

func (v *fakeGoogleVerifier) Verify(_ context.Context, _ string) (*GoogleIdentity, error) {
	return v.identity, v.err
}

// --- harness ---

type authFixture struct {
	service  *AuthService
	users    *fakeUserRepo
	profiles *fakeProfileRepo
	audit    *fakeAuditRepo
	email    *fakeEmailSender
	google   *fakeGoogleVerifier
	clock    *fakeClock
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:    newFakeUserRepo(),
		profiles: newFakeProfileRepo(),
		audit:    &fakeAuditRepo{},
		email:    &fakeEmailSender{},
		google:   &fakeGoogleVerifier{},
		clock:    &fakeClock{now: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)},
	}
	tokens := &utils.TokenManager{
		AccessSecret:  []byte("test-access"),
		RefreshSecret: []byte("test-refresh"),
		Issuer:        "internlink-test",
		AccessTTL:     time.Hour,
		RefreshTTL:    24 * time.Hour,
		Now:           func() time.Time { return f.clock.now },
	}
	f.service = NewAuthService(
		f.users, f.profiles, f.audit,
		f.email, plainHasher{}, tokens, f.google, f.clock,
		nil,
		AuthConfig{MinPasswordLength: 6},
	)
	return f
}

func studentRegistration(email string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:       email,
		Password:    "secret1",
		Name:        "Test Student",
		Role:        "student",
		StudentData: &dto.StudentData{StudentID: "S-100", College: "Test College"},
	}
}

// --- tests ---

func TestRegisterCreatesPrincipalAndExtension(t *testing.T) {
	f := newAuthFixture()

	result, err := f.service.Register(context.Background(), studentRegistration("alice@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatal("expected both token classes")
	}
	if result.AccessToken == result.RefreshToken {
		t.Fatal("access and refresh tokens are identical")
	}

	stored := f.users.users[result.User.ID]
	if stored == nil {
		t.Fatal("user not persisted")
	}
	if stored.IsEmailVerified {
		t.Fatal("new account must start unverified")
	}
	if stored.EmailVerificationTokenHash == nil {
		t.Fatal("verification token hash not stored")
	}

	profile, ok := f.users.profiles[result.User.ID].(*entity.StudentProfile)
	if !ok {
		t.Fatalf("profile type = %T, want *entity.StudentProfile", f.users.profiles[result.User.ID])
	}
	if profile.StudentID != "S-100" {
		t.Fatalf("studentID = %q", profile.StudentID)
	}

	if len(f.email.welcomeTokens) != 1 {
		t.Fatalf("welcome emails = %d, want 1", len(f.email.welcomeTokens))
	}
	// only the hash is stored, never the raw token
	if utils.HashToken(f.email.welcomeTokens[0]) != *stored.EmailVerificationTokenHash {
		t.Fatal("stored hash does not match emailed token")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture()

	if _, err := f.service.Register(context.Background(), studentRegistration("dup@example.com")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := f.service.Register(context.Background(), studentRegistration("dup@example.com"))
	if !errors.Is(err, ErrDuplicateIdentity) {
		t.Fatalf("err = %v, want ErrDuplicateIdentity", err)
	}
}

func TestRegisterCollectsAllValidationErrors(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Register(context.Background(), dto.RegisterRequest{
		Email:    "short@example.com",
		Password: "abc",
		Name:     "Shorty",
		Role:     "faculty",
	})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	// short password, missing employeeId, missing department
	if len(validation.Fields) != 3 {
		t.Fatalf("fields = %d (%v), want 3", len(validation.Fields), validation.Fields)
	}
}

func TestRegisterEmailFailureIsNotFatal(t *testing.T) {
	f := newAuthFixture()
	f.email.failNext = true

	result, err := f.service.Register(context.Background(), studentRegistration("nomail@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.AccessToken == "" {
		t.Fatal("expected tokens despite email failure")
	}
}

func TestLoginSuccess(t *testing.T) {
	f := newAuthFixture()
	reg, err := f.service.Register(context.Background(), studentRegistration("login@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	ip := "203.0.113.9"
	result, err := f.service.Login(context.Background(), dto.LoginRequest{
		Email:    "Login@Example.com",
		Password: "secret1",
	}, &ip)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.User.ID != reg.User.ID {
		t.Fatal("wrong user returned")
	}

	stored := f.users.users[reg.User.ID]
	if stored.LastLoginAt == nil || !stored.LastLoginAt.Equal(f.clock.now) {
		t.Fatalf("lastLoginAt = %v, want %v", stored.LastLoginAt, f.clock.now)
	}
	if f.audit.lastAction() != entity.AuditLoginSuccess {
		t.Fatalf("audit action = %q", f.audit.lastAction())
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginFailuresAreUniform(t *testing.T) {
	f := newAuthFixture()
	if _, err := f.service.Register(context.Background(), studentRegistration("known@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, unknownErr := f.service.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	}, nil)
	_, wrongErr := f.service.Login(context.Background(), dto.LoginRequest{
		Email:    "known@example.com",
		Password: "wrong-password",
	}, nil)

	if !errors.Is(unknownErr, ErrInvalidCredentials) || !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("unknown = %v, wrong = %v, want ErrInvalidCredentials for both", unknownErr, wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("messages differ: %q vs %q", unknownErr.Error(), wrongErr.Error())
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	f := newAuthFixture()
	reg, err := f.service.Register(context.Background(), studentRegistration("inactive@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := f.users.SetActive(context.Background(), reg.User.ID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, err = f.service.Login(context.Background(), dto.LoginRequest{
		Email:    "inactive@example.com",
		Password: "secret1",
	}, nil)
	if !errors.Is(err, ErrAccountDeactivated) {
		t.Fatalf("err = %v, want ErrAccountDeactivated", err)
	}
}

func TestVerifyEmail(t *testing.T) {
	f := newAuthFixture()
	reg, err := f.service.Register(context.Background(), studentRegistration("verify@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	token := f.email.welcomeTokens[0]

	if err := f.service.VerifyEmail(context.Background(), token); err != nil {
		t.Fatalf("verify: %v", err)
	}
	stored := f.users.users[reg.User.ID]
	if !stored.IsEmailVerified {
		t.Fatal("account not marked verified")
	}
	if stored.EmailVerificationTokenHash != nil || stored.EmailVerificationExpiresAt != nil {
		t.Fatal("verification token not cleared")
	}

	// the token is single use
	if err := f.service.VerifyEmail(context.Background(), token); !errors.Is(err, ErrInvalidOrExpiredToken) {
		t.Fatalf("second use: err = %v, want ErrInvalidOrExpiredToken", err)
	}
}

func TestVerifyEmailExpiredToken(t *testing.T) {
	f := newAuthFixture()
	if _, err := f.service.Register(context.Background(), studentRegistration("late@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}
	token := f.email.welcomeTokens[0]

	f.clock.now = f.clock.now.Add(25 * time.Hour)
	if err := f.service.VerifyEmail(context.Background(), token); !errors.Is(err, ErrInvalidOrExpiredToken) {
		t.Fatalf("err = %v, want ErrInvalidOrExpiredToken", err)
	}
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	f := newAuthFixture()
	if err := f.service.ForgotPassword(context.Background(), "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestForgotPasswordDeliveryFailureRollsBack(t *testing.T) {
	f := newAuthFixture()
	reg, err := f.service.Register(context.Background(), studentRegistration("rollback@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	f.email.failNext = true
	err = f.service.ForgotPassword(context.Background(), "rollback@example.com")
	if !errors.Is(err, ErrEmailDeliveryFailed) {
		t.Fatalf("err = %v, want ErrEmailDeliveryFailed", err)
	}
	stored := f.users.users[reg.User.ID]
	if stored.PasswordResetTokenHash != nil || stored.PasswordResetExpiresAt != nil {
		t.Fatal("reset token not rolled back after delivery failure")
	}
}

// A second reset request supersedes the first token.
func TestForgotPasswordSupersession(t *testing.T) {
	f := newAuthFixture()
	if _, err := f.service.Register(context.Background(), studentRegistration("super@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := f.service.ForgotPassword(context.Background(), "super@example.com"); err != nil {
		t.Fatalf("first request: %v", err)
	}
	if err := f.service.ForgotPassword(context.Background(), "super@example.com"); err != nil {
		t.Fatalf("second request: %v", err)
	}
	first, second := f.email.resetTokens[0], f.email.resetTokens[1]

	if err := f.service.ResetPassword(context.Background(), first, "newsecret"); !errors.Is(err, ErrInvalidOrExpiredToken) {
		t.Fatalf("superseded token: err = %v, want ErrInvalidOrExpiredToken", err)
	}
	if err := f.service.ResetPassword(context.Background(), second, "newsecret"); err != nil {
		t.Fatalf("current token: %v", err)
	}
}

func TestResetPasswordFlow(t *testing.T) {
	f := newAuthFixture()
	reg, err := f.service.Register(context.Background(), studentRegistration("reset@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := f.service.ForgotPassword(context.Background(), "reset@example.com"); err != nil {
		t.Fatalf("forgot: %v", err)
	}
	token := f.email.resetTokens[0]

	if err := f.service.ResetPassword(context.Background(), token, "brand-new"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	stored := f.users.users[reg.User.ID]
	if stored.PasswordResetTokenHash != nil {
		t.Fatal("reset token not cleared")
	}

	if _, err := f.service.Login(context.Background(), dto.LoginRequest{
		Email:    "reset@example.com",
		Password: "brand-new",
	}, nil); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, err := f.service.Login(context.Background(), dto.LoginRequest{
		Email:    "reset@example.com",
		Password: "secret1",
	}, nil); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password still accepted: %v", err)
	}

	// single use
	if err := f.service.ResetPassword(context.Background(), token, "another-one"); !errors.Is(err, ErrInvalidOrExpiredToken) {
		t.Fatalf("second use: err = %v, want ErrInvalidOrExpiredToken", err)
	}
}

func TestResetPasswordExpiredToken(t *testing.T) {
	f := newAuthFixture()
	if _, err := f.service.Register(context.Background(), studentRegistration("expired@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := f.service.ForgotPassword(context.Background(), "expired@example.com"); err != nil {
		t.Fatalf("forgot: %v", err)
	}

	f.clock.now = f.clock.now.Add(11 * time.Minute)
	err := f.service.ResetPassword(context.Background(), f.email.resetTokens[0], "too-late-now")
	if !errors.Is(err, ErrInvalidOrExpiredToken) {
		t.Fatalf("err = %v, want ErrInvalidOrExpiredToken", err)
	}
}

func TestResetPasswordTooShort(t *testing.T) {
	f := newAuthFixture()
	var validation *ValidationError
	if err := f.service.ResetPassword(context.Background(), "any", "abc"); !errors.As(err, &validation) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture()
	reg, err := f.service.Register(context.Background(), studentRegistration("change@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := f.service.ChangePassword(context.Background(), reg.User.ID, "wrong", "newsecret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong current password: err = %v, want ErrInvalidCredentials", err)
	}
	if err := f.service.ChangePassword(context.Background(), reg.User.ID, "secret1", "newsecret"); err != nil {
		t.Fatalf("change: %v", err)
	}
	if _, err := f.service.Login(context.Background(), dto.LoginRequest{
		Email:    "change@example.com",
		Password: "newsecret",
	}, nil); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	f := newAuthFixture()
	reg, err := f.service.Register(context.Background(), studentRegistration("refresh@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	f.clock.now = f.clock.now.Add(time.Minute)
	result, err := f.service.Refresh(context.Background(), reg.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if result.User.ID != reg.User.ID {
		t.Fatal("wrong user")
	}
	if result.AccessToken == reg.AccessToken {
		t.Fatal("access token not rotated")
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	f := newAuthFixture()
	reg, err := f.service.Register(context.Background(), studentRegistration("class@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := f.service.Refresh(context.Background(), reg.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("err = %v, want ErrInvalidRefreshToken", err)
	}
}

func TestRefreshRejectsDeactivatedAccount(t *testing.T) {
	f := newAuthFixture()
	reg, err := f.service.Register(context.Background(), studentRegistration("gone@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := f.users.SetActive(context.Background(), reg.User.ID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := f.service.Refresh(context.Background(), reg.RefreshToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("err = %v, want ErrInvalidRefreshToken", err)
	}
}

func TestGoogleLoginProvisionsAccount(t *testing.T) {
	f := newAuthFixture()
	f.google.identity = &GoogleIdentity{
		SubjectID: "google-sub-1",
		Email:     "newbie@acme-inc.com",
		Name:      "New Person",
		Picture:   "https://example.com/p.png",
	}

	result, err := f.service.LoginWithGoogle(context.Background(), "provider-token", nil)
	if err != nil {
		t.Fatalf("google login: %v", err)
	}
	if result.User.Role != entity.UserRoleIndustry {
		t.Fatalf("role = %q, want industry (inferred from domain)", result.User.Role)
	}
	if !result.User.IsEmailVerified {
		t.Fatal("provider-verified email should be marked verified")
	}
	if _, ok := f.users.profiles[result.User.ID].(*entity.IndustryProfile); !ok {
		t.Fatal("role extension not created")
	}
}

func TestGoogleLoginBindsExistingAccount(t *testing.T) {
	f := newAuthFixture()
	reg, err := f.service.Register(context.Background(), studentRegistration("bind@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	f.google.identity = &GoogleIdentity{SubjectID: "google-sub-2", Email: "bind@example.com", Name: "Bound"}

	result, err := f.service.LoginWithGoogle(context.Background(), "provider-token", nil)
	if err != nil {
		t.Fatalf("google login: %v", err)
	}
	if result.User.ID != reg.User.ID {
		t.Fatal("expected existing account, got a new one")
	}
	stored := f.users.users[reg.User.ID]
	if stored.GoogleID == nil || *stored.GoogleID != "google-sub-2" {
		t.Fatal("google subject not bound")
	}
}

func TestGoogleLoginInvalidToken(t *testing.T) {
	f := newAuthFixture()
	f.google.err = errors.New("bad audience")
	if _, err := f.service.LoginWithGoogle(context.Background(), "bad", nil); !errors.Is(err, ErrInvalidGoogleToken) {
		t.Fatalf("err = %v, want ErrInvalidGoogleToken", err)
	}
}
