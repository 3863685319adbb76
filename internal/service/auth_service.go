package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jessbook/internal/auth"
	"jessbook/internal/domain"
	"jessbook/internal/mail"
	"jessbook/internal/repository"
	"jessbook/internal/validate"
)

var (
	// ErrEmailTaken indicates an account already exists for the email address.
	ErrEmailTaken = errors.New("an account with this email address already exists")
	// ErrUserNotFound indicates no account matches the given email or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials indicates the password does not match the account.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidAuth covers every missing, tampered or expired token uniformly.
	ErrInvalidAuth = errors.New("invalid authentication")
	// ErrForbidden indicates the caller does not own the targeted resource.
	ErrForbidden = errors.New("only the owner can modify this resource")
)

// ValidationError carries the field-keyed messages produced by the validators.
type ValidationError struct {
	Fields validate.Errors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

// RegisterInput is the validated boundary structure for account registration.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthService owns the credential lifecycle: registration, login, session
// verification and the two-phase password recovery flow.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) error
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Connect(ctx context.Context, userID int64) (*domain.User, error)
	VerifySession(token string) (int64, string, error)
	IssueResetToken(ctx context.Context, email string) (string, error)
	SendResetEmail(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password, confirm string) error
	SessionTTL() time.Duration
	ResetTTL() time.Duration
}

type authService struct {
	users      repository.UserRepository
	mailer     mail.Mailer
	secret     []byte
	sessionTTL time.Duration
	resetTTL   time.Duration
	clientURL  string
}

func NewAuthService(users repository.UserRepository, mailer mail.Mailer, secret string, sessionTTL, resetTTL time.Duration, clientURL string) AuthService {
	return &authService{
		users:      users,
		mailer:     mailer,
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		resetTTL:   resetTTL,
		clientURL:  strings.TrimRight(strings.TrimSpace(clientURL), "/"),
	}
}

// Register creates a local account. The existence check runs before field
// validation, so a taken email is reported as a conflict even when other
// fields are also invalid. The unique index remains authoritative: a
// concurrent insert that slips past the check still surfaces as ErrEmailTaken.
func (s *authService) Register(ctx context.Context, in RegisterInput) error {
	email := strings.TrimSpace(in.Email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("lookup user: %w", err)
	}

	if fields := validate.Registration(in.FirstName, in.LastName, in.Email, in.Password, in.ConfirmPassword); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	hash, err := auth.HashPassword(strings.TrimSpace(in.Password))
	if err != nil {
		return err
	}

	user := &domain.User{
		FirstName:        strings.TrimSpace(in.FirstName),
		LastName:         strings.TrimSpace(in.LastName),
		Email:            email,
		PasswordHash:     hash,
		FromAuthProvider: "No",
		Role:             domain.RoleUser,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login checks credentials and issues a 7-day session token carrying the
// user's id and role. An unknown email and a wrong password are distinct
// outcomes, matching the HTTP surface (404 vs 401).
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}

	ok, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.SignToken(user.ID, user.Role, s.secret, s.sessionTTL)
	if err != nil {
		return nil, "", fmt.Errorf("sign session token: %w", err)
	}
	return sanitizeUser(user), token, nil
}

// Connect resolves the account behind an already verified session.
func (s *authService) Connect(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return sanitizeUser(user), nil
}

// VerifySession validates a session token and returns the asserted identity.
// Reset tokens carry no role claim and are rejected here, so a recovery token
// never doubles as a session.
func (s *authService) VerifySession(token string) (int64, string, error) {
	claims, err := auth.VerifyToken(token, s.secret)
	if err != nil || claims.Role == "" {
		return 0, "", ErrInvalidAuth
	}
	return claims.UserID, claims.Role, nil
}

// IssueResetToken looks up the account and signs a 1-hour reset token scoped
// to its id. The token carries no role claim.
func (s *authService) IssueResetToken(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if !validate.ValidEmail(email) {
		return "", &ValidationError{Fields: validate.Errors{"email": "Enter a valid email format."}}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	token, err := auth.SignToken(user.ID, "", s.secret, s.resetTTL)
	if err != nil {
		return "", fmt.Errorf("sign reset token: %w", err)
	}
	return token, nil
}

// SendResetEmail dispatches the recovery email. The link points at the
// client's reset page and carries no secret; the reset cookie is the secret.
func (s *authService) SendResetEmail(ctx context.Context, email string) error {
	resetLink := s.clientURL + "/reset-password"
	if err := s.mailer.SendPasswordReset(ctx, strings.TrimSpace(email), resetLink); err != nil {
		return fmt.Errorf("dispatch reset mail: %w", err)
	}
	return nil
}

// ResetPassword verifies the reset token and stores a fresh hash for the
// token's user. Validation runs first; token failures are uniform.
func (s *authService) ResetPassword(ctx context.Context, token, password, confirm string) error {
	if fields := validate.PasswordReset(password, confirm); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	if token == "" {
		return ErrInvalidAuth
	}
	claims, err := auth.VerifyToken(token, s.secret)
	if err != nil {
		return ErrInvalidAuth
	}

	hash, err := auth.HashPassword(strings.TrimSpace(password))
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, claims.UserID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (s *authService) SessionTTL() time.Duration { return s.sessionTTL }
func (s *authService) ResetTTL() time.Duration   { return s.resetTTL }

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	clean := *user
	clean.PasswordHash = ""
	return &clean
}
