package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"coursehub/internal/domain/entity"
	"coursehub/internal/domain/repository"
	"coursehub/pkg/apperr"
	"coursehub/pkg/helpers"
	"coursehub/pkg/mailer"
)

// EmailPublisher enqueues outbound email jobs. Satisfied by
// helpers.RabbitPublisher in production.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// AuthService implements registration, login, token refresh and the
// password-reset ticket flow.
type AuthService struct {
	Users       repository.UserRepository
	Resets      repository.PasswordResetRepository
	JWT         *helpers.JWTManager
	Pub         EmailPublisher
	Logger      *logrus.Logger
	ClientURL   string
	ResetTTL    time.Duration
	MailEnabled bool
}

func NewAuthService(users repository.UserRepository, resets repository.PasswordResetRepository, jwt *helpers.JWTManager, pub EmailPublisher, logger *logrus.Logger, clientURL string, resetTTL time.Duration, mailEnabled bool) *AuthService {
	return &AuthService{
		Users:       users,
		Resets:      resets,
		JWT:         jwt,
		Pub:         pub,
		Logger:      logger,
		ClientURL:   clientURL,
		ResetTTL:    resetTTL,
		MailEnabled: mailEnabled,
	}
}

// UserView is the response-safe projection of a user. The password hash is
// never part of it.
type UserView struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Role      entity.Role       `json:"role"`
	Status    entity.UserStatus `json:"status"`
	Bio       string            `json:"bio,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	Avatar    string            `json:"avatar,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func NewUserView(u *entity.User) *UserView {
	return &UserView{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Status:    u.Status,
		Bio:       u.Bio,
		Phone:     u.Phone,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      entity.Role // empty defaults to STUDENT
}

func (s *AuthService) issueTokens(u *entity.User) (TokenPair, error) {
	access, _, err := s.JWT.GenerateAccessToken(u)
	if err != nil {
		return TokenPair{}, apperr.Wrap(err, "generate access token")
	}
	refresh, _, err := s.JWT.GenerateRefreshToken(u)
	if err != nil {
		return TokenPair{}, apperr.Wrap(err, "generate refresh token")
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Register creates a new account and signs the user in. A duplicate email is
// a Conflict whether it is caught by the pre-check or by the store's unique
// constraint.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*UserView, TokenPair, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleStudent
	}
	if !role.Valid() {
		return nil, TokenPair{}, apperr.Validation("INVALID_ROLE", "Role must be one of: ADMIN, INSTRUCTOR, STUDENT")
	}

	if existing, err := s.Users.GetByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, TokenPair{}, apperr.Conflict("EMAIL_ALREADY_EXISTS", "User with this email already exists")
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, TokenPair{}, apperr.Wrap(err, "hash password")
	}

	u := &entity.User{
		Email:     in.Email,
		Password:  hash,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      role,
		Status:    entity.UserActive,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, TokenPair{}, err
	}

	pair, err := s.issueTokens(u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return NewUserView(u), pair, nil
}

// Login validates credentials. Unknown email and wrong password fail
// identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*UserView, TokenPair, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, TokenPair{}, apperr.Unauthorized("INVALID_CREDENTIALS", "Invalid email or password")
	}
	if u.Status != entity.UserActive {
		return nil, TokenPair{}, apperr.Unauthorized("ACCOUNT_NOT_ACTIVE", "Account is not active")
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, TokenPair{}, apperr.Unauthorized("INVALID_CREDENTIALS", "Invalid email or password")
	}

	pair, err := s.issueTokens(u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return NewUserView(u), pair, nil
}

// Refresh verifies the refresh token, re-reads the user, and issues a fresh
// pair. There is no server-side revocation: the old refresh token stays valid
// until its own expiry.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, apperr.Unauthorized("INVALID_REFRESH_TOKEN", "Invalid refresh token")
	}
	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil || u.Status != entity.UserActive {
		return TokenPair{}, apperr.Unauthorized("INVALID_REFRESH_TOKEN", "User not found or inactive")
	}
	return s.issueTokens(u)
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*UserView, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return NewUserView(u), nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !helpers.CompareHashAndPassword(u.Password, currentPassword) {
		return apperr.Validation("INVALID_CURRENT_PASSWORD", "Current password is incorrect")
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return apperr.Wrap(err, "hash password")
	}
	return s.Users.UpdatePassword(ctx, u.ID, hash)
}

// RequestPasswordReset creates a single-use ticket and queues the reset
// email. It succeeds identically for unknown emails so callers cannot probe
// which addresses have accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil
		}
		return err
	}

	token, err := helpers.GenResetToken()
	if err != nil {
		return apperr.Wrap(err, "generate reset token")
	}
	ticket := &entity.PasswordReset{
		Email:     u.Email,
		Token:     token,
		ExpiresAt: time.Now().Add(s.ResetTTL),
	}
	if err := s.Resets.Create(ctx, ticket); err != nil {
		return err
	}

	if s.Pub != nil && s.MailEnabled {
		resetURL := s.ClientURL + "/reset-password?token=" + token
		job := mailer.EmailJob{
			To:       u.Email,
			Template: mailer.TemplatePasswordReset,
			Data: map[string]any{
				"ResetURL":  resetURL,
				"ExpiresIn": s.ResetTTL.String(),
			},
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Warn("failed to enqueue reset email")
		}
	}
	return nil
}

// ResetPassword consumes a ticket exactly once. Unknown, expired and
// already-used tokens fail uniformly.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	invalid := apperr.Validation("INVALID_RESET_TOKEN", "Invalid or expired reset token")

	ticket, err := s.Resets.GetByToken(ctx, token)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindValidation {
			return invalid
		}
		return err
	}
	if ticket.Expired(time.Now()) {
		return invalid
	}

	u, err := s.Users.GetByEmail(ctx, ticket.Email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return invalid
		}
		return err
	}

	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return apperr.Wrap(err, "hash password")
	}
	if err := s.Users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return err
	}
	return s.Resets.Delete(ctx, ticket.ID)
}
