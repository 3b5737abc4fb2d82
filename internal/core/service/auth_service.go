package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/resource-gateway/internal/core/domain"
	"github.com/campushub/resource-gateway/internal/core/ports"
)

// AuthService implements login, registration, password reset, and profile
// restoration against the external API.
type AuthService struct {
	api    ports.AuthAPI
	logger zerolog.Logger
}

func NewAuthService(api ports.AuthAPI, logger zerolog.Logger) *AuthService {
	return &AuthService{api: api, logger: logger}
}

// Login exchanges credentials for a bearer token, then fetches the profile.
// The returned session satisfies the invariant that User is populated only
// after a successful profile fetch.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.api.Token(ctx, username, password)
	if err != nil {
		var fe *domain.FetchError
		if errors.As(err, &fe) && fe.StatusCode >= 400 && fe.StatusCode < 500 {
			s.logger.Info().Str("username", username).Msg("login rejected")
			if fe.Message != "" {
				return nil, &domain.FetchError{Op: fe.Op, StatusCode: fe.StatusCode, Message: fe.Message, Err: domain.ErrInvalidCredentials}
			}
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	profile, err := s.api.Me(ctx, token)
	if err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("profile fetch failed after login")
		return nil, domain.ErrSessionInvalid
	}

	s.logger.Info().Str("username", profile.Username).Str("role", string(profile.Role)).Msg("login succeeded")
	return &domain.Session{Token: token, User: profile}, nil
}

// Register validates the form locally before any network call: institution
// email domain and password confirmation. A successful registration does not
// log the user in; email verification is still pending.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Profile, error) {
	if err := domain.ValidateInstitutionEmail(in.Email); err != nil {
		return nil, err
	}
	if in.Password != in.ConfirmPassword {
		return nil, &domain.ValidationError{Field: "confirm_password", Message: "passwords do not match"}
	}

	profile, err := s.api.Register(ctx, strings.TrimSpace(in.Email), strings.TrimSpace(in.Username), in.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", profile.Username).Msg("registration submitted, verification pending")
	return profile, nil
}

// RequestPasswordReset always reports success to the caller so the response
// cannot reveal whether the address has an account. Backend failures are
// logged and swallowed.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if err := s.api.RequestPasswordReset(ctx, email); err != nil {
		s.logger.Debug().Err(err).Msg("password reset request failed upstream")
	}
	return nil
}

// ResetPassword completes a reset with the emailed token.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if strings.TrimSpace(token) == "" {
		return &domain.ValidationError{Field: "token", Message: "reset token is required"}
	}
	if newPassword == "" {
		return &domain.ValidationError{Field: "new_password", Message: "a new password is required"}
	}

	if err := s.api.ResetPassword(ctx, token, newPassword); err != nil {
		var fe *domain.FetchError
		if errors.As(err, &fe) && fe.StatusCode >= 400 && fe.StatusCode < 500 {
			return domain.ErrResetTokenInvalid
		}
		return err
	}
	return nil
}

// Restore performs the single profile refresh for a persisted token. Any
// failure collapses to ErrSessionInvalid; the caller must clear the stored
// session in that case so token and profile disappear together.
func (s *AuthService) Restore(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrSessionInvalid
	}

	profile, err := s.api.Me(ctx, token)
	if err != nil {
		s.logger.Debug().Err(err).Msg("session restore failed")
		return nil, domain.ErrSessionInvalid
	}

	return &domain.Session{Token: token, User: profile}, nil
}
