package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/user/invoicer/internal/domain"
	"github.com/user/invoicer/pkg/util"
)

// SignInService verifies credential form submissions against the user store
// and issues session tokens. It is the concrete domain.CredentialSigner
// behind the sign-in action.
type SignInService struct {
	users     domain.UserRepository
	logger    *slog.Logger
	jwtSecret string
	jwtExpiry time.Duration
}

// NewSignInService creates a new SignInService.
func NewSignInService(users domain.UserRepository, logger *slog.Logger, jwtSecret string, jwtExpiry time.Duration) *SignInService {
	return &SignInService{
		users:     users,
		logger:    logger,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// SignIn verifies the email and password fields of the form and returns a
// signed session token. Credential mismatches of any kind map to an AuthError
// of type CredentialsSignin; infrastructure failures map to other AuthError
// types so the action layer can distinguish them.
func (s *SignInService) SignIn(ctx context.Context, strategy string, form url.Values) (string, error) {
	if strategy != "credentials" {
		return "", &domain.AuthError{Type: "UnsupportedStrategy", Err: fmt.Errorf("unsupported sign-in strategy %q", strategy)}
	}

	email := strings.TrimSpace(form.Get("email"))
	password := form.Get("password")
	if email == "" || password == "" {
		return "", &domain.AuthError{Type: domain.CredentialsSignin}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", &domain.AuthError{Type: domain.CredentialsSignin}
		}
		return "", &domain.AuthError{Type: "DatabaseError", Err: err}
	}

	if !util.CheckPasswordHash(password, user.Password) {
		return "", &domain.AuthError{Type: domain.CredentialsSignin}
	}

	token, err := util.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return "", &domain.AuthError{Type: "TokenError", Err: err}
	}

	return token, nil
}
