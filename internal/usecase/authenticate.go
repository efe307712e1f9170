package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/user/invoicer/internal/domain"
)

// AuthenticateUseCase handles the credential sign-in form action.
type AuthenticateUseCase struct {
	signer domain.CredentialSigner
	logger *slog.Logger
}

// NewAuthenticateUseCase creates a new AuthenticateUseCase.
func NewAuthenticateUseCase(signer domain.CredentialSigner, logger *slog.Logger) *AuthenticateUseCase {
	return &AuthenticateUseCase{signer: signer, logger: logger}
}

// Authenticate delegates the raw credential form to the signer using the
// credentials strategy and classifies failures. On success it returns the
// session token and an empty message. Errors outside the AuthError family
// propagate unchanged so the caller's control-flow signals are not swallowed.
// The previous state string is part of the calling convention and otherwise
// ignored.
func (uc *AuthenticateUseCase) Authenticate(ctx context.Context, prev string, form url.Values) (token, message string, err error) {
	token, err = uc.signer.SignIn(ctx, "credentials", form)
	if err == nil {
		return token, "", nil
	}

	var authErr *domain.AuthError
	if !errors.As(err, &authErr) {
		return "", "", err
	}

	switch authErr.Type {
	case domain.CredentialsSignin:
		return "", "Invalid credentials.", nil
	default:
		uc.logger.Error("sign-in failed", "error", authErr, "type", authErr.Type)
		return "", "Something went wrong.", nil
	}
}
