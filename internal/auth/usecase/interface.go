package usecase

import (
	"context"

	authdto "wellness-backend/internal/auth/dto"
)

// AuthUsecase covers credential resolution and the OAuth2
// authorization-code flow against Exist.io.
type AuthUsecase interface {
	// AuthorizeURL builds the provider authorization redirect URL.
	AuthorizeURL() (string, error)

	// ExchangeCode trades an authorization code for an access token and
	// stores it as the current session token.
	ExchangeCode(ctx context.Context, code string) error

	// ResolveCredential returns the bearer credential to present
	// upstream, preferring the OAuth session token over the static API
	// key. ok is false when neither is available.
	ResolveCredential() (credential string, ok bool)

	Status() *authdto.StatusResponse
}
