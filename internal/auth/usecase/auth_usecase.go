package usecase

import (
	"context"
	"errors"
	"log"
	"net/http"

	authdto "wellness-backend/internal/auth/dto"
	"wellness-backend/internal/auth/repository"
	"wellness-backend/pkg/config"

	"golang.org/x/oauth2"
)

// ErrNotConfigured means the OAuth2 client ID is missing, so the
// authorization flow cannot start.
var ErrNotConfigured = errors.New("OAuth2 client ID not configured")

// authUsecase implements AuthUsecase
type authUsecase struct {
	tokenRepo   repository.TokenRepository
	config      *config.Config
	oauthConfig *oauth2.Config
	httpClient  *http.Client
}

func NewAuthUsecase(tokenRepo repository.TokenRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		tokenRepo: tokenRepo,
		config:    cfg,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ExistClientID,
			ClientSecret: cfg.ExistClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{"activity_read", "productivity_read", "mood_read", "sleep_read"},
			Endpoint: oauth2.Endpoint{
				AuthURL: cfg.AuthURL,
				// Exist.io expects client credentials in the form body,
				// not basic auth
				AuthStyle: oauth2.AuthStyleInParams,
				TokenURL:  cfg.TokenURL,
			},
		},
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

func (u *authUsecase) AuthorizeURL() (string, error) {
	if u.config.ExistClientID == "" {
		return "", ErrNotConfigured
	}

	// No state parameter is exchanged; the flow supports a single
	// pending authorization at a time.
	url := u.oauthConfig.AuthCodeURL("")
	log.Printf("[DEBUG] redirecting to authorization URL: %s", url)
	return url, nil
}

func (u *authUsecase) ExchangeCode(ctx context.Context, code string) error {
	log.Printf("[DEBUG] exchanging authorization code for access token")

	ctx, cancel := context.WithTimeout(ctx, u.config.HTTPTimeout)
	defer cancel()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, u.httpClient)

	token, err := u.oauthConfig.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			log.Printf("[ERROR] token exchange failed: status %d, body: %s",
				retrieveErr.Response.StatusCode, string(retrieveErr.Body))
		} else {
			log.Printf("[ERROR] token exchange failed: %v", err)
		}
		return err
	}

	u.tokenRepo.Set(token.AccessToken)
	log.Printf("[DEBUG] successfully obtained access token")
	return nil
}

func (u *authUsecase) ResolveCredential() (string, bool) {
	if token := u.tokenRepo.Get(); token != "" {
		return token, true
	}
	if u.config.ExistAPIKey != "" {
		return u.config.ExistAPIKey, true
	}
	return "", false
}

func (u *authUsecase) Status() *authdto.StatusResponse {
	hasToken := u.tokenRepo.Get() != ""
	hasKey := u.config.ExistAPIKey != ""
	return &authdto.StatusResponse{
		Authenticated: hasToken || hasKey,
		HasOAuthToken: hasToken,
		HasAPIKey:     hasKey,
	}
}
