package credential

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OAuthProvider implements Provider on top of an OAuth2 installed-app
// config plus a token file on disk (token.json convention).
type OAuthProvider struct {
	config    *oauth2.Config
	tokenPath string

	mu     sync.Mutex
	source oauth2.TokenSource
}

// NewOAuthProvider builds a provider from installed-app credentials JSON.
func NewOAuthProvider(credentialsJSON []byte, tokenPath string, scopes ...string) (*OAuthProvider, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	return &OAuthProvider{config: cfg, tokenPath: tokenPath}, nil
}

// NewOAuthProviderFromFile builds a provider from a credentials file path.
func NewOAuthProviderFromFile(credentialsPath, tokenPath string, scopes ...string) (*OAuthProvider, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewOAuthProvider(data, tokenPath, scopes...)
}

// Token returns a bearer access token. The silent path refreshes from
// the stored token file; when that fails and interactive is true, an
// AuthorizationRequiredError with the consent URL is returned so the
// caller can drive the user through the prompt.
func (p *OAuthProvider) Token(ctx context.Context, interactive bool) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.source == nil {
		tok, err := p.loadToken()
		if err != nil {
			if !interactive {
				return "", fmt.Errorf("%w: no stored token: %v", ErrAuthFailed, err)
			}
			return "", &AuthorizationRequiredError{
				URL: p.config.AuthCodeURL("state", oauth2.AccessTypeOffline),
			}
		}
		p.source = p.config.TokenSource(ctx, tok)
	}

	tok, err := p.source.Token()
	if err != nil {
		p.source = nil
		if !interactive {
			return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
		}
		return "", &AuthorizationRequiredError{
			URL: p.config.AuthCodeURL("state", oauth2.AccessTypeOffline),
		}
	}

	return tok.AccessToken, nil
}

// Exchange redeems an authorization code and persists the new token.
func (p *OAuthProvider) Exchange(ctx context.Context, code string) error {
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("%w: code exchange: %v", ErrAuthFailed, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.source = p.config.TokenSource(ctx, tok)
	return p.saveToken(tok)
}

// Invalidate drops the cached token source so the next Token call must
// refresh. Called after a 401 from the calendar provider; the same
// access token is never retried.
func (p *OAuthProvider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.source = nil

	tok, err := p.loadToken()
	if err != nil {
		return
	}
	// Force a refresh on next use. The refresh token is kept.
	tok.AccessToken = ""
	_ = p.saveToken(tok)
}

func (p *OAuthProvider) loadToken() (*oauth2.Token, error) {
	data, err := os.ReadFile(p.tokenPath)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	return &tok, nil
}

func (p *OAuthProvider) saveToken(tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return os.WriteFile(p.tokenPath, data, 0600)
}
