package google

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// DefaultTokenPath is where scripts/google-auth writes the OAuth token.
const DefaultTokenPath = "token.json"

// Credentials locates the Google credentials used by the Sheets and Drive clients.
type Credentials struct {
	Path      string // service account or installed-app client JSON
	TokenPath string // OAuth token for installed-app credentials
}

// ClientOption reads c.Path and returns an option authorizing the given scopes.
func (c Credentials) ClientOption(ctx context.Context, scopes ...string) (option.ClientOption, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	tokenPath := c.TokenPath
	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	return ClientOptionFromJSON(ctx, data, tokenPath, scopes...)
}

// ClientOptionFromJSON builds a client option from raw credentials JSON.
// Service-account JSON is tried first, then an installed-app OAuth client
// paired with the token stored at tokenPath.
func ClientOptionFromJSON(ctx context.Context, credentialsJSON []byte, tokenPath string, scopes ...string) (option.ClientOption, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, scopes...)
	if err == nil {
		return option.WithTokenSource(config.TokenSource(ctx)), nil
	}

	var oauthCreds struct {
		Installed *struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed == nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       scopes,
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile(tokenPath)
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no %s found: run scripts/google-auth or use a Service Account", tokenPath)
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, jsonErr)
	}

	return option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)), nil
}
