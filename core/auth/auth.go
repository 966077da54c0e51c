package auth

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scope grants read/write access to spreadsheets.
const Scope = "https://www.googleapis.com/auth/spreadsheets"

// ErrTokenMissing is returned in oauth mode when no cached token exists yet.
var ErrTokenMissing = errors.New("oauth token not found, run `intl-sheets auth login` first")

// NewHTTPClient returns an HTTP client authorized for the Sheets API.
func NewHTTPClient(ctx context.Context, cfg Config) (*http.Client, error) {
	switch cfg.Mode {
	case ModeServiceAccount:
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, Scope)
		if err != nil {
			return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
		}
		return oauth2.NewClient(ctx, creds.TokenSource), nil

	case ModeOAuth:
		conf, err := OAuthConfig(cfg)
		if err != nil {
			return nil, err
		}
		tok, err := LoadToken(cfg.TokenFile)
		if err != nil {
			return nil, err
		}
		return conf.Client(ctx, tok), nil

	default:
		return nil, fmt.Errorf("unsupported auth mode %q", cfg.Mode)
	}
}

// OAuthConfig builds the OAuth2 config from the client secret file.
func OAuthConfig(cfg Config) (*oauth2.Config, error) {
	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secret file: %w", err)
	}
	conf, err := google.ConfigFromJSON(data, Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client secret file: %w", err)
	}
	return conf, nil
}

// LoadToken reads a cached OAuth token.
func LoadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrTokenMissing
		}
		return nil, fmt.Errorf("failed to open token file: %w", err)
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token file: %w", err)
	}
	return tok, nil
}

// SaveToken writes an OAuth token, readable by the owner only.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(tok)
}

// Login runs the interactive consent flow: it prints the consent URL to out,
// reads the authorization code from in, and caches the resulting token.
func Login(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	conf, err := OAuthConfig(cfg)
	if err != nil {
		return err
	}

	url := conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(out, "Open the following link in your browser, then paste the authorization code:\n%s\n> ", url)

	code, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("empty authorization code")
	}

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	return SaveToken(cfg.TokenFile, tok)
}
