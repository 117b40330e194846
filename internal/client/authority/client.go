// Package authority talks to the external identity authority's token and sign-up endpoints.
package authority

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"chess/internal/client/credential"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	passwordRealmGrant   = "http://auth0.com/oauth/grant-type/password-realm"
	tokenExchangeGrant   = "urn:ietf:params:oauth:grant-type:token-exchange"
	googleIDTokenType    = "http://auth0.com/oauth/token-type/google-id-token"
	tokenPath            = "/oauth/token"
	signUpPath           = "/dbconnections/signup"
	defaultTimeout       = 10 * time.Second
	defaultTokenLifetime = time.Hour
	maxErrorBody         = 64 << 10
)

// Config describes the authority tenant.
type Config struct {
	Domain     string
	ClientID   string
	Audience   string
	Realm      string
	Connection string
	Scope      string
	Timeout    time.Duration
}

// Client exchanges user credentials for token sets.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL points the client at a different origin than https://<domain>.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets the client's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient builds a Client for cfg.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if cfg.Connection == "" {
		cfg.Connection = cfg.Realm
	}

	c := &Client{
		cfg:        cfg,
		baseURL:    originFor(cfg.Domain),
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func originFor(domain string) string {
	domain = strings.TrimRight(domain, "/")
	if strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		return domain
	}

	return "https://" + domain
}

// Login exchanges an email and password for a token set.
func (c *Client) Login(ctx context.Context, email, password string) (*credential.TokenSet, error) {
	form := url.Values{
		"grant_type": {passwordRealmGrant},
		"client_id":  {c.cfg.ClientID},
		"username":   {email},
		"password":   {password},
		"realm":      {c.cfg.Realm},
	}
	c.addAudienceAndScope(form)

	return c.postToken(ctx, form)
}

// LoginWithFederatedToken exchanges a Google id_token bound to nonceHash for a token set.
func (c *Client) LoginWithFederatedToken(ctx context.Context, idToken, nonceHash string) (*credential.TokenSet, error) {
	form := url.Values{
		"grant_type":         {tokenExchangeGrant},
		"client_id":          {c.cfg.ClientID},
		"subject_token":      {idToken},
		"subject_token_type": {googleIDTokenType},
		"nonce":              {nonceHash},
	}
	c.addAudienceAndScope(form)

	return c.postToken(ctx, form)
}

type signUpRequest struct {
	ClientID   string `json:"client_id"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Connection string `json:"connection"`
}

// SignUp creates a database user and logs it in.
func (c *Client) SignUp(ctx context.Context, email, password string) (*credential.TokenSet, error) {
	body, err := json.Marshal(signUpRequest{
		ClientID:   c.cfg.ClientID,
		Email:      email,
		Password:   password,
		Connection: c.cfg.Connection,
	})
	if err != nil {
		return nil, invalidRequest(errors.Wrap(err, "encode sign-up request"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+signUpPath, bytes.NewReader(body))
	if err != nil {
		return nil, invalidRequest(errors.Wrap(err, "build sign-up request"))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, unreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, readError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.Info("Account created at authority", slog.String("email", email))

	return c.Login(ctx, email, password)
}

// Refresh exchanges a refresh token for a new token set.
// A rejected refresh token yields an *Error matching credential.ErrRefreshRejected.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*credential.TokenSet, error) {
	conf := &oauth2.Config{
		ClientID: c.cfg.ClientID,
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.baseURL + tokenPath,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			status := 0
			if retrieveErr.Response != nil {
				status = retrieveErr.Response.StatusCode
			}

			return nil, newError(status, retrieveErr.ErrorCode, retrieveErr.ErrorDescription)
		}

		return nil, unreachable(err)
	}

	tokens := &credential.TokenSet{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
	}
	if idToken, ok := token.Extra("id_token").(string); ok {
		tokens.IDToken = idToken
	}
	if tokens.ExpiresAt.IsZero() {
		tokens.ExpiresAt = c.now().Add(defaultTokenLifetime)
	}

	return tokens, nil
}

func (c *Client) addAudienceAndScope(form url.Values) {
	if c.cfg.Audience != "" {
		form.Set("audience", c.cfg.Audience)
	}
	if c.cfg.Scope != "" {
		form.Set("scope", c.cfg.Scope)
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	IDToken      string `json:"id_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (c *Client) postToken(ctx context.Context, form url.Values) (*credential.TokenSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, invalidRequest(errors.Wrap(err, "build token request"))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	issuedAt := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, unreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, readError(resp)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, invalidResponse(resp.StatusCode, errors.Wrap(err, "decode token response"))
	}
	if body.AccessToken == "" {
		return nil, invalidResponse(resp.StatusCode, errors.New("token response has no access_token"))
	}

	lifetime := time.Duration(body.ExpiresIn) * time.Second
	if lifetime <= 0 {
		lifetime = defaultTokenLifetime
	}

	return &credential.TokenSet{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
		IDToken:      body.IDToken,
		ExpiresAt:    issuedAt.Add(lifetime),
	}, nil
}

// errorBody covers both shapes the authority uses: OAuth errors and management-style errors.
type errorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Code             string `json:"code"`
	Description      string `json:"description"`
	Message          string `json:"message"`
}

func readError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return unreachable(err)
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return newError(resp.StatusCode, "", strings.TrimSpace(string(raw)))
	}

	code := body.Error
	if code == "" {
		code = body.Code
	}
	description := body.ErrorDescription
	if description == "" {
		description = body.Description
	}
	if description == "" {
		description = body.Message
	}

	return newError(resp.StatusCode, code, description)
}
