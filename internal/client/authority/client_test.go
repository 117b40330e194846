package authority

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chess/internal/client/credential"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		Domain:   "tenant.example",
		ClientID: "client-1",
		Audience: "https://api.chess.example",
		Realm:    "Username-Password-Authentication",
		Scope:    "openid offline_access",
	}, WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestOriginFor(t *testing.T) {
	assert.Equal(t, "https://tenant.example", originFor("tenant.example"))
	assert.Equal(t, "https://tenant.example", originFor("tenant.example/"))
	assert.Equal(t, "http://localhost:8080", originFor("http://localhost:8080"))
}

func TestClient_Login(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, tokenPath, r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, passwordRealmGrant, r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-1", r.PostForm.Get("client_id"))
		assert.Equal(t, "a@b.com", r.PostForm.Get("username"))
		assert.Equal(t, "hunter22", r.PostForm.Get("password"))
		assert.Equal(t, "Username-Password-Authentication", r.PostForm.Get("realm"))
		assert.Equal(t, "https://api.chess.example", r.PostForm.Get("audience"))
		assert.Equal(t, "openid offline_access", r.PostForm.Get("scope"))

		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":  "at",
			"refresh_token": "rt",
			"id_token":      "idt",
			"token_type":    "Bearer",
			"expires_in":    3600,
		})
	})
	before := time.Now()

	tokens, err := client.Login(context.Background(), "a@b.com", "hunter22")

	require.NoError(t, err)
	assert.Equal(t, "at", tokens.AccessToken)
	assert.Equal(t, "rt", tokens.RefreshToken)
	assert.Equal(t, "idt", tokens.IDToken)
	assert.WithinDuration(t, before.Add(time.Hour), tokens.ExpiresAt, 5*time.Second)
}

func TestClient_Login_WrongPasswordNormalised(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]string{
			"error":             "invalid_grant",
			"error_description": "Wrong email or password.",
		})
	})

	_, err := client.Login(context.Background(), "a@b.com", "nope")

	var authErr *Error
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, KindInvalidCredentials, authErr.Kind)
	assert.Equal(t, "invalid_user_password", authErr.Code)
	assert.Equal(t, http.StatusForbidden, authErr.Status)
	assert.Equal(t, "Invalid email or password.", LoginMessage(err, "fallback"))
	assert.NotErrorIs(t, err, credential.ErrRefreshRejected)
}

func TestClient_Login_Throttled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{
			"error":             "too_many_attempts",
			"error_description": "blocked",
		})
	})

	_, err := client.Login(context.Background(), "a@b.com", "nope")

	assert.Equal(t, "Account temporarily blocked due to too many failed login attempts.", LoginMessage(err, "fallback"))
}

func TestClient_Login_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(Config{ClientID: "c"}, WithBaseURL(srv.URL))

	_, err := client.Login(context.Background(), "a@b.com", "pw")

	var authErr *Error
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, KindUnreachable, authErr.Kind)
	assert.Equal(t, unreachableMessage, LoginMessage(err, "fallback"))
}

func TestClient_LoginWithFederatedToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, tokenExchangeGrant, r.PostForm.Get("grant_type"))
		assert.Equal(t, "google-id-token", r.PostForm.Get("subject_token"))
		assert.Equal(t, googleIDTokenType, r.PostForm.Get("subject_token_type"))
		assert.Equal(t, "abc123", r.PostForm.Get("nonce"))

		writeJSON(w, http.StatusOK, map[string]any{"access_token": "at", "expires_in": 60})
	})

	tokens, err := client.LoginWithFederatedToken(context.Background(), "google-id-token", "abc123")

	require.NoError(t, err)
	assert.Equal(t, "at", tokens.AccessToken)
}

func TestClient_SignUp(t *testing.T) {
	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)
		switch r.URL.Path {
		case signUpPath:
			var body signUpRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "client-1", body.ClientID)
			assert.Equal(t, "new@b.com", body.Email)
			assert.Equal(t, "Username-Password-Authentication", body.Connection, "connection defaults to the realm")
			writeJSON(w, http.StatusOK, map[string]string{"_id": "1", "email": "new@b.com"})
		case tokenPath:
			writeJSON(w, http.StatusOK, map[string]any{"access_token": "at", "expires_in": 60})
		}
	})

	tokens, err := client.SignUp(context.Background(), "new@b.com", "longenough")

	require.NoError(t, err)
	assert.Equal(t, "at", tokens.AccessToken)
	assert.Equal(t, []string{signUpPath, tokenPath}, calls)
}

func TestClient_SignUp_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, signUpPath, r.URL.Path, "login must not run after a failed sign-up")
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"code":        "invalid_signup",
			"description": "Invalid sign up",
		})
	})

	_, err := client.SignUp(context.Background(), "dup@b.com", "longenough")

	var authErr *Error
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid_signup", authErr.Code)
	assert.Equal(t, "Sign up failed. Please check your information.", SignUpMessage(err, "fallback"))
}

func TestClient_Refresh(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "rt", r.PostForm.Get("refresh_token"))
		assert.Equal(t, "client-1", r.PostForm.Get("client_id"))

		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": "at2",
			"id_token":     "idt2",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})

	tokens, err := client.Refresh(context.Background(), "rt")

	require.NoError(t, err)
	assert.Equal(t, "at2", tokens.AccessToken)
	assert.Equal(t, "idt2", tokens.IDToken)
	assert.True(t, tokens.Valid())
}

func TestClient_Refresh_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]string{
			"error":             "invalid_grant",
			"error_description": "Unknown or invalid refresh token.",
		})
	})

	_, err := client.Refresh(context.Background(), "dead")

	assert.ErrorIs(t, err, credential.ErrRefreshRejected)
	var authErr *Error
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, KindInvalidGrant, authErr.Kind)
}

func TestClient_Login_MalformedSuccessResponse(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{name: "html page", contentType: "text/html", body: "<html><body>Gateway</body></html>"},
		{name: "no access token", contentType: "application/json", body: `{"token_type":"Bearer","expires_in":60}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Login(context.Background(), "a@b.com", "pw")

			var authErr *Error
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, KindUnknown, authErr.Kind)
			assert.Equal(t, http.StatusOK, authErr.Status)
			assert.Equal(t, "fallback", LoginMessage(err, "fallback"))
		})
	}
}
