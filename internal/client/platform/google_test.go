package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func testIDToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestGoogleDeviceSource_Query(t *testing.T) {
	idToken := testIDToken(t, jwt.MapClaims{"email": "g@b.com", "nonce": "hash"})

	mux := http.NewServeMux()
	mux.HandleFunc("/device", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "hash", r.PostForm.Get("nonce"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"device_code":      "dev",
			"user_code":        "ABCD-EFGH",
			"verification_uri": "https://google.example/device",
			"expires_in":       300,
			"interval":         1,
		})
	})
	mux.HandleFunc("/token", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "google-at",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     idToken,
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	var promptedURI, promptedCode string
	source := NewGoogleDeviceSource("client", "secret", func(uri, code string) {
		promptedURI, promptedCode = uri, code
	})
	source.config.Endpoint = oauth2.Endpoint{
		DeviceAuthURL: srv.URL + "/device",
		TokenURL:      srv.URL + "/token",
		AuthStyle:     oauth2.AuthStyleInParams,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, srv.Client())

	cred, err := source.Query(ctx, "hash")

	require.NoError(t, err)
	assert.Equal(t, FederatedCredential{IDToken: idToken, Email: "g@b.com"}, cred)
	assert.Equal(t, "https://google.example/device", promptedURI)
	assert.Equal(t, "ABCD-EFGH", promptedCode)
}

func TestGoogleDeviceSource_NotConfigured(t *testing.T) {
	_, err := NewGoogleDeviceSource("", "", nil).Query(context.Background(), "hash")

	assert.ErrorIs(t, err, ErrNoStoredCredential)
}

func TestEmailOf(t *testing.T) {
	assert.Equal(t, "x@b.com", emailOf(testIDToken(t, jwt.MapClaims{"email": "x@b.com"})))
	assert.Empty(t, emailOf("not-a-jwt"))
}
