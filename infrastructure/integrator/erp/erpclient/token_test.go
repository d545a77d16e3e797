package erpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	erpdomain "github.com/orangepax/outlet-sales-sync/infrastructure/integrator/erp/domain"
	"github.com/orangepax/outlet-sales-sync/internal/config"
)

func newTokenConfig(authority string) *config.Config {
	return &config.Config{
		ERP: config.ERP{
			URL:            "https://erp.example.com",
			Resource:       "https://erp.example.com",
			TenantID:       "tenant-1",
			ClientID:       "client-1",
			ClientSecret:   "s3cret",
			AuthorityURL:   authority,
			RequestTimeout: 5 * time.Second,
		},
	}
}

func TestClientCredentialsProvider_Acquire(t *testing.T) {
	var form map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tenant-1/oauth2/v2.0/token", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		form = map[string]string{
			"grant_type":    r.PostForm.Get("grant_type"),
			"client_id":     r.PostForm.Get("client_id"),
			"client_secret": r.PostForm.Get("client_secret"),
			"scope":         r.PostForm.Get("scope"),
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"abc123","token_type":"Bearer","expires_in":3599}`))
	}))
	defer server.Close()

	provider := NewTokenProvider(newTokenConfig(server.URL))

	token, err := provider.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", token.AccessToken)
	assert.Equal(t, "client_credentials", form["grant_type"])
	assert.Equal(t, "client-1", form["client_id"])
	assert.Equal(t, "s3cret", form["client_secret"])
	assert.Equal(t, "https://erp.example.com/.default", form["scope"])
}

func TestClientCredentialsProvider_MissingCredentials(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	tests := []struct {
		name  string
		patch func(cfg *config.Config)
	}{
		{name: "no tenant", patch: func(cfg *config.Config) { cfg.ERP.TenantID = "" }},
		{name: "no client id", patch: func(cfg *config.Config) { cfg.ERP.ClientID = "" }},
		{name: "no secret", patch: func(cfg *config.Config) { cfg.ERP.ClientSecret = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTokenConfig(server.URL)
			tt.patch(cfg)

			token, err := NewTokenProvider(cfg).Acquire(context.Background())
			assert.Nil(t, token)

			var authErr *erpdomain.AuthError
			require.ErrorAs(t, err, &authErr)
			assert.ErrorIs(t, err, erpdomain.ErrMissingCredentials)
			assert.Equal(t, "missing_credentials", authErr.Code)
		})
	}

	assert.Zero(t, atomic.LoadInt32(&calls), "no request must reach the identity provider")
}

func TestClientCredentialsProvider_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"AADSTS7000215: Invalid client secret provided."}`))
	}))
	defer server.Close()

	_, err := NewTokenProvider(newTokenConfig(server.URL)).Acquire(context.Background())

	var authErr *erpdomain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.ErrorIs(t, err, erpdomain.ErrTokenRejected)
	assert.Equal(t, "invalid_client", authErr.Code)
	assert.Contains(t, authErr.Description, "AADSTS7000215")
	assert.NotContains(t, err.Error(), "s3cret")
}

func TestClientCredentialsProvider_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewTokenProvider(newTokenConfig(server.URL)).Acquire(context.Background())

	var authErr *erpdomain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.ErrorIs(t, err, erpdomain.ErrTokenRequest)
}

func TestTokenURL(t *testing.T) {
	assert.Equal(t,
		"https://login.microsoftonline.com/abc/oauth2/v2.0/token",
		TokenURL("https://login.microsoftonline.com/", "abc"),
	)
}
