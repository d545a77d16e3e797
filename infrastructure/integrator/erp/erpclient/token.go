package erpclient

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	erpdomain "github.com/orangepax/outlet-sales-sync/infrastructure/integrator/erp/domain"
	"github.com/orangepax/outlet-sales-sync/internal/config"
)

// ClientCredentialsProvider obtains a bearer token with the OAuth2 client credentials grant.
// Tokens are not cached: every run asks for a fresh one.
type ClientCredentialsProvider struct {
	cfg        config.ERP
	httpClient *http.Client
}

func NewTokenProvider(cfg *config.Config) *ClientCredentialsProvider {
	return &ClientCredentialsProvider{
		cfg: cfg.ERP,
		httpClient: &http.Client{
			Timeout: defaultTimeout(cfg.ERP.RequestTimeout),
		},
	}
}

// TokenURL is the v2 token endpoint of the tenant.
func TokenURL(authority, tenantID string) string {
	return strings.TrimRight(authority, "/") + "/" + tenantID + "/oauth2/v2.0/token"
}

func (p *ClientCredentialsProvider) Acquire(ctx context.Context) (*oauth2.Token, error) {
	if p.cfg.TenantID == "" || p.cfg.ClientID == "" || p.cfg.ClientSecret == "" {
		return nil, &erpdomain.AuthError{
			Err:         erpdomain.ErrMissingCredentials,
			Code:        "missing_credentials",
			Description: "TENANT_ID, CLIENT_ID and CLIENT_SECRET must be set",
		}
	}

	cc := clientcredentials.Config{
		ClientID:     p.cfg.ClientID,
		ClientSecret: p.cfg.ClientSecret,
		TokenURL:     TokenURL(p.cfg.AuthorityURL, p.cfg.TenantID),
		Scopes:       []string{strings.TrimRight(p.cfg.Resource, "/") + "/.default"},
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := cc.Token(ctx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			authErr := &erpdomain.AuthError{
				Err:         erpdomain.ErrTokenRejected,
				Code:        retrieveErr.ErrorCode,
				Description: retrieveErr.ErrorDescription,
			}
			if authErr.Code == "" && retrieveErr.Response != nil {
				authErr.Code = retrieveErr.Response.Status
			}
			return nil, authErr
		}

		return nil, &erpdomain.AuthError{
			Err:         erpdomain.ErrTokenRequest,
			Description: err.Error(),
		}
	}

	logrus.WithFields(logrus.Fields{
		"client_id": p.cfg.ClientID,
		"expiry":    token.Expiry,
	}).Debug("erp: access token acquired")

	return token, nil
}
