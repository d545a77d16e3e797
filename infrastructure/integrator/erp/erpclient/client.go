package erpclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/oauth2"

	erpdomain "github.com/orangepax/outlet-sales-sync/infrastructure/integrator/erp/domain"
	"github.com/orangepax/outlet-sales-sync/internal/config"
)

// Numbers stay json.Number so amounts reach decimal parsing without a float round trip.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

type Client interface {
	GetRetailTransactions(ctx context.Context, params RetailTransactionsParams) ([]erpdomain.RawTransaction, error)
}

type TokenProvider interface {
	Acquire(ctx context.Context) (*oauth2.Token, error)
}

type ERPClient struct {
	httpClient *http.Client
	baseURL    string
	pageSize   int
	maxPages   int
}

func NewClient(cfg *config.Config) Client {
	return &ERPClient{
		httpClient: &http.Client{
			Timeout: defaultTimeout(cfg.ERP.RequestTimeout),
		},
		baseURL:  cfg.ERP.TransactionsURL(),
		pageSize: cfg.ERP.PageSize,
		maxPages: cfg.ERP.MaxPages,
	}
}

func defaultTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 120 * time.Second
	}
	return d
}
