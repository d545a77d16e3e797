package erpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	erpdomain "github.com/orangepax/outlet-sales-sync/infrastructure/integrator/erp/domain"
)

const (
	odataTimeLayout = "2006-01-02T15:04:05Z"
	errorBodyLimit  = 64 << 10
)

type RetailTransactionsParams struct {
	Token       string
	Start       time.Time
	End         time.Time
	StoreField  string
	AmountField string
	DateField   string
}

// Filter is the OData $filter expression: non-zero payments inside [Start, End).
func (p RetailTransactionsParams) Filter() string {
	return fmt.Sprintf("%s ne 0 and %s ge %s and %s lt %s",
		p.AmountField,
		p.DateField, p.Start.UTC().Format(odataTimeLayout),
		p.DateField, p.End.UTC().Format(odataTimeLayout),
	)
}

func (p RetailTransactionsParams) Select() string {
	return strings.Join([]string{p.StoreField, p.AmountField, p.DateField}, ",")
}

// GetRetailTransactions walks every page of the result set. Any failing page fails the whole call.
func (c *ERPClient) GetRetailTransactions(ctx context.Context, params RetailTransactionsParams) ([]erpdomain.RawTransaction, error) {
	pageURL := c.firstPageURL(params)

	var rows []erpdomain.RawTransaction
	for page := 1; pageURL != ""; page++ {
		if c.maxPages > 0 && page > c.maxPages {
			return nil, &erpdomain.FetchError{
				Kind:    erpdomain.FetchDecode,
				Page:    page,
				Message: fmt.Sprintf("more than %d pages, aborting", c.maxPages),
			}
		}

		result, err := c.getPage(ctx, params.Token, pageURL, page)
		if err != nil {
			return nil, err
		}

		rows = append(rows, result.Value...)
		pageURL = result.NextLink

		logrus.WithFields(logrus.Fields{
			"page":  page,
			"rows":  len(result.Value),
			"total": len(rows),
		}).Debug("erp: retail transactions page fetched")
	}

	return rows, nil
}

func (c *ERPClient) firstPageURL(params RetailTransactionsParams) string {
	return c.baseURL +
		"?$filter=" + url.PathEscape(params.Filter()) +
		"&$select=" + url.PathEscape(params.Select())
}

func (c *ERPClient) getPage(ctx context.Context, token, pageURL string, page int) (*erpdomain.TransactionsPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &erpdomain.FetchError{Kind: erpdomain.FetchTransport, Page: page, Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if c.pageSize > 0 {
		req.Header.Set("Prefer", "odata.maxpagesize="+strconv.Itoa(c.pageSize))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		kind := erpdomain.FetchTransport
		if isTimeout(err) {
			kind = erpdomain.FetchTimeout
		}
		return nil, &erpdomain.FetchError{Kind: kind, Page: page, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp, page)
	}

	var result erpdomain.TransactionsPage
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		kind := erpdomain.FetchDecode
		if isTimeout(err) {
			kind = erpdomain.FetchTimeout
		}
		return nil, &erpdomain.FetchError{Kind: kind, Page: page, Err: err}
	}

	return &result, nil
}

func statusError(resp *http.Response, page int) *erpdomain.FetchError {
	fetchErr := &erpdomain.FetchError{
		Kind:       erpdomain.FetchStatus,
		Page:       page,
		StatusCode: resp.StatusCode,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	if err != nil || len(body) == 0 {
		return fetchErr
	}

	var odataErr erpdomain.ODataErrorResponse
	if err := json.Unmarshal(body, &odataErr); err == nil && odataErr.Error.Code != "" {
		fetchErr.Code = odataErr.Error.Code
		fetchErr.Message = odataErr.Error.Message
		return fetchErr
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > 512 {
		msg = msg[:512]
	}
	fetchErr.Message = msg
	return fetchErr
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
