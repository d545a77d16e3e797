package erp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"

	erpdomain "github.com/orangepax/outlet-sales-sync/infrastructure/integrator/erp/domain"
	"github.com/orangepax/outlet-sales-sync/infrastructure/integrator/erp/erpclient"
	"github.com/orangepax/outlet-sales-sync/infrastructure/integrator/erp/erpclient/mocks"
	"github.com/orangepax/outlet-sales-sync/internal/config"
	"github.com/orangepax/outlet-sales-sync/internal/domain"
)

func TestERPService_FetchTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockTokens := mocks.NewMockTokenProvider(ctrl)
	service := New(&config.Config{}, mockClient, mockTokens)

	window := domain.TimeRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
	}

	mockClient.EXPECT().
		GetRetailTransactions(gomock.Any(), erpclient.RetailTransactionsParams{
			Token:       "tok",
			Start:       window.Start,
			End:         window.End,
			StoreField:  testFields.Store,
			AmountField: testFields.Amount,
			DateField:   testFields.Date,
		}).
		Return([]erpdomain.RawTransaction{
			{"OperatingUnitNumber": "S1", "PaymentAmount": json.Number("10"), "TransactionDate": "2024-03-02T00:00:00Z"},
			{"OperatingUnitNumber": "S1", "PaymentAmount": json.Number("10"), "TransactionDate": ""},
		}, nil)

	records, err := service.FetchTransactions(context.Background(), "tok", window, testFields)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestERPService_FetchTransactions_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient, mocks.NewMockTokenProvider(ctrl))

	fetchErr := &erpdomain.FetchError{Kind: erpdomain.FetchStatus, Page: 1, StatusCode: 503}
	mockClient.EXPECT().GetRetailTransactions(gomock.Any(), gomock.Any()).Return(nil, fetchErr)

	records, err := service.FetchTransactions(context.Background(), "tok", domain.TimeRange{}, testFields)
	assert.Nil(t, records)
	assert.ErrorIs(t, err, erpdomain.ErrFetch)
}

func TestERPService_AcquireToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokens := mocks.NewMockTokenProvider(ctrl)
	service := New(&config.Config{}, mocks.NewMockClient(ctrl), mockTokens)

	mockTokens.EXPECT().Acquire(gomock.Any()).Return(&oauth2.Token{AccessToken: "abc"}, nil)
	token, err := service.AcquireToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	authErr := &erpdomain.AuthError{Err: erpdomain.ErrTokenRejected, Code: "invalid_client"}
	mockTokens.EXPECT().Acquire(gomock.Any()).Return(nil, authErr)
	_, err = service.AcquireToken(context.Background())
	assert.True(t, errors.Is(err, erpdomain.ErrTokenRejected))
}

func TestFieldsFromConfig(t *testing.T) {
	cfg := &config.Config{ERP: config.ERP{FieldStore: "Store", FieldAmount: "Amount", FieldDate: "Date"}}
	assert.Equal(t, domain.TransactionFields{Store: "Store", Amount: "Amount", Date: "Date"}, FieldsFromConfig(cfg))
}
