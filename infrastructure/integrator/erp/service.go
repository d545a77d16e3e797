package erp

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/orangepax/outlet-sales-sync/infrastructure/integrator/erp/erpclient"
	"github.com/orangepax/outlet-sales-sync/internal/config"
	"github.com/orangepax/outlet-sales-sync/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type ERPIntegrator interface {
	AcquireToken(ctx context.Context) (string, error)
	FetchTransactions(ctx context.Context, token string, window domain.TimeRange, fields domain.TransactionFields) ([]domain.TransactionRecord, error)
}

type ERPService struct {
	cfg    *config.Config
	Client erpclient.Client
	Tokens erpclient.TokenProvider
}

func New(cfg *config.Config, client erpclient.Client, tokens erpclient.TokenProvider) ERPIntegrator {
	return &ERPService{
		cfg:    cfg,
		Client: client,
		Tokens: tokens,
	}
}

// FieldsFromConfig returns the OData property names configured for this ERP instance.
func FieldsFromConfig(cfg *config.Config) domain.TransactionFields {
	return domain.TransactionFields{
		Store:  cfg.ERP.FieldStore,
		Amount: cfg.ERP.FieldAmount,
		Date:   cfg.ERP.FieldDate,
	}
}

func (s *ERPService) AcquireToken(ctx context.Context) (string, error) {
	token, err := s.Tokens.Acquire(ctx)
	if err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

func (s *ERPService) FetchTransactions(ctx context.Context, token string, window domain.TimeRange, fields domain.TransactionFields) ([]domain.TransactionRecord, error) {
	params := erpclient.RetailTransactionsParams{
		Token:       token,
		Start:       window.Start,
		End:         window.End,
		StoreField:  fields.Store,
		AmountField: fields.Amount,
		DateField:   fields.Date,
	}

	rows, err := s.Client.GetRetailTransactions(ctx, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"start": window.Start,
			"end":   window.End,
			"error": err.Error(),
		}).Error("erp: failed to fetch retail transactions")
		return nil, err
	}

	records, skipped := FactoryTransactionRecords(rows, fields)
	if skipped > 0 {
		logrus.WithField("skipped", skipped).Warn("erp: rows without a parsable transaction date were skipped")
	}

	logrus.WithFields(logrus.Fields{
		"rows":    len(rows),
		"records": len(records),
	}).Info("erp: retail transactions fetched")

	return records, nil
}
