package store

import (
	"context"
	"io"

	"github.com/epeers/portview/internal/models"
)

// FetchTransactions refreshes the transaction list, restricted to one portfolio
// when portfolioID is non-zero. Failures are recorded and the previous list is kept.
func (s *Store) FetchTransactions(ctx context.Context, portfolioID int64) {
	run := s.begin(OpFetchTransactions)
	defer run.end()

	transactions, err := s.client.ListTransactions(ctx, portfolioID)
	if err != nil {
		run.fail(err)
		return
	}

	s.SetTransactions(transactions)
	run.succeed()
}

// CreateTransaction records a transaction and appends it to the local list
func (s *Store) CreateTransaction(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	run := s.begin(OpCreateTransaction)
	defer run.end()

	transaction, err := s.client.CreateTransaction(ctx, req)
	if err != nil {
		run.fail(err)
		return nil, err
	}

	s.AddTransaction(*transaction)
	run.succeed()
	return transaction, nil
}

// ImportTransactions uploads a CSV of transactions. The local list is not
// touched: callers refetch to see the imported rows.
func (s *Store) ImportTransactions(ctx context.Context, filename string, r io.Reader) (*models.ImportResult, error) {
	run := s.begin(OpImportTransactions)
	defer run.end()

	result, err := s.client.ImportTransactions(ctx, filename, r)
	if err != nil {
		run.fail(err)
		return nil, err
	}

	run.succeed()
	return result, nil
}
