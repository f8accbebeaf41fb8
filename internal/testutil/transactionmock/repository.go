package transactionmock

import (
	"context"

	domain "loanbook-backend/internal/domain/transaction"
)

// Repo is a function-backed mock that satisfies transaction.Repository.
type Repo struct {
	ListFn         func(ctx context.Context) ([]domain.Transaction, error)
	ListByLoanIDFn func(ctx context.Context, loanID string) ([]domain.Transaction, error)
}

func (m *Repo) List(ctx context.Context) ([]domain.Transaction, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID string) ([]domain.Transaction, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}
