package loanmock

import (
	"context"

	domain "loanbook-backend/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies loan.Repository.
type Repo struct {
	ListFn        func(ctx context.Context, f domain.Filter) ([]domain.Loan, error)
	GetByLoanIDFn func(ctx context.Context, loanID string) (*domain.Loan, error)
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}
