package paymentmock

import (
	"context"

	domain "loanbook-backend/internal/domain/payment"
)

// Repo is a function-backed mock that satisfies payment.Repository.
type Repo struct {
	ListByLoanIDFn  func(ctx context.Context, loanID string, status domain.Status) ([]domain.Payment, error)
	ListByLoanIDsFn func(ctx context.Context, loanIDs []string) ([]domain.Payment, error)
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID string, status domain.Status) ([]domain.Payment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID, status)
	}
	return nil, nil
}

func (m *Repo) ListByLoanIDs(ctx context.Context, loanIDs []string) ([]domain.Payment, error) {
	if m.ListByLoanIDsFn != nil {
		return m.ListByLoanIDsFn(ctx, loanIDs)
	}
	return nil, nil
}
