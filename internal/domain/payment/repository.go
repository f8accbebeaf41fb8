package payment

import "context"

type Repository interface {
	// ListByLoanID returns the loan's payments in dataset order. An empty
	// status matches all.
	ListByLoanID(ctx context.Context, loanID string, status Status) ([]Payment, error)
	// ListByLoanIDs returns payments for any of the given loans in dataset order.
	ListByLoanIDs(ctx context.Context, loanIDs []string) ([]Payment, error)
}
