package transaction

import "context"

type Repository interface {
	// List returns every transaction in dataset order.
	List(ctx context.Context) ([]Transaction, error)
	// ListByLoanID returns the loan's transactions in dataset order.
	ListByLoanID(ctx context.Context, loanID string) ([]Transaction, error)
}
