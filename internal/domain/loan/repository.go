package loan

import "context"

// Filter narrows a loan listing. Zero-value fields are ignored.
type Filter struct {
	BorrowerID string
	LenderID   string
	Status     Status
}

type Repository interface {
	// List returns loans matching f in dataset order.
	List(ctx context.Context, f Filter) ([]Loan, error)
	// GetByLoanID returns ErrNotFound when no loan carries the public id.
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
}
