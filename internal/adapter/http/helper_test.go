package http

import (
	"context"

	"github.com/labstack/echo/v4"

	loandomain "loanbook-backend/internal/domain/loan"
	paydomain "loanbook-backend/internal/domain/payment"
	txndomain "loanbook-backend/internal/domain/transaction"
	userdomain "loanbook-backend/internal/domain/user"
	"loanbook-backend/internal/infrastructure/seed"
	"loanbook-backend/internal/testutil/loanmock"
	"loanbook-backend/internal/testutil/paymentmock"
	"loanbook-backend/internal/testutil/transactionmock"
	"loanbook-backend/internal/testutil/usermock"
	"loanbook-backend/internal/usecase/portfolio"
)

// ---- helpers ----

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// fixtureMocks serves the reference dataset through the repository mocks.
func fixtureMocks() (*loanmock.Repo, *paymentmock.Repo, *transactionmock.Repo, *usermock.Repo) {
	ds := seed.Fixture()
	loans := &loanmock.Repo{
		ListFn: func(ctx context.Context, f loandomain.Filter) ([]loandomain.Loan, error) {
			return portfolio.FilterLoans(ds.Loans, f), nil
		},
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*loandomain.Loan, error) {
			for _, l := range ds.Loans {
				if l.LoanID == loanID {
					return &l, nil
				}
			}
			return nil, loandomain.ErrNotFound
		},
	}
	payments := &paymentmock.Repo{
		ListByLoanIDFn: func(ctx context.Context, loanID string, status paydomain.Status) ([]paydomain.Payment, error) {
			return portfolio.FilterPayments(ds.Payments, loanID, status), nil
		},
		ListByLoanIDsFn: func(ctx context.Context, loanIDs []string) ([]paydomain.Payment, error) {
			want := map[string]bool{}
			for _, id := range loanIDs {
				want[id] = true
			}
			var out []paydomain.Payment
			for _, p := range ds.Payments {
				if want[p.LoanID] {
					out = append(out, p)
				}
			}
			return out, nil
		},
	}
	txns := &transactionmock.Repo{
		ListFn: func(ctx context.Context) ([]txndomain.Transaction, error) {
			return ds.Transactions, nil
		},
		ListByLoanIDFn: func(ctx context.Context, loanID string) ([]txndomain.Transaction, error) {
			return portfolio.FilterTransactions(ds.Transactions, loanID), nil
		},
	}
	users := &usermock.Repo{
		ListFn: func(ctx context.Context) ([]userdomain.User, error) {
			return ds.Users, nil
		},
		GetByUserIDFn: func(ctx context.Context, userID string) (*userdomain.User, error) {
			for _, u := range ds.Users {
				if u.UserID == userID {
					return &u, nil
				}
			}
			return nil, userdomain.ErrNotFound
		},
	}
	return loans, payments, txns, users
}
