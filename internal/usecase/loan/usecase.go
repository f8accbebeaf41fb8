package loan

import (
	"context"

	domain "loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/payment"
	"loanbook-backend/internal/domain/transaction"
)

type Usecase struct {
	loans    domain.Repository
	payments payment.Repository
	txns     transaction.Repository
}

func NewUsecase(loans domain.Repository, payments payment.Repository, txns transaction.Repository) *Usecase {
	return &Usecase{loans: loans, payments: payments, txns: txns}
}

// List returns loans matching the filter in dataset order, each carrying
// its repayment progress.
func (u *Usecase) List(ctx context.Context, f domain.Filter) ([]LoanDTO, error) {
	ls, err := u.loans.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for _, l := range ls {
		out = append(out, toDTO(l))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	dto := toDTO(*l)
	return &dto, nil
}

// Detail assembles the loan with its payment schedule and transaction
// history. Absence of the loan is a first-class ErrNotFound outcome.
func (u *Usecase) Detail(ctx context.Context, loanID string) (*DetailDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	ps, err := u.payments.ListByLoanID(ctx, loanID, "")
	if err != nil {
		return nil, err
	}
	ts, err := u.txns.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	made := 0
	for _, p := range ps {
		if p.Status == payment.StatusPaid {
			made++
		}
	}
	return &DetailDTO{
		Loan:              toDTO(*l),
		Payments:          ps,
		Transactions:      ts,
		PaymentsMade:      made,
		PaymentsRemaining: l.TermMonths - made,
	}, nil
}

// ListPayments returns the loan's schedule, optionally narrowed by status.
// The loan itself must exist.
func (u *Usecase) ListPayments(ctx context.Context, loanID string, status payment.Status) ([]payment.Payment, error) {
	if _, err := u.loans.GetByLoanID(ctx, loanID); err != nil {
		return nil, err
	}
	return u.payments.ListByLoanID(ctx, loanID, status)
}

// ListTransactions returns the loan's ledger entries. The loan must exist.
func (u *Usecase) ListTransactions(ctx context.Context, loanID string) ([]transaction.Transaction, error) {
	if _, err := u.loans.GetByLoanID(ctx, loanID); err != nil {
		return nil, err
	}
	return u.txns.ListByLoanID(ctx, loanID)
}
