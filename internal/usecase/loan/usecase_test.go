package loan

import (
	"context"
	"errors"
	"testing"

	domain "loanbook-backend/internal/domain/loan"
	paydomain "loanbook-backend/internal/domain/payment"
	txndomain "loanbook-backend/internal/domain/transaction"
	"loanbook-backend/internal/infrastructure/seed"
	"loanbook-backend/internal/testutil/loanmock"
	"loanbook-backend/internal/testutil/paymentmock"
	"loanbook-backend/internal/testutil/transactionmock"
	"loanbook-backend/internal/usecase/portfolio"
)

func fixtureRepos() (*loanmock.Repo, *paymentmock.Repo, *transactionmock.Repo) {
	ds := seed.Fixture()
	loans := &loanmock.Repo{
		ListFn: func(ctx context.Context, f domain.Filter) ([]domain.Loan, error) {
			return portfolio.FilterLoans(ds.Loans, f), nil
		},
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*domain.Loan, error) {
			for _, l := range ds.Loans {
				if l.LoanID == loanID {
					return &l, nil
				}
			}
			return nil, domain.ErrNotFound
		},
	}
	payments := &paymentmock.Repo{
		ListByLoanIDFn: func(ctx context.Context, loanID string, status paydomain.Status) ([]paydomain.Payment, error) {
			return portfolio.FilterPayments(ds.Payments, loanID, status), nil
		},
	}
	txns := &transactionmock.Repo{
		ListByLoanIDFn: func(ctx context.Context, loanID string) ([]txndomain.Transaction, error) {
			return portfolio.FilterTransactions(ds.Transactions, loanID), nil
		},
	}
	return loans, payments, txns
}

func TestList_FilterAndProgress(t *testing.T) {
	uc := NewUsecase(fixtureRepos())

	got, err := uc.List(context.Background(), domain.Filter{BorrowerID: "U003"})
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(got) != 2 || got[0].LoanID != "L001" || got[1].LoanID != "L004" {
		t.Fatalf("unexpected loans: %+v", got)
	}
	if got[1].Progress != 0 {
		t.Fatalf("L004 progress = %v, want 0", got[1].Progress)
	}
	if got[0].Progress <= 22 || got[0].Progress >= 23 {
		t.Fatalf("L001 progress = %v, want ~22.2", got[0].Progress)
	}
}

func TestGet_NotFoundIsFirstClass(t *testing.T) {
	uc := NewUsecase(fixtureRepos())

	if _, err := uc.Get(context.Background(), "L999"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	dto, err := uc.Get(context.Background(), "L006")
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if dto.Status != "completed" || dto.Progress != 100 {
		t.Fatalf("unexpected dto: %+v", dto)
	}
}

func TestDetail_SchedulePositions(t *testing.T) {
	uc := NewUsecase(fixtureRepos())

	d, err := uc.Detail(context.Background(), "L003")
	if err != nil {
		t.Fatalf("Detail err: %v", err)
	}
	if len(d.Payments) != 8 {
		t.Fatalf("payments = %d, want 8", len(d.Payments))
	}
	if len(d.Transactions) != 9 {
		t.Fatalf("transactions = %d, want 9", len(d.Transactions))
	}
	if d.PaymentsMade != 7 {
		t.Fatalf("payments made = %d, want 7", d.PaymentsMade)
	}
	if d.PaymentsRemaining != 5 {
		t.Fatalf("payments remaining = %d, want 5", d.PaymentsRemaining)
	}
}

func TestListPayments_RequiresExistingLoan(t *testing.T) {
	uc := NewUsecase(fixtureRepos())
	ctx := context.Background()

	if _, err := uc.ListPayments(ctx, "L999", ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	paid, err := uc.ListPayments(ctx, "L001", paydomain.StatusPaid)
	if err != nil {
		t.Fatalf("ListPayments err: %v", err)
	}
	if len(paid) != 8 {
		t.Fatalf("paid = %d, want 8", len(paid))
	}
}

func TestListTransactions_DatasetOrder(t *testing.T) {
	uc := NewUsecase(fixtureRepos())

	ts, err := uc.ListTransactions(context.Background(), "L003")
	if err != nil {
		t.Fatalf("ListTransactions err: %v", err)
	}
	if len(ts) != 9 || ts[0].TransactionID != "T013" || ts[8].TransactionID != "T021" {
		t.Fatalf("unexpected transactions: %+v", ts)
	}
}
