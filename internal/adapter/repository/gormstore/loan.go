package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	loandomain "loanbook-backend/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// List orders by the numeric primary key so results keep dataset order.
func (r *LoanRepository) List(ctx context.Context, f loandomain.Filter) ([]loandomain.Loan, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if f.BorrowerID != "" {
		q = q.Where("borrower_id = ?", f.BorrowerID)
	}
	if f.LenderID != "" {
		q = q.Where("lender_id = ?", f.LenderID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var out []loandomain.Loan
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loandomain.Loan, error) {
	var out loandomain.Loan
	err := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, loandomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
