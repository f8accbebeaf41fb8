package gormstore

import (
	"context"

	"gorm.io/gorm"

	paydomain "loanbook-backend/internal/domain/payment"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanID string, status paydomain.Status) ([]paydomain.Payment, error) {
	q := r.db.WithContext(ctx).Where("loan_id = ?", loanID).Order("id ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []paydomain.Payment
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PaymentRepository) ListByLoanIDs(ctx context.Context, loanIDs []string) ([]paydomain.Payment, error) {
	if len(loanIDs) == 0 {
		return nil, nil
	}
	var out []paydomain.Payment
	err := r.db.WithContext(ctx).
		Where("loan_id IN ?", loanIDs).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
