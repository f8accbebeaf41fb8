package gormstore

import (
	"context"

	"gorm.io/gorm"

	txndomain "loanbook-backend/internal/domain/transaction"
)

type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) List(ctx context.Context) ([]txndomain.Transaction, error) {
	var out []txndomain.Transaction
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TransactionRepository) ListByLoanID(ctx context.Context, loanID string) ([]txndomain.Transaction, error) {
	var out []txndomain.Transaction
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
