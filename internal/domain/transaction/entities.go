package transaction

import (
	"errors"
	"time"
)

var (
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidStatus = errors.New("invalid transaction status")
)

type Type string

const (
	TypeDisbursement Type = "disbursement"
	TypePayment      Type = "payment"
	TypeFee          Type = "fee"
	TypePenalty      Type = "penalty"
)

func (t Type) Valid() bool {
	switch t {
	case TypeDisbursement, TypePayment, TypeFee, TypePenalty:
		return true
	}
	return false
}

type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusPending, StatusFailed:
		return true
	}
	return false
}

type Transaction struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	TransactionID string    `gorm:"size:32;uniqueIndex:ux_transactions_transaction_id" json:"transaction_id"`
	LoanID        string    `gorm:"size:32;index:idx_transactions_loan" json:"loan_id"`
	Type          Type      `gorm:"size:16" json:"type"`
	Amount        float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Date          time.Time `gorm:"type:date" json:"date"`
	Description   string    `gorm:"type:text" json:"description"`
	Status        Status    `gorm:"size:16" json:"status"`
}

func (Transaction) TableName() string { return "transactions" }
