package payment

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("payment not found")
	ErrInvalidStatus = errors.New("invalid payment status")
)

type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
	StatusOverdue Status = "overdue"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusOverdue:
		return true
	}
	return false
}

// Payment is one scheduled installment of a loan. For paid entries
// Principal + Interest == Amount; unpaid entries carry zero amounts and a
// nil PaidAt.
type Payment struct {
	ID        uint64     `gorm:"primaryKey;column:id" json:"-"`
	PaymentID string     `gorm:"size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanID    string     `gorm:"size:32;index:idx_payments_loan" json:"loan_id"`
	Amount    float64    `gorm:"type:decimal(18,2)" json:"amount"`
	Principal float64    `gorm:"type:decimal(18,2)" json:"principal"`
	Interest  float64    `gorm:"type:decimal(18,2)" json:"interest"`
	PaidAt    *time.Time `gorm:"column:paid_at;type:date" json:"paid_at,omitempty"`
	DueDate   time.Time  `gorm:"type:date" json:"due_date"`
	Status    Status     `gorm:"size:16;index:idx_payments_status" json:"status"`
	Method    string     `gorm:"size:64" json:"method,omitempty"`
}

func (Payment) TableName() string { return "payments" }
