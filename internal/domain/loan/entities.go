package loan

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("loan not found")
	ErrInvalidStatus = errors.New("invalid loan status")
	ErrInvalidRisk   = errors.New("invalid risk level")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusDefaulted Status = "defaulted"
	StatusRejected  Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusActive, StatusCompleted, StatusDefaulted, StatusRejected:
		return true
	}
	return false
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

type Loan struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	LoanID       string    `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	BorrowerID   string    `gorm:"size:32;index:idx_loans_borrower" json:"borrower_id"`
	BorrowerName string    `gorm:"size:128" json:"borrower_name"`
	LenderID     string    `gorm:"size:32;index:idx_loans_lender" json:"lender_id"`
	LenderName   string    `gorm:"size:128" json:"lender_name"`
	Amount       float64   `gorm:"type:decimal(18,2)" json:"amount"`
	InterestRate float64   `gorm:"type:decimal(6,2)" json:"interest_rate"`
	TermMonths   int       `gorm:"column:term_months" json:"term_months"`
	Status       Status    `gorm:"size:16;index:idx_loans_status" json:"status"`
	Purpose      string    `gorm:"type:text" json:"purpose"`
	StartDate    time.Time `gorm:"type:date" json:"start_date"`
	EndDate      time.Time `gorm:"type:date" json:"end_date"`
	// Repayment ledger. PaidAmount + RemainingAmount tracks TotalRepayment,
	// though the seeded figures are only approximately consistent.
	TotalRepayment  float64 `gorm:"type:decimal(18,2)" json:"total_repayment"`
	MonthlyPayment  float64 `gorm:"type:decimal(18,2)" json:"monthly_payment"`
	PaidAmount      float64 `gorm:"type:decimal(18,2)" json:"paid_amount"`
	RemainingAmount float64 `gorm:"type:decimal(18,2)" json:"remaining_amount"`
	CreditScore     *int    `gorm:"column:credit_score" json:"credit_score,omitempty"`
	// Empty when no risk assessment has been recorded for the loan.
	RiskLevel RiskLevel `gorm:"size:8" json:"risk_level,omitempty"`
}

func (Loan) TableName() string { return "loans" }
