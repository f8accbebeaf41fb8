package loan

import (
	"time"

	domain "loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/payment"
	"loanbook-backend/internal/domain/transaction"
	"loanbook-backend/internal/usecase/portfolio"
)

type LoanDTO struct {
	LoanID          string    `json:"loan_id"`
	BorrowerID      string    `json:"borrower_id"`
	BorrowerName    string    `json:"borrower_name"`
	LenderID        string    `json:"lender_id"`
	LenderName      string    `json:"lender_name"`
	Amount          float64   `json:"amount"`
	InterestRate    float64   `json:"interest_rate"`
	TermMonths      int       `json:"term_months"`
	Status          string    `json:"status"`
	Purpose         string    `json:"purpose"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	TotalRepayment  float64   `json:"total_repayment"`
	MonthlyPayment  float64   `json:"monthly_payment"`
	PaidAmount      float64   `json:"paid_amount"`
	RemainingAmount float64   `json:"remaining_amount"`
	CreditScore     *int      `json:"credit_score,omitempty"`
	RiskLevel       string    `json:"risk_level,omitempty"`
	Progress        float64   `json:"progress"`
}

// DetailDTO is the loan page payload: the loan plus its full payment
// schedule and transaction history.
type DetailDTO struct {
	Loan              LoanDTO                   `json:"loan"`
	Payments          []payment.Payment         `json:"payments"`
	Transactions      []transaction.Transaction `json:"transactions"`
	PaymentsMade      int                       `json:"payments_made"`
	PaymentsRemaining int                       `json:"payments_remaining"`
}

func toDTO(l domain.Loan) LoanDTO {
	return LoanDTO{
		LoanID:          l.LoanID,
		BorrowerID:      l.BorrowerID,
		BorrowerName:    l.BorrowerName,
		LenderID:        l.LenderID,
		LenderName:      l.LenderName,
		Amount:          l.Amount,
		InterestRate:    l.InterestRate,
		TermMonths:      l.TermMonths,
		Status:          string(l.Status),
		Purpose:         l.Purpose,
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		TotalRepayment:  l.TotalRepayment,
		MonthlyPayment:  l.MonthlyPayment,
		PaidAmount:      l.PaidAmount,
		RemainingAmount: l.RemainingAmount,
		CreditScore:     l.CreditScore,
		RiskLevel:       string(l.RiskLevel),
		Progress:        portfolio.Progress(l),
	}
}
