package dashboard

import (
	"loanbook-backend/internal/domain/payment"
	"loanbook-backend/internal/domain/user"
	loanuc "loanbook-backend/internal/usecase/loan"
	"loanbook-backend/internal/usecase/portfolio"
)

// upcomingLimit caps how many pending payments the borrower view previews.
const upcomingLimit = 5

type BorrowerView struct {
	Loans             []loanuc.LoanDTO  `json:"loans"`
	ActiveLoans       int               `json:"active_loans"`
	TotalBorrowed     float64           `json:"total_borrowed"`
	TotalOwed         float64           `json:"total_owed"`
	UpcomingPayments  []payment.Payment `json:"upcoming_payments"`
	NextPaymentAmount float64           `json:"next_payment_amount"`
}

type LenderView struct {
	Loans               []loanuc.LoanDTO `json:"loans"`
	ActiveLoans         int              `json:"active_loans"`
	TotalLent           float64          `json:"total_lent"`
	TotalCollected      float64          `json:"total_collected"`
	PendingApplications int              `json:"pending_applications"`
}

type AnalystView struct {
	Summary            portfolio.Summary         `json:"summary"`
	CashFlow           []portfolio.CashFlowPoint `json:"cash_flow"`
	RiskDistribution   []portfolio.Bucket        `json:"risk_distribution"`
	StatusDistribution []portfolio.Bucket        `json:"status_distribution"`
	RateBuckets        []portfolio.RateBucket    `json:"rate_buckets"`
	AtRiskLoans        int                       `json:"at_risk_loans"`
	AttentionLoans     []loanuc.LoanDTO          `json:"attention_loans"`
}

type AdminView struct {
	Summary       portfolio.Summary  `json:"summary"`
	Users         []user.User        `json:"users"`
	UsersByRole   []portfolio.Bucket `json:"users_by_role"`
	UsersByStatus []portfolio.Bucket `json:"users_by_status"`
	Loans         []loanuc.LoanDTO   `json:"loans"`
}
