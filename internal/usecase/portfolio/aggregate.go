package portfolio

import (
	"fmt"
	"sort"
	"time"

	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/payment"
	"loanbook-backend/internal/domain/transaction"
)

// Summary is the portfolio-wide view every dashboard leads with.
type Summary struct {
	TotalLoans       int     `json:"total_loans"`
	ActiveLoans      int     `json:"active_loans"`
	TotalDisbursed   float64 `json:"total_disbursed"`
	TotalCollected   float64 `json:"total_collected"`
	TotalOutstanding float64 `json:"total_outstanding"`
	AverageLoanSize  float64 `json:"average_loan_size"`
	CollectionRate   float64 `json:"collection_rate"`
}

// Summarize reduces the loan book into portfolio totals. An empty book
// yields zero for AverageLoanSize and CollectionRate rather than NaN.
func Summarize(loans []loan.Loan) Summary {
	s := Summary{TotalLoans: len(loans)}
	for _, l := range loans {
		if l.Status == loan.StatusActive {
			s.ActiveLoans++
		}
		s.TotalDisbursed += l.Amount
		s.TotalCollected += l.PaidAmount
		s.TotalOutstanding += l.RemainingAmount
	}
	if s.TotalLoans > 0 {
		s.AverageLoanSize = s.TotalDisbursed / float64(s.TotalLoans)
	}
	if s.TotalDisbursed > 0 {
		s.CollectionRate = s.TotalCollected / s.TotalDisbursed * 100
	}
	return s
}

// CashFlowPoint is one calendar month of ledger activity.
type CashFlowPoint struct {
	Period      string  `json:"period"`
	Disbursed   float64 `json:"disbursed"`
	Collected   float64 `json:"collected"`
	Outstanding float64 `json:"outstanding"`
}

// CashFlow groups completed disbursement and payment transactions by
// calendar month, in chronological order. Months with no activity are
// omitted. Outstanding is the running balance: cumulative disbursed minus
// cumulative collected. Fees and penalties do not move the balance.
func CashFlow(txns []transaction.Transaction) []CashFlowPoint {
	type monthFlow struct {
		disbursed float64
		collected float64
	}
	flows := map[int]monthFlow{}
	for _, t := range txns {
		if t.Status != transaction.StatusCompleted {
			continue
		}
		key := t.Date.Year()*100 + int(t.Date.Month())
		f := flows[key]
		switch t.Type {
		case transaction.TypeDisbursement:
			f.disbursed += t.Amount
		case transaction.TypePayment:
			f.collected += t.Amount
		default:
			continue
		}
		flows[key] = f
	}

	keys := make([]int, 0, len(flows))
	for k := range flows {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]CashFlowPoint, 0, len(keys))
	var outstanding float64
	for _, k := range keys {
		f := flows[k]
		outstanding += f.disbursed - f.collected
		out = append(out, CashFlowPoint{
			Period:      monthLabel(k),
			Disbursed:   f.disbursed,
			Collected:   f.collected,
			Outstanding: outstanding,
		})
	}
	return out
}

// monthLabel renders a year*100+month key as e.g. "Sep 25".
func monthLabel(key int) string {
	year, month := key/100, time.Month(key%100)
	return fmt.Sprintf("%s %02d", month.String()[:3], year%100)
}

// Bucket is one slice of a categorical distribution.
type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// RiskDistribution counts loans per risk level in first-seen order.
// Loans with no recorded risk level are excluded.
func RiskDistribution(loans []loan.Loan) []Bucket {
	return countBy(loans, func(l loan.Loan) string { return string(l.RiskLevel) })
}

// StatusDistribution counts loans per lifecycle status in first-seen order.
func StatusDistribution(loans []loan.Loan) []Bucket {
	return countBy(loans, func(l loan.Loan) string { return string(l.Status) })
}

func countBy(loans []loan.Loan, key func(loan.Loan) string) []Bucket {
	idx := map[string]int{}
	var out []Bucket
	for _, l := range loans {
		k := key(l)
		if k == "" {
			continue
		}
		if i, ok := idx[k]; ok {
			out[i].Value++
			continue
		}
		idx[k] = len(out)
		out = append(out, Bucket{Name: k, Value: 1})
	}
	return out
}

// RateBucket is a count of loans within an interest-rate band.
type RateBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// RateBuckets groups loans into the rate bands the analyst view charts.
// Loans priced outside 6-12% fall into no band.
func RateBuckets(loans []loan.Loan) []RateBucket {
	out := []RateBucket{
		{Range: "6-7%"},
		{Range: "8-9%"},
		{Range: "10-12%"},
	}
	for _, l := range loans {
		switch r := l.InterestRate; {
		case r >= 6 && r < 8:
			out[0].Count++
		case r >= 8 && r < 10:
			out[1].Count++
		case r >= 10 && r <= 12:
			out[2].Count++
		}
	}
	return out
}

// Progress is the share of a loan's total repayment already paid, as a
// percentage clamped to [0, 100]. A zero total repayment reports 0.
func Progress(l loan.Loan) float64 {
	if l.TotalRepayment <= 0 {
		return 0
	}
	p := l.PaidAmount / l.TotalRepayment * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// FilterLoans applies f in memory, preserving relative order. The gorm
// store answers the same contract against the database; this form serves
// aggregations that already hold the slice.
func FilterLoans(loans []loan.Loan, f loan.Filter) []loan.Loan {
	out := make([]loan.Loan, 0, len(loans))
	for _, l := range loans {
		if f.BorrowerID != "" && l.BorrowerID != f.BorrowerID {
			continue
		}
		if f.LenderID != "" && l.LenderID != f.LenderID {
			continue
		}
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		out = append(out, l)
	}
	return out
}

// FilterPayments keeps payments for the loan, optionally narrowed by
// status, preserving relative order.
func FilterPayments(payments []payment.Payment, loanID string, status payment.Status) []payment.Payment {
	out := make([]payment.Payment, 0, len(payments))
	for _, p := range payments {
		if p.LoanID != loanID {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterTransactions keeps transactions for the loan, preserving relative order.
func FilterTransactions(txns []transaction.Transaction, loanID string) []transaction.Transaction {
	out := make([]transaction.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.LoanID == loanID {
			out = append(out, t)
		}
	}
	return out
}
