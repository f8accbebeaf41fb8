package dashboard

import (
	"context"

	loandomain "loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/payment"
	"loanbook-backend/internal/domain/user"
	loanuc "loanbook-backend/internal/usecase/loan"
	"loanbook-backend/internal/usecase/portfolio"
)

// Usecase composes the role dashboards from the aggregator and the
// per-entity queries. Every view is recomputed on request.
type Usecase struct {
	loans     *loanuc.Usecase
	payments  payment.Repository
	users     user.Repository
	portfolio *portfolio.Service
}

func NewUsecase(loans *loanuc.Usecase, payments payment.Repository, users user.Repository, pf *portfolio.Service) *Usecase {
	return &Usecase{loans: loans, payments: payments, users: users, portfolio: pf}
}

// Borrower builds the borrower's view: their loans, headline figures and
// the next few pending installments in schedule order.
func (u *Usecase) Borrower(ctx context.Context, userID string) (*BorrowerView, error) {
	if _, err := u.users.GetByUserID(ctx, userID); err != nil {
		return nil, err
	}
	loans, err := u.loans.List(ctx, loandomain.Filter{BorrowerID: userID})
	if err != nil {
		return nil, err
	}

	v := &BorrowerView{Loans: loans, UpcomingPayments: []payment.Payment{}}
	ids := make([]string, 0, len(loans))
	for _, l := range loans {
		ids = append(ids, l.LoanID)
		switch loandomain.Status(l.Status) {
		case loandomain.StatusActive:
			v.ActiveLoans++
			v.TotalBorrowed += l.Amount
			v.TotalOwed += l.RemainingAmount
		case loandomain.StatusCompleted:
			v.TotalBorrowed += l.Amount
		}
	}

	ps, err := u.payments.ListByLoanIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range ps {
		if p.Status != payment.StatusPending {
			continue
		}
		v.UpcomingPayments = append(v.UpcomingPayments, p)
		if len(v.UpcomingPayments) == upcomingLimit {
			break
		}
	}
	if len(v.UpcomingPayments) > 0 {
		v.NextPaymentAmount = v.UpcomingPayments[0].Amount
	}
	return v, nil
}

// Lender builds the lender's book view.
func (u *Usecase) Lender(ctx context.Context, userID string) (*LenderView, error) {
	if _, err := u.users.GetByUserID(ctx, userID); err != nil {
		return nil, err
	}
	loans, err := u.loans.List(ctx, loandomain.Filter{LenderID: userID})
	if err != nil {
		return nil, err
	}

	v := &LenderView{Loans: loans}
	for _, l := range loans {
		v.TotalLent += l.Amount
		v.TotalCollected += l.PaidAmount
		switch loandomain.Status(l.Status) {
		case loandomain.StatusActive:
			v.ActiveLoans++
		case loandomain.StatusPending:
			v.PendingApplications++
		}
	}
	return v, nil
}

// Analyst builds the portfolio-wide analytics view.
func (u *Usecase) Analyst(ctx context.Context) (*AnalystView, error) {
	summary, err := u.portfolio.Summary(ctx)
	if err != nil {
		return nil, err
	}
	cashFlow, err := u.portfolio.CashFlow(ctx)
	if err != nil {
		return nil, err
	}
	risk, err := u.portfolio.RiskDistribution(ctx)
	if err != nil {
		return nil, err
	}
	status, err := u.portfolio.StatusDistribution(ctx)
	if err != nil {
		return nil, err
	}
	rates, err := u.portfolio.RateBuckets(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.List(ctx, loandomain.Filter{})
	if err != nil {
		return nil, err
	}

	v := &AnalystView{
		Summary:            summary,
		CashFlow:           cashFlow,
		RiskDistribution:   risk,
		StatusDistribution: status,
		RateBuckets:        rates,
		AttentionLoans:     []loanuc.LoanDTO{},
	}
	for _, l := range loans {
		if r := loandomain.RiskLevel(l.RiskLevel); r == loandomain.RiskMedium || r == loandomain.RiskHigh {
			v.AtRiskLoans++
			v.AttentionLoans = append(v.AttentionLoans, l)
		}
	}
	return v, nil
}

// Admin builds the administrative overview: portfolio summary, the user
// directory with role/status tallies, and the full loan book.
func (u *Usecase) Admin(ctx context.Context) (*AdminView, error) {
	summary, err := u.portfolio.Summary(ctx)
	if err != nil {
		return nil, err
	}
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.List(ctx, loandomain.Filter{})
	if err != nil {
		return nil, err
	}

	return &AdminView{
		Summary:       summary,
		Users:         users,
		UsersByRole:   countUsers(users, func(us user.User) string { return string(us.Role) }),
		UsersByStatus: countUsers(users, func(us user.User) string { return string(us.Status) }),
		Loans:         loans,
	}, nil
}

// countUsers tallies users per key in first-seen order, mirroring the
// distribution shape the aggregator produces for loans.
func countUsers(users []user.User, key func(user.User) string) []portfolio.Bucket {
	idx := map[string]int{}
	out := []portfolio.Bucket{}
	for _, us := range users {
		k := key(us)
		if i, ok := idx[k]; ok {
			out[i].Value++
			continue
		}
		idx[k] = len(out)
		out = append(out, portfolio.Bucket{Name: k, Value: 1})
	}
	return out
}
