package portfolio

import (
	"context"

	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/transaction"
)

// Service loads the ledger through repositories and reduces it with the
// pure aggregation functions. Aggregates are recomputed per call; the
// dataset is read-only after seeding so there is nothing to invalidate.
type Service struct {
	loans loan.Repository
	txns  transaction.Repository
}

func NewService(loans loan.Repository, txns transaction.Repository) *Service {
	return &Service{loans: loans, txns: txns}
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	ls, err := s.loans.List(ctx, loan.Filter{})
	if err != nil {
		return Summary{}, err
	}
	return Summarize(ls), nil
}

func (s *Service) CashFlow(ctx context.Context) ([]CashFlowPoint, error) {
	ts, err := s.txns.List(ctx)
	if err != nil {
		return nil, err
	}
	return CashFlow(ts), nil
}

func (s *Service) RiskDistribution(ctx context.Context) ([]Bucket, error) {
	ls, err := s.loans.List(ctx, loan.Filter{})
	if err != nil {
		return nil, err
	}
	return RiskDistribution(ls), nil
}

func (s *Service) StatusDistribution(ctx context.Context) ([]Bucket, error) {
	ls, err := s.loans.List(ctx, loan.Filter{})
	if err != nil {
		return nil, err
	}
	return StatusDistribution(ls), nil
}

func (s *Service) RateBuckets(ctx context.Context) ([]RateBucket, error) {
	ls, err := s.loans.List(ctx, loan.Filter{})
	if err != nil {
		return nil, err
	}
	return RateBuckets(ls), nil
}
