package usermock

import (
	"context"

	domain "loanbook-backend/internal/domain/user"
)

// Repo is a function-backed mock that satisfies user.Repository.
type Repo struct {
	ListFn        func(ctx context.Context) ([]domain.User, error)
	GetByUserIDFn func(ctx context.Context, userID string) (*domain.User, error)
}

func (m *Repo) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}
