package user

import "context"

type Repository interface {
	List(ctx context.Context) ([]User, error)
	// GetByUserID returns ErrNotFound when no user carries the public id.
	GetByUserID(ctx context.Context, userID string) (*User, error)
}
