package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Update persists profile and login state with optimistic locking on version.
	Update(ctx context.Context, user *User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
