package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	// GetByID returns nil, nil when the user does not exist.
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetDetail(ctx context.Context, id uint) (*Detail, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*User, error)
	// ListDetails returns every user ordered by name, joined with department.
	ListDetails(ctx context.Context) ([]*Detail, error)
	Exists(ctx context.Context, id uint) (bool, error)
}
