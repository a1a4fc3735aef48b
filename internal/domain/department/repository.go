package department

import "context"

type Repository interface {
	Create(ctx context.Context, department *Department) error
	Update(ctx context.Context, department *Department) error
	// GetByID returns nil, nil when the department does not exist.
	GetByID(ctx context.Context, id uint) (*Department, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Department, error)
	// List returns every department ordered by name.
	List(ctx context.Context) ([]*Department, error)
	Exists(ctx context.Context, id uint) (bool, error)
}
