package directory

import "context"

// Repository is the lookup surface behind the directory. Missing rows are
// reported as sql.ErrNoRows.
type Repository interface {
	FindByID(ctx context.Context, id string) (*Person, error)
	FindByName(ctx context.Context, name string) (*Person, error)
	ListMembersByGym(ctx context.Context, gymID string) ([]Person, error)
	GetGym(ctx context.Context, id string) (*Gym, error)
	Import(ctx context.Context, seed *Seed) error
}
