package member

import "context"

type Repository interface {
	// Insert stores m and sets m.ID and m.CreatedAt.
	Insert(ctx context.Context, m *Member) error
	// SelectAll returns every member, newest id first.
	SelectAll(ctx context.Context) ([]Member, error)
	// Update replaces the writable fields of one row and reports rows changed.
	Update(ctx context.Context, id int64, fields Fields) (int64, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
}
