package member

import (
	"context"
	"fmt"
)

// Service exposes the four member operations. It does no field validation:
// callers are trusted to send well-formed records.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, fields Fields) (*Member, error) {
	m := NewMember(fields)
	if err := s.repo.Insert(ctx, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInsertFailed, err)
	}
	return &m, nil
}

func (s *Service) List(ctx context.Context) ([]Member, error) {
	items, err := s.repo.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSelectFailed, err)
	}
	if items == nil {
		items = []Member{}
	}
	return items, nil
}

// Update returns the number of rows changed. Zero means no member has that
// id, which is not an error.
func (s *Service) Update(ctx context.Context, id int64, fields Fields) (int64, error) {
	changes, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}
	return changes, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	changes, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}
	return changes, nil
}
