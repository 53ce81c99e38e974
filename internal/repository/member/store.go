package member

import (
	"context"

	"gorm.io/gorm"

	memberdomain "gym-membership-go/internal/domain/member"
)

// Store keeps members in a single table through gorm. It works the same on
// the SQLite and PostgreSQL dialectors.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, m *memberdomain.Member) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *Store) SelectAll(ctx context.Context) ([]memberdomain.Member, error) {
	var items []memberdomain.Member
	if err := s.db.WithContext(ctx).
		Order("id desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) Update(ctx context.Context, id int64, fields memberdomain.Fields) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&memberdomain.Member{}).
		Where("id = ?", id).
		Updates(fields.Columns())
	return result.RowsAffected, result.Error
}

func (s *Store) DeleteByID(ctx context.Context, id int64) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&memberdomain.Member{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
