package db

import (
	"fmt"

	"gorm.io/gorm"

	memberdomain "gym-membership-go/internal/domain/member"
)

// Migrate creates the members table when it is missing. It only ever adds
// tables and columns, so running it on every boot is safe.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(&memberdomain.Member{}); err != nil {
		return fmt.Errorf("migrate members: %w", err)
	}
	return nil
}
