package database

import (
	"encoding/json"
	"errors"
	"fmt"

	"wealthcoach_backend/internal/auth"
	"wealthcoach_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedRoles creates the fixed role set. Existing roles are left untouched.
func SeedRoles(db *gorm.DB) error {
	for _, name := range []string{auth.RoleAdmin, auth.RoleCoach, auth.RoleClient, auth.RoleGuest} {
		var existing models.Role
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check role %s: %w", name, err)
		}

		permissions, err := json.Marshal(auth.Permissions[name])
		if err != nil {
			return fmt.Errorf("failed to marshal permissions for %s: %w", name, err)
		}
		role := &models.Role{
			Name:        name,
			Description: auth.RoleDescriptions[name],
			Permissions: datatypes.JSON(permissions),
		}
		if err := db.Create(role).Error; err != nil {
			return fmt.Errorf("failed to create role %s: %w", name, err)
		}
	}
	return nil
}
