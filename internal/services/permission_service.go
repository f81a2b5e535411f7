package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RequirePermission passes silently when the user's permission set intersects
// anyOf. Pure: the caller supplies the already-loaded user, no store access.
func RequirePermission(user *models.User, anyOf ...models.Permission) error {
	if user.HasPermission(anyOf...) {
		return nil
	}
	return fmt.Errorf("%w: you need one of %v", ErrForbidden, anyOf)
}

type PermissionService struct {
	db *gorm.DB
}

func NewPermissionService(db *gorm.DB) *PermissionService {
	return &PermissionService{db: db}
}

// UpdatePermissions replaces the target user's permission set wholesale. Only
// holders of ADMIN or PERMISSIONUPDATE may call it.
func (s *PermissionService) UpdatePermissions(actingUserID, targetUserID uuid.UUID, permissions []models.Permission) (*models.User, error) {
	if _, err := s.requireActor(actingUserID, models.PermissionAdmin, models.PermissionPermissionUpdate); err != nil {
		return nil, err
	}

	var target models.User
	if err := s.db.First(&target, "id = ?", targetUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", targetUserID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load target user: %w", err)
	}

	perms := datatypes.NewJSONSlice(permissions)
	if err := s.db.Model(&target).Update("permissions", perms).Error; err != nil {
		return nil, fmt.Errorf("failed to update permissions: %w", err)
	}
	target.Permissions = perms

	return &target, nil
}

// Users lists all accounts. Gated on the same capabilities as permission
// updates, since the listing exists to administer them.
func (s *PermissionService) Users(actingUserID uuid.UUID) ([]models.User, error) {
	if _, err := s.requireActor(actingUserID, models.PermissionAdmin, models.PermissionPermissionUpdate); err != nil {
		return nil, err
	}

	var users []models.User
	if err := s.db.Order("created_at").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *PermissionService) requireActor(actingUserID uuid.UUID, anyOf ...models.Permission) (*models.User, error) {
	if actingUserID == uuid.Nil {
		return nil, ErrAuthRequired
	}

	var actor models.User
	if err := s.db.First(&actor, "id = ?", actingUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthRequired
		}
		return nil, fmt.Errorf("failed to load acting user: %w", err)
	}

	if err := RequirePermission(&actor, anyOf...); err != nil {
		return nil, err
	}
	return &actor, nil
}
