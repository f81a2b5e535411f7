package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/dto"
	"github.com/shopcore/backend/internal/models"
	"gorm.io/gorm"
)

type ItemService struct {
	db *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

// CreateItem adds a catalog entry owned by the authenticated user.
func (s *ItemService) CreateItem(userID uuid.UUID, req *dto.CreateItemRequest) (*models.Item, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthRequired
	}
	if req.Title == "" {
		return nil, fmt.Errorf("%w: a title is required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	item := models.Item{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		LargeImage:  req.LargeImage,
		Price:       req.Price,
		UserID:      userID,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return &item, nil
}

// UpdateItem applies a partial update. The owner may always update; anyone
// else needs ADMIN or ITEMUPDATE.
func (s *ItemService) UpdateItem(userID, itemID uuid.UUID, req *dto.UpdateItemRequest) (*models.Item, error) {
	item, err := s.loadForMutation(userID, itemID, models.PermissionItemUpdate)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
		}
		updates["price"] = *req.Price
	}
	if len(updates) == 0 {
		return item, nil
	}

	if err := s.db.Model(item).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

// DeleteItem removes a catalog entry. The owner may always delete; anyone
// else needs ADMIN or ITEMDELETE.
func (s *ItemService) DeleteItem(userID, itemID uuid.UUID) (*models.Item, error) {
	item, err := s.loadForMutation(userID, itemID, models.PermissionItemDelete)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(item).Error; err != nil {
		return nil, fmt.Errorf("failed to delete item: %w", err)
	}
	return item, nil
}

func (s *ItemService) loadForMutation(userID, itemID uuid.UUID, capability models.Permission) (*models.Item, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthRequired
	}

	var item models.Item
	if err := s.db.First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no item found: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up item: %w", err)
	}

	if item.UserID == userID {
		return &item, nil
	}

	var actor models.User
	if err := s.db.First(&actor, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthRequired
		}
		return nil, fmt.Errorf("failed to load acting user: %w", err)
	}
	if err := RequirePermission(&actor, models.PermissionAdmin, capability); err != nil {
		return nil, err
	}
	return &item, nil
}
