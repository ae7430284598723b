package service

import (
	"context"
	"errors"
	"fmt"

	"item-api/internal/models"
	"item-api/internal/repository"
)

// ErrMissingFields is returned when a create request lacks name or
// description. The empty string counts as missing.
var ErrMissingFields = errors.New("name and description are required")

// Audit action names.
const (
	ActionItemCreated = "ITEM_CREATED"
	ActionItemUpdated = "ITEM_UPDATED"
	ActionItemDeleted = "ITEM_DELETED"
)

type ItemsService struct {
	items repository.Items
	audit repository.Audit
}

func NewItemsService(items repository.Items, audit repository.Audit) *ItemsService {
	return &ItemsService{items: items, audit: audit}
}

func (s *ItemsService) List(ctx context.Context) []models.Item {
	return s.items.List()
}

func (s *ItemsService) Get(ctx context.Context, id int) (models.Item, error) {
	return s.items.GetByID(id)
}

// Create validates both fields, assigns the next id, and records the
// mutation in the audit trail.
func (s *ItemsService) Create(ctx context.Context, actor models.Identity, name, description string) (models.Item, error) {
	if name == "" || description == "" {
		return models.Item{}, ErrMissingFields
	}
	it := s.items.Create(name, description)

	if err := s.audit.Append(ctx, models.AuditEvent{
		Action: ActionItemCreated,
		Actor:  actor.Username,
		ItemID: it.ID,
		Detail: fmt.Sprintf("item %q created", it.Name),
	}); err != nil {
		return models.Item{}, err
	}
	return it, nil
}

// Update applies a partial update. The store enforces the check order:
// unknown id wins over an empty body.
func (s *ItemsService) Update(ctx context.Context, actor models.Identity, id int, name, description string) (models.Item, error) {
	it, err := s.items.Update(id, name, description)
	if err != nil {
		return models.Item{}, err
	}

	if err := s.audit.Append(ctx, models.AuditEvent{
		Action: ActionItemUpdated,
		Actor:  actor.Username,
		ItemID: it.ID,
		Detail: fmt.Sprintf("item %q updated", it.Name),
	}); err != nil {
		return models.Item{}, err
	}
	return it, nil
}

func (s *ItemsService) Delete(ctx context.Context, actor models.Identity, id int) error {
	if err := s.items.Delete(id); err != nil {
		return err
	}
	return s.audit.Append(ctx, models.AuditEvent{
		Action: ActionItemDeleted,
		Actor:  actor.Username,
		ItemID: id,
		Detail: fmt.Sprintf("item %d deleted", id),
	})
}
