package service

import (
	"context"

	"item-api/internal/models"
	"item-api/internal/repository"
)

type Authorization interface {
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (models.Identity, error)
}

// Items exposes the CRUD lifecycle of the item collection.
type Items interface {
	List(ctx context.Context) []models.Item
	Get(ctx context.Context, id int) (models.Item, error)
	Create(ctx context.Context, actor models.Identity, name, description string) (models.Item, error)
	Update(ctx context.Context, actor models.Identity, id int, name, description string) (models.Item, error)
	Delete(ctx context.Context, actor models.Identity, id int) error
}

// Audit exposes the append-only item-lifecycle trail with filtered access.
type Audit interface {
	List(ctx context.Context, f AuditFilter) ([]models.AuditEvent, error)
}

type Service struct {
	Items
	Audit
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	return &Service{
		Items:         NewItemsService(repos.Items, repos.Audit),
		Audit:         NewAuditService(repos.Audit),
		Authorization: NewAuthService(repos.Users, auth),
	}
}
