package repository

import (
	"context"
	"database/sql"
	"time"

	"item-api/internal/models"
)

type Users interface {
	GetByUsername(username string) (*models.User, error)
}

type Items interface {
	List() []models.Item
	GetByID(id int) (models.Item, error)
	Create(name, description string) models.Item
	Update(id int, name, description string) (models.Item, error)
	Delete(id int) error
}

type Audit interface {
	Append(ctx context.Context, e models.AuditEvent) error
	List(ctx context.Context, from, to time.Time, action string) ([]models.AuditEvent, error)
}

type Repository struct {
	Users Users
	Items Items
	Audit Audit
}

// NewRepository wires the concrete stores. Users and items live in process
// memory; the audit trail goes through the (in-memory) SQLite handle.
func NewRepository(db *sql.DB, seedUsers []models.User) *Repository {
	return &Repository{
		Users: NewUserSet(seedUsers),
		Items: NewItemStore(),
		Audit: NewAuditSQLite(db),
	}
}
