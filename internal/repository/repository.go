package repository

import (
	"context"
	"database/sql"

	"roomsign/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// ResourceRepo is the persistent store of per-sign configuration records.
// Get/First return (nil, nil) when no matching row exists; callers decide
// whether that is an error.
type ResourceRepo interface {
	List(ctx context.Context) ([]models.Resource, error)
	GetByID(ctx context.Context, id int) (*models.Resource, error)
	First(ctx context.Context) (*models.Resource, error)
	Create(ctx context.Context, r models.Resource) (int, error)
	Update(ctx context.Context, r models.Resource) error
	Delete(ctx context.Context, id int) error
}

type Repository struct {
	Resources ResourceRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Resources: NewResourceSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
