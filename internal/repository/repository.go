package repository

import (
	"context"
	"database/sql"

	"gallery_users/internal/models"
)

// Collection kinds persisted in collection_items.kind.
const (
	KindFavourites = "favourites"
	KindHistory    = "history"
)

// Users owns account records.
type Users interface {
	Create(ctx context.Context, id, username, passwordHash string) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Collections persists the bounded per-user item sets. Every method returns
// the updated sequence in insertion order.
type Collections interface {
	List(ctx context.Context, userID, kind string) ([]string, error)
	Add(ctx context.Context, userID, kind, itemID string) ([]string, error)
	Remove(ctx context.Context, userID, kind, itemID string) ([]string, error)
}

type Repository struct {
	Users       Users
	Collections Collections
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:       NewUserRepository(db),
		Collections: NewCollectionRepository(db),
	}
}
