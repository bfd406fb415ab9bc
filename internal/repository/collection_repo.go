package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// maxCollectionItems caps favourites and history independently.
const maxCollectionItems = 50

type CollectionRepository struct {
	db *sql.DB
}

func NewCollectionRepository(db *sql.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// Ensure implementation of Collections interface at compile time.
var _ Collections = (*CollectionRepository)(nil)

const (
	selectItemsSQL = `SELECT item_id FROM collection_items WHERE user_id = ? AND kind = ? ORDER BY id`
	countItemsSQL  = `SELECT COUNT(*) FROM collection_items WHERE user_id = ? AND kind = ?`
	// OR IGNORE rides the UNIQUE(user_id,kind,item_id) index: re-adding a
	// present item is a no-op, not an error.
	insertItemSQL = `INSERT OR IGNORE INTO collection_items (user_id, kind, item_id) VALUES (?, ?, ?)`
	deleteItemSQL = `DELETE FROM collection_items WHERE user_id = ? AND kind = ? AND item_id = ?`
)

// List returns the user's items of the given kind in insertion order.
func (r *CollectionRepository) List(ctx context.Context, userID, kind string) ([]string, error) {
	return listItems(ctx, r.db, userID, kind)
}

// Add inserts itemID unless the collection is already at capacity. The count
// gate and the insert run in one transaction, so concurrent adds for the same
// user cannot push the collection past the cap. The gate runs before the
// dedup check: at capacity even a present item is rejected.
func (r *CollectionRepository) Add(ctx context.Context, userID, kind, itemID string) ([]string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin add %s for user %q: %w", kind, userID, err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, countItemsSQL, userID, kind).Scan(&count); err != nil {
		return nil, fmt.Errorf("count %s for user %q: %w", kind, userID, err)
	}
	if count >= maxCollectionItems {
		return nil, ErrCollectionFull
	}

	if _, err := tx.ExecContext(ctx, insertItemSQL, userID, kind, itemID); err != nil {
		return nil, fmt.Errorf("insert %s item %q for user %q: %w", kind, itemID, userID, err)
	}

	items, err := listItems(ctx, tx, userID, kind)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit add %s for user %q: %w", kind, userID, err)
	}
	return items, nil
}

// Remove deletes itemID and returns the updated sequence. Removing an absent
// item is a no-op.
func (r *CollectionRepository) Remove(ctx context.Context, userID, kind, itemID string) ([]string, error) {
	if _, err := r.db.ExecContext(ctx, deleteItemSQL, userID, kind, itemID); err != nil {
		return nil, fmt.Errorf("delete %s item %q for user %q: %w", kind, itemID, userID, err)
	}
	return listItems(ctx, r.db, userID, kind)
}

// querier lets listItems run against the pool or an open transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func listItems(ctx context.Context, q querier, userID, kind string) ([]string, error) {
	rows, err := q.QueryContext(ctx, selectItemsSQL, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("select %s for user %q: %w", kind, userID, err)
	}
	defer func() { _ = rows.Close() }()

	items := []string{}
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return nil, fmt.Errorf("scan %s item for user %q: %w", kind, userID, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s for user %q: %w", kind, userID, err)
	}
	return items, nil
}
