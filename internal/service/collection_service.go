package service

import (
	"context"

	"gallery_users/internal/repository"
)

// CollectionService applies the bounded-set operations to favourites and
// history uniformly; the kind argument selects the field.
type CollectionService struct {
	users repository.Users
	items repository.Collections
}

func NewCollectionService(users repository.Users, items repository.Collections) *CollectionService {
	return &CollectionService{users: users, items: items}
}

// List returns the user's collection in insertion order.
func (s *CollectionService) List(ctx context.Context, userID, kind string) ([]string, error) {
	if err := s.resolveUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.items.List(ctx, userID, kind)
}

// Add inserts itemID and returns the updated sequence. Re-adding a present
// item succeeds without change; a full collection rejects the insert with
// repository.ErrCollectionFull.
func (s *CollectionService) Add(ctx context.Context, userID, kind, itemID string) ([]string, error) {
	if err := s.resolveUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.items.Add(ctx, userID, kind, itemID)
}

// Remove deletes itemID and returns the updated sequence; removing an absent
// item is idempotent.
func (s *CollectionService) Remove(ctx context.Context, userID, kind, itemID string) ([]string, error) {
	if err := s.resolveUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.items.Remove(ctx, userID, kind, itemID)
}

// resolveUser reports ErrUserNotFound when the id (typically from a token
// claim) no longer maps to an account.
func (s *CollectionService) resolveUser(ctx context.Context, userID string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	return nil
}
