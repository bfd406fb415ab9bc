package service

import (
	"context"

	"gallery_users/internal/models"
	"gallery_users/internal/repository"
)

// Authorization covers registration, login and bearer token handling.
type Authorization interface {
	Register(ctx context.Context, username, password, passwordConfirm string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (models.AuthClaim, error)
}

// Collections exposes the bounded favourites/history sets of a user.
// kind is repository.KindFavourites or repository.KindHistory.
type Collections interface {
	List(ctx context.Context, userID, kind string) ([]string, error)
	Add(ctx context.Context, userID, kind, itemID string) ([]string, error)
	Remove(ctx context.Context, userID, kind, itemID string) ([]string, error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Collections
}

// NewService wires the repository layer into concrete services. The signing
// secret comes from configuration, loaded once at startup.
func NewService(repos *repository.Repository, signingSecret string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, signingSecret),
		Collections:   NewCollectionService(repos.Users, repos.Collections),
	}
}
