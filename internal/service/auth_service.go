package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gallery_users/internal/models"
	"gallery_users/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL   = time.Hour // fixed, no refresh protocol
	bcryptCost = 10
)

// Domain errors for auth flows.
var (
	ErrValidation       = errors.New("invalid input")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
)

// AuthService handles user auth logic
type AuthService struct {
	users      repository.Users
	signingKey []byte
	ttl        time.Duration
}

func NewAuthService(users repository.Users, signingSecret string) *AuthService {
	return &AuthService{
		users:      users,
		signingKey: []byte(signingSecret),
		ttl:        tokenTTL,
	}
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"id"`
	Username string `json:"userName"`
}

// Register creates a new account and returns a token for it, so a fresh
// registration is immediately signed in. The plaintext password is never
// stored; a failed hash aborts before any record is written.
func (s *AuthService) Register(ctx context.Context, username, password, passwordConfirm string) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", fmt.Errorf("%w: user name is empty", ErrValidation)
	}
	if password != passwordConfirm {
		return "", ErrPasswordMismatch
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	if err := s.users.Create(ctx, id, username, hash); err != nil {
		return "", err
	}

	return s.issueToken(models.AuthClaim{UserID: id, Username: username})
}

// Login validates credentials and returns a signed JWT.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}

	return s.issueToken(models.AuthClaim{UserID: u.ID, Username: u.Username})
}

// ParseToken validates a bearer token and returns the claim it carries.
// Validation is stateless; there is no revocation list.
func (s *AuthService) ParseToken(accessToken string) (models.AuthClaim, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.AuthClaim{}, ErrTokenExpired
		}
		return models.AuthClaim{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return models.AuthClaim{}, ErrInvalidToken
	}

	return models.AuthClaim{UserID: claims.UserID, Username: claims.Username}, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("%w: password is empty", ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT carrying the claim
func (s *AuthService) issueToken(claim models.AuthClaim) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   claim.UserID,
		Username: claim.Username,
	})
	return token.SignedString(s.signingKey)
}
