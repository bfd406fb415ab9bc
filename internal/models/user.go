package models

// User is one registered account. Favourites and history hold opaque
// artwork ids in insertion order; both are capped and deduplicated at
// the repository layer.
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"userName"`
	PasswordHash string   `json:"-"` // don’t expose hash
	Favourites   []string `json:"favourites"`
	History      []string `json:"history"`
}

// AuthClaim is the identity payload carried by a bearer token.
// It lives only for the duration of a request.
type AuthClaim struct {
	UserID   string `json:"id"`
	Username string `json:"userName"`
}
