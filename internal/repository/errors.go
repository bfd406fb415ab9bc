package repository

import "errors"

// Sentinels surfaced at the store boundary.
var (
	// ErrUsernameTaken reports a violated username uniqueness constraint.
	ErrUsernameTaken = errors.New("user name already taken")
	// ErrCollectionFull reports an insert rejected by the 50-item cap.
	ErrCollectionFull = errors.New("collection limit reached")
)
