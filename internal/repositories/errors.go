package repositories

import "errors"

var (
	// ErrDuplicateEmail is returned when the normalized email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrStoreUnavailable is returned when the database connection was never
	// established; the process keeps serving with degraded behavior.
	ErrStoreUnavailable = errors.New("document store unavailable")
)
