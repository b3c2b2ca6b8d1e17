package domain

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrAlreadyInWatchlist = errors.New("already in watchlist")
	ErrValidation         = errors.New("validation failed")
	ErrUpstream           = errors.New("upstream catalog unavailable")
)
