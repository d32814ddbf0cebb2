package likes

import "errors"

var (
	// ErrNotFound indicates no like exists for the (post, user) pair
	ErrNotFound = errors.New("like not found")

	// ErrAlreadyLiked indicates a like already exists for the (post, user)
	// pair. The original like's timestamp is left untouched.
	ErrAlreadyLiked = errors.New("post already liked by this user")
)
