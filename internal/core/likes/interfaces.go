package likes

import "context"

// Repository defines the data access interface for the like store.
// At most one like may exist per (post, user) pair at any time, and that
// uniqueness must hold under concurrent Add calls for the same pair.
type Repository interface {
	// Add records a like for the (post, user) pair and returns it.
	// Returns ErrAlreadyLiked if the pair is already present; a rejected
	// add never creates a duplicate or touches the original timestamp.
	Add(ctx context.Context, postID, username string) (*Like, error)

	// Remove deletes the like for the (post, user) pair, reporting
	// whether it existed.
	Remove(ctx context.Context, postID, username string) (bool, error)

	// Exists reports whether a like exists for the (post, user) pair.
	Exists(ctx context.Context, postID, username string) (bool, error)

	// Count returns the number of likes for a post. Used to populate the
	// post's derived like count.
	Count(ctx context.Context, postID string) (int, error)

	// DeleteAllForPost removes every like for the given post and returns
	// how many were removed. Used only by the cascading delete path in
	// the feed service.
	DeleteAllForPost(ctx context.Context, postID string) (int, error)
}
