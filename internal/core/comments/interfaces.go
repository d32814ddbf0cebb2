package comments

import "context"

// Repository defines the data access interface for the comment store.
// The store does not cross-check post existence; that invariant belongs
// to the feed service so the stores stay independent of each other.
type Repository interface {
	// ListByPost returns a point-in-time snapshot of a post's comments
	// in chronological (oldest-first) reading order.
	ListByPost(ctx context.Context, postID string) ([]*Comment, error)

	// Create assigns an identifier and both timestamps and stores the
	// comment under the given post. The caller must have already
	// verified that the post exists.
	// Returns a ValidationError if username or content is empty.
	Create(ctx context.Context, postID, username, content string) (*Comment, error)

	// GetByID retrieves a comment scoped by its parent post.
	// Returns ErrNotFound if the comment does not exist or belongs to a
	// different post.
	GetByID(ctx context.Context, postID, commentID string) (*Comment, error)

	// Update applies the supplied content (nil leaves it untouched) and
	// refreshes the last-modified timestamp.
	// Returns ErrNotFound under the same scoping rules as GetByID.
	Update(ctx context.Context, postID, commentID string, content *string) (*Comment, error)

	// Delete removes a comment scoped by its parent post, reporting
	// whether it existed.
	Delete(ctx context.Context, postID, commentID string) (bool, error)

	// DeleteAllForPost removes every comment under the given post and
	// returns how many were removed. Used only by the cascading delete
	// path in the feed service.
	DeleteAllForPost(ctx context.Context, postID string) (int, error)
}
