package posts

import "context"

// Repository defines the data access interface for the post store.
// The store owns only posts; cross-entity rules (cascading deletes,
// derived counts) live in the feed service, which composes the stores.
type Repository interface {
	// ListAll returns a point-in-time snapshot of every post, ordered
	// newest-created-first. Posts with equal creation timestamps keep
	// their insertion order.
	ListAll(ctx context.Context) ([]*Post, error)

	// Create assigns an identifier and both timestamps (equal at
	// creation), stores the post and returns it.
	// Returns a ValidationError if username or content is empty.
	Create(ctx context.Context, username, content string) (*Post, error)

	// GetByID retrieves a post by its identifier.
	// Returns ErrNotFound if no such post exists.
	GetByID(ctx context.Context, id string) (*Post, error)

	// Update applies the supplied content (nil leaves it untouched) and
	// refreshes the last-modified timestamp. Identifier, author and
	// creation timestamp never change.
	// Returns ErrNotFound if no such post exists.
	Update(ctx context.Context, id string, content *string) (*Post, error)

	// Delete removes a post by ID, reporting whether it existed.
	// Deliberately does not cascade: the post store knows nothing about
	// comments or likes.
	Delete(ctx context.Context, id string) (bool, error)
}
