package memory

import (
	"context"
	"sync"
	"time"

	"socialfeed/internal/core/likes"
)

type memoryLikeRepo struct {
	mu sync.RWMutex
	// post ID -> username -> like; the nested key is the composite identity
	byPost map[string]map[string]*likes.Like
}

// NewLikeRepository creates a new in-memory like repository
func NewLikeRepository() likes.Repository {
	return &memoryLikeRepo{
		byPost: make(map[string]map[string]*likes.Like),
	}
}

// Add records a like for the (post, user) pair. The check-and-insert runs
// under the write lock, so at most one of two concurrent adds for the same
// pair can succeed; the other observes ErrAlreadyLiked.
func (r *memoryLikeRepo) Add(ctx context.Context, postID, username string) (*likes.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	postLikes, ok := r.byPost[postID]
	if !ok {
		postLikes = make(map[string]*likes.Like)
		r.byPost[postID] = postLikes
	}

	if _, exists := postLikes[username]; exists {
		return nil, likes.ErrAlreadyLiked
	}

	like := &likes.Like{
		PostID:   postID,
		Username: username,
		LikedAt:  time.Now().UTC(),
	}
	postLikes[username] = like

	return cloneLike(like), nil
}

func (r *memoryLikeRepo) Remove(ctx context.Context, postID, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	postLikes, ok := r.byPost[postID]
	if !ok {
		return false, nil
	}
	if _, exists := postLikes[username]; !exists {
		return false, nil
	}

	delete(postLikes, username)
	if len(postLikes) == 0 {
		delete(r.byPost, postID)
	}

	return true, nil
}

func (r *memoryLikeRepo) Exists(ctx context.Context, postID, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.byPost[postID][username]
	return exists, nil
}

func (r *memoryLikeRepo) Count(ctx context.Context, postID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byPost[postID]), nil
}

func (r *memoryLikeRepo) DeleteAllForPost(ctx context.Context, postID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := len(r.byPost[postID])
	delete(r.byPost, postID)

	return count, nil
}

// cloneLike copies a like so callers never alias the table's entry
func cloneLike(l *likes.Like) *likes.Like {
	c := *l
	return &c
}
