package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"socialfeed/internal/core/posts"
	"socialfeed/internal/ids"
)

type memoryPostRepo struct {
	mu    sync.RWMutex
	table map[string]*posts.Post
	order []string // insertion order of post IDs, used to break timestamp ties
	gen   *ids.Generator
}

// NewPostRepository creates a new in-memory post repository
func NewPostRepository(gen *ids.Generator) posts.Repository {
	return &memoryPostRepo{
		table: make(map[string]*posts.Post),
		gen:   gen,
	}
}

// ListAll returns a snapshot of all posts, newest-created-first.
// The stable sort keeps insertion order for equal timestamps.
func (r *memoryPostRepo) ListAll(ctx context.Context) ([]*posts.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*posts.Post, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.table[id]; ok {
			all = append(all, clonePost(p))
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return all, nil
}

func (r *memoryPostRepo) Create(ctx context.Context, username, content string) (*posts.Post, error) {
	if username == "" {
		return nil, posts.NewValidationError("username", "username is required")
	}
	if content == "" {
		return nil, posts.NewValidationError("content", "content is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	post := &posts.Post{
		ID:        r.gen.NewID(),
		Username:  username,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.table[post.ID] = post
	r.order = append(r.order, post.ID)

	return clonePost(post), nil
}

func (r *memoryPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.table[id]
	if !ok {
		return nil, posts.ErrNotFound
	}

	return clonePost(post), nil
}

func (r *memoryPostRepo) Update(ctx context.Context, id string, content *string) (*posts.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.table[id]
	if !ok {
		return nil, posts.ErrNotFound
	}

	if content != nil {
		post.Content = *content
	}
	post.UpdatedAt = time.Now().UTC()

	return clonePost(post), nil
}

func (r *memoryPostRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.table[id]; !ok {
		return false, nil
	}
	delete(r.table, id)

	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return true, nil
}

// clonePost copies a post so callers never alias the table's entry
func clonePost(p *posts.Post) *posts.Post {
	c := *p
	return &c
}
