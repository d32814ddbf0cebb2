package memory

import (
	"context"
	"sync"
	"time"

	"socialfeed/internal/core/comments"
	"socialfeed/internal/ids"
)

type memoryCommentRepo struct {
	mu     sync.RWMutex
	table  map[string]*comments.Comment
	byPost map[string][]string // post ID -> comment IDs in creation order
	gen    *ids.Generator
}

// NewCommentRepository creates a new in-memory comment repository
func NewCommentRepository(gen *ids.Generator) comments.Repository {
	return &memoryCommentRepo{
		table:  make(map[string]*comments.Comment),
		byPost: make(map[string][]string),
		gen:    gen,
	}
}

// ListByPost returns a snapshot of a post's comments, oldest-first.
// Creation order is chronological order, so no re-sort is needed.
func (r *memoryCommentRepo) ListByPost(ctx context.Context, postID string) ([]*comments.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commentIDs := r.byPost[postID]
	list := make([]*comments.Comment, 0, len(commentIDs))
	for _, id := range commentIDs {
		if c, ok := r.table[id]; ok {
			list = append(list, cloneComment(c))
		}
	}

	return list, nil
}

func (r *memoryCommentRepo) Create(ctx context.Context, postID, username, content string) (*comments.Comment, error) {
	if username == "" {
		return nil, comments.NewValidationError("username", "username is required")
	}
	if content == "" {
		return nil, comments.NewValidationError("content", "content is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	comment := &comments.Comment{
		ID:        r.gen.NewID(),
		PostID:    postID,
		Username:  username,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.table[comment.ID] = comment
	r.byPost[postID] = append(r.byPost[postID], comment.ID)

	return cloneComment(comment), nil
}

func (r *memoryCommentRepo) GetByID(ctx context.Context, postID, commentID string) (*comments.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comment, ok := r.table[commentID]
	if !ok || comment.PostID != postID {
		return nil, comments.ErrNotFound
	}

	return cloneComment(comment), nil
}

func (r *memoryCommentRepo) Update(ctx context.Context, postID, commentID string, content *string) (*comments.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment, ok := r.table[commentID]
	if !ok || comment.PostID != postID {
		return nil, comments.ErrNotFound
	}

	if content != nil {
		comment.Content = *content
	}
	comment.UpdatedAt = time.Now().UTC()

	return cloneComment(comment), nil
}

func (r *memoryCommentRepo) Delete(ctx context.Context, postID, commentID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment, ok := r.table[commentID]
	if !ok || comment.PostID != postID {
		return false, nil
	}

	delete(r.table, commentID)
	r.byPost[postID] = removeID(r.byPost[postID], commentID)
	if len(r.byPost[postID]) == 0 {
		delete(r.byPost, postID)
	}

	return true, nil
}

func (r *memoryCommentRepo) DeleteAllForPost(ctx context.Context, postID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	commentIDs := r.byPost[postID]
	for _, id := range commentIDs {
		delete(r.table, id)
	}
	delete(r.byPost, postID)

	return len(commentIDs), nil
}

func removeID(list []string, id string) []string {
	for i, v := range list {
		if v == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// cloneComment copies a comment so callers never alias the table's entry
func cloneComment(c *comments.Comment) *comments.Comment {
	cp := *c
	return &cp
}
