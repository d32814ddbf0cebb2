package posts

import "time"

// Post represents a top-level shareable item of content authored by a user.
// LikeCount and CommentCount are derived on read from the like and comment
// stores; they are never persisted alongside the post.
type Post struct {
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Content      string    `json:"content"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// UpdatePostRequest represents input for patching an existing post.
// Nil fields are left untouched; only supplied fields are applied.
type UpdatePostRequest struct {
	Content *string `json:"content,omitempty"`
}
