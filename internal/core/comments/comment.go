package comments

import "time"

// Comment represents a reply attached to exactly one post.
// PostID is a weak back-reference: plain data resolved through the post
// store, never an owning pointer. It is set at creation and never
// reassigned.
type Comment struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
}

// CreateCommentRequest represents input for creating a new comment
type CreateCommentRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// UpdateCommentRequest represents input for patching an existing comment
type UpdateCommentRequest struct {
	Content *string `json:"content,omitempty"`
}
