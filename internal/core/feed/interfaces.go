package feed

import (
	"context"

	"socialfeed/internal/core/comments"
	"socialfeed/internal/core/likes"
	"socialfeed/internal/core/posts"
)

// Service is the single entry point the API layer talks to. It composes
// the three stores and owns every cross-entity rule: post-existence checks
// before dependent writes, cascading deletes, and derived counts. The
// stores never call each other.
type Service interface {
	// ListPosts returns all posts, newest-first, with derived counts.
	ListPosts(ctx context.Context) ([]*posts.Post, error)

	// CreatePost creates a new post.
	// Returns a posts.ValidationError if username or content is empty.
	CreatePost(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error)

	// GetPost retrieves a post with derived counts.
	// Returns posts.ErrNotFound if no such post exists.
	GetPost(ctx context.Context, postID string) (*posts.Post, error)

	// UpdatePost patches a post's content; nil fields are left untouched.
	// Returns posts.ErrNotFound if no such post exists.
	UpdatePost(ctx context.Context, postID string, req posts.UpdatePostRequest) (*posts.Post, error)

	// DeletePost removes a post together with all of its comments and
	// likes in one logical step; after it returns, no trace of the post
	// is observable.
	// Returns posts.ErrNotFound if no such post exists.
	DeletePost(ctx context.Context, postID string) error

	// ListComments returns a post's comments, oldest-first.
	// Returns posts.ErrNotFound if the post does not exist.
	ListComments(ctx context.Context, postID string) ([]*comments.Comment, error)

	// CreateComment attaches a comment to an existing post.
	// Returns posts.ErrNotFound if the post does not exist, so no
	// orphan comment can ever be created.
	CreateComment(ctx context.Context, postID string, req comments.CreateCommentRequest) (*comments.Comment, error)

	// GetComment retrieves a comment scoped by its parent post.
	// Returns comments.ErrNotFound on a miss or post mismatch.
	GetComment(ctx context.Context, postID, commentID string) (*comments.Comment, error)

	// UpdateComment patches a comment's content.
	// Returns comments.ErrNotFound on a miss or post mismatch.
	UpdateComment(ctx context.Context, postID, commentID string, req comments.UpdateCommentRequest) (*comments.Comment, error)

	// DeleteComment removes a comment scoped by its parent post.
	// Returns comments.ErrNotFound on a miss or post mismatch.
	DeleteComment(ctx context.Context, postID, commentID string) error

	// LikePost records a like for (post, user).
	// Returns posts.ErrNotFound if the post does not exist and
	// likes.ErrAlreadyLiked if the pair is already present.
	LikePost(ctx context.Context, postID, username string) (*likes.Like, error)

	// UnlikePost removes the like for (post, user).
	// Returns likes.ErrNotFound if no such like exists, whether or not
	// the post itself does: removing a like for a missing post is
	// indistinguishable from removing a missing like.
	UnlikePost(ctx context.Context, postID, username string) error
}
