package feed

import (
	"context"
	"fmt"
	"log/slog"

	"socialfeed/internal/core/comments"
	"socialfeed/internal/core/likes"
	"socialfeed/internal/core/posts"
)

// feedService implements the Service interface on top of the three stores
type feedService struct {
	posts    posts.Repository
	comments comments.Repository
	likes    likes.Repository
	locks    postLocks
	logger   *slog.Logger
}

// NewService creates a new feed service instance
func NewService(postRepo posts.Repository, commentRepo comments.Repository, likeRepo likes.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &feedService{
		posts:    postRepo,
		comments: commentRepo,
		likes:    likeRepo,
		logger:   logger,
	}
}

func (s *feedService) ListPosts(ctx context.Context) ([]*posts.Post, error) {
	all, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	for _, post := range all {
		if err := s.fillCounts(ctx, post); err != nil {
			return nil, err
		}
	}

	return all, nil
}

func (s *feedService) CreatePost(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
	post, err := s.posts.Create(ctx, req.Username, req.Content)
	if err != nil {
		return nil, err
	}

	s.logger.Info("post created", "postID", post.ID, "username", post.Username)

	// A fresh post has no likes or comments yet
	return post, nil
}

func (s *feedService) GetPost(ctx context.Context, postID string) (*posts.Post, error) {
	unlock := s.locks.RLock(postID)
	defer unlock()

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := s.fillCounts(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *feedService) UpdatePost(ctx context.Context, postID string, req posts.UpdatePostRequest) (*posts.Post, error) {
	unlock := s.locks.Lock(postID)
	defer unlock()

	post, err := s.posts.Update(ctx, postID, req.Content)
	if err != nil {
		return nil, err
	}

	if err := s.fillCounts(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost removes the post's comments, then its likes, then the post
// itself, all under the post's write lock. Callers racing against the
// delete serialize behind the lock and see either the whole post or none
// of it.
func (s *feedService) DeletePost(ctx context.Context, postID string) error {
	unlock := s.locks.Lock(postID)
	defer unlock()

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return err
	}

	removedComments, err := s.comments.DeleteAllForPost(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to cascade comments for post %s: %w", postID, err)
	}

	removedLikes, err := s.likes.DeleteAllForPost(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to cascade likes for post %s: %w", postID, err)
	}

	deleted, err := s.posts.Delete(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post %s: %w", postID, err)
	}
	if !deleted {
		return posts.ErrNotFound
	}

	s.logger.Info("post deleted", "postID", postID, "comments", removedComments, "likes", removedLikes)

	return nil
}

func (s *feedService) ListComments(ctx context.Context, postID string) ([]*comments.Comment, error) {
	unlock := s.locks.RLock(postID)
	defer unlock()

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	return s.comments.ListByPost(ctx, postID)
}

func (s *feedService) CreateComment(ctx context.Context, postID string, req comments.CreateCommentRequest) (*comments.Comment, error) {
	unlock := s.locks.Lock(postID)
	defer unlock()

	// The comment store does not know about posts; the existence check
	// here is what keeps orphan comments impossible.
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := s.comments.Create(ctx, postID, req.Username, req.Content)
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment created", "postID", postID, "commentID", comment.ID, "username", comment.Username)

	return comment, nil
}

func (s *feedService) GetComment(ctx context.Context, postID, commentID string) (*comments.Comment, error) {
	unlock := s.locks.RLock(postID)
	defer unlock()

	return s.comments.GetByID(ctx, postID, commentID)
}

func (s *feedService) UpdateComment(ctx context.Context, postID, commentID string, req comments.UpdateCommentRequest) (*comments.Comment, error) {
	unlock := s.locks.Lock(postID)
	defer unlock()

	return s.comments.Update(ctx, postID, commentID, req.Content)
}

func (s *feedService) DeleteComment(ctx context.Context, postID, commentID string) error {
	unlock := s.locks.Lock(postID)
	defer unlock()

	deleted, err := s.comments.Delete(ctx, postID, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", commentID, err)
	}
	if !deleted {
		return comments.ErrNotFound
	}

	return nil
}

func (s *feedService) LikePost(ctx context.Context, postID, username string) (*likes.Like, error) {
	if username == "" {
		return nil, posts.NewValidationError("username", "username is required")
	}

	unlock := s.locks.Lock(postID)
	defer unlock()

	// Post existence is checked first: liking a missing post is
	// not-found, not already-liked.
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	like, err := s.likes.Add(ctx, postID, username)
	if err != nil {
		return nil, err
	}

	s.logger.Info("post liked", "postID", postID, "username", username)

	return like, nil
}

func (s *feedService) UnlikePost(ctx context.Context, postID, username string) error {
	unlock := s.locks.Lock(postID)
	defer unlock()

	removed, err := s.likes.Remove(ctx, postID, username)
	if err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	if !removed {
		return likes.ErrNotFound
	}

	return nil
}

// fillCounts populates the derived like and comment counts on a post.
// Counts are computed from the owning stores on every read instead of
// being maintained as counters that could drift.
func (s *feedService) fillCounts(ctx context.Context, post *posts.Post) error {
	likeCount, err := s.likes.Count(ctx, post.ID)
	if err != nil {
		return fmt.Errorf("failed to count likes for post %s: %w", post.ID, err)
	}

	postComments, err := s.comments.ListByPost(ctx, post.ID)
	if err != nil {
		return fmt.Errorf("failed to count comments for post %s: %w", post.ID, err)
	}

	post.LikeCount = likeCount
	post.CommentCount = len(postComments)

	return nil
}
