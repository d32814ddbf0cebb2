package like

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialfeed/internal/core/feed"
	"socialfeed/internal/core/likes"
	"socialfeed/internal/core/posts"
	"socialfeed/internal/db/memory"
	"socialfeed/internal/ids"
)

func newTestRouter() (chi.Router, feed.Service) {
	gen := ids.NewGenerator()
	svc := feed.NewService(memory.NewPostRepository(gen), memory.NewCommentRepository(gen), memory.NewLikeRepository(), nil)

	r := chi.NewRouter()
	r.Post("/api/posts/{postID}/likes", NewLikePostHandler(svc).HandleLike)
	r.Delete("/api/posts/{postID}/likes", NewUnlikePostHandler(svc).HandleUnlike)
	return r, svc
}

func createPost(t *testing.T, svc feed.Service) *posts.Post {
	t.Helper()
	created, err := svc.CreatePost(context.Background(), posts.CreatePostRequest{Username: "alice", Content: "hello"})
	require.NoError(t, err)
	return created
}

func TestHandleLike(t *testing.T) {
	r, svc := newTestRouter()
	parent := createPost(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/posts/"+parent.ID+"/likes", strings.NewReader(`{"username":"bob"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var like likes.Like
	require.NoError(t, json.NewDecoder(w.Body).Decode(&like))
	assert.Equal(t, parent.ID, like.PostID)
	assert.Equal(t, "bob", like.Username)
	assert.False(t, like.LikedAt.IsZero())
}

func TestHandleLike_Duplicate(t *testing.T) {
	r, svc := newTestRouter()
	parent := createPost(t, svc)

	_, err := svc.LikePost(context.Background(), parent.ID, "bob")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/posts/"+parent.ID+"/likes", strings.NewReader(`{"username":"bob"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// A duplicate like is a client validation error, not a conflict
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, w.Body.String(), "already liked")
}

func TestHandleLike_PostMissing(t *testing.T) {
	r, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/posts/missing/likes", strings.NewReader(`{"username":"bob"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Post not found")
}

func TestHandleLike_MissingUsername(t *testing.T) {
	r, svc := newTestRouter()
	parent := createPost(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/posts/"+parent.ID+"/likes", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUnlike(t *testing.T) {
	r, svc := newTestRouter()
	parent := createPost(t, svc)

	_, err := svc.LikePost(context.Background(), parent.ID, "bob")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/"+parent.ID+"/likes?username=bob", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	// The like is gone; unliking again is a 404
	req = httptest.NewRequest(http.MethodDelete, "/api/posts/"+parent.ID+"/likes?username=bob", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Like not found")
}

func TestHandleUnlike_MissingUsername(t *testing.T) {
	r, svc := newTestRouter()
	parent := createPost(t, svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/"+parent.ID+"/likes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUnlike_PostNeverExisted(t *testing.T) {
	r, _ := newTestRouter()

	// Unliking under a missing post reports the like as not found; the
	// post's own existence is irrelevant here
	req := httptest.NewRequest(http.MethodDelete, "/api/posts/missing/likes?username=bob", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Like not found")
}
