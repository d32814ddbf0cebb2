package likes

import "time"

// Like represents a unique (post, user) appreciation marker.
// Likes have no independent identifier; the (PostID, Username) pair is
// the composite key they are looked up and removed by.
type Like struct {
	LikedAt  time.Time `json:"likedAt"`
	PostID   string    `json:"postId"`
	Username string    `json:"username"`
}
