package blog

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

// LikeStatusFor returns the total like count of a post and whether the
// caller has liked it. Anonymous callers get liked=false.
func (m *Manager) LikeStatusFor(ctx context.Context, caller Identity, postID int) (*LikeStatus, error) {
	if postID <= 0 {
		return nil, validationf("postId is required")
	}

	total, err := m.db.LikeCount(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db count likes: %w", err)
	}

	liked := false
	if caller.Authenticated() {
		liked, err = m.db.HasLike(ctx, postID, caller.UserID)
		if err != nil {
			return nil, fmt.Errorf("db check like: %w", err)
		}
	}

	return &LikeStatus{Liked: liked, TotalLikes: total}, nil
}

// ToggleLike flips the caller's like on a post and returns the new state
// with a fresh total. The delete-then-insert order makes the unique index
// the only arbiter: a toggle racing an identical one ends up liked once,
// never twice.
func (m *Manager) ToggleLike(ctx context.Context, caller Identity, postID int) (*LikeStatus, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}

	if postID <= 0 {
		return nil, validationf("postId is required")
	}

	deleted, err := m.db.DeleteLike(ctx, postID, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("db delete like: %w", err)
	}

	liked := false
	if !deleted {
		like := &db.Like{
			PostID:    postID,
			UserID:    caller.UserID,
			CreatedAt: time.Now(),
		}

		if _, err := m.db.InsertLike(ctx, like); err != nil {
			// FK violation means the post is gone.
			if db.IsIntegrityViolation(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("db insert like: %w", err)
		}
		liked = true
	}

	total, err := m.db.LikeCount(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db count likes: %w", err)
	}

	return &LikeStatus{Liked: liked, TotalLikes: total}, nil
}
