package blog

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

type CommentInput struct {
	PostID   int
	Content  string
	ParentID *int
}

func validateCommentContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", validationf("comment content is required")
	}
	if utf8.RuneCountInString(content) > maxCommentLen {
		return "", validationf("comment content must be at most %d characters", maxCommentLen)
	}
	return content, nil
}

// CommentsByPost retrieves all comments of a post, newest first.
func (m *Manager) CommentsByPost(ctx context.Context, postID int) ([]Comment, error) {
	list, err := m.db.CommentsByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get comments: %w", err)
	}

	return NewComments(list), nil
}

func (m *Manager) CreateComment(ctx context.Context, caller Identity, in CommentInput) (*Comment, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}

	if in.PostID <= 0 {
		return nil, validationf("postId is required")
	}

	content, err := validateCommentContent(in.Content)
	if err != nil {
		return nil, err
	}

	dbComment := &db.Comment{
		PostID:    in.PostID,
		UserID:    caller.UserID,
		Content:   content,
		ParentID:  in.ParentID,
		CreatedAt: time.Now(),
	}

	if err := m.db.CreateComment(ctx, dbComment); err != nil {
		// FK violation means the post (or parent comment) is gone.
		if db.IsIntegrityViolation(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db create comment: %w", err)
	}

	comment := NewComment(dbComment)
	return &comment, nil
}

func (m *Manager) UpdateComment(ctx context.Context, caller Identity, commentID int, content string) (*Comment, error) {
	dbComment, err := m.db.CommentByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("db get comment by id: %w", err)
	} else if dbComment == nil {
		return nil, ErrNotFound
	}

	if err := ownerOnly(caller, dbComment.UserID); err != nil {
		return nil, err
	}

	content, err = validateCommentContent(content)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dbComment.Content = content
	dbComment.UpdatedAt = &now

	found, err := m.db.UpdateComment(ctx, dbComment,
		db.Columns.Comment.Content, db.Columns.Comment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db update comment: %w", err)
	} else if !found {
		return nil, ErrNotFound
	}

	comment := NewComment(dbComment)
	return &comment, nil
}

func (m *Manager) DeleteComment(ctx context.Context, caller Identity, commentID int) error {
	dbComment, err := m.db.CommentByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("db get comment by id: %w", err)
	} else if dbComment == nil {
		return ErrNotFound
	}

	if err := ownerOnly(caller, dbComment.UserID); err != nil {
		return err
	}

	if _, err := m.db.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("db delete comment: %w", err)
	}

	return nil
}
