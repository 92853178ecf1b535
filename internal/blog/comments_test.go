package blog

import (
	"errors"
	"strings"
	"testing"
)

func TestManager_CommentsByPost_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	t.Run("ReturnsCommentsNewestFirst", func(t *testing.T) {
		comments, err := manager.CommentsByPost(ctx, 1)
		if err != nil {
			t.Fatalf("CommentsByPost: %v", err)
		}
		if len(comments) != 2 {
			t.Fatalf("expected 2 comments on post 1, got %d", len(comments))
		}
		for i := 0; i < len(comments)-1; i++ {
			if comments[i].CreatedAt.Before(comments[i+1].CreatedAt) {
				t.Fatalf("comments not sorted by createdAt desc at index %d", i)
			}
		}
	})

	t.Run("PostWithoutCommentsIsEmptyNotError", func(t *testing.T) {
		comments, err := manager.CommentsByPost(ctx, 2)
		if err != nil {
			t.Fatalf("CommentsByPost: %v", err)
		}
		if len(comments) != 0 {
			t.Fatalf("expected no comments, got %d", len(comments))
		}
	})
}

func TestManager_CreateComment_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	t.Run("RequiresAuthentication", func(t *testing.T) {
		_, err := manager.CreateComment(ctx, Identity{}, CommentInput{PostID: 1, Content: "hi"})
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("ContentBounds", func(t *testing.T) {
		if _, err := manager.CreateComment(ctx, bob(), CommentInput{PostID: 1, Content: "   "}); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation for blank content, got %v", err)
		}

		tooLong := strings.Repeat("a", 1001)
		if _, err := manager.CreateComment(ctx, bob(), CommentInput{PostID: 1, Content: tooLong}); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation for 1001 characters, got %v", err)
		}

		// 1 and 1000 characters are both inside the limit.
		if _, err := manager.CreateComment(ctx, bob(), CommentInput{PostID: 1, Content: "a"}); err != nil {
			t.Fatalf("expected single character to pass, got %v", err)
		}
		atLimit := strings.Repeat("b", 1000)
		if _, err := manager.CreateComment(ctx, bob(), CommentInput{PostID: 1, Content: atLimit}); err != nil {
			t.Fatalf("expected 1000 characters to pass, got %v", err)
		}
	})

	t.Run("TrimsSurroundingWhitespace", func(t *testing.T) {
		comment, err := manager.CreateComment(ctx, bob(), CommentInput{PostID: 1, Content: "  trimmed  "})
		if err != nil {
			t.Fatalf("CreateComment: %v", err)
		}
		if comment.Content != "trimmed" {
			t.Fatalf("expected trimmed content, got %q", comment.Content)
		}
		if comment.UserID != bob().UserID {
			t.Fatalf("expected caller as comment author, got %q", comment.UserID)
		}
	})

	t.Run("UnknownPostIsNotFound", func(t *testing.T) {
		_, err := manager.CreateComment(ctx, bob(), CommentInput{PostID: 99999, Content: "hi"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ReplyToExistingComment", func(t *testing.T) {
		parent := 1
		comment, err := manager.CreateComment(ctx, alice(), CommentInput{PostID: 1, Content: "reply", ParentID: &parent})
		if err != nil {
			t.Fatalf("CreateComment: %v", err)
		}
		if comment.ParentID == nil || *comment.ParentID != parent {
			t.Fatalf("expected parentId %d, got %v", parent, comment.ParentID)
		}
	})
}

func TestManager_UpdateComment_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	// Comment 1 belongs to bob.
	t.Run("OwnerCanUpdate", func(t *testing.T) {
		comment, err := manager.UpdateComment(ctx, bob(), 1, "edited")
		if err != nil {
			t.Fatalf("UpdateComment: %v", err)
		}
		if comment.Content != "edited" {
			t.Fatalf("content not updated: %q", comment.Content)
		}
		if comment.UpdatedAt == nil {
			t.Fatal("expected updatedAt to be set")
		}
	})

	t.Run("NonOwnerIsForbidden", func(t *testing.T) {
		if _, err := manager.UpdateComment(ctx, alice(), 1, "hijacked"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("AnonymousIsUnauthenticated", func(t *testing.T) {
		if _, err := manager.UpdateComment(ctx, Identity{}, 1, "hijacked"); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("UnknownCommentIsNotFound", func(t *testing.T) {
		if _, err := manager.UpdateComment(ctx, bob(), 99999, "x"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestManager_DeleteComment_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	t.Run("NonOwnerIsForbidden", func(t *testing.T) {
		if err := manager.DeleteComment(ctx, alice(), 1); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("OwnerCanDelete", func(t *testing.T) {
		if err := manager.DeleteComment(ctx, bob(), 1); err != nil {
			t.Fatalf("DeleteComment: %v", err)
		}
		if err := manager.DeleteComment(ctx, bob(), 1); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound on second delete, got %v", err)
		}
	})
}
