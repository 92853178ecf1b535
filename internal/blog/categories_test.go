package blog

import (
	"errors"
	"testing"
)

func TestManager_Categories_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	t.Run("ReturnsAllCategoriesSortedByName", func(t *testing.T) {
		categories, err := manager.Categories(ctx, false)
		if err != nil {
			t.Fatalf("Categories: %v", err)
		}
		if len(categories) != 5 {
			t.Fatalf("expected 5 categories, got %d", len(categories))
		}
		for i := 0; i < len(categories)-1; i++ {
			if categories[i].Name > categories[i+1].Name {
				t.Fatalf("categories not sorted by name ASC at index %d", i)
			}
		}
		if categories[0].PostCount != nil {
			t.Fatal("postCount must be omitted when not requested")
		}
	})

	t.Run("PostCountCoversPublishedOnly", func(t *testing.T) {
		categories, err := manager.Categories(ctx, true)
		if err != nil {
			t.Fatalf("Categories: %v", err)
		}

		counts := make(map[string]int, len(categories))
		for _, c := range categories {
			if c.PostCount == nil {
				t.Fatalf("category %q has no postCount", c.Slug)
			}
			counts[c.Slug] = *c.PostCount
		}

		// technology holds 3 published posts and 1 draft.
		if counts["technology"] != 3 {
			t.Fatalf("expected 3 published technology posts, got %d", counts["technology"])
		}
		if counts["travel"] != 1 {
			t.Fatalf("expected 1 published travel post, got %d", counts["travel"])
		}
	})
}

func TestManager_CategoryBySlug_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	category, err := manager.CategoryBySlug(ctx, "food")
	if err != nil {
		t.Fatalf("CategoryBySlug: %v", err)
	}
	if category.Name != "Food" {
		t.Fatalf("expected Food, got %q", category.Name)
	}

	if _, err := manager.CategoryBySlug(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestManager_CategoryMutations_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	t.Run("AnonymousIsUnauthenticated", func(t *testing.T) {
		_, err := manager.CreateCategory(ctx, Identity{}, CategoryInput{Name: "Music", Slug: "music"})
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("AuthenticatedUserCanCreate", func(t *testing.T) {
		category, err := manager.CreateCategory(ctx, alice(), CategoryInput{Name: "Music", Slug: "music"})
		if err != nil {
			t.Fatalf("CreateCategory: %v", err)
		}
		if category.ID == 0 {
			t.Fatal("expected assigned category id")
		}
	})

	t.Run("DuplicateNameConflicts", func(t *testing.T) {
		_, err := manager.CreateCategory(ctx, alice(), CategoryInput{Name: "Technology", Slug: "tech-2"})
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("DuplicateSlugConflicts", func(t *testing.T) {
		_, err := manager.CreateCategory(ctx, alice(), CategoryInput{Name: "Tech Again", Slug: "technology"})
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("UpdateAndDelete", func(t *testing.T) {
		category, err := manager.UpdateCategory(ctx, bob(), 5, CategoryUpdate{Name: strPtr("Daily Notes")})
		if err != nil {
			t.Fatalf("UpdateCategory: %v", err)
		}
		if category.Name != "Daily Notes" {
			t.Fatalf("name not updated: %q", category.Name)
		}

		if err := manager.DeleteCategory(ctx, bob(), 5); err != nil {
			t.Fatalf("DeleteCategory: %v", err)
		}
		if err := manager.DeleteCategory(ctx, bob(), 5); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound on second delete, got %v", err)
		}
	})

	t.Run("DeleteDetachesPostsInsteadOfDeletingThem", func(t *testing.T) {
		// Category 2 (travel) holds post 3.
		if err := manager.DeleteCategory(ctx, bob(), 2); err != nil {
			t.Fatalf("DeleteCategory: %v", err)
		}

		post, err := manager.PostByID(ctx, 3)
		if err != nil {
			t.Fatalf("PostByID: %v", err)
		}
		if post.CategoryID != nil {
			t.Fatalf("expected post 3 to be detached, got category %d", *post.CategoryID)
		}
	})
}

func TestManager_CategoryAdminOnlyPolicy_Integration(t *testing.T) {
	ctx, manager := withTxOpts(t, Options{CategoryMutationRole: CategoryRoleAdminOnly})

	t.Run("RegularUserIsForbidden", func(t *testing.T) {
		_, err := manager.CreateCategory(ctx, alice(), CategoryInput{Name: "Music", Slug: "music"})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("AnonymousIsStillUnauthenticated", func(t *testing.T) {
		_, err := manager.CreateCategory(ctx, Identity{}, CategoryInput{Name: "Music", Slug: "music"})
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("AdminCanMutate", func(t *testing.T) {
		if _, err := manager.CreateCategory(ctx, admin(), CategoryInput{Name: "Music", Slug: "music"}); err != nil {
			t.Fatalf("CreateCategory as admin: %v", err)
		}
	})
}
