package blog

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

type CategoryInput struct {
	Name        string
	Slug        string
	Description *string
	Color       *string
}

type CategoryUpdate struct {
	Name        *string
	Slug        *string
	Description *string
	Color       *string
}

// Categories retrieves all categories ordered by name. When withPostCount
// is set, each category carries the number of its published posts.
func (m *Manager) Categories(ctx context.Context, withPostCount bool) ([]Category, error) {
	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	categories := NewCategories(list)

	if withPostCount {
		for i := range categories {
			count, err := m.db.PublishedPostCount(ctx, categories[i].ID)
			if err != nil {
				return nil, fmt.Errorf("db count posts in category: %w", err)
			}
			categories[i].PostCount = &count
		}
	}

	return categories, nil
}

func (m *Manager) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	dbCategory, err := m.db.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get category by slug: %w", err)
	} else if dbCategory == nil {
		return nil, ErrNotFound
	}

	category := NewCategory(dbCategory)
	return &category, nil
}

func (m *Manager) CreateCategory(ctx context.Context, caller Identity, in CategoryInput) (*Category, error) {
	if err := m.categoryMutationAllowed(caller); err != nil {
		return nil, err
	}

	if in.Name == "" || in.Slug == "" {
		return nil, validationf("name and slug are required")
	}
	if !IsValidSlug(in.Slug) {
		return nil, validationf("invalid slug %q", in.Slug)
	}

	dbCategory := &db.Category{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Color:       in.Color,
	}

	if err := m.db.CreateCategory(ctx, dbCategory); err != nil {
		if db.IsIntegrityViolation(err) {
			return nil, fmt.Errorf("%w: category name or slug is taken", ErrConflict)
		}
		return nil, fmt.Errorf("db create category: %w", err)
	}

	category := NewCategory(dbCategory)
	return &category, nil
}

func (m *Manager) UpdateCategory(ctx context.Context, caller Identity, categoryID int, in CategoryUpdate) (*Category, error) {
	if err := m.categoryMutationAllowed(caller); err != nil {
		return nil, err
	}

	dbCategory, err := m.db.CategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	} else if dbCategory == nil {
		return nil, ErrNotFound
	}

	var columns []string

	if in.Name != nil {
		if *in.Name == "" {
			return nil, validationf("name must not be empty")
		}
		dbCategory.Name = *in.Name
		columns = append(columns, db.Columns.Category.Name)
	}

	if in.Slug != nil {
		if !IsValidSlug(*in.Slug) {
			return nil, validationf("invalid slug %q", *in.Slug)
		}
		dbCategory.Slug = *in.Slug
		columns = append(columns, db.Columns.Category.Slug)
	}

	if in.Description != nil {
		dbCategory.Description = in.Description
		columns = append(columns, db.Columns.Category.Description)
	}

	if in.Color != nil {
		dbCategory.Color = in.Color
		columns = append(columns, db.Columns.Category.Color)
	}

	if len(columns) == 0 {
		return nil, validationf("no fields to update")
	}

	found, err := m.db.UpdateCategory(ctx, dbCategory, columns...)
	if err != nil {
		if db.IsIntegrityViolation(err) {
			return nil, fmt.Errorf("%w: category name or slug is taken", ErrConflict)
		}
		return nil, fmt.Errorf("db update category: %w", err)
	} else if !found {
		return nil, ErrNotFound
	}

	category := NewCategory(dbCategory)
	return &category, nil
}

func (m *Manager) DeleteCategory(ctx context.Context, caller Identity, categoryID int) error {
	if err := m.categoryMutationAllowed(caller); err != nil {
		return err
	}

	found, err := m.db.DeleteCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("db delete category: %w", err)
	} else if !found {
		return ErrNotFound
	}

	return nil
}

// categoryMutationAllowed gates category writes. Categories are shared
// taxonomy without an owner, so the policy comes from configuration
// instead of an ownership check.
func (m *Manager) categoryMutationAllowed(caller Identity) error {
	if !caller.Authenticated() {
		return ErrUnauthenticated
	}
	if m.categoryRole == CategoryRoleAdminOnly && caller.Role != RoleAdmin {
		return ErrForbidden
	}
	return nil
}
