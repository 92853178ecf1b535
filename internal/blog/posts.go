package blog

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

// PostFilter narrows the post list. Zero Page/PageSize fall back to
// defaults, an unset Sort means newest first.
type PostFilter struct {
	CategorySlug *string
	Status       *string
	Page         int
	PageSize     int
	Sort         string
}

// PostInput is the payload for creating a post.
type PostInput struct {
	Title         string
	Content       string
	Excerpt       *string
	Slug          *string
	Status        *string
	CoverImageURL *string
	CategoryID    *int
}

// PostUpdate is a partial update; nil fields are left untouched.
type PostUpdate struct {
	Title         *string
	Content       *string
	Excerpt       *string
	Slug          *string
	Status        *string
	CoverImageURL *string
	CategoryID    *int
}

func validStatus(status string) bool {
	switch status {
	case db.StatusDraft, db.StatusPublished, db.StatusArchived:
		return true
	}
	return false
}

// Posts retrieves one page of posts. Anonymous callers only ever see
// published posts; asking for another status requires authentication and
// is scoped to the caller's own posts unless the caller is an admin.
func (m *Manager) Posts(ctx context.Context, caller Identity, filter PostFilter) ([]Post, Pagination, error) {
	page, pageSize := normalizePage(filter.Page, filter.PageSize)

	sort := filter.Sort
	if sort == "" {
		sort = db.SortCreatedAt
	}
	if sort != db.SortCreatedAt && sort != db.SortViewCount {
		return nil, Pagination{}, validationf("unknown sort key %q", sort)
	}

	status := db.StatusPublished
	if filter.Status != nil {
		status = *filter.Status
	}
	if !validStatus(status) {
		return nil, Pagination{}, validationf("unknown status %q", status)
	}

	dbFilter := db.PostFilter{Status: &status}
	if status != db.StatusPublished {
		if !caller.Authenticated() {
			return nil, Pagination{}, ErrUnauthenticated
		}
		if caller.Role != RoleAdmin {
			dbFilter.AuthorID = &caller.UserID
		}
	}

	if filter.CategorySlug != nil {
		category, err := m.db.CategoryBySlug(ctx, *filter.CategorySlug)
		if err != nil {
			return nil, Pagination{}, fmt.Errorf("db get category by slug: %w", err)
		} else if category == nil {
			return nil, Pagination{}, ErrNotFound
		}
		dbFilter.CategoryID = &category.ID
	}

	dbPosts, err := m.db.Posts(ctx, dbFilter, page, pageSize, sort)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("db get posts: %w", err)
	}

	total, err := m.db.PostsCount(ctx, dbFilter)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("db get posts count: %w", err)
	}

	return NewPosts(dbPosts), newPagination(page, pageSize, total), nil
}

func (m *Manager) PostByID(ctx context.Context, postID int) (*Post, error) {
	dbPost, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if dbPost == nil {
		return nil, ErrNotFound
	}

	post := NewPost(dbPost)
	return &post, nil
}

// PostBySlug returns a published post and bumps its view counter in the
// background. The increment is best-effort: a failed bump is logged and
// never fails the read.
func (m *Manager) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	dbPost, err := m.db.PostBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get post by slug: %w", err)
	} else if dbPost == nil {
		return nil, ErrNotFound
	}

	go func(postID int) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := m.db.IncrementPostViews(ctx, postID); err != nil {
			m.log.Error("view count increment failed", "postId", postID, "error", err)
		}
	}(dbPost.ID)

	post := NewPost(dbPost)
	return &post, nil
}

func (m *Manager) CreatePost(ctx context.Context, caller Identity, in PostInput) (*Post, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}

	if in.Title == "" || in.Content == "" {
		return nil, validationf("title and content are required")
	}

	status := db.StatusPublished
	if in.Status != nil {
		status = *in.Status
	}
	if !validStatus(status) {
		return nil, validationf("unknown status %q", status)
	}

	slug, err := m.resolveSlug(ctx, in.Slug, in.Title)
	if err != nil {
		return nil, err
	}

	excerpt := in.Excerpt
	if excerpt == nil {
		e := makeExcerpt(in.Content)
		excerpt = &e
	}

	dbPost := &db.Post{
		Title:         in.Title,
		Slug:          slug,
		Content:       in.Content,
		Excerpt:       excerpt,
		Status:        status,
		CoverImageURL: in.CoverImageURL,
		AuthorID:      caller.UserID,
		CategoryID:    in.CategoryID,
		CreatedAt:     time.Now(),
	}

	if err := m.db.CreatePost(ctx, dbPost); err != nil {
		if db.IsIntegrityViolation(err) {
			return nil, fmt.Errorf("%w: slug %q is taken", ErrConflict, slug)
		}
		return nil, fmt.Errorf("db create post: %w", err)
	}

	post := NewPost(dbPost)
	return &post, nil
}

func (m *Manager) UpdatePost(ctx context.Context, caller Identity, postID int, in PostUpdate) (*Post, error) {
	dbPost, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if dbPost == nil {
		return nil, ErrNotFound
	}

	if err := ownerOnly(caller, dbPost.AuthorID); err != nil {
		return nil, err
	}

	var columns []string

	if in.Title != nil {
		if *in.Title == "" {
			return nil, validationf("title must not be empty")
		}
		dbPost.Title = *in.Title
		columns = append(columns, db.Columns.Post.Title)
	}

	if in.Content != nil {
		if *in.Content == "" {
			return nil, validationf("content must not be empty")
		}
		dbPost.Content = *in.Content
		columns = append(columns, db.Columns.Post.Content)
	}

	if in.Excerpt != nil {
		dbPost.Excerpt = in.Excerpt
		columns = append(columns, db.Columns.Post.Excerpt)
	}

	if in.Slug != nil {
		if !IsValidSlug(*in.Slug) {
			return nil, validationf("invalid slug %q", *in.Slug)
		}
		dbPost.Slug = *in.Slug
		columns = append(columns, db.Columns.Post.Slug)
	}

	if in.Status != nil {
		if !validStatus(*in.Status) {
			return nil, validationf("unknown status %q", *in.Status)
		}
		dbPost.Status = *in.Status
		columns = append(columns, db.Columns.Post.Status)
	}

	if in.CoverImageURL != nil {
		dbPost.CoverImageURL = in.CoverImageURL
		columns = append(columns, db.Columns.Post.CoverImageURL)
	}

	if in.CategoryID != nil {
		dbPost.CategoryID = in.CategoryID
		columns = append(columns, db.Columns.Post.CategoryID)
	}

	if len(columns) == 0 {
		return nil, validationf("no fields to update")
	}

	now := time.Now()
	dbPost.UpdatedAt = &now
	columns = append(columns, db.Columns.Post.UpdatedAt)

	found, err := m.db.UpdatePost(ctx, dbPost, columns...)
	if err != nil {
		if db.IsIntegrityViolation(err) {
			return nil, fmt.Errorf("%w: slug %q is taken", ErrConflict, dbPost.Slug)
		}
		return nil, fmt.Errorf("db update post: %w", err)
	} else if !found {
		return nil, ErrNotFound
	}

	return m.PostByID(ctx, postID)
}

func (m *Manager) DeletePost(ctx context.Context, caller Identity, postID int) error {
	dbPost, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("db get post by id: %w", err)
	} else if dbPost == nil {
		return ErrNotFound
	}

	if err := ownerOnly(caller, dbPost.AuthorID); err != nil {
		return err
	}

	if _, err := m.db.DeletePost(ctx, postID); err != nil {
		return fmt.Errorf("db delete post: %w", err)
	}

	return nil
}

// GenerateSlug produces a slug for a title that is unique among the
// currently stored posts.
func (m *Manager) GenerateSlug(ctx context.Context, title string) (string, error) {
	if title == "" {
		return "", validationf("title is required")
	}

	base := Slugify(title)
	if !IsValidSlug(base) {
		return "", validationf("cannot derive a slug from %q", title)
	}

	used, err := m.db.PostSlugs(ctx, base)
	if err != nil {
		return "", fmt.Errorf("db get post slugs: %w", err)
	}

	return UniqueSlug(base, used), nil
}

// resolveSlug picks the explicit slug when supplied, otherwise derives a
// unique one from the title.
func (m *Manager) resolveSlug(ctx context.Context, explicit *string, title string) (string, error) {
	if explicit != nil {
		if !IsValidSlug(*explicit) {
			return "", validationf("invalid slug %q", *explicit)
		}
		return *explicit, nil
	}

	return m.GenerateSlug(ctx, title)
}

func makeExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLen {
		return content
	}
	return string(runes[:excerptLen]) + "..."
}
