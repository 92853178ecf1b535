package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// Post sort keys accepted by Posts.
const (
	SortCreatedAt = "created_at"
	SortViewCount = "view_count"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// IsIntegrityViolation reports whether err is a unique or foreign key
// constraint violation returned by the database.
func IsIntegrityViolation(err error) bool {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		return pgErr.IntegrityViolation()
	}
	return false
}

// PostFilter narrows post list and count queries. Nil fields are ignored.
type PostFilter struct {
	Status     *string
	CategoryID *int
	AuthorID   *string
}

func (r *Repository) applyPostFilter(query *pg.Query, f PostFilter) *pg.Query {
	if f.Status != nil {
		query = query.Where(`"t"."status" = ?`, *f.Status)
	}

	if f.CategoryID != nil {
		query = query.Where(`"t"."category_id" = ?`, *f.CategoryID)
	}

	if f.AuthorID != nil {
		query = query.Where(`"t"."author_id" = ?`, *f.AuthorID)
	}

	return query
}

// Posts retrieves posts matching the filter, with pagination.
// Results include category information and are sorted by the given
// sort column DESC (created_at or view_count).
func (r *Repository) Posts(ctx context.Context, filter PostFilter,
	page, pageSize int, sort string) ([]Post, error) {

	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	if sort != SortCreatedAt && sort != SortViewCount {
		return nil, fmt.Errorf("unknown sort column: %q", sort)
	}

	offset := (page - 1) * pageSize

	var posts []Post
	query := r.db.ModelContext(ctx, &posts).
		Relation("Category")

	query = r.applyPostFilter(query, filter)

	err := query.
		OrderExpr(`"t".? DESC`, pg.Ident(sort)).
		Limit(pageSize).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) PostsCount(ctx context.Context, filter PostFilter) (int, error) {
	query := r.db.ModelContext(ctx, (*Post)(nil))
	query = r.applyPostFilter(query, filter)

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get posts count: %w", err)
	}

	return count, nil
}

// PostByID returns a post of any status, or nil when no row matches.
func (r *Repository) PostByID(ctx context.Context, postID int) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Relation("Category").
		Where(`"t"."id" = ?`, postID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// PostBySlug returns a published post by its slug, or nil when no row matches.
func (r *Repository) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Relation("Category").
		Where(`"t"."status" = ?`, StatusPublished).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return post, nil
}

// PostSlugs returns all slugs starting with the given base, used for
// unique slug resolution.
func (r *Repository) PostSlugs(ctx context.Context, base string) ([]string, error) {
	var slugs []string
	err := r.db.ModelContext(ctx, (*Post)(nil)).
		Column("slug").
		Where(`"t"."slug" LIKE ?`, base+"%").
		Select(&slugs)

	if err != nil {
		return nil, fmt.Errorf("failed to query post slugs: %w", err)
	}

	return slugs, nil
}

func (r *Repository) CreatePost(ctx context.Context, post *Post) error {
	_, err := r.db.ModelContext(ctx, post).Returning("*").Insert()
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// UpdatePost updates only the given columns of the post identified by its
// primary key. Returns false when the post does not exist.
func (r *Repository) UpdatePost(ctx context.Context, post *Post, columns ...string) (bool, error) {
	res, err := r.db.ModelContext(ctx, post).
		Column(columns...).
		WherePK().
		Update()

	if err != nil {
		return false, fmt.Errorf("failed to update post: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeletePost(ctx context.Context, postID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."id" = ?`, postID).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// IncrementPostViews bumps the view counter of a post by one.
func (r *Repository) IncrementPostViews(ctx context.Context, postID int) error {
	_, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Set(`"view_count" = "view_count" + 1`).
		Where(`"t"."id" = ?`, postID).
		Update()

	if err != nil {
		return fmt.Errorf("failed to increment post views: %w", err)
	}

	return nil
}

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."id" = ?`, categoryID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return category, nil
}

func (r *Repository) CreateCategory(ctx context.Context, category *Category) error {
	_, err := r.db.ModelContext(ctx, category).Returning("*").Insert()
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

func (r *Repository) UpdateCategory(ctx context.Context, category *Category, columns ...string) (bool, error) {
	res, err := r.db.ModelContext(ctx, category).
		Column(columns...).
		WherePK().
		Update()

	if err != nil {
		return false, fmt.Errorf("failed to update category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, categoryID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"t"."id" = ?`, categoryID).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// PublishedPostCount returns the number of published posts in a category.
func (r *Repository) PublishedPostCount(ctx context.Context, categoryID int) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."category_id" = ?`, categoryID).
		Where(`"t"."status" = ?`, StatusPublished).
		Count()

	if err != nil {
		return 0, fmt.Errorf("failed to count posts in category: %w", err)
	}

	return count, nil
}

// CommentsByPostID retrieves all comments of a post, newest first.
func (r *Repository) CommentsByPostID(ctx context.Context, postID int) ([]Comment, error) {
	var comments []Comment
	err := r.db.ModelContext(ctx, &comments).
		Where(`"t"."post_id" = ?`, postID).
		OrderExpr(`"t"."created_at" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

func (r *Repository) CommentByID(ctx context.Context, commentID int) (*Comment, error) {
	comment := &Comment{}
	err := r.db.ModelContext(ctx, comment).
		Where(`"t"."id" = ?`, commentID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

func (r *Repository) CreateComment(ctx context.Context, comment *Comment) error {
	_, err := r.db.ModelContext(ctx, comment).Returning("*").Insert()
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

func (r *Repository) UpdateComment(ctx context.Context, comment *Comment, columns ...string) (bool, error) {
	res, err := r.db.ModelContext(ctx, comment).
		Column(columns...).
		WherePK().
		Update()

	if err != nil {
		return false, fmt.Errorf("failed to update comment: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteComment(ctx context.Context, commentID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"t"."id" = ?`, commentID).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) LikeCount(ctx context.Context, postID int) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Like)(nil)).
		Where(`"t"."post_id" = ?`, postID).
		Count()

	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}

func (r *Repository) HasLike(ctx context.Context, postID int, userID string) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*Like)(nil)).
		Where(`"t"."post_id" = ?`, postID).
		Where(`"t"."user_id" = ?`, userID).
		Exists()

	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}

	return exists, nil
}

// InsertLike inserts a like row, ignoring a concurrent duplicate.
// The unique index on (post_id, user_id) is the source of truth: an
// insert racing with an identical one comes back with zero rows affected.
func (r *Repository) InsertLike(ctx context.Context, like *Like) (bool, error) {
	res, err := r.db.ModelContext(ctx, like).
		OnConflict("DO NOTHING").
		Insert()

	if err != nil {
		return false, fmt.Errorf("failed to insert like: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// DeleteLike removes the like of a user on a post, reporting whether a row
// was actually deleted.
func (r *Repository) DeleteLike(ctx context.Context, postID int, userID string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Like)(nil)).
		Where(`"t"."post_id" = ?`, postID).
		Where(`"t"."user_id" = ?`, userID).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
