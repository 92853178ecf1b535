package rpc

import (
	"context"
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blog-portal/internal/blog"
)

//go:generate zenrpc

// BlogService provides read-only RPC methods over the published catalog.
type BlogService struct {
	zenrpc.Service
	manager *blog.Manager
}

func NewBlogService(manager *blog.Manager) *BlogService {
	return &BlogService{manager: manager}
}

// List retrieves published posts with optional category filter, paginated
// and sorted by creation time DESC.
//
//zenrpc:category optional category slug filter
//zenrpc:page=1 page number (1-based)
//zenrpc:pageSize=10 items per page
//zenrpc:return list of posts
//zenrpc:500 internal server error
func (s *BlogService) List(ctx context.Context, filter PostsFilter) (Posts, error) {
	blogFilter := blog.PostFilter{
		CategorySlug: filter.Category,
	}
	if filter.Page != nil {
		blogFilter.Page = *filter.Page
	}
	if filter.PageSize != nil {
		blogFilter.PageSize = *filter.PageSize
	}

	posts, _, err := s.manager.Posts(ctx, blog.Identity{}, blogFilter)
	if err != nil {
		return nil, err
	}

	return NewPosts(posts), nil
}

// Count returns the number of published posts matching the optional
// category filter.
//
//zenrpc:category optional category slug filter
//zenrpc:return count of posts
//zenrpc:500 internal server error
func (s *BlogService) Count(ctx context.Context, filter CountFilter) (int, error) {
	blogFilter := blog.PostFilter{
		CategorySlug: filter.Category,
		PageSize:     1,
	}

	_, pagination, err := s.manager.Posts(ctx, blog.Identity{}, blogFilter)
	if err != nil {
		return 0, err
	}

	return pagination.Total, nil
}

// BySlug retrieves a single published post by its slug.
//
//zenrpc:slug post slug
//zenrpc:return post with full content
//zenrpc:400 slug must not be empty
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) BySlug(ctx context.Context, req PostBySlugRequest) (*Post, error) {
	if req.Slug == "" {
		return nil, zenrpc.NewStringError(400, "slug must not be empty")
	}

	blogPost, err := s.manager.PostBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			return nil, zenrpc.NewStringError(404, "post not found")
		}
		return nil, err
	}

	post := NewPost(*blogPost)
	return &post, nil
}

// Categories retrieves all categories ordered by name.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *BlogService) Categories(ctx context.Context) (Categories, error) {
	categories, err := s.manager.Categories(ctx, false)
	if err != nil {
		return nil, err
	}

	return NewCategories(categories), nil
}
