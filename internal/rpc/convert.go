package rpc

import "github.com/daniilsolovey/blog-portal/internal/blog"

type Posts []Post
type Categories []Category

func NewCategory(c blog.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Color:       c.Color,
	}
}

func NewCategories(list []blog.Category) Categories {
	result := make(Categories, len(list))
	for i := range list {
		result[i] = NewCategory(list[i])
	}
	return result
}

func NewPost(p blog.Post) Post {
	post := Post{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Content:       p.Content,
		Excerpt:       p.Excerpt,
		CoverImageURL: p.CoverImageURL,
		ViewCount:     p.ViewCount,
		AuthorID:      p.AuthorID,
		CategoryID:    p.CategoryID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	if p.Category != nil {
		category := NewCategory(*p.Category)
		post.Category = &category
	}

	return post
}

func NewPosts(list []blog.Post) Posts {
	result := make(Posts, len(list))
	for i := range list {
		result[i] = NewPost(list[i])
	}
	return result
}
