package rest

import "github.com/daniilsolovey/blog-portal/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c blog.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Color:       c.Color,
		PostCount:   c.PostCount,
	}
}

func NewCategories(list []blog.Category) []Category {
	return Map(list, NewCategory)
}

func NewPost(p blog.Post) Post {
	post := Post{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Content:       p.Content,
		Excerpt:       p.Excerpt,
		Status:        p.Status,
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

func NewPosts(list []blog.Post) []Post {
	return Map(list, NewPost)
}

func NewComment(c blog.Comment) Comment {
	return Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewComments(list []blog.Comment) []Comment {
	return Map(list, NewComment)
}

func NewLikeStatus(s blog.LikeStatus) LikeStatus {
	return LikeStatus{
		Liked:      s.Liked,
		TotalLikes: s.TotalLikes,
	}
}

func NewPagination(p blog.Pagination) Pagination {
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}
