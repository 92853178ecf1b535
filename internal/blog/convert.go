package blog

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

func NewCategory(c *db.Category) Category {
	return Category{Category: *c}
}

func NewCategories(list []db.Category) []Category {
	result := make([]Category, len(list))
	for i := range list {
		result[i] = NewCategory(&list[i])
	}
	return result
}

func NewPost(p *db.Post) Post {
	post := Post{Post: *p}

	if p.Category != nil {
		category := NewCategory(p.Category)
		post.Category = &category
	}

	return post
}

func NewPosts(list []db.Post) []Post {
	result := make([]Post, len(list))
	for i := range list {
		result[i] = NewPost(&list[i])
	}
	return result
}

func NewComment(c *db.Comment) Comment {
	return Comment{Comment: *c}
}

func NewComments(list []db.Comment) []Comment {
	result := make([]Comment, len(list))
	for i := range list {
		result[i] = NewComment(&list[i])
	}
	return result
}
