package rpc

import "time"

type PostsFilter struct {
	Category *string `json:"category"`
	Page     *int    `json:"page"`
	PageSize *int    `json:"pageSize"`
}

type CountFilter struct {
	Category *string `json:"category"`
}

type PostBySlugRequest struct {
	Slug string `json:"slug"`
}

type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type Post struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       *string    `json:"excerpt"`
	CoverImageURL *string    `json:"coverImageUrl"`
	ViewCount     int        `json:"viewCount"`
	AuthorID      string     `json:"authorId"`
	CategoryID    *int       `json:"categoryId"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt"`
	Category      *Category  `json:"category,omitempty"`
}
