package rest

import "time"

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	PostCount   *int    `json:"postCount,omitempty"`
}

type Post struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       *string    `json:"excerpt"`
	Status        string     `json:"status"`
	CoverImageURL *string    `json:"coverImageUrl"`
	ViewCount     int        `json:"viewCount"`
	AuthorID      string     `json:"authorId"`
	CategoryID    *int       `json:"categoryId"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt"`
	Category      *Category  `json:"category,omitempty"`
}

type Comment struct {
	ID        int        `json:"id"`
	PostID    int        `json:"postId"`
	UserID    string     `json:"userId"`
	Content   string     `json:"content"`
	ParentID  *int       `json:"parentId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

type LikeStatus struct {
	Liked      bool `json:"liked"`
	TotalLikes int  `json:"totalLikes"`
}

type SlugResult struct {
	Slug string `json:"slug"`
}
