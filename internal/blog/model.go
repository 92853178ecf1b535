package blog

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

type Category struct {
	db.Category

	// PostCount is filled only when post counts are requested.
	PostCount *int
}

type Post struct {
	db.Post
	Category *Category
}

type Comment struct {
	db.Comment
}

// LikeStatus is the observable state of the like toggle for one caller.
type LikeStatus struct {
	Liked      bool
	TotalLikes int
}

// Pagination describes one page of a list result.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}
