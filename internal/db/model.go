// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

var Columns = struct {
	Category struct {
		ID, Name, Slug, Description, Color string
	}
	Comment struct {
		ID, PostID, UserID, Content, ParentID, CreatedAt, UpdatedAt string

		Post string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Like struct {
		ID, PostID, UserID, CreatedAt string

		Post string
	}
	Post struct {
		ID, Title, Slug, Content, Excerpt, Status, CoverImageURL, ViewCount, AuthorID, CategoryID, CreatedAt, UpdatedAt string

		Category string
	}
}{
	Category: struct {
		ID, Name, Slug, Description, Color string
	}{
		ID:          "id",
		Name:        "name",
		Slug:        "slug",
		Description: "description",
		Color:       "color",
	},
	Comment: struct {
		ID, PostID, UserID, Content, ParentID, CreatedAt, UpdatedAt string

		Post string
	}{
		ID:        "id",
		PostID:    "post_id",
		UserID:    "user_id",
		Content:   "content",
		ParentID:  "parent_id",
		CreatedAt: "created_at",
		UpdatedAt: "updated_at",

		Post: "Post",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Like: struct {
		ID, PostID, UserID, CreatedAt string

		Post string
	}{
		ID:        "id",
		PostID:    "post_id",
		UserID:    "user_id",
		CreatedAt: "created_at",

		Post: "Post",
	},
	Post: struct {
		ID, Title, Slug, Content, Excerpt, Status, CoverImageURL, ViewCount, AuthorID, CategoryID, CreatedAt, UpdatedAt string

		Category string
	}{
		ID:            "id",
		Title:         "title",
		Slug:          "slug",
		Content:       "content",
		Excerpt:       "excerpt",
		Status:        "status",
		CoverImageURL: "cover_image_url",
		ViewCount:     "view_count",
		AuthorID:      "author_id",
		CategoryID:    "category_id",
		CreatedAt:     "created_at",
		UpdatedAt:     "updated_at",

		Category: "Category",
	},
}

var Tables = struct {
	Category struct {
		Name, Alias string
	}
	Comment struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Like struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
}{
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Like: struct {
		Name, Alias string
	}{
		Name:  "likes",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int     `pg:"id,pk"`
	Name        string  `pg:"name,use_zero"`
	Slug        string  `pg:"slug,use_zero"`
	Description *string `pg:"description"`
	Color       *string `pg:"color"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID        int        `pg:"id,pk"`
	PostID    int        `pg:"post_id,use_zero"`
	UserID    string     `pg:"user_id,use_zero"`
	Content   string     `pg:"content,use_zero"`
	ParentID  *int       `pg:"parent_id"`
	CreatedAt time.Time  `pg:"created_at,use_zero"`
	UpdatedAt *time.Time `pg:"updated_at"`

	Post *Post `pg:"fk:post_id,rel:has-one"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Like struct {
	tableName struct{} `pg:"likes,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	PostID    int       `pg:"post_id,use_zero"`
	UserID    string    `pg:"user_id,use_zero"`
	CreatedAt time.Time `pg:"created_at,use_zero"`

	Post *Post `pg:"fk:post_id,rel:has-one"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID            int        `pg:"id,pk"`
	Title         string     `pg:"title,use_zero"`
	Slug          string     `pg:"slug,use_zero"`
	Content       string     `pg:"content,use_zero"`
	Excerpt       *string    `pg:"excerpt"`
	Status        string     `pg:"status,use_zero"`
	CoverImageURL *string    `pg:"cover_image_url"`
	ViewCount     int        `pg:"view_count,use_zero"`
	AuthorID      string     `pg:"author_id,use_zero"`
	CategoryID    *int       `pg:"category_id"`
	CreatedAt     time.Time  `pg:"created_at,use_zero"`
	UpdatedAt     *time.Time `pg:"updated_at"`

	Category *Category `pg:"fk:category_id,rel:has-one"`
}
