package blog

import (
	"log/slog"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

// Category mutation policies, see config.
const (
	CategoryRoleAnyAuthenticated = "any-authenticated"
	CategoryRoleAdminOnly        = "admin-only"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100

	maxCommentLen = 1000
	excerptLen    = 150
)

type Options struct {
	// CategoryMutationRole decides who may change categories:
	// CategoryRoleAnyAuthenticated or CategoryRoleAdminOnly.
	CategoryMutationRole string
}

type Manager struct {
	db           *db.Repository
	log          *slog.Logger
	categoryRole string
}

func NewManager(repo *db.Repository, logger *slog.Logger, opts Options) *Manager {
	role := opts.CategoryMutationRole
	if role == "" {
		role = CategoryRoleAnyAuthenticated
	}

	return &Manager{
		db:           repo,
		log:          logger,
		categoryRole: role,
	}
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func newPagination(page, pageSize, total int) Pagination {
	totalPages := (total + pageSize - 1) / pageSize

	return Pagination{
		Page:       page,
		Limit:      pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
