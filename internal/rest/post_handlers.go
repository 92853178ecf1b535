package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-portal/internal/blog"
)

type PostsRequest struct {
	Page     *int    `query:"page"`
	Limit    *int    `query:"limit"`
	Category *string `query:"category"`
	Status   *string `query:"status"`
	Sort     *string `query:"sort"`
}

type PostCreateRequest struct {
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	Excerpt       *string `json:"excerpt"`
	Slug          *string `json:"slug"`
	Status        *string `json:"status"`
	CoverImageURL *string `json:"coverImageUrl"`
	CategoryID    *int    `json:"categoryId"`
}

type PostUpdateRequest struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	Excerpt       *string `json:"excerpt"`
	Slug          *string `json:"slug"`
	Status        *string `json:"status"`
	CoverImageURL *string `json:"coverImageUrl"`
	CategoryID    *int    `json:"categoryId"`
}

type GenerateSlugRequest struct {
	Title string `json:"title"`
}

// Posts handles GET /api/v1/posts
// @Summary List posts
// @Description Retrieves one page of posts, newest first. Published posts only for anonymous callers; drafts require authentication and are scoped to the caller.
// @Tags posts
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param category query string false "Filter by category slug"
// @Param status query string false "Filter by status (default: published)"
// @Param sort query string false "Sort column: created_at or view_count"
// @Success 200 {object} rest.Response
// @Failure 400,401,404,500 {object} rest.Response
// @Router /api/v1/posts [get]
func (h *Handler) Posts(c echo.Context) error {
	var req PostsRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request parameters")
	}

	filter := blog.PostFilter{
		CategorySlug: req.Category,
		Status:       req.Status,
	}

	if req.Page != nil {
		if *req.Page < 1 {
			return h.badRequest(c, nil, "invalid page")
		}
		filter.Page = *req.Page
	}

	if req.Limit != nil {
		if *req.Limit < 1 || *req.Limit > 100 {
			return h.badRequest(c, nil, "invalid limit")
		}
		filter.PageSize = *req.Limit
	}

	if req.Sort != nil {
		filter.Sort = *req.Sort
	}

	posts, pagination, err := h.m.Posts(c.Request().Context(), h.identity(c), filter)
	if err != nil {
		return h.handleError(c, err)
	}

	page := NewPagination(pagination)

	return c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       NewPosts(posts),
		Pagination: &page,
	})
}

// PostByID handles GET /api/v1/posts/:id
// @Summary Get post by ID
// @Description Retrieves a single post of any status by numeric ID, with category information
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} rest.Response
// @Failure 400,404,500 {object} rest.Response
// @Router /api/v1/posts/{id} [get]
func (h *Handler) PostByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c, err, "invalid id")
	}

	post, err := h.m.PostByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: NewPost(*post)})
}

// PostBySlug handles GET /api/v1/posts/slug/:slug
// @Summary Get published post by slug
// @Description Retrieves a published post by its slug and bumps the view counter in the background
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} rest.Response
// @Failure 404,500 {object} rest.Response
// @Router /api/v1/posts/slug/{slug} [get]
func (h *Handler) PostBySlug(c echo.Context) error {
	post, err := h.m.PostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: NewPost(*post)})
}

// CreatePost handles POST /api/v1/posts
// @Summary Create a post
// @Description Creates a post owned by the authenticated caller. The slug is derived from the title when not supplied.
// @Tags posts
// @Accept json
// @Produce json
// @Param post body rest.PostCreateRequest true "Post payload"
// @Success 201 {object} rest.Response
// @Failure 400,401,409,500 {object} rest.Response
// @Router /api/v1/posts [post]
func (h *Handler) CreatePost(c echo.Context) error {
	var req PostCreateRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	post, err := h.m.CreatePost(c.Request().Context(), h.identity(c), blog.PostInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Slug:          req.Slug,
		Status:        req.Status,
		CoverImageURL: req.CoverImageURL,
		CategoryID:    req.CategoryID,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    NewPost(*post),
		Message: "post created",
	})
}

// UpdatePost handles PUT /api/v1/posts/:id
// @Summary Update a post
// @Description Partially updates a post; only the owner may do this
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body rest.PostUpdateRequest true "Fields to update"
// @Success 200 {object} rest.Response
// @Failure 400,401,403,404,409,500 {object} rest.Response
// @Router /api/v1/posts/{id} [put]
func (h *Handler) UpdatePost(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c, err, "invalid id")
	}

	var req PostUpdateRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	post, err := h.m.UpdatePost(c.Request().Context(), h.identity(c), id, blog.PostUpdate{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Slug:          req.Slug,
		Status:        req.Status,
		CoverImageURL: req.CoverImageURL,
		CategoryID:    req.CategoryID,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    NewPost(*post),
		Message: "post updated",
	})
}

// DeletePost handles DELETE /api/v1/posts/:id
// @Summary Delete a post
// @Description Physically deletes a post; only the owner may do this
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} rest.Response
// @Failure 400,401,403,404,500 {object} rest.Response
// @Router /api/v1/posts/{id} [delete]
func (h *Handler) DeletePost(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c, err, "invalid id")
	}

	if err := h.m.DeletePost(c.Request().Context(), h.identity(c), id); err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Response{Success: true, Message: "post deleted"})
}

// GenerateSlug handles POST /api/v1/posts/generate-slug
// @Summary Generate a unique slug
// @Description Derives a slug from a title that is unique among stored posts
// @Tags posts
// @Accept json
// @Produce json
// @Param title body rest.GenerateSlugRequest true "Title"
// @Success 200 {object} rest.Response
// @Failure 400,500 {object} rest.Response
// @Router /api/v1/posts/generate-slug [post]
func (h *Handler) GenerateSlug(c echo.Context) error {
	var req GenerateSlugRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	slug, err := h.m.GenerateSlug(c.Request().Context(), req.Title)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: SlugResult{Slug: slug}})
}
