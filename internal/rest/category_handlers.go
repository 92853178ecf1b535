package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-portal/internal/blog"
)

type CategoriesRequest struct {
	IncludePostCount bool `query:"includePostCount"`
}

type CategoryCreateRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type CategoryUpdateRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type CategoryPostsRequest struct {
	Page  *int    `query:"page"`
	Limit *int    `query:"limit"`
	Sort  *string `query:"sort"`
}

// Categories handles GET /api/v1/categories
// @Summary List categories
// @Description Retrieves all categories ordered by name, optionally with published post counts
// @Tags categories
// @Produce json
// @Param includePostCount query bool false "Include published post counts"
// @Success 200 {object} rest.Response
// @Failure 400,500 {object} rest.Response
// @Router /api/v1/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	var req CategoriesRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request parameters")
	}

	categories, err := h.m.Categories(c.Request().Context(), req.IncludePostCount)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: NewCategories(categories)})
}

// CreateCategory handles POST /api/v1/categories
// @Summary Create a category
// @Description Creates a category; requires authentication, and the admin role when so configured
// @Tags categories
// @Accept json
// @Produce json
// @Param category body rest.CategoryCreateRequest true "Category payload"
// @Success 201 {object} rest.Response
// @Failure 400,401,403,409,500 {object} rest.Response
// @Router /api/v1/categories [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	var req CategoryCreateRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	category, err := h.m.CreateCategory(c.Request().Context(), h.identity(c), blog.CategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    NewCategory(*category),
		Message: "category created",
	})
}

// UpdateCategory handles PUT /api/v1/categories/:id
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body rest.CategoryUpdateRequest true "Fields to update"
// @Success 200 {object} rest.Response
// @Failure 400,401,403,404,409,500 {object} rest.Response
// @Router /api/v1/categories/{id} [put]
func (h *Handler) UpdateCategory(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c, err, "invalid id")
	}

	var req CategoryUpdateRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	category, err := h.m.UpdateCategory(c.Request().Context(), h.identity(c), id, blog.CategoryUpdate{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    NewCategory(*category),
		Message: "category updated",
	})
}

// DeleteCategory handles DELETE /api/v1/categories/:id
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} rest.Response
// @Failure 400,401,403,404,500 {object} rest.Response
// @Router /api/v1/categories/{id} [delete]
func (h *Handler) DeleteCategory(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c, err, "invalid id")
	}

	if err := h.m.DeleteCategory(c.Request().Context(), h.identity(c), id); err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Response{Success: true, Message: "category deleted"})
}

// CategoryPosts handles GET /api/v1/categories/:slug/posts
// @Summary List published posts of a category
// @Description Retrieves one page of published posts belonging to the category identified by slug
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.Response
// @Failure 400,404,500 {object} rest.Response
// @Router /api/v1/categories/{slug}/posts [get]
func (h *Handler) CategoryPosts(c echo.Context) error {
	var req CategoryPostsRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request parameters")
	}

	slug := c.Param("slug")
	filter := blog.PostFilter{CategorySlug: &slug}

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
