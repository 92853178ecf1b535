package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-portal/internal/blog"
)

type CommentsRequest struct {
	PostID *int `query:"postId"`
}

type CommentCreateRequest struct {
	PostID   int    `json:"postId"`
	Content  string `json:"content"`
	ParentID *int   `json:"parentId"`
}

type CommentUpdateRequest struct {
	Content string `json:"content"`
}

// Comments handles GET /api/v1/comments
// @Summary List comments of a post
// @Description Retrieves all comments of a post, newest first
// @Tags comments
// @Produce json
// @Param postId query int true "Post ID"
// @Success 200 {object} rest.Response
// @Failure 400,500 {object} rest.Response
// @Router /api/v1/comments [get]
func (h *Handler) Comments(c echo.Context) error {
	var req CommentsRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request parameters")
	}

	if req.PostID == nil {
		return h.badRequest(c, nil, "postId is required")
	}

	comments, err := h.m.CommentsByPost(c.Request().Context(), *req.PostID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: NewComments(comments)})
}

// CreateComment handles POST /api/v1/comments
// @Summary Create a comment
// @Description Creates a comment owned by the authenticated caller; content is limited to 1000 characters
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body rest.CommentCreateRequest true "Comment payload"
// @Success 201 {object} rest.Response
// @Failure 400,401,404,500 {object} rest.Response
// @Router /api/v1/comments [post]
func (h *Handler) CreateComment(c echo.Context) error {
	var req CommentCreateRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	comment, err := h.m.CreateComment(c.Request().Context(), h.identity(c), blog.CommentInput{
		PostID:   req.PostID,
		Content:  req.Content,
		ParentID: req.ParentID,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    NewComment(*comment),
		Message: "comment created",
	})
}

// UpdateComment handles PUT /api/v1/comments/:id
// @Summary Update a comment
// @Description Replaces the content of a comment; only the owner may do this
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param comment body rest.CommentUpdateRequest true "New content"
// @Success 200 {object} rest.Response
// @Failure 400,401,403,404,500 {object} rest.Response
// @Router /api/v1/comments/{id} [put]
func (h *Handler) UpdateComment(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c, err, "invalid id")
	}

	var req CommentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	comment, err := h.m.UpdateComment(c.Request().Context(), h.identity(c), id, req.Content)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    NewComment(*comment),
		Message: "comment updated",
	})
}

// DeleteComment handles DELETE /api/v1/comments/:id
// @Summary Delete a comment
// @Description Physically deletes a comment; only the owner may do this
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} rest.Response
// @Failure 400,401,403,404,500 {object} rest.Response
// @Router /api/v1/comments/{id} [delete]
func (h *Handler) DeleteComment(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c, err, "invalid id")
	}

	if err := h.m.DeleteComment(c.Request().Context(), h.identity(c), id); err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Response{Success: true, Message: "comment deleted"})
}
