package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type LikeStatusRequest struct {
	PostID *int `query:"postId"`
}

type LikeToggleRequest struct {
	PostID int `json:"postId"`
}

// LikeStatus handles GET /api/v1/likes
// @Summary Get like status of a post
// @Description Returns the total like count and whether the caller has liked the post; anonymous callers always see liked=false
// @Tags likes
// @Produce json
// @Param postId query int true "Post ID"
// @Success 200 {object} rest.Response
// @Failure 400,500 {object} rest.Response
// @Router /api/v1/likes [get]
func (h *Handler) LikeStatus(c echo.Context) error {
	var req LikeStatusRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request parameters")
	}

	if req.PostID == nil {
		return h.badRequest(c, nil, "postId is required")
	}

	status, err := h.m.LikeStatusFor(c.Request().Context(), h.identity(c), *req.PostID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: NewLikeStatus(*status)})
}

// ToggleLike handles POST /api/v1/likes
// @Summary Toggle the caller's like on a post
// @Description Flips between liked and not liked, returning the new state and a fresh total count
// @Tags likes
// @Accept json
// @Produce json
// @Param like body rest.LikeToggleRequest true "Post to toggle"
// @Success 200 {object} rest.Response
// @Failure 400,401,404,500 {object} rest.Response
// @Router /api/v1/likes [post]
func (h *Handler) ToggleLike(c echo.Context) error {
	var req LikeToggleRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	status, err := h.m.ToggleLike(c.Request().Context(), h.identity(c), req.PostID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: NewLikeStatus(*status)})
}
