package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"devconnect/internal/auth"
	apperrors "devconnect/internal/errors"
	"devconnect/internal/service"
)

// PostHandler handles post, like and comment endpoints.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// PostRequest represents a new post.
type PostRequest struct {
	Text string `json:"text" validate:"required"`
}

// CommentRequest represents a new comment on a post.
type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body PostRequest true "Post text"
// @Success 201 {object} model.Post
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ValidationErrorResponse
// @Router /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return unauthenticated()
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.NewValidationResponse(err))
	}

	post, err := h.postService.Create(c.Request().Context(), callerID, req.Text)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, post)
}

// List godoc
// @Summary List all posts, newest first
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Post
// @Failure 401 {object} errors.ErrorResponse
// @Router /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.postService.List(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, posts)
}

// Get godoc
// @Summary Get a post by id
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param postId path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{postId} [get]
func (h *PostHandler) Get(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		return httpError(c, apperrors.ErrPostNotFound)
	}

	post, err := h.postService.Get(c.Request().Context(), postID)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary Delete a post (author only)
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param postId path string true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{postId} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return unauthenticated()
	}

	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		return httpError(c, apperrors.ErrPostNotFound)
	}

	if err := h.postService.Delete(c.Request().Context(), callerID, postID); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "post removed"})
}

// Like godoc
// @Summary Like a post
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param postId path string true "Post ID"
// @Success 200 {array} model.Like
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /posts/like/{postId} [put]
func (h *PostHandler) Like(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return unauthenticated()
	}

	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		return httpError(c, apperrors.ErrPostNotFound)
	}

	likes, err := h.postService.Like(c.Request().Context(), callerID, postID)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, likes)
}

// Unlike godoc
// @Summary Remove the caller's like from a post
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param postId path string true "Post ID"
// @Success 200 {array} model.Like
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/unlike/{postId} [put]
func (h *PostHandler) Unlike(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return unauthenticated()
	}

	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		return httpError(c, apperrors.ErrPostNotFound)
	}

	likes, err := h.postService.Unlike(c.Request().Context(), callerID, postID)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, likes)
}

// AddComment godoc
// @Summary Comment on a post
// @Tags posts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param postId path string true "Post ID"
// @Param request body CommentRequest true "Comment text"
// @Success 201 {array} model.Comment
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ValidationErrorResponse
// @Router /posts/comment/{postId} [post]
func (h *PostHandler) AddComment(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return unauthenticated()
	}

	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		return httpError(c, apperrors.ErrPostNotFound)
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.NewValidationResponse(err))
	}

	comments, err := h.postService.AddComment(c.Request().Context(), callerID, postID, req.Text)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, comments)
}

// RemoveComment godoc
// @Summary Remove a comment (comment author only)
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param postId path string true "Post ID"
// @Param commentId path string true "Comment ID"
// @Success 200 {array} model.Comment
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/comment/{postId}/{commentId} [delete]
func (h *PostHandler) RemoveComment(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return unauthenticated()
	}

	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		return httpError(c, apperrors.ErrPostNotFound)
	}
	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		return httpError(c, apperrors.ErrCommentNotFound)
	}

	comments, err := h.postService.RemoveComment(c.Request().Context(), callerID, postID, commentID)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, comments)
}
