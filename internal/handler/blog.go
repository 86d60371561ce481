package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/middleware"
	"github.com/Aijazali515/AgriFarma/internal/service"
	"github.com/Aijazali515/AgriFarma/internal/uploads"
)

type BlogHandler struct {
	blogService service.BlogService
	store       *uploads.Store
}

func NewBlogHandler(blogService service.BlogService, store *uploads.Store) *BlogHandler {
	return &BlogHandler{blogService: blogService, store: store}
}

func (h *BlogHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	posts, err := h.blogService.List(ctx, c.QueryParam("category"), c.QueryParam("search"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	post, err := h.blogService.Create(ctx, middleware.UserID(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

func (h *BlogHandler) View(c echo.Context) error {
	ctx := c.Request().Context()

	postID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	view, err := h.blogService.View(ctx, postID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *BlogHandler) Comment(c echo.Context) error {
	ctx := c.Request().Context()

	postID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	comment, err := h.blogService.Comment(ctx, middleware.UserID(c), postID, req.Content)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

func (h *BlogHandler) ToggleLike(c echo.Context) error {
	ctx := c.Request().Context()

	postID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	liked, count, err := h.blogService.ToggleLike(ctx, middleware.UserID(c), postID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"liked": liked, "likes": count})
}

// UploadMedia stores a media file for embedding in a post. The returned
// filename goes into the post's media_files list.
func (h *BlogHandler) UploadMedia(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	filename, err := h.store.Save(fileHeader)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"filename": filename})
}
