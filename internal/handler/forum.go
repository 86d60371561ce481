package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/middleware"
	"github.com/Aijazali515/AgriFarma/internal/service"
)

type ForumHandler struct {
	forumService service.ForumService
}

func NewForumHandler(forumService service.ForumService) *ForumHandler {
	return &ForumHandler{forumService: forumService}
}

func (h *ForumHandler) Categories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.forumService.Categories(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *ForumHandler) ListThreads(c echo.Context) error {
	ctx := c.Request().Context()

	var categoryID *uint
	if raw := c.QueryParam("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid category_id")
		}
		v := uint(id)
		categoryID = &v
	}

	threads, err := h.forumService.ListThreads(ctx, categoryID, c.QueryParam("search"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, threads)
}

func (h *ForumHandler) CreateThread(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ThreadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	thread, err := h.forumService.CreateThread(ctx, middleware.UserID(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, thread)
}

func (h *ForumHandler) ViewThread(c echo.Context) error {
	ctx := c.Request().Context()

	threadID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	view, err := h.forumService.ViewThread(ctx, threadID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// DeleteThread removes a thread with its posts and likes. Allowed for the
// author and for admins.
func (h *ForumHandler) DeleteThread(c echo.Context) error {
	ctx := c.Request().Context()

	threadID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.forumService.DeleteThread(ctx, middleware.UserID(c), middleware.Role(c), threadID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "thread deleted"})
}

func (h *ForumHandler) Reply(c echo.Context) error {
	ctx := c.Request().Context()

	threadID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.PostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	post, err := h.forumService.Reply(ctx, middleware.UserID(c), threadID, req.Content)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

func (h *ForumHandler) ToggleLike(c echo.Context) error {
	ctx := c.Request().Context()

	postID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	liked, count, err := h.forumService.ToggleLike(ctx, middleware.UserID(c), postID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"liked": liked, "likes": count})
}
