package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/middleware"
	"github.com/Aijazali515/AgriFarma/internal/service"
)

type ConsultancyHandler struct {
	consultancyService service.ConsultancyService
	messageService     service.MessageService
}

func NewConsultancyHandler(consultancyService service.ConsultancyService, messageService service.MessageService) *ConsultancyHandler {
	return &ConsultancyHandler{
		consultancyService: consultancyService,
		messageService:     messageService,
	}
}

func (h *ConsultancyHandler) Directory(c echo.Context) error {
	ctx := c.Request().Context()

	consultants, err := h.consultancyService.Directory(ctx, c.QueryParam("category"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, consultants)
}

func (h *ConsultancyHandler) Apply(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ConsultantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	consultant, err := h.consultancyService.Apply(ctx, middleware.UserID(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, consultant)
}

func (h *ConsultancyHandler) MyApplication(c echo.Context) error {
	ctx := c.Request().Context()

	consultant, err := h.consultancyService.MyApplication(ctx, middleware.UserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, consultant)
}

// ---- messaging ----

func (h *ConsultancyHandler) SendMessage(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.MessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	message, err := h.messageService.Send(ctx, middleware.UserID(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, message)
}

func (h *ConsultancyHandler) Inbox(c echo.Context) error {
	ctx := c.Request().Context()

	messages, err := h.messageService.Inbox(ctx, middleware.UserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, messages)
}

func (h *ConsultancyHandler) Sent(c echo.Context) error {
	ctx := c.Request().Context()

	messages, err := h.messageService.Sent(ctx, middleware.UserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, messages)
}

func (h *ConsultancyHandler) MarkRead(c echo.Context) error {
	ctx := c.Request().Context()

	messageID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.messageService.MarkRead(ctx, middleware.UserID(c), messageID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "marked as read"})
}

func (h *ConsultancyHandler) UnreadCount(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := h.messageService.UnreadCount(ctx, middleware.UserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"unread": count})
}
