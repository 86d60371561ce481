package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aijazali515/AgriFarma/internal/middleware"
	"github.com/Aijazali515/AgriFarma/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) History(c echo.Context) error {
	ctx := c.Request().Context()

	from, err := dateQuery(c, "from")
	if err != nil {
		return err
	}
	to, err := dateQuery(c, "to")
	if err != nil {
		return err
	}

	page, err := h.orderService.History(ctx, middleware.UserID(c), from, to, intQuery(c, "page", 1))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *OrderHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.orderService.Get(ctx, middleware.UserID(c), middleware.Role(c), orderID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, detail)
}
