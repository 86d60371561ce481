package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/middleware"
	"github.com/Aijazali515/AgriFarma/internal/service"
)

type CartHandler struct {
	cartService     service.CartService
	checkoutService service.CheckoutService
}

func NewCartHandler(cartService service.CartService, checkoutService service.CheckoutService) *CartHandler {
	return &CartHandler{cartService: cartService, checkoutService: checkoutService}
}

func (h *CartHandler) ViewCart(c echo.Context) error {
	ctx := c.Request().Context()

	cart, err := h.cartService.ViewCart(ctx, middleware.UserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.cartService.AddToCart(ctx, middleware.UserID(c), req.ProductID, req.Quantity); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "added to cart"})
}

// UpdateItem sets an item's quantity; zero removes the item.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()

	itemID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.cartService.UpdateItem(ctx, middleware.UserID(c), itemID, req.Quantity); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "cart updated"})
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	itemID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.cartService.RemoveItem(ctx, middleware.UserID(c), itemID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "item removed"})
}

// Checkout turns the caller's cart into an order. A declined payment is a
// 200 with status "failed", not an HTTP error: the order exists in the
// store either way.
func (h *CartHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.checkoutService.Checkout(ctx, middleware.UserID(c), req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}
