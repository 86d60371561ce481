package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/middleware"
	"github.com/Aijazali515/AgriFarma/internal/repository"
	"github.com/Aijazali515/AgriFarma/internal/service"
)

type ShopHandler struct {
	catalogService service.CatalogService
}

func NewShopHandler(catalogService service.CatalogService) *ShopHandler {
	return &ShopHandler{catalogService: catalogService}
}

func (h *ShopHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	q := repository.ProductQuery{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Sort:     c.QueryParam("sort"),
		Page:     intQuery(c, "page", 1),
		PerPage:  intQuery(c, "per_page", 12),
	}

	page, err := h.catalogService.List(ctx, q)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *ShopHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.catalogService.Detail(ctx, productID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *ShopHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	product, err := h.catalogService.Create(ctx, middleware.UserID(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *ShopHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.catalogService.Update(ctx, middleware.UserID(c), middleware.Role(c), productID, req); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product updated"})
}

func (h *ShopHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.catalogService.Delete(ctx, middleware.UserID(c), middleware.Role(c), productID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product deleted"})
}

// SubmitReview queues a review for moderation; it is not visible until
// approved.
func (h *ShopHandler) SubmitReview(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.catalogService.SubmitReview(ctx, middleware.UserID(c), productID, req); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "review submitted for approval"})
}
