package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aijazali515/AgriFarma/internal/service"
)

type AdminHandler struct {
	adminService       service.AdminService
	consultancyService service.ConsultancyService
	trendDays          int
}

func NewAdminHandler(adminService service.AdminService, consultancyService service.ConsultancyService, trendDays int) *AdminHandler {
	return &AdminHandler{
		adminService:       adminService,
		consultancyService: consultancyService,
		trendDays:          trendDays,
	}
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	days := intQuery(c, "days", h.trendDays)
	dashboard, err := h.adminService.Dashboard(ctx, days)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dashboard)
}

func (h *AdminHandler) Report(c echo.Context) error {
	ctx := c.Request().Context()

	q := service.ReportQuery{
		Start:         c.QueryParam("start"),
		End:           c.QueryParam("end"),
		LowThreshold:  intQuery(c, "low_threshold", 0),
		Status:        c.QueryParam("status"),
		CustomerEmail: c.QueryParam("customer_email"),
	}

	report, err := h.adminService.Report(ctx, q)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// ExportSalesCSV streams the sales report as a CSV attachment.
func (h *AdminHandler) ExportSalesCSV(c echo.Context) error {
	ctx := c.Request().Context()

	data, filename, err := h.adminService.SalesCSV(ctx, c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return httpError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}

// ---- users ----

func (h *AdminHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.adminService.ListUsers(ctx, c.QueryParam("email"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

func (h *AdminHandler) SetUserActive(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.adminService.SetUserActive(ctx, userID, req.Active); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user updated"})
}

// ---- moderation ----

type moderationRequest struct {
	Action string `json:"action"`
}

func (h *AdminHandler) ModerationQueue(c echo.Context) error {
	ctx := c.Request().Context()

	products, posts, err := h.adminService.ModerationQueue(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"products":   products,
		"blog_posts": posts,
	})
}

func (h *AdminHandler) PendingReviews(c echo.Context) error {
	ctx := c.Request().Context()

	reviews, err := h.adminService.PendingReviews(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *AdminHandler) ModerateProduct(c echo.Context) error {
	return h.moderate(c, h.adminService.ModerateProduct)
}

func (h *AdminHandler) ModerateBlogPost(c echo.Context) error {
	return h.moderate(c, h.adminService.ModerateBlogPost)
}

func (h *AdminHandler) ModerateReview(c echo.Context) error {
	return h.moderate(c, h.adminService.ModerateReview)
}

func (h *AdminHandler) moderate(c echo.Context, apply func(ctx context.Context, id uint, action string) error) error {
	ctx := c.Request().Context()

	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var req moderationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := apply(ctx, id, req.Action); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "done"})
}

// ---- consultants ----

func (h *AdminHandler) PendingConsultants(c echo.Context) error {
	ctx := c.Request().Context()

	consultants, err := h.consultancyService.Pending(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, consultants)
}

type consultantStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) SetConsultantStatus(c echo.Context) error {
	ctx := c.Request().Context()

	consultantID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var req consultantStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.adminService.SetConsultantStatus(ctx, consultantID, req.Status); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "consultant updated"})
}
