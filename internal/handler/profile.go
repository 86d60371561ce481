package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/middleware"
	"github.com/Aijazali515/AgriFarma/internal/service"
	"github.com/Aijazali515/AgriFarma/internal/uploads"
)

type ProfileHandler struct {
	profileService service.ProfileService
	store          *uploads.Store
}

func NewProfileHandler(profileService service.ProfileService, store *uploads.Store) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, store: store}
}

func (h *ProfileHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	view, err := h.profileService.View(ctx, middleware.UserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// ViewUser serves another member's public profile.
func (h *ProfileHandler) ViewUser(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	view, err := h.profileService.View(ctx, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *ProfileHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.profileService.Update(ctx, middleware.UserID(c), req); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "profile updated"})
}

func (h *ProfileHandler) UploadDisplayPicture(c echo.Context) error {
	ctx := c.Request().Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	filename, err := h.store.Save(fileHeader)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.profileService.SetDisplayPicture(ctx, middleware.UserID(c), filename); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"filename": filename})
}
