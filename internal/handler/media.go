package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aijazali515/AgriFarma/internal/uploads"
)

type MediaHandler struct {
	store *uploads.Store
}

func NewMediaHandler(store *uploads.Store) *MediaHandler {
	return &MediaHandler{store: store}
}

// Serve returns a stored upload by filename. The store rejects path
// traversal before any file is touched.
func (h *MediaHandler) Serve(c echo.Context) error {
	path, err := h.store.Path(c.Param("filename"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "file not found")
	}
	return c.File(path)
}
