package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Aijazali515/AgriFarma/internal/model"
	"github.com/Aijazali515/AgriFarma/internal/repository"
	"github.com/Aijazali515/AgriFarma/internal/service"
)

type SearchHandler struct {
	catalogService service.CatalogService
	forumService   service.ForumService
	blogService    service.BlogService
}

func NewSearchHandler(
	catalogService service.CatalogService,
	forumService service.ForumService,
	blogService service.BlogService,
) *SearchHandler {
	return &SearchHandler{
		catalogService: catalogService,
		forumService:   forumService,
		blogService:    blogService,
	}
}

type searchResponse struct {
	Query    string           `json:"query"`
	Products []model.Product  `json:"products"`
	Threads  []model.Thread   `json:"threads"`
	Posts    []model.BlogPost `json:"posts"`
}

// Search runs the same substring query against products, forum threads and
// blog posts.
func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	query := strings.TrimSpace(c.QueryParam("q"))
	if len(query) < 2 {
		return c.JSON(http.StatusOK, searchResponse{Query: query})
	}

	page, err := h.catalogService.List(ctx, repository.ProductQuery{Search: query, PerPage: 10})
	if err != nil {
		return httpError(err)
	}
	threads, err := h.forumService.ListThreads(ctx, nil, query)
	if err != nil {
		return httpError(err)
	}
	posts, err := h.blogService.List(ctx, "", query)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, searchResponse{
		Query:    query,
		Products: page.Products,
		Threads:  threads,
		Posts:    posts,
	})
}
