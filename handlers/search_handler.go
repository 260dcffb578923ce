package handlers

import (
	"strings"

	"orgsite-cms/helper"
	"orgsite-cms/services"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService services.SearchService
	Helper        *helper.HTTPHelper
}

func NewSearchHandler(searchService services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService, Helper: &helper.HTTPHelper{}}
}

// Search runs the site-wide text search over news and events.
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	result, err := h.searchService.Search(query, pageQuery(c), searchPerPage)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", result)
}
