package handlers

import (
	"errors"
	"strconv"

	"orgsite-cms/helper"
	"orgsite-cms/models"

	"github.com/gin-gonic/gin"
)

// Default page sizes per listing.
const (
	newsPerPage     = 6
	commentsPerPage = 10
	eventsPerPage   = 6
	searchPerPage   = 10
)

// sendServiceError maps the service error taxonomy onto responses.
// Known conditions become user-facing messages; anything else is a
// generic server error.
func sendServiceError(h *helper.HTTPHelper, c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		h.SendNotFoundError(c, err.Error(), h.EmptyJsonMap())
	case errors.Is(err, models.ErrWeakPassword),
		errors.Is(err, models.ErrDuplicateUsername):
		h.SendBadRequest(c, err.Error(), h.EmptyJsonMap())
	case errors.Is(err, models.ErrInvalidCredentials):
		h.SendUnauthorizedError(c, err.Error(), h.EmptyJsonMap())
	default:
		h.SendInternalError(c, "Internal server error", h.EmptyJsonMap())
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func pageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}
