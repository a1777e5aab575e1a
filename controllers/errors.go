package controllers

import (
	"errors"
	"strconv"

	"fooddelivery/pkg/resp"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id path parameter. Non-numeric, negative, or zero ids
// get a 400 immediately; the caller just returns when ok is false.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// respondError maps the service failure taxonomy onto HTTP status codes:
// NotFound -> 404, every business-rule violation -> 400.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidReference),
		errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrConflict):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
