package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tally/internal/apperr"
	"github.com/lshigami/Tally/internal/dto"
)

// Status maps a store error to the HTTP status the caller should see.
func Status(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrDuplicateName):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrLockContention):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes err as an ErrorResponse with message as the headline.
func Fail(ctx *gin.Context, message string, err error) {
	ctx.JSON(Status(err), dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}

// BadRequest rejects input that never reached the store.
func BadRequest(ctx *gin.Context, message string, err error) {
	resp := dto.ErrorResponse{Message: message}
	if err != nil {
		resp.Details = []string{err.Error()}
	}
	ctx.JSON(http.StatusBadRequest, resp)
}

// ParseID reads a positive integer path parameter.
func ParseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil || id == 0 {
		BadRequest(ctx, "Invalid "+param+" format", err)
		return 0, false
	}
	return uint(id), true
}
