package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-travel-planner/internal/planner"
	"smart-travel-planner/pkg/response"
)

// respondError maps use-case errors to HTTP statuses. Unknown errors are
// reported as 500 without leaking their text.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrInvalidUserID):
		response.Error(c, err, nil)
	case errors.Is(err, planner.ErrSessionNotFound), errors.Is(err, planner.ErrToolNotFound):
		response.NotFound(c, err)
	case errors.Is(err, planner.ErrSessionUnavailable):
		response.ErrorWithStatus(c, http.StatusServiceUnavailable, planner.ErrSessionUnavailable)
	default:
		response.InternalError(c, err)
	}
}
