package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxBodyBytes caps request bodies. The request text itself has no length rule.
const maxBodyBytes = 1 << 20

var (
	errMissingToolName = errors.New("tool name is required")
	errBodyTooLarge    = errors.New("request body too large")
)

// processPlanReq binds and validates the plan request body.
func (h *handler) processPlanReq(c *gin.Context) (planReq, error) {
	var req planReq
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, errBodyTooLarge
		}
		return req, err
	}
	return req, nil
}

// processInvokeToolReq binds the tool argument body and the URI param.
func (h *handler) processInvokeToolReq(c *gin.Context) (invokeToolReq, error) {
	var req invokeToolReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Name = c.Param("name")
	if req.Name == "" {
		return req, errMissingToolName
	}
	return req, nil
}
