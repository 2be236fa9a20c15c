package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-travel-planner/pkg/response"
)

// PlanTravel godoc
// @Summary     Plan a trip
// @Description Turns a free-text travel request into a personalized plan. Stage failures degrade to fallback content instead of failing the request.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Travel request"
// @Success     200  {object} planResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Request body too large"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     503  {object} response.Resp "Session store unavailable"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans [POST]
func (h *handler) PlanTravel(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		if errors.Is(err, errBodyTooLarge) {
			response.ErrorWithStatus(c, http.StatusRequestEntityTooLarge, err)
			return
		}
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PlanTravel(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.PlanTravel: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newPlanResp(output))
}

// GetSession godoc
// @Summary     Get a user's session
// @Description Returns the stored profile and recent conversation history.
// @Tags        Planner
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Session store unavailable"
// @Router      /api/v1/sessions/{user_id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	rec, err := h.uc.GetSession(ctx, c.Param("user_id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.GetSession: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(rec))
}

// ListTools godoc
// @Summary     List environment tools
// @Tags        Tools
// @Produce     json
// @Success     200 {object} listToolsResp
// @Router      /api/v1/tools [GET]
func (h *handler) ListTools(c *gin.Context) {
	response.OK(c, h.newListToolsResp(h.uc.ListTools()))
}

// InvokeTool godoc
// @Summary     Invoke an environment tool
// @Description Calls one tool directly. Tool failures come back as an "unavailable" result, not an error.
// @Tags        Tools
// @Accept      json
// @Produce     json
// @Param       name path string        true "Tool name"
// @Param       body body invokeToolReq true "Tool argument"
// @Success     200 {object} invokeToolResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown tool"
// @Router      /api/v1/tools/{name} [POST]
func (h *handler) InvokeTool(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInvokeToolReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.InvokeTool(ctx, req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newInvokeToolResp(output))
}
