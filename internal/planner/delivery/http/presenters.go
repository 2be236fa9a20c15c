package http

import (
	"time"

	"smart-travel-planner/internal/agent"
	"smart-travel-planner/internal/itinerary"
	"smart-travel-planner/internal/model"
	"smart-travel-planner/internal/planner"
	"smart-travel-planner/internal/session"
)

// --- Request DTOs ---

type planReq struct {
	UserID  string `json:"user_id" binding:"required,max=128"`
	Request string `json:"request"`
}

func (r planReq) toInput() planner.PlanTravelInput {
	return planner.PlanTravelInput{
		UserID:  r.UserID,
		Request: r.Request,
	}
}

// ---

type invokeToolReq struct {
	Name     string `json:"-"` // populated from URI param
	Argument string `json:"argument" binding:"max=1000"`
}

func (r invokeToolReq) toInput() planner.InvokeToolInput {
	return planner.InvokeToolInput{
		Name:     r.Name,
		Argument: r.Argument,
	}
}

// --- Response DTOs ---

// planResp mirrors planner.PlanResponse field for field.
type planResp struct {
	UserID            string                        `json:"userId"`
	Timestamp         time.Time                     `json:"timestamp"`
	Profile           model.UserProfile             `json:"profile"`
	Request           planner.ResolvedRequest       `json:"request"`
	Knowledge         string                        `json:"knowledge"`
	CurrentConditions planner.CurrentConditions     `json:"currentConditions"`
	Analysis          itinerary.DestinationAnalysis `json:"analysis"`
	Itinerary         itinerary.Itinerary           `json:"itinerary"`
	Recommendations   []string                      `json:"recommendations"`
	NextSteps         []string                      `json:"nextSteps"`
}

func (h *handler) newPlanResp(out planner.PlanResponse) planResp {
	return planResp(out)
}

type sessionResp struct {
	ID                  string                      `json:"id"`
	Profile             model.UserProfile           `json:"profile"`
	ConversationHistory []session.ConversationEntry `json:"conversationHistory"`
	CreatedAt           time.Time                   `json:"createdAt"`
	LastActiveAt        time.Time                   `json:"lastActiveAt"`
}

func (h *handler) newSessionResp(rec session.Record) sessionResp {
	return sessionResp{
		ID:                  rec.ID,
		Profile:             rec.Profile,
		ConversationHistory: rec.ConversationHistory,
		CreatedAt:           rec.CreatedAt,
		LastActiveAt:        rec.LastActiveAt,
	}
}

type toolResp struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type listToolsResp struct {
	Tools []toolResp `json:"tools"`
}

func (h *handler) newListToolsResp(infos []agent.ToolInfo) listToolsResp {
	out := make([]toolResp, len(infos))
	for i, info := range infos {
		out[i] = toolResp{Name: info.Name, Description: info.Description}
	}
	return listToolsResp{Tools: out}
}

type invokeToolResp struct {
	Tool   string `json:"tool"`
	Result string `json:"result"`
}

func (h *handler) newInvokeToolResp(out planner.InvokeToolOutput) invokeToolResp {
	return invokeToolResp{Tool: out.Tool, Result: out.Result}
}
