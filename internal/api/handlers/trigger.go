package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// CycleTrigger defines the interface for starting a refresh cycle.
type CycleTrigger interface {
	TriggerAsync() bool
}

// CycleHandler handles manual refresh cycle requests.
type CycleHandler struct {
	engine CycleTrigger
}

// NewCycleHandler creates a new CycleHandler.
func NewCycleHandler(e CycleTrigger) *CycleHandler {
	return &CycleHandler{engine: e}
}

// TriggerCycleOutput is the response body for the cycle trigger endpoint.
type TriggerCycleOutput struct {
	Status int
	Body   struct {
		Status string `json:"status" example:"cycle started" doc:"Trigger outcome"`
	}
}

// Trigger starts a refresh cycle in the background. A trigger arriving
// while a cycle is running is rejected, never queued.
func (h *CycleHandler) Trigger(_ context.Context, _ *struct{}) (*TriggerCycleOutput, error) {
	if !h.engine.TriggerAsync() {
		return nil, huma.Error409Conflict("a cycle is already running")
	}

	resp := &TriggerCycleOutput{Status: http.StatusAccepted}
	resp.Body.Status = "cycle started"
	return resp, nil
}

// RegisterCycleRoutes registers cycle trigger endpoints with the Huma API.
func RegisterCycleRoutes(api huma.API, h *CycleHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "trigger-cycle",
		Method:        http.MethodPost,
		Path:          "/api/v1/cycles",
		Summary:       "Trigger a refresh cycle",
		Description:   "Starts an immediate refresh cycle unless one is already running.",
		Tags:          []string{"cycles"},
		DefaultStatus: http.StatusAccepted,
		Errors:        []int{http.StatusConflict},
	}, h.Trigger)
}
