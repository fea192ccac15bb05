package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kakwa/immowatch/internal/api/handlers"
)

// mockCycleTrigger is a test double for CycleTrigger.
type mockCycleTrigger struct {
	accepted bool
}

func (m *mockCycleTrigger) TriggerAsync() bool {
	return m.accepted
}

func TestTriggerCycle_Accepted(t *testing.T) {
	t.Parallel()

	h := handlers.NewCycleHandler(&mockCycleTrigger{accepted: true})

	_, api := humatest.New(t)
	handlers.RegisterCycleRoutes(api, h)

	resp := api.Post("/api/v1/cycles")
	require.Equal(t, http.StatusAccepted, resp.Code)
	assert.Contains(t, resp.Body.String(), "cycle started")
}

func TestTriggerCycle_AlreadyRunning(t *testing.T) {
	t.Parallel()

	h := handlers.NewCycleHandler(&mockCycleTrigger{accepted: false})

	_, api := humatest.New(t)
	handlers.RegisterCycleRoutes(api, h)

	resp := api.Post("/api/v1/cycles")
	assert.Equal(t, http.StatusConflict, resp.Code)
}
