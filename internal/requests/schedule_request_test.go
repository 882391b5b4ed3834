package requests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestProcessesDefaults(t *testing.T) {
	body := `{
		"processes": [
			{"arrivalTime": 0, "burstTime": 5},
			{"id": 7, "arrivalTime": 1, "burstTime": 3, "priority": 0}
		],
		"algorithm": "fcfs"
	}`

	var request ScheduleRequest
	require.NoError(t, json.Unmarshal([]byte(body), &request))

	assert.Equal(t, "fcfs", request.Algorithm)
	assert.Equal(t, []core.Process{
		{ID: 1, ArrivalTime: 0, BurstTime: 5, Priority: DefaultPriority},
		{ID: 7, ArrivalTime: 1, BurstTime: 3, Priority: 0},
	}, request.Processes())
}

func TestProcessesEmpty(t *testing.T) {
	assert.Empty(t, ScheduleRequest{}.Processes())
}
