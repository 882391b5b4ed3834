package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/responses"
)

func TestCalculateAverage(t *testing.T) {
	waiting, response, turnaround := CalculateAverage([]responses.ProcessResponse{
		{ProcessId: 1, WaitingTime: 0, ResponseTime: 0, TurnAroundTime: 5},
		{ProcessId: 2, WaitingTime: 4, ResponseTime: 3, TurnAroundTime: 7},
	})

	assert.InDelta(t, 2.0, waiting, 1e-9)
	assert.InDelta(t, 1.5, response, 1e-9)
	assert.InDelta(t, 6.0, turnaround, 1e-9)
}

func TestCalculateAverageEmpty(t *testing.T) {
	waiting, response, turnaround := CalculateAverage(nil)

	assert.Zero(t, waiting)
	assert.Zero(t, response)
	assert.Zero(t, turnaround)
}
