package schedulers

import (
	"sync"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

// SimulateAll runs every registered algorithm over the same processes in parallel. The
// input is validated once for Round Robin, which is the strictest of the six.
func SimulateAll(processes []core.Process, quantum int) (map[Algorithm]responses.ScheduleResponse, error) {
	if err := Validate(processes, AlgorithmRoundRobin, quantum); err != nil {
		return nil, err
	}

	available := GetAvailableAlgorithms()
	results := make([]responses.ScheduleResponse, len(available))

	var wg sync.WaitGroup
	wg.Add(len(available))
	for i, algorithm := range available {
		go func(i int, algorithm Algorithm) {
			defer wg.Done()
			results[i] = registry[algorithm].Schedule(processes, quantum)
		}(i, algorithm)
	}
	wg.Wait()

	response := make(map[Algorithm]responses.ScheduleResponse, len(available))
	for i, algorithm := range available {
		response[algorithm] = results[i]
	}
	return response, nil
}
