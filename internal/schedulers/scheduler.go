package schedulers

import (
	"fmt"
	"log"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

type Algorithm string

const (
	AlgorithmFCFS                  Algorithm = "fcfs"
	AlgorithmSJF                   Algorithm = "sjf"
	AlgorithmSRTF                  Algorithm = "srtf"
	AlgorithmRoundRobin            Algorithm = "roundRobin"
	AlgorithmPriorityNonPreemptive Algorithm = "priorityNP"
	AlgorithmPriorityPreemptive    Algorithm = "priorityP"
)

// Scheduler is one scheduling strategy. Implementations keep no state between calls and
// may be shared by concurrent simulations. Input is assumed to be validated.
type Scheduler interface {
	Schedule(processes []core.Process, quantum int) responses.ScheduleResponse
}

type SchedulerFunc func(processes []core.Process, quantum int) responses.ScheduleResponse

func (f SchedulerFunc) Schedule(processes []core.Process, quantum int) responses.ScheduleResponse {
	return f(processes, quantum)
}

var algorithms = []Algorithm{
	AlgorithmFCFS,
	AlgorithmSJF,
	AlgorithmSRTF,
	AlgorithmRoundRobin,
	AlgorithmPriorityNonPreemptive,
	AlgorithmPriorityPreemptive,
}

var registry = map[Algorithm]Scheduler{
	AlgorithmFCFS: SchedulerFunc(func(processes []core.Process, _ int) responses.ScheduleResponse {
		return ScheduleFirstComeFirstServe(processes)
	}),
	AlgorithmSJF: SchedulerFunc(func(processes []core.Process, _ int) responses.ScheduleResponse {
		return ScheduleShortestJobFirst(processes)
	}),
	AlgorithmSRTF: SchedulerFunc(func(processes []core.Process, _ int) responses.ScheduleResponse {
		return ScheduleShortestRemainingTimeFirst(processes)
	}),
	AlgorithmRoundRobin: SchedulerFunc(ScheduleRoundRobin),
	AlgorithmPriorityNonPreemptive: SchedulerFunc(func(processes []core.Process, _ int) responses.ScheduleResponse {
		return SchedulePriorityNonPreemptive(processes)
	}),
	AlgorithmPriorityPreemptive: SchedulerFunc(func(processes []core.Process, _ int) responses.ScheduleResponse {
		return SchedulePriorityPreemptive(processes)
	}),
}

// GetAvailableAlgorithms returns the registered identifiers in a fixed order.
func GetAvailableAlgorithms() []Algorithm {
	result := make([]Algorithm, len(algorithms))
	copy(result, algorithms)
	return result
}

func ParseAlgorithm(name string) (Algorithm, error) {
	algorithm := Algorithm(name)
	if _, ok := registry[algorithm]; !ok {
		return "", fmt.Errorf("%w: unknown scheduler algorithm: %q", ErrInvalidInput, name)
	}
	return algorithm, nil
}

// Simulate validates the input and runs it through the selected strategy. quantum is
// only read by Round Robin.
func Simulate(processes []core.Process, algorithm Algorithm, quantum int) (responses.ScheduleResponse, error) {
	if err := Validate(processes, algorithm, quantum); err != nil {
		return responses.ScheduleResponse{}, err
	}
	log.Println("simulating", algorithm, "with", len(processes), "processes")
	return registry[algorithm].Schedule(processes, quantum), nil
}

// admitArrived moves every process that has arrived by clock into the ready state.
func admitArrived(proccesses []*core.Proccess, clock int) {
	for _, proccess := range proccesses {
		if proccess.Arrived(clock) && !proccess.Completed() {
			proccess.Admit()
		}
	}
}

// selectArrived returns the arrived, incomplete process with the smallest key, or nil.
// Ties go to the lowest input index.
func selectArrived(proccesses []*core.Proccess, clock int, key func(*core.Proccess) int) *core.Proccess {
	var selected *core.Proccess
	for _, proccess := range proccesses {
		if !proccess.Arrived(clock) || proccess.Completed() {
			continue
		}
		if selected == nil || key(proccess) < key(selected) {
			selected = proccess
		}
	}
	return selected
}
