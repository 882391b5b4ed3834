package requests

import "cpu-scheduler/internal/core"

// Job fields are pointers so that omitted values can be told apart from zero.
type Job struct {
	ProcessId   *int `json:"id" yaml:"id"`
	ArrivalTime int  `json:"arrivalTime" yaml:"arrivalTime"`
	BurstTime   int  `json:"burstTime" yaml:"burstTime"`
	Priority    *int `json:"priority" yaml:"priority"`
}

type ScheduleRequest struct {
	Jobs      []Job  `json:"processes" yaml:"processes"`
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Quantum   int    `json:"quantum" yaml:"quantum"`
}

const DefaultPriority = 1

// Processes converts the jobs into engine input. Missing ids are assigned by input
// order starting at 1 and missing priorities default to DefaultPriority.
func (r ScheduleRequest) Processes() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		process := core.Process{
			ID:          i + 1,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    DefaultPriority,
		}
		if job.ProcessId != nil {
			process.ID = *job.ProcessId
		}
		if job.Priority != nil {
			process.Priority = *job.Priority
		}
		processes = append(processes, process)
	}
	return processes
}
