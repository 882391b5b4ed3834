package schedulers

import (
	"log"
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

// SchedulePriorityNonPreemptive fixes the order once, by arrival time and then by
// priority, and runs it like FCFS. Priorities of later arrivals are not reconsidered
// while a job runs.
func SchedulePriorityNonPreemptive(processes []core.Process) responses.ScheduleResponse {
	log.Println("running non-preemptive priority algorithm ...")

	jobs := core.NewProccesses(processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].Job.ArrivalTime != jobs[j].Job.ArrivalTime {
			return jobs[i].Job.ArrivalTime < jobs[j].Job.ArrivalTime
		}
		return jobs[i].Job.Priority < jobs[j].Job.Priority
	})

	return scheduleInOrder(AlgorithmPriorityNonPreemptive, jobs)
}

// SchedulePriorityPreemptive runs the arrived process with the lowest priority value
// every tick.
func SchedulePriorityPreemptive(processes []core.Process) responses.ScheduleResponse {
	log.Println("running preemptive priority algorithm ...")
	return scheduleTicks(AlgorithmPriorityPreemptive, processes, priority)
}

func priority(p *core.Proccess) int {
	return p.Job.Priority
}
