package schedulers

import (
	"log"
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

func ScheduleFirstComeFirstServe(processes []core.Process) responses.ScheduleResponse {
	log.Println("running fcfs algorithm ...")

	// sort jobs by arrival time
	jobs := core.NewProccesses(processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Job.ArrivalTime < jobs[j].Job.ArrivalTime
	})

	return scheduleInOrder(AlgorithmFCFS, jobs)
}

// scheduleInOrder runs jobs to completion one after another in the given order, idling
// the CPU until each job has arrived.
func scheduleInOrder(algorithm Algorithm, jobs []*core.Proccess) responses.ScheduleResponse {
	var timeline core.Timeline
	for _, proccess := range jobs {
		timeline.IdleUntil(proccess.Job.ArrivalTime)
		proccess.Admit()

		start := timeline.Clock()
		timeline.Run(proccess.Job.ID, proccess.Job.BurstTime)
		proccess.Execute(start, proccess.Job.BurstTime)
	}
	return generateResponse(algorithm, timeline.Segments(), jobs)
}
