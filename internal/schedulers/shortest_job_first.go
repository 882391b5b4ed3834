package schedulers

import (
	"log"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

func ScheduleShortestJobFirst(processes []core.Process) responses.ScheduleResponse {
	log.Println("running sjf algorithm ...")

	jobs := core.NewProccesses(processes)
	var timeline core.Timeline

	for completed := 0; completed < len(jobs); {
		clock := timeline.Clock()
		admitArrived(jobs, clock)

		shortestJob := selectArrived(jobs, clock, burstTime)
		if shortestJob == nil {
			timeline.Idle(1)
			continue
		}

		timeline.Run(shortestJob.Job.ID, shortestJob.Job.BurstTime)
		shortestJob.Execute(clock, shortestJob.Job.BurstTime)
		completed++
	}

	return generateResponse(AlgorithmSJF, timeline.Segments(), jobs)
}

func burstTime(p *core.Proccess) int {
	return p.Job.BurstTime
}
