package schedulers

import (
	"log"
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

func ScheduleRoundRobin(processes []core.Process, timeQuantum int) responses.ScheduleResponse {
	log.Println("running roundRobin algorithm with timeQuantum = ", timeQuantum)

	jobs := core.NewProccesses(processes)

	// sort jobs by arrival time
	arrivals := make([]*core.Proccess, len(jobs))
	copy(arrivals, jobs)
	sort.SliceStable(arrivals, func(i, j int) bool {
		return arrivals[i].Job.ArrivalTime < arrivals[j].Job.ArrivalTime
	})

	roundRobinQueue := make([]*core.Proccess, 0, len(jobs))
	nextArrival := 0
	admit := func(clock int) {
		for nextArrival < len(arrivals) && arrivals[nextArrival].Arrived(clock) {
			arrivals[nextArrival].Admit()
			roundRobinQueue = append(roundRobinQueue, arrivals[nextArrival])
			nextArrival++
		}
	}

	var timeline core.Timeline
	for completed := 0; completed < len(jobs); {
		admit(timeline.Clock())
		if len(roundRobinQueue) == 0 {
			timeline.Idle(1)
			continue
		}

		proccess := roundRobinQueue[0]
		roundRobinQueue = roundRobinQueue[1:]

		start := timeline.Clock()
		slice := min(timeQuantum, proccess.Remaining)
		timeline.Run(proccess.Job.ID, slice)
		if proccess.Execute(start, slice) {
			completed++
			continue
		}

		// admit arrivals before re-queueing
		admit(timeline.Clock())
		proccess.Preempt()
		proccess.Admit()
		roundRobinQueue = append(roundRobinQueue, proccess)
	}

	return generateResponse(AlgorithmRoundRobin, timeline.Segments(), jobs)
}
