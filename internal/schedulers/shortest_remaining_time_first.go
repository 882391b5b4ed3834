package schedulers

import (
	"log"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

func ScheduleShortestRemainingTimeFirst(processes []core.Process) responses.ScheduleResponse {
	log.Println("running srtf algorithm ...")
	return scheduleTicks(AlgorithmSRTF, processes, remainingTime)
}

func remainingTime(p *core.Proccess) int {
	return p.Remaining
}

// scheduleTicks re-evaluates the choice every time unit: the arrived, incomplete process
// with the smallest key runs for one tick. Decisions are folded into segments at the end.
func scheduleTicks(algorithm Algorithm, processes []core.Process, key func(*core.Proccess) int) responses.ScheduleResponse {
	jobs := core.NewProccesses(processes)
	ticks := make([]int, 0)

	var running *core.Proccess
	for clock, completed := 0, 0; completed < len(jobs); clock++ {
		admitArrived(jobs, clock)

		next := selectArrived(jobs, clock, key)
		if next == nil {
			ticks = append(ticks, core.IdleTick)
			running = nil
			continue
		}
		if running != nil && running != next && !running.Completed() {
			log.Println("pid:", next.Job.ID, "preempts pid:", running.Job.ID, "at", clock)
			running.Preempt()
			running.Admit()
		}

		if next.Execute(clock, 1) {
			completed++
		}
		ticks = append(ticks, next.Job.ID)
		running = next
	}

	return generateResponse(algorithm, core.FoldTicks(ticks), jobs)
}
