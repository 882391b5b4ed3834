package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

func generateResponse(algorithm Algorithm, timeline []core.Segment, proccesses []*core.Proccess) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(proccesses))
	for _, proccess := range proccesses {
		proccessDetails = append(proccessDetails, generateProcessDetails(proccess))
	}
	sort.Slice(proccessDetails, func(i, j int) bool {
		return proccessDetails[i].ProcessId < proccessDetails[j].ProcessId
	})

	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	cpuMetric := core.MeasureCpu(timeline)
	var utilization, throughput float64
	if cpuMetric.TotalTime > 0 {
		utilization = float64(cpuMetric.UtilizationTime) / float64(cpuMetric.TotalTime)
		throughput = float64(len(proccesses)) / float64(cpuMetric.TotalTime)
	}

	return responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		Timeline:              generateTimeline(timeline),
		AverageTurnAroundTime: averageTimeAroundTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		ContextSwitches:       countContextSwitches(timeline),
		Details:               proccessDetails,
	}
}

func generateProcessDetails(proccess *core.Proccess) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      proccess.Job.ID,
		ArrivalTime:    proccess.Job.ArrivalTime,
		BurstTime:      proccess.Job.BurstTime,
		Priority:       proccess.Job.Priority,
		StartTime:      proccess.ScheduleTimes.Execution,
		CompletionTime: proccess.ScheduleTimes.Complete,
		TurnAroundTime: proccess.TurnAroundTime(),
		WaitingTime:    proccess.WaitingTime(),
		ResponseTime:   proccess.ResponseTime(),
	}
}

func generateTimeline(segments []core.Segment) []responses.SegmentResponse {
	timeline := make([]responses.SegmentResponse, 0, len(segments))
	for _, segment := range segments {
		entry := responses.SegmentResponse{
			Kind:     string(segment.Kind),
			Start:    segment.Start,
			Duration: segment.Duration,
		}
		if segment.Kind == core.SegmentBusy {
			pid := segment.ProcessID
			entry.ProcessId = &pid
		}
		timeline = append(timeline, entry)
	}
	return timeline
}

// countContextSwitches counts hand-overs of the CPU from one process to a different one.
// Idle time between two processes does not hide the switch.
func countContextSwitches(segments []core.Segment) int {
	switches := 0
	last := core.IdleTick
	for _, segment := range segments {
		if segment.Kind != core.SegmentBusy {
			continue
		}
		if last != core.IdleTick && last != segment.ProcessID {
			switches++
		}
		last = segment.ProcessID
	}
	return switches
}
