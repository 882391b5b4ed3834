package core

// Process is one simulation input. Strategies never modify it.
type Process struct {
	ID          int
	ArrivalTime int
	BurstTime   int
	Priority    int
}

type ProcessState int

const (
	StateWaiting ProcessState = iota
	StateReady
	StateRunning
	StatePreempted
	StateCompleted
)

func (s ProcessState) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StatePreempted:
		return "preempted"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// ScheduleTime holds the clock values of a process: when it arrived, when it first got
// the CPU and when it finished. Execution is -1 until the first dispatch.
type ScheduleTime struct {
	Submission int
	Execution  int
	Complete   int
}

// Proccess is the mutable per-run view of a Process.
type Proccess struct {
	Job           Process
	Remaining     int
	State         ProcessState
	ScheduleTimes ScheduleTime
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// NewProccesses copies the input into run state, preserving input order.
func NewProccesses(processes []Process) []*Proccess {
	result := make([]*Proccess, 0, len(processes))
	for _, p := range processes {
		result = append(result, &Proccess{
			Job:       p,
			Remaining: p.BurstTime,
			State:     StateWaiting,
			ScheduleTimes: ScheduleTime{
				Submission: p.ArrivalTime,
				Execution:  -1,
				Complete:   -1,
			},
		})
	}
	return result
}

func (p *Proccess) Arrived(clock int) bool {
	return p.Job.ArrivalTime <= clock
}

func (p *Proccess) Completed() bool {
	return p.State == StateCompleted
}

// Admit moves a waiting or preempted process into the ready state.
func (p *Proccess) Admit() {
	if p.State == StateWaiting || p.State == StatePreempted {
		p.State = StateReady
	}
}

// Execute runs the process for duration units starting at start. It returns true when the
// process has no burst left; otherwise the process keeps running until Preempt.
func (p *Proccess) Execute(start, duration int) bool {
	if p.ScheduleTimes.Execution < 0 {
		p.ScheduleTimes.Execution = start
	}
	p.State = StateRunning
	p.Remaining -= duration
	if p.Remaining <= 0 {
		p.Remaining = 0
		p.State = StateCompleted
		p.ScheduleTimes.Complete = start + duration
		return true
	}
	return false
}

// Preempt takes the CPU away from a running process.
func (p *Proccess) Preempt() {
	if p.State == StateRunning {
		p.State = StatePreempted
	}
}

func (p *Proccess) TurnAroundTime() int {
	return p.ScheduleTimes.Complete - p.ScheduleTimes.Submission
}

// WaitingTime is clamped at zero.
func (p *Proccess) WaitingTime() int {
	waiting := p.TurnAroundTime() - p.Job.BurstTime
	if waiting < 0 {
		return 0
	}
	return waiting
}

func (p *Proccess) ResponseTime() int {
	return p.ScheduleTimes.Execution - p.ScheduleTimes.Submission
}

// MeasureCpu derives busy and idle totals from a finished timeline.
func MeasureCpu(timeline []Segment) CpuMetric {
	var metric CpuMetric
	for _, segment := range timeline {
		metric.TotalTime += segment.Duration
		if segment.Kind == SegmentIdle {
			metric.IdleTime += segment.Duration
		} else {
			metric.UtilizationTime += segment.Duration
		}
	}
	return metric
}
