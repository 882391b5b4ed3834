package responses

// SegmentResponse is one Gantt chart entry. ProcessId is null for idle segments.
type SegmentResponse struct {
	Kind      string `json:"kind"`
	ProcessId *int   `json:"processId"`
	Start     int    `json:"start"`
	Duration  int    `json:"duration"`
}

type ProcessResponse struct {
	ProcessId      int `json:"processId"`
	ArrivalTime    int `json:"arrivalTime"`
	BurstTime      int `json:"burstTime"`
	Priority       int `json:"priority"`
	StartTime      int `json:"startTime"`
	CompletionTime int `json:"completionTime"`
	TurnAroundTime int `json:"turnaroundTime"`
	WaitingTime    int `json:"waitingTime"`
	ResponseTime   int `json:"responseTime"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Timeline              []SegmentResponse `json:"timeline"`
	AverageTurnAroundTime float64           `json:"avgTurnaroundTime"`
	AverageWaitingTime    float64           `json:"avgWaitingTime"`
	AverageResponseTime   float64           `json:"avgResponseTime"`
	TotalTime             int               `json:"totalTime"`
	IdleTime              int               `json:"idleTime"`
	CpuUtilization        float64           `json:"cpuUtilization"`
	CpuThroughput         float64           `json:"throughput"`
	ContextSwitches       int               `json:"contextSwitches"`
	Details               []ProcessResponse `json:"details"`
}

type AllResponse struct {
	Results map[string]ScheduleResponse `json:"results"`
}
