package core

type SegmentKind string

const (
	SegmentBusy SegmentKind = "busy"
	SegmentIdle SegmentKind = "idle"
)

// IdleTick marks a tick in which no process ran.
const IdleTick = 0

// Segment is a contiguous span of simulated time. ProcessID is 0 for idle segments.
type Segment struct {
	Kind      SegmentKind
	ProcessID int
	Start     int
	Duration  int
}

func (s Segment) End() int {
	return s.Start + s.Duration
}

// Timeline accumulates segments from clock 0 onwards. Busy segments are kept one per
// dispatch; adjacent idle time is merged into a single segment.
type Timeline struct {
	segments []Segment
	clock    int
}

func (t *Timeline) Clock() int {
	return t.clock
}

// Run appends a busy segment for pid and advances the clock.
func (t *Timeline) Run(pid, duration int) {
	if duration <= 0 {
		return
	}
	t.segments = append(t.segments, Segment{
		Kind:      SegmentBusy,
		ProcessID: pid,
		Start:     t.clock,
		Duration:  duration,
	})
	t.clock += duration
}

// Idle advances the clock by duration without a process on the CPU.
func (t *Timeline) Idle(duration int) {
	if duration <= 0 {
		return
	}
	if n := len(t.segments); n > 0 && t.segments[n-1].Kind == SegmentIdle {
		t.segments[n-1].Duration += duration
	} else {
		t.segments = append(t.segments, Segment{
			Kind:     SegmentIdle,
			Start:    t.clock,
			Duration: duration,
		})
	}
	t.clock += duration
}

// IdleUntil idles up to clock; it does nothing if the timeline is already there.
func (t *Timeline) IdleUntil(clock int) {
	t.Idle(clock - t.clock)
}

func (t *Timeline) Segments() []Segment {
	result := make([]Segment, len(t.segments))
	copy(result, t.segments)
	return result
}

// FoldTicks turns a per-tick decision sequence (a process id or IdleTick for each unit of
// time, starting at clock 0) into segments, merging runs of the same decision.
func FoldTicks(ticks []int) []Segment {
	segments := make([]Segment, 0)
	for clock, pid := range ticks {
		if n := len(segments); n > 0 && segments[n-1].ProcessID == pid {
			segments[n-1].Duration++
			continue
		}
		kind := SegmentBusy
		if pid == IdleTick {
			kind = SegmentIdle
		}
		segments = append(segments, Segment{
			Kind:      kind,
			ProcessID: pid,
			Start:     clock,
			Duration:  1,
		})
	}
	return segments
}
