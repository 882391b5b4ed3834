package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimelineMergesIdle(t *testing.T) {
	var timeline Timeline
	timeline.Idle(1)
	timeline.Idle(2)
	timeline.Run(1, 3)
	timeline.Run(1, 2)
	timeline.IdleUntil(4)
	timeline.IdleUntil(10)

	assert.Equal(t, 10, timeline.Clock())
	assert.Equal(t, []Segment{
		{Kind: SegmentIdle, Start: 0, Duration: 3},
		{Kind: SegmentBusy, ProcessID: 1, Start: 3, Duration: 3},
		{Kind: SegmentBusy, ProcessID: 1, Start: 6, Duration: 2},
		{Kind: SegmentIdle, Start: 8, Duration: 2},
	}, timeline.Segments())
}

func TestTimelineIgnoresEmptySpans(t *testing.T) {
	var timeline Timeline
	timeline.Run(1, 0)
	timeline.Idle(-3)

	assert.Empty(t, timeline.Segments())
	assert.Equal(t, 0, timeline.Clock())
}

func TestFoldTicks(t *testing.T) {
	tests := []struct {
		name  string
		ticks []int
		want  []Segment
	}{
		{
			name:  "empty",
			ticks: nil,
			want:  []Segment{},
		},
		{
			name:  "preemption",
			ticks: []int{1, 2, 2, 1, 1, 1},
			want: []Segment{
				{Kind: SegmentBusy, ProcessID: 1, Start: 0, Duration: 1},
				{Kind: SegmentBusy, ProcessID: 2, Start: 1, Duration: 2},
				{Kind: SegmentBusy, ProcessID: 1, Start: 3, Duration: 3},
			},
		},
		{
			name:  "idle gaps",
			ticks: []int{IdleTick, IdleTick, 3, IdleTick, 4},
			want: []Segment{
				{Kind: SegmentIdle, Start: 0, Duration: 2},
				{Kind: SegmentBusy, ProcessID: 3, Start: 2, Duration: 1},
				{Kind: SegmentIdle, Start: 3, Duration: 1},
				{Kind: SegmentBusy, ProcessID: 4, Start: 4, Duration: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldTicks(tt.ticks))
		})
	}
}
