// Package report renders simulation results as plain text: a title, a Gantt line and a
// per-process table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
)

var titles = map[string]string{
	"fcfs":       "First-come, first-serve",
	"sjf":        "Shortest-job-first",
	"srtf":       "Shortest-remaining-time-first",
	"roundRobin": "Round-robin",
	"priorityNP": "Priority (non-preemptive)",
	"priorityP":  "Priority (preemptive)",
}

func Title(algorithm string) string {
	if title, ok := titles[algorithm]; ok {
		return title
	}
	return algorithm
}

func Render(w io.Writer, response responses.ScheduleResponse) {
	outputTitle(w, Title(response.Algorithm))
	outputGantt(w, response.Timeline)
	outputSchedule(w, response)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Gantt renders the timeline on two lines: the cells and the start time of each cell
// followed by the end of the last one.
func Gantt(timeline []responses.SegmentResponse) string {
	var bars, scale strings.Builder
	bars.WriteString("|")
	for _, segment := range timeline {
		label := "idle"
		if segment.ProcessId != nil {
			label = fmt.Sprintf("P%d", *segment.ProcessId)
		}
		width := max(len(label)+2, segment.Duration)
		left := (width - len(label)) / 2
		cell := strings.Repeat(" ", left) + label + strings.Repeat(" ", width-len(label)-left)
		bars.WriteString(cell + "|")
		scale.WriteString(fmt.Sprintf("%-*d", width+1, segment.Start))
	}
	if n := len(timeline); n > 0 {
		scale.WriteString(fmt.Sprint(timeline[n-1].Start + timeline[n-1].Duration))
	}
	return bars.String() + "\n" + scale.String()
}

func outputGantt(w io.Writer, timeline []responses.SegmentResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprintln(w, Gantt(timeline))
	_, _ = fmt.Fprintln(w)
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")

	rows := make([][]string, 0, len(response.Details))
	for _, detail := range response.Details {
		rows = append(rows, []string{
			fmt.Sprint(detail.ProcessId),
			fmt.Sprint(detail.Priority),
			fmt.Sprint(detail.BurstTime),
			fmt.Sprint(detail.ArrivalTime),
			fmt.Sprint(detail.WaitingTime),
			fmt.Sprint(detail.TurnAroundTime),
			fmt.Sprint(detail.CompletionTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "Average",
		fmt.Sprintf("%.2f", response.AverageWaitingTime),
		fmt.Sprintf("%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("CPU %.0f%%", response.CpuUtilization*100)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}
