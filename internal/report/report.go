// Package report renders simulation results for the terminal.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/util"
)

const blockWidth = 8

// Render prints the Gantt chart and the per-process table of one run.
func Render(w io.Writer, title string, response responses.ScheduleResponse) {
	outputTitle(w, title)
	outputGantt(w, response.Gantt)
	outputSchedule(w, response)
}

func outputTitle(w io.Writer, title string) {
	line := strings.Repeat("-", 63)
	_, _ = fmt.Fprintf(w, "\n%s\n\t\t%s Results\n%s\n", line, title, line)
}

func outputGantt(w io.Writer, gantt []responses.GanttBlock) {
	_, _ = fmt.Fprintln(w, "\nGantt Chart:")
	if len(gantt) == 0 {
		_, _ = fmt.Fprintln(w)
		return
	}

	for _, block := range gantt {
		_, _ = fmt.Fprintf(w, "| %-*s", blockWidth-2, block.Label)
	}
	_, _ = fmt.Fprintln(w, "|")

	for _, block := range gantt {
		_, _ = fmt.Fprintf(w, "%-*d", blockWidth, block.Start)
	}
	_, _ = fmt.Fprintf(w, "%d\n\n", gantt[len(gantt)-1].End)
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	withPriority := response.Algorithm == "priority"

	details := append([]responses.ProcessResponse(nil), response.Details...)
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].ProcessId < details[j].ProcessId
	})

	header := []string{"PID", "AT", "BT"}
	if withPriority {
		header = append(header, "PRI")
	}
	header = append(header, "CT", "TAT", "WT", "RT")

	rows := make([][]string, 0, len(details))
	for _, d := range details {
		row := []string{strconv.Itoa(d.ProcessId), strconv.Itoa(d.ArrivalTime), strconv.Itoa(d.BurstTime)}
		if withPriority {
			row = append(row, strconv.Itoa(d.Priority))
		}
		row = append(row,
			strconv.Itoa(d.CompletionTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.ResponseTime),
		)
		rows = append(rows, row)
	}

	footer := make([]string, len(header))
	footer[len(footer)-3] = fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime)
	footer[len(footer)-2] = fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime)
	footer[len(footer)-1] = fmt.Sprintf("Average\n%.2f", response.AverageResponseTime)

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.SetFooter(footer)
	table.Render()

	_, _ = fmt.Fprintf(w, "\nAverage Turn Around Time: %.2f units\n", response.AverageTurnAroundTime)
	_, _ = fmt.Fprintf(w, "Average Waiting Time: %.2f units\n", response.AverageWaitingTime)
	_, _ = fmt.Fprintf(w, "Total CPU Idle Time: %d units\n", util.IdleTotal(response.Gantt))
	_, _ = fmt.Fprintf(w, "CPU Utilization: %.2f%%\n", response.CpuUtilization*100)
	_, _ = fmt.Fprintf(w, "Throughput: %.2f/t\n", response.CpuThroughput)
	if response.RunId != "" {
		_, _ = fmt.Fprintf(w, "Run: %s\n", response.RunId)
	}
}
