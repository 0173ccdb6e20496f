package util

import (
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/responses"
)

func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64) {
	if len(proccessDetails) == 0 {
		return
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += proccess.WaitingTime
		responseTimeSum += proccess.ResponseTime
		turnAroundTimeSum += proccess.TurnAroundTime
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTimeAroundTime = turnAroundTimeSum / proccessCount
	return
}

// CountContextSwitches counts how often the CPU is handed to a process other
// than the last one that ran. Idle gaps are not switches by themselves.
func CountContextSwitches(labels []string) int {
	switches := 0
	last := ""
	for _, label := range labels {
		if label == core.IdleLabel {
			continue
		}
		if last != "" && label != last {
			switches++
		}
		last = label
	}
	return switches
}

// IdleTotal sums the idle blocks of a Gantt chart.
func IdleTotal(gantt []responses.GanttBlock) int {
	idle := 0
	for _, block := range gantt {
		if block.Label == core.IdleLabel {
			idle += block.End - block.Start
		}
	}
	return idle
}
