package schedulers

import (
	"sort"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/util"
)

func generateResponse(result Result) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, process := range result.Processes {
		proccessDetails = append(proccessDetails, generateProcessDetails(process))
	}
	sort.SliceStable(proccessDetails, func(i, j int) bool {
		return proccessDetails[i].ProcessId < proccessDetails[j].ProcessId
	})

	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	totalTime := float64(result.Timeline.End())
	idleTime := float64(result.Timeline.IdleTime())
	var utilization, throughput float64
	if totalTime > 0 {
		utilization = 1 - idleTime/totalTime
		throughput = float64(len(result.Processes)) / totalTime
	}

	return responses.ScheduleResponse{
		Algorithm:             string(result.Algorithm),
		TimeQuantum:           result.TimeQuantum,
		TotalTime:             totalTime,
		IdleTime:              idleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		ContextSwitches:       util.CountContextSwitches(result.Timeline.Labels),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               proccessDetails,
		Gantt:                 generateGantt(result.Timeline),
	}
}

func generateProcessDetails(process core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.PID,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		Priority:       process.Priority,
		CompletionTime: process.CompletionTime,
		ResponseTime:   float64(process.ResponseTime),
		TurnAroundTime: float64(process.TurnaroundTime),
		WaitingTime:    float64(process.WaitTime),
	}
}

func generateGantt(timeline core.Timeline) []responses.GanttBlock {
	segments := timeline.Segments()
	blocks := make([]responses.GanttBlock, 0, len(segments))
	for _, s := range segments {
		blocks = append(blocks, responses.GanttBlock{Label: s.Label, Start: s.Start, End: s.End})
	}
	return blocks
}
