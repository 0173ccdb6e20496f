package schedulers

import (
	"log"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
)

// ShortestRemainingTimeFirst always runs the ready process with the least
// remaining burst. Instead of stepping one unit at a time, the running
// process is kept until the next arrival or its own completion, the only
// instants at which the choice can change.
func ShortestRemainingTimeFirst(procs []core.Process) Result {
	procs = core.FreshCopies(procs)
	raw := core.NewTimeline()
	currentTime := 0

	for completed := 0; completed < len(procs); {
		idx := shortestRemaining(procs, currentTime)
		if idx == -1 {
			next, ok := nextArrival(procs)
			if !ok {
				break
			}
			raw.Append(core.IdleLabel, next)
			currentTime = next
			continue
		}

		p := &procs[idx]
		slice := p.RemainingBurst
		if arrival, ok := arrivalAfter(procs, currentTime); ok && arrival-currentTime < slice {
			slice = arrival - currentTime
		}

		currentTime += p.Run(currentTime, slice)
		raw.Append(core.ProcessLabel(p.PID), currentTime)
		if p.RemainingBurst == 0 {
			p.Complete(currentTime)
			completed++
		}
	}

	return Result{Algorithm: SRTF, Processes: procs, Timeline: core.Merge(raw)}
}

func ScheduleShortestRemainingTimeFirst(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running srtf algorithm ...")
	return Schedule(SRTF, request, 0)
}

func shortestRemaining(procs []core.Process, currentTime int) int {
	idx := -1
	for i := range procs {
		p := &procs[i]
		if !p.ReadyAt(currentTime) {
			continue
		}
		if idx == -1 || p.RemainingBurst < procs[idx].RemainingBurst ||
			p.RemainingBurst == procs[idx].RemainingBurst && p.ArrivalTime < procs[idx].ArrivalTime {
			idx = i
		}
	}
	return idx
}

// arrivalAfter is the first arrival strictly later than t.
func arrivalAfter(procs []core.Process, t int) (int, bool) {
	next, found := 0, false
	for i := range procs {
		at := procs[i].ArrivalTime
		if at <= t || procs[i].Completed() {
			continue
		}
		if !found || at < next {
			next, found = at, true
		}
	}
	return next, found
}
