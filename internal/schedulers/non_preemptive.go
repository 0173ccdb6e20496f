package schedulers

import "cpu-scheduler-sim/internal/core"

// runNonPreemptive repeatedly runs the ready process with the smallest key to
// completion. Ties go to the earliest arrival, then to input order.
func runNonPreemptive(procs []core.Process, key func(*core.Process) int) core.Timeline {
	timeline := core.NewTimeline()
	currentTime := 0

	for completed := 0; completed < len(procs); {
		idx := -1
		for i := range procs {
			p := &procs[i]
			if !p.ReadyAt(currentTime) {
				continue
			}
			if idx == -1 {
				idx = i
				continue
			}
			best := &procs[idx]
			if key(p) < key(best) || key(p) == key(best) && p.ArrivalTime < best.ArrivalTime {
				idx = i
			}
		}

		if idx == -1 {
			next, ok := nextArrival(procs)
			if !ok {
				break
			}
			timeline.Append(core.IdleLabel, next)
			currentTime = next
			continue
		}

		p := &procs[idx]
		currentTime += p.Run(currentTime, p.BurstTime)
		timeline.Append(core.ProcessLabel(p.PID), currentTime)
		p.Complete(currentTime)
		completed++
	}

	return timeline
}
