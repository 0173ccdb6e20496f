package schedulers

import (
	"log"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
)

// ShortestJobFirst is the non-preemptive variant keyed by burst time.
func ShortestJobFirst(procs []core.Process) Result {
	procs = core.FreshCopies(procs)
	timeline := runNonPreemptive(procs, func(p *core.Process) int {
		return p.BurstTime
	})
	return Result{Algorithm: SJF, Processes: procs, Timeline: timeline}
}

func ScheduleShortestJobFirst(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running sjf algorithm ...")
	return Schedule(SJF, request, 0)
}
