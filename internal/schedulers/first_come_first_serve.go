package schedulers

import (
	"log"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
)

// FirstComeFirstServe runs processes to completion in arrival order.
func FirstComeFirstServe(procs []core.Process) Result {
	procs = core.FreshCopies(procs)
	timeline := runNonPreemptive(procs, func(p *core.Process) int {
		return p.ArrivalTime
	})
	return Result{Algorithm: FCFS, Processes: procs, Timeline: timeline}
}

func ScheduleFirstComeFirstServe(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running fcfs algorithm ...")
	return Schedule(FCFS, request, 0)
}
