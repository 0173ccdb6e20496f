package schedulers

import (
	"log"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
)

// PriorityScheduling runs the most urgent ready process (lowest priority
// value) to completion.
func PriorityScheduling(procs []core.Process) Result {
	procs = core.FreshCopies(procs)
	timeline := runNonPreemptive(procs, func(p *core.Process) int {
		return p.Priority
	})
	return Result{Algorithm: Priority, Processes: procs, Timeline: timeline}
}

func SchedulePriority(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running priority algorithm ...")
	return Schedule(Priority, request, 0)
}
