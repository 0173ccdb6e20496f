package requests

import (
	"errors"
	"fmt"

	"cpu-scheduler-sim/internal/core"
)

var ErrInvalidRequest = errors.New("invalid schedule request")

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum int   `json:"time_quantum,omitempty"`
}

// ToProcesses converts the jobs into fresh process records. A job without a
// process id is numbered by its 1-based position.
func (r *ScheduleRequests) ToProcesses() []core.Process {
	procs := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		pid := job.ProcessId
		if pid == 0 {
			pid = i + 1
		}
		procs = append(procs, core.NewProcess(pid, job.ArrivalTime, job.BurstTime, job.Priority))
	}
	return procs
}

// Validate rejects requests that no scheduler may be started with.
func (r *ScheduleRequests) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, core.ErrNoProcesses)
	}
	if err := core.ValidateProcesses(r.ToProcesses()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if r.TimeQuantum < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, core.ValidateQuantum(r.TimeQuantum))
	}
	return nil
}
