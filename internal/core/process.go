package core

import (
	"errors"
	"fmt"
)

var (
	ErrNoProcesses    = errors.New("no processes to schedule")
	ErrInvalidProcess = errors.New("invalid process")
	ErrDuplicatePID   = errors.New("duplicate process id")
	ErrInvalidQuantum = errors.New("time quantum must be positive")
)

// Process is the per-run record of one job. The first four fields are input
// facts, the rest are filled in by a scheduler.
type Process struct {
	PID         int
	ArrivalTime int
	BurstTime   int
	Priority    int

	RemainingBurst int
	StartTime      int
	CompletionTime int
	TurnaroundTime int
	WaitTime       int
	ResponseTime   int
}

func NewProcess(pid, arrivalTime, burstTime, priority int) Process {
	return Process{
		PID:            pid,
		ArrivalTime:    arrivalTime,
		BurstTime:      burstTime,
		Priority:       priority,
		RemainingBurst: burstTime,
		StartTime:      -1,
	}
}

// Fresh returns a copy holding only the input facts of p.
func (p Process) Fresh() Process {
	return NewProcess(p.PID, p.ArrivalTime, p.BurstTime, p.Priority)
}

func (p *Process) Completed() bool {
	return p.RemainingBurst == 0
}

// ReadyAt reports whether p competes for the CPU at time t.
func (p *Process) ReadyAt(t int) bool {
	return p.ArrivalTime <= t && p.RemainingBurst > 0
}

// Run gives the CPU to p at time t for at most d units and returns the number
// of units actually consumed.
func (p *Process) Run(t, d int) int {
	if p.StartTime < 0 {
		p.StartTime = t
		p.ResponseTime = t - p.ArrivalTime
	}
	if d > p.RemainingBurst {
		d = p.RemainingBurst
	}
	p.RemainingBurst -= d
	return d
}

// Complete stores the completion metrics of p finishing at time t.
func (p *Process) Complete(t int) {
	p.RemainingBurst = 0
	p.CompletionTime = t
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitTime = p.TurnaroundTime - p.BurstTime
}

// Validate checks the input facts of p.
func (p Process) Validate() error {
	switch {
	case p.PID <= 0:
		return fmt.Errorf("%w: pid %d must be positive", ErrInvalidProcess, p.PID)
	case p.ArrivalTime < 0:
		return fmt.Errorf("%w: P%d arrival time %d is negative", ErrInvalidProcess, p.PID, p.ArrivalTime)
	case p.BurstTime <= 0:
		return fmt.Errorf("%w: P%d burst time %d must be positive", ErrInvalidProcess, p.PID, p.BurstTime)
	case p.Priority < 0:
		return fmt.Errorf("%w: P%d priority %d is negative", ErrInvalidProcess, p.PID, p.Priority)
	}
	return nil
}

func ValidateProcesses(procs []Process) error {
	if len(procs) == 0 {
		return ErrNoProcesses
	}
	seen := make(map[int]bool, len(procs))
	for _, p := range procs {
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.PID] {
			return fmt.Errorf("%w: P%d", ErrDuplicatePID, p.PID)
		}
		seen[p.PID] = true
	}
	return nil
}

func ValidateQuantum(quantum int) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantum, quantum)
	}
	return nil
}

// FreshCopies clones the input facts of procs so that a run never aliases
// records owned by the caller or by another run.
func FreshCopies(procs []Process) []Process {
	out := make([]Process, len(procs))
	for i, p := range procs {
		out[i] = p.Fresh()
	}
	return out
}
