package schedulers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
)

var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

type Algorithm string

const (
	FCFS     Algorithm = "fcfs"
	SJF      Algorithm = "sjf"
	Priority Algorithm = "priority"
	SRTF     Algorithm = "srtf"
	RR       Algorithm = "rr"
)

var algorithmNames = map[Algorithm]string{
	FCFS:     "FCFS",
	SJF:      "SJF - Non Preemptive",
	Priority: "Priority Scheduling (Non-Preemptive)",
	SRTF:     "SRTF - Preemptive SJF",
	RR:       "Round Robin (RR)",
}

// Algorithms lists every discipline in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{FCFS, SJF, Priority, SRTF, RR}
}

func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := algorithmNames[alg]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return alg, nil
}

func (a Algorithm) Title() string {
	return algorithmNames[a]
}

func (a Algorithm) Preemptive() bool {
	return a == SRTF || a == RR
}

// Result is the outcome of one simulation run. Processes keep the order they
// were given in.
type Result struct {
	Algorithm   Algorithm
	TimeQuantum int
	Processes   []core.Process
	Timeline    core.Timeline
}

// Simulate checks the preconditions of alg and runs it on fresh copies of
// procs. quantum is only read by round robin.
func Simulate(alg Algorithm, procs []core.Process, quantum int) (Result, error) {
	if err := core.ValidateProcesses(procs); err != nil {
		return Result{}, err
	}

	switch alg {
	case FCFS:
		return FirstComeFirstServe(procs), nil
	case SJF:
		return ShortestJobFirst(procs), nil
	case Priority:
		return PriorityScheduling(procs), nil
	case SRTF:
		return ShortestRemainingTimeFirst(procs), nil
	case RR:
		if err := core.ValidateQuantum(quantum); err != nil {
			return Result{}, err
		}
		return RoundRobin(procs, quantum), nil
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
}

// Schedule validates request and returns the analytics of running alg on it.
func Schedule(alg Algorithm, request *requests.ScheduleRequests, timeQuantum int) (responses.ScheduleResponse, error) {
	if err := request.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	if alg != RR {
		timeQuantum = 0
	}

	result, err := Simulate(alg, request.ToProcesses(), timeQuantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	response := generateResponse(result)
	log.Println("algorithm:", alg, "completed", len(response.Details), "processes at t =", response.TotalTime)
	return response, nil
}

// ScheduleAll runs every discipline on the same request.
func ScheduleAll(request *requests.ScheduleRequests, timeQuantum int) ([]responses.ScheduleResponse, error) {
	log.Println("running all algorithms with timeQuantum = ", timeQuantum)
	all := make([]responses.ScheduleResponse, 0, len(Algorithms()))
	for _, alg := range Algorithms() {
		response, err := Schedule(alg, request, timeQuantum)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", alg, err)
		}
		all = append(all, response)
	}
	return all, nil
}

// nextArrival is the earliest arrival among uncompleted processes.
func nextArrival(procs []core.Process) (int, bool) {
	next, found := 0, false
	for i := range procs {
		if procs[i].Completed() {
			continue
		}
		if !found || procs[i].ArrivalTime < next {
			next, found = procs[i].ArrivalTime, true
		}
	}
	return next, found
}
