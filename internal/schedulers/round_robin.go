package schedulers

import (
	"log"
	"sort"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
)

// processQueue is the round robin ready queue. It holds indexes into the
// process slice and never holds the same index twice.
type processQueue struct {
	queue  []int
	queued []bool
}

func newProcessQueue(n int) *processQueue {
	return &processQueue{queue: make([]int, 0, n), queued: make([]bool, n)}
}

func (q *processQueue) AddToEnd(idx int) bool {
	if q.queued[idx] {
		return false
	}
	q.queue = append(q.queue, idx)
	q.queued[idx] = true
	return true
}

func (q *processQueue) RemoveFromTop() (int, bool) {
	if len(q.queue) == 0 {
		return -1, false
	}
	idx := q.queue[0]
	q.queue = q.queue[1:]
	q.queued[idx] = false
	return idx, true
}

func (q *processQueue) Len() int {
	return len(q.queue)
}

// RoundRobin gives each ready process at most timeQuantum units per turn.
// Processes arriving during a turn are queued ahead of the preempted one.
func RoundRobin(procs []core.Process, timeQuantum int) Result {
	procs = core.FreshCopies(procs)
	n := len(procs)

	byArrival := make([]int, n)
	for i := range byArrival {
		byArrival[i] = i
	}
	sort.SliceStable(byArrival, func(i, j int) bool {
		return procs[byArrival[i]].ArrivalTime < procs[byArrival[j]].ArrivalTime
	})

	readyQueue := newProcessQueue(n)
	nextToArrive := 0
	admit := func(t int) {
		for nextToArrive < n && procs[byArrival[nextToArrive]].ArrivalTime <= t {
			readyQueue.AddToEnd(byArrival[nextToArrive])
			nextToArrive++
		}
	}

	raw := core.NewTimeline()
	currentTime := 0
	for completed := 0; completed < n; {
		admit(currentTime)

		idx, ok := readyQueue.RemoveFromTop()
		if !ok {
			if nextToArrive == n {
				break
			}
			next := procs[byArrival[nextToArrive]].ArrivalTime
			raw.Append(core.IdleLabel, next)
			currentTime = next
			continue
		}

		p := &procs[idx]
		currentTime += p.Run(currentTime, timeQuantum)
		raw.Append(core.ProcessLabel(p.PID), currentTime)

		admit(currentTime)
		if p.RemainingBurst == 0 {
			p.Complete(currentTime)
			completed++
		} else {
			readyQueue.AddToEnd(idx)
		}
	}

	return Result{
		Algorithm:   RR,
		TimeQuantum: timeQuantum,
		Processes:   procs,
		Timeline:    core.Merge(raw),
	}
}

func ScheduleRoundRobin(request *requests.ScheduleRequests, timeQuantum int) (responses.ScheduleResponse, error) {
	log.Println("running roundRobin algorithm with timeQuantum = ", timeQuantum)
	return Schedule(RR, request, timeQuantum)
}
