package schedulers

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"cpu-scheduler-sim/internal/core"
)

var _ = Describe("ShortestRemainingTimeFirst", func() {
	It("should preempt on a shorter arrival", func() {
		result := ShortestRemainingTimeFirst([]core.Process{
			core.NewProcess(1, 0, 8, 0),
			core.NewProcess(2, 1, 4, 0),
		})

		Expect(result.Timeline.Labels).To(Equal([]string{"P1", "P2", "P1"}))
		Expect(result.Timeline.Times).To(Equal([]int{0, 1, 5, 12}))
		Expect(completions(result)).To(Equal([]int{12, 5}))
		Expect(waits(result)).To(Equal([]int{4, 0}))
	})

	It("should merge a run that an arrival did not interrupt", func() {
		result := ShortestRemainingTimeFirst([]core.Process{
			core.NewProcess(1, 0, 4, 0),
			core.NewProcess(2, 2, 5, 0),
		})

		Expect(result.Timeline.Labels).To(Equal([]string{"P1", "P2"}))
		Expect(result.Timeline.Times).To(Equal([]int{0, 4, 9}))
	})

	It("should keep the earlier arrival on equal remaining time", func() {
		result := ShortestRemainingTimeFirst([]core.Process{
			core.NewProcess(1, 0, 5, 0),
			core.NewProcess(2, 2, 3, 0),
		})

		Expect(result.Timeline.Labels).To(Equal([]string{"P1", "P2"}))
		Expect(result.Timeline.Times).To(Equal([]int{0, 5, 8}))
	})

	It("should record the first time a process gets the CPU", func() {
		result := ShortestRemainingTimeFirst([]core.Process{
			core.NewProcess(1, 0, 8, 0),
			core.NewProcess(2, 1, 4, 0),
			core.NewProcess(3, 2, 9, 0),
		})

		Expect(result.Processes[0].StartTime).To(Equal(0))
		Expect(result.Processes[1].StartTime).To(Equal(1))
		Expect(result.Processes[2].StartTime).To(Equal(12))
		Expect(result.Processes[2].ResponseTime).To(Equal(10))
	})

	It("should produce the same chart as a unit-step simulation", func() {
		procs := []core.Process{
			core.NewProcess(1, 0, 7, 0),
			core.NewProcess(2, 2, 4, 0),
			core.NewProcess(3, 4, 1, 0),
			core.NewProcess(4, 5, 4, 0),
			core.NewProcess(5, 20, 2, 0),
		}

		Expect(ShortestRemainingTimeFirst(procs).Timeline).To(Equal(unitStepSRTF(procs)))
	})
})

// unitStepSRTF advances one unit per iteration and serves as a reference for
// the event-driven loop.
func unitStepSRTF(input []core.Process) core.Timeline {
	procs := core.FreshCopies(input)
	raw := core.NewTimeline()
	t := 0
	for completed := 0; completed < len(procs); {
		idx := shortestRemaining(procs, t)
		if idx == -1 {
			next, _ := nextArrival(procs)
			raw.Append(core.IdleLabel, next)
			t = next
			continue
		}
		procs[idx].RemainingBurst--
		t++
		raw.Append(core.ProcessLabel(procs[idx].PID), t)
		if procs[idx].RemainingBurst == 0 {
			completed++
		}
	}
	return core.Merge(raw)
}
