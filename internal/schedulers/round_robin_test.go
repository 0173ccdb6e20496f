package schedulers

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"cpu-scheduler-sim/internal/core"
)

var _ = Describe("processQueue", func() {
	It("should be FIFO without duplicates", func() {
		q := newProcessQueue(3)

		Expect(q.AddToEnd(2)).To(BeTrue())
		Expect(q.AddToEnd(0)).To(BeTrue())
		Expect(q.AddToEnd(2)).To(BeFalse())
		Expect(q.Len()).To(Equal(2))

		idx, ok := q.RemoveFromTop()
		Expect(ok).To(BeTrue())
		Expect(idx).To(Equal(2))

		Expect(q.AddToEnd(2)).To(BeTrue())
		idx, _ = q.RemoveFromTop()
		Expect(idx).To(Equal(0))
		idx, _ = q.RemoveFromTop()
		Expect(idx).To(Equal(2))

		_, ok = q.RemoveFromTop()
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("RoundRobin", func() {
	It("should queue arrivals ahead of the preempted process", func() {
		result := RoundRobin([]core.Process{
			core.NewProcess(1, 0, 5, 0),
			core.NewProcess(2, 1, 3, 0),
		}, 2)

		Expect(result.TimeQuantum).To(Equal(2))
		Expect(result.Timeline.Labels).To(Equal([]string{"P1", "P2", "P1", "P2", "P1"}))
		Expect(result.Timeline.Times).To(Equal([]int{0, 2, 4, 6, 7, 8}))
		Expect(completions(result)).To(Equal([]int{8, 7}))
		Expect(waits(result)).To(Equal([]int{3, 3}))
	})

	It("should queue an arrival at the exact end of a turn first", func() {
		result := RoundRobin([]core.Process{
			core.NewProcess(1, 0, 4, 0),
			core.NewProcess(2, 2, 2, 0),
		}, 2)

		Expect(result.Timeline.Labels).To(Equal([]string{"P1", "P2", "P1"}))
		Expect(result.Timeline.Times).To(Equal([]int{0, 2, 4, 6}))
	})

	It("should merge consecutive turns of a lone process", func() {
		result := RoundRobin([]core.Process{
			core.NewProcess(1, 0, 5, 0),
		}, 2)

		Expect(result.Timeline.Labels).To(Equal([]string{"P1"}))
		Expect(result.Timeline.Times).To(Equal([]int{0, 5}))
	})

	It("should behave like FCFS with a large quantum", func() {
		procs := []core.Process{
			core.NewProcess(1, 0, 5, 0),
			core.NewProcess(2, 1, 3, 0),
			core.NewProcess(3, 2, 8, 0),
		}

		Expect(RoundRobin(procs, 100).Timeline).To(Equal(FirstComeFirstServe(procs).Timeline))
	})

	It("should idle until the next arrival", func() {
		result := RoundRobin([]core.Process{
			core.NewProcess(1, 3, 1, 0),
			core.NewProcess(2, 6, 2, 0),
		}, 1)

		Expect(result.Timeline.Labels).To(Equal([]string{core.IdleLabel, "P1", core.IdleLabel, "P2"}))
		Expect(result.Timeline.Times).To(Equal([]int{0, 3, 4, 6, 8}))
	})
})
