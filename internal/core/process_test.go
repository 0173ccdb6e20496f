package core

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Process", func() {
	It("should start with the full burst remaining", func() {
		p := NewProcess(1, 2, 5, 3)

		Expect(p.RemainingBurst).To(Equal(5))
		Expect(p.StartTime).To(Equal(-1))
		Expect(p.Completed()).To(BeFalse())
	})

	It("should only be ready after arrival", func() {
		p := NewProcess(1, 2, 5, 0)

		Expect(p.ReadyAt(1)).To(BeFalse())
		Expect(p.ReadyAt(2)).To(BeTrue())
	})

	It("should never run longer than the remaining burst", func() {
		p := NewProcess(1, 0, 3, 0)

		Expect(p.Run(4, 2)).To(Equal(2))
		Expect(p.StartTime).To(Equal(4))
		Expect(p.ResponseTime).To(Equal(4))

		Expect(p.Run(6, 5)).To(Equal(1))
		Expect(p.StartTime).To(Equal(4))
		Expect(p.Completed()).To(BeTrue())
	})

	It("should compute completion metrics", func() {
		p := NewProcess(2, 1, 3, 0)
		p.Run(5, 3)
		p.Complete(8)

		Expect(p.CompletionTime).To(Equal(8))
		Expect(p.TurnaroundTime).To(Equal(7))
		Expect(p.WaitTime).To(Equal(4))
	})

	It("should reset outputs on Fresh", func() {
		p := NewProcess(1, 0, 4, 2)
		p.Run(0, 4)
		p.Complete(4)

		f := p.Fresh()

		Expect(f).To(Equal(NewProcess(1, 0, 4, 2)))
	})

	Context("validation", func() {
		It("should reject an empty process set", func() {
			Expect(ValidateProcesses(nil)).To(MatchError(ErrNoProcesses))
		})

		It("should reject non-positive bursts", func() {
			err := ValidateProcesses([]Process{NewProcess(1, 0, 0, 0)})
			Expect(err).To(MatchError(ErrInvalidProcess))
		})

		It("should reject negative arrival and priority", func() {
			Expect(NewProcess(1, -1, 2, 0).Validate()).To(MatchError(ErrInvalidProcess))
			Expect(NewProcess(1, 0, 2, -1).Validate()).To(MatchError(ErrInvalidProcess))
		})

		It("should reject duplicate pids", func() {
			err := ValidateProcesses([]Process{
				NewProcess(1, 0, 2, 0),
				NewProcess(1, 3, 2, 0),
			})
			Expect(err).To(MatchError(ErrDuplicatePID))
		})

		It("should reject a non-positive quantum", func() {
			Expect(ValidateQuantum(0)).To(MatchError(ErrInvalidQuantum))
			Expect(ValidateQuantum(2)).To(Succeed())
		})
	})

	It("should copy facts without aliasing", func() {
		in := []Process{NewProcess(1, 0, 2, 0)}
		out := FreshCopies(in)
		out[0].Run(0, 2)

		Expect(in[0].RemainingBurst).To(Equal(2))
	})
})
