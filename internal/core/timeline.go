package core

import "fmt"

const IdleLabel = "IDLE"

func ProcessLabel(pid int) string {
	return fmt.Sprintf("P%d", pid)
}

// Timeline holds segment boundaries and labels. Labels[i] ran during
// [Times[i], Times[i+1]), so len(Times) == len(Labels)+1.
type Timeline struct {
	Times  []int
	Labels []string
}

type Segment struct {
	Label string
	Start int
	End   int
}

func NewTimeline() Timeline {
	return Timeline{Times: []int{0}}
}

// End is the time at which the last recorded segment closes.
func (t Timeline) End() int {
	if len(t.Times) == 0 {
		return 0
	}
	return t.Times[len(t.Times)-1]
}

// Append records label as running from End() up to end. Empty segments are
// dropped.
func (t *Timeline) Append(label string, end int) {
	if len(t.Times) == 0 {
		t.Times = []int{0}
	}
	if end <= t.End() {
		return
	}
	t.Labels = append(t.Labels, label)
	t.Times = append(t.Times, end)
}

func (t Timeline) Segments() []Segment {
	segments := make([]Segment, 0, len(t.Labels))
	for i, label := range t.Labels {
		segments = append(segments, Segment{Label: label, Start: t.Times[i], End: t.Times[i+1]})
	}
	return segments
}

func (t Timeline) IdleTime() int {
	idle := 0
	for _, s := range t.Segments() {
		if s.Label == IdleLabel {
			idle += s.End - s.Start
		}
	}
	return idle
}

// Merge collapses runs of equal consecutive labels into one segment. The
// input is left untouched.
func Merge(t Timeline) Timeline {
	if len(t.Labels) == 0 {
		return Timeline{Times: append([]int(nil), t.Times...)}
	}

	merged := Timeline{
		Times:  []int{t.Times[0]},
		Labels: []string{t.Labels[0]},
	}
	for i := 1; i < len(t.Labels); i++ {
		if t.Labels[i] == merged.Labels[len(merged.Labels)-1] {
			continue
		}
		merged.Times = append(merged.Times, t.Times[i])
		merged.Labels = append(merged.Labels, t.Labels[i])
	}
	merged.Times = append(merged.Times, t.End())
	return merged
}
