// Package recording stores simulation runs so they can be looked up later.
package recording

import (
	"errors"

	"cpu-scheduler-sim/internal/responses"
)

var (
	ErrRunNotFound       = errors.New("run not found")
	ErrRecordingDisabled = errors.New("recording is disabled")
)

// Recorder persists the analytics of finished runs.
type Recorder interface {
	// Record stores response and returns the id assigned to the run.
	Record(response responses.ScheduleResponse) (string, error)

	// Load returns a previously recorded run.
	Load(runID string) (responses.ScheduleResponse, error)

	Close() error
}

// Nop is used when recording is turned off.
type Nop struct{}

func (Nop) Record(responses.ScheduleResponse) (string, error) { return "", nil }

func (Nop) Load(string) (responses.ScheduleResponse, error) {
	return responses.ScheduleResponse{}, ErrRecordingDisabled
}

func (Nop) Close() error { return nil }
