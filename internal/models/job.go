package models

import (
	"fmt"
	"time"
)

type JobState string

const (
	JobStatePending   JobState = "pending"
	JobStateRunning   JobState = "running"
	JobStateWaiting   JobState = "waiting"
	JobStateCanceled  JobState = "canceled"
	JobStateCompleted JobState = "completed"
)

func ParseJobState(s string) (JobState, error) {
	switch s {
	case "pending":
		return JobStatePending, nil
	case "running":
		return JobStateRunning, nil
	case "waiting":
		return JobStateWaiting, nil
	case "canceled":
		return JobStateCanceled, nil
	case "completed":
		return JobStateCompleted, nil
	default:
		return "", fmt.Errorf("invalid job state: %s", s)
	}
}

// JobSpec describes a synthetic job: Steps calls of the step function, each
// sleeping StepDuration.
type JobSpec struct {
	Steps        int
	StepDuration time.Duration
	Priority     int
	Independent  bool
}

type Job struct {
	ID         string
	Spec       JobSpec
	State      JobState
	StepsDone  int
	CreatedAt  time.Time
	FinishedAt *time.Time
	Error      error
}
