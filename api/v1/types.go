package v1

import "time"

// SchedulerStatus defines model for SchedulerStatus.
type SchedulerStatus struct {
	Desired     int `json:"desired"`
	Independent int `json:"independent"`
	Queued      int `json:"queued"`
	Running     int `json:"running"`
	Workers     int `json:"workers"`
}

// UpdateSchedulerJSONBody defines body for UpdateScheduler for application/json ContentType.
type UpdateSchedulerJSONBody struct {
	// Workers desired pool size, negative means one worker per CPU.
	Workers *int `json:"workers" binding:"required"`
}

// CreateJobJSONBody defines body for CreateJob for application/json ContentType.
type CreateJobJSONBody struct {
	Independent    bool `json:"independent"`
	Priority       *int `json:"priority,omitempty"`
	StepDurationMs int  `json:"stepDurationMs" binding:"min=0,max=60000"`
	Steps          int  `json:"steps" binding:"required,min=1,max=1000000"`
}

// JobState defines model for Job.State.
type JobState string

// Defines values for JobState.
const (
	JobStateCanceled  JobState = "canceled"
	JobStateCompleted JobState = "completed"
	JobStatePending   JobState = "pending"
	JobStateRunning   JobState = "running"
	JobStateWaiting   JobState = "waiting"
)

// Job defines model for Job.
type Job struct {
	CreatedAt      time.Time  `json:"createdAt"`
	Error          *string    `json:"error,omitempty"`
	FinishedAt     *time.Time `json:"finishedAt,omitempty"`
	Id             string     `json:"id"`
	Independent    bool       `json:"independent"`
	Priority       int        `json:"priority"`
	State          JobState   `json:"state"`
	StepDurationMs int64      `json:"stepDurationMs"`
	Steps          int        `json:"steps"`
	StepsDone      int        `json:"stepsDone"`
}

// JobList defines model for JobList.
type JobList struct {
	Jobs  []Job `json:"jobs"`
	Total int   `json:"total"`
}
