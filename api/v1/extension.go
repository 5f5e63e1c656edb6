package v1

import (
	"time"

	"github.com/tupyy/async-engine/internal/models"
)

func NewSchedulerStatusFromModel(m models.SchedulerStatus) SchedulerStatus {
	return SchedulerStatus{
		Desired:     m.Desired,
		Independent: m.Independent,
		Queued:      m.Queued,
		Running:     m.Running,
		Workers:     m.Workers,
	}
}

// NewJobFromModel converts a models.Job to an API Job.
func NewJobFromModel(job models.Job) Job {
	var state JobState
	switch job.State {
	case models.JobStateRunning:
		state = JobStateRunning
	case models.JobStateWaiting:
		state = JobStateWaiting
	case models.JobStateCanceled:
		state = JobStateCanceled
	case models.JobStateCompleted:
		state = JobStateCompleted
	default:
		state = JobStatePending
	}

	apiJob := Job{
		Id:             job.ID,
		State:          state,
		Priority:       job.Spec.Priority,
		Steps:          job.Spec.Steps,
		StepsDone:      job.StepsDone,
		StepDurationMs: job.Spec.StepDuration.Milliseconds(),
		Independent:    job.Spec.Independent,
		CreatedAt:      job.CreatedAt,
		FinishedAt:     job.FinishedAt,
	}

	if job.Error != nil {
		e := job.Error.Error()
		apiJob.Error = &e
	}

	return apiJob
}

func NewJobListFromModel(jobs []models.Job) JobList {
	list := JobList{Jobs: make([]Job, 0, len(jobs)), Total: len(jobs)}
	for _, j := range jobs {
		list.Jobs = append(list.Jobs, NewJobFromModel(j))
	}
	return list
}

// ToJobSpec converts the request body into a job spec.
func (b CreateJobJSONBody) ToJobSpec() models.JobSpec {
	spec := models.JobSpec{
		Steps:        b.Steps,
		StepDuration: time.Duration(b.StepDurationMs) * time.Millisecond,
		Independent:  b.Independent,
	}
	if b.Priority != nil {
		spec.Priority = *b.Priority
	}
	return spec
}
