package services

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/tupyy/async-engine/internal/models"
	srvErrors "github.com/tupyy/async-engine/pkg/errors"
	"github.com/tupyy/async-engine/pkg/scheduler"
)

// Submitter is the part of the scheduler used to run jobs.
type Submitter interface {
	Submit(priority int, step scheduler.Step, data any, destroy scheduler.DestroyFunc) *scheduler.Async
	SubmitIndependent(priority int, step scheduler.Step, data any) *scheduler.Async
}

type jobRun struct {
	spec models.JobSpec
	done atomic.Int32
}

type jobEntry struct {
	async      *scheduler.Async
	run        *jobRun
	createdAt  time.Time
	finishedAt *time.Time
}

// Jobs runs synthetic multi-step jobs on the scheduler and keeps their history.
type Jobs struct {
	submitter Submitter
	inFlight  *scheduler.Set

	mu   sync.Mutex
	jobs map[string]*jobEntry
}

func NewJobsService(s Submitter) *Jobs {
	return &Jobs{
		submitter: s,
		inFlight:  scheduler.NewSet(),
		jobs:      make(map[string]*jobEntry),
	}
}

func (j *Jobs) Create(spec models.JobSpec) models.Job {
	spec.Steps = max(1, spec.Steps)
	r := &jobRun{spec: spec}

	var a *scheduler.Async
	if spec.Independent {
		a = j.submitter.SubmitIndependent(spec.Priority, runJobStep, r)
	} else {
		a = j.submitter.Submit(spec.Priority, runJobStep, r, discardJob)
	}

	id := a.ID().String()
	e := &jobEntry{async: a, run: r, createdAt: time.Now()}

	j.mu.Lock()
	j.jobs[id] = e
	j.mu.Unlock()

	j.inFlight.Add(a)
	a.AddCallback(func(a *scheduler.Async) {
		now := time.Now()

		j.mu.Lock()
		e.finishedAt = &now
		j.mu.Unlock()

		zap.S().Named("jobs").Debugw("job finished", "id", id, "state", a.State().String(), "steps", r.done.Load())
	})

	zap.S().Named("jobs").Infow("job submitted", "id", id, "priority", spec.Priority, "steps", spec.Steps, "independent", spec.Independent)

	j.mu.Lock()
	defer j.mu.Unlock()
	return e.toModel(id)
}

// Get returns the job or a ResourceNotFoundError.
func (j *Jobs) Get(id string) (models.Job, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	e, ok := j.jobs[id]
	if !ok {
		return models.Job{}, srvErrors.NewJobNotFoundError(id)
	}
	return e.toModel(id), nil
}

// List returns every known job, oldest first.
func (j *Jobs) List() []models.Job {
	j.mu.Lock()
	defer j.mu.Unlock()

	jobs := make([]models.Job, 0, len(j.jobs))
	for id, e := range j.jobs {
		jobs = append(jobs, e.toModel(id))
	}
	slices.SortFunc(jobs, func(a, b models.Job) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return jobs
}

// Cancel requests cancellation of a job. A queued job is canceled at once; a
// running one stops at its next step.
func (j *Jobs) Cancel(id string) (models.Job, error) {
	j.mu.Lock()
	e, ok := j.jobs[id]
	j.mu.Unlock()
	if !ok {
		return models.Job{}, srvErrors.NewJobNotFoundError(id)
	}

	e.async.Cancel()

	return j.Get(id)
}

func (j *Jobs) CancelAll() {
	j.inFlight.Cancel()
}

func (j *Jobs) Running() int {
	return j.inFlight.Len()
}

// Wait blocks until every job in flight is finished or ctx is done.
func (j *Jobs) Wait(ctx context.Context) error {
	return j.inFlight.Wait(ctx)
}

func (e *jobEntry) toModel(id string) models.Job {
	state, err := models.ParseJobState(e.async.State().String())
	if err != nil {
		state = models.JobStatePending
	}
	return models.Job{
		ID:         id,
		Spec:       e.run.spec,
		State:      state,
		StepsDone:  int(e.run.done.Load()),
		CreatedAt:  e.createdAt,
		FinishedAt: e.finishedAt,
		Error:      e.async.Err(),
	}
}

// runJobStep performs one bounded unit of work per call: a single sleep.
func runJobStep(a *scheduler.Async, data any) bool {
	r := data.(*jobRun)

	if a.IsCancelRequested() {
		a.Abort()
		return false
	}

	time.Sleep(r.spec.StepDuration)

	done := int(r.done.Add(1))
	if done >= r.spec.Steps {
		a.SetResult(done)
		return false
	}
	return true
}

func discardJob(data any) {
	r := data.(*jobRun)
	zap.S().Named("jobs").Debugw("job discarded before completion", "steps", r.done.Load())
}
