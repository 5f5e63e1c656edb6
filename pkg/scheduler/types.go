package scheduler

import (
	"math"
	"time"
)

const (
	// PriorityDefault is the priority of ordinary work.
	PriorityDefault = 0
	// PriorityMustRunNext is reserved for tasks boosted by NotifyWaiting.
	PriorityMustRunNext = math.MinInt

	// MaxThreads bounds the number of pool workers.
	MaxThreads = 64
)

// Step is one resumable unit of work. Returning true asks the scheduler to call it
// again later; returning false means the task is finished.
//
// A step should perform a bounded amount of work per call. The worker keeps calling the
// same step for as long as it stays at least as urgent as the head of the ready queue, so
// a step that never returns starves everything queued behind it.
type Step func(a *Async, data any) bool

// DestroyFunc releases the data of a task that is aborted before it finishes.
type DestroyFunc func(data any)

type State int32

const (
	StatePending State = iota
	StateRunning
	StateWaiting
	StateCanceled
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateWaiting:
		return "waiting"
	case StateCanceled:
		return "canceled"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can happen from s.
func (s State) Terminal() bool {
	return s == StateCanceled || s == StateCompleted
}

// Stats is a point-in-time view of the scheduler.
type Stats struct {
	Workers     int
	Queued      int
	Running     int
	Independent int
}

// Metrics receives scheduler events. Implementations must be safe for concurrent use.
// RecordQueueDepth is called with the scheduler lock held so successive depths arrive in
// order; it must not block or call back into the scheduler.
type Metrics interface {
	RecordQueueDepth(depth int)
	RecordWorkers(n int)
	RecordIndependentThreads(n int)
	RecordTaskFinished(state State)
	RecordStepDuration(priority int, d time.Duration)
}

type nilMetrics struct{}

func (nilMetrics) RecordQueueDepth(int)                  {}
func (nilMetrics) RecordWorkers(int)                     {}
func (nilMetrics) RecordIndependentThreads(int)          {}
func (nilMetrics) RecordTaskFinished(State)              {}
func (nilMetrics) RecordStepDuration(int, time.Duration) {}

// Option configures a Scheduler.
type Option func(s *Scheduler)

// WithMaxThreads lowers the upper bound applied by Resize. Values outside [1, MaxThreads] are ignored.
func WithMaxThreads(n int) Option {
	return func(s *Scheduler) {
		if n >= 1 && n <= MaxThreads {
			s.maxThreads = n
		}
	}
}

func WithMetrics(m Metrics) Option {
	return func(s *Scheduler) {
		if m != nil {
			s.metrics = m
		}
	}
}
