package scheduler

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"
	"github.com/google/uuid"
)

// Callback is invoked once when an Async reaches Completed or Canceled.
type Callback func(a *Async)

// observer is implemented by the scheduler owning a queued task.
// Both methods take the scheduler lock, so they must not be called while holding it.
type observer interface {
	cancel(a *Async)
	waiting(a *Async)
}

// Async is the handle of a submitted task.
type Async struct {
	id    uuid.UUID
	state atomic.Int32

	cancelRequested atomic.Bool
	aborted         atomic.Bool

	// set before the handle is published, never changed afterwards.
	observer observer

	// guarded by the owning scheduler's mutex.
	link    *task
	boosted bool

	mu        sync.Mutex
	callbacks *queue.Queue
	done      chan struct{}
	result    any
	err       error
}

func newAsync() *Async {
	return &Async{
		id:        uuid.New(),
		callbacks: queue.New(),
		done:      make(chan struct{}),
	}
}

func (a *Async) ID() uuid.UUID {
	return a.id
}

func (a *Async) State() State {
	return State(a.state.Load())
}

func (a *Async) setState(s State) {
	a.state.Store(int32(s))
}

// Cancel requests cancellation. A task still waiting in the ready queue is removed,
// its data destroyed and the handle canceled before Cancel returns. A running task is
// only flagged; its step decides when to stop. Canceling a finished handle does nothing.
func (a *Async) Cancel() {
	if a.IsStopped() {
		return
	}
	a.cancelRequested.Store(true)
	if a.observer != nil {
		a.observer.cancel(a)
	}
}

func (a *Async) IsCancelRequested() bool {
	return a.cancelRequested.Load()
}

// NotifyWaiting asks the scheduler to run the task before anything else the next time it
// is ready. A task already in the ready queue moves to its front immediately.
func (a *Async) NotifyWaiting() {
	if a.observer == nil || a.IsStopped() {
		return
	}
	a.observer.waiting(a)
}

// Abort makes the task end Canceled instead of Completed once its step returns false.
// It is meant to be called from inside the step, typically after IsCancelRequested.
func (a *Async) Abort() {
	a.aborted.Store(true)
}

// SetResult stores the value returned by Result once the task has finished.
func (a *Async) SetResult(v any) {
	a.mu.Lock()
	a.result = v
	a.mu.Unlock()
}

func (a *Async) Result() any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result
}

// Err returns the failure recorded for the task, if any.
func (a *Async) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

func (a *Async) IsFinished() bool {
	return a.State() == StateCompleted
}

func (a *Async) IsCanceled() bool {
	return a.State() == StateCanceled
}

func (a *Async) IsStopped() bool {
	return a.State().Terminal()
}

// Done is closed once the handle is Completed or Canceled.
func (a *Async) Done() <-chan struct{} {
	return a.done
}

// AddCallback registers fn to run when the handle finishes. If it already has, fn runs
// immediately on the calling goroutine.
func (a *Async) AddCallback(fn Callback) {
	a.mu.Lock()
	if a.State().Terminal() {
		a.mu.Unlock()
		fn(a)
		return
	}
	a.callbacks.Add(fn)
	a.mu.Unlock()
}

// Wait blocks until the handle is finished. The task is boosted while someone waits for it.
func (a *Async) Wait() {
	_ = a.WaitContext(context.Background())
}

func (a *Async) WaitContext(ctx context.Context) error {
	select {
	case <-a.done:
		return nil
	default:
	}

	a.NotifyWaiting()

	select {
	case <-a.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// finish moves the handle into a terminal state and runs the callbacks in registration order.
// Only the first call has an effect.
func (a *Async) finish(s State, err error) bool {
	a.mu.Lock()
	if a.State().Terminal() {
		a.mu.Unlock()
		return false
	}
	if err != nil {
		a.err = err
	}
	a.setState(s)
	close(a.done)

	pending := make([]Callback, 0, a.callbacks.Length())
	for a.callbacks.Length() > 0 {
		pending = append(pending, a.callbacks.Remove().(Callback))
	}
	a.mu.Unlock()

	for _, fn := range pending {
		fn(a)
	}
	return true
}
