package scheduler

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	srvErrors "github.com/tupyy/async-engine/pkg/errors"
)

type worker struct {
	id      int
	quit    bool
	current *task
	done    chan struct{}
}

type Scheduler struct {
	// mu guards queue, workers, size and the queue links of every Async.
	mu      sync.Mutex
	cond    *sync.Cond
	queue   readyQueue
	workers []*worker
	size    int

	// serializes Resize calls.
	resizeMu sync.Mutex
	closeOnce sync.Once

	nextWorkerID int
	maxThreads   int
	independent  atomic.Int32
	metrics      Metrics
}

// NewScheduler creates a scheduler with nbWorkers pool workers. With zero workers every
// submitted task runs synchronously on the submitting goroutine.
func NewScheduler(nbWorkers int, opts ...Option) *Scheduler {
	s := &Scheduler{
		maxThreads: MaxThreads,
		metrics:    nilMetrics{},
	}
	s.cond = sync.NewCond(&s.mu)
	for _, opt := range opts {
		opt(s)
	}
	s.Resize(nbWorkers, true)
	return s
}

// Submit schedules step on the worker pool and returns immediately. When the pool has no
// workers the task runs to completion before Submit returns.
func (s *Scheduler) Submit(priority int, step Step, data any, destroy DestroyFunc) *Async {
	a := newAsync()
	t := newTask(a, priority, step, data, destroy)

	s.mu.Lock()
	if s.size == 0 {
		s.mu.Unlock()
		s.runSync(t)
		return a
	}
	a.observer = s
	s.queue.insert(t)
	s.metrics.RecordQueueDepth(s.queue.len())
	s.cond.Signal()
	s.mu.Unlock()

	return a
}

// Resize grows or shrinks the pool to n workers, clamped to [0, max threads]. Removed
// workers finish their current task (finishTasks) or have it canceled, and Resize waits
// for them to exit. Resizing to zero drains the ready queue: remaining tasks run to
// completion on the caller when finishTasks is set, otherwise they are aborted.
func (s *Scheduler) Resize(n int, finishTasks bool) {
	s.resizeMu.Lock()
	defer s.resizeMu.Unlock()

	n = max(0, min(n, s.maxThreads))

	s.mu.Lock()
	current := len(s.workers)
	if n == current {
		s.mu.Unlock()
		return
	}

	if n > current {
		for i := current; i < n; i++ {
			w := &worker{id: s.nextWorkerID, done: make(chan struct{})}
			s.nextWorkerID++
			s.workers = append(s.workers, w)
			go s.work(w)
		}
		s.size = n
		s.mu.Unlock()

		zap.S().Named("scheduler").Infow("worker pool resized", "from", current, "to", n)
		s.metrics.RecordWorkers(n)
		return
	}

	removed := make([]*worker, current-n)
	copy(removed, s.workers[n:])
	clear(s.workers[n:])
	s.workers = s.workers[:n]
	s.size = n

	var running []*Async
	for _, w := range removed {
		w.quit = true
		if !finishTasks && w.current != nil {
			running = append(running, w.current.async)
		}
	}
	s.cond.Broadcast()
	s.mu.Unlock()

	for _, a := range running {
		a.Cancel()
	}
	for _, w := range removed {
		<-w.done
	}

	if n == 0 {
		s.drain(finishTasks)
	}

	zap.S().Named("scheduler").Infow("worker pool resized", "from", current, "to", n, "finish_tasks", finishTasks)
	s.metrics.RecordWorkers(n)
}

// Close shuts the pool down, aborting every task still queued.
func (s *Scheduler) Close() {
	s.closeOnce.Do(func() {
		s.Resize(0, false)
	})
}

func (s *Scheduler) Workers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

func (s *Scheduler) QueueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.len()
}

func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{
		Workers:     s.size,
		Queued:      s.queue.len(),
		Independent: int(s.independent.Load()),
	}
	for _, w := range s.workers {
		if w.current != nil {
			stats.Running++
		}
	}
	return stats
}

func (s *Scheduler) work(w *worker) {
	defer close(w.done)

	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		for !w.quit && s.queue.len() > 0 {
			t := s.queue.popFront()
			w.current = t
			t.async.setState(StateRunning)
			s.metrics.RecordQueueDepth(s.queue.len())
			s.mu.Unlock()

			var resume bool
			for {
				resume = s.step(t)
				s.mu.Lock()
				// keep the task while it is at least as urgent as anything else ready
				if !resume || (s.queue.len() > 0 && t.priority > s.queue.front().priority) {
					break
				}
				s.mu.Unlock()
			}

			w.current = nil
			if resume {
				s.requeue(t)
			} else {
				s.mu.Unlock()
				s.complete(t)
				s.mu.Lock()
			}
		}

		if w.quit {
			return
		}
		s.cond.Wait()
	}
}

// requeue puts a resumed task back into the ready queue. Must hold s.mu.
func (s *Scheduler) requeue(t *task) {
	a := t.async
	if a.boosted {
		a.boosted = false
		t.priority = PriorityMustRunNext
		s.queue.pushFront(t)
		a.setState(StateWaiting)
	} else {
		s.queue.insert(t)
		a.setState(StatePending)
	}
	s.metrics.RecordQueueDepth(s.queue.len())
	s.cond.Signal()
}

// step runs one call of the task's step function, recovering panics.
func (s *Scheduler) step(t *task) (resume bool) {
	start := time.Now()
	defer func() {
		s.metrics.RecordStepDuration(t.priority, time.Since(start))
		if rec := recover(); rec != nil {
			zap.S().Named("scheduler").Errorw("task panicked", "task", t.async.id, "panic", rec)
			t.async.mu.Lock()
			t.async.err = srvErrors.NewTaskPanicError(rec)
			t.async.mu.Unlock()
			t.async.Abort()
			resume = false
		}
	}()
	return t.step(t.async, t.data)
}

// runSync runs a task to completion on the calling goroutine.
func (s *Scheduler) runSync(t *task) {
	t.async.setState(StateRunning)
	for s.step(t) {
	}
	s.complete(t)
}

// complete finalizes a task whose step returned false.
func (s *Scheduler) complete(t *task) {
	a := t.async
	state := StateCompleted
	if a.aborted.Load() {
		state = StateCanceled
	}
	t.release(false)
	if a.finish(state, nil) {
		s.metrics.RecordTaskFinished(state)
		zap.S().Named("scheduler").Debugw("task finished", "task", a.id, "state", state.String())
	}
}

// abort finalizes a task that never got to finish, destroying its data.
func (s *Scheduler) abort(t *task) {
	a := t.async
	t.release(true)
	if a.finish(StateCanceled, nil) {
		s.metrics.RecordTaskFinished(StateCanceled)
		zap.S().Named("scheduler").Debugw("task aborted", "task", a.id)
	}
}

func (s *Scheduler) drain(finishTasks bool) {
	count := 0
	for {
		s.mu.Lock()
		t := s.queue.popFront()
		s.metrics.RecordQueueDepth(s.queue.len())
		s.mu.Unlock()
		if t == nil {
			break
		}
		count++
		if finishTasks {
			s.runSync(t)
		} else {
			s.abort(t)
		}
	}

	if count > 0 {
		zap.S().Named("scheduler").Infow("ready queue drained", "tasks", count, "finish_tasks", finishTasks)
	}
}

// cancel removes a queued task and aborts it. Tasks that are running or already
// finished are left alone.
func (s *Scheduler) cancel(a *Async) {
	s.mu.Lock()
	t := a.link
	if t == nil {
		s.mu.Unlock()
		return
	}
	s.queue.remove(t)
	s.metrics.RecordQueueDepth(s.queue.len())
	s.mu.Unlock()

	s.abort(t)
}

// waiting boosts a task: a queued one moves to the front now, a running one on its
// next requeue.
func (s *Scheduler) waiting(a *Async) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := a.link
	if t == nil {
		a.boosted = true
		return
	}
	s.queue.remove(t)
	t.priority = PriorityMustRunNext
	s.queue.pushFront(t)
	a.setState(StateWaiting)
}
