package scheduler

import (
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/tupyy/async-engine/pkg/threadhint"
)

type thread struct {
	exited chan struct{}
	once   sync.Once
}

// SubmitIndependent runs step on a dedicated OS thread outside the pool, whatever the
// pool size or an ongoing Resize. Negative priorities raise the thread's OS priority,
// positive ones lower it.
func (s *Scheduler) SubmitIndependent(priority int, step Step, data any) *Async {
	a := newAsync()
	t := newTask(a, priority, step, data, nil)
	th := &thread{exited: make(chan struct{})}

	s.metrics.RecordIndependentThreads(int(s.independent.Add(1)))
	a.AddCallback(func(*Async) {
		go s.join(th)
	})

	go func() {
		defer close(th.exited)
		// never unlocked: the thread carries a modified priority and is terminated
		// together with this goroutine.
		runtime.LockOSThread()

		if err := threadhint.SetRelativePriority(priority); err != nil {
			zap.S().Named("scheduler").Debugw("failed to set thread priority", "task", a.id, "priority", priority, "error", err)
		}
		s.runSync(t)
	}()

	return a
}

// join waits for an independent thread to exit. Only the first call does anything.
func (s *Scheduler) join(th *thread) {
	th.once.Do(func() {
		<-th.exited
		s.metrics.RecordIndependentThreads(int(s.independent.Add(-1)))
	})
}
