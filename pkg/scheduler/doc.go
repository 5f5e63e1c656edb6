// Package scheduler implements a priority-ordered engine for resumable background tasks.
//
// Work is submitted as a step function that is called repeatedly until it reports that it
// is finished. Each submission returns an *Async handle used to observe, wait for or cancel
// the task. Tasks run on a resizable pool of workers, synchronously on the caller when the
// pool is empty, or on a dedicated OS thread when submitted as independent.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                           Scheduler                                 │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 1   │      │   Worker 2   │      │   Worker N   │       │
//	│  │  current: T  │      │  current: -  │      │  current: T  │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	│         ▲                     ▲                     ▲               │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                               │ popFront / requeue                  │
//	│  ┌────────────────────────────┴────────────────────────────┐        │
//	│  │             Ready Queue (sorted, intrusive)             │        │
//	│  │  [p=MIN] ⇄ [p=-1] ⇄ [p=0] ⇄ [p=0] ⇄ [p=10] ...         │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                               ▲                                     │
//	│            mu + cond          │ insert                              │
//	│                        Submit(priority, step, data, destroy)        │
//	└─────────────────────────────────────────────────────────────────────┘
//
//	SubmitIndependent ──► dedicated goroutine locked to its OS thread
//
// # Submission Paths
//
//	┌──────────────────────┬─────────────────────────────────────────────┐
//	│ Path                 │ Behavior                                    │
//	├──────────────────────┼─────────────────────────────────────────────┤
//	│ Submit, workers > 0  │ queued, returns immediately                 │
//	│ Submit, workers == 0 │ runs on the caller, handle already finished │
//	│ SubmitIndependent    │ own OS thread, priority hint from sign      │
//	└──────────────────────┴─────────────────────────────────────────────┘
//
// # Ready Queue
//
// The queue is a doubly linked list sorted by priority (lower is more urgent) with FIFO
// order among equal priorities. New tasks are inserted by scanning from the least urgent
// end. The handle of a queued task points at its list node, so Cancel removes a queued
// task in O(1) and NotifyWaiting moves it to the front in O(1). A binary heap supports
// neither, which is why the queue is a list.
//
// # Worker Loop
//
//	lock
//	for {
//	    for !quit && queue not empty {
//	        t := popFront(); current = t
//	        unlock
//	        for {
//	            resume := t.step(async, data)
//	            lock
//	            if !resume || t less urgent than queue head { break }
//	            unlock
//	        }
//	        current = nil
//	        if resume { requeue(t) } else { complete(t) }
//	    }
//	    if quit { return }
//	    cond.Wait()
//	}
//
// Step functions always run without the lock, so they may submit more work.
//
// # Task Lifecycle
//
//	┌─────────┐  dequeued   ┌─────────┐  step returns false  ┌───────────┐
//	│ Pending │ ──────────► │ Running │ ───────────────────► │ Completed │
//	└─────────┘             └─────────┘                      └───────────┘
//	     │  ▲                 │     │
//	     │  └── requeued ─────┘     │ requeued after NotifyWaiting
//	     │                          ▼
//	     │                    ┌─────────┐
//	     │                    │ Waiting │ (front of the queue)
//	     │                    └─────────┘
//	     │ Cancel while queued / drain abort
//	     ▼
//	┌──────────┐
//	│ Canceled │  also reached when the step calls Abort or panics
//	└──────────┘
//
// Completion callbacks run exactly once, in registration order, when the handle enters
// Completed or Canceled.
//
// # Cancellation
//
// Cancellation is cooperative:
//   - A queued task is removed, its DestroyFunc runs and the handle is Canceled before
//     Cancel returns.
//   - A running task only has its flag set. Its step should poll IsCancelRequested, call
//     Abort and return false.
//   - Canceling a finished handle does nothing.
//
// # Priority Boost
//
// A task that is about to block on other work calls NotifyWaiting. If it is queued it
// moves to the front right away; if it is running, its next requeue puts it in front of
// everything else with PriorityMustRunNext. Waiting on a handle with Wait or WaitContext
// sends the same notification.
//
// # Resizing
//
//	Resize(n, finishTasks)
//	  n > workers: spawn workers
//	  n < workers: flag removed workers to quit, cancel their tasks unless finishTasks,
//	               wake idle workers, wait for every removed worker to exit
//	  n == 0:      drain the queue, running (finishTasks) or aborting each task
//
// Close is Resize(0, false).
//
// # Usage Example
//
//	sched := scheduler.NewScheduler(4)
//	defer sched.Close()
//
//	rows := 0
//	a := sched.Submit(10, func(a *scheduler.Async, data any) bool {
//	    if a.IsCancelRequested() {
//	        a.Abort()
//	        return false
//	    }
//	    rows++ // one row per call
//	    return rows < 1000
//	}, nil, nil)
//
//	a.AddCallback(func(a *scheduler.Async) {
//	    log.Printf("render done: %s", a.State())
//	})
//	a.Wait()
package scheduler
