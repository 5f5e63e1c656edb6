// Package services implements the business logic layer of asyncd.
//
// Services sit between the HTTP handlers and the scheduler. They depend on
// small interfaces (Resizer, Submitter) rather than on *scheduler.Scheduler so
// they can be tested with fakes.
//
// # Service Dependency Graph
//
//	Handlers (HTTP endpoints)      viper (config file)
//	    │                               │ OnConfigChange
//	    ▼                               ▼
//	Services Layer
//	    ├── Parallelism ──► Resizer   (Scheduler.Resize / Workers)
//	    └── Jobs ─────────► Submitter (Scheduler.Submit / SubmitIndependent)
//
// # Parallelism
//
// Parallelism is the configuration bridge. It observes the desired worker
// count and resizes the pool:
//
//	config change ──► Apply(load) ──► backoff.Retry(load) ──► SetDesired(n)
//	                                                             │
//	                                                             ▼
//	                                                   Resize(n, finishTasks=true)
//
// Key behaviors:
//   - A negative count means one worker per CPU; counts are clamped to MaxThreads
//   - Routine reconfiguration lets removed workers finish their current task
//   - A config file read while half written is retried with exponential backoff
//   - Shutdown is Resize(0, false): running tasks are asked to cancel and the
//     queue is aborted
//
// Usage:
//
//	p := services.NewParallelism(sched, cfg.Scheduler.MaxThreads)
//	p.Watch(ctx, v, "scheduler.num-threads")
//	defer p.Shutdown()
//
// # Jobs
//
// Jobs submits synthetic multi-step jobs and keeps their history. Every step
// call performs one bounded unit of work (a sleep of StepDuration) and checks
// for cancellation before it, so a running job stops within one step of a
// Cancel.
//
// Job lifecycle (mirrors scheduler.State):
//
//	┌─────────┐    ┌─────────┐    ┌───────────┐
//	│ Pending │───►│ Running │───►│ Completed │
//	└─────────┘    └─────────┘    └───────────┘
//	     │              │
//	     │   (cancel)   │ (cancel, next step)
//	     ▼              ▼
//	┌──────────────────────┐
//	│       Canceled       │
//	└──────────────────────┘
//
// Jobs in flight are tracked in a scheduler.Set, which drops them on
// completion; CancelAll and Wait operate on that set.
//
// Usage:
//
//	jobs := services.NewJobsService(sched)
//	job := jobs.Create(models.JobSpec{Steps: 10, StepDuration: 5 * time.Millisecond})
//	_, err := jobs.Cancel(job.ID)
//
// # Thread Safety
//
// Both services guard their state with a sync.Mutex and never hold it while
// calling into the scheduler's cancellation or callback paths.
package services
