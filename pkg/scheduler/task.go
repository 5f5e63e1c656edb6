package scheduler

type task struct {
	priority int
	step     Step
	data     any
	destroy  DestroyFunc
	async    *Async

	// ready queue links
	prev, next *task
}

func newTask(a *Async, priority int, step Step, data any, destroy DestroyFunc) *task {
	return &task{
		priority: priority,
		step:     step,
		data:     data,
		destroy:  destroy,
		async:    a,
	}
}

// release drops the task data, running the destroy function at most once.
func (t *task) release(runDestroy bool) {
	if runDestroy && t.destroy != nil {
		t.destroy(t.data)
	}
	t.destroy = nil
	t.data = nil
	t.step = nil
}
