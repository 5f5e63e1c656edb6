// Package threadhint adjusts the OS scheduling priority of the calling thread.
//
// The caller must have locked its goroutine to the OS thread (runtime.LockOSThread)
// before calling SetRelativePriority, otherwise the hint lands on whichever thread
// the goroutine happens to run on.
package threadhint

const (
	// ElevatedNice is the nice value applied for negative priorities.
	ElevatedNice = -5
	// BackgroundNice is the nice value applied for positive priorities.
	BackgroundNice = 10
)

// SetRelativePriority elevates the calling thread for negative priorities and lowers it
// for positive ones. Zero leaves the thread untouched. On platforms without per-thread
// priority control it does nothing.
func SetRelativePriority(priority int) error {
	return setRelativePriority(Nice(priority))
}

// Nice maps a task priority to the nice value SetRelativePriority applies.
func Nice(priority int) int {
	switch {
	case priority < 0:
		return ElevatedNice
	case priority > 0:
		return BackgroundNice
	default:
		return 0
	}
}
