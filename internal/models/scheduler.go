package models

// SchedulerStatus is a snapshot of the engine.
type SchedulerStatus struct {
	Workers     int
	Desired     int
	Queued      int
	Running     int
	Independent int
}
