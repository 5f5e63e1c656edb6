//go:build linux

package threadhint

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// On Linux PRIO_PROCESS with a thread id only affects that thread.
func setRelativePriority(nice int) error {
	if nice == 0 {
		return nil
	}
	tid := unix.Gettid()
	if err := unix.Setpriority(unix.PRIO_PROCESS, tid, nice); err != nil {
		return fmt.Errorf("threadhint: setpriority(%d, %d) failed: %w", tid, nice, err)
	}
	return nil
}
