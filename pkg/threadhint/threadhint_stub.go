//go:build !linux

package threadhint

func setRelativePriority(int) error {
	return nil
}
