//go:build !linux && !freebsd

package writer

import "os"

// syncData flushes file contents to disk.
func syncData(f *os.File) error {
	return f.Sync()
}
