//go:build linux || freebsd

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncData flushes file contents to disk. Metadata is covered by the rename.
func syncData(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
