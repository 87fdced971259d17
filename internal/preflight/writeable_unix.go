//go:build !windows

package preflight

import "golang.org/x/sys/unix"

func checkWriteable(dir string) error {
	return unix.Access(dir, unix.W_OK)
}
