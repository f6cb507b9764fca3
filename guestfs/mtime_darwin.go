//go:build darwin

package guestfs

import (
	"time"

	"golang.org/x/sys/unix"
)

func statMtime(st *unix.Stat_t) time.Time {
	return time.Unix(int64(st.Mtimespec.Sec), int64(st.Mtimespec.Nsec))
}
