//go:build linux

package guestfs

import (
	"time"

	"golang.org/x/sys/unix"
)

func statMtime(st *unix.Stat_t) time.Time {
	return time.Unix(int64(st.Mtim.Sec), int64(st.Mtim.Nsec))
}
