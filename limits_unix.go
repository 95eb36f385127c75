//go:build linux || freebsd || dragonfly || darwin

package srtconn

import "golang.org/x/sys/unix"

// raiseFileDescriptorLimit best-effort raises RLIMIT_NOFILE toward its hard
// limit so a multi-client server isn't starved of sockets by a low default
// soft limit. Failure is logged at debug and never fails startServer.
func raiseFileDescriptorLimit(log instanceLogger) {
	var rlim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rlim); err != nil {
		log.debugf("getrlimit failed: %v", err)
		return
	}
	if rlim.Cur >= rlim.Max {
		return
	}
	rlim.Cur = rlim.Max
	if err := unix.Setrlimit(unix.RLIMIT_NOFILE, &rlim); err != nil {
		log.debugf("setrlimit failed: %v", err)
	}
}
