//go:build !(linux || freebsd || dragonfly || darwin)

package srtconn

// raiseFileDescriptorLimit is a no-op on platforms without RLIMIT_NOFILE.
func raiseFileDescriptorLimit(log instanceLogger) {}
