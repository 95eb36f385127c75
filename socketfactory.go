package srtconn

import (
	"github.com/srtgo-facade/srtconn/internal/srtapi"
)

const listenBacklog = 16

func socketParams(cfg Configuration) srtapi.Params {
	return srtapi.Params{
		ReorderWindow:     cfg.ReorderWindow,
		LatencyMs:         cfg.LatencyMs,
		OverheadPercent:   cfg.OverheadPercent,
		MTU:               cfg.MTU,
		PeerIdleTimeoutMs: cfg.PeerIdleTimeoutMs,
		PSK:               cfg.PSK,
		StreamID:          cfg.StreamID,
		IPv6Only:          cfg.IPv6Only,
	}
}

// newListenerSocket resolves cfg's local endpoint, builds the srtgo option
// map, and binds+listens. Role-specific translation lives in
// internal/srtapi per SPEC_FULL.md §4.1.
func newListenerSocket(cfg Configuration) (*srtapi.Socket, error) {
	host, err := srtapi.Resolve(cfg.LocalHost, cfg.IPv6Only)
	if err != nil {
		return nil, wrapErr(KindAddressResolutionFailed, err, "resolve local host %q", cfg.LocalHost)
	}

	opts := srtapi.BuildOptions(socketParams(cfg), srtapi.RoleListener)
	sock, err := srtapi.NewListener(host, cfg.LocalPort, opts, listenBacklog)
	if err != nil {
		return nil, wrapErr(KindListenFailed, err, "listen on %s:%d", host, cfg.LocalPort)
	}
	return sock, nil
}

// newCallerSocket resolves cfg's remote endpoint and builds a not-yet-
// connected caller socket. The caller is responsible for invoking Connect.
func newCallerSocket(cfg Configuration) (*srtapi.Socket, error) {
	host, err := srtapi.Resolve(cfg.RemoteHost, cfg.IPv6Only)
	if err != nil {
		return nil, wrapErr(KindAddressResolutionFailed, err, "resolve remote host %q", cfg.RemoteHost)
	}

	opts := srtapi.BuildOptions(socketParams(cfg), srtapi.RoleCaller)
	sock, err := srtapi.NewCaller(host, cfg.RemotePort, opts)
	if err != nil {
		return nil, wrapErr(KindConnectFailed, err, "create caller socket for %s:%d", host, cfg.RemotePort)
	}
	return sock, nil
}

// liveModeMaxPayload derives SRT's live-mode per-message payload ceiling
// from the configured MTU: MTU minus the fixed IPv4/UDP/SRT header
// overhead libsrt reserves in live mode.
func liveModeMaxPayload(mtu int) int {
	const headerOverhead = 44
	max := mtu - headerOverhead
	if max < 0 {
		return 0
	}
	return max
}
