package srtconn

import (
	"github.com/srtgo-facade/srtconn/internal/registry"
	"github.com/srtgo-facade/srtconn/internal/srtapi"
)

// StartServer binds and listens per opts, then starts accepting
// connections. It fails, synchronously and without touching any socket
// other than the local bind attempt, if clientConnected is not installed or
// the configuration is rejected.
func (i *Instance) StartServer(localHost string, localPort uint16, serverCtx *NetworkConnection, opts ...Option) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.GetCurrentMode() != ModeUnknown {
		i.log.warnf("startServer called while not Unknown")
		return false
	}

	if i.cbs.clientConnected == nil {
		i.log.errorf("startServer rejected: clientConnected callback is required")
		return false
	}

	cfg := buildConfiguration(opts...)
	cfg.LocalHost, cfg.LocalPort = localHost, localPort

	if err := validateConfiguration(cfg); err != nil {
		i.log.errorf("startServer rejected: %v", err)
		return false
	}

	listener, err := newListenerSocket(cfg)
	if err != nil {
		i.log.errorf("startServer failed: %v", err)
		return false
	}

	if !cfg.SingleClient {
		raiseFileDescriptorLimit(i.log)
	}

	i.cfg = cfg
	i.maxPayload = liveModeMaxPayload(cfg.MTU)
	i.serverCtx = serverCtx
	i.setListener(listener)
	i.registry = registry.New()
	i.active.Store(true)

	capacity := 2
	if cfg.SingleClient {
		capacity = 1
	}
	pool, err := newLoopPool(capacity, i.log)
	if err != nil {
		i.log.errorf("startServer failed: %v", err)
		i.active.Store(false)
		_ = listener.Close()
		return false
	}
	i.pool = pool

	if cfg.SingleClient {
		i.wg.Add(1)
		_ = i.pool.spawn("single-client-worker", func() {
			defer i.wg.Done()
			i.singleClientWorker(listener)
		})
	} else {
		poller, err := srtapi.NewPoller()
		if err != nil {
			i.log.errorf("startServer failed: %v", err)
			i.active.Store(false)
			_ = listener.Close()
			return false
		}

		i.wg.Add(2)
		_ = i.pool.spawn("acceptor", func() {
			defer i.wg.Done()
			i.acceptLoop(listener, poller, i.registry)
		})
		_ = i.pool.spawn("event-engine", func() {
			defer i.wg.Done()
			for i.isActive() {
				if err := i.dispatchOnce(poller, i.registry); err != nil {
					i.log.debugf("poller wait error: %v", err)
				}
			}
			_ = poller.Close()
		})
	}

	i.mode.Store(int32(ModeServer))
	return true
}

// singleClientWorker implements SPEC_FULL.md §4.4's single-client cycle:
// accept one, tear the listener down, run the Event Engine inline until
// that one client disconnects, then reopen the listener and repeat.
func (i *Instance) singleClientWorker(firstListener *srtapi.Socket) {
	listener := firstListener
	for i.isActive() {
		if listener == nil {
			var err error
			listener, err = newListenerSocket(i.cfg)
			if err != nil {
				i.log.warnf("single-client relisten failed: %v", err)
				continue
			}
			i.setListener(listener)

			// Stop may have run (and found nothing to close, or an
			// already-superseded listener) in the window between the
			// isActive check that started this iteration and the
			// setListener call just above. Re-checking here, after the
			// new listener is visible to getListener, guarantees that if
			// Stop runs concurrently with or after this point it will
			// find and close this exact listener, so the blocking Accept
			// below can never wait on a socket Stop has given up on.
			if !i.isActive() {
				_ = listener.Close()
				i.setListener(nil)
				return
			}
		}

		poller, err := srtapi.NewPoller()
		if err != nil {
			i.log.errorf("single-client poller failed: %v", err)
			_ = listener.Close()
			listener = nil
			i.setListener(nil)
			continue
		}

		accepted, err := i.acceptOne(listener, poller, i.registry)
		_ = listener.Close()
		listener = nil
		i.setListener(nil)

		if err != nil {
			_ = poller.Close()
			if !i.isActive() {
				return
			}
			i.log.warnf("single-client accept error: %v", err)
			continue
		}
		if !accepted {
			_ = poller.Close()
			continue
		}

		for i.isActive() && i.registry.Len() > 0 {
			if err := i.dispatchOnce(poller, i.registry); err != nil {
				i.log.debugf("poller wait error: %v", err)
				for _, h := range poller.Sockets() {
					i.teardown(poller, i.registry, h, err)
				}
				break
			}
		}
		_ = poller.Close()
	}
}
