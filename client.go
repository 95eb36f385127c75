package srtconn

import (
	"time"

	"github.com/pkg/errors"

	"github.com/srtgo-facade/srtconn/internal/srtapi"
)

// connectTimeout caps every blocking connect attempt regardless of the
// configured peer-idle timeout, per SPEC_FULL.md §4.6.
const connectTimeout = time.Second

// StartClient connects (and, once running, transparently reconnects) to
// remoteHost:remotePort. With WithFailOnConnectionError(true) (the
// FailOnConnectionError field set via opts), the first connect attempt is
// synchronous and a failure fails this call; with it false, a failed first
// attempt still starts a retrying worker. Address resolution is always
// synchronous and always fails the call on error.
func (i *Instance) StartClient(clientCtx *NetworkConnection, remoteHost string, remotePort uint16, opts ...Option) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.GetCurrentMode() != ModeUnknown {
		i.log.warnf("startClient called while not Unknown")
		return false
	}

	cfg := buildConfiguration(opts...)
	cfg.RemoteHost, cfg.RemotePort = remoteHost, remotePort

	if err := validateConfiguration(cfg); err != nil {
		i.log.errorf("startClient rejected: %v", err)
		return false
	}

	if _, err := srtapi.Resolve(cfg.RemoteHost, cfg.IPv6Only); err != nil {
		i.log.errorf("startClient address resolution failed: %v", err)
		return false
	}

	i.cfg = cfg
	i.maxPayload = liveModeMaxPayload(cfg.MTU)
	i.clientCtx = clientCtx
	i.active.Store(true)

	var initialSock *srtapi.Socket
	if cfg.FailOnConnectionError {
		sock, info, err := i.connectOnce()
		if err != nil {
			i.log.errorf("startClient failed to connect: %v", err)
			i.active.Store(false)
			return false
		}
		i.onConnected(sock, info)
		initialSock = sock
	}

	pool, err := newLoopPool(1, i.log)
	if err != nil {
		i.log.errorf("startClient failed: %v", err)
		i.active.Store(false)
		if initialSock != nil {
			_ = initialSock.Close()
		}
		return false
	}
	i.pool = pool

	i.wg.Add(1)
	_ = i.pool.spawn("client-worker", func() {
		defer i.wg.Done()
		i.clientWorker(initialSock)
	})

	i.mode.Store(int32(ModeClient))
	return true
}

// connectOnce builds a caller socket and blocks on Connect, bounded by
// connectTimeout. A PSK mismatch surfaces here as KindConnectFailed, same
// as any other rejected handshake.
func (i *Instance) connectOnce() (*srtapi.Socket, ConnectionInformation, error) {
	sock, err := newCallerSocket(i.cfg)
	if err != nil {
		return nil, ConnectionInformation{}, err
	}

	done := make(chan error, 1)
	go func() { done <- sock.Connect() }()

	select {
	case err := <-done:
		if err != nil {
			_ = sock.Close()
			return nil, ConnectionInformation{}, wrapErr(KindConnectFailed, err, "connect to %s:%d", i.cfg.RemoteHost, i.cfg.RemotePort)
		}
	case <-time.After(connectTimeout):
		_ = sock.Close()
		return nil, ConnectionInformation{}, wrapErr(KindConnectFailed, errors.New("connect timed out"), "connect to %s:%d", i.cfg.RemoteHost, i.cfg.RemotePort)
	}

	return sock, i.connectionInformation(sock), nil
}

func (i *Instance) onConnected(sock *srtapi.Socket, info ConnectionInformation) {
	i.clientSocket.Store(sock)
	i.connInfo.Store(info)
	i.connected.Store(true)
	if i.cbs.connectedToServer != nil {
		i.cbs.connectedToServer(i.clientCtx, SocketHandle(sock.Handle()), info)
	}
}

// clientWorker implements SPEC_FULL.md §4.6: connect, dispatch until
// broken, invoke clientDisconnected, and — unless stop has been requested
// — reconnect. initialSock, if non-nil, is an already-connected socket from
// a synchronous first attempt in StartClient.
func (i *Instance) clientWorker(initialSock *srtapi.Socket) {
	sock := initialSock
	for i.isActive() {
		if sock == nil {
			s, info, err := i.connectOnce()
			if err != nil {
				i.log.debugf("client connect attempt failed: %v", err)
				continue
			}
			sock = s
			i.onConnected(sock, info)
		}

		poller, err := srtapi.NewPoller()
		if err != nil {
			i.log.errorf("client poller failed: %v", err)
			_ = sock.Close()
			sock = nil
			continue
		}
		if err := poller.Add(sock); err != nil {
			i.log.errorf("client poller add failed: %v", err)
			_ = poller.Close()
			_ = sock.Close()
			sock = nil
			continue
		}

		i.registry.Insert(uint64(sock.Handle()), i.clientCtx)
		i.sockets.Store(uint64(sock.Handle()), sock)

		for i.isActive() && i.registry.Len() > 0 {
			if err := i.dispatchOnce(poller, i.registry); err != nil {
				i.log.debugf("client poller wait error: %v", err)
				i.teardown(poller, i.registry, sock.Handle(), err)
				break
			}
		}

		_ = poller.Close()
		i.clientSocket.Store((*srtapi.Socket)(nil))
		i.connected.Store(false)
		sock = nil
	}
}
