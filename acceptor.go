package srtconn

import (
	"github.com/srtgo-facade/srtconn/internal/registry"
	"github.com/srtgo-facade/srtconn/internal/srtapi"
)

// acceptOne blocks on listener.Accept, runs clientConnected, and either
// wires the new socket into poller/reg or closes and drops it. It reports
// whether a connection was accepted into the Registry.
func (i *Instance) acceptOne(listener *srtapi.Socket, poller *srtapi.Poller, reg *registry.Registry) (accepted bool, err error) {
	sock, peerAddr, err := listener.Accept()
	if err != nil {
		return false, err
	}

	info := i.connectionInformation(sock)
	ctx := i.cbs.clientConnected(peerAddr, SocketHandle(sock.Handle()), i.serverCtx, info)
	if ctx == nil {
		_ = sock.Close()
		return false, nil
	}

	reg.Insert(uint64(sock.Handle()), ctx)
	if err := poller.Add(sock); err != nil {
		reg.Remove(uint64(sock.Handle()))
		_ = sock.Close()
		return false, err
	}
	i.sockets.Store(uint64(sock.Handle()), sock)
	return true, nil
}

// acceptLoop runs the multi-client Acceptor until the listener is closed
// out from under it (stop). A non-shutdown accept error is logged and the
// loop continues.
func (i *Instance) acceptLoop(listener *srtapi.Socket, poller *srtapi.Poller, reg *registry.Registry) {
	for i.isActive() {
		_, err := i.acceptOne(listener, poller, reg)
		if err != nil {
			if !i.isActive() {
				return
			}
			i.log.warnf("accept error: %v", err)
			continue
		}
	}
}
