package srtconn

import (
	"time"

	"github.com/valyala/bytebufferpool"

	"github.com/srtgo-facade/srtconn/internal/registry"
	"github.com/srtgo-facade/srtconn/internal/srtapi"
)

// pollTimeout bounds every Poller.Wait so a loop observes a stop request
// within one quantum, per SPEC_FULL.md §5.
const pollTimeout = 500 * time.Millisecond

// maxPollEvents is the per-wait event batch cap (the source's MAX_WORKERS,
// which governs harvesting, not a thread pool size; see SPEC_FULL.md §4.3).
const maxPollEvents = 5

// dispatchOnce runs one Poller.Wait and dispatches the resulting events.
// It is shared by the multi-client server's Event Engine thread, the
// single-client worker's inline Event Engine phase, and the client's
// recv/dispatch loop — all three are "poll, receive one message per
// readable socket, tear down broken sockets" per SPEC_FULL.md §4.5/§4.6.
func (i *Instance) dispatchOnce(poller *srtapi.Poller, reg *registry.Registry) error {
	ev, err := poller.Wait(pollTimeout, maxPollEvents)
	if err != nil {
		return err
	}

	for _, h := range ev.Readable {
		i.handleReadable(poller, reg, h)
	}
	for _, h := range ev.Broken {
		i.teardown(poller, reg, h, nil)
	}
	return nil
}

func (i *Instance) handleReadable(poller *srtapi.Poller, reg *registry.Registry, h srtapi.Handle) {
	sock, ok := poller.Get(h)
	if !ok {
		return
	}
	ctxVal, _ := reg.Get(uint64(h))
	ctx, _ := ctxVal.(*NetworkConnection)

	if i.cbs.preferNoCopy() {
		i.receiveNoCopy(sock, ctx, poller, reg, h)
		return
	}
	i.receiveCopy(sock, ctx, poller, reg, h)
}

func (i *Instance) receiveNoCopy(sock *srtapi.Socket, ctx *NetworkConnection, poller *srtapi.Poller, reg *registry.Registry, h srtapi.Handle) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.B = buf.B[:cap(buf.B)]
	if len(buf.B) < i.maxPayload {
		buf.B = make([]byte, i.maxPayload)
	}

	n, err := sock.Read(buf.B)
	if err != nil {
		i.teardown(poller, reg, h, err)
		return
	}

	ctrl := MsgCtrl{}
	if i.cbs.receivedDataNoCopy != nil {
		i.cbs.receivedDataNoCopy(buf.B[:n], ctrl, ctx, SocketHandle(h))
	}
}

func (i *Instance) receiveCopy(sock *srtapi.Socket, ctx *NetworkConnection, poller *srtapi.Poller, reg *registry.Registry, h srtapi.Handle) {
	scratch := make([]byte, i.maxPayload)
	n, err := sock.Read(scratch)
	if err != nil {
		i.teardown(poller, reg, h, err)
		return
	}

	if i.cbs.receivedData == nil {
		return
	}
	owned := make([]byte, n)
	copy(owned, scratch[:n])
	i.cbs.receivedData(owned, MsgCtrl{}, ctx, SocketHandle(h))
}

// teardown removes h from the Poller and Registry, invokes
// clientDisconnected with the context that was stored for it, and closes
// the socket — in that order, per SPEC_FULL.md §4.5. cause is the error
// that triggered the teardown, if any; it is only used for logging.
func (i *Instance) teardown(poller *srtapi.Poller, reg *registry.Registry, h srtapi.Handle, cause error) {
	sock, ok := poller.Get(h)
	if !ok {
		return
	}

	_ = poller.Remove(h)
	ctxVal, _ := reg.Remove(uint64(h))
	ctx, _ := ctxVal.(*NetworkConnection)
	i.sockets.Delete(uint64(h))

	if cause != nil {
		i.log.debugf("socket %d broken: %v", h, cause)
	}

	if i.cbs.clientDisconnected != nil {
		i.cbs.clientDisconnected(ctx, SocketHandle(h))
	}

	_ = sock.Close()
}
