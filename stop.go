package srtconn

import "github.com/srtgo-facade/srtconn/internal/srtapi"

// Stop is idempotent and always succeeds. It closes the owning socket(s) to
// unblock any in-flight accept/connect/recv, joins the instance's loops,
// drains whatever is left in the Registry (invoking clientDisconnected
// outside the Registry's lock, though still under the Instance's start/stop
// mutex, then closing the socket), and returns the Facade to Unknown mode.
func (i *Instance) Stop() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	mode := i.GetCurrentMode()
	if mode == ModeUnknown {
		return true
	}

	i.active.Store(false)

	if mode == ModeServer {
		if sock, ok := i.getListener(); ok {
			_ = sock.Close()
		}
	}
	if mode == ModeClient {
		if sock, ok := i.loadClientSocket(); ok && sock != nil {
			_ = sock.Close()
		}
	}

	i.wg.Wait()
	if i.pool != nil {
		i.pool.release()
		i.pool = nil
	}

	for _, entry := range i.registry.Clear() {
		ctx, _ := entry.Ctx.(*NetworkConnection)
		if i.cbs.clientDisconnected != nil {
			i.cbs.clientDisconnected(ctx, SocketHandle(entry.Handle))
		}
		if v, ok := i.sockets.Load(entry.Handle); ok {
			if sock, ok := v.(*srtapi.Socket); ok {
				_ = sock.Close()
			}
			i.sockets.Delete(entry.Handle)
		}
	}

	if mode == ModeServer {
		i.setListener(nil)
	}
	if mode == ModeClient {
		i.connected.Store(false)
		i.clientSocket.Store((*srtapi.Socket)(nil))
	}

	i.mode.Store(int32(ModeUnknown))
	return true
}

func (i *Instance) loadClientSocket() (*srtapi.Socket, bool) {
	v := i.clientSocket.Load()
	if v == nil {
		return nil, false
	}
	sock, ok := v.(*srtapi.Socket)
	return sock, ok
}
