package srtconn

// GetActiveClients returns a snapshot of every connected client's context
// (server mode only).
func (i *Instance) GetActiveClients() []*NetworkConnection {
	entries := i.registry.Snapshot()
	out := make([]*NetworkConnection, 0, len(entries))
	for _, e := range entries {
		if ctx, ok := e.Ctx.(*NetworkConnection); ok {
			out = append(out, ctx)
		}
	}
	return out
}

// GetActiveClientSockets returns a snapshot of every connected client's
// socket handle (server mode only).
func (i *Instance) GetActiveClientSockets() []SocketHandle {
	handles := i.registry.Sockets()
	out := make([]SocketHandle, 0, len(handles))
	for _, h := range handles {
		out = append(out, SocketHandle(h))
	}
	return out
}

// GetConnectedServer returns the client socket and context if connected,
// or (0, nil) otherwise.
func (i *Instance) GetConnectedServer() (SocketHandle, *NetworkConnection) {
	if !i.connected.Load() {
		return 0, nil
	}
	sock, ok := i.loadClientSocket()
	if !ok || sock == nil {
		return 0, nil
	}
	return SocketHandle(sock.Handle()), i.clientCtx
}

// IsConnectedToServer reports the client's current connection state.
func (i *Instance) IsConnectedToServer() bool {
	return i.connected.Load()
}

// GetBoundSocket returns the listening (server) or client socket's handle,
// or 0 if not bound.
func (i *Instance) GetBoundSocket() SocketHandle {
	switch i.GetCurrentMode() {
	case ModeServer:
		sock, ok := i.getListener()
		if !ok {
			return 0
		}
		return SocketHandle(sock.Handle())
	case ModeClient:
		sock, ok := i.loadClientSocket()
		if !ok || sock == nil {
			return 0
		}
		return SocketHandle(sock.Handle())
	default:
		return 0
	}
}

// GetLocallyBoundPort returns the actual bound local port (useful after
// starting with local port 0), or 0 if not bound.
func (i *Instance) GetLocallyBoundPort() uint16 {
	switch i.GetCurrentMode() {
	case ModeServer:
		sock, ok := i.getListener()
		if !ok {
			return 0
		}
		return sock.LocalPort()
	case ModeClient:
		sock, ok := i.loadClientSocket()
		if !ok || sock == nil {
			return 0
		}
		return sock.LocalPort()
	default:
		return 0
	}
}
