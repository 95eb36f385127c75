package srtconn

// MsgCtrl mirrors the subset of libsrt's SRT_MSGCTRL that this facade
// exposes to callbacks and to sendData. It is passed by value. The receive
// path hands every data callback a zero MsgCtrl, and SendData does not pass
// ctrl to the socket: none of these fields is read from or written to
// libsrt.
type MsgCtrl struct {
	// MsgTTLMs bounds how long an unsent message may linger before being
	// dropped; 0 is "no TTL" and -1 means unspecified.
	MsgTTLMs int
	// InOrder requests in-order delivery relative to other messages on
	// the same socket.
	InOrder bool
	// No is the message's sequence number slot; the facade leaves it at 0.
	No int64
}

// ClientConnectedFunc validates and attaches a context to a newly accepted
// socket. Returning nil rejects the connection: it is closed and never
// reaches the Registry, so no clientDisconnected is ever delivered for it.
type ClientConnectedFunc func(peerAddress string, newSocket SocketHandle, serverCtx *NetworkConnection, info ConnectionInformation) *NetworkConnection

// ReceivedDataFunc delivers an owned copy of one received message.
type ReceivedDataFunc func(payload []byte, ctrl MsgCtrl, connCtx *NetworkConnection, socket SocketHandle)

// ReceivedDataNoCopyFunc delivers a borrowed view of one received message.
// The slice is only valid for the duration of the call; it must not escape.
type ReceivedDataNoCopyFunc func(payload []byte, ctrl MsgCtrl, connCtx *NetworkConnection, socket SocketHandle)

// ClientDisconnectedFunc fires at most once per accepted or connected
// socket, after it has been removed from the Registry/Poller (server) or
// the client has observed it break.
type ClientDisconnectedFunc func(connCtx *NetworkConnection, socket SocketHandle)

// ConnectedToServerFunc fires once a client's connect attempt succeeds,
// before the recv/dispatch loop starts delivering data for it.
type ConnectedToServerFunc func(connCtx *NetworkConnection, socket SocketHandle, info ConnectionInformation)

// callbacks is the bag of user hooks an Instance carries. clientConnected is
// the only one startServer requires.
type callbacks struct {
	clientConnected    ClientConnectedFunc
	receivedData       ReceivedDataFunc
	receivedDataNoCopy ReceivedDataNoCopyFunc
	clientDisconnected ClientDisconnectedFunc
	connectedToServer  ConnectedToServerFunc
}

// preferNoCopy reports whether the no-copy path should be used: it is
// preferred whenever it is installed, regardless of whether the copy path
// is also installed.
func (c callbacks) preferNoCopy() bool {
	return c.receivedDataNoCopy != nil
}

func (c callbacks) hasDataCallback() bool {
	return c.receivedData != nil || c.receivedDataNoCopy != nil
}
