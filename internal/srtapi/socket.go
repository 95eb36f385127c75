// Package srtapi adapts github.com/haivision/srtgo's cgo binding over
// libsrt to the small surface this module's engine needs: create a
// configured socket, accept/connect it, send/recv one message at a time,
// and poll many sockets for readiness. No package outside internal/srtapi
// imports srtgo directly.
package srtapi

import (
	"sync"
	"sync/atomic"

	"github.com/haivision/srtgo"
	"github.com/pkg/errors"
)

// Handle identifies a socket. Zero is never a live handle.
type Handle uint64

// Role distinguishes a listening socket from an outbound caller socket;
// some options (stream id, IPv6-only) only apply to one role.
type Role int

const (
	RoleListener Role = iota
	RoleCaller
)

// Socket wraps one *srtgo.SrtSocket with the identity (Handle) the rest of
// the module uses to key the Registry and the Poller.
type Socket struct {
	handle    Handle
	raw       *srtgo.SrtSocket
	role      Role
	closeOnce sync.Once
	closeErr  error
}

// handleSeq assigns monotonically increasing handles; srtgo sockets do not
// expose a stable integer id of their own that we want to leak as our
// public SocketHandle, so the adapter mints its own.
var handleSeq uint64

func nextHandle() Handle {
	return Handle(atomic.AddUint64(&handleSeq, 1))
}

// Handle returns the socket's adapter-level identity.
func (s *Socket) Handle() Handle { return s.handle }

// Information reports the peer's SRT protocol version and the negotiated
// latency, as read back from the socket's options after a successful
// connect/accept. Either value is left at its caller-supplied sentinel
// when the underlying option read fails.
func (s *Socket) Information(unknownVersion string, unknownLatency int) (version string, latencyMs int) {
	version, latencyMs = unknownVersion, unknownLatency
	if v, err := s.raw.GetSockOptString(srtgo.SRTO_VERSION); err == nil && v != "" {
		version = v
	}
	if lat, err := s.raw.GetSockOptInt(srtgo.SRTO_LATENCY); err == nil {
		latencyMs = lat
	}
	return version, latencyMs
}

// StreamID returns the stream id the peer (or, for a caller socket, this
// socket itself) presented during the handshake.
func (s *Socket) StreamID() (string, error) {
	return s.raw.GetSockOptString(srtgo.SRTO_STREAMID)
}

// NewListener creates, configures, binds and listens on host:port.
func NewListener(host string, port uint16, opts map[string]string, backlog int) (*Socket, error) {
	raw := srtgo.NewSrtSocket(host, port, opts)
	if raw == nil {
		return nil, errors.New("srtgo: socket creation failed")
	}
	if err := raw.Listen(backlog); err != nil {
		raw.Close()
		return nil, errors.Wrap(err, "listen")
	}
	return &Socket{handle: nextHandle(), raw: raw, role: RoleListener}, nil
}

// Accept blocks until a peer connects or the listener is closed.
func (s *Socket) Accept() (*Socket, string, error) {
	raw, addr, err := s.raw.Accept()
	if err != nil {
		return nil, "", err
	}
	return &Socket{handle: nextHandle(), raw: raw, role: RoleListener}, addr, nil
}

// NewCaller creates and configures a socket for an outbound connect; it
// does not block.
func NewCaller(host string, port uint16, opts map[string]string) (*Socket, error) {
	raw := srtgo.NewSrtSocket(host, port, opts)
	if raw == nil {
		return nil, errors.New("srtgo: socket creation failed")
	}
	return &Socket{handle: nextHandle(), raw: raw, role: RoleCaller}, nil
}

// Connect blocks until the handshake completes or fails.
func (s *Socket) Connect() error {
	return s.raw.Connect()
}

// Read receives exactly one message, up to len(buf) bytes.
func (s *Socket) Read(buf []byte) (int, error) {
	return s.raw.Read(buf)
}

// Write sends exactly one message.
func (s *Socket) Write(buf []byte) (int, error) {
	return s.raw.Write(buf)
}

// Close releases the socket. Safe to call more than once; only the first
// call's result is observed.
func (s *Socket) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.raw.Close()
	})
	return s.closeErr
}

// LocalPort returns the socket's locally bound port. When the socket was
// created with port 0 ("let the OS pick"), srtgo fills in the actual bound
// port on the socket itself once Listen/Connect has run, which is what this
// returns.
func (s *Socket) LocalPort() uint16 {
	return s.raw.Port
}
