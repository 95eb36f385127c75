package srtconn

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/srtgo-facade/srtconn/internal/registry"
	"github.com/srtgo-facade/srtconn/internal/srtapi"
)

// Mode is the Facade's current operating mode.
type Mode int32

const (
	ModeUnknown Mode = iota
	ModeServer
	ModeClient
)

func (m Mode) String() string {
	switch m {
	case ModeServer:
		return "Server"
	case ModeClient:
		return "Client"
	default:
		return "Unknown"
	}
}

// SocketHandle is the public, sentinel-friendly socket identity: 0 means
// "none" at every surface that returns one.
type SocketHandle uint64

// Instance is a single façade object: Unknown, Server, or Client mode,
// never more than one at a time, per SPEC_FULL.md §3.
type Instance struct {
	mu   sync.Mutex // serializes start/stop transitions
	mode atomic.Int32

	log instanceLogger
	cbs callbacks

	cfg        Configuration
	maxPayload int
	serverCtx  *NetworkConnection

	active atomic.Bool

	// sockets tracks every live socket this Instance currently owns
	// (accepted or caller), keyed by handle, independent of whichever
	// short-lived Poller currently has it registered. Stop uses it to
	// close whatever is still in the Registry once the loops have
	// exited, since by then the owning Poller may already be gone
	// (single-client and client mode re-create one per cycle).
	sockets sync.Map // uint64 -> *srtapi.Socket

	// server-mode state
	listener atomic.Value // *srtapi.Socket; the currently live listening socket, if any
	registry *registry.Registry
	pool     *loopPool
	wg       sync.WaitGroup

	// client-mode state
	clientCtx    *NetworkConnection
	clientSocket atomic.Value // *srtapi.Socket
	connected    atomic.Bool
	connInfo     atomic.Value // ConnectionInformation
}

// NewInstance returns an Instance in Unknown mode. prefix is prepended to
// every line this Instance itself logs.
func NewInstance(logPrefix string) *Instance {
	i := &Instance{
		log:      instanceLogger{prefix: logPrefix},
		registry: registry.New(),
	}
	i.connInfo.Store(unknownConnectionInformation())
	return i
}

func (i *Instance) isActive() bool { return i.active.Load() }

func (i *Instance) setListener(sock *srtapi.Socket) { i.listener.Store(sock) }

func (i *Instance) getListener() (*srtapi.Socket, bool) {
	v := i.listener.Load()
	if v == nil {
		return nil, false
	}
	sock, ok := v.(*srtapi.Socket)
	return sock, ok && sock != nil
}

// GetCurrentMode reports Unknown, Server, or Client.
func (i *Instance) GetCurrentMode() Mode { return Mode(i.mode.Load()) }

// SetClientConnected installs the server's required connect-validation
// callback.
func (i *Instance) SetClientConnected(fn ClientConnectedFunc) { i.cbs.clientConnected = fn }

// SetReceivedData installs the owned-copy data callback.
func (i *Instance) SetReceivedData(fn ReceivedDataFunc) { i.cbs.receivedData = fn }

// SetReceivedDataNoCopy installs the borrowed-buffer data callback. When
// both this and SetReceivedData are installed, the no-copy path wins.
func (i *Instance) SetReceivedDataNoCopy(fn ReceivedDataNoCopyFunc) { i.cbs.receivedDataNoCopy = fn }

// SetClientDisconnected installs the disconnect callback (server and
// client).
func (i *Instance) SetClientDisconnected(fn ClientDisconnectedFunc) { i.cbs.clientDisconnected = fn }

// SetConnectedToServer installs the client's post-connect callback.
func (i *Instance) SetConnectedToServer(fn ConnectedToServerFunc) { i.cbs.connectedToServer = fn }

func validateConfiguration(cfg Configuration) error {
	if cfg.MTU <= 0 || cfg.MTU > 65535 {
		return newErr(KindConfigurationRejected, errors.Errorf("invalid MTU %d", cfg.MTU))
	}
	if cfg.PSK != "" && (len(cfg.PSK) < 10 || len(cfg.PSK) > 79) {
		return newErr(KindConfigurationRejected, errors.Errorf("PSK length %d outside [10,79]", len(cfg.PSK)))
	}
	return nil
}

// connectionInformation fetches peer version/latency from sock, falling
// back to the sentinel values when the underlying option read fails.
func (i *Instance) connectionInformation(sock *srtapi.Socket) ConnectionInformation {
	version, latency := sock.Information(unknownProtocolVersion, unknownLatency)
	return ConnectionInformation{PeerSRTVersion: version, NegotiatedLatencyMs: latency}
}
