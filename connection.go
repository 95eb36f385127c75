package srtconn

// NetworkConnection is the application's opaque per-connection handle. The
// facade never inspects it; it is attached by clientConnected (server) or at
// startClient (client) and handed back on every subsequent event for that
// socket. The application owns it and is responsible for its lifetime: it
// must remain valid until clientDisconnected has returned.
type NetworkConnection struct {
	// Value is the application payload, downcast by the application on
	// its own terms. A tagged opaque handle rather than an interface
	// hierarchy: the facade carries it, never calls methods on it.
	Value interface{}
}

// NewNetworkConnection wraps an arbitrary application value as a
// NetworkConnection.
func NewNetworkConnection(v interface{}) *NetworkConnection {
	return &NetworkConnection{Value: v}
}

const unknownProtocolVersion = "unknown"
const unknownLatency = -1

// ConnectionInformation is populated after a successful connect/accept.
type ConnectionInformation struct {
	// PeerSRTVersion is the peer's SRT protocol version string, or
	// "unknown" when unavailable.
	PeerSRTVersion string
	// NegotiatedLatencyMs is the negotiated latency in milliseconds, or
	// -1 when unavailable.
	NegotiatedLatencyMs int
}

func unknownConnectionInformation() ConnectionInformation {
	return ConnectionInformation{
		PeerSRTVersion:      unknownProtocolVersion,
		NegotiatedLatencyMs: unknownLatency,
	}
}
