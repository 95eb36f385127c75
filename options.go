package srtconn

// Configuration holds everything that is fixed for the lifetime of one
// start/stop cycle, per SPEC_FULL.md §3. It is never mutated after a
// successful startServer/startClient.
type Configuration struct {
	LocalHost string
	LocalPort uint16

	RemoteHost string
	RemotePort uint16

	ReorderWindow     int
	LatencyMs         int
	OverheadPercent   int
	MTU               int
	PeerIdleTimeoutMs int

	PSK      string
	StreamID string

	IPv6Only              bool
	FailOnConnectionError bool
	SingleClient          bool
}

// defaultConfiguration matches the conservative defaults a media-oriented
// SRT deployment typically runs with.
func defaultConfiguration() Configuration {
	return Configuration{
		ReorderWindow:     25,
		LatencyMs:         120,
		OverheadPercent:   25,
		MTU:               1500,
		PeerIdleTimeoutMs: 5000,
	}
}

// Option configures a Configuration; Options are applied in order, so a
// later Option overrides an earlier one for the same field.
type Option func(*Configuration)

func WithReorderWindow(n int) Option { return func(c *Configuration) { c.ReorderWindow = n } }
func WithLatency(ms int) Option      { return func(c *Configuration) { c.LatencyMs = ms } }
func WithOverhead(percent int) Option {
	return func(c *Configuration) { c.OverheadPercent = percent }
}
func WithMTU(mtu int) Option { return func(c *Configuration) { c.MTU = mtu } }
func WithPeerIdleTimeout(ms int) Option {
	return func(c *Configuration) { c.PeerIdleTimeoutMs = ms }
}
func WithPSK(psk string) Option           { return func(c *Configuration) { c.PSK = psk } }
func WithStreamID(id string) Option       { return func(c *Configuration) { c.StreamID = id } }
func WithIPv6Only(v bool) Option          { return func(c *Configuration) { c.IPv6Only = v } }
func WithSingleClient(v bool) Option      { return func(c *Configuration) { c.SingleClient = v } }
func WithFailOnConnectionError(v bool) Option {
	return func(c *Configuration) { c.FailOnConnectionError = v }
}

func buildConfiguration(opts ...Option) Configuration {
	cfg := defaultConfiguration()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
