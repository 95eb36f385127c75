package srtapi

import "strconv"

// Params is the subset of Configuration the adapter needs to build srtgo's
// string-keyed option map. It intentionally has no dependency on the
// top-level package's Configuration type to keep the import graph one-way.
type Params struct {
	ReorderWindow     int
	LatencyMs         int
	OverheadPercent   int
	MTU               int
	PeerIdleTimeoutMs int
	PSK               string
	StreamID          string
	IPv6Only          bool
}

// BuildOptions translates Params into the option map srtgo.NewSrtSocket
// expects, per the table in SPEC_FULL.md §4.1.
func BuildOptions(p Params, role Role) map[string]string {
	opts := map[string]string{
		"transtype":       "live",
		"messageapi":      "1",
		"latency":         strconv.Itoa(p.LatencyMs),
		"peeridletimeout": strconv.Itoa(p.PeerIdleTimeoutMs),
		"oheadbw":         strconv.Itoa(p.OverheadPercent),
		"fc":              strconv.Itoa(p.ReorderWindow),
		"mss":             strconv.Itoa(p.MTU),
	}

	if p.PSK != "" {
		opts["passphrase"] = p.PSK
		opts["pbkeylen"] = "16"
	}

	if role == RoleCaller && p.StreamID != "" {
		opts["streamid"] = p.StreamID
	}

	if role == RoleListener {
		if p.IPv6Only {
			opts["ipv6only"] = "1"
		} else {
			opts["ipv6only"] = "0"
		}
	}

	return opts
}
