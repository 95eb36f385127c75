package srtconn

import "testing"

func TestNewNetworkConnectionWrapsValue(t *testing.T) {
	nc := NewNetworkConnection(42)
	if nc.Value != 42 {
		t.Errorf("Value = %v; want 42", nc.Value)
	}
}

func TestUnknownConnectionInformationSentinels(t *testing.T) {
	info := unknownConnectionInformation()
	if info.PeerSRTVersion != unknownProtocolVersion {
		t.Errorf("PeerSRTVersion = %q; want %q", info.PeerSRTVersion, unknownProtocolVersion)
	}
	if info.NegotiatedLatencyMs != unknownLatency {
		t.Errorf("NegotiatedLatencyMs = %d; want %d", info.NegotiatedLatencyMs, unknownLatency)
	}
}
