package srtconn

import "testing"

func TestLiveModeMaxPayload(t *testing.T) {
	tests := []struct {
		mtu  int
		want int
	}{
		{1500, 1456},
		{1316, 1272},
		{44, 0},
		{40, 0}, // below the header overhead must clamp at zero, not go negative
		{0, 0},
	}
	for _, tc := range tests {
		if got := liveModeMaxPayload(tc.mtu); got != tc.want {
			t.Errorf("liveModeMaxPayload(%d) = %d; want %d", tc.mtu, got, tc.want)
		}
	}
}

func TestSocketParamsTranslatesConfiguration(t *testing.T) {
	cfg := Configuration{
		ReorderWindow:     40,
		LatencyMs:         180,
		OverheadPercent:   20,
		MTU:               1400,
		PeerIdleTimeoutMs: 7000,
		PSK:               "shared-secret",
		StreamID:          "stream-a",
		IPv6Only:          true,
	}
	p := socketParams(cfg)

	if p.ReorderWindow != cfg.ReorderWindow || p.LatencyMs != cfg.LatencyMs ||
		p.OverheadPercent != cfg.OverheadPercent || p.MTU != cfg.MTU ||
		p.PeerIdleTimeoutMs != cfg.PeerIdleTimeoutMs || p.PSK != cfg.PSK ||
		p.StreamID != cfg.StreamID || p.IPv6Only != cfg.IPv6Only {
		t.Errorf("socketParams(cfg) = %+v; fields do not match source Configuration", p)
	}
}
