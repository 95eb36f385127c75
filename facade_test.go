package srtconn

import "testing"

func TestValidateConfigurationMTUBounds(t *testing.T) {
	tests := []struct {
		name    string
		mtu     int
		wantErr bool
	}{
		{"zero", 0, true},
		{"negative", -1, true},
		{"minimum valid", 1, false},
		{"typical", 1500, false},
		{"maximum valid", 65535, false},
		{"too large", 65536, true},
	}
	for _, tc := range tests {
		cfg := defaultConfiguration()
		cfg.MTU = tc.mtu
		err := validateConfiguration(cfg)
		if tc.wantErr && err == nil {
			t.Errorf("%s: validateConfiguration(MTU=%d) = nil; want error", tc.name, tc.mtu)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: validateConfiguration(MTU=%d) = %v; want nil", tc.name, tc.mtu, err)
		}
	}
}

func TestValidateConfigurationPSKBounds(t *testing.T) {
	tests := []struct {
		name    string
		psk     string
		wantErr bool
	}{
		{"empty is allowed", "", false},
		{"too short", "123456789", true},
		{"minimum valid", "1234567890", false},
		{"maximum valid", stringOfLen(79), false},
		{"too long", stringOfLen(80), true},
	}
	for _, tc := range tests {
		cfg := defaultConfiguration()
		cfg.PSK = tc.psk
		err := validateConfiguration(cfg)
		if tc.wantErr && err == nil {
			t.Errorf("%s: validateConfiguration(PSK len=%d) = nil; want error", tc.name, len(tc.psk))
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: validateConfiguration(PSK len=%d) = %v; want nil", tc.name, len(tc.psk), err)
		}
	}
}

func TestValidateConfigurationRejectionIsConfigurationRejectedKind(t *testing.T) {
	cfg := defaultConfiguration()
	cfg.MTU = 0

	err := validateConfiguration(cfg)
	if err == nil {
		t.Fatal("expected an error for MTU=0")
	}
	if !IsKind(err, KindConfigurationRejected) {
		t.Errorf("validateConfiguration error is not KindConfigurationRejected: %v", err)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeUnknown, "Unknown"},
		{ModeServer, "Server"},
		{ModeClient, "Client"},
	}
	for _, tc := range tests {
		if got := tc.mode.String(); got != tc.want {
			t.Errorf("Mode(%d).String() = %q; want %q", tc.mode, got, tc.want)
		}
	}
}

func TestNewInstanceStartsUnknown(t *testing.T) {
	i := NewInstance("[test] ")
	if got := i.GetCurrentMode(); got != ModeUnknown {
		t.Errorf("GetCurrentMode() = %v; want Unknown", got)
	}
	if i.isActive() {
		t.Errorf("isActive() = true on a freshly constructed Instance")
	}
}

func TestListenerAccessorsRoundTripNil(t *testing.T) {
	i := NewInstance("[test] ")
	if _, ok := i.getListener(); ok {
		t.Errorf("getListener() ok=true before any listener is set")
	}

	i.setListener(nil)
	if _, ok := i.getListener(); ok {
		t.Errorf("getListener() ok=true after setListener(nil)")
	}
}

func stringOfLen(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}
