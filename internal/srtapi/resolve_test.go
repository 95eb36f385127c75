package srtapi

import "testing"

func TestResolveIPv4LiteralFastPath(t *testing.T) {
	got, err := Resolve("192.0.2.10", false)
	if err != nil {
		t.Fatalf("Resolve returned error for a literal: %v", err)
	}
	if got != "192.0.2.10" {
		t.Errorf("Resolve(literal) = %q; want 192.0.2.10 unchanged", got)
	}
}

func TestResolveIPv4LiteralBypassesV6Request(t *testing.T) {
	// An IPv4 literal short-circuits before the family filter, regardless
	// of wantV6 — it's already a concrete address, not a name to resolve.
	got, err := Resolve("192.0.2.10", true)
	if err != nil {
		t.Fatalf("Resolve returned error for a literal: %v", err)
	}
	if got != "192.0.2.10" {
		t.Errorf("Resolve(literal, wantV6) = %q; want 192.0.2.10 unchanged", got)
	}
}
