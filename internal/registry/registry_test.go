package registry

import "testing"

func TestInsertGetRemove(t *testing.T) {
	r := New()

	if _, ok := r.Get(1); ok {
		t.Fatalf("Get on empty registry: got ok=true")
	}

	r.Insert(1, "ctx-1")
	ctx, ok := r.Get(1)
	if !ok || ctx != "ctx-1" {
		t.Fatalf("Get(1) = %v, %v; want ctx-1, true", ctx, ok)
	}

	if got := r.Len(); got != 1 {
		t.Fatalf("Len() = %d; want 1", got)
	}

	removed, ok := r.Remove(1)
	if !ok || removed != "ctx-1" {
		t.Fatalf("Remove(1) = %v, %v; want ctx-1, true", removed, ok)
	}
	if got := r.Len(); got != 0 {
		t.Fatalf("Len() after Remove = %d; want 0", got)
	}

	if _, ok := r.Remove(1); ok {
		t.Fatalf("second Remove(1): got ok=true")
	}
}

func TestInsertOverwrites(t *testing.T) {
	r := New()
	r.Insert(5, "first")
	r.Insert(5, "second")

	ctx, ok := r.Get(5)
	if !ok || ctx != "second" {
		t.Fatalf("Get(5) = %v, %v; want second, true", ctx, ok)
	}
	if got := r.Len(); got != 1 {
		t.Fatalf("Len() = %d; want 1", got)
	}
}

func TestSnapshotAndSockets(t *testing.T) {
	r := New()
	r.Insert(1, "a")
	r.Insert(2, "b")
	r.Insert(3, "c")

	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len(Snapshot()) = %d; want 3", len(snap))
	}

	socks := r.Sockets()
	if len(socks) != 3 {
		t.Fatalf("len(Sockets()) = %d; want 3", len(socks))
	}

	seen := make(map[uint64]bool)
	for _, h := range socks {
		seen[h] = true
	}
	for _, want := range []uint64{1, 2, 3} {
		if !seen[want] {
			t.Errorf("Sockets() missing handle %d", want)
		}
	}

	if got := r.Len(); got != 3 {
		t.Fatalf("Len() after Snapshot = %d; want 3 (Snapshot must not drain)", got)
	}
}

func TestClearDrainsAndReturnsEverything(t *testing.T) {
	r := New()
	r.Insert(1, "a")
	r.Insert(2, "b")

	entries := r.Clear()
	if len(entries) != 2 {
		t.Fatalf("len(Clear()) = %d; want 2", len(entries))
	}
	if got := r.Len(); got != 0 {
		t.Fatalf("Len() after Clear = %d; want 0", got)
	}

	// A second Clear on an already-empty registry must be safe and empty.
	if entries := r.Clear(); len(entries) != 0 {
		t.Fatalf("second Clear() returned %d entries; want 0", len(entries))
	}
}
