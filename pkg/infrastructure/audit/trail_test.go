package audit

import (
	"sync"
	"testing"
)

func TestTrail_RecordAndEntries(t *testing.T) {
	trail := NewTrail()

	trail.Record("ord-1", "order.saved", "initial import")
	trail.Record("ord-1", "component.rate_set", "Denim Shell 12oz generic=1.35")
	trail.Record("ord-2", "order.saved", "initial import")

	entries := trail.Entries("ord-1")
	if len(entries) != 2 {
		t.Fatalf("Entries(ord-1) = %d, want 2", len(entries))
	}
	if entries[0].Action != "order.saved" || entries[1].Action != "component.rate_set" {
		t.Errorf("entry order wrong: %+v", entries)
	}
	if entries[0].Sequence >= entries[1].Sequence {
		t.Errorf("sequence must increase, got %d then %d", entries[0].Sequence, entries[1].Sequence)
	}
	if trail.Len() != 3 {
		t.Errorf("Len = %d, want 3", trail.Len())
	}
}

func TestTrail_UnknownOrderIsEmpty(t *testing.T) {
	trail := NewTrail()

	if entries := trail.Entries("missing"); len(entries) != 0 {
		t.Errorf("Entries(missing) = %v, want empty", entries)
	}
}

func TestTrail_EntriesReturnsACopy(t *testing.T) {
	trail := NewTrail()
	trail.Record("ord-1", "order.saved", "")

	entries := trail.Entries("ord-1")
	entries[0].Action = "tampered"

	if got := trail.Entries("ord-1")[0].Action; got != "order.saved" {
		t.Errorf("stored entry mutated via returned slice: %q", got)
	}
}

func TestTrail_ConcurrentRecord(t *testing.T) {
	trail := NewTrail()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			trail.Record("ord-1", "breakdown.updated", "")
		}()
	}
	wg.Wait()

	if got := trail.Len(); got != 20 {
		t.Errorf("Len after concurrent writes = %d, want 20", got)
	}
}
