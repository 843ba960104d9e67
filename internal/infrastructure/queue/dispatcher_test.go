package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/coworkia/coworking-api/internal/core/ports"
)

type recordingStore struct {
	mu      sync.Mutex
	entries []ports.AuditEntry
	fail    bool
}

func (r *recordingStore) Record(_ context.Context, e ports.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("store unavailable")
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *recordingStore) snapshot() []ports.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ports.AuditEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s", timeout)
}

func TestDispatcher_RecordsEntries(t *testing.T) {
	store := &recordingStore{}
	d := NewDispatcher(2, store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 5; i++ {
		d.Enqueue(ports.AuditEntry{UserID: fmt.Sprintf("u%d", i), Action: ports.AuditSignup})
	}

	waitFor(t, 2*time.Second, func() bool {
		return len(store.snapshot()) == 5
	})
}

func TestDispatcher_PerUserOrdering(t *testing.T) {
	store := &recordingStore{}
	d := NewDispatcher(4, store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const perUser = 20
	users := []string{"alice", "bob", "carol"}
	for i := 0; i < perUser; i++ {
		for _, u := range users {
			d.Enqueue(ports.AuditEntry{UserID: u, Action: fmt.Sprintf("step-%d", i)})
		}
	}

	waitFor(t, 2*time.Second, func() bool {
		return len(store.snapshot()) == perUser*len(users)
	})

	// Entries for the same user must land in enqueue order regardless of
	// interleaving across users.
	next := make(map[string]int)
	for _, e := range store.snapshot() {
		want := fmt.Sprintf("step-%d", next[e.UserID])
		if e.Action != want {
			t.Fatalf("user %s: expected %s, got %s", e.UserID, want, e.Action)
		}
		next[e.UserID]++
	}
}

func TestDispatcher_SameUserSameShard(t *testing.T) {
	d := NewDispatcher(8, &recordingStore{}, zerolog.Nop())
	for _, id := range []string{"", "u1", "a-much-longer-user-identifier"} {
		first := d.shardIndex(id)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("shard for %q not stable: %d vs %d", id, first, got)
			}
		}
	}
}

func TestDispatcher_DefaultWorkers(t *testing.T) {
	d := NewDispatcher(0, &recordingStore{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

func TestDispatcher_StoreFailureDoesNotStopWorker(t *testing.T) {
	store := &recordingStore{fail: true}
	d := NewDispatcher(1, store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.AuditEntry{UserID: "u1", Action: ports.AuditSignup})
	time.Sleep(20 * time.Millisecond)

	store.mu.Lock()
	store.fail = false
	store.mu.Unlock()

	d.Enqueue(ports.AuditEntry{UserID: "u1", Action: ports.AuditUpdate})
	waitFor(t, 2*time.Second, func() bool {
		s := store.snapshot()
		return len(s) == 1 && s[0].Action == ports.AuditUpdate
	})
}
