package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/coworkia/coworking-api/internal/api/metrics"
	"github.com/coworkia/coworking-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	recordTimeout  = 5 * time.Second
)

// Dispatcher routes audit entries to a fixed set of workers using consistent
// hashing on the user id, guaranteeing per-user ordering of the audit trail.
// Recording happens off the request path; a slow store never blocks a caller.
type Dispatcher struct {
	workers  []chan ports.AuditEntry
	recorder ports.AuditRecorder
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, recorder ports.AuditRecorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.AuditEntry, numWorkers),
		recorder: recorder,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an entry to the worker responsible for its user id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(e ports.AuditEntry) {
	d.workers[d.shardIndex(e.UserID)] <- e
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AuditEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			recordCtx, cancel := context.WithTimeout(ctx, recordTimeout)
			err := d.recorder.Record(recordCtx, entry)
			cancel()
			if err != nil {
				d.log.Error().Err(err).
					Str("user_id", entry.UserID).
					Str("action", entry.Action).
					Int("worker_id", id).
					Msg("audit record failed")
				continue
			}
			metrics.AuditEventsTotal.WithLabelValues(entry.Action).Inc()
		}
	}
}
