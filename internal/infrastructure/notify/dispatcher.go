package notify

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/metasoft/restyle-platform/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher fans project request notifications out to a fixed set of
// workers using consistent hashing on the request ID, so retries and
// follow-ups for the same request are delivered in order.
type Dispatcher struct {
	workers  []chan ports.RequestNotification
	notifier ports.Notifier
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.RequestNotification, numWorkers),
		notifier: notifier,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.RequestNotification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a notification to the worker responsible for its request.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(n ports.RequestNotification) {
	d.workers[d.shardIndex(n.RequestID)] <- n
}

// shardIndex maps a request ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(requestID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(requestID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.RequestNotification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			if err := d.notifier.Notify(ctx, n); err != nil {
				d.log.Error().Err(err).
					Str("request_id", n.RequestID).
					Int("worker_id", id).
					Msg("notification delivery failed")
			}
		}
	}
}
