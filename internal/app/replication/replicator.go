package replication

import (
	"context"
	"log"
	"sync"
	"time"

	"evacplanner/internal/app/ports"
)

const (
	defaultQueueSize = 64
	defaultTimeout   = 10 * time.Second
)

type Options struct {
	QueueSize int
	Timeout   time.Duration
	Logger    *log.Logger
	Metrics   ports.SyncMetrics
}

// Replicator relays hazard mutations to the backend on a single worker
// goroutine. Submit never blocks; failures are logged and counted, never
// retried, and never reported back to the submitter.
type Replicator struct {
	api     ports.HazardAPI
	queue   chan ports.HazardOp
	timeout time.Duration
	logger  *log.Logger
	metrics ports.SyncMetrics

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
	once   sync.Once
}

func New(api ports.HazardAPI, opts Options) *Replicator {
	if opts.QueueSize <= 0 {
		opts.QueueSize = defaultQueueSize
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = noopMetrics{}
	}
	r := &Replicator{
		api:     api,
		queue:   make(chan ports.HazardOp, opts.QueueSize),
		timeout: opts.Timeout,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		done:    make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *Replicator) Submit(op ports.HazardOp) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.drop(op, "replicator closed")
		return
	}
	select {
	case r.queue <- op:
	default:
		r.drop(op, "queue full")
	}
}

// Close stops accepting ops and waits for queued ones to finish.
func (r *Replicator) Close() {
	r.once.Do(func() {
		r.mu.Lock()
		r.closed = true
		close(r.queue)
		r.mu.Unlock()
	})
	<-r.done
}

func (r *Replicator) run() {
	defer close(r.done)
	for op := range r.queue {
		r.apply(op)
	}
}

func (r *Replicator) apply(op ports.HazardOp) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	var err error
	switch op.Kind {
	case ports.HazardOpAdd:
		err = r.api.AddHazard(ctx, op.BuildingID, op.Hazard)
	case ports.HazardOpRemove:
		err = r.api.RemoveHazard(ctx, op.BuildingID, op.Hazard.Pos)
	case ports.HazardOpClear:
		err = r.api.ClearHazards(ctx, op.BuildingID)
	default:
		r.logger.Printf("[sync] unknown op kind %q ignored", op.Kind)
		return
	}
	if err != nil {
		r.logger.Printf("[sync] %s building=%d pos=%s failed: %v", op.Kind, op.BuildingID, op.Hazard.Pos.Key(), err)
		r.metrics.RecordSyncFailure(op.Kind)
		return
	}
	r.metrics.RecordSyncSuccess(op.Kind)
}

func (r *Replicator) drop(op ports.HazardOp, reason string) {
	r.logger.Printf("[sync] %s building=%d pos=%s dropped: %s", op.Kind, op.BuildingID, op.Hazard.Pos.Key(), reason)
	r.metrics.RecordSyncDropped(op.Kind)
}

type noopMetrics struct{}

func (noopMetrics) RecordSyncSuccess(ports.HazardOpKind) {}
func (noopMetrics) RecordSyncFailure(ports.HazardOpKind) {}
func (noopMetrics) RecordSyncDropped(ports.HazardOpKind) {}
