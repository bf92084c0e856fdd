package inmemory

import (
	"sync"

	"evacplanner/internal/app/ports"
)

type Snapshot struct {
	SyncTotal     uint64            `json:"sync_total"`
	SyncSuccess   uint64            `json:"sync_success"`
	SyncFailure   uint64            `json:"sync_failure"`
	SyncDropped   uint64            `json:"sync_dropped"`
	FailureByKind map[string]uint64 `json:"failure_by_kind"`
	PathTotal     uint64            `json:"path_total"`
	PathSuccess   uint64            `json:"path_success"`
	PathRejected  uint64            `json:"path_rejected"`
	PathFailure   uint64            `json:"path_failure"`
}

var (
	_ ports.SyncMetrics = (*Recorder)(nil)
	_ ports.PathMetrics = (*Recorder)(nil)
)

type Recorder struct {
	mu            sync.Mutex
	syncSuccess   uint64
	syncFailure   uint64
	syncDropped   uint64
	failureByKind map[string]uint64
	pathSuccess   uint64
	pathRejected  uint64
	pathFailure   uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		failureByKind: map[string]uint64{},
	}
}

func (r *Recorder) RecordSyncSuccess(ports.HazardOpKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.syncSuccess++
}

func (r *Recorder) RecordSyncFailure(kind ports.HazardOpKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.syncFailure++
	r.failureByKind[string(kind)]++
}

// RecordSyncDropped counts ops that never reached the backend. They are
// also counted as failures of their kind.
func (r *Recorder) RecordSyncDropped(kind ports.HazardOpKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.syncDropped++
	r.failureByKind[string(kind)]++
}

func (r *Recorder) RecordPathSuccess() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pathSuccess++
}

func (r *Recorder) RecordPathRejected() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pathRejected++
}

func (r *Recorder) RecordPathFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pathFailure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		SyncSuccess:   r.syncSuccess,
		SyncFailure:   r.syncFailure,
		SyncDropped:   r.syncDropped,
		SyncTotal:     r.syncSuccess + r.syncFailure + r.syncDropped,
		FailureByKind: make(map[string]uint64, len(r.failureByKind)),
		PathSuccess:   r.pathSuccess,
		PathRejected:  r.pathRejected,
		PathFailure:   r.pathFailure,
		PathTotal:     r.pathSuccess + r.pathRejected + r.pathFailure,
	}
	for k, v := range r.failureByKind {
		out.FailureByKind[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
