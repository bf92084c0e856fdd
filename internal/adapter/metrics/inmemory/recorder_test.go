package inmemory

import (
	"testing"

	"evacplanner/internal/app/ports"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordSyncSuccess(ports.HazardOpAdd)
	r.RecordSyncSuccess(ports.HazardOpAdd)
	r.RecordSyncFailure(ports.HazardOpRemove)
	r.RecordSyncDropped(ports.HazardOpAdd)
	r.RecordPathSuccess()
	r.RecordPathRejected()
	r.RecordPathFailure()
	r.RecordPathFailure()

	s := r.Snapshot()
	if s.SyncTotal != 4 {
		t.Fatalf("expected sync total 4, got %d", s.SyncTotal)
	}
	if s.SyncSuccess != 2 {
		t.Fatalf("expected sync success 2, got %d", s.SyncSuccess)
	}
	if s.SyncFailure != 1 || s.SyncDropped != 1 {
		t.Fatalf("expected failure 1 and dropped 1, got %d/%d", s.SyncFailure, s.SyncDropped)
	}
	if s.FailureByKind[string(ports.HazardOpRemove)] != 1 {
		t.Fatalf("expected remove failure count 1")
	}
	if s.FailureByKind[string(ports.HazardOpAdd)] != 1 {
		t.Fatalf("expected add failure count 1")
	}
	if s.PathTotal != 4 || s.PathSuccess != 1 || s.PathRejected != 1 || s.PathFailure != 2 {
		t.Fatalf("unexpected path counters: %+v", s)
	}
}

func TestRecorderSnapshotIsCopy(t *testing.T) {
	r := NewRecorder()
	r.RecordSyncFailure(ports.HazardOpClear)

	s := r.Snapshot()
	s.FailureByKind[string(ports.HazardOpClear)] = 99

	if got := r.Snapshot().FailureByKind[string(ports.HazardOpClear)]; got != 1 {
		t.Fatalf("snapshot map aliases recorder state: got %d", got)
	}
}
