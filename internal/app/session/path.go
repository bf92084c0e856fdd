package session

import (
	"context"
	"errors"
	"fmt"

	"evacplanner/internal/app/ports"
	"evacplanner/internal/domain/grid"
)

var (
	ErrMissingAnchors = errors.New("start and end must both be set")
	ErrStaleResponse  = errors.New("stale path response")
)

type PathPhase string

const (
	PathIdle       PathPhase = "idle"
	PathRequesting PathPhase = "requesting"
	PathSucceeded  PathPhase = "succeeded"
	PathFailed     PathPhase = "failed"
)

const (
	msgMissingAnchors = "Please set both start and end points"
	msgPathFailed     = "Error calculating path"
	busyLabel         = "Calculating..."
)

// ComputePath asks the backend for a route between the anchors and waits
// for the answer. control, when given, is held busy for the duration of
// the request and released on every exit path. Only the latest-issued
// request that completes may overwrite the path.
func (s *Session) ComputePath(ctx context.Context, control *Control) error {
	s.mu.Lock()
	start, hasStart := s.board.Start()
	end, hasEnd := s.board.End()
	if !hasStart || !hasEnd {
		s.notice.show(SeverityWarning, msgMissingAnchors)
		s.mu.Unlock()
		return ErrMissingAnchors
	}
	s.mu.Unlock()

	if control != nil {
		release, err := control.Acquire(busyLabel)
		if err != nil {
			s.logger.Printf("[path] request skipped: %v", err)
			return err
		}
		defer release()
	}

	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.inFlight++
	req := ports.PathRequest{
		BuildingID: s.buildingID,
		Start:      start,
		End:        end,
		Name:       "Path " + s.now().Format("15:04:05"),
	}
	s.mu.Unlock()

	result, err := s.planner.ComputePath(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
	if seq < s.applied {
		s.logger.Printf("[path] response #%d dropped, #%d already applied (err=%v)", seq, s.applied, err)
		return ErrStaleResponse
	}
	s.applied = seq
	if err != nil {
		return s.failPath(err)
	}
	if err := s.board.SetPath(result.Path); err != nil {
		return s.failPath(fmt.Errorf("%w: %v", ports.ErrMalformedResponse, err))
	}
	s.lastOutcome = PathSucceeded
	s.lastPathID = result.PathID
	s.render()
	s.metrics.RecordPathSuccess()
	s.notice.show(SeveritySuccess, fmt.Sprintf("✅ Path found! Steps: %d, Cost: %.2f", result.Steps, result.Cost))
	return nil
}

// failPath must be called with mu held.
func (s *Session) failPath(err error) error {
	s.logger.Printf("[path] compute failed: %v", err)
	s.lastOutcome = PathFailed
	if errors.Is(err, ports.ErrRejected) {
		s.metrics.RecordPathRejected()
	} else {
		s.metrics.RecordPathFailure()
	}
	msg, ok := ports.ServerMessage(err)
	if !ok {
		msg = msgPathFailed
	}
	s.notice.show(SeverityDanger, msg)
	return err
}

func (s *Session) PathPhase() PathPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pathPhase()
}

func (s *Session) pathPhase() PathPhase {
	if s.inFlight > 0 {
		return PathRequesting
	}
	return PathIdle
}

func (s *Session) LastPathID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPathID
}

// Path returns the current overlay, nil when none has been computed.
func (s *Session) Path() grid.Path {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Path()
}
