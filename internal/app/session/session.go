package session

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"evacplanner/internal/app/ports"
	"evacplanner/internal/domain/grid"
)

var ErrInvalidConfig = errors.New("invalid session config")

type Config struct {
	BuildingID int
	Width      int
	Height     int
}

type Deps struct {
	Replicator ports.HazardReplicator
	Planner    ports.PathAPI
	Metrics    ports.PathMetrics
	Logger     *log.Logger
	Now        func() time.Time
}

// Session owns the interactive state of one building grid. Every method
// is safe to call from the UI loop and from a goroutine awaiting a path
// response; the lock is never held across a network call.
type Session struct {
	mu         sync.Mutex
	buildingID int
	board      *grid.Board
	frame      grid.Frame
	notice     noticeSlot

	inFlight    int
	issued      uint64
	applied     uint64
	lastOutcome PathPhase
	lastPathID  int

	replicator ports.HazardReplicator
	planner    ports.PathAPI
	metrics    ports.PathMetrics
	logger     *log.Logger
	now        func() time.Time
}

func New(cfg Config, deps Deps) (*Session, error) {
	if cfg.BuildingID <= 0 {
		return nil, fmt.Errorf("%w: building id %d", ErrInvalidConfig, cfg.BuildingID)
	}
	if deps.Replicator == nil || deps.Planner == nil {
		return nil, fmt.Errorf("%w: replicator and planner are required", ErrInvalidConfig)
	}
	board, err := grid.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if deps.Metrics == nil {
		deps.Metrics = noopPathMetrics{}
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	s := &Session{
		buildingID: cfg.BuildingID,
		board:      board,
		replicator: deps.Replicator,
		planner:    deps.Planner,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
		now:        deps.Now,
	}
	s.render()
	return s, nil
}

func (s *Session) BuildingID() int { return s.buildingID }

func (s *Session) Bounds() grid.Bounds { return s.board.Bounds() }

// PrimaryClick routes a primary-button press on p through the placement
// precedence and mirrors any hazard change to the backend.
func (s *Session) PrimaryClick(p grid.Point) (grid.Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	change, err := s.board.PrimaryClick(p)
	return s.afterInput("primary", change, err)
}

// SecondaryClick erases whatever sits under p.
func (s *Session) SecondaryClick(p grid.Point) (grid.Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	change, err := s.board.SecondaryClick(p)
	return s.afterInput("secondary", change, err)
}

func (s *Session) afterInput(button string, change grid.Change, err error) (grid.Change, error) {
	if err != nil {
		s.logger.Printf("[session] %s click ignored: %v", button, err)
		return change, err
	}
	if !change.Mutated() {
		return change, nil
	}
	switch change.Kind {
	case grid.ChangeHazardAdded:
		s.replicator.Submit(ports.HazardOp{Kind: ports.HazardOpAdd, BuildingID: s.buildingID, Hazard: change.Hazard})
	case grid.ChangeHazardRemoved:
		s.replicator.Submit(ports.HazardOp{Kind: ports.HazardOpRemove, BuildingID: s.buildingID, Hazard: change.Hazard})
	}
	s.render()
	return change, nil
}

func (s *Session) SelectHazardType(t grid.HazardType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.SelectHazardType(t)
}

func (s *Session) SelectedHazardType() grid.HazardType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.SelectedHazardType()
}

// Seed loads hazards the backend already holds. Nothing is replicated.
func (s *Session) Seed(hazards []grid.Hazard) []grid.Hazard {
	s.mu.Lock()
	defer s.mu.Unlock()
	skipped := s.board.Seed(hazards)
	for _, h := range skipped {
		s.logger.Printf("[session] seeded hazard %s at %s skipped", h.Type, h.Pos.Key())
	}
	s.render()
	return skipped
}

func (s *Session) ClearPath() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.ClearPath()
	s.render()
	s.notice.show(SeverityInfo, "Path cleared")
}

// ClearAll drops anchors, hazards and the path, and asks the backend to
// drop the building's hazards with a single call.
func (s *Session) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.Reset()
	s.replicator.Submit(ports.HazardOp{Kind: ports.HazardOpClear, BuildingID: s.buildingID})
	s.render()
	s.notice.show(SeverityInfo, "All cleared")
}

func (s *Session) Frame() grid.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

func (s *Session) Notice() (Notice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice.get()
}

func (s *Session) DismissNotice() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice.dismiss()
}

type Snapshot struct {
	Start        *grid.Point
	End          *grid.Point
	Hazards      []grid.Hazard
	Path         grid.Path
	Selected     grid.HazardType
	Placement    grid.Phase
	PathPhase    PathPhase
	LastOutcome  PathPhase
	LastPathID   int
	InFlight     int
	BuildingID   int
	HazardCount  int
	PathAttempts uint64
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := Snapshot{
		Hazards:      s.board.Hazards(),
		Path:         s.board.Path(),
		Selected:     s.board.SelectedHazardType(),
		Placement:    s.board.Phase(),
		PathPhase:    s.pathPhase(),
		LastOutcome:  s.lastOutcome,
		LastPathID:   s.lastPathID,
		InFlight:     s.inFlight,
		BuildingID:   s.buildingID,
		HazardCount:  s.board.HazardCount(),
		PathAttempts: s.issued,
	}
	if p, ok := s.board.Start(); ok {
		out.Start = &p
	}
	if p, ok := s.board.End(); ok {
		out.End = &p
	}
	return out
}

// render must be called with mu held after every state mutation.
func (s *Session) render() {
	s.frame = grid.Render(s.board)
}

type noopPathMetrics struct{}

func (noopPathMetrics) RecordPathSuccess()  {}
func (noopPathMetrics) RecordPathRejected() {}
func (noopPathMetrics) RecordPathFailure()  {}
