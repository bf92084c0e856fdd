package view

import (
	"strings"
	"testing"

	"evacplanner/internal/adapter/metrics/inmemory"
	"evacplanner/internal/app/session"
	"evacplanner/internal/domain/grid"
)

func TestASCII(t *testing.T) {
	if got := ASCII("✅ Path found! Steps: 4, Cost: 3.50"); got != "Path found! Steps: 4, Cost: 3.50" {
		t.Fatalf("got %q", got)
	}
	if got := ASCII("🔥"); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestStatusLine(t *testing.T) {
	snap := session.Snapshot{
		BuildingID:  3,
		Placement:   grid.PhaseHazardEdit,
		Selected:    grid.HazardSmoke,
		HazardCount: 2,
		PathPhase:   session.PathSucceeded,
		LastPathID:  9,
	}
	line := StatusLine(snap, inmemory.Snapshot{SyncSuccess: 5, SyncFailure: 1, PathSuccess: 1, PathTotal: 2})
	for _, want := range []string{"building 3", "hazard_edit", "hazard smoke (2)", "path succeeded #9", "sync ok 5 fail 1 drop 0", "paths 1/2"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
}

func TestCellColorFallsBackForUnknownHazard(t *testing.T) {
	known := CellColor(grid.CellView{Category: grid.CategoryHazard, Hazard: grid.HazardFire})
	unknown := CellColor(grid.CellView{Category: grid.CategoryHazard, Hazard: "structural"})
	if known == unknown {
		t.Fatalf("unknown hazard should use the fallback color")
	}
	if unknown != hazardUnknown {
		t.Fatalf("unexpected fallback %v", unknown)
	}
}
