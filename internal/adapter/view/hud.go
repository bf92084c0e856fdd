package view

import (
	"fmt"
	"strings"

	"evacplanner/internal/adapter/metrics/inmemory"
	"evacplanner/internal/app/session"
)

// ASCII drops characters the debug bitmap font cannot draw and trims the
// leftover padding.
func ASCII(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r >= 0x20 && r < 0x7f {
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}

// StatusLine summarizes the session and counters for the bottom bar.
func StatusLine(snap session.Snapshot, m inmemory.Snapshot) string {
	line := fmt.Sprintf("building %d | %s | hazard %s (%d) | path %s",
		snap.BuildingID, snap.Placement, snap.Selected, snap.HazardCount, snap.PathPhase)
	if snap.LastPathID > 0 {
		line += fmt.Sprintf(" #%d", snap.LastPathID)
	}
	line += fmt.Sprintf(" | sync ok %d fail %d drop %d | paths %d/%d",
		m.SyncSuccess, m.SyncFailure, m.SyncDropped, m.PathSuccess, m.PathTotal)
	return line
}
