package ui

import (
	"fmt"
	"strings"

	"snake-rewind/internal/core"
	"snake-rewind/internal/snake"
)

// StatusLines formats the per-player scores and run state shown by both
// front-ends. report is appended once the game has finished.
func StatusLines(snap snake.Snapshot, report string) []string {
	lines := make([]string, 0, len(snap.Snakes)+3)
	for _, s := range snap.Snakes {
		state := s.Direction.String()
		if s.Halted {
			state = "halted"
		}
		lines = append(lines, fmt.Sprintf("P%d %4d  len %-3d %s", int(s.ID)+1, s.Score, len(s.Body), state))
	}
	mode := strings.ToUpper(snap.Cycle.String())
	if snap.Paused {
		mode = "PAUSED"
	}
	lines = append(lines, fmt.Sprintf("%s  speed %dms  rewind %d", mode, snap.Speed, rewindDepth(snap)))
	if snap.Finished && report != "" {
		lines = append(lines, report, "R to reset")
	}
	return lines
}

// SaveNotice is the one-line result shown after a save request.
func SaveNotice(err error) string {
	if err != nil {
		return "save failed: " + err.Error()
	}
	return "saved"
}

func rewindDepth(snap snake.Snapshot) int {
	depth := 0
	for _, s := range snap.Snakes {
		depth = max(depth, s.Rewindable)
	}
	return depth
}

// ParameterLines flattens a parameter snapshot into "Label: value" rows.
func ParameterLines(params core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range params.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}
