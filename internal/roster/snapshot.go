package roster

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// ErrSnapshotMalformed is returned when a history payload does not decode to
// a team array, even after the double-encoding recovery pass.
var ErrSnapshotMalformed = errors.New("roster: snapshot does not decode to a team array")

// Slot is one roster position on a team: a required role and the name of
// the person filling it, either of which may be blank.
type Slot struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// TeamSnapshot is one team's roster as embedded in a history payload.
type TeamSnapshot struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Personnel []Slot `json:"personnel"`
}

// EncodeSnapshot serializes a team array exactly once. Callers must persist
// the result as-is; re-encoding an already serialized payload reintroduces
// the double-encoding defect DecodeSnapshot defends against.
func EncodeSnapshot(teams []TeamSnapshot) (string, error) {
	if teams == nil {
		teams = []TeamSnapshot{}
	}
	raw, err := json.Marshal(teams)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeSnapshot parses a history payload into a team array. If the payload
// decodes to a JSON string, the inner value is decoded once more and the
// recovery is flagged so callers can log it; historical write paths
// serialized twice. Any payload that still is not an array yields
// ErrSnapshotMalformed.
func DecodeSnapshot(data string) (teams []TeamSnapshot, recovered bool, err error) {
	raw := []byte(data)

	if isJSONArray(raw) {
		if err := json.Unmarshal(raw, &teams); err != nil {
			return nil, false, ErrSnapshotMalformed
		}
		return teams, false, nil
	}

	var inner string
	if err := json.Unmarshal(raw, &inner); err != nil {
		return nil, false, ErrSnapshotMalformed
	}
	if !isJSONArray([]byte(inner)) {
		return nil, false, ErrSnapshotMalformed
	}
	if err := json.Unmarshal([]byte(inner), &teams); err != nil {
		return nil, false, ErrSnapshotMalformed
	}
	return teams, true, nil
}

// EmptySnapshot reports whether a payload carries no roster data.
func EmptySnapshot(data string) bool {
	trimmed := strings.TrimSpace(data)
	return trimmed == "" || trimmed == "[]"
}

// BlankSlots builds the fixed-size empty roster used when a date has no
// stored configuration.
func BlankSlots(n int) []Slot {
	if n <= 0 {
		return []Slot{}
	}
	slots := make([]Slot, n)
	return slots
}

// CloneTeams deep-copies a team array so assignment can mutate freely.
func CloneTeams(teams []TeamSnapshot) []TeamSnapshot {
	if teams == nil {
		return nil
	}
	out := make([]TeamSnapshot, len(teams))
	for i, team := range teams {
		slots := make([]Slot, len(team.Personnel))
		copy(slots, team.Personnel)
		team.Personnel = slots
		out[i] = team
	}
	return out
}

func isJSONArray(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
