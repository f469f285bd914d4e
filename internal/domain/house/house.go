package house

import (
	"strings"
	"time"
)

// DefaultGoal is the delivery total a house needs for completion.
const DefaultGoal = 70000

// Alliance is one of the two factions that can claim a house. Any other
// non-empty value is data corruption and is repaired, never displayed.
type Alliance string

const (
	AllianceAtreides  Alliance = "Atreides"
	AllianceHarkonnen Alliance = "Harkonnen"
)

// Valid reports whether a is exactly one of the two permitted factions.
func (a Alliance) Valid() bool {
	return a == AllianceAtreides || a == AllianceHarkonnen
}

// ParseAlliance resolves user input to an alliance. Empty, "none", "null"
// and "clear" resolve to the absent alliance with ok=true.
func ParseAlliance(input string) (alliance Alliance, cleared bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "none", "null", "clear":
		return "", true, true
	case "atreides", "a":
		return AllianceAtreides, false, true
	case "harkonnen", "h":
		return AllianceHarkonnen, false, true
	default:
		return "", false, false
	}
}

// roster is the fixed set of 25 claimable houses, in display order.
var roster = []string{
	"Alexin", "Argosaz", "Dyvets", "Ecaz", "Hagal", "Hurata",
	"Imota", "Kenola", "Lindaren", "Maros", "Mikarrol", "Moritani", "Mutelli",
	"Novebruns", "Richese", "Sor", "Spinnette", "Taligari", "Thorvald",
	"Tseida", "Varota", "Vernius", "Wallach", "Wayku", "Wydras",
}

// Roster returns the canonical house names in alphabetical order.
func Roster() []string {
	out := make([]string, len(roster))
	copy(out, roster)
	return out
}

// IsCanonical reports whether name is one of the 25 roster houses,
// case-insensitively.
func IsCanonical(name string) bool {
	for _, r := range roster {
		if strings.EqualFold(r, name) {
			return true
		}
	}
	return false
}

// CanonicalName resolves a case-insensitive house name to its roster
// spelling. Returns ok=false for names outside the roster.
func CanonicalName(name string) (string, bool) {
	for _, r := range roster {
		if strings.EqualFold(r, name) {
			return r, true
		}
	}
	return "", false
}

// House is one of the 25 fixed claimable quest lines.
type House struct {
	Name              string    `json:"name"`
	Quest             string    `json:"quest"`
	Progress          int       `json:"progress"`
	Goal              int       `json:"goal"`
	PointsPerDelivery int       `json:"points_per_delivery"`
	Locked            bool      `json:"locked"`
	CompletedBy       Alliance  `json:"completed_by,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	DesertLocation    string    `json:"desert_location,omitempty"`
	Alliance          Alliance  `json:"alliance,omitempty"`
	DeepDesertCP      int       `json:"deep_desert_cp"`
	LastUpdated       time.Time `json:"last_updated"`
	UpdatedBy         string    `json:"updated_by"`
}

// NewLocked returns a house in its initial weekly state.
func NewLocked(name string) *House {
	return &House{
		Name:              name,
		Quest:             "Unknown",
		Goal:              DefaultGoal,
		PointsPerDelivery: 1,
		Locked:            true,
		UpdatedBy:         "System",
	}
}

// Claimed reports whether the house is held by a valid alliance. A corrupted
// alliance value does not count as claimed.
func (h *House) Claimed() bool {
	return h.Alliance.Valid()
}

// Remaining returns the points still needed to reach the goal, floored at 0.
func (h *House) Remaining() int {
	if h.Goal <= h.Progress {
		return 0
	}
	return h.Goal - h.Progress
}

// TurnsNeeded returns the ceiling of remaining points over points-per-delivery.
// ok is false when points-per-delivery is not positive.
func (h *House) TurnsNeeded() (turns int, ok bool) {
	if h.PointsPerDelivery <= 0 {
		return 0, false
	}
	rem := h.Remaining()
	return (rem + h.PointsPerDelivery - 1) / h.PointsPerDelivery, true
}

// ProgressPercent returns progress over goal as a percentage, 0 when the
// goal is not positive.
func (h *House) ProgressPercent() float64 {
	if h.Goal <= 0 {
		return 0
	}
	return float64(h.Progress) / float64(h.Goal) * 100
}
