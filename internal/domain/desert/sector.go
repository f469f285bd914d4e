// Package desert models the 9x9 deep desert grid and the points of
// interest anchored to its sectors.
package desert

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
)

// SectorID identifies one cell of the fixed grid, row letter A-I plus
// column number 1-9 ("A1" through "I9").
type SectorID string

// ParseSectorID validates and canonicalizes a sector identifier. Input is
// case-insensitive; anything outside [A-I][1-9] is rejected.
func ParseSectorID(input string) (SectorID, error) {
	s := strings.ToUpper(strings.TrimSpace(input))
	if len(s) != 2 || s[0] < 'A' || s[0] > 'I' || s[1] < '1' || s[1] > '9' {
		return "", apperrors.InvalidArgumentf("invalid sector ID %q: use format like A1, B5, I9", input)
	}
	return SectorID(s), nil
}

// Row returns the sector's row letter, 'A' through 'I'.
func (id SectorID) Row() byte {
	return id[0]
}

// Column returns the sector's column number, 1 through 9.
func (id SectorID) Column() int {
	return int(id[1] - '0')
}

// AllSectorIDs enumerates the full grid in (row, column) order.
func AllSectorIDs() []SectorID {
	ids := make([]SectorID, 0, 81)
	for row := byte('A'); row <= 'I'; row++ {
		for col := 1; col <= 9; col++ {
			ids = append(ids, SectorID(fmt.Sprintf("%c%d", row, col)))
		}
	}
	return ids
}

// SurveyStatus tracks how thoroughly a sector has been explored.
type SurveyStatus string

const (
	SurveyUnsurveyed SurveyStatus = "unsurveyed"
	SurveyPartial    SurveyStatus = "partial"
	SurveyComplete   SurveyStatus = "complete"
)

// Sector is one cell of the grid. The 81 sectors are enumerated at
// initialization and never created or destroyed afterward.
type Sector struct {
	ID           SectorID     `json:"id"`
	Status       SurveyStatus `json:"status"`
	LastSurveyed *time.Time   `json:"last_surveyed,omitempty"`
	SurveyedBy   string       `json:"surveyed_by,omitempty"`
	Notes        string       `json:"notes,omitempty"`
}

// NewSector returns an unsurveyed sector.
func NewSector(id SectorID) *Sector {
	return &Sector{
		ID:     id,
		Status: SurveyUnsurveyed,
	}
}
