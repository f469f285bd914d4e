package house

import (
	"fmt"
	"strings"
)

const progressBarCells = 20

// ProgressBar renders a fixed-width textual progress bar, e.g.
// [██████████░░░░░░░░░░] 50.0%. The percentage is capped at 100 for
// display and each filled cell represents 5%.
func (h *House) ProgressBar() string {
	if h.Goal <= 0 {
		return "[" + strings.Repeat("░", progressBarCells) + "] 0.0%"
	}

	pct := h.ProgressPercent()
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 5)

	return fmt.Sprintf("[%s%s] %.1f%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", progressBarCells-filled),
		pct)
}
