package houses

import (
	"context"
	"time"

	"github.com/coldbreakfast/landsraad-bot/internal/domain/house"
)

// ResetEntry is one append-only audit record of a weekly reset.
type ResetEntry struct {
	ID              string    `json:"id"`
	ResetAt         time.Time `json:"reset_at"`
	ResetBy         string    `json:"reset_by"`
	HousesReset     int       `json:"houses_reset"`
	HousesCompleted int       `json:"houses_completed"`
}

// Repository is the persistence boundary for houses and the reset log.
// Implementations hold no business rules beyond key layout.
type Repository interface {
	// EnsureExists creates the house in its initial locked state if it is
	// not already stored. Existing records are never overwritten.
	EnsureExists(ctx context.Context, h *house.House) error

	// Get retrieves a house by name, case-insensitively.
	Get(ctx context.Context, name string) (*house.House, error)

	// List returns every stored house ordered by name.
	List(ctx context.Context) ([]*house.House, error)

	// Save overwrites a house record.
	Save(ctx context.Context, h *house.House) error

	// DeleteAllExcept removes every stored house whose name is not in keep
	// and returns how many were removed.
	DeleteAllExcept(ctx context.Context, keep []string) (int, error)

	// ResetAll atomically rewrites every house to the given state and
	// appends the reset log entry. Concurrent writes to any house either
	// fully precede or fully follow the reset.
	ResetAll(ctx context.Context, reset func(*house.House) *house.House, entry *ResetEntry) (*ResetEntry, error)

	// ListResetLog returns the most recent reset entries, newest first.
	ListResetLog(ctx context.Context, limit int) ([]*ResetEntry, error)

	// DeleteAll removes every house and the reset log. Only the full-reset
	// flow calls this.
	DeleteAll(ctx context.Context) error
}
