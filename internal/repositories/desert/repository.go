package desert

import (
	"context"

	"github.com/coldbreakfast/landsraad-bot/internal/domain/desert"
)

// Repository persists the fixed sector grid and the four point-of-interest
// collections. Points of interest are never deleted, callers flip their
// soft flags and save.
type Repository interface {
	// InitGrid stores an unsurveyed sector for every grid cell that does
	// not already have one and returns how many were created.
	InitGrid(ctx context.Context) (int, error)

	// GetSector retrieves one sector.
	GetSector(ctx context.Context, id desert.SectorID) (*desert.Sector, error)

	// ListSectors returns every sector in (row, column) order.
	ListSectors(ctx context.Context) ([]*desert.Sector, error)

	// SaveSector overwrites a sector record.
	SaveSector(ctx context.Context, sector *desert.Sector) error

	// SaveGuildBase upserts a guild base by ID.
	SaveGuildBase(ctx context.Context, base *desert.GuildBase) error

	// ListGuildBases returns every stored guild base, including inactive
	// ones, ordered by sector then discovery time.
	ListGuildBases(ctx context.Context) ([]*desert.GuildBase, error)

	// SaveSpiceLocation upserts a spice location by ID.
	SaveSpiceLocation(ctx context.Context, loc *desert.SpiceLocation) error

	// ListSpiceLocations returns every stored spice location, including
	// depleted ones, ordered by sector then discovery time.
	ListSpiceLocations(ctx context.Context) ([]*desert.SpiceLocation, error)

	// SaveLandsraadPoint upserts a Landsraad control point by ID.
	SaveLandsraadPoint(ctx context.Context, point *desert.LandsraadPoint) error

	// ListLandsraadPoints returns every stored control point, ordered by
	// sector then discovery time.
	ListLandsraadPoints(ctx context.Context) ([]*desert.LandsraadPoint, error)

	// SaveResourceLocation upserts a resource location by ID.
	SaveResourceLocation(ctx context.Context, loc *desert.ResourceLocation) error

	// ListResourceLocations returns every stored resource location,
	// including exhausted ones, ordered by sector then discovery time.
	ListResourceLocations(ctx context.Context) ([]*desert.ResourceLocation, error)
}
