package desert

import "time"

// POIVariant names one of the four point-of-interest collections.
type POIVariant string

const (
	VariantGuildBase        POIVariant = "base"
	VariantSpiceLocation    POIVariant = "spice"
	VariantLandsraadPoint   POIVariant = "landsraad"
	VariantResourceLocation POIVariant = "resource"
)

// GuildBase is a player-guild base discovered in a sector.
type GuildBase struct {
	ID           string    `json:"id"`
	SectorID     SectorID  `json:"sector_id"`
	GuildName    string    `json:"guild_name"`
	BaseType     string    `json:"base_type"` // main, outpost, temporary
	Alliance     string    `json:"alliance,omitempty"`
	Coordinates  string    `json:"coordinates,omitempty"` // keypad section 1-9 within the sector
	DiscoveredBy string    `json:"discovered_by"`
	DiscoveredAt time.Time `json:"discovered_at"`
	Active       bool      `json:"active"`
	Notes        string    `json:"notes,omitempty"`
}

// SpiceLocation is a spice deposit. Removal is the Depleted soft flag,
// never deletion.
type SpiceLocation struct {
	ID             string    `json:"id"`
	SectorID       SectorID  `json:"sector_id"`
	Size           string    `json:"size"` // small, medium, large
	EstimatedYield int       `json:"estimated_yield,omitempty"` // percent remaining
	Coordinates    string    `json:"coordinates,omitempty"`
	DiscoveredBy   string    `json:"discovered_by"`
	DiscoveredAt   time.Time `json:"discovered_at"`
	Depleted       bool      `json:"depleted"`
	Notes          string    `json:"notes,omitempty"`
}

// LandsraadPoint is a capturable control point tied to a Landsraad house.
type LandsraadPoint struct {
	ID            string    `json:"id"`
	SectorID      SectorID  `json:"sector_id"`
	Name          string    `json:"name"`
	Tier          int       `json:"tier,omitempty"` // 1-3
	DefenseRating int       `json:"defense_rating,omitempty"` // 1-10
	Controller    string    `json:"controller,omitempty"`
	Coordinates   string    `json:"coordinates,omitempty"`
	DiscoveredBy  string    `json:"discovered_by"`
	DiscoveredAt  time.Time `json:"discovered_at"`
	Notes         string    `json:"notes,omitempty"`
}

// ResourceLocation is a raw-resource concentration. Removal is the
// Exhausted soft flag.
type ResourceLocation struct {
	ID            string    `json:"id"`
	SectorID      SectorID  `json:"sector_id"`
	ResourceType  string    `json:"resource_type"`
	Concentration string    `json:"concentration"` // tier 1 - tier 3
	Coordinates   string    `json:"coordinates,omitempty"`
	DiscoveredBy  string    `json:"discovered_by"`
	DiscoveredAt  time.Time `json:"discovered_at"`
	Exhausted     bool      `json:"exhausted"`
	Notes         string    `json:"notes,omitempty"`
}

// ClampTier bounds a Landsraad point tier to 1-3.
func ClampTier(tier int) int {
	if tier < 1 {
		return 1
	}
	if tier > 3 {
		return 3
	}
	return tier
}

// ClampDefense bounds a defense rating to 1-10.
func ClampDefense(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 10 {
		return 10
	}
	return rating
}
