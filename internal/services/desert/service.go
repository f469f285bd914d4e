package desert

//go:generate mockgen -destination=mocks/mock_service.go -package=mockdesert -source=service.go

import (
	"context"
	"strings"

	"github.com/coldbreakfast/landsraad-bot/internal/clock"
	"github.com/coldbreakfast/landsraad-bot/internal/domain/desert"
	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
	desertrepo "github.com/coldbreakfast/landsraad-bot/internal/repositories/desert"
	"github.com/coldbreakfast/landsraad-bot/internal/uuid"
)

// Repository is an alias for the desert repository interface
type Repository = desertrepo.Repository

// Service manages the deep desert sector grid and its points of interest.
type Service interface {
	// InitializeGrid creates any missing sector records and returns how
	// many were created. Safe to run at every startup.
	InitializeGrid(ctx context.Context) (int, error)

	// MarkSurveyed records a survey pass over a sector.
	MarkSurveyed(ctx context.Context, input *MarkSurveyedInput) (*desert.Sector, error)

	// AddGuildBase records a discovered guild base.
	AddGuildBase(ctx context.Context, input *AddGuildBaseInput) (*desert.GuildBase, error)

	// AddSpiceLocation records a discovered spice deposit.
	AddSpiceLocation(ctx context.Context, input *AddSpiceLocationInput) (*desert.SpiceLocation, error)

	// AddLandsraadPoint records a discovered control point.
	AddLandsraadPoint(ctx context.Context, input *AddLandsraadPointInput) (*desert.LandsraadPoint, error)

	// AddResourceLocation records a discovered resource concentration.
	AddResourceLocation(ctx context.Context, input *AddResourceLocationInput) (*desert.ResourceLocation, error)

	// RemovePOI soft-flags a point of interest as gone. Landsraad points
	// are permanent map features and cannot be removed.
	RemovePOI(ctx context.Context, input *RemovePOIInput) error

	// SectorSnapshot returns one sector with its active points of
	// interest. Soft-flagged entries are filtered out.
	SectorSnapshot(ctx context.Context, sectorID string) (*Snapshot, error)

	// GridOverview returns every sector with active POI counts, in
	// (row, column) order.
	GridOverview(ctx context.Context) (*Overview, error)

	// QuickAdd creates a point of interest from compact input, using
	// variant defaults for everything but the name.
	QuickAdd(ctx context.Context, input *QuickAddInput) (*Snapshot, error)

	// ListGuildBases returns active guild bases for the location report.
	ListGuildBases(ctx context.Context) ([]*desert.GuildBase, error)

	// ListSpiceLocations returns non-depleted spice locations.
	ListSpiceLocations(ctx context.Context) ([]*desert.SpiceLocation, error)

	// ListLandsraadPoints returns every control point.
	ListLandsraadPoints(ctx context.Context) ([]*desert.LandsraadPoint, error)

	// ListResourceLocations returns non-exhausted resource locations.
	ListResourceLocations(ctx context.Context) ([]*desert.ResourceLocation, error)
}

// MarkSurveyedInput contains data for recording a survey pass
type MarkSurveyedInput struct {
	SectorID string
	Status   desert.SurveyStatus
	Actor    string
	Notes    string
}

// AddGuildBaseInput contains data for recording a guild base
type AddGuildBaseInput struct {
	SectorID    string
	GuildName   string
	BaseType    string // main, outpost, temporary
	Alliance    string
	Coordinates string
	Actor       string
	Notes       string
}

// AddSpiceLocationInput contains data for recording a spice deposit
type AddSpiceLocationInput struct {
	SectorID       string
	Size           string // small, medium, large
	EstimatedYield int
	Coordinates    string
	Actor          string
	Notes          string
}

// AddLandsraadPointInput contains data for recording a control point
type AddLandsraadPointInput struct {
	SectorID      string
	Name          string
	Tier          int
	DefenseRating int
	Controller    string
	Coordinates   string
	Actor         string
	Notes         string
}

// AddResourceLocationInput contains data for recording a resource site
type AddResourceLocationInput struct {
	SectorID      string
	ResourceType  string
	Concentration string
	Coordinates   string
	Actor         string
	Notes         string
}

// RemovePOIInput identifies the point of interest to soft-flag
type RemovePOIInput struct {
	Variant desert.POIVariant
	ID      string
	Actor   string
}

// QuickAddInput contains the compact creation form
type QuickAddInput struct {
	SectorID string
	Variant  desert.POIVariant
	Name     string
	Actor    string
}

// Snapshot is one sector with its active points of interest.
type Snapshot struct {
	Sector     *desert.Sector
	GuildBases []*desert.GuildBase
	Spice      []*desert.SpiceLocation
	Landsraad  []*desert.LandsraadPoint
	Resources  []*desert.ResourceLocation
}

// SectorSummary is one sector with active POI counts.
type SectorSummary struct {
	Sector     *desert.Sector
	GuildBases int
	Spice      int
	Landsraad  int
	Resources  int
}

// HasPOIs reports whether any active point of interest sits in the sector.
func (s *SectorSummary) HasPOIs() bool {
	return s.GuildBases+s.Spice+s.Landsraad+s.Resources > 0
}

// Overview is the full grid with survey tallies.
type Overview struct {
	Sectors    []*SectorSummary
	Surveyed   int
	Partial    int
	Unsurveyed int
}

// service implements the Service interface
type service struct {
	repository    Repository
	uuidGenerator uuid.Generator
	timeProvider  clock.TimeProvider
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository         // Required
	UUIDGenerator uuid.Generator     // Optional, will use default if nil
	TimeProvider  clock.TimeProvider // Optional, will use system clock if nil
}

// NewService creates a new desert service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGenerator()
	}

	if cfg.TimeProvider != nil {
		svc.timeProvider = cfg.TimeProvider
	} else {
		svc.timeProvider = clock.NewSystemClock()
	}

	return svc
}

func (s *service) InitializeGrid(ctx context.Context) (int, error) {
	created, err := s.repository.InitGrid(ctx)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to initialize grid")
	}
	return created, nil
}

func (s *service) MarkSurveyed(ctx context.Context, input *MarkSurveyedInput) (*desert.Sector, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	switch input.Status {
	case desert.SurveyPartial, desert.SurveyComplete:
	default:
		return nil, apperrors.InvalidArgumentf("survey status must be partial or complete, got '%s'", input.Status)
	}

	id, err := desert.ParseSectorID(input.SectorID)
	if err != nil {
		return nil, err
	}

	sector, err := s.repository.GetSector(ctx, id)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to get sector %s", id)
	}

	now := s.timeProvider.Now()
	sector.Status = input.Status
	sector.LastSurveyed = &now
	sector.SurveyedBy = input.Actor
	if strings.TrimSpace(input.Notes) != "" {
		sector.Notes = strings.TrimSpace(input.Notes)
	}

	if err := s.repository.SaveSector(ctx, sector); err != nil {
		return nil, apperrors.Wrapf(err, "failed to save sector %s", id)
	}

	return sector, nil
}

// ratchetSurvey bumps an unsurveyed sector to partial after a discovery.
// Partial and complete sectors keep their status.
func (s *service) ratchetSurvey(ctx context.Context, id desert.SectorID) error {
	sector, err := s.repository.GetSector(ctx, id)
	if err != nil {
		return apperrors.Wrapf(err, "failed to get sector %s", id)
	}
	if sector.Status != desert.SurveyUnsurveyed {
		return nil
	}

	sector.Status = desert.SurveyPartial
	return s.repository.SaveSector(ctx, sector)
}

func (s *service) AddGuildBase(ctx context.Context, input *AddGuildBaseInput) (*desert.GuildBase, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.GuildName) == "" {
		return nil, apperrors.InvalidArgument("guild name is required")
	}

	id, err := desert.ParseSectorID(input.SectorID)
	if err != nil {
		return nil, err
	}

	baseType := strings.ToLower(strings.TrimSpace(input.BaseType))
	switch baseType {
	case "":
		baseType = "main"
	case "main", "outpost", "temporary":
	default:
		return nil, apperrors.InvalidArgumentf("base type must be main, outpost or temporary, got '%s'", input.BaseType)
	}

	base := &desert.GuildBase{
		ID:           s.uuidGenerator.New(),
		SectorID:     id,
		GuildName:    strings.TrimSpace(input.GuildName),
		BaseType:     baseType,
		Alliance:     strings.TrimSpace(input.Alliance),
		Coordinates:  strings.TrimSpace(input.Coordinates),
		DiscoveredBy: input.Actor,
		DiscoveredAt: s.timeProvider.Now(),
		Active:       true,
		Notes:        strings.TrimSpace(input.Notes),
	}

	if err := s.repository.SaveGuildBase(ctx, base); err != nil {
		return nil, apperrors.Wrap(err, "failed to save guild base")
	}
	if err := s.ratchetSurvey(ctx, id); err != nil {
		return nil, err
	}

	return base, nil
}

func (s *service) AddSpiceLocation(ctx context.Context, input *AddSpiceLocationInput) (*desert.SpiceLocation, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}

	id, err := desert.ParseSectorID(input.SectorID)
	if err != nil {
		return nil, err
	}

	size := strings.ToLower(strings.TrimSpace(input.Size))
	switch size {
	case "":
		size = "medium"
	case "small", "medium", "large":
	default:
		return nil, apperrors.InvalidArgumentf("size must be small, medium or large, got '%s'", input.Size)
	}

	yield := input.EstimatedYield
	if yield < 0 {
		yield = 0
	}
	if yield > 100 {
		yield = 100
	}

	loc := &desert.SpiceLocation{
		ID:             s.uuidGenerator.New(),
		SectorID:       id,
		Size:           size,
		EstimatedYield: yield,
		Coordinates:    strings.TrimSpace(input.Coordinates),
		DiscoveredBy:   input.Actor,
		DiscoveredAt:   s.timeProvider.Now(),
		Notes:          strings.TrimSpace(input.Notes),
	}

	if err := s.repository.SaveSpiceLocation(ctx, loc); err != nil {
		return nil, apperrors.Wrap(err, "failed to save spice location")
	}
	if err := s.ratchetSurvey(ctx, id); err != nil {
		return nil, err
	}

	return loc, nil
}

func (s *service) AddLandsraadPoint(ctx context.Context, input *AddLandsraadPointInput) (*desert.LandsraadPoint, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.InvalidArgument("point name is required")
	}

	id, err := desert.ParseSectorID(input.SectorID)
	if err != nil {
		return nil, err
	}

	point := &desert.LandsraadPoint{
		ID:            s.uuidGenerator.New(),
		SectorID:      id,
		Name:          strings.TrimSpace(input.Name),
		Tier:          desert.ClampTier(input.Tier),
		DefenseRating: desert.ClampDefense(input.DefenseRating),
		Controller:    strings.TrimSpace(input.Controller),
		Coordinates:   strings.TrimSpace(input.Coordinates),
		DiscoveredBy:  input.Actor,
		DiscoveredAt:  s.timeProvider.Now(),
		Notes:         strings.TrimSpace(input.Notes),
	}

	if err := s.repository.SaveLandsraadPoint(ctx, point); err != nil {
		return nil, apperrors.Wrap(err, "failed to save landsraad point")
	}
	if err := s.ratchetSurvey(ctx, id); err != nil {
		return nil, err
	}

	return point, nil
}

func (s *service) AddResourceLocation(ctx context.Context, input *AddResourceLocationInput) (*desert.ResourceLocation, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.ResourceType) == "" {
		return nil, apperrors.InvalidArgument("resource type is required")
	}

	id, err := desert.ParseSectorID(input.SectorID)
	if err != nil {
		return nil, err
	}

	concentration := strings.ToLower(strings.TrimSpace(input.Concentration))
	if concentration == "" {
		concentration = "tier 1"
	}

	loc := &desert.ResourceLocation{
		ID:            s.uuidGenerator.New(),
		SectorID:      id,
		ResourceType:  strings.TrimSpace(input.ResourceType),
		Concentration: concentration,
		Coordinates:   strings.TrimSpace(input.Coordinates),
		DiscoveredBy:  input.Actor,
		DiscoveredAt:  s.timeProvider.Now(),
		Notes:         strings.TrimSpace(input.Notes),
	}

	if err := s.repository.SaveResourceLocation(ctx, loc); err != nil {
		return nil, apperrors.Wrap(err, "failed to save resource location")
	}
	if err := s.ratchetSurvey(ctx, id); err != nil {
		return nil, err
	}

	return loc, nil
}

func (s *service) RemovePOI(ctx context.Context, input *RemovePOIInput) error {
	if input == nil || input.ID == "" {
		return apperrors.InvalidArgument("point of interest ID is required")
	}

	switch input.Variant {
	case desert.VariantGuildBase:
		bases, err := s.repository.ListGuildBases(ctx)
		if err != nil {
			return err
		}
		for _, base := range bases {
			if base.ID == input.ID {
				base.Active = false
				return s.repository.SaveGuildBase(ctx, base)
			}
		}
	case desert.VariantSpiceLocation:
		locs, err := s.repository.ListSpiceLocations(ctx)
		if err != nil {
			return err
		}
		for _, loc := range locs {
			if loc.ID == input.ID {
				loc.Depleted = true
				return s.repository.SaveSpiceLocation(ctx, loc)
			}
		}
	case desert.VariantResourceLocation:
		locs, err := s.repository.ListResourceLocations(ctx)
		if err != nil {
			return err
		}
		for _, loc := range locs {
			if loc.ID == input.ID {
				loc.Exhausted = true
				return s.repository.SaveResourceLocation(ctx, loc)
			}
		}
	case desert.VariantLandsraadPoint:
		return apperrors.InvalidArgument("landsraad points are permanent and cannot be removed")
	default:
		return apperrors.InvalidArgumentf("unknown point of interest variant '%s'", input.Variant)
	}

	return apperrors.NotFoundf("point of interest not found: %s", input.ID)
}

func (s *service) SectorSnapshot(ctx context.Context, sectorID string) (*Snapshot, error) {
	id, err := desert.ParseSectorID(sectorID)
	if err != nil {
		return nil, err
	}

	sector, err := s.repository.GetSector(ctx, id)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to get sector %s", id)
	}

	snapshot := &Snapshot{Sector: sector}

	bases, err := s.ListGuildBases(ctx)
	if err != nil {
		return nil, err
	}
	for _, base := range bases {
		if base.SectorID == id {
			snapshot.GuildBases = append(snapshot.GuildBases, base)
		}
	}

	spice, err := s.ListSpiceLocations(ctx)
	if err != nil {
		return nil, err
	}
	for _, loc := range spice {
		if loc.SectorID == id {
			snapshot.Spice = append(snapshot.Spice, loc)
		}
	}

	points, err := s.ListLandsraadPoints(ctx)
	if err != nil {
		return nil, err
	}
	for _, point := range points {
		if point.SectorID == id {
			snapshot.Landsraad = append(snapshot.Landsraad, point)
		}
	}

	resources, err := s.ListResourceLocations(ctx)
	if err != nil {
		return nil, err
	}
	for _, loc := range resources {
		if loc.SectorID == id {
			snapshot.Resources = append(snapshot.Resources, loc)
		}
	}

	return snapshot, nil
}

func (s *service) GridOverview(ctx context.Context) (*Overview, error) {
	sectors, err := s.repository.ListSectors(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list sectors")
	}

	summaries := make(map[desert.SectorID]*SectorSummary, len(sectors))
	overview := &Overview{Sectors: make([]*SectorSummary, 0, len(sectors))}
	for _, sector := range sectors {
		summary := &SectorSummary{Sector: sector}
		summaries[sector.ID] = summary
		overview.Sectors = append(overview.Sectors, summary)

		switch sector.Status {
		case desert.SurveyComplete:
			overview.Surveyed++
		case desert.SurveyPartial:
			overview.Partial++
		default:
			overview.Unsurveyed++
		}
	}

	bases, err := s.ListGuildBases(ctx)
	if err != nil {
		return nil, err
	}
	for _, base := range bases {
		if summary, ok := summaries[base.SectorID]; ok {
			summary.GuildBases++
		}
	}

	spice, err := s.ListSpiceLocations(ctx)
	if err != nil {
		return nil, err
	}
	for _, loc := range spice {
		if summary, ok := summaries[loc.SectorID]; ok {
			summary.Spice++
		}
	}

	points, err := s.ListLandsraadPoints(ctx)
	if err != nil {
		return nil, err
	}
	for _, point := range points {
		if summary, ok := summaries[point.SectorID]; ok {
			summary.Landsraad++
		}
	}

	resources, err := s.ListResourceLocations(ctx)
	if err != nil {
		return nil, err
	}
	for _, loc := range resources {
		if summary, ok := summaries[loc.SectorID]; ok {
			summary.Resources++
		}
	}

	return overview, nil
}

func (s *service) QuickAdd(ctx context.Context, input *QuickAddInput) (*Snapshot, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}

	switch input.Variant {
	case desert.VariantGuildBase:
		_, err := s.AddGuildBase(ctx, &AddGuildBaseInput{
			SectorID:  input.SectorID,
			GuildName: input.Name,
			Actor:     input.Actor,
		})
		if err != nil {
			return nil, err
		}
	case desert.VariantSpiceLocation:
		size := strings.ToLower(strings.TrimSpace(input.Name))
		if size != "small" && size != "medium" && size != "large" {
			size = ""
		}
		_, err := s.AddSpiceLocation(ctx, &AddSpiceLocationInput{
			SectorID: input.SectorID,
			Size:     size,
			Actor:    input.Actor,
		})
		if err != nil {
			return nil, err
		}
	case desert.VariantLandsraadPoint:
		_, err := s.AddLandsraadPoint(ctx, &AddLandsraadPointInput{
			SectorID: input.SectorID,
			Name:     input.Name,
			Actor:    input.Actor,
		})
		if err != nil {
			return nil, err
		}
	case desert.VariantResourceLocation:
		_, err := s.AddResourceLocation(ctx, &AddResourceLocationInput{
			SectorID:     input.SectorID,
			ResourceType: input.Name,
			Actor:        input.Actor,
		})
		if err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.InvalidArgumentf("unknown point of interest variant '%s'", input.Variant)
	}

	return s.SectorSnapshot(ctx, input.SectorID)
}

func (s *service) ListGuildBases(ctx context.Context) ([]*desert.GuildBase, error) {
	bases, err := s.repository.ListGuildBases(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list guild bases")
	}

	active := make([]*desert.GuildBase, 0, len(bases))
	for _, base := range bases {
		if base.Active {
			active = append(active, base)
		}
	}
	return active, nil
}

func (s *service) ListSpiceLocations(ctx context.Context) ([]*desert.SpiceLocation, error) {
	locs, err := s.repository.ListSpiceLocations(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list spice locations")
	}

	active := make([]*desert.SpiceLocation, 0, len(locs))
	for _, loc := range locs {
		if !loc.Depleted {
			active = append(active, loc)
		}
	}
	return active, nil
}

func (s *service) ListLandsraadPoints(ctx context.Context) ([]*desert.LandsraadPoint, error) {
	points, err := s.repository.ListLandsraadPoints(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list landsraad points")
	}
	return points, nil
}

func (s *service) ListResourceLocations(ctx context.Context) ([]*desert.ResourceLocation, error) {
	locs, err := s.repository.ListResourceLocations(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list resource locations")
	}

	active := make([]*desert.ResourceLocation, 0, len(locs))
	for _, loc := range locs {
		if !loc.Exhausted {
			active = append(active, loc)
		}
	}
	return active, nil
}
