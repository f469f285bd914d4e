package desert

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/coldbreakfast/landsraad-bot/internal/domain/desert"
	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
)

// memoryRepo is an in-memory desert repository for service tests.
type memoryRepo struct {
	sectors   map[desert.SectorID]*desert.Sector
	bases     map[string]*desert.GuildBase
	spice     map[string]*desert.SpiceLocation
	landsraad map[string]*desert.LandsraadPoint
	resources map[string]*desert.ResourceLocation
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		sectors:   make(map[desert.SectorID]*desert.Sector),
		bases:     make(map[string]*desert.GuildBase),
		spice:     make(map[string]*desert.SpiceLocation),
		landsraad: make(map[string]*desert.LandsraadPoint),
		resources: make(map[string]*desert.ResourceLocation),
	}
}

func (m *memoryRepo) InitGrid(_ context.Context) (int, error) {
	created := 0
	for _, id := range desert.AllSectorIDs() {
		if _, ok := m.sectors[id]; !ok {
			m.sectors[id] = desert.NewSector(id)
			created++
		}
	}
	return created, nil
}

func (m *memoryRepo) GetSector(_ context.Context, id desert.SectorID) (*desert.Sector, error) {
	sector, ok := m.sectors[id]
	if !ok {
		return nil, apperrors.NotFoundf("sector not found: %s", id)
	}
	cp := *sector
	return &cp, nil
}

func (m *memoryRepo) ListSectors(_ context.Context) ([]*desert.Sector, error) {
	out := make([]*desert.Sector, 0, len(m.sectors))
	for _, id := range desert.AllSectorIDs() {
		if sector, ok := m.sectors[id]; ok {
			cp := *sector
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memoryRepo) SaveSector(_ context.Context, sector *desert.Sector) error {
	cp := *sector
	m.sectors[sector.ID] = &cp
	return nil
}

func (m *memoryRepo) SaveGuildBase(_ context.Context, base *desert.GuildBase) error {
	cp := *base
	m.bases[base.ID] = &cp
	return nil
}

func (m *memoryRepo) ListGuildBases(_ context.Context) ([]*desert.GuildBase, error) {
	out := make([]*desert.GuildBase, 0, len(m.bases))
	for _, base := range m.bases {
		cp := *base
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memoryRepo) SaveSpiceLocation(_ context.Context, loc *desert.SpiceLocation) error {
	cp := *loc
	m.spice[loc.ID] = &cp
	return nil
}

func (m *memoryRepo) ListSpiceLocations(_ context.Context) ([]*desert.SpiceLocation, error) {
	out := make([]*desert.SpiceLocation, 0, len(m.spice))
	for _, loc := range m.spice {
		cp := *loc
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memoryRepo) SaveLandsraadPoint(_ context.Context, point *desert.LandsraadPoint) error {
	cp := *point
	m.landsraad[point.ID] = &cp
	return nil
}

func (m *memoryRepo) ListLandsraadPoints(_ context.Context) ([]*desert.LandsraadPoint, error) {
	out := make([]*desert.LandsraadPoint, 0, len(m.landsraad))
	for _, point := range m.landsraad {
		cp := *point
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memoryRepo) SaveResourceLocation(_ context.Context, loc *desert.ResourceLocation) error {
	cp := *loc
	m.resources[loc.ID] = &cp
	return nil
}

func (m *memoryRepo) ListResourceLocations(_ context.Context) ([]*desert.ResourceLocation, error) {
	out := make([]*desert.ResourceLocation, 0, len(m.resources))
	for _, loc := range m.resources {
		cp := *loc
		out = append(out, &cp)
	}
	return out, nil
}

type fixedClock struct{ now time.Time }

func (f *fixedClock) Now() time.Time { return f.now }

type sequenceGenerator struct{ n int }

func (g *sequenceGenerator) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type ServiceTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *memoryRepo
	now  time.Time
	svc  Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = newMemoryRepo()
	s.now = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	s.svc = NewService(&ServiceConfig{
		Repository:    s.repo,
		UUIDGenerator: &sequenceGenerator{},
		TimeProvider:  &fixedClock{now: s.now},
	})

	_, err := s.svc.InitializeGrid(s.ctx)
	s.Require().NoError(err)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestInitializeGridIdempotent() {
	created, err := s.svc.InitializeGrid(s.ctx)
	s.NoError(err)
	s.Equal(0, created, "second run creates nothing")
	s.Len(s.repo.sectors, 81)
}

func (s *ServiceTestSuite) TestMarkSurveyed() {
	sector, err := s.svc.MarkSurveyed(s.ctx, &MarkSurveyedInput{
		SectorID: "b3",
		Status:   desert.SurveyComplete,
		Actor:    "Stilgar",
	})
	s.NoError(err)
	s.Equal(desert.SectorID("B3"), sector.ID)
	s.Equal(desert.SurveyComplete, sector.Status)
	s.Equal("Stilgar", sector.SurveyedBy)
	s.Require().NotNil(sector.LastSurveyed)
	s.Equal(s.now, *sector.LastSurveyed)

	// Invalid status
	_, err = s.svc.MarkSurveyed(s.ctx, &MarkSurveyedInput{SectorID: "B3", Status: "explored"})
	s.Error(err)

	// Invalid sector
	_, err = s.svc.MarkSurveyed(s.ctx, &MarkSurveyedInput{SectorID: "J1", Status: desert.SurveyPartial})
	s.Error(err)
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestAddGuildBaseRatchetsSurvey() {
	base, err := s.svc.AddGuildBase(s.ctx, &AddGuildBaseInput{
		SectorID:  "D4",
		GuildName: "Fedaykin",
		BaseType:  "outpost",
		Actor:     "Chani",
	})
	s.NoError(err)
	s.True(base.Active)
	s.Equal("outpost", base.BaseType)

	sector, err := s.repo.GetSector(s.ctx, "D4")
	s.Require().NoError(err)
	s.Equal(desert.SurveyPartial, sector.Status, "discovery bumps unsurveyed to partial")

	// A completed survey never regresses
	_, err = s.svc.MarkSurveyed(s.ctx, &MarkSurveyedInput{SectorID: "D4", Status: desert.SurveyComplete})
	s.Require().NoError(err)
	_, err = s.svc.AddGuildBase(s.ctx, &AddGuildBaseInput{SectorID: "D4", GuildName: "Sardaukar"})
	s.Require().NoError(err)

	sector, err = s.repo.GetSector(s.ctx, "D4")
	s.Require().NoError(err)
	s.Equal(desert.SurveyComplete, sector.Status)

	// Validation
	_, err = s.svc.AddGuildBase(s.ctx, &AddGuildBaseInput{SectorID: "D4", GuildName: ""})
	s.Error(err)
	_, err = s.svc.AddGuildBase(s.ctx, &AddGuildBaseInput{SectorID: "D4", GuildName: "x", BaseType: "fortress"})
	s.Error(err)
}

func (s *ServiceTestSuite) TestAddSpiceLocation() {
	loc, err := s.svc.AddSpiceLocation(s.ctx, &AddSpiceLocationInput{
		SectorID:       "G8",
		Size:           "LARGE",
		EstimatedYield: 250,
		Actor:          "Liet",
	})
	s.NoError(err)
	s.Equal("large", loc.Size)
	s.Equal(100, loc.EstimatedYield, "yield clamps to 100")
	s.False(loc.Depleted)

	sector, err := s.repo.GetSector(s.ctx, "G8")
	s.Require().NoError(err)
	s.Equal(desert.SurveyPartial, sector.Status)
}

func (s *ServiceTestSuite) TestAddLandsraadPointClamps() {
	point, err := s.svc.AddLandsraadPoint(s.ctx, &AddLandsraadPointInput{
		SectorID:      "E5",
		Name:          "Relay Station",
		Tier:          9,
		DefenseRating: -2,
	})
	s.NoError(err)
	s.Equal(3, point.Tier)
	s.Equal(1, point.DefenseRating)
}

func (s *ServiceTestSuite) TestRemovePOI() {
	base, err := s.svc.AddGuildBase(s.ctx, &AddGuildBaseInput{SectorID: "A1", GuildName: "Fedaykin"})
	s.Require().NoError(err)
	spice, err := s.svc.AddSpiceLocation(s.ctx, &AddSpiceLocationInput{SectorID: "A1"})
	s.Require().NoError(err)
	point, err := s.svc.AddLandsraadPoint(s.ctx, &AddLandsraadPointInput{SectorID: "A1", Name: "Watch"})
	s.Require().NoError(err)

	err = s.svc.RemovePOI(s.ctx, &RemovePOIInput{Variant: desert.VariantGuildBase, ID: base.ID})
	s.NoError(err)
	err = s.svc.RemovePOI(s.ctx, &RemovePOIInput{Variant: desert.VariantSpiceLocation, ID: spice.ID})
	s.NoError(err)

	// Landsraad points never go away
	err = s.svc.RemovePOI(s.ctx, &RemovePOIInput{Variant: desert.VariantLandsraadPoint, ID: point.ID})
	s.Error(err)

	// Records survive as flagged, active listings exclude them
	s.False(s.repo.bases[base.ID].Active)
	s.True(s.repo.spice[spice.ID].Depleted)

	bases, err := s.svc.ListGuildBases(s.ctx)
	s.NoError(err)
	s.Empty(bases)

	// Unknown ID
	err = s.svc.RemovePOI(s.ctx, &RemovePOIInput{Variant: desert.VariantGuildBase, ID: "missing"})
	s.Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *ServiceTestSuite) TestSectorSnapshotFiltersSoftFlagged() {
	base, err := s.svc.AddGuildBase(s.ctx, &AddGuildBaseInput{SectorID: "C3", GuildName: "Fedaykin"})
	s.Require().NoError(err)
	_, err = s.svc.AddSpiceLocation(s.ctx, &AddSpiceLocationInput{SectorID: "C3", Size: "small"})
	s.Require().NoError(err)
	_, err = s.svc.AddResourceLocation(s.ctx, &AddResourceLocationInput{SectorID: "C3", ResourceType: "titanium"})
	s.Require().NoError(err)
	// A base in another sector stays out of the snapshot
	_, err = s.svc.AddGuildBase(s.ctx, &AddGuildBaseInput{SectorID: "C4", GuildName: "Sardaukar"})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.RemovePOI(s.ctx, &RemovePOIInput{Variant: desert.VariantGuildBase, ID: base.ID}))

	snapshot, err := s.svc.SectorSnapshot(s.ctx, "C3")
	s.NoError(err)
	s.Empty(snapshot.GuildBases, "deactivated base filtered out")
	s.Len(snapshot.Spice, 1)
	s.Len(snapshot.Resources, 1)
	s.Empty(snapshot.Landsraad)
}

func (s *ServiceTestSuite) TestGridOverview() {
	_, err := s.svc.AddGuildBase(s.ctx, &AddGuildBaseInput{SectorID: "B2", GuildName: "Fedaykin"})
	s.Require().NoError(err)
	_, err = s.svc.MarkSurveyed(s.ctx, &MarkSurveyedInput{SectorID: "A1", Status: desert.SurveyComplete})
	s.Require().NoError(err)

	overview, err := s.svc.GridOverview(s.ctx)
	s.NoError(err)
	s.Require().Len(overview.Sectors, 81)
	s.Equal(1, overview.Surveyed)
	s.Equal(1, overview.Partial)
	s.Equal(79, overview.Unsurveyed)

	// B2 sits at index 9+1
	s.Equal(desert.SectorID("B2"), overview.Sectors[10].Sector.ID)
	s.Equal(1, overview.Sectors[10].GuildBases)
	s.True(overview.Sectors[10].HasPOIs())
	s.False(overview.Sectors[0].HasPOIs())
}

func (s *ServiceTestSuite) TestQuickAdd() {
	snapshot, err := s.svc.QuickAdd(s.ctx, &QuickAddInput{
		SectorID: "f6",
		Variant:  desert.VariantSpiceLocation,
		Name:     "large",
		Actor:    "Chani",
	})
	s.NoError(err)
	s.Require().Len(snapshot.Spice, 1)
	s.Equal("large", snapshot.Spice[0].Size)
	s.Equal(desert.SurveyPartial, snapshot.Sector.Status)

	// Resource shorthand
	snapshot, err = s.svc.QuickAdd(s.ctx, &QuickAddInput{
		SectorID: "F6",
		Variant:  desert.VariantResourceLocation,
		Name:     "titanium",
	})
	s.NoError(err)
	s.Require().Len(snapshot.Resources, 1)
	s.Equal("titanium", snapshot.Resources[0].ResourceType)

	// Bad variant
	_, err = s.svc.QuickAdd(s.ctx, &QuickAddInput{SectorID: "F6", Variant: "oasis"})
	s.Error(err)
}
