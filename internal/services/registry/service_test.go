package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/coldbreakfast/landsraad-bot/internal/domain/house"
	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
	"github.com/coldbreakfast/landsraad-bot/internal/repositories/houses"
)

// memoryRepo is an in-memory house repository for service tests.
type memoryRepo struct {
	houses   map[string]*house.House
	resetLog []*houses.ResetEntry
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{houses: make(map[string]*house.House)}
}

func (m *memoryRepo) key(name string) string { return strings.ToLower(name) }

func (m *memoryRepo) EnsureExists(_ context.Context, h *house.House) error {
	if _, ok := m.houses[m.key(h.Name)]; !ok {
		cp := *h
		m.houses[m.key(h.Name)] = &cp
	}
	return nil
}

func (m *memoryRepo) Get(_ context.Context, name string) (*house.House, error) {
	h, ok := m.houses[m.key(name)]
	if !ok {
		return nil, apperrors.NotFoundf("house not found: %s", name)
	}
	cp := *h
	return &cp, nil
}

func (m *memoryRepo) List(_ context.Context) ([]*house.House, error) {
	keys := make([]string, 0, len(m.houses))
	for k := range m.houses {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*house.House, 0, len(keys))
	for _, k := range keys {
		cp := *m.houses[k]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memoryRepo) Save(_ context.Context, h *house.House) error {
	cp := *h
	m.houses[m.key(h.Name)] = &cp
	return nil
}

func (m *memoryRepo) DeleteAllExcept(_ context.Context, keep []string) (int, error) {
	keepSet := make(map[string]bool, len(keep))
	for _, name := range keep {
		keepSet[m.key(name)] = true
	}
	removed := 0
	for k := range m.houses {
		if !keepSet[k] {
			delete(m.houses, k)
			removed++
		}
	}
	return removed, nil
}

func (m *memoryRepo) ResetAll(_ context.Context, reset func(*house.House) *house.House, entry *houses.ResetEntry) (*houses.ResetEntry, error) {
	completed := 0
	for k, h := range m.houses {
		if h.Claimed() {
			completed++
		}
		m.houses[k] = reset(h)
	}
	entry.HousesReset = len(m.houses)
	entry.HousesCompleted = completed
	m.resetLog = append(m.resetLog, entry)
	return entry, nil
}

func (m *memoryRepo) ListResetLog(_ context.Context, limit int) ([]*houses.ResetEntry, error) {
	out := make([]*houses.ResetEntry, 0, limit)
	for i := len(m.resetLog) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.resetLog[i])
	}
	return out, nil
}

func (m *memoryRepo) DeleteAll(_ context.Context) error {
	m.houses = make(map[string]*house.House)
	m.resetLog = nil
	return nil
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
	s.now = time.Date(2025, 7, 8, 3, 0, 0, 0, time.UTC)
	s.svc = NewService(&ServiceConfig{
		Repository:    s.repo,
		UUIDGenerator: &sequenceGenerator{},
		TimeProvider:  &fixedClock{now: s.now},
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) reconcile() {
	_, err := s.svc.ReconcileRoster(s.ctx)
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TestReconcileRoster() {
	result, err := s.svc.ReconcileRoster(s.ctx)
	s.NoError(err)
	s.Equal(25, result.Created)
	s.Equal(0, result.Removed)

	// Extraneous records get removed, roster stays intact
	s.Require().NoError(s.repo.Save(s.ctx, house.NewLocked("Corrino")))

	result, err = s.svc.ReconcileRoster(s.ctx)
	s.NoError(err)
	s.Equal(0, result.Created)
	s.Equal(1, result.Removed)

	list, err := s.svc.ListHouses(s.ctx)
	s.NoError(err)
	s.Len(list, 25)
}

func (s *ServiceTestSuite) TestGetHouse() {
	s.reconcile()

	h, err := s.svc.GetHouse(s.ctx, "ecaz")
	s.NoError(err)
	s.Equal("Ecaz", h.Name)
	s.True(h.Locked)
	s.Equal("Unknown", h.Quest)

	_, err = s.svc.GetHouse(s.ctx, "Corrino")
	s.Error(err)
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestUnlock() {
	s.reconcile()

	h, err := s.svc.Unlock(s.ctx, &UnlockInput{
		Name:              "Hagal",
		Quest:             "Deliver plasteel",
		PointsPerDelivery: 23,
		Actor:             "Stilgar",
	})
	s.NoError(err)
	s.False(h.Locked)
	s.Equal("Deliver plasteel", h.Quest)
	s.Equal(23, h.PointsPerDelivery)
	s.Equal(house.DefaultGoal, h.Goal, "goal untouched when not supplied")
	s.Equal("Stilgar", h.UpdatedBy)
	s.Equal(s.now, h.LastUpdated)

	// Custom goal
	h, err = s.svc.Unlock(s.ctx, &UnlockInput{
		Name: "Ecaz", Quest: "Deliver fuel cells", PointsPerDelivery: 10, Goal: 14000,
	})
	s.NoError(err)
	s.Equal(14000, h.Goal)

	// Validation
	_, err = s.svc.Unlock(s.ctx, &UnlockInput{Name: "Ecaz", Quest: "", PointsPerDelivery: 5})
	s.Error(err)
	_, err = s.svc.Unlock(s.ctx, &UnlockInput{Name: "Ecaz", Quest: "q", PointsPerDelivery: 0})
	s.Error(err)
}

func (s *ServiceTestSuite) TestSetAlliance() {
	s.reconcile()
	_, err := s.svc.Unlock(s.ctx, &UnlockInput{Name: "Wydras", Quest: "q", PointsPerDelivery: 1})
	s.Require().NoError(err)

	h, err := s.svc.SetAlliance(s.ctx, &SetAllianceInput{Name: "Wydras", Alliance: "atreides", Actor: "Chani"})
	s.NoError(err)
	s.Equal(house.AllianceAtreides, h.Alliance)
	s.True(h.Claimed())

	// Completion marker survives a claim change
	_, err = s.svc.UpdateField(s.ctx, &UpdateFieldInput{Name: "Wydras", Field: "completed_by", Value: "harkonnen"})
	s.Require().NoError(err)

	h, err = s.svc.SetAlliance(s.ctx, &SetAllianceInput{Name: "Wydras", Alliance: "none"})
	s.NoError(err)
	s.Empty(string(h.Alliance))
	s.Equal(house.AllianceHarkonnen, h.CompletedBy)

	// Locked houses reject claims but allow clearing
	_, err = s.svc.SetAlliance(s.ctx, &SetAllianceInput{Name: "Sor", Alliance: "h"})
	s.Error(err)
	_, err = s.svc.SetAlliance(s.ctx, &SetAllianceInput{Name: "Sor", Alliance: "none"})
	s.NoError(err)

	// Unknown faction
	_, err = s.svc.SetAlliance(s.ctx, &SetAllianceInput{Name: "Wydras", Alliance: "Corrino"})
	s.Error(err)
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestUpdateField() {
	s.reconcile()
	_, err := s.svc.Unlock(s.ctx, &UnlockInput{Name: "Maros", Quest: "q", PointsPerDelivery: 100})
	s.Require().NoError(err)

	// Absolute progress
	h, err := s.svc.UpdateField(s.ctx, &UpdateFieldInput{Name: "Maros", Field: "progress", Value: "35000", Actor: "Liet"})
	s.NoError(err)
	s.Equal(35000, h.Progress)

	// Relative progress
	h, err = s.svc.UpdateField(s.ctx, &UpdateFieldInput{Name: "Maros", Field: "progress", Value: "+500"})
	s.NoError(err)
	s.Equal(35500, h.Progress)

	h, err = s.svc.UpdateField(s.ctx, &UpdateFieldInput{Name: "Maros", Field: "progress", Value: "-40000"})
	s.NoError(err)
	s.Equal(0, h.Progress, "relative decrease floors at zero")

	// Other fields
	h, err = s.svc.UpdateField(s.ctx, &UpdateFieldInput{Name: "Maros", Field: "location", Value: "E5"})
	s.NoError(err)
	s.Equal("E5", h.DesertLocation)

	h, err = s.svc.UpdateField(s.ctx, &UpdateFieldInput{Name: "Maros", Field: "cp", Value: "3"})
	s.NoError(err)
	s.Equal(3, h.DeepDesertCP)

	h, err = s.svc.UpdateField(s.ctx, &UpdateFieldInput{Name: "Maros", Field: "alliance", Value: "a"})
	s.NoError(err)
	s.Equal(house.AllianceAtreides, h.Alliance)
	s.Empty(string(h.CompletedBy), "alliance edits never touch the completion marker")

	// Rejections
	_, err = s.svc.UpdateField(s.ctx, &UpdateFieldInput{Name: "Maros", Field: "goal", Value: "zero"})
	s.Error(err)
	_, err = s.svc.UpdateField(s.ctx, &UpdateFieldInput{Name: "Maros", Field: "alliance", Value: "Corrino"})
	s.Error(err)
	_, err = s.svc.UpdateField(s.ctx, &UpdateFieldInput{Name: "Maros", Field: "name", Value: "Corrino"})
	s.Error(err)
}

func (s *ServiceTestSuite) TestWeeklyReset() {
	s.reconcile()
	_, err := s.svc.Unlock(s.ctx, &UnlockInput{Name: "Thorvald", Quest: "q", PointsPerDelivery: 5})
	s.Require().NoError(err)
	_, err = s.svc.SetAlliance(s.ctx, &SetAllianceInput{Name: "Thorvald", Alliance: "h"})
	s.Require().NoError(err)
	_, err = s.svc.UpdateField(s.ctx, &UpdateFieldInput{Name: "Thorvald", Field: "notes", Value: "rush this one"})
	s.Require().NoError(err)

	entry, err := s.svc.WeeklyReset(s.ctx, "admin")
	s.NoError(err)
	s.Equal(25, entry.HousesReset)
	s.Equal(1, entry.HousesCompleted)
	s.Equal("admin", entry.ResetBy)
	s.Equal(s.now, entry.ResetAt)

	h, err := s.svc.GetHouse(s.ctx, "Thorvald")
	s.NoError(err)
	s.True(h.Locked)
	s.Equal(0, h.Progress)
	s.Equal("Unknown", h.Quest)
	s.Empty(string(h.Alliance))
	s.Equal("rush this one", h.Notes, "notes survive the weekly reset")

	log, err := s.svc.ResetLog(s.ctx, 5)
	s.NoError(err)
	s.Require().Len(log, 1)
	s.Equal(entry.ID, log[0].ID)
}

func (s *ServiceTestSuite) TestFullReset() {
	s.reconcile()
	_, err := s.svc.WeeklyReset(s.ctx, "admin")
	s.Require().NoError(err)

	result, err := s.svc.FullReset(s.ctx)
	s.NoError(err)
	s.Equal(25, result.Created)

	log, err := s.svc.ResetLog(s.ctx, 5)
	s.NoError(err)
	s.Empty(log, "full reset clears the audit log")
}

func (s *ServiceTestSuite) TestRepairAlliances() {
	s.reconcile()

	h, err := s.repo.Get(s.ctx, "Imota")
	s.Require().NoError(err)
	h.Alliance = "Fremen"
	h.CompletedBy = "CHOAM"
	s.Require().NoError(s.repo.Save(s.ctx, h))

	repaired, err := s.svc.RepairAlliances(s.ctx)
	s.NoError(err)
	s.Equal(1, repaired)

	h, err = s.svc.GetHouse(s.ctx, "Imota")
	s.NoError(err)
	s.Empty(string(h.Alliance))
	s.Empty(string(h.CompletedBy))

	// Second pass finds nothing
	repaired, err = s.svc.RepairAlliances(s.ctx)
	s.NoError(err)
	s.Equal(0, repaired)
}

func (s *ServiceTestSuite) TestStatistics() {
	s.reconcile()
	_, err := s.svc.Unlock(s.ctx, &UnlockInput{Name: "Ecaz", Quest: "q", PointsPerDelivery: 1})
	s.Require().NoError(err)
	_, err = s.svc.SetAlliance(s.ctx, &SetAllianceInput{Name: "Ecaz", Alliance: "a"})
	s.Require().NoError(err)
	_, err = s.svc.UpdateField(s.ctx, &UpdateFieldInput{Name: "Ecaz", Field: "progress", Value: "70000"})
	s.Require().NoError(err)
	_, err = s.svc.Unlock(s.ctx, &UnlockInput{Name: "Sor", Quest: "q", PointsPerDelivery: 1})
	s.Require().NoError(err)

	stats, err := s.svc.Statistics(s.ctx)
	s.NoError(err)
	s.Equal(25, stats.Total)
	s.Equal(23, stats.Locked)
	s.Equal(1, stats.Open)
	s.Equal(1, stats.ClaimedAtreides)
	s.Equal(0, stats.ClaimedHarkonnen)
	s.Equal(1, stats.Completed)
	s.Equal(70000, stats.TotalProgress)
}

func (s *ServiceTestSuite) TestExportCSV() {
	s.reconcile()

	data, err := s.svc.ExportCSV(s.ctx)
	s.NoError(err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	s.Require().Len(lines, 26, "header plus 25 houses")
	s.Contains(lines[0], "name,quest,progress")
	s.True(strings.HasPrefix(lines[1], "Alexin,"))
	s.True(strings.HasPrefix(lines[25], "Wydras,"))
}
