package registry

//go:generate mockgen -destination=mocks/mock_service.go -package=mockregistry -source=service.go

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/coldbreakfast/landsraad-bot/internal/clock"
	"github.com/coldbreakfast/landsraad-bot/internal/domain/house"
	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
	"github.com/coldbreakfast/landsraad-bot/internal/repositories/houses"
	"github.com/coldbreakfast/landsraad-bot/internal/uuid"
)

// Repository is an alias for the house repository interface
type Repository = houses.Repository

// Service manages the fixed roster of claimable houses.
type Service interface {
	// ReconcileRoster ensures every roster house exists in its initial
	// state and removes any record outside the roster.
	ReconcileRoster(ctx context.Context) (*ReconcileResult, error)

	// GetHouse retrieves a house by name, case-insensitively.
	GetHouse(ctx context.Context, name string) (*house.House, error)

	// ListHouses returns every house ordered by name.
	ListHouses(ctx context.Context) ([]*house.House, error)

	// Unlock opens a locked house with its weekly quest.
	Unlock(ctx context.Context, input *UnlockInput) (*house.House, error)

	// SetAlliance claims a house for an alliance or clears the claim.
	// The completion marker is left untouched either way.
	SetAlliance(ctx context.Context, input *SetAllianceInput) (*house.House, error)

	// UpdateField sets one whitelisted house field from raw user input.
	UpdateField(ctx context.Context, input *UpdateFieldInput) (*house.House, error)

	// WeeklyReset returns every house to its locked initial state and
	// appends an audit entry.
	WeeklyReset(ctx context.Context, actor string) (*houses.ResetEntry, error)

	// ResetLog returns recent weekly reset entries, newest first.
	ResetLog(ctx context.Context, limit int) ([]*houses.ResetEntry, error)

	// FullReset deletes everything, including the reset log, and rebuilds
	// the roster from scratch.
	FullReset(ctx context.Context) (*ReconcileResult, error)

	// RepairAlliances clears alliance and completion values outside the
	// permitted set and returns how many houses were repaired.
	RepairAlliances(ctx context.Context) (int, error)

	// Statistics summarizes the current claim state across all houses.
	Statistics(ctx context.Context) (*Stats, error)

	// ExportCSV renders every house as CSV for offline analysis.
	ExportCSV(ctx context.Context) ([]byte, error)
}

// ReconcileResult reports what a roster reconciliation changed.
type ReconcileResult struct {
	Created int
	Removed int
}

// UnlockInput contains data for opening a locked house
type UnlockInput struct {
	Name              string
	Quest             string
	PointsPerDelivery int
	Goal              int // Optional, keeps the stored goal when 0
	Actor             string
}

// SetAllianceInput contains data for claiming or releasing a house
type SetAllianceInput struct {
	Name     string
	Alliance string // Raw user input, empty or "none" clears the claim
	Actor    string
}

// UpdateFieldInput contains one field update from raw user input
type UpdateFieldInput struct {
	Name  string
	Field string
	Value string
	Actor string
}

// Stats summarizes the claim state of the roster.
type Stats struct {
	Total            int
	Locked           int
	Open             int
	ClaimedAtreides  int
	ClaimedHarkonnen int
	Completed        int
	CorruptAlliances int
	TotalProgress    int
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

// NewService creates a new registry service
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

func (s *service) ReconcileRoster(ctx context.Context) (*ReconcileResult, error) {
	result := &ReconcileResult{}

	stored, err := s.repository.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list houses")
	}
	existing := make(map[string]bool, len(stored))
	for _, h := range stored {
		existing[strings.ToLower(h.Name)] = true
	}

	for _, name := range house.Roster() {
		if existing[strings.ToLower(name)] {
			continue
		}
		if err := s.repository.EnsureExists(ctx, house.NewLocked(name)); err != nil {
			return nil, apperrors.Wrapf(err, "failed to create house '%s'", name)
		}
		result.Created++
	}

	removed, err := s.repository.DeleteAllExcept(ctx, house.Roster())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to remove extraneous houses")
	}
	result.Removed = removed

	return result, nil
}

func (s *service) GetHouse(ctx context.Context, name string) (*house.House, error) {
	canonical, ok := house.CanonicalName(name)
	if !ok {
		return nil, apperrors.InvalidArgumentf("unknown house '%s'", name)
	}

	h, err := s.repository.Get(ctx, canonical)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to get house '%s'", canonical).
			WithMeta("house", canonical)
	}

	return h, nil
}

func (s *service) ListHouses(ctx context.Context) ([]*house.House, error) {
	list, err := s.repository.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list houses")
	}
	return list, nil
}

func (s *service) Unlock(ctx context.Context, input *UnlockInput) (*house.House, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.Quest) == "" {
		return nil, apperrors.InvalidArgument("quest is required")
	}
	if input.PointsPerDelivery <= 0 {
		return nil, apperrors.InvalidArgument("points per delivery must be positive")
	}
	if input.Goal < 0 {
		return nil, apperrors.InvalidArgument("goal cannot be negative")
	}

	h, err := s.GetHouse(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	h.Locked = false
	h.Quest = strings.TrimSpace(input.Quest)
	h.PointsPerDelivery = input.PointsPerDelivery
	if input.Goal > 0 {
		h.Goal = input.Goal
	}
	s.stamp(h, input.Actor)

	if err := s.repository.Save(ctx, h); err != nil {
		return nil, apperrors.Wrapf(err, "failed to unlock house '%s'", h.Name)
	}

	return h, nil
}

func (s *service) SetAlliance(ctx context.Context, input *SetAllianceInput) (*house.House, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}

	alliance, cleared, ok := house.ParseAlliance(input.Alliance)
	if !ok {
		return nil, apperrors.InvalidArgumentf("unknown alliance '%s': use Atreides, Harkonnen or none", input.Alliance)
	}

	h, err := s.GetHouse(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if h.Locked && !cleared {
		return nil, apperrors.InvalidArgumentf("house %s is locked this week", h.Name)
	}

	if cleared {
		h.Alliance = ""
	} else {
		h.Alliance = alliance
	}
	s.stamp(h, input.Actor)

	if err := s.repository.Save(ctx, h); err != nil {
		return nil, apperrors.Wrapf(err, "failed to claim house '%s'", h.Name)
	}

	return h, nil
}

// UpdateField sets one whitelisted field. Progress accepts a leading + or -
// for relative adjustment.
func (s *service) UpdateField(ctx context.Context, input *UpdateFieldInput) (*house.House, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}

	h, err := s.GetHouse(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	value := strings.TrimSpace(input.Value)
	switch strings.ToLower(strings.TrimSpace(input.Field)) {
	case "quest":
		if value == "" {
			return nil, apperrors.InvalidArgument("quest cannot be empty")
		}
		h.Quest = value
	case "progress":
		amount, err := strconv.Atoi(strings.TrimPrefix(value, "+"))
		if err != nil {
			return nil, apperrors.InvalidArgumentf("progress must be a number, got '%s'", value)
		}
		if strings.HasPrefix(value, "+") || strings.HasPrefix(value, "-") {
			amount += h.Progress
		}
		if amount < 0 {
			amount = 0
		}
		h.Progress = amount
	case "goal":
		goal, err := strconv.Atoi(value)
		if err != nil || goal <= 0 {
			return nil, apperrors.InvalidArgumentf("goal must be a positive number, got '%s'", value)
		}
		h.Goal = goal
	case "points_per_delivery", "ppd":
		ppd, err := strconv.Atoi(value)
		if err != nil || ppd <= 0 {
			return nil, apperrors.InvalidArgumentf("points per delivery must be a positive number, got '%s'", value)
		}
		h.PointsPerDelivery = ppd
	case "notes":
		h.Notes = value
	case "desert_location", "location":
		h.DesertLocation = value
	case "deep_desert_cp", "cp":
		cp, err := strconv.Atoi(value)
		if err != nil || cp < 0 {
			return nil, apperrors.InvalidArgumentf("control points must be a non-negative number, got '%s'", value)
		}
		h.DeepDesertCP = cp
	case "alliance":
		alliance, cleared, ok := house.ParseAlliance(value)
		if !ok {
			return nil, apperrors.InvalidArgumentf("unknown alliance '%s'", value)
		}
		if cleared {
			h.Alliance = ""
		} else {
			h.Alliance = alliance
		}
	case "completed_by":
		alliance, cleared, ok := house.ParseAlliance(value)
		if !ok {
			return nil, apperrors.InvalidArgumentf("unknown alliance '%s'", value)
		}
		if cleared {
			h.CompletedBy = ""
		} else {
			h.CompletedBy = alliance
		}
	case "locked":
		locked, err := strconv.ParseBool(value)
		if err != nil {
			return nil, apperrors.InvalidArgumentf("locked must be true or false, got '%s'", value)
		}
		h.Locked = locked
	default:
		return nil, apperrors.InvalidArgumentf("unknown field '%s'", input.Field)
	}

	s.stamp(h, input.Actor)

	if err := s.repository.Save(ctx, h); err != nil {
		return nil, apperrors.Wrapf(err, "failed to update house '%s'", h.Name).
			WithMeta("field", input.Field)
	}

	return h, nil
}

func (s *service) WeeklyReset(ctx context.Context, actor string) (*houses.ResetEntry, error) {
	now := s.timeProvider.Now()
	entry := &houses.ResetEntry{
		ID:      s.uuidGenerator.New(),
		ResetAt: now,
		ResetBy: actor,
	}

	entry, err := s.repository.ResetAll(ctx, func(h *house.House) *house.House {
		fresh := house.NewLocked(h.Name)
		fresh.Notes = h.Notes
		fresh.LastUpdated = now
		if actor != "" {
			fresh.UpdatedBy = actor
		}
		return fresh
	}, entry)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to reset houses")
	}

	return entry, nil
}

func (s *service) ResetLog(ctx context.Context, limit int) ([]*houses.ResetEntry, error) {
	entries, err := s.repository.ListResetLog(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read reset log")
	}
	return entries, nil
}

func (s *service) FullReset(ctx context.Context) (*ReconcileResult, error) {
	if err := s.repository.DeleteAll(ctx); err != nil {
		return nil, apperrors.Wrap(err, "failed to delete houses")
	}
	return s.ReconcileRoster(ctx)
}

func (s *service) RepairAlliances(ctx context.Context) (int, error) {
	list, err := s.repository.List(ctx)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to list houses")
	}

	repaired := 0
	for _, h := range list {
		dirty := false
		if h.Alliance != "" && !h.Alliance.Valid() {
			h.Alliance = ""
			dirty = true
		}
		if h.CompletedBy != "" && !h.CompletedBy.Valid() {
			h.CompletedBy = ""
			dirty = true
		}
		if !dirty {
			continue
		}

		s.stamp(h, "System")
		if err := s.repository.Save(ctx, h); err != nil {
			return repaired, apperrors.Wrapf(err, "failed to repair house '%s'", h.Name)
		}
		repaired++
	}

	return repaired, nil
}

func (s *service) Statistics(ctx context.Context) (*Stats, error) {
	list, err := s.repository.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list houses")
	}

	stats := &Stats{Total: len(list)}
	for _, h := range list {
		switch {
		case h.Locked:
			stats.Locked++
		case h.Claimed():
		default:
			stats.Open++
		}

		switch h.Alliance {
		case house.AllianceAtreides:
			stats.ClaimedAtreides++
		case house.AllianceHarkonnen:
			stats.ClaimedHarkonnen++
		case "":
		default:
			stats.CorruptAlliances++
		}

		if h.Goal > 0 && h.Progress >= h.Goal {
			stats.Completed++
		}
		stats.TotalProgress += h.Progress
	}

	return stats, nil
}

func (s *service) ExportCSV(ctx context.Context) ([]byte, error) {
	list, err := s.repository.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list houses")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"name", "quest", "progress", "goal", "points_per_delivery", "locked",
		"alliance", "completed_by", "desert_location", "deep_desert_cp",
		"notes", "last_updated", "updated_by",
	}
	if err := w.Write(header); err != nil {
		return nil, apperrors.Wrap(err, "failed to write CSV header")
	}

	for _, h := range list {
		row := []string{
			h.Name,
			h.Quest,
			strconv.Itoa(h.Progress),
			strconv.Itoa(h.Goal),
			strconv.Itoa(h.PointsPerDelivery),
			strconv.FormatBool(h.Locked),
			string(h.Alliance),
			string(h.CompletedBy),
			h.DesertLocation,
			strconv.Itoa(h.DeepDesertCP),
			h.Notes,
			h.LastUpdated.UTC().Format("2006-01-02 15:04:05"),
			h.UpdatedBy,
		}
		if err := w.Write(row); err != nil {
			return nil, apperrors.Wrapf(err, "failed to write CSV row for '%s'", h.Name)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.Wrap(err, "failed to flush CSV")
	}

	return buf.Bytes(), nil
}

func (s *service) stamp(h *house.House, actor string) {
	h.LastUpdated = s.timeProvider.Now()
	if strings.TrimSpace(actor) != "" {
		h.UpdatedBy = actor
	}
}
