package houses

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/coldbreakfast/landsraad-bot/internal/domain/house"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{Client: s.mockClient})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) marshal(h *house.House) string {
	data, err := json.Marshal(h)
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestEnsureExists() {
	ctx := context.Background()
	h := house.NewLocked("Ecaz")
	data := s.marshal(h)

	// Happy path
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSetNX("house:ecaz", []byte(data), 0).SetVal(true)
	s.mock.ExpectSAdd("houses:index", "ecaz").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	err := s.repo.EnsureExists(ctx, h)
	s.NoError(err)

	// Already stored, SetNX is a no-op and the record is untouched
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSetNX("house:ecaz", []byte(data), 0).SetVal(false)
	s.mock.ExpectSAdd("houses:index", "ecaz").SetVal(0)
	s.mock.ExpectTxPipelineExec()

	err = s.repo.EnsureExists(ctx, h)
	s.NoError(err)

	// Input validation
	err = s.repo.EnsureExists(ctx, nil)
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	h := house.NewLocked("Richese")
	data := s.marshal(h)

	// Happy path, case-insensitive lookup
	s.mock.ExpectGet("house:richese").SetVal(data)

	got, err := s.repo.Get(ctx, "RICHESE")
	s.NoError(err)
	s.Equal("Richese", got.Name)
	s.True(got.Locked)

	// Missing record
	s.mock.ExpectGet("house:richese").RedisNil()

	_, err = s.repo.Get(ctx, "Richese")
	s.Error(err)

	// Dependency error
	s.mock.ExpectGet("house:richese").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(ctx, "Richese")
	s.Error(err)

	// Input validation
	_, err = s.repo.Get(ctx, "")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestList() {
	ctx := context.Background()
	ecaz := house.NewLocked("Ecaz")
	sor := house.NewLocked("Sor")

	// Index order is unsorted, result comes back sorted by name
	s.mock.ExpectSMembers("houses:index").SetVal([]string{"sor", "ecaz"})
	s.mock.ExpectMGet("house:ecaz", "house:sor").SetVal([]interface{}{
		s.marshal(ecaz), s.marshal(sor),
	})

	got, err := s.repo.List(ctx)
	s.NoError(err)
	s.Require().Len(got, 2)
	s.Equal("Ecaz", got[0].Name)
	s.Equal("Sor", got[1].Name)

	// Stale index member with no record is skipped
	s.mock.ExpectSMembers("houses:index").SetVal([]string{"ecaz", "ghost"})
	s.mock.ExpectMGet("house:ecaz", "house:ghost").SetVal([]interface{}{
		s.marshal(ecaz), nil,
	})

	got, err = s.repo.List(ctx)
	s.NoError(err)
	s.Len(got, 1)

	// Empty index
	s.mock.ExpectSMembers("houses:index").SetVal([]string{})

	got, err = s.repo.List(ctx)
	s.NoError(err)
	s.Empty(got)
}

func (s *RedisRepoTestSuite) TestSave() {
	ctx := context.Background()
	h := house.NewLocked("Hagal")
	h.Locked = false
	h.Quest = "Deliver plasteel"
	h.PointsPerDelivery = 23
	data := s.marshal(h)

	// Happy path
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("house:hagal", []byte(data), 0).SetVal("OK")
	s.mock.ExpectSAdd("houses:index", "hagal").SetVal(0)
	s.mock.ExpectTxPipelineExec()

	err := s.repo.Save(ctx, h)
	s.NoError(err)

	// Dependency error
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("house:hagal", []byte(data), 0).SetErr(errors.New("redis error"))

	err = s.repo.Save(ctx, h)
	s.Error(err)

	// Input validation
	err = s.repo.Save(ctx, &house.House{})
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestDeleteAllExcept() {
	ctx := context.Background()

	s.mock.ExpectSMembers("houses:index").SetVal([]string{"ecaz", "ghost", "sor"})
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("house:ghost").SetVal(1)
	s.mock.ExpectSRem("houses:index", "ghost").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	removed, err := s.repo.DeleteAllExcept(ctx, []string{"Ecaz", "Sor"})
	s.NoError(err)
	s.Equal(1, removed)

	// Nothing extraneous, no writes
	s.mock.ExpectSMembers("houses:index").SetVal([]string{"ecaz", "sor"})

	removed, err = s.repo.DeleteAllExcept(ctx, []string{"Ecaz", "Sor"})
	s.NoError(err)
	s.Equal(0, removed)
}

func (s *RedisRepoTestSuite) TestResetAll() {
	ctx := context.Background()
	now := time.Date(2025, 7, 8, 3, 0, 0, 0, time.UTC)

	claimed := house.NewLocked("Ecaz")
	claimed.Locked = false
	claimed.Alliance = house.AllianceAtreides
	claimed.Progress = 42000
	open := house.NewLocked("Sor")
	open.Locked = false

	resetEcaz := house.NewLocked("Ecaz")
	resetEcaz.LastUpdated = now
	resetSor := house.NewLocked("Sor")
	resetSor.LastUpdated = now

	entry := &ResetEntry{ID: "reset-1", ResetAt: now, ResetBy: "admin"}
	loggedEntry := &ResetEntry{
		ID: "reset-1", ResetAt: now, ResetBy: "admin",
		HousesReset: 2, HousesCompleted: 1,
	}
	logData, err := json.Marshal(loggedEntry)
	s.Require().NoError(err)

	s.mock.ExpectSMembers("houses:index").SetVal([]string{"sor", "ecaz"})
	s.mock.ExpectWatch("house:ecaz", "house:sor")
	s.mock.ExpectMGet("house:ecaz", "house:sor").SetVal([]interface{}{
		s.marshal(claimed), s.marshal(open),
	})
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("house:ecaz", []byte(s.marshal(resetEcaz)), 0).SetVal("OK")
	s.mock.ExpectSet("house:sor", []byte(s.marshal(resetSor)), 0).SetVal("OK")
	s.mock.ExpectRPush("houses:resetlog", logData).SetVal(1)
	s.mock.ExpectTxPipelineExec()

	got, err := s.repo.ResetAll(ctx, func(h *house.House) *house.House {
		fresh := house.NewLocked(h.Name)
		fresh.LastUpdated = now
		return fresh
	}, entry)
	s.NoError(err)
	s.Equal(2, got.HousesReset)
	s.Equal(1, got.HousesCompleted)

	// Input validation
	_, err = s.repo.ResetAll(ctx, nil, entry)
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestListResetLog() {
	ctx := context.Background()

	older := ResetEntry{ID: "reset-1", ResetBy: "admin", HousesReset: 25}
	newer := ResetEntry{ID: "reset-2", ResetBy: "admin", HousesReset: 25, HousesCompleted: 4}
	olderData, err := json.Marshal(older)
	s.Require().NoError(err)
	newerData, err := json.Marshal(newer)
	s.Require().NoError(err)

	// Stored oldest first, returned newest first
	s.mock.ExpectLRange("houses:resetlog", -5, -1).SetVal([]string{
		string(olderData), string(newerData),
	})

	entries, err := s.repo.ListResetLog(ctx, 5)
	s.NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("reset-2", entries[0].ID)
	s.Equal("reset-1", entries[1].ID)

	// Non-positive limit falls back to 10
	s.mock.ExpectLRange("houses:resetlog", -10, -1).SetVal([]string{})

	entries, err = s.repo.ListResetLog(ctx, 0)
	s.NoError(err)
	s.Empty(entries)
}

func (s *RedisRepoTestSuite) TestDeleteAll() {
	ctx := context.Background()

	s.mock.ExpectSMembers("houses:index").SetVal([]string{"ecaz", "sor"})
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("house:ecaz").SetVal(1)
	s.mock.ExpectDel("house:sor").SetVal(1)
	s.mock.ExpectDel("houses:index").SetVal(1)
	s.mock.ExpectDel("houses:resetlog").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	err := s.repo.DeleteAll(ctx)
	s.NoError(err)
}
