package botconfig

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockmocks "github.com/coldbreakfast/landsraad-bot/internal/clock/mocks"
	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	mockCtrl     *gomock.Controller
	timeProvider *clockmocks.MockTimeProvider
	repo         Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = clockmocks.NewMockTimeProvider(s.mockCtrl)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestSetChannel() {
	ctx := context.Background()
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	s.timeProvider.EXPECT().Now().Return(now)

	expected, err := json.Marshal(&ChannelConfig{
		GuildID:    "guild-1",
		ReportType: ReportSpiceLocations,
		ChannelID:  "chan-1",
		UpdatedAt:  now,
	})
	s.Require().NoError(err)

	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("channelconfig:guild-1:spice", expected, 0).SetVal("OK")
	s.mock.ExpectSAdd("guild:guild-1:channelconfigs", "spice").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	err = s.repo.SetChannel(ctx, "guild-1", ReportSpiceLocations, "chan-1")
	s.NoError(err)

	// Input validation
	err = s.repo.SetChannel(ctx, "", ReportSpiceLocations, "chan-1")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestGetChannel() {
	ctx := context.Background()
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	data, err := json.Marshal(&ChannelConfig{
		GuildID:    "guild-1",
		ReportType: ReportGuildBases,
		ChannelID:  "chan-2",
		UpdatedAt:  now,
	})
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectGet("channelconfig:guild-1:bases").SetVal(string(data))

	cfg, err := s.repo.GetChannel(ctx, "guild-1", ReportGuildBases)
	s.NoError(err)
	s.Equal("chan-2", cfg.ChannelID)

	// Never configured
	s.mock.ExpectGet("channelconfig:guild-1:bases").RedisNil()

	_, err = s.repo.GetChannel(ctx, "guild-1", ReportGuildBases)
	s.Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestListChannels() {
	ctx := context.Background()
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	spiceData, err := json.Marshal(&ChannelConfig{
		GuildID: "guild-1", ReportType: ReportSpiceLocations,
		ChannelID: "chan-1", UpdatedAt: now,
	})
	s.Require().NoError(err)

	s.mock.ExpectSMembers("guild:guild-1:channelconfigs").SetVal([]string{"spice", "bases"})
	s.mock.ExpectGet("channelconfig:guild-1:spice").SetVal(string(spiceData))
	// Stale index entry is skipped
	s.mock.ExpectGet("channelconfig:guild-1:bases").RedisNil()

	configs, err := s.repo.ListChannels(ctx, "guild-1")
	s.NoError(err)
	s.Require().Len(configs, 1)
	s.Equal(ReportSpiceLocations, configs[0].ReportType)
}

func (s *RedisRepoTestSuite) TestSetLastMessage() {
	ctx := context.Background()
	then := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	now := then.Add(time.Hour)
	s.timeProvider.EXPECT().Now().Return(now)

	stored, err := json.Marshal(&ChannelConfig{
		GuildID: "guild-1", ReportType: ReportResourceLocations,
		ChannelID: "chan-3", UpdatedAt: then,
	})
	s.Require().NoError(err)

	updated, err := json.Marshal(&ChannelConfig{
		GuildID: "guild-1", ReportType: ReportResourceLocations,
		ChannelID: "chan-3", LastMessageID: "msg-9", UpdatedAt: now,
	})
	s.Require().NoError(err)

	s.mock.ExpectGet("channelconfig:guild-1:resources").SetVal(string(stored))
	s.mock.ExpectSet("channelconfig:guild-1:resources", updated, 0).SetVal("OK")

	err = s.repo.SetLastMessage(ctx, "guild-1", ReportResourceLocations, "msg-9")
	s.NoError(err)
}

func (s *RedisRepoTestSuite) TestScheduleState() {
	ctx := context.Background()
	now := time.Date(2025, 7, 8, 3, 0, 0, 0, time.UTC)

	// Absent state comes back zero-valued, not as an error
	s.mock.ExpectGet("schedulestate:guild-1").RedisNil()

	state, err := s.repo.GetScheduleState(ctx, "guild-1")
	s.NoError(err)
	s.True(state.LastPostedAt.IsZero())

	// Round trip
	data, err := json.Marshal(&ScheduleState{LastPostedAt: now})
	s.Require().NoError(err)

	s.mock.ExpectSet("schedulestate:guild-1", data, 0).SetVal("OK")

	err = s.repo.SaveScheduleState(ctx, "guild-1", &ScheduleState{LastPostedAt: now})
	s.NoError(err)

	s.mock.ExpectGet("schedulestate:guild-1").SetVal(string(data))

	state, err = s.repo.GetScheduleState(ctx, "guild-1")
	s.NoError(err)
	s.Equal(now, state.LastPostedAt.UTC())
}
