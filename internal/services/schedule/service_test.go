package schedule

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
	"github.com/coldbreakfast/landsraad-bot/internal/repositories/botconfig"
	mockschedule "github.com/coldbreakfast/landsraad-bot/internal/services/schedule/mocks"
)

// memoryConfigRepo is an in-memory botconfig repository for service tests.
type memoryConfigRepo struct {
	channels map[string]*botconfig.ChannelConfig
	states   map[string]*botconfig.ScheduleState
}

func newMemoryConfigRepo() *memoryConfigRepo {
	return &memoryConfigRepo{
		channels: make(map[string]*botconfig.ChannelConfig),
		states:   make(map[string]*botconfig.ScheduleState),
	}
}

func (m *memoryConfigRepo) key(guildID string, rt botconfig.ReportType) string {
	return fmt.Sprintf("%s:%s", guildID, rt)
}

func (m *memoryConfigRepo) SetChannel(_ context.Context, guildID string, rt botconfig.ReportType, channelID string) error {
	m.channels[m.key(guildID, rt)] = &botconfig.ChannelConfig{
		GuildID: guildID, ReportType: rt, ChannelID: channelID,
	}
	return nil
}

func (m *memoryConfigRepo) GetChannel(_ context.Context, guildID string, rt botconfig.ReportType) (*botconfig.ChannelConfig, error) {
	cfg, ok := m.channels[m.key(guildID, rt)]
	if !ok {
		return nil, apperrors.NotFoundf("no channel configured for %s reports", rt)
	}
	cp := *cfg
	return &cp, nil
}

func (m *memoryConfigRepo) ListChannels(_ context.Context, guildID string) ([]*botconfig.ChannelConfig, error) {
	var out []*botconfig.ChannelConfig
	for _, cfg := range m.channels {
		if cfg.GuildID == guildID {
			cp := *cfg
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memoryConfigRepo) SetLastMessage(_ context.Context, guildID string, rt botconfig.ReportType, messageID string) error {
	cfg, ok := m.channels[m.key(guildID, rt)]
	if !ok {
		return apperrors.NotFoundf("no channel configured for %s reports", rt)
	}
	cfg.LastMessageID = messageID
	return nil
}

func (m *memoryConfigRepo) GetScheduleState(_ context.Context, guildID string) (*botconfig.ScheduleState, error) {
	state, ok := m.states[guildID]
	if !ok {
		return &botconfig.ScheduleState{}, nil
	}
	cp := *state
	return &cp, nil
}

func (m *memoryConfigRepo) SaveScheduleState(_ context.Context, guildID string, state *botconfig.ScheduleState) error {
	cp := *state
	m.states[guildID] = &cp
	return nil
}

type fixedClock struct{ now time.Time }

func (f *fixedClock) Now() time.Time { return f.now }

type ServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	messenger *mockschedule.MockMessenger
	repo      *memoryConfigRepo
	clock     *fixedClock
	loc       *time.Location
	svc       Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.messenger = mockschedule.NewMockMessenger(s.mockCtrl)
	s.repo = newMemoryConfigRepo()

	loc, err := time.LoadLocation("America/Los_Angeles")
	s.Require().NoError(err)
	s.loc = loc

	// Tuesday 03:05 reference time
	s.clock = &fixedClock{now: time.Date(2025, 7, 8, 3, 5, 0, 0, loc)}
	s.svc = NewService(&ServiceConfig{
		ConfigRepository: s.repo,
		Messenger:        s.messenger,
		Location:         loc,
		TimeProvider:     s.clock,
	})
}

func (s *ServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestUpcomingEvents() {
	events := s.svc.UpcomingEvents()
	s.Equal(time.Monday, events.StormStart.Weekday())
	s.Equal(17, events.StormStart.Hour())
	s.Equal(events.StormEnd, events.NewTermStart)
	s.Equal(24*time.Hour, events.VotingEnd.Sub(events.VotingStart))
}

func (s *ServiceTestSuite) TestPostScheduleResolvesFallbackChannel() {
	s.messenger.EXPECT().
		FindChannelByName("guild-1", fallbackChannelNames).
		Return("chan-7", nil)
	s.messenger.EXPECT().
		SendEmbed("chan-7", gomock.Any()).
		Return("msg-1", nil)

	err := s.svc.PostSchedule(s.ctx, "guild-1", "")
	s.NoError(err)

	cfg, err := s.repo.GetChannel(s.ctx, "guild-1", botconfig.ReportSchedule)
	s.Require().NoError(err)
	s.Equal("chan-7", cfg.ChannelID, "fallback discovery persists the binding")
	s.Equal("msg-1", cfg.LastMessageID)

	state, err := s.repo.GetScheduleState(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.Equal(s.clock.now, state.LastPostedAt)
}

func (s *ServiceTestSuite) TestPostScheduleSupersedesOldMessage() {
	s.Require().NoError(s.repo.SetChannel(s.ctx, "guild-1", botconfig.ReportSchedule, "chan-7"))
	s.Require().NoError(s.repo.SetLastMessage(s.ctx, "guild-1", botconfig.ReportSchedule, "msg-old"))

	// The old message being gone already is tolerated
	s.messenger.EXPECT().
		DeleteMessage("chan-7", "msg-old").
		Return(errors.New("unknown message"))
	s.messenger.EXPECT().
		SendEmbed("chan-7", gomock.Any()).
		Return("msg-new", nil)

	err := s.svc.PostSchedule(s.ctx, "guild-1", "")
	s.NoError(err)

	cfg, err := s.repo.GetChannel(s.ctx, "guild-1", botconfig.ReportSchedule)
	s.Require().NoError(err)
	s.Equal("msg-new", cfg.LastMessageID)
}

func (s *ServiceTestSuite) TestPostScheduleExplicitChannelRebinds() {
	s.Require().NoError(s.repo.SetChannel(s.ctx, "guild-1", botconfig.ReportSchedule, "chan-7"))

	s.messenger.EXPECT().
		SendEmbed("chan-9", gomock.Any()).
		Return("msg-1", nil)

	err := s.svc.PostSchedule(s.ctx, "guild-1", "chan-9")
	s.NoError(err)

	cfg, err := s.repo.GetChannel(s.ctx, "guild-1", botconfig.ReportSchedule)
	s.Require().NoError(err)
	s.Equal("chan-9", cfg.ChannelID)
}

func (s *ServiceTestSuite) TestPostScheduleSendFailure() {
	s.Require().NoError(s.repo.SetChannel(s.ctx, "guild-1", botconfig.ReportSchedule, "chan-7"))

	s.messenger.EXPECT().
		SendEmbed("chan-7", gomock.Any()).
		Return("", errors.New("missing permissions"))

	err := s.svc.PostSchedule(s.ctx, "guild-1", "")
	s.Error(err)
	s.True(apperrors.IsUnavailable(err))
}

func (s *ServiceTestSuite) TestRunDailyCheckSkipsNonTuesday() {
	// Monday
	s.clock.now = time.Date(2025, 7, 7, 3, 5, 0, 0, s.loc)

	err := s.svc.RunDailyCheck(s.ctx, "guild-1")
	s.NoError(err, "no messenger calls expected")
}

func (s *ServiceTestSuite) TestRunDailyCheckPostsOncePerTuesday() {
	s.Require().NoError(s.repo.SetChannel(s.ctx, "guild-1", botconfig.ReportSchedule, "chan-7"))

	s.messenger.EXPECT().
		SendEmbed("chan-7", gomock.Any()).
		Return("msg-1", nil)

	err := s.svc.RunDailyCheck(s.ctx, "guild-1")
	s.NoError(err)

	// A second check the same day does nothing
	s.clock.now = s.clock.now.Add(6 * time.Hour)
	err = s.svc.RunDailyCheck(s.ctx, "guild-1")
	s.NoError(err)

	// Next Tuesday posts again
	s.clock.now = s.clock.now.AddDate(0, 0, 7)
	s.messenger.EXPECT().
		DeleteMessage("chan-7", "msg-1").
		Return(nil)
	s.messenger.EXPECT().
		SendEmbed("chan-7", gomock.Any()).
		Return("msg-2", nil)

	err = s.svc.RunDailyCheck(s.ctx, "guild-1")
	s.NoError(err)
}

func (s *ServiceTestSuite) TestClearMemory() {
	s.Require().NoError(s.repo.SetChannel(s.ctx, "guild-1", botconfig.ReportSchedule, "chan-7"))
	s.Require().NoError(s.repo.SetLastMessage(s.ctx, "guild-1", botconfig.ReportSchedule, "msg-1"))

	err := s.svc.ClearMemory(s.ctx, "guild-1")
	s.NoError(err)

	cfg, err := s.repo.GetChannel(s.ctx, "guild-1", botconfig.ReportSchedule)
	s.Require().NoError(err)
	s.Equal("chan-7", cfg.ChannelID, "channel binding survives")
	s.Empty(cfg.LastMessageID)

	// Nothing configured is a no-op
	err = s.svc.ClearMemory(s.ctx, "guild-2")
	s.NoError(err)
}
