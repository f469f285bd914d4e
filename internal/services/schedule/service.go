package schedule

//go:generate mockgen -destination=mocks/mock_service.go -package=mockschedule -source=service.go

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/coldbreakfast/landsraad-bot/internal/clock"
	"github.com/coldbreakfast/landsraad-bot/internal/domain/schedule"
	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
	"github.com/coldbreakfast/landsraad-bot/internal/repositories/botconfig"
	"github.com/coldbreakfast/landsraad-bot/internal/views"
)

// fallbackChannelNames are tried in order when no schedule channel was
// configured for the guild.
var fallbackChannelNames = []string{
	"weeklyschedule", "weekly-schedule", "schedule", "bot-schedule",
}

// Messenger is the narrow Discord surface the service posts through.
type Messenger interface {
	// SendEmbed posts an embed and returns the new message ID.
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) (string, error)

	// DeleteMessage removes a message. Deleting an already-gone message
	// returns an error the caller may ignore.
	DeleteMessage(channelID, messageID string) error

	// FindChannelByName resolves the first guild text channel whose name
	// matches any of the given names, in order.
	FindChannelByName(guildID string, names []string) (string, error)
}

// Service owns the weekly event projection and its posting cadence.
type Service interface {
	// UpcomingEvents computes the next occurrence of every weekly event
	// in the reference timezone.
	UpcomingEvents() schedule.Events

	// PostSchedule renders the projection into the given channel,
	// replacing any message posted earlier. An empty channel ID resolves
	// the configured or conventional schedule channel.
	PostSchedule(ctx context.Context, guildID, channelID string) error

	// ClearMemory forgets the stored schedule message and channel so the
	// next post starts fresh.
	ClearMemory(ctx context.Context, guildID string) error

	// RunDailyCheck posts the schedule when the reference-timezone day is
	// Tuesday and nothing was posted yet that day. Any other day is a
	// no-op.
	RunDailyCheck(ctx context.Context, guildID string) error
}

// service implements the Service interface
type service struct {
	configRepository botconfig.Repository
	messenger        Messenger
	timeProvider     clock.TimeProvider
	location         *time.Location
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	ConfigRepository botconfig.Repository // Required
	Messenger        Messenger            // Required
	Location         *time.Location       // Required, the reference timezone
	TimeProvider     clock.TimeProvider   // Optional, will use system clock if nil
}

// NewService creates a new schedule service
func NewService(cfg *ServiceConfig) Service {
	if cfg.ConfigRepository == nil {
		panic("config repository is required")
	}
	if cfg.Messenger == nil {
		panic("messenger is required")
	}
	if cfg.Location == nil {
		panic("location is required")
	}

	svc := &service{
		configRepository: cfg.ConfigRepository,
		messenger:        cfg.Messenger,
		location:         cfg.Location,
	}

	if cfg.TimeProvider != nil {
		svc.timeProvider = cfg.TimeProvider
	} else {
		svc.timeProvider = clock.NewSystemClock()
	}

	return svc
}

func (s *service) UpcomingEvents() schedule.Events {
	return schedule.Compute(s.timeProvider.Now().In(s.location))
}

func (s *service) PostSchedule(ctx context.Context, guildID, channelID string) error {
	if guildID == "" {
		return apperrors.InvalidArgument("guild is required")
	}

	stored, err := s.configRepository.GetChannel(ctx, guildID, botconfig.ReportSchedule)
	if err != nil && !apperrors.IsNotFound(err) {
		return err
	}

	if channelID == "" {
		channelID, err = s.resolveChannel(ctx, guildID, stored)
		if err != nil {
			return err
		}
	}

	// Supersede the previous post. The old message may have been deleted
	// by hand, which is fine.
	if stored != nil && stored.LastMessageID != "" {
		if err := s.messenger.DeleteMessage(stored.ChannelID, stored.LastMessageID); err != nil {
			log.Printf("schedule: could not delete superseded message %s: %v", stored.LastMessageID, err)
		}
	}

	embed := views.ScheduleEmbed(s.UpcomingEvents())
	messageID, err := s.messenger.SendEmbed(channelID, embed)
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to post schedule")
	}

	if stored == nil || stored.ChannelID != channelID {
		if err := s.configRepository.SetChannel(ctx, guildID, botconfig.ReportSchedule, channelID); err != nil {
			return err
		}
	}
	if err := s.configRepository.SetLastMessage(ctx, guildID, botconfig.ReportSchedule, messageID); err != nil {
		return err
	}

	return s.configRepository.SaveScheduleState(ctx, guildID, &botconfig.ScheduleState{
		LastPostedAt: s.timeProvider.Now(),
	})
}

// resolveChannel prefers the stored binding and falls back to conventional
// channel names.
func (s *service) resolveChannel(ctx context.Context, guildID string, stored *botconfig.ChannelConfig) (string, error) {
	if stored != nil && stored.ChannelID != "" {
		return stored.ChannelID, nil
	}

	channelID, err := s.messenger.FindChannelByName(guildID, fallbackChannelNames)
	if err != nil {
		return "", apperrors.Wrap(err, "no schedule channel configured and no conventional channel found")
	}
	return channelID, nil
}

func (s *service) ClearMemory(ctx context.Context, guildID string) error {
	if guildID == "" {
		return apperrors.InvalidArgument("guild is required")
	}

	stored, err := s.configRepository.GetChannel(ctx, guildID, botconfig.ReportSchedule)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}

	// Rebind the channel with no message ID attached.
	if err := s.configRepository.SetChannel(ctx, guildID, botconfig.ReportSchedule, stored.ChannelID); err != nil {
		return err
	}
	return s.configRepository.SaveScheduleState(ctx, guildID, &botconfig.ScheduleState{})
}

func (s *service) RunDailyCheck(ctx context.Context, guildID string) error {
	now := s.timeProvider.Now().In(s.location)
	if now.Weekday() != time.Tuesday {
		return nil
	}

	state, err := s.configRepository.GetScheduleState(ctx, guildID)
	if err != nil {
		return err
	}
	if sameDay(state.LastPostedAt.In(s.location), now) {
		return nil
	}

	log.Printf("schedule: Tuesday %s, posting weekly schedule", now.Format("2006-01-02"))
	return s.PostSchedule(ctx, guildID, "")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
