package desert

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/errgroup"

	"github.com/coldbreakfast/landsraad-bot/internal/clock"
	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
	"github.com/coldbreakfast/landsraad-bot/internal/repositories/botconfig"
	desertservice "github.com/coldbreakfast/landsraad-bot/internal/services/desert"
	scheduleservice "github.com/coldbreakfast/landsraad-bot/internal/services/schedule"
	"github.com/coldbreakfast/landsraad-bot/internal/views"
)

// ReportsHandler posts the four location reports into their configured
// channels and manages the channel bindings
type ReportsHandler struct {
	desertService    desertservice.Service
	configRepository botconfig.Repository
	messenger        scheduleservice.Messenger
	timeProvider     clock.TimeProvider
}

// ReportsHandlerConfig holds dependencies for the reports handler
type ReportsHandlerConfig struct {
	DesertService    desertservice.Service     // Required
	ConfigRepository botconfig.Repository      // Required
	Messenger        scheduleservice.Messenger // Required
	TimeProvider     clock.TimeProvider        // Optional, will use system clock if nil
}

// NewReportsHandler creates a new reports handler
func NewReportsHandler(cfg *ReportsHandlerConfig) *ReportsHandler {
	if cfg.DesertService == nil {
		panic("desert service is required")
	}
	if cfg.ConfigRepository == nil {
		panic("config repository is required")
	}
	if cfg.Messenger == nil {
		panic("messenger is required")
	}

	h := &ReportsHandler{
		desertService:    cfg.DesertService,
		configRepository: cfg.ConfigRepository,
		messenger:        cfg.Messenger,
		timeProvider:     cfg.TimeProvider,
	}
	if h.timeProvider == nil {
		h.timeProvider = clock.NewSystemClock()
	}

	return h
}

// SetChannel handles the /set_*_channel commands, binding one report type
// to a channel.
func (h *ReportsHandler) SetChannel(s *discordgo.Session, i *discordgo.InteractionCreate, reportType botconfig.ReportType) error {
	options := commandOptions(i)
	channelID := options["channel"]
	if channelID == "" {
		return apperrors.InvalidArgument("channel is required")
	}

	if err := h.configRepository.SetChannel(context.Background(), i.GuildID, reportType, channelID); err != nil {
		return err
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("✅ %s report channel set to <#%s>.", reportType, channelID),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// RefreshCommand handles /refresh_location_reports.
func (h *ReportsHandler) RefreshCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}); err != nil {
		return err
	}

	posted, err := h.RefreshReports(context.Background(), i.GuildID)
	if err != nil {
		return err
	}

	content := fmt.Sprintf("✅ Posted %d location reports.", posted)
	if posted == 0 {
		content = "No report channels are configured. Use the /set_*_channel commands first."
	}
	_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	return err
}

// RefreshReports rebuilds every configured location report, superseding the
// previous post per channel. Reports post concurrently and the first error
// wins. Returns how many reports were posted.
func (h *ReportsHandler) RefreshReports(ctx context.Context, guildID string) (int, error) {
	now := h.timeProvider.Now()

	var mu sync.Mutex
	posted := 0

	group, ctx := errgroup.WithContext(ctx)
	for _, reportType := range botconfig.ReportTypes() {
		reportType := reportType
		group.Go(func() error {
			config, err := h.configRepository.GetChannel(ctx, guildID, reportType)
			if apperrors.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}

			embed, err := h.buildReport(ctx, reportType, now)
			if err != nil {
				return err
			}

			if config.LastMessageID != "" {
				if err := h.messenger.DeleteMessage(config.ChannelID, config.LastMessageID); err != nil {
					log.Printf("Failed to delete superseded %s report: %v", reportType, err)
				}
			}

			messageID, err := h.messenger.SendEmbed(config.ChannelID, embed)
			if err != nil {
				return apperrors.Wrapf(err, "failed to post %s report", reportType)
			}
			if err := h.configRepository.SetLastMessage(ctx, guildID, reportType, messageID); err != nil {
				return err
			}

			mu.Lock()
			posted++
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return posted, err
	}
	return posted, nil
}

func (h *ReportsHandler) buildReport(ctx context.Context, reportType botconfig.ReportType, now time.Time) (*discordgo.MessageEmbed, error) {
	switch reportType {
	case botconfig.ReportGuildBases:
		bases, err := h.desertService.ListGuildBases(ctx)
		if err != nil {
			return nil, err
		}
		return views.GuildBasesReport(bases, now), nil
	case botconfig.ReportSpiceLocations:
		locs, err := h.desertService.ListSpiceLocations(ctx)
		if err != nil {
			return nil, err
		}
		return views.SpiceLocationsReport(locs, now), nil
	case botconfig.ReportLandsraadPoints:
		points, err := h.desertService.ListLandsraadPoints(ctx)
		if err != nil {
			return nil, err
		}
		return views.LandsraadPointsReport(points, now), nil
	case botconfig.ReportResourceLocations:
		locs, err := h.desertService.ListResourceLocations(ctx)
		if err != nil {
			return nil, err
		}
		return views.ResourceLocationsReport(locs, now), nil
	default:
		return nil, apperrors.InvalidArgumentf("unknown report type '%s'", reportType)
	}
}
