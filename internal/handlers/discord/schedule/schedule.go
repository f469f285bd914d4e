package schedule

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
	"github.com/coldbreakfast/landsraad-bot/internal/repositories/botconfig"
	scheduleservice "github.com/coldbreakfast/landsraad-bot/internal/services/schedule"
	"github.com/coldbreakfast/landsraad-bot/internal/views"
)

// Handler drives the weekly schedule commands
type Handler struct {
	scheduleService  scheduleservice.Service
	configRepository botconfig.Repository
}

// HandlerConfig holds dependencies for the schedule handler
type HandlerConfig struct {
	ScheduleService  scheduleservice.Service // Required
	ConfigRepository botconfig.Repository    // Required
}

// NewHandler creates a new schedule handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.ScheduleService == nil {
		panic("schedule service is required")
	}
	if cfg.ConfigRepository == nil {
		panic("config repository is required")
	}
	return &Handler{
		scheduleService:  cfg.ScheduleService,
		configRepository: cfg.ConfigRepository,
	}
}

// ShowSchedule handles /weeklyschedule with an ephemeral event listing.
func (h *Handler) ShowSchedule(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	events := h.scheduleService.UpcomingEvents()

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{views.ScheduleEmbed(events)},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// PostSchedule handles /post_schedule, posting publicly to the configured
// or explicitly given channel.
func (h *Handler) PostSchedule(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	channelID := commandOptions(i)["channel"]

	if err := h.scheduleService.PostSchedule(context.Background(), i.GuildID, channelID); err != nil {
		return err
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "✅ Weekly schedule posted.",
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// SetChannel handles /set_schedule_channel. The clear flag forgets the
// remembered schedule post instead of rebinding the channel.
func (h *Handler) SetChannel(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)

	if options["clear"] == "true" {
		if err := h.scheduleService.ClearMemory(context.Background(), i.GuildID); err != nil {
			return err
		}
		return respondEphemeral(s, i, "✅ Schedule post memory cleared.")
	}

	channelID := options["channel"]
	if channelID == "" {
		return apperrors.InvalidArgument("channel is required unless clearing memory")
	}

	if err := h.configRepository.SetChannel(context.Background(), i.GuildID, botconfig.ReportSchedule, channelID); err != nil {
		return err
	}
	return respondEphemeral(s, i, fmt.Sprintf("✅ Schedule channel set to <#%s>.", channelID))
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// commandOptions flattens slash command options into a name-value map.
func commandOptions(i *discordgo.InteractionCreate) map[string]string {
	options := make(map[string]string)
	for _, option := range i.ApplicationCommandData().Options {
		switch option.Type {
		case discordgo.ApplicationCommandOptionString:
			options[option.Name] = option.StringValue()
		case discordgo.ApplicationCommandOptionBoolean:
			options[option.Name] = strconv.FormatBool(option.BoolValue())
		case discordgo.ApplicationCommandOptionChannel:
			options[option.Name] = option.Value.(string)
		}
	}
	return options
}
