package botconfig

import (
	"context"
	"time"
)

// ReportType names a recurring report that gets bound to a channel.
type ReportType string

const (
	ReportGuildBases        ReportType = "bases"
	ReportSpiceLocations    ReportType = "spice"
	ReportLandsraadPoints   ReportType = "landsraad"
	ReportResourceLocations ReportType = "resources"
	ReportSchedule          ReportType = "schedule"
)

// ReportTypes enumerates the location report bindings, excluding the
// schedule channel.
func ReportTypes() []ReportType {
	return []ReportType{
		ReportGuildBases,
		ReportSpiceLocations,
		ReportLandsraadPoints,
		ReportResourceLocations,
	}
}

// ChannelConfig binds one report type to a channel within a guild. The
// last posted message ID lets reports edit in place instead of reposting.
type ChannelConfig struct {
	GuildID       string     `json:"guild_id"`
	ReportType    ReportType `json:"report_type"`
	ChannelID     string     `json:"channel_id"`
	LastMessageID string     `json:"last_message_id,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ScheduleState records when the weekly schedule was last auto-posted so
// the daily check never posts twice for the same week.
type ScheduleState struct {
	LastPostedAt time.Time `json:"last_posted_at"`
}

// Repository persists per-guild channel bindings and schedule post state.
type Repository interface {
	// SetChannel binds a report type to a channel, clearing any previous
	// last-message ID.
	SetChannel(ctx context.Context, guildID string, reportType ReportType, channelID string) error

	// GetChannel retrieves a binding. Returns a not-found error when the
	// report type was never bound in the guild.
	GetChannel(ctx context.Context, guildID string, reportType ReportType) (*ChannelConfig, error)

	// ListChannels returns every binding in the guild.
	ListChannels(ctx context.Context, guildID string) ([]*ChannelConfig, error)

	// SetLastMessage records the message a report was last rendered into.
	SetLastMessage(ctx context.Context, guildID string, reportType ReportType, messageID string) error

	// GetScheduleState retrieves the schedule post state, zero-valued when
	// nothing was ever posted.
	GetScheduleState(ctx context.Context, guildID string) (*ScheduleState, error)

	// SaveScheduleState overwrites the schedule post state.
	SaveScheduleState(ctx context.Context, guildID string, state *ScheduleState) error
}
