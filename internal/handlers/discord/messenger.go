package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
)

// SessionMessenger sends and deletes channel messages through a live
// Discord session. It backs the schedule and report posting services.
type SessionMessenger struct {
	session *discordgo.Session
}

// NewSessionMessenger creates a messenger over an open session
func NewSessionMessenger(session *discordgo.Session) *SessionMessenger {
	if session == nil {
		panic("session is required")
	}
	return &SessionMessenger{session: session}
}

// SendEmbed posts an embed and returns the new message ID.
func (m *SessionMessenger) SendEmbed(channelID string, embed *discordgo.MessageEmbed) (string, error) {
	msg, err := m.session.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		return "", apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to send message")
	}
	return msg.ID, nil
}

// DeleteMessage removes a previously posted message.
func (m *SessionMessenger) DeleteMessage(channelID, messageID string) error {
	if err := m.session.ChannelMessageDelete(channelID, messageID); err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to delete message")
	}
	return nil
}

// FindChannelByName returns the first text channel whose name matches one of
// the candidates, tried in candidate order.
func (m *SessionMessenger) FindChannelByName(guildID string, names []string) (string, error) {
	channels, err := m.session.GuildChannels(guildID)
	if err != nil {
		return "", apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to list guild channels")
	}

	for _, name := range names {
		for _, channel := range channels {
			if channel.Type != discordgo.ChannelTypeGuildText {
				continue
			}
			if strings.EqualFold(channel.Name, name) {
				return channel.ID, nil
			}
		}
	}

	return "", apperrors.NotFoundf("no channel named %s", strings.Join(names, ", "))
}
