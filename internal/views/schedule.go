package views

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/coldbreakfast/landsraad-bot/internal/domain/schedule"
)

// ScheduleEmbed renders the weekly event projection. Discord timestamp
// markup localizes every time to the reader's clock.
func ScheduleEmbed(events schedule.Events) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "📅 Weekly Schedule",
		Description: "Upcoming events, shown in your local time.",
		Color:       0xd4a017,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "🌪️ Coriolis Storm",
				Value: fmt.Sprintf("Starts %s (%s)\nEnds %s",
					longStamp(events.StormStart), relativeStamp(events.StormStart),
					longStamp(events.StormEnd)),
			},
			{
				Name:  "🏛️ New Landsraad Term",
				Value: fmt.Sprintf("Begins %s (%s)", longStamp(events.NewTermStart), relativeStamp(events.NewTermStart)),
			},
			{
				Name: "🗳️ Voting",
				Value: fmt.Sprintf("Opens %s (%s)\nCloses %s",
					longStamp(events.VotingStart), relativeStamp(events.VotingStart),
					longStamp(events.VotingEnd)),
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Storm runs 10 hours. Voting runs 24 hours.",
		},
	}
}

func longStamp(t time.Time) string {
	return fmt.Sprintf("<t:%d:F>", t.Unix())
}

func relativeStamp(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}
