package views

import (
	"github.com/bwmarrin/discordgo"
)

// ResetConfirmEmbed warns about an imminent destructive reset. The kind is
// "weekly" or "full".
func ResetConfirmEmbed(kind string) *discordgo.MessageEmbed {
	if kind == "full" {
		return &discordgo.MessageEmbed{
			Title: "⚠️ Full Database Reset",
			Description: "This deletes **every** house record, the reset log and rebuilds the roster from scratch.\n" +
				"This cannot be undone. Confirm within 30 seconds.",
			Color: 0xed4245,
		}
	}

	return &discordgo.MessageEmbed{
		Title: "⚠️ Weekly Landsraad Reset",
		Description: "This locks all 25 houses, clears progress, quests, claims and desert data.\n" +
			"An audit entry will record the reset. Confirm within 30 seconds.",
		Color: 0xfee75c,
	}
}

// ResetConfirmComponents renders the two-step confirmation buttons.
func ResetConfirmComponents(kind string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Confirm Reset",
					Style:    discordgo.DangerButton,
					CustomID: "confirm_reset:confirm:" + kind,
					Emoji:    &discordgo.ComponentEmoji{Name: "⚠️"},
				},
				discordgo.Button{
					Label:    "Cancel",
					Style:    discordgo.SecondaryButton,
					CustomID: "confirm_reset:cancel:" + kind,
					Emoji:    &discordgo.ComponentEmoji{Name: "❌"},
				},
			},
		},
	}
}
