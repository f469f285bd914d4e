// Package views holds pure builders for every embed and component set the
// bot renders. Nothing here talks to Discord or the store.
package views

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/coldbreakfast/landsraad-bot/internal/domain/house"
)

const embedGold = 0xd4af37

// MasterPanelEmbed renders the control panel summary above the 25 house
// buttons.
func MasterPanelEmbed(houses []*house.House, now time.Time) *discordgo.MessageEmbed {
	unlocked := 0
	atreides := 0
	harkonnen := 0
	for _, h := range houses {
		if !h.Locked {
			unlocked++
		}
		switch h.Alliance {
		case house.AllianceAtreides:
			atreides++
		case house.AllianceHarkonnen:
			harkonnen++
		}
	}
	claimed := atreides + harkonnen

	return &discordgo.MessageEmbed{
		Title:       "**LANDSRAAD Houses Control Panel**",
		Description: "Click on a house to unlock, update, or claim it\n💡 Use `/refresh_panel` to refresh the display",
		Color:       embedGold,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "📊 Summary",
				Value: fmt.Sprintf("**Unlocked:** %d/%d\n**Claimed:** %d/%d\n**Atreides:** %d 🟢\n**Harkonnen:** %d 🔴",
					unlocked, len(houses), claimed, len(houses), atreides, harkonnen),
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Last refresh: " + now.Format("3:04:05 PM"),
		},
	}
}

// MasterPanelComponents renders one button per house in a 5x5 grid.
// Discord caps a message at 25 components, which exactly fits the roster.
func MasterPanelComponents(houses []*house.House) []discordgo.MessageComponent {
	rows := make([]discordgo.MessageComponent, 0, 5)

	for start := 0; start < len(houses); start += 5 {
		end := start + 5
		if end > len(houses) {
			end = len(houses)
		}

		buttons := make([]discordgo.MessageComponent, 0, 5)
		for _, h := range houses[start:end] {
			buttons = append(buttons, houseButton(h))
		}
		rows = append(rows, discordgo.ActionsRow{Components: buttons})
	}

	return rows
}

func houseButton(h *house.House) discordgo.Button {
	var style discordgo.ButtonStyle
	var emoji string
	switch {
	case h.Locked:
		style = discordgo.SecondaryButton
		emoji = "🔒"
	case h.Alliance == house.AllianceAtreides:
		style = discordgo.SuccessButton
		emoji = "🟢"
	case h.Alliance == house.AllianceHarkonnen:
		style = discordgo.DangerButton
		emoji = "🔴"
	default:
		style = discordgo.PrimaryButton
		emoji = "🔓"
	}

	return discordgo.Button{
		Label:    h.Name,
		Style:    style,
		CustomID: "house:" + h.Name,
		Emoji:    &discordgo.ComponentEmoji{Name: emoji},
	}
}
