package views

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/coldbreakfast/landsraad-bot/internal/domain/house"
)

// rewardsTable lists the fixed delivery reward tiers.
const rewardsTable = "💎 **700:** 31\n💎 **3,500:** 153\n💎 **7,000:** 306\n💎 **10,500:** 457\n👑 **14,000:** 609"

// HouseDetailEmbed renders the full state of one house.
func HouseDetailEmbed(h *house.House) *discordgo.MessageEmbed {
	var color int
	var statusEmoji string
	switch h.Alliance {
	case house.AllianceAtreides:
		color = 0x57f287
		statusEmoji = "🟢"
	case house.AllianceHarkonnen:
		color = 0xed4245
		statusEmoji = "🔴"
	default:
		color = 0x5865f2
		statusEmoji = "🔓"
	}

	var status string
	switch {
	case h.Locked:
		status = "🔒 Locked"
	case h.Claimed():
		status = fmt.Sprintf("%s Claimed by %s", statusEmoji, h.Alliance)
	default:
		status = fmt.Sprintf("%s In Prog (%.1f%%)", statusEmoji, h.ProgressPercent())
	}

	quest := h.Quest
	if quest == "" {
		quest = "Not set"
	}

	alliance := string(h.Alliance)
	if !h.Alliance.Valid() {
		alliance = "Unclaimed"
	}

	embed := &discordgo.MessageEmbed{
		Title: "House " + h.Name,
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Status", Value: status, Inline: true},
			{Name: "📜 Quest", Value: quest, Inline: true},
			{
				Name: "📊 Progress",
				Value: fmt.Sprintf("Cur: %s\nGoal: %s\nRem: %s",
					comma(h.Progress), comma(h.Goal), comma(h.Remaining())),
				Inline: true,
			},
			{Name: "🚚 Deliveries", Value: deliveriesText(h), Inline: true},
			{Name: "🏛️ Alliance", Value: alliance, Inline: true},
			{Name: "🏜️ Deep Desert CP", Value: fmt.Sprintf("%d", h.DeepDesertCP), Inline: true},
			{Name: "Progress Bar", Value: "```" + h.ProgressBar() + "```"},
			{Name: "🎁 Rewards", Value: rewardsTable},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Last by " + h.UpdatedBy},
	}

	if h.Notes != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "📝 Notes", Value: h.Notes,
		})
	}
	if h.DesertLocation != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "📍 Desert Location", Value: h.DesertLocation, Inline: true,
		})
	}

	return embed
}

func deliveriesText(h *house.House) string {
	if h.Claimed() && h.Progress < h.Goal {
		return fmt.Sprintf("PPD: %d\nClaimed before completion", h.PointsPerDelivery)
	}

	turns, ok := h.TurnsNeeded()
	if !ok {
		return fmt.Sprintf("PPD: %d\nTurns: ∞", h.PointsPerDelivery)
	}
	return fmt.Sprintf("PPD: %d\nTurns: %d", h.PointsPerDelivery, turns)
}

// HouseActionComponents renders the action row shown after a house button
// is pressed. Locked houses only offer unlocking.
func HouseActionComponents(h *house.House) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent

	if h.Locked {
		buttons = append(buttons, discordgo.Button{
			Label:    "Unlock House",
			Style:    discordgo.SecondaryButton,
			CustomID: "house_action:unlock:" + h.Name,
			Emoji:    &discordgo.ComponentEmoji{Name: "🔓"},
		})
	} else {
		buttons = append(buttons,
			discordgo.Button{
				Label:    "Update",
				Style:    discordgo.PrimaryButton,
				CustomID: "house_action:update:" + h.Name,
				Emoji:    &discordgo.ComponentEmoji{Name: "✏️"},
			},
			discordgo.Button{
				Label:    "Claim Atreides",
				Style:    discordgo.SuccessButton,
				CustomID: "house_action:claim_atreides:" + h.Name,
				Emoji:    &discordgo.ComponentEmoji{Name: "🟢"},
				Disabled: h.Alliance == house.AllianceAtreides,
			},
			discordgo.Button{
				Label:    "Claim Harkonnen",
				Style:    discordgo.DangerButton,
				CustomID: "house_action:claim_harkonnen:" + h.Name,
				Emoji:    &discordgo.ComponentEmoji{Name: "🔴"},
				Disabled: h.Alliance == house.AllianceHarkonnen,
			},
		)
		if h.Claimed() {
			buttons = append(buttons, discordgo.Button{
				Label:    "Unclaim",
				Style:    discordgo.SecondaryButton,
				CustomID: "house_action:unclaim:" + h.Name,
				Emoji:    &discordgo.ComponentEmoji{Name: "🔄"},
			})
		}
	}

	buttons = append(buttons, discordgo.Button{
		Label:    "Cancel",
		Style:    discordgo.SecondaryButton,
		CustomID: "house_action:cancel:" + h.Name,
		Emoji:    &discordgo.ComponentEmoji{Name: "❌"},
	})

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

// comma formats n with thousands separators.
func comma(n int) string {
	if n < 0 {
		return "-" + comma(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return comma(n/1000) + fmt.Sprintf(",%03d", n%1000)
}
