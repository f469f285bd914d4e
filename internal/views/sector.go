package views

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/coldbreakfast/landsraad-bot/internal/domain/desert"
	desertService "github.com/coldbreakfast/landsraad-bot/internal/services/desert"
)

var surveyEmoji = map[desert.SurveyStatus]string{
	desert.SurveyUnsurveyed: "❓",
	desert.SurveyPartial:    "🔍",
	desert.SurveyComplete:   "✅",
}

// SectorDetailEmbed renders one sector with everything known about it.
func SectorDetailEmbed(snapshot *desertService.Snapshot) *discordgo.MessageEmbed {
	sector := snapshot.Sector

	statusValue := fmt.Sprintf("%s %s", surveyEmoji[sector.Status], titleCase(string(sector.Status)))
	if sector.SurveyedBy != "" {
		statusValue += "\nBy: " + sector.SurveyedBy
	}
	if sector.LastSurveyed != nil {
		statusValue += "\nDate: " + sector.LastSurveyed.Format("2006-01-02 15:04")
	}

	embed := &discordgo.MessageEmbed{
		Title: "Sector " + string(sector.ID),
		Color: embedGold,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Survey Status", Value: statusValue},
		},
	}

	if len(snapshot.GuildBases) > 0 {
		lines := make([]string, 0, len(snapshot.GuildBases))
		for _, base := range snapshot.GuildBases {
			alliance := base.Alliance
			if alliance == "" {
				alliance = "Independent"
			}
			lines = append(lines, fmt.Sprintf("• %s (%s) - %s", base.GuildName, base.BaseType, alliance))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "🏰 Guild Bases", Value: strings.Join(lines, "\n"),
		})
	}

	if len(snapshot.Spice) > 0 {
		lines := make([]string, 0, len(snapshot.Spice))
		for _, loc := range snapshot.Spice {
			yield := "Unknown"
			if loc.EstimatedYield > 0 {
				yield = fmt.Sprintf("%d%%", loc.EstimatedYield)
			}
			lines = append(lines, fmt.Sprintf("• %s spice - Yield: %s", titleCase(loc.Size), yield))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "🟨 Spice Locations", Value: strings.Join(lines, "\n"),
		})
	}

	if len(snapshot.Landsraad) > 0 {
		lines := make([]string, 0, len(snapshot.Landsraad))
		for _, point := range snapshot.Landsraad {
			controller := point.Controller
			if controller == "" {
				controller = "None"
			}
			lines = append(lines, fmt.Sprintf("• %s - Controller: %s (Tier %d)", point.Name, controller, point.Tier))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "🏛️ Landsraad Points", Value: strings.Join(lines, "\n"),
		})
	}

	if len(snapshot.Resources) > 0 {
		lines := make([]string, 0, len(snapshot.Resources))
		for _, loc := range snapshot.Resources {
			lines = append(lines, fmt.Sprintf("• %s (%s concentration)", titleCase(loc.ResourceType), loc.Concentration))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "💎 Resources", Value: strings.Join(lines, "\n"),
		})
	}

	return embed
}

// SectorActionComponents renders the add/survey actions for a sector.
func SectorActionComponents(id desert.SectorID) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Add Guild Base",
					Style:    discordgo.PrimaryButton,
					CustomID: "sector_action:add_base:" + string(id),
					Emoji:    &discordgo.ComponentEmoji{Name: "🏰"},
				},
				discordgo.Button{
					Label:    "Add Spice Location",
					Style:    discordgo.PrimaryButton,
					CustomID: "sector_action:add_spice:" + string(id),
					Emoji:    &discordgo.ComponentEmoji{Name: "🟨"},
				},
				discordgo.Button{
					Label:    "Add Landsraad Point",
					Style:    discordgo.PrimaryButton,
					CustomID: "sector_action:add_landsraad:" + string(id),
					Emoji:    &discordgo.ComponentEmoji{Name: "🏛️"},
				},
				discordgo.Button{
					Label:    "Add Resource",
					Style:    discordgo.PrimaryButton,
					CustomID: "sector_action:add_resource:" + string(id),
					Emoji:    &discordgo.ComponentEmoji{Name: "💎"},
				},
				discordgo.Button{
					Label:    "Mark Surveyed",
					Style:    discordgo.SuccessButton,
					CustomID: "sector_action:mark_surveyed:" + string(id),
					Emoji:    &discordgo.ComponentEmoji{Name: "✅"},
				},
			},
		},
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
