package views

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/coldbreakfast/landsraad-bot/internal/domain/desert"
	desertService "github.com/coldbreakfast/landsraad-bot/internal/services/desert"
)

// mapRowsPerPage is how many grid rows fit one message. Five rows of five
// buttons leaves no room for navigation, so pages show four sector rows
// plus a navigation row.
const mapRowsPerPage = 4

// MapOverviewEmbed renders the deep desert summary above the sector grid.
func MapOverviewEmbed(overview *desertService.Overview, startRow int) *discordgo.MessageEmbed {
	bases, spice, landsraad, resources := 0, 0, 0, 0
	for _, summary := range overview.Sectors {
		bases += summary.GuildBases
		spice += summary.Spice
		landsraad += summary.Landsraad
		resources += summary.Resources
	}

	endRow := startRow + mapRowsPerPage - 1
	if endRow > 8 {
		endRow = 8
	}

	return &discordgo.MessageEmbed{
		Title: "🗺️ **Deep Desert Map Overview**",
		Description: fmt.Sprintf("Showing rows %c-%c • Click a sector for details",
			'A'+startRow, 'A'+endRow),
		Color: embedGold,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "📊 Survey Progress",
				Value: fmt.Sprintf("✅ Complete: %d/81\n🔍 Partial: %d/81\n❓ Unsurveyed: %d/81",
					overview.Surveyed, overview.Partial, overview.Unsurveyed),
				Inline: true,
			},
			{
				Name: "📍 Points of Interest",
				Value: fmt.Sprintf("🏰 Guild Bases: %d\n🟨 Spice Locations: %d\n🏛️ Landsraad Points: %d\n💎 Resources: %d",
					bases, spice, landsraad, resources),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Data resets weekly with the Coriolis Storm • Use /deepdesert to access",
		},
	}
}

// MapGridComponents renders a page of sector buttons starting at the given
// grid row, plus a navigation row when more rows exist in either direction.
func MapGridComponents(overview *desertService.Overview, startRow int) []discordgo.MessageComponent {
	if startRow < 0 {
		startRow = 0
	}
	if startRow > 9-mapRowsPerPage {
		startRow = 9 - mapRowsPerPage
	}

	bySector := make(map[desert.SectorID]*desertService.SectorSummary, len(overview.Sectors))
	for _, summary := range overview.Sectors {
		bySector[summary.Sector.ID] = summary
	}

	rows := make([]discordgo.MessageComponent, 0, mapRowsPerPage+1)
	for row := startRow; row < startRow+mapRowsPerPage && row < 9; row++ {
		// Only the first five columns fit a component row.
		buttons := make([]discordgo.MessageComponent, 0, 5)
		for col := 1; col <= 5; col++ {
			id := desert.SectorID(fmt.Sprintf("%c%d", 'A'+row, col))
			buttons = append(buttons, sectorButton(bySector[id], id))
		}
		rows = append(rows, discordgo.ActionsRow{Components: buttons})
	}

	nav := make([]discordgo.MessageComponent, 0, 2)
	if startRow > 0 {
		nav = append(nav, discordgo.Button{
			Label:    "◀ Previous",
			Style:    discordgo.SecondaryButton,
			CustomID: fmt.Sprintf("map_nav:%d", startRow-mapRowsPerPage),
		})
	}
	if startRow+mapRowsPerPage < 9 {
		nav = append(nav, discordgo.Button{
			Label:    "Next ▶",
			Style:    discordgo.SecondaryButton,
			CustomID: fmt.Sprintf("map_nav:%d", startRow+mapRowsPerPage),
		})
	}
	if len(nav) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: nav})
	}

	return rows
}

func sectorButton(summary *desertService.SectorSummary, id desert.SectorID) discordgo.Button {
	style := discordgo.SecondaryButton
	emoji := "❓"
	label := string(id)

	if summary != nil {
		switch summary.Sector.Status {
		case desert.SurveyPartial:
			style = discordgo.PrimaryButton
			emoji = "🔍"
		case desert.SurveyComplete:
			style = discordgo.SuccessButton
			emoji = "✅"
		}

		if total := summary.GuildBases + summary.Spice + summary.Landsraad + summary.Resources; total > 0 {
			label = fmt.Sprintf("%s (%d)", id, total)
		}
	}

	return discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: "sector:" + string(id),
		Emoji:    &discordgo.ComponentEmoji{Name: emoji},
	}
}
