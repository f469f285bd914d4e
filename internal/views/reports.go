package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/coldbreakfast/landsraad-bot/internal/domain/desert"
)

// GuildBasesReport renders every active guild base grouped by sector.
// Input order (sector, then discovery time) is preserved.
func GuildBasesReport(bases []*desert.GuildBase, now time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🏰 **Guild Base Locations**",
		Description: "All known guild bases in the Deep Desert",
		Color:       embedGold,
		Footer:      reportFooter(now),
	}

	if len(bases) == 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "No bases found", Value: "No guild bases have been discovered yet.",
		})
		return embed
	}

	grouped := newSectorGrouping()
	for _, base := range bases {
		alliance := base.Alliance
		if alliance == "" {
			alliance = "Independent"
		}
		line := fmt.Sprintf("• **%s** (%s) - %s", base.GuildName, alliance, base.BaseType)
		if base.Coordinates != "" {
			line += " - Section " + base.Coordinates
		}
		grouped.add(base.SectorID, line)
	}
	grouped.appendTo(embed)

	return embed
}

// SpiceLocationsReport renders every non-depleted spice deposit grouped by
// sector.
func SpiceLocationsReport(locs []*desert.SpiceLocation, now time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🟨 **Spice Locations**",
		Description: "All known spice deposits in the Deep Desert",
		Color:       0xffd700,
		Footer:      reportFooter(now),
	}

	if len(locs) == 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "No spice found", Value: "No spice locations have been discovered yet.",
		})
		return embed
	}

	grouped := newSectorGrouping()
	for _, loc := range locs {
		line := fmt.Sprintf("• **%s spice**", titleCase(loc.Size))
		if loc.Coordinates != "" {
			line += " - Section " + loc.Coordinates
		}
		if loc.EstimatedYield > 0 {
			line += fmt.Sprintf(" (%d%% remaining)", loc.EstimatedYield)
		}
		grouped.add(loc.SectorID, line)
	}
	grouped.appendTo(embed)

	return embed
}

// LandsraadPointsReport renders every control point grouped by sector.
func LandsraadPointsReport(points []*desert.LandsraadPoint, now time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🏛️ **Landsraad Control Points**",
		Description: "All known control points in the Deep Desert",
		Color:       embedGold,
		Footer:      reportFooter(now),
	}

	if len(points) == 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "No control points found", Value: "No Landsraad points have been discovered yet.",
		})
		return embed
	}

	grouped := newSectorGrouping()
	for _, point := range points {
		controller := point.Controller
		if controller == "" {
			controller = "None"
		}
		line := fmt.Sprintf("• **%s** (Tier %d, Defense %d) - Controller: %s",
			point.Name, point.Tier, point.DefenseRating, controller)
		grouped.add(point.SectorID, line)
	}
	grouped.appendTo(embed)

	return embed
}

// ResourceLocationsReport renders every non-exhausted resource site grouped
// by sector.
func ResourceLocationsReport(locs []*desert.ResourceLocation, now time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "💎 **Resource Locations**",
		Description: "All known resource sites in the Deep Desert",
		Color:       embedGold,
		Footer:      reportFooter(now),
	}

	if len(locs) == 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "No resources found", Value: "No resource locations have been discovered yet.",
		})
		return embed
	}

	grouped := newSectorGrouping()
	for _, loc := range locs {
		line := fmt.Sprintf("• **%s** (%s concentration)", titleCase(loc.ResourceType), loc.Concentration)
		if loc.Coordinates != "" {
			line += " - Section " + loc.Coordinates
		}
		grouped.add(loc.SectorID, line)
	}
	grouped.appendTo(embed)

	return embed
}

func reportFooter(now time.Time) *discordgo.MessageEmbedFooter {
	return &discordgo.MessageEmbedFooter{
		Text: "Last updated: " + now.Format("2006-01-02 3:04 PM"),
	}
}

// sectorGrouping collects report lines per sector, keeping first-seen
// sector order.
type sectorGrouping struct {
	order []desert.SectorID
	lines map[desert.SectorID][]string
}

func newSectorGrouping() *sectorGrouping {
	return &sectorGrouping{lines: make(map[desert.SectorID][]string)}
}

func (g *sectorGrouping) add(id desert.SectorID, line string) {
	if _, ok := g.lines[id]; !ok {
		g.order = append(g.order, id)
	}
	g.lines[id] = append(g.lines[id], line)
}

func (g *sectorGrouping) appendTo(embed *discordgo.MessageEmbed) {
	for _, id := range g.order {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("**Sector %s**", id),
			Value: strings.Join(g.lines[id], "\n"),
		})
	}
}
