package desert

import (
	"context"
	"strconv"

	"github.com/bwmarrin/discordgo"

	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
	desertservice "github.com/coldbreakfast/landsraad-bot/internal/services/desert"
	"github.com/coldbreakfast/landsraad-bot/internal/views"
)

// MapHandler drives the deep desert grid view and its paging
type MapHandler struct {
	desertService desertservice.Service
}

// MapHandlerConfig holds dependencies for the map handler
type MapHandlerConfig struct {
	DesertService desertservice.Service // Required
}

// NewMapHandler creates a new map handler
func NewMapHandler(cfg *MapHandlerConfig) *MapHandler {
	if cfg.DesertService == nil {
		panic("desert service is required")
	}
	return &MapHandler{desertService: cfg.DesertService}
}

// ShowMap posts the public grid overview starting at row A.
func (h *MapHandler) ShowMap(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	overview, err := h.desertService.GridOverview(context.Background())
	if err != nil {
		return err
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{views.MapOverviewEmbed(overview, 0)},
			Components: views.MapGridComponents(overview, 0),
		},
	})
}

// Navigate repages the grid view in place.
func (h *MapHandler) Navigate(s *discordgo.Session, i *discordgo.InteractionCreate, rowValue string) error {
	startRow, err := strconv.Atoi(rowValue)
	if err != nil {
		return apperrors.InvalidArgumentf("bad navigation target '%s'", rowValue)
	}
	// Keep the embed's row range in step with the grid's own clamping.
	if startRow < 0 {
		startRow = 0
	}
	if startRow > 5 {
		startRow = 5
	}

	overview, err := h.desertService.GridOverview(context.Background())
	if err != nil {
		return err
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{views.MapOverviewEmbed(overview, startRow)},
			Components: views.MapGridComponents(overview, startRow),
		},
	})
}
