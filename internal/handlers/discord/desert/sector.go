package desert

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	desertdomain "github.com/coldbreakfast/landsraad-bot/internal/domain/desert"
	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
	desertservice "github.com/coldbreakfast/landsraad-bot/internal/services/desert"
	"github.com/coldbreakfast/landsraad-bot/internal/views"
)

// SectorHandler drives the per-sector detail view, its add modals and the
// quick-add command
type SectorHandler struct {
	desertService desertservice.Service
}

// SectorHandlerConfig holds dependencies for the sector handler
type SectorHandlerConfig struct {
	DesertService desertservice.Service // Required
}

// NewSectorHandler creates a new sector handler
func NewSectorHandler(cfg *SectorHandlerConfig) *SectorHandler {
	if cfg.DesertService == nil {
		panic("desert service is required")
	}
	return &SectorHandler{desertService: cfg.DesertService}
}

// ShowSector answers a sector button or the /sector command with an
// ephemeral detail view.
func (h *SectorHandler) ShowSector(s *discordgo.Session, i *discordgo.InteractionCreate, sectorID string) error {
	snapshot, err := h.desertService.SectorSnapshot(context.Background(), sectorID)
	if err != nil {
		return err
	}
	return respondSnapshot(s, i, snapshot)
}

// SectorCommand handles the /sector slash command.
func (h *SectorHandler) SectorCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)
	return h.ShowSector(s, i, options["sector"])
}

// QuickAdd handles the /quickadd slash command, creating a point of
// interest with variant defaults.
func (h *SectorHandler) QuickAdd(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)

	snapshot, err := h.desertService.QuickAdd(context.Background(), &desertservice.QuickAddInput{
		SectorID: options["sector"],
		Variant:  desertdomain.POIVariant(options["type"]),
		Name:     options["name"],
		Actor:    actorName(i),
	})
	if err != nil {
		return err
	}
	return respondSnapshot(s, i, snapshot)
}

// RemovePOI handles the /remove_poi slash command. Removed entries are
// flagged, not deleted, so history survives.
func (h *SectorHandler) RemovePOI(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)

	err := h.desertService.RemovePOI(context.Background(), &desertservice.RemovePOIInput{
		Variant: desertdomain.POIVariant(options["type"]),
		ID:      options["id"],
		Actor:   actorName(i),
	})
	if err != nil {
		return err
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "✅ Point of interest removed from active listings.",
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// HandleSectorAction opens the entry modal for a sector action button.
func (h *SectorHandler) HandleSectorAction(s *discordgo.Session, i *discordgo.InteractionCreate, verb, sectorID string) error {
	modal, err := sectorModal(verb, sectorID)
	if err != nil {
		return err
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: modal,
	})
}

// HandleModal applies a submitted sector entry modal.
func (h *SectorHandler) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate, verb, sectorID string) error {
	ctx := context.Background()
	data := i.ModalSubmitData()
	actor := actorName(i)

	switch verb {
	case "add_base":
		_, err := h.desertService.AddGuildBase(ctx, &desertservice.AddGuildBaseInput{
			SectorID:    sectorID,
			GuildName:   modalValue(data, "guild_name"),
			BaseType:    modalValue(data, "base_type"),
			Alliance:    modalValue(data, "alliance"),
			Coordinates: modalValue(data, "coordinates"),
			Actor:       actor,
			Notes:       modalValue(data, "notes"),
		})
		if err != nil {
			return err
		}
	case "add_spice":
		yield := 0
		if raw := strings.TrimSpace(modalValue(data, "yield")); raw != "" {
			parsed, err := strconv.Atoi(strings.TrimSuffix(raw, "%"))
			if err != nil {
				return apperrors.InvalidArgumentf("yield must be a number, got '%s'", raw)
			}
			yield = parsed
		}
		_, err := h.desertService.AddSpiceLocation(ctx, &desertservice.AddSpiceLocationInput{
			SectorID:       sectorID,
			Size:           modalValue(data, "size"),
			EstimatedYield: yield,
			Coordinates:    modalValue(data, "coordinates"),
			Actor:          actor,
		})
		if err != nil {
			return err
		}
	case "add_landsraad":
		tier := parseIntOr(modalValue(data, "tier"), 1)
		defense := parseIntOr(modalValue(data, "defense"), 0)
		_, err := h.desertService.AddLandsraadPoint(ctx, &desertservice.AddLandsraadPointInput{
			SectorID:      sectorID,
			Name:          modalValue(data, "name"),
			Tier:          tier,
			DefenseRating: defense,
			Controller:    modalValue(data, "controller"),
			Actor:         actor,
		})
		if err != nil {
			return err
		}
	case "add_resource":
		_, err := h.desertService.AddResourceLocation(ctx, &desertservice.AddResourceLocationInput{
			SectorID:      sectorID,
			ResourceType:  modalValue(data, "resource_type"),
			Concentration: modalValue(data, "concentration"),
			Coordinates:   modalValue(data, "coordinates"),
			Actor:         actor,
		})
		if err != nil {
			return err
		}
	case "mark_surveyed":
		status := strings.ToLower(strings.TrimSpace(modalValue(data, "status")))
		if status == "" {
			status = string(desertdomain.SurveyComplete)
		}
		_, err := h.desertService.MarkSurveyed(ctx, &desertservice.MarkSurveyedInput{
			SectorID: sectorID,
			Status:   desertdomain.SurveyStatus(status),
			Actor:    actor,
			Notes:    modalValue(data, "notes"),
		})
		if err != nil {
			return err
		}
	default:
		return apperrors.InvalidArgumentf("unknown sector modal '%s'", verb)
	}

	snapshot, err := h.desertService.SectorSnapshot(ctx, sectorID)
	if err != nil {
		return err
	}
	return respondSnapshot(s, i, snapshot)
}

func sectorModal(verb, sectorID string) (*discordgo.InteractionResponseData, error) {
	switch verb {
	case "add_base":
		return &discordgo.InteractionResponseData{
			CustomID: "sector_modal:add_base:" + sectorID,
			Title:    "Add Guild Base in " + sectorID,
			Components: []discordgo.MessageComponent{
				textInputRow("guild_name", "Guild Name", true, ""),
				textInputRow("base_type", "Base Type (main, outpost, temporary)", false, "main"),
				textInputRow("alliance", "Alliance (empty for independent)", false, ""),
				textInputRow("coordinates", "Coordinates within sector", false, "e.g. NW corner"),
			},
		}, nil
	case "add_spice":
		return &discordgo.InteractionResponseData{
			CustomID: "sector_modal:add_spice:" + sectorID,
			Title:    "Add Spice Location in " + sectorID,
			Components: []discordgo.MessageComponent{
				textInputRow("size", "Size (small, medium, large)", false, "medium"),
				textInputRow("yield", "Estimated Yield (0-100)", false, "e.g. 75"),
				textInputRow("coordinates", "Coordinates within sector", false, ""),
			},
		}, nil
	case "add_landsraad":
		return &discordgo.InteractionResponseData{
			CustomID: "sector_modal:add_landsraad:" + sectorID,
			Title:    "Add Landsraad Point in " + sectorID,
			Components: []discordgo.MessageComponent{
				textInputRow("name", "Point Name", true, ""),
				textInputRow("tier", "Tier (1-5)", false, "1"),
				textInputRow("defense", "Defense Rating (0-10)", false, "0"),
				textInputRow("controller", "Controller (empty for none)", false, ""),
			},
		}, nil
	case "add_resource":
		return &discordgo.InteractionResponseData{
			CustomID: "sector_modal:add_resource:" + sectorID,
			Title:    "Add Resource in " + sectorID,
			Components: []discordgo.MessageComponent{
				textInputRow("resource_type", "Resource Type", true, "e.g. titanium"),
				textInputRow("concentration", "Concentration", false, "tier 1"),
				textInputRow("coordinates", "Coordinates within sector", false, ""),
			},
		}, nil
	case "mark_surveyed":
		return &discordgo.InteractionResponseData{
			CustomID: "sector_modal:mark_surveyed:" + sectorID,
			Title:    "Survey Sector " + sectorID,
			Components: []discordgo.MessageComponent{
				textInputRow("status", "Status (partial or complete)", false, "complete"),
				textInputRow("notes", "Survey Notes", false, ""),
			},
		}, nil
	default:
		return nil, apperrors.InvalidArgumentf("unknown sector action '%s'", verb)
	}
}

func textInputRow(customID, label string, required bool, placeholder string) discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    customID,
				Label:       label,
				Style:       discordgo.TextInputShort,
				Required:    required,
				Placeholder: placeholder,
			},
		},
	}
}

func respondSnapshot(s *discordgo.Session, i *discordgo.InteractionCreate, snapshot *desertservice.Snapshot) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{views.SectorDetailEmbed(snapshot)},
			Components: views.SectorActionComponents(snapshot.Sector.ID),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

func parseIntOr(value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func modalValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			if input, ok := component.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}

// commandOptions flattens slash command options into a name-value map.
func commandOptions(i *discordgo.InteractionCreate) map[string]string {
	options := make(map[string]string)
	for _, option := range i.ApplicationCommandData().Options {
		switch option.Type {
		case discordgo.ApplicationCommandOptionString:
			options[option.Name] = option.StringValue()
		case discordgo.ApplicationCommandOptionInteger:
			options[option.Name] = strconv.FormatInt(option.IntValue(), 10)
		case discordgo.ApplicationCommandOptionChannel:
			options[option.Name] = option.Value.(string)
		}
	}
	return options
}

// actorName resolves the display name of the interacting user.
func actorName(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		if i.Member.Nick != "" {
			return i.Member.Nick
		}
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}
	return "Unknown"
}
