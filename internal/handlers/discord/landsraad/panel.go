package landsraad

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/coldbreakfast/landsraad-bot/internal/clock"
	"github.com/coldbreakfast/landsraad-bot/internal/domain/house"
	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
	"github.com/coldbreakfast/landsraad-bot/internal/services/registry"
	"github.com/coldbreakfast/landsraad-bot/internal/views"
)

// PanelHandler drives the master house panel and the per-house views
type PanelHandler struct {
	registryService registry.Service
	timeProvider    clock.TimeProvider
}

// PanelHandlerConfig holds dependencies for the panel handler
type PanelHandlerConfig struct {
	RegistryService registry.Service   // Required
	TimeProvider    clock.TimeProvider // Optional, will use system clock if nil
}

// NewPanelHandler creates a new panel handler
func NewPanelHandler(cfg *PanelHandlerConfig) *PanelHandler {
	if cfg.RegistryService == nil {
		panic("registry service is required")
	}

	h := &PanelHandler{
		registryService: cfg.RegistryService,
		timeProvider:    cfg.TimeProvider,
	}
	if h.timeProvider == nil {
		h.timeProvider = clock.NewSystemClock()
	}

	return h
}

// ShowPanel posts the public master panel with one button per house.
func (h *PanelHandler) ShowPanel(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	houses, err := h.registryService.ListHouses(context.Background())
	if err != nil {
		return err
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{views.MasterPanelEmbed(houses, h.timeProvider.Now())},
			Components: views.MasterPanelComponents(houses),
		},
	})
}

// ShowHouse answers a house button with an ephemeral detail view.
func (h *PanelHandler) ShowHouse(s *discordgo.Session, i *discordgo.InteractionCreate, name string) error {
	houseRecord, err := h.registryService.GetHouse(context.Background(), name)
	if err != nil {
		return err
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{views.HouseDetailEmbed(houseRecord)},
			Components: views.HouseActionComponents(houseRecord),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

// HandleHouseAction dispatches the buttons under a house detail view.
func (h *PanelHandler) HandleHouseAction(s *discordgo.Session, i *discordgo.InteractionCreate, verb, name string) error {
	switch verb {
	case "unlock":
		return h.showUnlockModal(s, i, name)
	case "update":
		return h.showUpdateModal(s, i, name)
	case "claim_atreides":
		return h.applyAlliance(s, i, name, "atreides")
	case "claim_harkonnen":
		return h.applyAlliance(s, i, name, "harkonnen")
	case "unclaim":
		return h.applyAlliance(s, i, name, "none")
	case "cancel":
		return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Content:    "Dismissed.",
				Embeds:     []*discordgo.MessageEmbed{},
				Components: []discordgo.MessageComponent{},
			},
		})
	default:
		return apperrors.InvalidArgumentf("unknown house action '%s'", verb)
	}
}

func (h *PanelHandler) applyAlliance(s *discordgo.Session, i *discordgo.InteractionCreate, name, alliance string) error {
	updated, err := h.registryService.SetAlliance(context.Background(), &registry.SetAllianceInput{
		Name:     name,
		Alliance: alliance,
		Actor:    actorName(i),
	})
	if err != nil {
		return err
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{views.HouseDetailEmbed(updated)},
			Components: views.HouseActionComponents(updated),
		},
	})
}

func (h *PanelHandler) showUnlockModal(s *discordgo.Session, i *discordgo.InteractionCreate, name string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: "house_modal:unlock:" + name,
			Title:    "Unlock House " + name,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "quest",
						Label:       "Weekly Quest",
						Style:       discordgo.TextInputParagraph,
						Placeholder: "e.g. Deliver 175 Plastanium Ingots",
						Required:    true,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "points_per_delivery",
						Label:       "Points Per Delivery",
						Style:       discordgo.TextInputShort,
						Placeholder: "e.g. 100",
						Required:    true,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID: "goal",
						Label:    "Goal (leave empty for 70,000)",
						Style:    discordgo.TextInputShort,
						Required: false,
					},
				}},
			},
		},
	})
}

func (h *PanelHandler) showUpdateModal(s *discordgo.Session, i *discordgo.InteractionCreate, name string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: "house_modal:update:" + name,
			Title:    "Update House " + name,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "progress",
						Label:       "Progress (+/- for relative)",
						Style:       discordgo.TextInputShort,
						Placeholder: "e.g. 35000 or +1500",
						Required:    false,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "desert_location",
						Label:       "Desert Location",
						Style:       discordgo.TextInputShort,
						Placeholder: "e.g. E5",
						Required:    false,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID: "deep_desert_cp",
						Label:    "Deep Desert Control Points",
						Style:    discordgo.TextInputShort,
						Required: false,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID: "notes",
						Label:    "Notes",
						Style:    discordgo.TextInputParagraph,
						Required: false,
					},
				}},
			},
		},
	})
}

// HandleModal applies a submitted unlock or update modal.
func (h *PanelHandler) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate, verb, name string) error {
	data := i.ModalSubmitData()

	switch verb {
	case "unlock":
		return h.applyUnlockModal(s, i, name, data)
	case "update":
		return h.applyUpdateModal(s, i, name, data)
	default:
		return apperrors.InvalidArgumentf("unknown house modal '%s'", verb)
	}
}

func (h *PanelHandler) applyUnlockModal(s *discordgo.Session, i *discordgo.InteractionCreate, name string, data discordgo.ModalSubmitInteractionData) error {
	ppdValue := modalValue(data, "points_per_delivery")
	ppd, err := strconv.Atoi(strings.TrimSpace(ppdValue))
	if err != nil {
		return apperrors.InvalidArgumentf("points per delivery must be a number, got '%s'", ppdValue)
	}

	goal := 0
	if goalValue := strings.TrimSpace(modalValue(data, "goal")); goalValue != "" {
		goal, err = strconv.Atoi(goalValue)
		if err != nil {
			return apperrors.InvalidArgumentf("goal must be a number, got '%s'", goalValue)
		}
	}

	updated, err := h.registryService.Unlock(context.Background(), &registry.UnlockInput{
		Name:              name,
		Quest:             modalValue(data, "quest"),
		PointsPerDelivery: ppd,
		Goal:              goal,
		Actor:             actorName(i),
	})
	if err != nil {
		return err
	}

	return respondHouse(s, i, updated)
}

func (h *PanelHandler) applyUpdateModal(s *discordgo.Session, i *discordgo.InteractionCreate, name string, data discordgo.ModalSubmitInteractionData) error {
	fields := []string{"progress", "desert_location", "deep_desert_cp", "notes"}

	applied := 0
	for _, field := range fields {
		value := strings.TrimSpace(modalValue(data, field))
		if value == "" {
			continue
		}
		if _, err := h.registryService.UpdateField(context.Background(), &registry.UpdateFieldInput{
			Name:  name,
			Field: field,
			Value: value,
			Actor: actorName(i),
		}); err != nil {
			return err
		}
		applied++
	}

	if applied == 0 {
		return apperrors.InvalidArgument("nothing to update, all fields were empty")
	}

	updated, err := h.registryService.GetHouse(context.Background(), name)
	if err != nil {
		return err
	}

	return respondHouse(s, i, updated)
}

// ClaimHouse handles the /claim_house slash command.
func (h *PanelHandler) ClaimHouse(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)

	updated, err := h.registryService.SetAlliance(context.Background(), &registry.SetAllianceInput{
		Name:     options["house"],
		Alliance: options["alliance"],
		Actor:    actorName(i),
	})
	if err != nil {
		return err
	}

	return respondHouse(s, i, updated)
}

// SetAllianceCommand handles the /set_alliance slash command, which also
// accepts "none" to release a claim.
func (h *PanelHandler) SetAllianceCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return h.ClaimHouse(s, i)
}

// UpdateHouseCommand handles the /update_house slash command for one-field
// edits without a modal round trip.
func (h *PanelHandler) UpdateHouseCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)

	updated, err := h.registryService.UpdateField(context.Background(), &registry.UpdateFieldInput{
		Name:  options["house"],
		Field: options["field"],
		Value: options["value"],
		Actor: actorName(i),
	})
	if err != nil {
		return err
	}

	return respondHouse(s, i, updated)
}

// respondHouse sends an ephemeral detail view for a freshly changed house.
func respondHouse(s *discordgo.Session, i *discordgo.InteractionCreate, h *house.House) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{views.HouseDetailEmbed(h)},
			Components: views.HouseActionComponents(h),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
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
