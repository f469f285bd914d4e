package discord

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
	deserthandler "github.com/coldbreakfast/landsraad-bot/internal/handlers/discord/desert"
	landsraadhandler "github.com/coldbreakfast/landsraad-bot/internal/handlers/discord/landsraad"
	schedulehandler "github.com/coldbreakfast/landsraad-bot/internal/handlers/discord/schedule"
	"github.com/coldbreakfast/landsraad-bot/internal/repositories/botconfig"
	"github.com/coldbreakfast/landsraad-bot/internal/services"
	scheduleservice "github.com/coldbreakfast/landsraad-bot/internal/services/schedule"
)

var (
	adminPermission          = int64(discordgo.PermissionAdministrator)
	manageChannelsPermission = int64(discordgo.PermissionManageChannels)
)

// Handler routes Discord interactions to the feature handlers
type Handler struct {
	panelHandler    *landsraadhandler.PanelHandler
	adminHandler    *landsraadhandler.AdminHandler
	mapHandler      *deserthandler.MapHandler
	sectorHandler   *deserthandler.SectorHandler
	reportsHandler  *deserthandler.ReportsHandler
	scheduleHandler *schedulehandler.Handler
}

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	ServiceProvider  *services.Provider        // Required
	ConfigRepository botconfig.Repository      // Required
	Messenger        scheduleservice.Messenger // Required
}

// NewHandler creates a new Discord interaction handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.ServiceProvider == nil {
		panic("service provider is required")
	}
	if cfg.ConfigRepository == nil {
		panic("config repository is required")
	}
	if cfg.Messenger == nil {
		panic("messenger is required")
	}

	return &Handler{
		panelHandler: landsraadhandler.NewPanelHandler(&landsraadhandler.PanelHandlerConfig{
			RegistryService: cfg.ServiceProvider.RegistryService,
		}),
		adminHandler: landsraadhandler.NewAdminHandler(&landsraadhandler.AdminHandlerConfig{
			RegistryService: cfg.ServiceProvider.RegistryService,
		}),
		mapHandler: deserthandler.NewMapHandler(&deserthandler.MapHandlerConfig{
			DesertService: cfg.ServiceProvider.DesertService,
		}),
		sectorHandler: deserthandler.NewSectorHandler(&deserthandler.SectorHandlerConfig{
			DesertService: cfg.ServiceProvider.DesertService,
		}),
		reportsHandler: deserthandler.NewReportsHandler(&deserthandler.ReportsHandlerConfig{
			DesertService:    cfg.ServiceProvider.DesertService,
			ConfigRepository: cfg.ConfigRepository,
			Messenger:        cfg.Messenger,
		}),
		scheduleHandler: schedulehandler.NewHandler(&schedulehandler.HandlerConfig{
			ScheduleService:  cfg.ServiceProvider.ScheduleService,
			ConfigRepository: cfg.ConfigRepository,
		}),
	}
}

// RegisterCommands overwrites the guild's slash commands with the full set.
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	allianceChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Atreides", Value: "atreides"},
		{Name: "Harkonnen", Value: "harkonnen"},
	}
	allianceOrNoneChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Atreides", Value: "atreides"},
		{Name: "Harkonnen", Value: "harkonnen"},
		{Name: "None", Value: "none"},
	}

	poiChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Guild Base", Value: "base"},
		{Name: "Spice", Value: "spice"},
		{Name: "Landsraad Point", Value: "landsraad"},
		{Name: "Resource", Value: "resource"},
	}

	fieldChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Quest", Value: "quest"},
		{Name: "Progress", Value: "progress"},
		{Name: "Goal", Value: "goal"},
		{Name: "Points Per Delivery", Value: "points_per_delivery"},
		{Name: "Alliance", Value: "alliance"},
		{Name: "Notes", Value: "notes"},
		{Name: "Desert Location", Value: "desert_location"},
		{Name: "Deep Desert CP", Value: "deep_desert_cp"},
		{Name: "Completed By", Value: "completed_by"},
		{Name: "Locked", Value: "locked"},
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "landsraad",
			Description: "Show the Landsraad house panel",
		},
		{
			Name:        "refresh_panel",
			Description: "Post a fresh copy of the house panel",
		},
		{
			Name:        "claim_house",
			Description: "Claim a house for an alliance",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "house", Description: "House name", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "alliance", Description: "Claiming alliance", Required: true, Choices: allianceChoices},
			},
		},
		{
			Name:        "set_alliance",
			Description: "Set or clear a house's alliance claim",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "house", Description: "House name", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "alliance", Description: "Alliance, or none to clear", Required: true, Choices: allianceOrNoneChoices},
			},
		},
		{
			Name:        "update_house",
			Description: "Update a single house field",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "house", Description: "House name", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "field", Description: "Field to update", Required: true, Choices: fieldChoices},
				{Type: discordgo.ApplicationCommandOptionString, Name: "value", Description: "New value, progress accepts +/- for relative", Required: true},
			},
		},
		{
			Name:                     "reset_landsraad",
			Description:              "Weekly reset: lock all houses and clear progress",
			DefaultMemberPermissions: &adminPermission,
		},
		{
			Name:                     "full_reset",
			Description:              "Delete all house data and rebuild the roster",
			DefaultMemberPermissions: &adminPermission,
		},
		{
			Name:                     "fix_database",
			Description:              "Reconcile the roster and repair corrupt records",
			DefaultMemberPermissions: &adminPermission,
		},
		{
			Name:                     "export_data",
			Description:              "Export all house data as CSV",
			DefaultMemberPermissions: &adminPermission,
		},
		{
			Name:        "deepdesert",
			Description: "Show the deep desert sector map",
		},
		{
			Name:        "sector",
			Description: "Show one sector in detail",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "sector", Description: "Sector ID, e.g. E5", Required: true},
			},
		},
		{
			Name:        "quickadd",
			Description: "Add a point of interest without a form",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "sector", Description: "Sector ID, e.g. E5", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "type", Description: "Point of interest type", Required: true, Choices: poiChoices},
				{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Name, guild, resource or spice size", Required: true},
			},
		},
		{
			Name:                     "remove_poi",
			Description:              "Remove a point of interest from active listings",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "type", Description: "Point of interest type", Required: true, Choices: poiChoices},
				{Type: discordgo.ApplicationCommandOptionString, Name: "id", Description: "Point of interest ID", Required: true},
			},
		},
		channelCommand("set_bases_channel", "Bind the guild bases report to a channel"),
		channelCommand("set_spice_channel", "Bind the spice report to a channel"),
		channelCommand("set_landsraad_channel", "Bind the Landsraad points report to a channel"),
		channelCommand("set_resources_channel", "Bind the resources report to a channel"),
		{
			Name:                     "refresh_location_reports",
			Description:              "Repost all configured location reports",
			DefaultMemberPermissions: &manageChannelsPermission,
		},
		{
			Name:        "weeklyschedule",
			Description: "Show this week's storm, term and voting times",
		},
		{
			Name:        "post_schedule",
			Description: "Post the weekly schedule publicly",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Target channel, defaults to the configured one", Required: false},
			},
		},
		{
			Name:                     "set_schedule_channel",
			Description:              "Bind the weekly schedule to a channel",
			DefaultMemberPermissions: &manageChannelsPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Target channel", Required: false},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "clear", Description: "Forget the remembered schedule post", Required: false},
			},
		},
	}

	_, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, guildID, commands)
	if err != nil {
		return apperrors.Wrap(err, "failed to register commands")
	}

	log.Printf("Registered %d slash commands", len(commands))
	return nil
}

func channelCommand(name, description string) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     name,
		Description:              description,
		DefaultMemberPermissions: &manageChannelsPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Target channel", Required: true},
		},
	}
}

// HandleInteraction is the single gateway callback for all interactions.
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	case discordgo.InteractionModalSubmit:
		h.handleModalSubmit(s, i)
	}
}

func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name

	switch name {
	case "landsraad", "refresh_panel":
		h.run(name, s, i, h.panelHandler.ShowPanel)
	case "claim_house":
		h.run(name, s, i, h.panelHandler.ClaimHouse)
	case "set_alliance":
		h.run(name, s, i, h.panelHandler.SetAllianceCommand)
	case "update_house":
		h.run(name, s, i, h.panelHandler.UpdateHouseCommand)
	case "reset_landsraad":
		h.run(name, s, i, func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
			return h.adminHandler.RequestReset(s, i, "weekly")
		})
	case "full_reset":
		h.run(name, s, i, func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
			return h.adminHandler.RequestReset(s, i, "full")
		})
	case "fix_database":
		h.run(name, s, i, h.adminHandler.FixDatabase)
	case "export_data":
		h.run(name, s, i, h.adminHandler.ExportData)
	case "deepdesert":
		h.run(name, s, i, h.mapHandler.ShowMap)
	case "sector":
		h.run(name, s, i, h.sectorHandler.SectorCommand)
	case "quickadd":
		h.run(name, s, i, h.sectorHandler.QuickAdd)
	case "remove_poi":
		h.run(name, s, i, h.sectorHandler.RemovePOI)
	case "set_bases_channel":
		h.runSetChannel(name, s, i, botconfig.ReportGuildBases)
	case "set_spice_channel":
		h.runSetChannel(name, s, i, botconfig.ReportSpiceLocations)
	case "set_landsraad_channel":
		h.runSetChannel(name, s, i, botconfig.ReportLandsraadPoints)
	case "set_resources_channel":
		h.runSetChannel(name, s, i, botconfig.ReportResourceLocations)
	case "refresh_location_reports":
		h.run(name, s, i, h.reportsHandler.RefreshCommand)
	case "weeklyschedule":
		h.run(name, s, i, h.scheduleHandler.ShowSchedule)
	case "post_schedule":
		h.run(name, s, i, h.scheduleHandler.PostSchedule)
	case "set_schedule_channel":
		h.run(name, s, i, h.scheduleHandler.SetChannel)
	default:
		log.Printf("Unknown command: %s", name)
	}
}

func (h *Handler) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	parts := strings.SplitN(customID, ":", 3)

	switch parts[0] {
	case "house":
		if len(parts) == 2 {
			h.run(customID, s, i, func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
				return h.panelHandler.ShowHouse(s, i, parts[1])
			})
			return
		}
	case "house_action":
		if len(parts) == 3 {
			h.run(customID, s, i, func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
				return h.panelHandler.HandleHouseAction(s, i, parts[1], parts[2])
			})
			return
		}
	case "sector":
		if len(parts) == 2 {
			h.run(customID, s, i, func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
				return h.sectorHandler.ShowSector(s, i, parts[1])
			})
			return
		}
	case "sector_action":
		if len(parts) == 3 {
			h.run(customID, s, i, func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
				return h.sectorHandler.HandleSectorAction(s, i, parts[1], parts[2])
			})
			return
		}
	case "map_nav":
		if len(parts) == 2 {
			h.run(customID, s, i, func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
				return h.mapHandler.Navigate(s, i, parts[1])
			})
			return
		}
	case "confirm_reset":
		if len(parts) == 3 {
			h.run(customID, s, i, func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
				return h.adminHandler.HandleConfirm(s, i, parts[1], parts[2])
			})
			return
		}
	}

	log.Printf("Unknown component interaction: %s", customID)
}

func (h *Handler) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.ModalSubmitData().CustomID
	parts := strings.SplitN(customID, ":", 3)
	if len(parts) != 3 {
		log.Printf("Unknown modal submission: %s", customID)
		return
	}

	switch parts[0] {
	case "house_modal":
		h.run(customID, s, i, func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
			return h.panelHandler.HandleModal(s, i, parts[1], parts[2])
		})
	case "sector_modal":
		h.run(customID, s, i, func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
			return h.sectorHandler.HandleModal(s, i, parts[1], parts[2])
		})
	default:
		log.Printf("Unknown modal submission: %s", customID)
	}
}

// run executes a feature handler with panic recovery and user-facing error
// reporting.
func (h *Handler) run(name string, s *discordgo.Session, i *discordgo.InteractionCreate, fn func(*discordgo.Session, *discordgo.InteractionCreate) error) {
	RecoverMiddleware(name, func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if err := fn(s, i); err != nil {
			log.Printf("Error handling %s: %v", name, err)
			respondWithError(s, i, userMessage(err))
		}
	})(s, i)
}

func (h *Handler) runSetChannel(name string, s *discordgo.Session, i *discordgo.InteractionCreate, reportType botconfig.ReportType) {
	h.run(name, s, i, func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		return h.reportsHandler.SetChannel(s, i, reportType)
	})
}

// userMessage keeps internal failures vague while surfacing validation
// problems verbatim.
func userMessage(err error) string {
	if apperrors.IsInvalidArgument(err) || apperrors.IsNotFound(err) {
		return err.Error()
	}
	return "Something went wrong. Please try again."
}
