package landsraad

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/coldbreakfast/landsraad-bot/internal/clock"
	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
	"github.com/coldbreakfast/landsraad-bot/internal/services/registry"
	"github.com/coldbreakfast/landsraad-bot/internal/views"
)

// confirmWindow is how long a pending reset confirmation stays valid.
const confirmWindow = 30 * time.Second

// AdminHandler drives the destructive and maintenance commands
type AdminHandler struct {
	registryService registry.Service
	timeProvider    clock.TimeProvider

	mu      sync.Mutex
	pending map[string]*pendingReset
}

type pendingReset struct {
	kind    string
	expires time.Time
}

// AdminHandlerConfig holds dependencies for the admin handler
type AdminHandlerConfig struct {
	RegistryService registry.Service   // Required
	TimeProvider    clock.TimeProvider // Optional, will use system clock if nil
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(cfg *AdminHandlerConfig) *AdminHandler {
	if cfg.RegistryService == nil {
		panic("registry service is required")
	}

	h := &AdminHandler{
		registryService: cfg.RegistryService,
		timeProvider:    cfg.TimeProvider,
		pending:         make(map[string]*pendingReset),
	}
	if h.timeProvider == nil {
		h.timeProvider = clock.NewSystemClock()
	}

	return h
}

// RequestReset starts the two-step confirmation for a weekly or full reset.
func (h *AdminHandler) RequestReset(s *discordgo.Session, i *discordgo.InteractionCreate, kind string) error {
	if kind != "weekly" && kind != "full" {
		return apperrors.InvalidArgumentf("unknown reset kind '%s'", kind)
	}

	h.mu.Lock()
	h.pending[userID(i)] = &pendingReset{
		kind:    kind,
		expires: h.timeProvider.Now().Add(confirmWindow),
	}
	h.mu.Unlock()

	embed := views.ResetConfirmEmbed(kind)
	if kind == "weekly" {
		if entries, err := h.registryService.ResetLog(context.Background(), 1); err == nil && len(entries) > 0 {
			embed.Footer = &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Last reset: %s by %s",
					entries[0].ResetAt.Format("2006-01-02 15:04"), entries[0].ResetBy),
			}
		}
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: views.ResetConfirmComponents(kind),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

// HandleConfirm resolves a confirmation button press.
func (h *AdminHandler) HandleConfirm(s *discordgo.Session, i *discordgo.InteractionCreate, decision, kind string) error {
	h.mu.Lock()
	request, ok := h.pending[userID(i)]
	delete(h.pending, userID(i))
	h.mu.Unlock()

	if decision != "confirm" {
		return updateContent(s, i, "Reset cancelled.")
	}
	if !ok || request.kind != kind {
		return updateContent(s, i, "No reset is pending for you. Run the command again.")
	}
	if h.timeProvider.Now().After(request.expires) {
		return updateContent(s, i, "Confirmation expired. Run the command again.")
	}

	switch kind {
	case "weekly":
		entry, err := h.registryService.WeeklyReset(context.Background(), actorName(i))
		if err != nil {
			return err
		}
		return updateContent(s, i, fmt.Sprintf(
			"✅ Weekly reset complete. %d houses reset, %d had completed their goal.",
			entry.HousesReset, entry.HousesCompleted))
	case "full":
		result, err := h.registryService.FullReset(context.Background())
		if err != nil {
			return err
		}
		return updateContent(s, i, fmt.Sprintf(
			"✅ Full reset complete. Roster rebuilt with %d houses, %d stray records removed.",
			result.Created, result.Removed))
	default:
		return apperrors.InvalidArgumentf("unknown reset kind '%s'", kind)
	}
}

// FixDatabase reconciles the roster and repairs corrupt alliance values.
func (h *AdminHandler) FixDatabase(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	result, err := h.registryService.ReconcileRoster(ctx)
	if err != nil {
		return err
	}
	repaired, err := h.registryService.RepairAlliances(ctx)
	if err != nil {
		return err
	}
	stats, err := h.registryService.Statistics(ctx)
	if err != nil {
		return err
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title: "🔧 Database Repair",
				Color: 0x57f287,
				Fields: []*discordgo.MessageEmbedField{
					{Name: "Houses created", Value: fmt.Sprintf("%d", result.Created), Inline: true},
					{Name: "Stray records removed", Value: fmt.Sprintf("%d", result.Removed), Inline: true},
					{Name: "Alliances repaired", Value: fmt.Sprintf("%d", repaired), Inline: true},
					{Name: "Roster", Value: fmt.Sprintf("%d houses, %d locked, %d claimed",
						stats.Total, stats.Locked, stats.ClaimedAtreides+stats.ClaimedHarkonnen), Inline: false},
				},
			}},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

// ExportData sends the full house table as a CSV attachment.
func (h *AdminHandler) ExportData(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}); err != nil {
		return err
	}

	data, err := h.registryService.ExportCSV(context.Background())
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("landsraad_houses_%s.csv", h.timeProvider.Now().Format("2006-01-02"))
	_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: "📄 House data export",
		Files: []*discordgo.File{{
			Name:        filename,
			ContentType: "text/csv",
			Reader:      bytes.NewReader(data),
		}},
		Flags: discordgo.MessageFlagsEphemeral,
	})
	return err
}

func updateContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
		},
	})
}

func userID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
