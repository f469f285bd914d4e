package services

import (
	"time"

	"github.com/coldbreakfast/landsraad-bot/internal/clock"
	"github.com/coldbreakfast/landsraad-bot/internal/repositories/botconfig"
	desertRepo "github.com/coldbreakfast/landsraad-bot/internal/repositories/desert"
	"github.com/coldbreakfast/landsraad-bot/internal/repositories/houses"
	desertService "github.com/coldbreakfast/landsraad-bot/internal/services/desert"
	registryService "github.com/coldbreakfast/landsraad-bot/internal/services/registry"
	scheduleService "github.com/coldbreakfast/landsraad-bot/internal/services/schedule"
)

// Provider holds all service instances
type Provider struct {
	RegistryService registryService.Service
	DesertService   desertService.Service
	ScheduleService scheduleService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	HouseRepository  houses.Repository
	DesertRepository desertRepo.Repository
	ConfigRepository botconfig.Repository
	Messenger        scheduleService.Messenger
	Location         *time.Location
	TimeProvider     clock.TimeProvider // Optional, will use system clock if nil
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = clock.NewSystemClock()
	}

	registry := registryService.NewService(&registryService.ServiceConfig{
		Repository:   cfg.HouseRepository,
		TimeProvider: timeProvider,
	})

	desert := desertService.NewService(&desertService.ServiceConfig{
		Repository:   cfg.DesertRepository,
		TimeProvider: timeProvider,
	})

	schedule := scheduleService.NewService(&scheduleService.ServiceConfig{
		ConfigRepository: cfg.ConfigRepository,
		Messenger:        cfg.Messenger,
		Location:         cfg.Location,
		TimeProvider:     timeProvider,
	})

	return &Provider{
		RegistryService: registry,
		DesertService:   desert,
		ScheduleService: schedule,
	}
}
