package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/coldbreakfast/landsraad-bot/internal/clock"
	"github.com/coldbreakfast/landsraad-bot/internal/config"
	"github.com/coldbreakfast/landsraad-bot/internal/handlers/discord"
	"github.com/coldbreakfast/landsraad-bot/internal/repositories/botconfig"
	desertrepo "github.com/coldbreakfast/landsraad-bot/internal/repositories/desert"
	"github.com/coldbreakfast/landsraad-bot/internal/repositories/houses"
	"github.com/coldbreakfast/landsraad-bot/internal/scheduler"
	"github.com/coldbreakfast/landsraad-bot/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	location, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone %q: %v", cfg.Schedule.Timezone, err)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	// Connect to Redis with a bounded pool
	redisClient := redis.NewClient(&redis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		PoolSize:    cfg.Redis.PoolSize,
		PoolTimeout: cfg.Redis.PoolTimeout,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	}()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancel()
		log.Fatalf("Failed to connect to Redis at %s: %v", cfg.Redis.Addr, err)
	}
	cancel()
	log.Printf("Connected to Redis at %s", cfg.Redis.Addr)

	// Repositories
	houseRepo := houses.NewRedisRepository(&houses.RedisRepoConfig{Client: redisClient})
	sectorRepo := desertrepo.NewRedisRepository(&desertrepo.RedisRepoConfig{Client: redisClient})
	configRepo := botconfig.NewRedisRepository(&botconfig.RedisRepoConfig{
		Client:       redisClient,
		TimeProvider: clock.NewSystemClock(),
	})

	// Services
	messenger := discord.NewSessionMessenger(dg)
	serviceProvider := services.NewProvider(&services.ProviderConfig{
		HouseRepository:  houseRepo,
		DesertRepository: sectorRepo,
		ConfigRepository: configRepo,
		Messenger:        messenger,
		Location:         location,
	})

	// Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider:  serviceProvider,
		ConfigRepository: configRepo,
		Messenger:        messenger,
	})
	dg.AddHandler(handler.HandleInteraction)

	if err := dg.Open(); err != nil {
		log.Fatalf("Failed to open Discord connection: %v", err)
	}
	defer func() {
		if err := dg.Close(); err != nil {
			log.Printf("Failed to close Discord connection: %v", err)
		}
	}()

	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}
	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	// Bring stored state in line before serving interactions
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if result, err := serviceProvider.RegistryService.ReconcileRoster(startupCtx); err != nil {
		log.Printf("Roster reconciliation failed: %v", err)
	} else if result.Created > 0 || result.Removed > 0 {
		log.Printf("Roster reconciled: %d created, %d removed", result.Created, result.Removed)
	}
	if repaired, err := serviceProvider.RegistryService.RepairAlliances(startupCtx); err != nil {
		log.Printf("Alliance repair failed: %v", err)
	} else if repaired > 0 {
		log.Printf("Repaired %d corrupt alliance records", repaired)
	}
	if created, err := serviceProvider.DesertService.InitializeGrid(startupCtx); err != nil {
		log.Printf("Grid initialization failed: %v", err)
	} else if created > 0 {
		log.Printf("Initialized %d desert sectors", created)
	}
	cancelStartup()

	// Daily schedule check, plus one pass now in case the bot restarted on
	// a Tuesday after the window opened.
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()

	dailyCheck := func(ctx context.Context) error {
		if cfg.Discord.GuildID == "" {
			return nil
		}
		return serviceProvider.ScheduleService.RunDailyCheck(ctx, cfg.Discord.GuildID)
	}
	if err := dailyCheck(schedulerCtx); err != nil {
		log.Printf("Startup schedule check failed: %v", err)
	}

	daily := scheduler.New(&scheduler.Config{
		Task:     dailyCheck,
		Location: location,
	})
	go daily.Run(schedulerCtx)

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")
}
