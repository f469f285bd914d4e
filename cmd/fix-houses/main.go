package main

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	housesRepo "github.com/coldbreakfast/landsraad-bot/internal/repositories/houses"
	"github.com/coldbreakfast/landsraad-bot/internal/services/registry"
)

// Offline maintenance tool: reconciles the roster and repairs corrupt
// alliance values without starting the bot. Run it against the same Redis
// the bot uses.
func main() {
	ctx := context.Background()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	repo := housesRepo.NewRedisRepository(&housesRepo.RedisRepoConfig{
		Client: client,
	})
	service := registry.NewService(&registry.ServiceConfig{
		Repository: repo,
	})

	result, err := service.ReconcileRoster(ctx)
	if err != nil {
		log.Fatalf("Failed to reconcile roster: %v", err)
	}
	log.Printf("Roster reconciled: %d created, %d removed", result.Created, result.Removed)

	repaired, err := service.RepairAlliances(ctx)
	if err != nil {
		log.Fatalf("Failed to repair alliances: %v", err)
	}
	log.Printf("Repaired %d corrupt alliance records", repaired)

	stats, err := service.Statistics(ctx)
	if err != nil {
		log.Fatalf("Failed to read statistics: %v", err)
	}
	log.Printf("Verification - %d houses: %d locked, %d open, %d Atreides, %d Harkonnen, %d completed",
		stats.Total, stats.Locked, stats.Open,
		stats.ClaimedAtreides, stats.ClaimedHarkonnen, stats.Completed)

	if stats.CorruptAlliances > 0 {
		log.Printf("WARNING: %d corrupt alliance values remain", stats.CorruptAlliances)
	}
}
