package botconfig

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/coldbreakfast/landsraad-bot/internal/clock"
	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider clock.TimeProvider
}

type redisRepository struct {
	client       redis.UniversalClient
	timeProvider clock.TimeProvider
}

// NewRedisRepository creates a new Redis-backed config repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}
	if cfg.TimeProvider == nil {
		panic("time provider is required")
	}

	return &redisRepository{
		client:       cfg.Client,
		timeProvider: cfg.TimeProvider,
	}
}

func channelKey(guildID string, reportType ReportType) string {
	return fmt.Sprintf("channelconfig:%s:%s", guildID, reportType)
}

func channelIndexKey(guildID string) string {
	return fmt.Sprintf("guild:%s:channelconfigs", guildID)
}

func scheduleStateKey(guildID string) string {
	return fmt.Sprintf("schedulestate:%s", guildID)
}

func (r *redisRepository) SetChannel(ctx context.Context, guildID string, reportType ReportType, channelID string) error {
	if guildID == "" || reportType == "" || channelID == "" {
		return apperrors.InvalidArgument("guild, report type and channel are required")
	}

	cfg := &ChannelConfig{
		GuildID:    guildID,
		ReportType: reportType,
		ChannelID:  channelID,
		UpdatedAt:  r.timeProvider.Now(),
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize channel config")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, channelKey(guildID, reportType), data, 0)
	pipe.SAdd(ctx, channelIndexKey(guildID), string(reportType))
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to save channel config")
	}

	return nil
}

func (r *redisRepository) GetChannel(ctx context.Context, guildID string, reportType ReportType) (*ChannelConfig, error) {
	if guildID == "" || reportType == "" {
		return nil, apperrors.InvalidArgument("guild and report type are required")
	}

	data, err := r.client.Get(ctx, channelKey(guildID, reportType)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("no channel configured for %s reports", reportType)
		}
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to get channel config")
	}

	var cfg ChannelConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, apperrors.Wrap(err, "failed to deserialize channel config")
	}

	return &cfg, nil
}

func (r *redisRepository) ListChannels(ctx context.Context, guildID string) ([]*ChannelConfig, error) {
	if guildID == "" {
		return nil, apperrors.InvalidArgument("guild is required")
	}

	types, err := r.client.SMembers(ctx, channelIndexKey(guildID)).Result()
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to list channel configs")
	}

	configs := make([]*ChannelConfig, 0, len(types))
	for _, t := range types {
		cfg, err := r.GetChannel(ctx, guildID, ReportType(t))
		if err != nil {
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		configs = append(configs, cfg)
	}

	return configs, nil
}

func (r *redisRepository) SetLastMessage(ctx context.Context, guildID string, reportType ReportType, messageID string) error {
	cfg, err := r.GetChannel(ctx, guildID, reportType)
	if err != nil {
		return err
	}

	cfg.LastMessageID = messageID
	cfg.UpdatedAt = r.timeProvider.Now()

	data, err := json.Marshal(cfg)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize channel config")
	}

	if err := r.client.Set(ctx, channelKey(guildID, reportType), data, 0).Err(); err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to save channel config")
	}

	return nil
}

func (r *redisRepository) GetScheduleState(ctx context.Context, guildID string) (*ScheduleState, error) {
	if guildID == "" {
		return nil, apperrors.InvalidArgument("guild is required")
	}

	data, err := r.client.Get(ctx, scheduleStateKey(guildID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return &ScheduleState{}, nil
		}
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to get schedule state")
	}

	var state ScheduleState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, apperrors.Wrap(err, "failed to deserialize schedule state")
	}

	return &state, nil
}

func (r *redisRepository) SaveScheduleState(ctx context.Context, guildID string, state *ScheduleState) error {
	if guildID == "" || state == nil {
		return apperrors.InvalidArgument("guild and state are required")
	}

	data, err := json.Marshal(state)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize schedule state")
	}

	if err := r.client.Set(ctx, scheduleStateKey(guildID), data, 0).Err(); err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to save schedule state")
	}

	return nil
}
