package houses

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/coldbreakfast/landsraad-bot/internal/domain/house"
	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
)

const (
	houseKeyPrefix = "house:"
	houseIndexKey  = "houses:index"
	resetLogKey    = "houses:resetlog"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed house repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{client: cfg.Client}
}

func houseKey(name string) string {
	return houseKeyPrefix + strings.ToLower(name)
}

func (r *redisRepository) EnsureExists(ctx context.Context, h *house.House) error {
	if h == nil || h.Name == "" {
		return apperrors.InvalidArgument("house cannot be nil or unnamed")
	}

	data, err := json.Marshal(h)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize house")
	}

	pipe := r.client.TxPipeline()
	pipe.SetNX(ctx, houseKey(h.Name), data, 0)
	pipe.SAdd(ctx, houseIndexKey, strings.ToLower(h.Name))
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to ensure house exists")
	}

	return nil
}

func (r *redisRepository) Get(ctx context.Context, name string) (*house.House, error) {
	if name == "" {
		return nil, apperrors.InvalidArgument("house name cannot be empty")
	}

	data, err := r.client.Get(ctx, houseKey(name)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("house not found: %s", name)
		}
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to get house")
	}

	var h house.House
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, apperrors.Wrap(err, "failed to deserialize house")
	}

	return &h, nil
}

func (r *redisRepository) List(ctx context.Context) ([]*house.House, error) {
	names, err := r.client.SMembers(ctx, houseIndexKey).Result()
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to list houses")
	}
	if len(names) == 0 {
		return []*house.House{}, nil
	}

	sort.Strings(names)

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = houseKeyPrefix + name
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to get houses")
	}

	result := make([]*house.House, 0, len(values))
	for _, val := range values {
		data, ok := val.(string)
		if !ok {
			// Index member without a record, cleaned up lazily by reconciliation
			continue
		}

		var h house.House
		if err := json.Unmarshal([]byte(data), &h); err != nil {
			continue
		}
		result = append(result, &h)
	}

	return result, nil
}

func (r *redisRepository) Save(ctx context.Context, h *house.House) error {
	if h == nil || h.Name == "" {
		return apperrors.InvalidArgument("house cannot be nil or unnamed")
	}

	data, err := json.Marshal(h)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize house")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, houseKey(h.Name), data, 0)
	pipe.SAdd(ctx, houseIndexKey, strings.ToLower(h.Name))
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to save house")
	}

	return nil
}

func (r *redisRepository) DeleteAllExcept(ctx context.Context, keep []string) (int, error) {
	keepSet := make(map[string]bool, len(keep))
	for _, name := range keep {
		keepSet[strings.ToLower(name)] = true
	}

	names, err := r.client.SMembers(ctx, houseIndexKey).Result()
	if err != nil {
		return 0, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to list houses")
	}

	var extraneous []string
	for _, name := range names {
		if !keepSet[name] {
			extraneous = append(extraneous, name)
		}
	}
	if len(extraneous) == 0 {
		return 0, nil
	}

	pipe := r.client.TxPipeline()
	for _, name := range extraneous {
		pipe.Del(ctx, houseKeyPrefix+name)
		pipe.SRem(ctx, houseIndexKey, name)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to delete extraneous houses")
	}

	return len(extraneous), nil
}

func (r *redisRepository) ResetAll(ctx context.Context, reset func(*house.House) *house.House, entry *ResetEntry) (*ResetEntry, error) {
	if reset == nil || entry == nil {
		return nil, apperrors.InvalidArgument("reset transform and entry are required")
	}

	names, err := r.client.SMembers(ctx, houseIndexKey).Result()
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to list houses")
	}
	sort.Strings(names)

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = houseKeyPrefix + name
	}

	// Watch every house key so a concurrent claim aborts the transaction
	// instead of interleaving with the reset.
	txErr := r.client.Watch(ctx, func(tx *redis.Tx) error {
		values, err := tx.MGet(ctx, keys...).Result()
		if err != nil {
			return err
		}

		completed := 0
		var updatedKeys []string
		var updatedData [][]byte
		for i, val := range values {
			data, ok := val.(string)
			if !ok {
				continue
			}

			var h house.House
			if err := json.Unmarshal([]byte(data), &h); err != nil {
				continue
			}

			if h.Claimed() {
				completed++
			}

			fresh, err := json.Marshal(reset(&h))
			if err != nil {
				return err
			}
			updatedKeys = append(updatedKeys, keys[i])
			updatedData = append(updatedData, fresh)
		}

		entry.HousesReset = len(updatedKeys)
		entry.HousesCompleted = completed

		logData, err := json.Marshal(entry)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for i, key := range updatedKeys {
				pipe.Set(ctx, key, updatedData[i], 0)
			}
			pipe.RPush(ctx, resetLogKey, logData)
			return nil
		})
		return err
	}, keys...)

	if txErr != nil {
		return nil, apperrors.WrapWithCode(txErr, apperrors.CodeUnavailable, "failed to reset houses")
	}

	return entry, nil
}

func (r *redisRepository) ListResetLog(ctx context.Context, limit int) ([]*ResetEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	values, err := r.client.LRange(ctx, resetLogKey, int64(-limit), -1).Result()
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to read reset log")
	}

	// Stored oldest first, returned newest first
	entries := make([]*ResetEntry, 0, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		var entry ResetEntry
		if err := json.Unmarshal([]byte(values[i]), &entry); err != nil {
			continue
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (r *redisRepository) DeleteAll(ctx context.Context) error {
	names, err := r.client.SMembers(ctx, houseIndexKey).Result()
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to list houses")
	}

	pipe := r.client.TxPipeline()
	for _, name := range names {
		pipe.Del(ctx, houseKeyPrefix+name)
	}
	pipe.Del(ctx, houseIndexKey)
	pipe.Del(ctx, resetLogKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to delete houses")
	}

	return nil
}
