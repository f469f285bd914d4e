package desert

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/coldbreakfast/landsraad-bot/internal/domain/desert"
	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
)

const (
	sectorKeyPrefix = "sector:"
	guildBasesKey   = "desert:bases"
	spiceKey        = "desert:spice"
	landsraadKey    = "desert:landsraad"
	resourcesKey    = "desert:resources"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed desert repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{client: cfg.Client}
}

func sectorKey(id desert.SectorID) string {
	return sectorKeyPrefix + string(id)
}

func (r *redisRepository) InitGrid(ctx context.Context) (int, error) {
	ids := desert.AllSectorIDs()

	pipe := r.client.TxPipeline()
	cmds := make([]*redis.BoolCmd, 0, len(ids))
	for _, id := range ids {
		data, err := json.Marshal(desert.NewSector(id))
		if err != nil {
			return 0, apperrors.Wrap(err, "failed to serialize sector")
		}
		cmds = append(cmds, pipe.SetNX(ctx, sectorKey(id), data, 0))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to initialize grid")
	}

	created := 0
	for _, cmd := range cmds {
		if cmd.Val() {
			created++
		}
	}
	return created, nil
}

func (r *redisRepository) GetSector(ctx context.Context, id desert.SectorID) (*desert.Sector, error) {
	data, err := r.client.Get(ctx, sectorKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("sector not found: %s", id)
		}
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to get sector")
	}

	var sector desert.Sector
	if err := json.Unmarshal(data, &sector); err != nil {
		return nil, apperrors.Wrap(err, "failed to deserialize sector")
	}

	return &sector, nil
}

func (r *redisRepository) ListSectors(ctx context.Context) ([]*desert.Sector, error) {
	ids := desert.AllSectorIDs()
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = sectorKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to list sectors")
	}

	sectors := make([]*desert.Sector, 0, len(ids))
	for i, val := range values {
		data, ok := val.(string)
		if !ok {
			// Grid not initialized for this cell yet, surface it unsurveyed
			sectors = append(sectors, desert.NewSector(ids[i]))
			continue
		}

		var sector desert.Sector
		if err := json.Unmarshal([]byte(data), &sector); err != nil {
			sectors = append(sectors, desert.NewSector(ids[i]))
			continue
		}
		sectors = append(sectors, &sector)
	}

	return sectors, nil
}

func (r *redisRepository) SaveSector(ctx context.Context, sector *desert.Sector) error {
	if sector == nil || sector.ID == "" {
		return apperrors.InvalidArgument("sector cannot be nil or unidentified")
	}

	data, err := json.Marshal(sector)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize sector")
	}

	if err := r.client.Set(ctx, sectorKey(sector.ID), data, 0).Err(); err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to save sector")
	}

	return nil
}

func (r *redisRepository) saveHashEntry(ctx context.Context, hashKey, id string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize point of interest")
	}

	if err := r.client.HSet(ctx, hashKey, id, data).Err(); err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to save point of interest")
	}

	return nil
}

func (r *redisRepository) listHash(ctx context.Context, hashKey string) (map[string]string, error) {
	entries, err := r.client.HGetAll(ctx, hashKey).Result()
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to list points of interest")
	}
	return entries, nil
}

func (r *redisRepository) SaveGuildBase(ctx context.Context, base *desert.GuildBase) error {
	if base == nil || base.ID == "" {
		return apperrors.InvalidArgument("guild base cannot be nil or unidentified")
	}
	return r.saveHashEntry(ctx, guildBasesKey, base.ID, base)
}

func (r *redisRepository) ListGuildBases(ctx context.Context) ([]*desert.GuildBase, error) {
	entries, err := r.listHash(ctx, guildBasesKey)
	if err != nil {
		return nil, err
	}

	bases := make([]*desert.GuildBase, 0, len(entries))
	for _, data := range entries {
		var base desert.GuildBase
		if err := json.Unmarshal([]byte(data), &base); err != nil {
			continue
		}
		bases = append(bases, &base)
	}

	sort.Slice(bases, func(i, j int) bool {
		if bases[i].SectorID != bases[j].SectorID {
			return bases[i].SectorID < bases[j].SectorID
		}
		return bases[i].DiscoveredAt.Before(bases[j].DiscoveredAt)
	})
	return bases, nil
}

func (r *redisRepository) SaveSpiceLocation(ctx context.Context, loc *desert.SpiceLocation) error {
	if loc == nil || loc.ID == "" {
		return apperrors.InvalidArgument("spice location cannot be nil or unidentified")
	}
	return r.saveHashEntry(ctx, spiceKey, loc.ID, loc)
}

func (r *redisRepository) ListSpiceLocations(ctx context.Context) ([]*desert.SpiceLocation, error) {
	entries, err := r.listHash(ctx, spiceKey)
	if err != nil {
		return nil, err
	}

	locs := make([]*desert.SpiceLocation, 0, len(entries))
	for _, data := range entries {
		var loc desert.SpiceLocation
		if err := json.Unmarshal([]byte(data), &loc); err != nil {
			continue
		}
		locs = append(locs, &loc)
	}

	sort.Slice(locs, func(i, j int) bool {
		if locs[i].SectorID != locs[j].SectorID {
			return locs[i].SectorID < locs[j].SectorID
		}
		return locs[i].DiscoveredAt.Before(locs[j].DiscoveredAt)
	})
	return locs, nil
}

func (r *redisRepository) SaveLandsraadPoint(ctx context.Context, point *desert.LandsraadPoint) error {
	if point == nil || point.ID == "" {
		return apperrors.InvalidArgument("landsraad point cannot be nil or unidentified")
	}
	return r.saveHashEntry(ctx, landsraadKey, point.ID, point)
}

func (r *redisRepository) ListLandsraadPoints(ctx context.Context) ([]*desert.LandsraadPoint, error) {
	entries, err := r.listHash(ctx, landsraadKey)
	if err != nil {
		return nil, err
	}

	points := make([]*desert.LandsraadPoint, 0, len(entries))
	for _, data := range entries {
		var point desert.LandsraadPoint
		if err := json.Unmarshal([]byte(data), &point); err != nil {
			continue
		}
		points = append(points, &point)
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].SectorID != points[j].SectorID {
			return points[i].SectorID < points[j].SectorID
		}
		return points[i].DiscoveredAt.Before(points[j].DiscoveredAt)
	})
	return points, nil
}

func (r *redisRepository) SaveResourceLocation(ctx context.Context, loc *desert.ResourceLocation) error {
	if loc == nil || loc.ID == "" {
		return apperrors.InvalidArgument("resource location cannot be nil or unidentified")
	}
	return r.saveHashEntry(ctx, resourcesKey, loc.ID, loc)
}

func (r *redisRepository) ListResourceLocations(ctx context.Context) ([]*desert.ResourceLocation, error) {
	entries, err := r.listHash(ctx, resourcesKey)
	if err != nil {
		return nil, err
	}

	locs := make([]*desert.ResourceLocation, 0, len(entries))
	for _, data := range entries {
		var loc desert.ResourceLocation
		if err := json.Unmarshal([]byte(data), &loc); err != nil {
			continue
		}
		locs = append(locs, &loc)
	}

	sort.Slice(locs, func(i, j int) bool {
		if locs[i].SectorID != locs[j].SectorID {
			return locs[i].SectorID < locs[j].SectorID
		}
		return locs[i].DiscoveredAt.Before(locs[j].DiscoveredAt)
	})
	return locs, nil
}
