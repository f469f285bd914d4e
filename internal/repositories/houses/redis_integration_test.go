package houses

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldbreakfast/landsraad-bot/internal/domain/house"
	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
	"github.com/coldbreakfast/landsraad-bot/internal/testutils"
)

// Exercises the repository against a real local Redis. Skipped when none is
// reachable.
func TestRedisRepositoryIntegration(t *testing.T) {
	client := testutils.CreateTestRedisClient(t, nil)
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})
	ctx := context.Background()

	// Upsert never overwrites an existing record
	ecaz := house.NewLocked("Ecaz")
	require.NoError(t, repo.EnsureExists(ctx, ecaz))

	modified := house.NewLocked("Ecaz")
	modified.Progress = 999
	require.NoError(t, repo.EnsureExists(ctx, modified))

	stored, err := repo.Get(ctx, "ECAZ")
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Progress, "EnsureExists must not overwrite")

	// Save and read back a claimed, completed house
	sor := house.NewLocked("Sor")
	sor.Locked = false
	sor.Alliance = house.AllianceAtreides
	sor.Progress = sor.Goal
	sor.Notes = "priority target"
	require.NoError(t, repo.Save(ctx, sor))

	require.NoError(t, repo.EnsureExists(ctx, house.NewLocked("Alexin")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Alexin", list[0].Name)
	assert.Equal(t, "Sor", list[2].Name)

	// Atomic reset preserves notes via the transform and records the audit
	now := time.Now().UTC().Truncate(time.Second)
	entry, err := repo.ResetAll(ctx, func(h *house.House) *house.House {
		fresh := house.NewLocked(h.Name)
		fresh.Notes = h.Notes
		return fresh
	}, &ResetEntry{ID: "reset-1", ResetAt: now, ResetBy: "Stilgar"})
	require.NoError(t, err)
	assert.Equal(t, 3, entry.HousesReset)
	assert.Equal(t, 1, entry.HousesCompleted)

	stored, err = repo.Get(ctx, "sor")
	require.NoError(t, err)
	assert.True(t, stored.Locked)
	assert.Equal(t, 0, stored.Progress)
	assert.Equal(t, "priority target", stored.Notes)

	log, err := repo.ListResetLog(ctx, 10)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, "reset-1", log[0].ID)
	assert.Equal(t, "Stilgar", log[0].ResetBy)

	// Roster pruning
	removed, err := repo.DeleteAllExcept(ctx, []string{"Ecaz", "Sor"})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = repo.Get(ctx, "Alexin")
	assert.True(t, apperrors.IsNotFound(err))

	// Full wipe removes houses and the reset log
	require.NoError(t, repo.DeleteAll(ctx))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	log, err = repo.ListResetLog(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, log)
}
