package desert_test

import (
	"testing"

	"github.com/coldbreakfast/landsraad-bot/internal/domain/desert"
	apperrors "github.com/coldbreakfast/landsraad-bot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSectorID(t *testing.T) {
	id, err := desert.ParseSectorID("a1")
	require.NoError(t, err)
	assert.Equal(t, desert.SectorID("A1"), id)

	id, err = desert.ParseSectorID(" I9 ")
	require.NoError(t, err)
	assert.Equal(t, desert.SectorID("I9"), id)

	for _, bad := range []string{"", "A", "A0", "J1", "A10", "11", "AA", "Z9", "a-1"} {
		_, err := desert.ParseSectorID(bad)
		require.Error(t, err, bad)
		assert.True(t, apperrors.IsInvalidArgument(err), bad)
	}
}

func TestSectorIDRowColumn(t *testing.T) {
	id, err := desert.ParseSectorID("C7")
	require.NoError(t, err)
	assert.Equal(t, byte('C'), id.Row())
	assert.Equal(t, 7, id.Column())
}

func TestAllSectorIDs(t *testing.T) {
	ids := desert.AllSectorIDs()
	require.Len(t, ids, 81)
	assert.Equal(t, desert.SectorID("A1"), ids[0])
	assert.Equal(t, desert.SectorID("A9"), ids[8])
	assert.Equal(t, desert.SectorID("B1"), ids[9])
	assert.Equal(t, desert.SectorID("I9"), ids[80])

	seen := make(map[desert.SectorID]bool)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate sector %s", id)
		seen[id] = true
	}
}

func TestClamps(t *testing.T) {
	assert.Equal(t, 1, desert.ClampTier(0))
	assert.Equal(t, 2, desert.ClampTier(2))
	assert.Equal(t, 3, desert.ClampTier(9))

	assert.Equal(t, 1, desert.ClampDefense(-5))
	assert.Equal(t, 7, desert.ClampDefense(7))
	assert.Equal(t, 10, desert.ClampDefense(12))
}
