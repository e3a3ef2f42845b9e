package repositoryImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/database"
	"cropadvisor/entities"
	"cropadvisor/pkg/catalog"
)

func TestSeedAndLoadRoundTrip(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	repo := New(db)

	_, err = catalog.LoadFromRepository(repo)
	assert.ErrorIs(t, err, catalog.ErrEmptyStore)

	def := catalog.Default()
	seeded, err := catalog.SeedIfEmpty(repo, def)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = catalog.SeedIfEmpty(repo, def)
	require.NoError(t, err)
	assert.False(t, seeded, "second seed must be a no-op")

	n, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, def.Len(), n)

	got, err := catalog.LoadFromRepository(repo)
	require.NoError(t, err)
	assert.Equal(t, def.Profiles(), got.Profiles())
	for _, r := range entities.Regions {
		assert.Equal(t, def.Candidates(r), got.Candidates(r), string(r))
	}
}

func TestSaveReplacesPreviousCatalog(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	repo := New(db)
	require.NoError(t, catalog.Save(repo, catalog.Default()))

	small, err := catalog.New([]entities.CropProfile{{
		Name: "Millets", PHRange: [2]float64{5.5, 7.5},
		Nitrogen: entities.Low, Phosphorus: entities.Low, Potassium: entities.Low,
		Water:   entities.WaterLow,
		Regions: []entities.Region{entities.South},
	}}, map[entities.Region][]string{entities.South: {"Millets"}})
	require.NoError(t, err)
	require.NoError(t, catalog.Save(repo, small))

	got, err := catalog.LoadFromRepository(repo)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
	assert.Equal(t, []string{"Millets"}, got.Candidates(entities.South))
	assert.Empty(t, got.Candidates(entities.North))
}
