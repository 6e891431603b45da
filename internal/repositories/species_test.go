package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeciesRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	countryID, _ := seedLocation(t, db, "India", "IN", "Mumbai")

	writeRepo := NewSpeciesWriteRepository(db, nil)
	readRepo := NewSpeciesReadRepository(db, nil)
	ctx := context.Background()

	speciesID, err := writeRepo.Save(ctx, "panthera tigris", "EN")
	assert.NoError(t, err)
	assert.NotZero(t, speciesID)

	t.Run("GetByName", func(t *testing.T) {
		species, err := readRepo.GetByName(ctx, "panthera tigris")
		assert.NoError(t, err)
		assert.NotNil(t, species)
		assert.Equal(t, speciesID, species.ID)
		assert.Equal(t, "EN", species.Threatened)
	})

	t.Run("GetByName_NotCached", func(t *testing.T) {
		species, err := readRepo.GetByName(ctx, "unknown")
		assert.NoError(t, err)
		assert.Nil(t, species)
	})

	t.Run("GetByID", func(t *testing.T) {
		species, err := readRepo.GetByID(ctx, speciesID)
		assert.NoError(t, err)
		assert.NotNil(t, species)
		assert.Equal(t, "panthera tigris", species.Name)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, "panthera tigris", "EN")
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("Occurrences", func(t *testing.T) {
		exists, err := readRepo.ExistsOccurrence(ctx, speciesID, countryID)
		assert.NoError(t, err)
		assert.False(t, exists)

		err = writeRepo.SaveOccurrence(ctx, speciesID, "IN")
		assert.NoError(t, err)

		exists, err = readRepo.ExistsOccurrence(ctx, speciesID, countryID)
		assert.NoError(t, err)
		assert.True(t, exists)

		// Repeating the occurrence inserts nothing.
		err = writeRepo.SaveOccurrence(ctx, speciesID, "IN")
		assert.NoError(t, err)

		var count int
		err = db.Get(&count, "SELECT COUNT(*) FROM species_countries WHERE species_id=$1", speciesID)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("OccurrenceForUnknownCode", func(t *testing.T) {
		// Codes missing from the country table are skipped silently.
		err := writeRepo.SaveOccurrence(ctx, speciesID, "ZZ")
		assert.NoError(t, err)

		var count int
		err = db.Get(&count, "SELECT COUNT(*) FROM species_countries WHERE species_id=$1", speciesID)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
