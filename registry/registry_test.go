package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartwayz/api-go/models"
	"github.com/smartwayz/api-go/registry"
)

func TestStaticSnapshotLookups(t *testing.T) {
	snap := registry.NewStaticSnapshot(
		[]registry.CategoryEntry{
			{ID: 1, Name: models.CategoryHazard},
			{ID: 2, Name: models.CategoryInfrastructure},
		},
		[]registry.SubCategoryEntry{
			{ID: 10, Code: models.SubFlooding, CategoryID: 1},
			{ID: 20, Code: models.SubRoadDamage, CategoryID: 2},
		},
		7,
	)

	cat, ok := snap.Category(1)
	require.True(t, ok)
	assert.Equal(t, models.CategoryHazard, cat.Name)

	cat, ok = snap.CategoryByName(models.CategoryInfrastructure)
	require.True(t, ok)
	assert.Equal(t, uint(2), cat.ID)

	_, ok = snap.Category(99)
	assert.False(t, ok)

	sub, ok := snap.SubCategory(10)
	require.True(t, ok)
	assert.Equal(t, models.SubFlooding, sub.Code)
	assert.Equal(t, uint(1), sub.CategoryID)

	_, ok = snap.SubCategory(11)
	assert.False(t, ok)

	assert.Equal(t, uint(7), snap.DefaultStatusID())
	id, ok := snap.StatusID(models.StatusPending)
	require.True(t, ok)
	assert.Equal(t, uint(7), id)
}

func TestCategorySubcategoriesAreComplete(t *testing.T) {
	assert.Len(t, models.CategorySubcategories[models.CategoryInfrastructure], 8)
	assert.Len(t, models.CategorySubcategories[models.CategoryHazard], 11)

	// Every category name has a subcategory list and vice versa.
	assert.ElementsMatch(t, models.CategoryNames,
		[]string{models.CategoryInfrastructure, models.CategoryHazard})
	for _, name := range models.CategoryNames {
		assert.NotEmpty(t, models.CategorySubcategories[name])
	}
}

func TestCategorySubcategoriesAreDisjoint(t *testing.T) {
	seen := map[string]string{}
	for name, codes := range models.CategorySubcategories {
		for _, code := range codes {
			if prev, dup := seen[code]; dup {
				t.Fatalf("subcategory %q appears under both %q and %q", code, prev, name)
			}
			seen[code] = name
		}
	}
}
