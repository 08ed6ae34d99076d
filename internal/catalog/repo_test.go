package catalog

import (
	"context"
	"testing"

	"github.com/ghstudios/mhgen-catalog/pkg/db"
	"github.com/ghstudios/mhgen-catalog/pkg/db/models"
	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := db.Open(sqlite.Open("file:" + t.Name() + "?mode=memory&cache=shared"))
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return conn
}

func seedItem(t *testing.T, conn *gorm.DB, name string) models.Item {
	t.Helper()
	item := models.Item{Name: name, Type: "Weapon", Rarity: 3}
	require.NoError(t, conn.Create(&item).Error)
	return item
}

func TestListAcquisitionPathsPreservesFirstInsertionOrder(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	sword := seedItem(t, conn, "Iron Sword")
	ore := seedItem(t, conn, "Iron Ore")

	rows := []models.Component{
		{CreatedItemID: sword.ID, ComponentItemID: ore.ID, Quantity: 2, Type: "Upgrade"},
		{CreatedItemID: sword.ID, ComponentItemID: ore.ID, Quantity: 5, Type: "Create"},
		{CreatedItemID: sword.ID, ComponentItemID: ore.ID, Quantity: 1, Type: "Upgrade"},
	}
	require.NoError(t, conn.Create(&rows).Error)

	paths, err := repo.ListAcquisitionPaths(ctx, sword.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Upgrade", "Create"}, paths)

	components, err := repo.ListComponents(ctx, sword.ID, "Upgrade")
	require.NoError(t, err)
	assert.Len(t, components, 2)
}

func TestListAcquisitionPathsFallsBackToCreate(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)

	material := seedItem(t, conn, "Monster Bone S")

	paths, err := repo.ListAcquisitionPaths(context.Background(), material.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultPath}, paths)
}

func TestListAcquisitionPathsUnknownItem(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)

	for _, id := range []int64{-1, 0, 999} {
		_, err := repo.ListAcquisitionPaths(context.Background(), id)
		require.Error(t, err)
		assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.CodeOf(err), "id %d", id)
	}
}

func TestGetArmorFamilyOrdersSkills(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)

	family := models.ArmorFamily{Name: "Rathalos", Rarity: 4, MinDef: 120, MaxDef: 310}
	require.NoError(t, conn.Create(&family).Error)
	skills := []models.ArmorFamilySkill{
		{ArmorFamilyID: family.ID, Name: "Weakness Exploit", Position: 2},
		{ArmorFamilyID: family.ID, Name: "Attack Up (S)", Position: 1},
	}
	require.NoError(t, conn.Create(&skills).Error)

	got, err := repo.GetArmorFamily(context.Background(), family.ID)
	require.NoError(t, err)

	dto := FromArmorFamily(got)
	assert.Equal(t, []string{"Attack Up (S)", "Weakness Exploit"}, dto.Skills)
	assert.Equal(t, 3, dto.IconColorIndex)

	_, err = repo.GetArmorFamily(context.Background(), family.ID+100)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.CodeOf(err))
}

func TestFromArmorFamilyDefaultsRarity(t *testing.T) {
	dto := FromArmorFamily(models.ArmorFamily{ID: 1, Name: "Leather"})
	assert.Equal(t, 1, dto.Rarity)
	assert.Equal(t, 0, dto.IconColorIndex)
	assert.Empty(t, dto.Skills)
}
