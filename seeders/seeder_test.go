package seeders

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"barflow-api/config"
	"barflow-api/models"
)

func TestSeedIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	Seed(db)
	Seed(db)

	counts := map[interface{}]int64{
		&models.Category{}: 5,
		&models.Product{}:  10,
		&models.Table{}:    5,
		&models.User{}:     3,
		&models.Setting{}:  1,
	}
	for model, want := range counts {
		var got int64
		db.Model(model).Count(&got)
		require.EqualValues(t, want, got)
	}

	var mojito models.Product
	require.NoError(t, db.Where("name = ?", "Mojito").First(&mojito).Error)
	require.Equal(t, 50, mojito.Stock)
	require.Equal(t, 10, mojito.AlertThreshold)
}
