package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"barflow-api/config"
	"barflow-api/models"
)

var testDBSeq int64

// openTestDB gives each test its own in-memory store at the current schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, name string, price, cost float64, stock, threshold int) *models.Product {
	t.Helper()
	product := models.Product{
		Name:           name,
		Price:          price,
		CostPrice:      cost,
		Stock:          stock,
		AlertThreshold: threshold,
		Category:       "Cocktails",
		IsAvailable:    true,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func createTable(t *testing.T, db *gorm.DB, name string) *models.Table {
	t.Helper()
	table := models.Table{Name: name, Zone: "Salle", Status: models.TableFree}
	require.NoError(t, db.Create(&table).Error)
	return &table
}

func createClient(t *testing.T, db *gorm.DB, name string) *models.Client {
	t.Helper()
	client := models.Client{Name: name}
	require.NoError(t, db.Create(&client).Error)
	return &client
}

func tableStatus(t *testing.T, db *gorm.DB, name string) string {
	t.Helper()
	var table models.Table
	require.NoError(t, db.Where("name = ?", name).First(&table).Error)
	return table.Status
}

func reloadClient(t *testing.T, db *gorm.DB, id uint) *models.Client {
	t.Helper()
	var client models.Client
	require.NoError(t, db.First(&client, id).Error)
	return &client
}

func reloadProduct(t *testing.T, db *gorm.DB, id uint) *models.Product {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, id).Error)
	return &product
}
