package config

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"barflow-api/models"
)

var DB *gorm.DB

// ConnectDatabase opens the venue store. With DB_DSN set it talks to MySQL,
// otherwise it uses a local SQLite file (DB_PATH, default barflow.db).
// A SQLite file that cannot be opened is treated as corrupt: it is removed
// and a fresh empty store takes its place.
func ConnectDatabase() *gorm.DB {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		DB = db
		return db
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "barflow.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Printf("Store %s unreadable (%v), recreating empty", path, err)
		if rmErr := os.Remove(path); rmErr != nil {
			log.Fatal("Failed to remove corrupt store: ", rmErr)
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to create database: ", err)
		}
	}
	DB = db
	return db
}

// Migrate brings the store to the current schema. Every step is safe to
// re-run: AutoMigrate creates what is absent, the column checks skip
// anything already applied, and the occupancy repair is a plain UPDATE.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.StockMovement{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
		&models.Client{},
		&models.User{},
		&models.Setting{},
	)
	if err != nil {
		return err
	}

	// Additive migrations for stores created before these columns existed.
	ensureColumn(db, &models.Product{}, "cost_price")
	ensureColumn(db, &models.OrderItem{}, "cost_price")
	ensureColumn(db, &models.Table{}, "status")
	ensureColumn(db, &models.Table{}, "reservation_note")

	return repairTableOccupancy(db)
}

func ensureColumn(db *gorm.DB, model interface{}, column string) {
	m := db.Migrator()
	if m.HasColumn(model, column) {
		return
	}
	if err := m.AddColumn(model, column); err != nil {
		// Already applied by a concurrent path or an older schema variant.
		log.Printf("Skipping column migration %q: %v", column, err)
	}
}

// repairTableOccupancy re-derives table status from the order ledger after
// an unclean shutdown: any table named by an unpaid order must be OCCUPIED.
func repairTableOccupancy(db *gorm.DB) error {
	return db.Exec(
		"UPDATE tables SET status = ? WHERE name IN (SELECT table_name FROM orders WHERE status != ?)",
		models.TableOccupied, models.OrderPaid,
	).Error
}

// IsFresh reports whether the store has never been seeded. The currency
// setting is written by the seeder, so its absence marks a brand-new store.
func IsFresh(db *gorm.DB) bool {
	var count int64
	db.Model(&models.Setting{}).Count(&count)
	return count == 0
}
