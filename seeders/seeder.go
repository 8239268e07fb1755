package seeders

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"barflow-api/models"
)

// helper untuk pointer string
func ptrString(s string) *string {
	return &s
}

// Seed writes the default catalog, floor plan, staff and currency into an
// empty store. Every insert is FirstOrCreate so re-running is harmless.
func Seed(db *gorm.DB) {
	// ============= Seed Categories =============
	categories := []models.Category{
		{Name: "Cocktails", Icon: "Martini"},
		{Name: "Bières", Icon: "Beer"},
		{Name: "Vins", Icon: "Wine"},
		{Name: "Softs", Icon: "GlassWater"},
		{Name: "Snacks", Icon: "Utensils"},
	}
	for _, category := range categories {
		db.FirstOrCreate(&category, models.Category{Name: category.Name})
	}

	// ============= Seed Products =============
	products := []models.Product{
		{Name: "Mojito", Price: 10, CostPrice: 3, Stock: 50, AlertThreshold: 10, Category: "Cocktails", IsAvailable: true, Description: ptrString("Menthe fraîche, citron vert, rhum blanc, soda.")},
		{Name: "Old Fashioned", Price: 12, CostPrice: 4, Stock: 40, AlertThreshold: 10, Category: "Cocktails", IsAvailable: true, Description: ptrString("Bourbon, angostura bitters, sucre.")},
		{Name: "Pinte Blonde", Price: 7, CostPrice: 2, Stock: 100, AlertThreshold: 10, Category: "Bières", IsAvailable: true, Description: ptrString("Lager légère et rafraîchissante.")},
		{Name: "IPA Artisanale", Price: 9, CostPrice: 3, Stock: 80, AlertThreshold: 10, Category: "Bières", IsAvailable: true, Description: ptrString("Notes agrumes et amertume prononcée.")},
		{Name: "Chardonnay", Price: 8, CostPrice: 3, Stock: 60, AlertThreshold: 10, Category: "Vins", IsAvailable: true, Description: ptrString("Vin blanc sec et fruité.")},
		{Name: "Coca Cola", Price: 4, CostPrice: 1, Stock: 120, AlertThreshold: 10, Category: "Softs", IsAvailable: true},
		{Name: "Nachos", Price: 12, CostPrice: 4, Stock: 30, AlertThreshold: 5, Category: "Snacks", IsAvailable: true, Description: ptrString("Guacamole, salsa, fromage fondu.")},
		{Name: "Planche Mixte", Price: 18, CostPrice: 8, Stock: 20, AlertThreshold: 5, Category: "Snacks", IsAvailable: true, Description: ptrString("Charcuteries et fromages affinés.")},
		{Name: "Espresso Martini", Price: 13, CostPrice: 5, Stock: 35, AlertThreshold: 10, Category: "Cocktails", IsAvailable: true, Description: ptrString("Vodka, liqueur de café, espresso frais.")},
		{Name: "Jus d'Orange", Price: 5, CostPrice: 1.5, Stock: 60, AlertThreshold: 10, Category: "Softs", IsAvailable: true},
	}
	for _, product := range products {
		db.FirstOrCreate(&product, models.Product{Name: product.Name})
	}

	// ============= Seed Tables =============
	tables := []models.Table{
		{Name: "S1", Zone: "Salle", Status: models.TableFree},
		{Name: "S2", Zone: "Salle", Status: models.TableFree},
		{Name: "T1", Zone: "Terrasse", Status: models.TableFree},
		{Name: "Bar 1", Zone: "Bar", Status: models.TableFree},
		{Name: "VIP A", Zone: "VIP", Status: models.TableFree},
	}
	for _, table := range tables {
		db.FirstOrCreate(&table, models.Table{Name: table.Name})
	}

	// ============= Seed Staff =============
	staff := []struct {
		Name string
		Role string
		PIN  string
	}{
		{Name: "Direction", Role: models.RoleAdmin, PIN: "0000"},
		{Name: "Barman", Role: models.RoleBartender, PIN: "1234"},
		{Name: "Serveur", Role: models.RoleServer, PIN: "5678"},
	}
	for _, member := range staff {
		hash, err := bcrypt.GenerateFromPassword([]byte(member.PIN), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Skipping staff seed %q: %v", member.Name, err)
			continue
		}
		user := models.User{Name: member.Name, Role: member.Role, PIN: string(hash)}
		db.FirstOrCreate(&user, models.User{Name: user.Name})
	}

	// ============= Default Settings =============
	currency := models.Setting{Key: "currency", Value: "€"}
	db.FirstOrCreate(&currency, models.Setting{Key: "currency"})
}
