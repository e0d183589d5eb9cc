package initializers

import (
	"log"

	"github.com/littlelemon/littlelemon-api/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Category{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	SeedGroups()
	log.Println("Database synced successfully.")
}

// SeedGroups makes sure the two role groups exist. Membership in neither
// means the user is a plain customer.
func SeedGroups() {
	for _, name := range []string{models.GroupManager, models.GroupDeliveryCrew} {
		group := models.Group{Name: name}
		if err := DB.Where("name = ?", name).FirstOrCreate(&group).Error; err != nil {
			log.Println("Failed to seed group", name, ":", err)
		}
	}
}
