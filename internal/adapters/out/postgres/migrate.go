package postgres

import (
	"martdelivery/internal/adapters/out/postgres/martrepo"
	"martdelivery/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables of the store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&martrepo.MartDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.HistoryDTO{},
	)
}
