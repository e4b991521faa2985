package repository

import (
	"ecommerce-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	DB       database.PgxIface
	User     UserRepository
	Address  AddressRepository
	Cart     CartRepository
	Category CategoryRepository
	Product  ProductRepository
	Order    OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		DB:       db,
		User:     NewUserRepository(db, log),
		Address:  NewAddressRepository(db, log),
		Cart:     NewCartRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Product:  NewProductRepository(db, log),
		Order:    NewOrderRepository(db, log),
	}
}
