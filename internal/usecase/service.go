package usecase

import (
	"time"

	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PasswordHasher is satisfied by *utils.PasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// TokenIssuer is satisfied by *utils.TokenManager.
type TokenIssuer interface {
	Issue(userID uuid.UUID, email string) (string, time.Time, error)
}

type Service struct {
	Identity IdentityResolver
	Auth     AuthService
	User     UserService
	Category CategoryService
	Product  ProductService
	Address  AddressService
	Cart     CartService
	Order    OrderService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	hasher PasswordHasher,
	tokens TokenIssuer,
	log *zap.Logger,
) *Service {
	identity := NewIdentityResolver(repo.User, log)

	return &Service{
		Identity: identity,
		Auth:     NewAuthService(repo.User, hasher, tokens, log),
		User:     NewUserService(repo.User, identity, hasher, log),
		Category: NewCategoryService(repo.Category, identity, log),
		Product:  NewProductService(repo, identity, log),
		Address:  NewAddressService(repo.Address, identity, log),
		Cart:     NewCartService(repo, identity, log),
		Order:    NewOrderService(repo, identity, config.Order, log),
	}
}
