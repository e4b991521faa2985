package usecase

import (
	"context"
	"fmt"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/internal/dto/response"
	"ecommerce-backend/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartService interface {
	// Create replaces any cart the caller already has.
	Create(ctx context.Context, userID uuid.UUID, req *request.CartRequest) (*response.CartResponse, error)
	// GetMine returns nil when the caller has no cart.
	GetMine(ctx context.Context, userID uuid.UUID) (*response.CartResponse, error)
}

type cartService struct {
	repo     *repository.Repository
	identity IdentityResolver
	log      *zap.Logger
}

func NewCartService(repo *repository.Repository, identity IdentityResolver, log *zap.Logger) CartService {
	return &cartService{
		repo:     repo,
		identity: identity,
		log:      log.With(zap.String("service", "cart")),
	}
}

// Create stores the cart as sent. Totals are not recomputed. The previous
// cart is deleted first in a separate statement.
func (s *cartService) Create(ctx context.Context, userID uuid.UUID, req *request.CartRequest) (*response.CartResponse, error) {
	caller, err := s.identity.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := toLineItems(req.Products)
	if err != nil {
		return nil, err
	}

	products, err := requireProducts(ctx, s.repo.Product, items)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Cart.DeleteByUserID(ctx, caller.UserID); err != nil {
		return nil, fmt.Errorf("clear previous cart: %w", err)
	}

	cart := &entity.Cart{
		Base:       entity.NewBase(),
		UserID:     caller.UserID,
		Products:   items,
		Total:      *req.Total,
		Tax:        *req.Tax,
		GrandTotal: *req.GrandTotal,
	}

	if err := s.repo.Cart.Create(ctx, cart); err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}

	s.log.Info("Cart saved",
		zap.String("user_id", caller.UserID.String()),
		zap.Int("items", len(items)))

	user, err := s.repo.User.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("expand cart owner: %w", err)
	}

	resp := response.CartToResponse(cart, user, products)
	return &resp, nil
}

func (s *cartService) GetMine(ctx context.Context, userID uuid.UUID) (*response.CartResponse, error) {
	caller, err := s.identity.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart, err := s.repo.Cart.FindByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("find cart: %w", err)
	}
	if cart == nil {
		return nil, nil
	}

	products, err := loadProducts(ctx, s.repo.Product, entity.ProductIDs(cart.Products))
	if err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("expand cart owner: %w", err)
	}

	resp := response.CartToResponse(cart, user, products)
	return &resp, nil
}

func toLineItems(reqs []request.LineItemRequest) ([]entity.LineItem, error) {
	items := make([]entity.LineItem, 0, len(reqs))
	for i, r := range reqs {
		id, err := parseID(fmt.Sprintf("products[%d].product", i), r.Product)
		if err != nil {
			return nil, err
		}

		price := 0.0
		if r.Price != nil {
			price = *r.Price
		}
		items = append(items, entity.LineItem{ProductID: id, Count: r.Count, Price: price})
	}
	return items, nil
}

// requireProducts loads every product the items reference and fails with
// NotFound when one of them does not exist.
func requireProducts(ctx context.Context, products repository.ProductRepository, items []entity.LineItem) (map[uuid.UUID]*entity.Product, error) {
	ids := entity.ProductIDs(items)

	found, err := loadProducts(ctx, products, ids)
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, apperror.NotFound(MessageProductNotFound)
		}
	}
	return found, nil
}
