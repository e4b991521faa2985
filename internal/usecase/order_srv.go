package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/internal/dto/response"
	"ecommerce-backend/pkg/apperror"
	"ecommerce-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MessageOrderNotFound      = "No Order found"
	MessageOrderStatusUnknown = "orderStatus must be one of: placed, shipped, delivered, cancelled"
)

type OrderService interface {
	Place(ctx context.Context, userID uuid.UUID, req *request.PlaceOrderRequest) (*response.OrderResponse, error)
	GetAll(ctx context.Context, userID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	GetMine(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error)
	UpdateStatus(ctx context.Context, userID, orderID uuid.UUID, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)
}

type orderService struct {
	repo     *repository.Repository
	identity IdentityResolver
	config   utils.OrderConfig
	log      *zap.Logger
}

func NewOrderService(
	repo *repository.Repository,
	identity IdentityResolver,
	config utils.OrderConfig,
	log *zap.Logger,
) OrderService {
	return &orderService{
		repo:     repo,
		identity: identity,
		config:   config,
		log:      log.With(zap.String("service", "order")),
	}
}

// Place snapshots the line items and client totals. Product stock is not
// reserved or decremented.
func (s *orderService) Place(ctx context.Context, userID uuid.UUID, req *request.PlaceOrderRequest) (*response.OrderResponse, error) {
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

	order := &entity.Order{
		Base:        entity.NewBase(),
		OrderNumber: utils.GenerateOrderNumber(),
		UserID:      caller.UserID,
		Products:    items,
		Total:       *req.Total,
		Tax:         *req.Tax,
		GrandTotal:  *req.GrandTotal,
		PaymentType: req.PaymentType,
		OrderStatus: entity.OrderStatusPlaced,
	}

	if err := s.repo.Order.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	user, err := s.repo.User.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("expand order owner: %w", err)
	}

	resp := response.OrderToResponse(order, user, products)
	return &resp, nil
}

func (s *orderService) GetAll(ctx context.Context, userID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	if _, err := s.identity.Resolve(ctx, userID); err != nil {
		return nil, err
	}

	orders, err := s.repo.Order.FindAll(ctx, page.Offset(), page.Limit())
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	total, err := s.repo.Order.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	items, err := s.expand(ctx, orders)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *orderService) GetMine(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error) {
	caller, err := s.identity.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	orders, err := s.repo.Order.FindByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("list my orders: %w", err)
	}

	return s.expand(ctx, orders)
}

// UpdateStatus overwrites the status only; line items and totals are left
// as placed. In permissive mode any non-empty value is stored verbatim. In
// strict mode the value must be a known status reachable from the current
// one.
func (s *orderService) UpdateStatus(ctx context.Context, userID, orderID uuid.UUID, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	if _, err := s.identity.Resolve(ctx, userID); err != nil {
		return nil, err
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return nil, apperror.NotFound(MessageOrderNotFound)
	}

	next, err := s.nextStatus(order.OrderStatus, req.OrderStatus)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = s.repo.Order.UpdateStatus(ctx, order.ID, next, now)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound(MessageOrderNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	s.log.Info("Order status changed",
		zap.String("order_id", order.ID.String()),
		zap.String("from", string(order.OrderStatus)),
		zap.String("to", string(next)),
		zap.Bool("strict", s.config.StrictStatus))

	order.OrderStatus = next
	order.UpdatedAt = now

	items, err := s.expand(ctx, []*entity.Order{order})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (s *orderService) nextStatus(current entity.OrderStatus, raw string) (entity.OrderStatus, error) {
	if !s.config.StrictStatus {
		if raw == "" {
			return "", apperror.ValidationFailed("orderStatus is required")
		}
		return entity.OrderStatus(raw), nil
	}

	next := entity.OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !next.Valid() {
		return "", apperror.ValidationFailed(MessageOrderStatusUnknown)
	}
	if !current.CanTransitionTo(next) {
		return "", apperror.Conflict(fmt.Sprintf("Order status cannot change from %s to %s", current, next))
	}
	return next, nil
}

// expand resolves the owner and line item products of every order with
// one query per table.
func (s *orderService) expand(ctx context.Context, orders []*entity.Order) ([]response.OrderResponse, error) {
	out := make([]response.OrderResponse, 0, len(orders))
	if len(orders) == 0 {
		return out, nil
	}

	userIDs := make([]uuid.UUID, 0, len(orders))
	lists := make([][]entity.LineItem, 0, len(orders))
	for _, o := range orders {
		userIDs = append(userIDs, o.UserID)
		lists = append(lists, o.Products)
	}

	users, err := loadUsers(ctx, s.repo.User, uniqueIDs(userIDs))
	if err != nil {
		return nil, err
	}
	products, err := loadProducts(ctx, s.repo.Product, lineItemProductIDs(lists...))
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		out = append(out, response.OrderToResponse(o, users[o.UserID], products))
	}
	return out, nil
}
