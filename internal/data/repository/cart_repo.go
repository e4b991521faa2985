package repository

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CartRepository interface {
	Create(ctx context.Context, cart *entity.Cart) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type cartRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartRepository(db database.PgxIface, log *zap.Logger) CartRepository {
	return &cartRepository{
		db:  db,
		log: log.With(zap.String("repository", "cart")),
	}
}

// Create stores the cart. Line items go into a jsonb column.
func (r *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	query := `
		INSERT INTO carts (id, user_id, products, total, tax, grand_total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		cart.ID,
		cart.UserID,
		cart.Products,
		cart.Total,
		cart.Tax,
		cart.GrandTotal,
		cart.CreatedAt,
		cart.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create cart",
			zap.Error(err),
			zap.String("user_id", cart.UserID.String()),
		)
		return fmt.Errorf("create cart: %w", mapError(err))
	}

	return nil
}

func (r *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	query := `
		SELECT id, user_id, products, total, tax, grand_total, created_at, updated_at
		FROM carts
		WHERE user_id = $1
	`

	var cart entity.Cart
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&cart.ID,
		&cart.UserID,
		&cart.Products,
		&cart.Total,
		&cart.Tax,
		&cart.GrandTotal,
		&cart.CreatedAt,
		&cart.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cart",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find cart of user %s: %w", userID.String(), err)
	}

	return &cart, nil
}

func (r *cartRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM carts WHERE user_id = $1`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		r.log.Error("Failed to clear cart",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete cart of user %s: %w", userID.String(), err)
	}

	return nil
}
