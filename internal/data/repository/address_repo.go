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

type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Address, error)
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Address, error)
	Update(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type addressRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAddressRepository(db database.PgxIface, log *zap.Logger) AddressRepository {
	return &addressRepository{
		db:  db,
		log: log.With(zap.String("repository", "address")),
	}
}

const addressColumns = `id, user_id, name, email, mobile, flat, landmark, street,
	city, state, country, pin_code, created_at, updated_at`

func scanAddress(row rowScanner) (*entity.Address, error) {
	var a entity.Address
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Name,
		&a.Email,
		&a.Mobile,
		&a.Flat,
		&a.Landmark,
		&a.Street,
		&a.City,
		&a.State,
		&a.Country,
		&a.PinCode,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	query := `
		INSERT INTO addresses (id, user_id, name, email, mobile, flat, landmark, street,
		                       city, state, country, pin_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		address.ID,
		address.UserID,
		address.Name,
		address.Email,
		address.Mobile,
		address.Flat,
		address.Landmark,
		address.Street,
		address.City,
		address.State,
		address.Country,
		address.PinCode,
		address.CreatedAt,
		address.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create address",
			zap.Error(err),
			zap.String("user_id", address.UserID.String()),
		)
		return fmt.Errorf("create address: %w", mapError(err))
	}

	return nil
}

func (r *addressRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1`

	address, err := scanAddress(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find address by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find address by user %s: %w", userID.String(), err)
	}

	return address, nil
}

// FindByIDForUser only matches an address owned by userID.
func (r *addressRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1 AND user_id = $2`

	address, err := scanAddress(r.db.QueryRow(ctx, query, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find address",
			zap.Error(err),
			zap.String("address_id", id.String()),
		)
		return nil, fmt.Errorf("find address %s: %w", id.String(), err)
	}

	return address, nil
}

func (r *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	query := `
		UPDATE addresses
		SET mobile = $3, flat = $4, landmark = $5, street = $6, city = $7,
		    state = $8, country = $9, pin_code = $10, updated_at = $11
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.Exec(ctx, query,
		address.ID,
		address.UserID,
		address.Mobile,
		address.Flat,
		address.Landmark,
		address.Street,
		address.City,
		address.State,
		address.Country,
		address.PinCode,
		address.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update address",
			zap.Error(err),
			zap.String("address_id", address.ID.String()),
		)
		return fmt.Errorf("update address %s: %w", address.ID.String(), mapError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update address %s: %w", address.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *addressRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM addresses WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to delete address",
			zap.Error(err),
			zap.String("address_id", id.String()),
		)
		return fmt.Errorf("delete address %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete address %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Address deleted", zap.String("address_id", id.String()))
	return nil
}

// DeleteByUserID clears the user's address, if any.
func (r *addressRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM addresses WHERE user_id = $1`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		r.log.Error("Failed to clear address",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete address of user %s: %w", userID.String(), err)
	}

	return nil
}
