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

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindByTitle(ctx context.Context, title string) (*entity.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Product, error)
	CountAll(ctx context.Context) (int64, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productColumns = `id, title, description, image_url, brand, price, quantity,
	category_id, subcategory_id, user_id, created_at, updated_at`

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.ImageURL,
		&p.Brand,
		&p.Price,
		&p.Quantity,
		&p.CategoryID,
		&p.SubCategoryID,
		&p.UserID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, title, description, image_url, brand, price, quantity,
		                      category_id, subcategory_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.Title,
		product.Description,
		product.ImageURL,
		product.Brand,
		product.Price,
		product.Quantity,
		product.CategoryID,
		product.SubCategoryID,
		product.UserID,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		err = mapError(err)
		if !errors.Is(err, ErrDuplicate) {
			r.log.Error("Failed to create product", zap.Error(err), zap.String("title", product.Title))
		}
		return fmt.Errorf("create product %s: %w", product.Title, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID", zap.Error(err), zap.String("product_id", id.String()))
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return product, nil
}

func (r *productRepository) FindByTitle(ctx context.Context, title string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE title = $1`

	product, err := scanProduct(r.db.QueryRow(ctx, query, title))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by title", zap.Error(err), zap.String("title", title))
		return nil, fmt.Errorf("find product by title %s: %w", title, err)
	}

	return product, nil
}

func (r *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`
	return r.queryProducts(ctx, query, ids)
}

// FindAll retrieves a page of products, newest first
func (r *productRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	return r.queryProducts(ctx, query, limit, offset)
}

func (r *productRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		r.log.Error("Database error counting products", zap.Error(err))
		return 0, fmt.Errorf("count all products: %w", err)
	}
	return count, nil
}

func (r *productRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category_id = $1
		ORDER BY created_at DESC
	`
	return r.queryProducts(ctx, query, categoryID)
}

// Update overwrites every editable column. Renaming onto a taken title
// yields ErrDuplicate.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET title = $2, description = $3, image_url = $4, brand = $5, price = $6,
		    quantity = $7, category_id = $8, subcategory_id = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Title,
		product.Description,
		product.ImageURL,
		product.Brand,
		product.Price,
		product.Quantity,
		product.CategoryID,
		product.SubCategoryID,
		product.UpdatedAt,
	)
	if err != nil {
		err = mapError(err)
		if !errors.Is(err, ErrDuplicate) {
			r.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", product.ID.String()))
		}
		return fmt.Errorf("update product %s: %w", product.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update product %s: %w", product.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", id.String()))
		return fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete product %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query products", zap.Error(err))
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []*entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}
