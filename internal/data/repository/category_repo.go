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

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Category, error)
	// FindAll returns every category with its subcategories in position order.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	CreateSubCategory(ctx context.Context, sub *entity.SubCategory) error
	FindSubCategoryByID(ctx context.Context, id uuid.UUID) (*entity.SubCategory, error)
	FindSubCategoryByName(ctx context.Context, name string) (*entity.SubCategory, error)
	FindSubCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.SubCategory, error)
	FindSubCategoriesByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.SubCategory, error)
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

const (
	categoryColumns    = `id, name, description, created_at, updated_at`
	subCategoryColumns = `id, category_id, name, description, position, created_at, updated_at`
)

func scanCategory(row rowScanner) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanSubCategory(row rowScanner) (*entity.SubCategory, error) {
	var s entity.SubCategory
	err := row.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Description, &s.Position, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Description,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		err = mapError(err)
		if !errors.Is(err, ErrDuplicate) {
			r.log.Error("Failed to create category", zap.Error(err), zap.String("name", category.Name))
		}
		return fmt.Errorf("create category %s: %w", category.Name, err)
	}

	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	category, err := scanCategory(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by ID", zap.Error(err), zap.String("category_id", id.String()))
		return nil, fmt.Errorf("find category by ID %s: %w", id.String(), err)
	}

	return category, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1`

	category, err := scanCategory(r.db.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("find category by name %s: %w", name, err)
	}

	return category, nil
}

func (r *categoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = ANY($1)`
	return r.queryCategories(ctx, query, ids)
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	categories, err := r.queryCategories(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY created_at, name`)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return categories, nil
	}

	subs, err := r.querySubCategories(ctx,
		`SELECT `+subCategoryColumns+` FROM subcategories ORDER BY category_id, position`)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, c := range categories {
		c.SubCategories = []entity.SubCategory{}
		byCategory[c.ID] = c
	}
	for _, s := range subs {
		if c, ok := byCategory[s.CategoryID]; ok {
			c.SubCategories = append(c.SubCategories, *s)
		}
	}

	return categories, nil
}

// CreateSubCategory appends sub to the end of its category. Position is
// assigned by the insert and written back to sub. A taken name yields
// ErrDuplicate regardless of the parent category.
func (r *categoryRepository) CreateSubCategory(ctx context.Context, sub *entity.SubCategory) error {
	query := `
		INSERT INTO subcategories (id, category_id, name, description, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4,
		        (SELECT COALESCE(MAX(position), -1) + 1 FROM subcategories WHERE category_id = $2),
		        $5, $6)
		RETURNING position
	`

	err := r.db.QueryRow(ctx, query,
		sub.ID,
		sub.CategoryID,
		sub.Name,
		sub.Description,
		sub.CreatedAt,
		sub.UpdatedAt,
	).Scan(&sub.Position)
	if err != nil {
		err = mapError(err)
		if !errors.Is(err, ErrDuplicate) {
			r.log.Error("Failed to create subcategory",
				zap.Error(err),
				zap.String("category_id", sub.CategoryID.String()),
				zap.String("name", sub.Name),
			)
		}
		return fmt.Errorf("create subcategory %s: %w", sub.Name, err)
	}

	return nil
}

func (r *categoryRepository) FindSubCategoryByID(ctx context.Context, id uuid.UUID) (*entity.SubCategory, error) {
	query := `SELECT ` + subCategoryColumns + ` FROM subcategories WHERE id = $1`

	sub, err := scanSubCategory(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find subcategory by ID", zap.Error(err), zap.String("subcategory_id", id.String()))
		return nil, fmt.Errorf("find subcategory by ID %s: %w", id.String(), err)
	}

	return sub, nil
}

func (r *categoryRepository) FindSubCategoryByName(ctx context.Context, name string) (*entity.SubCategory, error) {
	query := `SELECT ` + subCategoryColumns + ` FROM subcategories WHERE name = $1`

	sub, err := scanSubCategory(r.db.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find subcategory by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("find subcategory by name %s: %w", name, err)
	}

	return sub, nil
}

func (r *categoryRepository) FindSubCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.SubCategory, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + subCategoryColumns + ` FROM subcategories WHERE id = ANY($1)`
	return r.querySubCategories(ctx, query, ids)
}

func (r *categoryRepository) FindSubCategoriesByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.SubCategory, error) {
	query := `SELECT ` + subCategoryColumns + ` FROM subcategories WHERE category_id = $1 ORDER BY position`

	subs, err := r.querySubCategories(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}

	out := make([]entity.SubCategory, 0, len(subs))
	for _, s := range subs {
		out = append(out, *s)
	}
	return out, nil
}

func (r *categoryRepository) queryCategories(ctx context.Context, query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query categories", zap.Error(err))
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []*entity.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) querySubCategories(ctx context.Context, query string, args ...any) ([]*entity.SubCategory, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query subcategories", zap.Error(err))
		return nil, fmt.Errorf("query subcategories: %w", err)
	}
	defer rows.Close()

	var subs []*entity.SubCategory
	for rows.Next() {
		s, err := scanSubCategory(rows)
		if err != nil {
			r.log.Error("Failed to scan subcategory row", zap.Error(err))
			return nil, fmt.Errorf("scan subcategory row: %w", err)
		}
		subs = append(subs, s)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate subcategory rows: %w", err)
	}

	return subs, nil
}
