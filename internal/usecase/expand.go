package usecase

import (
	"context"
	"fmt"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/pkg/apperror"
	"ecommerce-backend/pkg/utils"

	"github.com/google/uuid"
)

// Read-side expansion: foreign keys on a page of rows are resolved with one
// batched query per referenced table after the primary query.

func loadUsers(ctx context.Context, users repository.UserRepository, ids []uuid.UUID) (map[uuid.UUID]*entity.User, error) {
	found, err := users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("expand users: %w", err)
	}

	out := make(map[uuid.UUID]*entity.User, len(found))
	for _, u := range found {
		out[u.ID] = u
	}
	return out, nil
}

func loadProducts(ctx context.Context, products repository.ProductRepository, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	found, err := products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("expand products: %w", err)
	}

	out := make(map[uuid.UUID]*entity.Product, len(found))
	for _, p := range found {
		out[p.ID] = p
	}
	return out, nil
}

func loadCategories(ctx context.Context, categories repository.CategoryRepository, ids []uuid.UUID) (map[uuid.UUID]*entity.Category, error) {
	found, err := categories.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("expand categories: %w", err)
	}

	out := make(map[uuid.UUID]*entity.Category, len(found))
	for _, c := range found {
		out[c.ID] = c
	}
	return out, nil
}

func loadSubCategories(ctx context.Context, categories repository.CategoryRepository, ids []uuid.UUID) (map[uuid.UUID]*entity.SubCategory, error) {
	found, err := categories.FindSubCategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("expand subcategories: %w", err)
	}

	out := make(map[uuid.UUID]*entity.SubCategory, len(found))
	for _, s := range found {
		out[s.ID] = s
	}
	return out, nil
}

// lineItemProductIDs collects the distinct product ids across many item lists.
func lineItemProductIDs(lists ...[]entity.LineItem) []uuid.UUID {
	var all []entity.LineItem
	for _, items := range lists {
		all = append(all, items...)
	}
	return entity.ProductIDs(all)
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// parseID reads an id from a request body field.
func parseID(field, raw string) (uuid.UUID, error) {
	id, err := utils.ParseUUID(raw)
	if err != nil {
		return uuid.Nil, apperror.ValidationFailed(field + " must be a valid id")
	}
	return id, nil
}
