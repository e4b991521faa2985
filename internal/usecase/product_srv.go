package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/internal/dto/response"
	"ecommerce-backend/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MessageProductExists       = "The Product is already exists!"
	MessageProductMissing      = "The Product is not exists!"
	MessageProductNotFound     = "The product is not found"
	MessageSubCategoryMismatch = "subCategoryId does not belong to categoryId"
)

type ProductService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.ProductRequest) (*response.ProductResponse, error)
	Update(ctx context.Context, userID, productID uuid.UUID, req *request.ProductRequest) (*response.ProductResponse, error)
	GetAll(ctx context.Context, userID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error)
	GetByID(ctx context.Context, userID, productID uuid.UUID) (*response.ProductResponse, error)
	Delete(ctx context.Context, userID, productID uuid.UUID) (*response.ProductResponse, error)
	GetByCategory(ctx context.Context, userID, categoryID uuid.UUID) ([]response.ProductResponse, error)
}

type productService struct {
	repo     *repository.Repository
	identity IdentityResolver
	log      *zap.Logger
}

func NewProductService(repo *repository.Repository, identity IdentityResolver, log *zap.Logger) ProductService {
	return &productService{
		repo:     repo,
		identity: identity,
		log:      log.With(zap.String("service", "product")),
	}
}

func (s *productService) Create(ctx context.Context, userID uuid.UUID, req *request.ProductRequest) (*response.ProductResponse, error) {
	caller, err := s.identity.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Product.FindByTitle(ctx, req.Title)
	if err != nil {
		return nil, fmt.Errorf("check product title: %w", err)
	}
	if existing != nil {
		return nil, apperror.Conflict(MessageProductExists)
	}

	categoryID, subCategoryID, err := s.checkClassification(ctx, req.CategoryID, req.SubCategoryID)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Base:          entity.NewBase(),
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Brand:         req.Brand,
		Price:         *req.Price,
		Quantity:      *req.Quantity,
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
		UserID:        caller.UserID,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict(MessageProductExists)
		}
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("title", product.Title))

	return s.expandOne(ctx, product)
}

// Update overwrites every field. A title taken by another product is a
// conflict reported by the store's unique index.
func (s *productService) Update(ctx context.Context, userID, productID uuid.UUID, req *request.ProductRequest) (*response.ProductResponse, error) {
	if _, err := s.identity.Resolve(ctx, userID); err != nil {
		return nil, err
	}

	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, apperror.NotFound(MessageProductMissing)
	}

	categoryID, subCategoryID, err := s.checkClassification(ctx, req.CategoryID, req.SubCategoryID)
	if err != nil {
		return nil, err
	}

	product.Title = req.Title
	product.Description = req.Description
	product.ImageURL = req.ImageURL
	product.Brand = req.Brand
	product.Price = *req.Price
	product.Quantity = *req.Quantity
	product.CategoryID = categoryID
	product.SubCategoryID = subCategoryID
	product.UpdatedAt = time.Now().UTC()

	err = s.repo.Product.Update(ctx, product)
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return nil, apperror.Conflict(MessageProductExists)
	case errors.Is(err, repository.ErrNotFound):
		return nil, apperror.NotFound(MessageProductMissing)
	case err != nil:
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.log.Info("Product updated", zap.String("product_id", product.ID.String()))

	return s.expandOne(ctx, product)
}

func (s *productService) GetAll(ctx context.Context, userID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error) {
	if _, err := s.identity.Resolve(ctx, userID); err != nil {
		return nil, err
	}

	products, err := s.repo.Product.FindAll(ctx, page.Offset(), page.Limit())
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	total, err := s.repo.Product.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	items, err := s.expand(ctx, products)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *productService) GetByID(ctx context.Context, userID, productID uuid.UUID) (*response.ProductResponse, error) {
	if _, err := s.identity.Resolve(ctx, userID); err != nil {
		return nil, err
	}

	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, apperror.NotFound(MessageProductNotFound)
	}

	return s.expandOne(ctx, product)
}

// Delete returns the product as it was before removal.
func (s *productService) Delete(ctx context.Context, userID, productID uuid.UUID) (*response.ProductResponse, error) {
	if _, err := s.identity.Resolve(ctx, userID); err != nil {
		return nil, err
	}

	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, apperror.NotFound(MessageProductNotFound)
	}

	resp, err := s.expandOne(ctx, product)
	if err != nil {
		return nil, err
	}

	err = s.repo.Product.Delete(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound(MessageProductNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("delete product: %w", err)
	}

	s.log.Info("Product deleted", zap.String("product_id", productID.String()))
	return resp, nil
}

func (s *productService) GetByCategory(ctx context.Context, userID, categoryID uuid.UUID) ([]response.ProductResponse, error) {
	if _, err := s.identity.Resolve(ctx, userID); err != nil {
		return nil, err
	}

	products, err := s.repo.Product.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}

	return s.expand(ctx, products)
}

// checkClassification requires both ids to exist and the subcategory to
// sit under the category.
func (s *productService) checkClassification(ctx context.Context, rawCategoryID, rawSubCategoryID string) (uuid.UUID, uuid.UUID, error) {
	categoryID, err := parseID("categoryId", rawCategoryID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	subCategoryID, err := parseID("subCategoryId", rawSubCategoryID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return uuid.Nil, uuid.Nil, apperror.NotFound(MessageCategoryNotFound)
	}

	sub, err := s.repo.Category.FindSubCategoryByID(ctx, subCategoryID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("find subcategory: %w", err)
	}
	if sub == nil {
		return uuid.Nil, uuid.Nil, apperror.NotFound(MessageSubCategoryNotFound)
	}
	if sub.CategoryID != category.ID {
		return uuid.Nil, uuid.Nil, apperror.ValidationFailed(MessageSubCategoryMismatch)
	}
	return categoryID, subCategoryID, nil
}

func (s *productService) expandOne(ctx context.Context, product *entity.Product) (*response.ProductResponse, error) {
	items, err := s.expand(ctx, []*entity.Product{product})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// expand resolves author, category and subcategory of every product with
// one query per table.
func (s *productService) expand(ctx context.Context, products []*entity.Product) ([]response.ProductResponse, error) {
	out := make([]response.ProductResponse, 0, len(products))
	if len(products) == 0 {
		return out, nil
	}

	userIDs := make([]uuid.UUID, 0, len(products))
	categoryIDs := make([]uuid.UUID, 0, len(products))
	subIDs := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		userIDs = append(userIDs, p.UserID)
		categoryIDs = append(categoryIDs, p.CategoryID)
		subIDs = append(subIDs, p.SubCategoryID)
	}

	users, err := loadUsers(ctx, s.repo.User, uniqueIDs(userIDs))
	if err != nil {
		return nil, err
	}
	categories, err := loadCategories(ctx, s.repo.Category, uniqueIDs(categoryIDs))
	if err != nil {
		return nil, err
	}
	subs, err := loadSubCategories(ctx, s.repo.Category, uniqueIDs(subIDs))
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		out = append(out, response.ProductToResponse(p, response.ProductRelations{
			User:        users[p.UserID],
			Category:    categories[p.CategoryID],
			SubCategory: subs[p.SubCategoryID],
		}))
	}
	return out, nil
}
