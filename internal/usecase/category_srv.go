package usecase

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/internal/dto/response"
	"ecommerce-backend/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MessageCategoryExists      = "Category is already exists!"
	MessageCategoryNotFound    = "Category is not exists!"
	MessageSubCategoryExists   = "SubCategory is already exists!"
	MessageSubCategoryNotFound = "SubCategory is not exists!"
)

type CategoryService interface {
	GetAll(ctx context.Context) ([]response.CategoryResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *request.CategoryRequest) (*response.CategoryResponse, error)
	// CreateSubCategory returns the parent category with the new
	// subcategory appended.
	CreateSubCategory(ctx context.Context, userID, categoryID uuid.UUID, req *request.SubCategoryRequest) (*response.CategoryResponse, error)
}

type categoryService struct {
	categories repository.CategoryRepository
	identity   IdentityResolver
	log        *zap.Logger
}

func NewCategoryService(
	categories repository.CategoryRepository,
	identity IdentityResolver,
	log *zap.Logger,
) CategoryService {
	return &categoryService{
		categories: categories,
		identity:   identity,
		log:        log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) GetAll(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return response.CategoriesToResponse(categories), nil
}

func (s *categoryService) Create(ctx context.Context, userID uuid.UUID, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if _, err := s.identity.Resolve(ctx, userID); err != nil {
		return nil, err
	}

	existing, err := s.categories.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if existing != nil {
		return nil, apperror.Conflict(MessageCategoryExists)
	}

	category := &entity.Category{
		Base:          entity.NewBase(),
		Name:          req.Name,
		Description:   req.Description,
		SubCategories: []entity.SubCategory{},
	}

	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict(MessageCategoryExists)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

// CreateSubCategory rejects a name used by any subcategory, whichever
// category it belongs to.
func (s *categoryService) CreateSubCategory(ctx context.Context, userID, categoryID uuid.UUID, req *request.SubCategoryRequest) (*response.CategoryResponse, error) {
	if _, err := s.identity.Resolve(ctx, userID); err != nil {
		return nil, err
	}

	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, apperror.NotFound(MessageCategoryNotFound)
	}

	existing, err := s.categories.FindSubCategoryByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check subcategory name: %w", err)
	}
	if existing != nil {
		return nil, apperror.Conflict(MessageSubCategoryExists)
	}

	sub := &entity.SubCategory{
		Base:        entity.NewBase(),
		CategoryID:  category.ID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.categories.CreateSubCategory(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict(MessageSubCategoryExists)
		}
		return nil, fmt.Errorf("create subcategory: %w", err)
	}

	s.log.Info("SubCategory created",
		zap.String("category_id", category.ID.String()),
		zap.String("subcategory_id", sub.ID.String()),
		zap.Int("position", sub.Position))

	category.SubCategories, err = s.categories.FindSubCategoriesByCategory(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("load subcategories: %w", err)
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}
