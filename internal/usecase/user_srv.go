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
	"ecommerce-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfileImage(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileImageRequest) (*response.UserResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) (*response.UserResponse, error)
}

type userService struct {
	users    repository.UserRepository
	identity IdentityResolver
	hasher   PasswordHasher
	log      *zap.Logger
}

func NewUserService(
	users repository.UserRepository,
	identity IdentityResolver,
	hasher PasswordHasher,
	log *zap.Logger,
) UserService {
	return &userService{
		users:    users,
		identity: identity,
		hasher:   hasher,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetMe(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := us.loadCaller(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) UpdateProfileImage(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileImageRequest) (*response.UserResponse, error) {
	user, err := us.loadCaller(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.ImageURL = req.ImageURL
	user.UpdatedAt = time.Now().UTC()

	if err := us.save(ctx, user); err != nil {
		return nil, err
	}

	us.log.Info("Profile image updated", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) (*response.UserResponse, error) {
	user, err := us.loadCaller(ctx, userID)
	if err != nil {
		return nil, err
	}

	hash, err := us.hasher.Hash(req.Password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return nil, apperror.ValidationFailed(MessagePasswordTooLong)
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()

	if err := us.save(ctx, user); err != nil {
		return nil, err
	}

	us.log.Info("Password changed", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// loadCaller resolves the identity and then loads the full row for mutation.
func (us *userService) loadCaller(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	if _, err := us.identity.Resolve(ctx, userID); err != nil {
		return nil, err
	}

	user, err := us.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, apperror.Unauthenticated(MessageUserNotFound)
	}
	return user, nil
}

func (us *userService) save(ctx context.Context, user *entity.User) error {
	err := us.users.Update(ctx, user)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.Unauthenticated(MessageUserNotFound)
	}
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
