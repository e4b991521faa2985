package usecase

import (
	"context"
	"fmt"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MessageUserNotFound = "Unauthorized!, the user does not exist"

// IdentityResolver turns the user id carried by a verified token into the
// account it names. Every protected operation resolves first and does
// nothing else when that fails.
type IdentityResolver interface {
	// Lookup reports whether the user exists. Store failures are returned as
	// errors, never as a missing user.
	Lookup(ctx context.Context, userID uuid.UUID) (entity.Identity, bool, error)
	// Resolve is Lookup with a missing user turned into apperror.ErrUnauthenticated.
	Resolve(ctx context.Context, userID uuid.UUID) (entity.Identity, error)
}

type identityResolver struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewIdentityResolver(users repository.UserRepository, log *zap.Logger) IdentityResolver {
	return &identityResolver{
		users: users,
		log:   log.With(zap.String("component", "identity")),
	}
}

func (r *identityResolver) Lookup(ctx context.Context, userID uuid.UUID) (entity.Identity, bool, error) {
	if userID == uuid.Nil {
		return entity.Identity{}, false, nil
	}

	user, err := r.users.FindByID(ctx, userID)
	if err != nil {
		return entity.Identity{}, false, fmt.Errorf("lookup identity: %w", err)
	}
	if user == nil {
		return entity.Identity{}, false, nil
	}

	return user.Identity(), true, nil
}

func (r *identityResolver) Resolve(ctx context.Context, userID uuid.UUID) (entity.Identity, error) {
	identity, ok, err := r.Lookup(ctx, userID)
	if err != nil {
		return entity.Identity{}, err
	}
	if !ok {
		r.log.Warn("Token names a missing user", zap.String("user_id", userID.String()))
		return entity.Identity{}, apperror.Unauthenticated(MessageUserNotFound)
	}
	return identity, nil
}
