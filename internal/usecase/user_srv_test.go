package usecase

import (
	"context"
	"testing"

	"ecommerce-backend/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService(t *testing.T) {
	s := newStore()
	users := fakeUsers{s}
	svc := NewUserService(users, NewIdentityResolver(users, zap.NewNop()), fakeHasher{}, zap.NewNop())
	user := s.addUser("ann", "ann@example.com")
	ctx := context.Background()

	me, err := svc.GetMe(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", me.Email)

	updated, err := svc.UpdateProfileImage(ctx, user.ID, &request.UpdateProfileImageRequest{ImageURL: "https://img/new.png"})
	require.NoError(t, err)
	assert.Equal(t, "https://img/new.png", updated.ImageURL)
	assert.Equal(t, "https://img/new.png", s.users[user.ID].ImageURL)

	_, err = svc.ChangePassword(ctx, user.ID, &request.ChangePasswordRequest{Password: "fresh-secret"})
	require.NoError(t, err)
	assert.Equal(t, "hash:fresh-secret", s.users[user.ID].PasswordHash)
}
