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
	"ecommerce-backend/pkg/utils"

	"go.uber.org/zap"
)

const (
	MessageUserExists      = "User Already exists"
	MessageInvalidEmail    = "Invalid Credentials Email"
	MessageInvalidPassword = "Invalid Credentials Password"
	MessagePasswordTooLong = "password must be at most 72 bytes"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	users  repository.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	log    *zap.Logger
}

func NewAuthService(
	users repository.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	log *zap.Logger,
) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Register creates an account with a gravatar profile image. An email that
// is already registered is a conflict and nothing is written.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		s.log.Info("Register with taken email", zap.String("email", email))
		return nil, apperror.Conflict(MessageUserExists)
	}

	hash, err := s.hasher.Hash(req.Password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return nil, apperror.ValidationFailed(MessagePasswordTooLong)
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Base:         entity.NewBase(),
		Username:     req.Username,
		Email:        email,
		PasswordHash: hash,
		ImageURL:     utils.GravatarURL(email),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict(MessageUserExists)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// Login issues a token once the password matches the stored hash. Unknown
// email and wrong password are both unauthenticated with different messages.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Info("Login with unknown email")
		return nil, apperror.Unauthenticated(MessageInvalidEmail)
	}

	if !s.hasher.Verify(user.PasswordHash, req.Password) {
		s.log.Warn("Login with wrong password", zap.String("user_id", user.ID.String()))
		return nil, apperror.Unauthenticated(MessageInvalidPassword)
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	resp := response.AuthToResponse(user, token, expiresAt)
	return &resp, nil
}
