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

const MessageAddressNotFound = "No Address Found"

type AddressService interface {
	// Create replaces any address the caller already has.
	Create(ctx context.Context, userID uuid.UUID, req *request.AddressRequest) (*response.AddressResponse, error)
	Update(ctx context.Context, userID, addressID uuid.UUID, req *request.AddressRequest) (*response.AddressResponse, error)
	GetMine(ctx context.Context, userID uuid.UUID) (*response.AddressResponse, error)
	Delete(ctx context.Context, userID, addressID uuid.UUID) (*response.AddressResponse, error)
}

type addressService struct {
	addresses repository.AddressRepository
	identity  IdentityResolver
	log       *zap.Logger
}

func NewAddressService(addresses repository.AddressRepository, identity IdentityResolver, log *zap.Logger) AddressService {
	return &addressService{
		addresses: addresses,
		identity:  identity,
		log:       log.With(zap.String("service", "address")),
	}
}

// Create deletes the previous address and inserts the new one as two
// separate statements. A failure in between leaves the caller with none.
func (s *addressService) Create(ctx context.Context, userID uuid.UUID, req *request.AddressRequest) (*response.AddressResponse, error) {
	caller, err := s.identity.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.addresses.DeleteByUserID(ctx, caller.UserID); err != nil {
		return nil, fmt.Errorf("clear previous address: %w", err)
	}

	address := &entity.Address{
		Base:   entity.NewBase(),
		UserID: caller.UserID,
		Name:   caller.Username,
		Email:  caller.Email,
	}
	applyAddress(address, req)

	if err := s.addresses.Create(ctx, address); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}

	s.log.Info("Address saved",
		zap.String("user_id", caller.UserID.String()),
		zap.String("address_id", address.ID.String()))

	resp := response.AddressToResponse(address)
	return &resp, nil
}

func (s *addressService) Update(ctx context.Context, userID, addressID uuid.UUID, req *request.AddressRequest) (*response.AddressResponse, error) {
	caller, err := s.identity.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	address, err := s.addresses.FindByIDForUser(ctx, addressID, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("find address: %w", err)
	}
	if address == nil {
		return nil, apperror.NotFound(MessageAddressNotFound)
	}

	applyAddress(address, req)
	address.UpdatedAt = time.Now().UTC()

	err = s.addresses.Update(ctx, address)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound(MessageAddressNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update address: %w", err)
	}

	resp := response.AddressToResponse(address)
	return &resp, nil
}

func (s *addressService) GetMine(ctx context.Context, userID uuid.UUID) (*response.AddressResponse, error) {
	caller, err := s.identity.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	address, err := s.addresses.FindByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("find address: %w", err)
	}
	if address == nil {
		return nil, apperror.NotFound(MessageAddressNotFound)
	}

	resp := response.AddressToResponse(address)
	return &resp, nil
}

func (s *addressService) Delete(ctx context.Context, userID, addressID uuid.UUID) (*response.AddressResponse, error) {
	caller, err := s.identity.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	address, err := s.addresses.FindByIDForUser(ctx, addressID, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("find address: %w", err)
	}
	if address == nil {
		return nil, apperror.NotFound(MessageAddressNotFound)
	}

	err = s.addresses.Delete(ctx, addressID, caller.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound(MessageAddressNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("delete address: %w", err)
	}

	resp := response.AddressToResponse(address)
	return &resp, nil
}

func applyAddress(a *entity.Address, req *request.AddressRequest) {
	a.Mobile = req.Mobile
	a.Flat = req.Flat
	a.Landmark = req.Landmark
	a.Street = req.Street
	a.City = req.City
	a.State = req.State
	a.Country = req.Country
	a.PinCode = req.PinCode
}
