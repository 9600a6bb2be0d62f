package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

// ListAddresses returns the user's addresses, default first.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// CreateAddress adds a shipping address. When the new address is marked
// default, sibling flags are cleared in the same transaction.
func (srv *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.CreateAddressInput) (*entity.Address, error) {
	address := &entity.Address{
		UserID:    userID,
		Label:     input.Label,
		Line1:     input.Line1,
		Line2:     input.Line2,
		City:      input.City,
		State:     input.State,
		Pincode:   input.Pincode,
		Phone:     input.Phone,
		IsDefault: input.IsDefault,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		if err := addressRepo.Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		if address.IsDefault {
			if err := addressRepo.ClearDefaultExcept(ctx, userID, address.ID); err != nil {
				return errors.Wrap(err, "failed to clear sibling defaults")
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute address creation transaction")
	}

	return address, nil
}

// UpdateAddress applies the supplied fields and leaves the rest alone.
// The default flag is only changed through SetDefaultAddress.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	address, err := srv.addressRepo.FindByID(ctx, userID, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Address not found")
		}

		return nil, errors.Wrap(err, "failed to load address")
	}

	if input.Label != nil {
		address.Label = *input.Label
	}
	if input.Line1 != nil {
		address.Line1 = *input.Line1
	}
	if input.Line2 != nil {
		address.Line2 = *input.Line2
	}
	if input.City != nil {
		address.City = *input.City
	}
	if input.State != nil {
		address.State = *input.State
	}
	if input.Pincode != nil {
		address.Pincode = *input.Pincode
	}
	if input.Phone != nil {
		address.Phone = *input.Phone
	}

	if err := srv.addressRepo.Update(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	return address, nil
}

// DeleteAddress removes an address owned by the user.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	if err := srv.addressRepo.Delete(ctx, userID, addressID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrNotFound.WithMessage("Address not found")
		}

		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

// SetDefaultAddress makes the address the user's single default. The
// existence check runs first, so an unknown address leaves the current
// default untouched.
func (srv *addressService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		if _, err := addressRepo.FindByID(ctx, userID, addressID); err != nil {
			return err
		}

		if err := addressRepo.ClearDefaultExcept(ctx, userID, addressID); err != nil {
			return errors.Wrap(err, "failed to clear sibling defaults")
		}

		return addressRepo.SetDefault(ctx, userID, addressID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrNotFound.WithMessage("Address not found")
		}

		return errors.Wrap(err, "failed to execute default address transaction")
	}

	srv.logger.Debug("Default address changed", slog.Any("userID", userID), slog.Any("addressID", addressID))

	return nil
}
