package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	t           *testing.T
	service     usecase.AddressUsecase
	txManager   *mockRepo.MockTransactionManager
	addressRepo *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(AddressServiceParams{
		TxManager:   txManager,
		AddressRepo: addressRepo,
		Logger:      newDiscardLogger(),
	})

	return addressServiceFixtures{
		t:           t,
		service:     service,
		txManager:   txManager,
		addressRepo: addressRepo,
	}
}

// onExecute stubs the transaction manager: the transaction function runs
// against a factory prepared by setup, and Execute returns result.
func (f addressServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func TestAddressService_CreateAddress_Default_ClearsSiblings(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateAddressInput{
		Label:     "Home",
		Line1:     "12 MG Road",
		City:      "Bengaluru",
		State:     "Karnataka",
		Pincode:   "560001",
		Phone:     "9876543210",
		IsDefault: true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(addressRepo)
		addressRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Address")).
			Run(func(ctx context.Context, address *entity.Address) {
				address.ID = uuid.New()
			}).
			Return(nil)
		addressRepo.EXPECT().
			ClearDefaultExcept(ctx, userID, mock.AnythingOfType("uuid.UUID")).
			Return(nil)
	})

	address, err := fx.service.CreateAddress(ctx, userID, input)

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	assert.Equal(t, userID, address.UserID)
}

func TestAddressService_CreateAddress_NonDefault_SkipsClear(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateAddressInput{
		Label:   "Office",
		Line1:   "4 Residency Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560025",
		Phone:   "9876543210",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(addressRepo)
		// No ClearDefaultExcept expectation: calling it would fail the test.
		addressRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Address")).
			Return(nil)
	})

	address, err := fx.service.CreateAddress(ctx, userID, input)

	require.NoError(t, err)
	assert.False(t, address.IsDefault)
}

func TestAddressService_SetDefaultAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(addressRepo)
		addressRepo.EXPECT().FindByID(ctx, userID, addressID).Return(&entity.Address{ID: addressID, UserID: userID}, nil)
		addressRepo.EXPECT().ClearDefaultExcept(ctx, userID, addressID).Return(nil)
		addressRepo.EXPECT().SetDefault(ctx, userID, addressID).Return(nil)
	})

	err := fx.service.SetDefaultAddress(ctx, userID, addressID)

	require.NoError(t, err)
}

func TestAddressService_SetDefaultAddress_NotFound_LeavesCurrentDefault(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	fx.onExecute(ctx, repository.ErrAddressNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(addressRepo)
		// The existence check fails before any flag is touched.
		addressRepo.EXPECT().FindByID(ctx, userID, addressID).Return(nil, repository.ErrAddressNotFound)
	})

	err := fx.service.SetDefaultAddress(ctx, userID, addressID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAddressService_UpdateAddress_PartialUpdate(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	newCity := "Mysuru"
	input := &usecase.UpdateAddressInput{City: &newCity}

	existing := &entity.Address{
		ID:      addressID,
		UserID:  userID,
		Label:   "Home",
		Line1:   "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
	}

	fx.addressRepo.EXPECT().FindByID(ctx, userID, addressID).Return(existing, nil)
	fx.addressRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

	address, err := fx.service.UpdateAddress(ctx, userID, addressID, input)

	require.NoError(t, err)
	assert.Equal(t, "Mysuru", address.City)
	assert.Equal(t, "Home", address.Label)
	assert.Equal(t, "560001", address.Pincode)
}

func TestAddressService_UpdateAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	fx.addressRepo.EXPECT().FindByID(ctx, userID, addressID).Return(nil, repository.ErrAddressNotFound)

	_, err := fx.service.UpdateAddress(ctx, userID, addressID, &usecase.UpdateAddressInput{})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAddressService_DeleteAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	fx.addressRepo.EXPECT().Delete(ctx, userID, addressID).Return(repository.ErrAddressNotFound)

	err := fx.service.DeleteAddress(ctx, userID, addressID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAddressService_ListAddresses(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Address{{ID: uuid.New(), UserID: userID, IsDefault: true}}

	fx.addressRepo.EXPECT().FindByUser(ctx, userID).Return(expected, nil)

	addresses, err := fx.service.ListAddresses(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, addresses)
}
