package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockService.MockPasswordHasher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	service := NewProfileService(ProfileServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Logger:   newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := activeUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProfileService_UpdateProfile_PhoneChangeResetsVerification(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := activeUser()
	user.PhoneVerified = true
	newPhone := "9123456780"

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{Phone: &newPhone})

	require.NoError(t, err)
	assert.Equal(t, newPhone, updated.Phone)
	assert.False(t, updated.PhoneVerified)
}

func TestProfileService_UpdateProfile_SamePhoneKeepsVerification(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := activeUser()
	user.PhoneVerified = true
	samePhone := user.Phone
	newName := "Asha K"

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		Name:  &newName,
		Phone: &samePhone,
	})

	require.NoError(t, err)
	assert.Equal(t, "Asha K", updated.Name)
	assert.True(t, updated.PhoneVerified)
}

func TestProfileService_ChangePassword_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := activeUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("old-pass", "$2a$12$hash").Return(true)
	fx.hasher.EXPECT().Hash("new-pass").Return("new-hash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, u *entity.User) {
			assert.Equal(t, "new-hash", u.PasswordHash)
		}).
		Return(nil)

	err := fx.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{
		CurrentPassword: "old-pass",
		NewPassword:     "new-pass",
	})

	assert.NoError(t, err)
}

func TestProfileService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := activeUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "$2a$12$hash").Return(false)

	err := fx.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "new-pass",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
