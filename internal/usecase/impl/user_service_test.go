package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	settingsRepo *mockRepo.MockSettingsRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	smsSender    *mockService.MockSMSSender
	mailer       *mockService.MockMailer
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	smsSender := mockService.NewMockSMSSender(t)
	mailer := mockService.NewMockMailer(t)
	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		SettingsRepo: settingsRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		SMSSender:    smsSender,
		Mailer:       mailer,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		hasher:       hasher,
		tokenService: tokenService,
		smsSender:    smsSender,
		mailer:       mailer,
	}
}

func activeUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "asha@example.com",
		Name:         "Asha",
		Phone:        "9876543210",
		PasswordHash: "$2a$12$hash",
		Role:         entity.RoleCustomer,
		Status:       entity.UserStatusActive,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Password: "s3cret-pass",
	}

	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "hashed", output.User.PasswordHash)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
	assert.Equal(t, entity.UserStatusActive, output.User.Status)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("s3cret-pass", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"customer"}).Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_DisabledAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()
	user.Status = entity.UserStatusDisabled

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("s3cret-pass", user.PasswordHash).Return(true)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "s3cret-pass"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountDisabled))
}

func TestUserService_RefreshToken_Invalid(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().ValidateToken("garbage", "refresh-secret").Return(nil, errors.New("token is malformed"))

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestUserService_ForgotPassword_UnknownEmail_NoProbe(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	// No mail expectation: an unknown address gets the same silent nil.
	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "ghost@example.com"})

	assert.NoError(t, err)
}

func TestUserService_ForgotPassword_SendsResetMail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tokenService.EXPECT().GenerateResetToken(user.ID).Return("reset-token", nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("service.MailMessage")).
		Return(nil)

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: user.Email})

	assert.NoError(t, err)
}

// parsedToken builds the token shape ValidateToken hands back for a
// signature-valid JWT with the given claims.
func parsedToken(userID uuid.UUID, typ string) *jwt.Token {
	return &jwt.Token{
		Valid:  true,
		Claims: jwt.MapClaims{"sub": userID.String(), "type": typ},
	}
}

func TestUserService_ResetPassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()

	fx.tokenService.EXPECT().
		ValidateToken("reset-token", "access-secret").
		Return(parsedToken(user.ID, "reset"), nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Hash("new-password-123").Return("$2a$12$newhash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == user.ID && u.PasswordHash == "$2a$12$newhash"
		})).
		Return(nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "reset-token",
		NewPassword: "new-password-123",
	})

	assert.NoError(t, err)
}

func TestUserService_ResetPassword_AccessTokenRejected(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()

	// An access token passes signature validation with the same secret,
	// so the type claim is the only thing keeping it out.
	fx.tokenService.EXPECT().
		ValidateToken("access-token", "access-secret").
		Return(parsedToken(user.ID, "access"), nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "access-token",
		NewPassword: "new-password-123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestUserService_ResetPassword_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("garbage", "access-secret").
		Return(nil, errors.New("token is malformed"))

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "garbage",
		NewPassword: "new-password-123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestUserService_ResetPassword_DisabledAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()
	user.Status = entity.UserStatusDisabled

	fx.tokenService.EXPECT().
		ValidateToken("reset-token", "access-secret").
		Return(parsedToken(user.ID, "reset"), nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "reset-token",
		NewPassword: "new-password-123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestUserService_SendOTP_DisabledBySettings(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()

	fx.userRepo.EXPECT().FindByPhone(ctx, user.Phone).Return(user, nil)
	// No SendOTP expectation: the kill switch short-circuits delivery.
	fx.settingsRepo.EXPECT().GetSMSSettings(ctx).Return(&entity.SMSSettings{IsActive: false}, nil)

	err := fx.service.SendOTP(ctx, &usecase.SendOTPInput{Phone: user.Phone})

	assert.NoError(t, err)
}

func TestUserService_SendOTP_DeliversCode(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()

	fx.userRepo.EXPECT().FindByPhone(ctx, user.Phone).Return(user, nil)
	fx.settingsRepo.EXPECT().GetSMSSettings(ctx).Return(&entity.SMSSettings{IsActive: true}, nil)
	fx.smsSender.EXPECT().
		SendOTP(ctx, user.Phone, mock.MatchedBy(func(message string) bool {
			return len(message) > 0
		})).
		Return(nil)

	err := fx.service.SendOTP(ctx, &usecase.SendOTPInput{Phone: user.Phone})

	assert.NoError(t, err)
}

func TestUserService_VerifyOTP_CurrentWindow(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()
	user.PhoneVerified = false

	svc := fx.service.(*userService)
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	code := svc.otpCode(user.Phone, fixed.Unix()/int64(otpWindow.Seconds()))

	fx.userRepo.EXPECT().FindByPhone(ctx, user.Phone).Return(user, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, u *entity.User) {
			assert.True(t, u.PhoneVerified)
		}).
		Return(nil)

	err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: user.Phone, Code: code})

	assert.NoError(t, err)
}

func TestUserService_VerifyOTP_PreviousWindowStillValid(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()

	svc := fx.service.(*userService)
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	code := svc.otpCode(user.Phone, fixed.Unix()/int64(otpWindow.Seconds())-1)

	fx.userRepo.EXPECT().FindByPhone(ctx, user.Phone).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: user.Phone, Code: code})

	assert.NoError(t, err)
}

func TestUserService_VerifyOTP_WrongCode(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()

	fx.userRepo.EXPECT().FindByPhone(ctx, user.Phone).Return(user, nil)

	err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: user.Phone, Code: "000000"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestUserService_VerifyOTP_AlreadyVerified_NoWrite(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()
	user.PhoneVerified = true

	svc := fx.service.(*userService)
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	code := svc.otpCode(user.Phone, fixed.Unix()/int64(otpWindow.Seconds()))

	// No Update expectation: a verified phone stays as it is.
	fx.userRepo.EXPECT().FindByPhone(ctx, user.Phone).Return(user, nil)

	err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: user.Phone, Code: code})

	assert.NoError(t, err)
}

func TestUserService_SetUserStatus_Idempotent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	// No Update expectation: re-submitting the current value is a no-op.

	updated, err := fx.service.SetUserStatus(ctx, user.ID, entity.UserStatusActive)

	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusActive, updated.Status)
}

func TestUserService_SetUserStatus_Disable(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := fx.service.SetUserStatus(ctx, user.ID, entity.UserStatusDisabled)

	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusDisabled, updated.Status)
}

func TestUserService_SetUserStatus_UnknownStatus(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.SetUserStatus(context.Background(), uuid.New(), entity.UserStatus("frozen"))

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}
