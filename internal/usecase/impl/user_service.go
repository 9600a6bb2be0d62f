// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// otpWindow is the validity window of a phone OTP. Codes are derived
// from the phone number and the current window, so verification needs
// no storage; the current and previous windows are both accepted.
const otpWindow = 5 * time.Minute

// userService implements the UserUsecase interface.
type userService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	settingsRepo  repository.SettingsRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	smsSender     service.SMSSender
	mailer        service.Mailer
	accessSecret  string
	refreshSecret string
	logger        *slog.Logger
	now           func() time.Time
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	SettingsRepo repository.SettingsRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	SMSSender    service.SMSSender
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		settingsRepo:  params.SettingsRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		smsSender:     params.SMSSender,
		mailer:        params.Mailer,
		accessSecret:  params.Config.SecretKey.Access,
		refreshSecret: params.Config.SecretKey.Refresh,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// Register creates a new customer account.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Registering user", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: hashedPassword,
		Role:         entity.RoleCustomer,
		Status:       entity.UserStatusActive,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Debug("User registered", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies credentials and issues a token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	// Check password before the status gate so timing does not reveal
	// which accounts are disabled.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive() {
		return nil, domainerrors.ErrAccountDisabled
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, entity.Roles{user.Role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.logger.Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshToken issues a new access token from a valid refresh token.
// The refresh token itself is left unchanged.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	token, err := srv.tokenService.ValidateToken(input.RefreshToken, srv.refreshSecret)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("invalid refresh token")
	}

	userID, err := subjectFromToken(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("invalid refresh token subject")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to find user for token refresh")
	}
	if !user.IsActive() {
		return nil, domainerrors.ErrAccountDisabled
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID, entity.Roles{user.Role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// ForgotPassword emails a reset link when the account exists. The
// response is identical either way so the endpoint cannot be used to
// probe for registered emails.
func (srv *userService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Error("Forgot password lookup failed", slog.Any("error", err))
		}

		return nil
	}

	resetToken, err := srv.tokenService.GenerateResetToken(user.ID)
	if err != nil {
		srv.logger.Error("Failed to generate reset token", slog.Any("error", err))

		return nil
	}

	body := service.RenderTemplate(
		"Hi {{NAME}}, use the token below to reset your password within 15 minutes.\n\n{{TOKEN}}",
		map[string]string{"NAME": user.Name, "TOKEN": resetToken},
	)
	if err := srv.mailer.Send(ctx, service.MailMessage{
		To:      user.Email,
		Subject: "Password reset",
		Text:    body,
	}); err != nil {
		srv.logger.Error("Failed to send reset mail", slog.Any("error", err))
	}

	return nil
}

// ResetPassword replaces the password of the account named by a valid
// reset token. Access and refresh tokens are rejected even though the
// reset token shares the access signing secret.
func (srv *userService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	token, err := srv.tokenService.ValidateToken(input.Token, srv.accessSecret)
	if err != nil || !token.Valid {
		return domainerrors.ErrUnauthenticated.WithDetails("invalid reset token")
	}
	if tokenType(token) != "reset" {
		return domainerrors.ErrUnauthenticated.WithDetails("invalid reset token type")
	}

	userID, err := subjectFromToken(token)
	if err != nil {
		return domainerrors.ErrUnauthenticated.WithDetails("invalid reset token subject")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUnauthenticated
		}

		return errors.Wrap(err, "failed to find user for password reset")
	}
	if !user.IsActive() {
		return domainerrors.ErrAccountDisabled
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash reset password")
	}

	user.PasswordHash = hashedPassword
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store reset password")
	}

	srv.logger.Info("Password reset completed", slog.Any("userID", user.ID))

	return nil
}

// SendOTP delivers a login code to the phone when an account exists.
// Like ForgotPassword, the outcome never reveals account existence.
func (srv *userService) SendOTP(ctx context.Context, input *usecase.SendOTPInput) error {
	user, err := srv.userRepo.FindByPhone(ctx, input.Phone)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Error("OTP lookup failed", slog.Any("error", err))
		}

		return nil
	}

	if smsSettings, err := srv.settingsRepo.GetSMSSettings(ctx); err == nil && !smsSettings.IsActive {
		srv.logger.Warn("OTP sending disabled by settings")

		return nil
	}

	code := srv.otpCode(user.Phone, srv.currentOTPWindow())
	message := "Your verification code is " + code + ". It expires in 5 minutes."
	if err := srv.smsSender.SendOTP(ctx, user.Phone, message); err != nil {
		srv.logger.Error("Failed to send OTP", slog.Any("error", err))
	}

	return nil
}

// VerifyOTP checks the code against the current and previous windows
// and marks the phone verified on a match.
func (srv *userService) VerifyOTP(ctx context.Context, input *usecase.VerifyOTPInput) error {
	user, err := srv.userRepo.FindByPhone(ctx, input.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidInput.WithMessage("Invalid verification code")
		}

		return errors.Wrap(err, "failed to find user for OTP verification")
	}

	window := srv.currentOTPWindow()
	code := []byte(input.Code)
	if !hmac.Equal(code, []byte(srv.otpCode(user.Phone, window))) &&
		!hmac.Equal(code, []byte(srv.otpCode(user.Phone, window-1))) {
		return domainerrors.ErrInvalidInput.WithMessage("Invalid verification code")
	}

	if user.PhoneVerified {
		return nil
	}

	user.PhoneVerified = true
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to mark phone verified")
	}

	return nil
}

// ListUsers returns a page of accounts for the back office.
func (srv *userService) ListUsers(ctx context.Context, query usecase.ListQuery) (*usecase.ListUsersOutput, error) {
	params := query.ToParams()

	users, total, err := srv.userRepo.List(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.ListUsersOutput{
		Users:      users,
		Pagination: usecase.Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	}, nil
}

// SetUserStatus soft-enables or soft-disables an account. Setting the
// current status again succeeds without a write.
func (srv *userService) SetUserStatus(ctx context.Context, userID uuid.UUID, status entity.UserStatus) (*entity.User, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Unknown account status")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("User not found")
		}

		return nil, errors.Wrap(err, "failed to find user for status change")
	}

	if user.Status == status {
		return user, nil
	}

	user.Status = status
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user status")
	}

	srv.logger.Info("User status changed", slog.Any("userID", userID), slog.String("status", string(status)))

	return user, nil
}

func (srv *userService) currentOTPWindow() int64 {
	return srv.now().Unix() / int64(otpWindow.Seconds())
}

// otpCode derives a six digit code from the phone number and time
// window with an HMAC keyed by the access secret.
func (srv *userService) otpCode(phone string, window int64) string {
	mac := hmac.New(sha256.New, []byte(srv.accessSecret))
	mac.Write([]byte(phone))
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(window))
	mac.Write(buf[:])
	sum := mac.Sum(nil)

	code := binary.BigEndian.Uint32(sum[:4]) % 1000000

	return fmt.Sprintf("%06d", code)
}

// subjectFromToken extracts the user id from a parsed token's sub claim.
func subjectFromToken(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("unexpected claims type")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "missing sub claim")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "sub claim is not a UUID")
	}

	return userID, nil
}

// tokenType reads the type claim of a parsed token, empty when absent.
func tokenType(token *jwt.Token) string {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	t, _ := claims["type"].(string)

	return t
}
