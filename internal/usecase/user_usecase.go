package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token presented for renewal.
type RefreshTokenInput struct {
	RefreshToken string
}

// ForgotPasswordInput carries the email of the reset request.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput carries the emailed reset token and the
// replacement password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// SendOTPInput carries the phone number to deliver an OTP to.
type SendOTPInput struct {
	Phone string
}

// VerifyOTPInput carries the phone number and the code to check.
type VerifyOTPInput struct {
	Phone string
	Code  string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the renewed access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// ListUsersOutput returns a page of user accounts.
type ListUsersOutput struct {
	Users      []*entity.User
	Pagination Pagination
}

// UserUsecase defines the interface for identity and account business
// operations. This is the contract the delivery layer depends on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// ForgotPassword always succeeds from the caller's point of view;
	// whether the account exists is never revealed.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error

	// ResetPassword consumes a reset token issued by ForgotPassword and
	// replaces the account password.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error

	// SendOTP behaves like ForgotPassword with respect to account
	// existence.
	SendOTP(ctx context.Context, input *SendOTPInput) error
	VerifyOTP(ctx context.Context, input *VerifyOTPInput) error

	// ListUsers is an admin operation.
	ListUsers(ctx context.Context, query ListQuery) (*ListUsersOutput, error)

	// SetUserStatus soft-enables or soft-disables an account (admin).
	SetUserStatus(ctx context.Context, userID uuid.UUID, status entity.UserStatus) (*entity.User, error)
}
