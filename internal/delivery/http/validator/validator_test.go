package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"required,phone10"`
	Pincode string `validate:"required,pincode"`
}

func validSample() sampleRequest {
	return sampleRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Phone:   "98765-43210",
		Pincode: "560001",
	}
}

func TestValidator_ValidInput(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(validSample()))
}

func TestValidator_FirstViolationWins(t *testing.T) {
	v := New()

	req := validSample()
	req.Name = ""
	req.Email = "nope"

	err := v.Validate(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	assert.Equal(t, "name is required", err.Error())
}

func TestValidator_Phone10(t *testing.T) {
	v := New()

	cases := []struct {
		name  string
		phone string
		valid bool
	}{
		{"plain ten digits", "9876543210", true},
		{"with separators", "98765-43210", true},
		{"too short", "12345", false},
		{"country code makes it twelve", "+919876543210", false},
		{"letters only", "abcdefghij", false},
		{"arabic-indic digits", "٩٨٧٦٥٤٣٢١٠", false},
		{"arabic-indic padding", "98765٤321٠", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSample()
			req.Phone = tc.phone

			err := v.Validate(req)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, "phone must be a 10-digit phone number", err.Error())
			}
		})
	}
}

func TestValidator_Pincode(t *testing.T) {
	v := New()

	cases := []struct {
		name    string
		pincode string
		valid   bool
	}{
		{"six digits", "110001", true},
		{"five digits", "11000", false},
		{"seven digits", "1100011", false},
		{"non digits", "11000a", false},
		{"three arabic-indic digits in six bytes", "١١١", false},
		{"six arabic-indic digits", "١١٠٠٠١", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSample()
			req.Pincode = tc.pincode

			err := v.Validate(req)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, "pincode must be a 6-digit pincode", err.Error())
			}
		})
	}
}
