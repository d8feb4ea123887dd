package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthyfeet/salon-scheduler/internal/validators"
)

func TestIsValidPhone(t *testing.T) {
	type testCase struct {
		name  string
		phone string
		want  bool
	}

	tests := []testCase{
		{"TenDigits", "5512345678", true},
		{"TooShort", "55123", false},
		{"TooLong", "55123456789", false},
		{"WithDashes", "55-1234-567", false},
		{"WithLetters", "55abc45678", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validators.IsValidPhone(tt.phone))
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	type testCase struct {
		name     string
		password string
		want     bool
	}

	tests := []testCase{
		{"Valid", "Secreto1", true},
		{"TooShort", "Abc1", false},
		{"NoUppercase", "secreto123", false},
		{"NoDigit", "SecretoFuerte", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validators.IsValidPassword(tt.password))
		})
	}
}
