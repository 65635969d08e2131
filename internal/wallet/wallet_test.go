package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidlabz/lootvault/internal/domain"
)

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		valid   bool
	}{
		{"lowercase hex", "0x1234567890abcdef1234567890abcdef12345678", true},
		{"mixed case hex", "0x1234567890ABCDEF1234567890abcdef12345678", true},
		{"surrounding whitespace", "  0x1234567890abcdef1234567890abcdef12345678  ", true},
		{"missing prefix", "1234567890abcdef1234567890abcdef12345678", false},
		{"too short", "0x1234", false},
		{"too long", "0x1234567890abcdef1234567890abcdef123456789", false},
		{"non-hex characters", "0x1234567890abcdef1234567890abcdef1234567g", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddress(tt.address)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidAddress)
			}
			assert.Equal(t, tt.valid, IsValidAddress(tt.address))
		})
	}
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t,
		"0x1234567890abcdef1234567890abcdef12345678",
		NormalizeAddress("  0x1234567890ABCDEF1234567890abcdef12345678 "))
}
