package wallet

import (
	"regexp"
	"strings"

	"github.com/voidlabz/lootvault/internal/domain"
)

// addressPattern matches a 0x-prefixed 20-byte hex address
var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// NormalizeAddress lowercases and trims an address. No checksum casing is
// applied; addresses are compared caselessly everywhere.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// ValidateAddress checks the shape of a wallet address. On-chain existence
// is never verified; payment settlement is the caller's concern.
func ValidateAddress(address string) error {
	if !addressPattern.MatchString(strings.TrimSpace(address)) {
		return domain.ErrInvalidAddress
	}
	return nil
}

// IsValidAddress reports whether the address has a valid shape
func IsValidAddress(address string) bool {
	return ValidateAddress(address) == nil
}
