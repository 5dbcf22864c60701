package utils

import (
	"fmt"
	"strings"

	"github.com/eaglebank/ledger-service/shared/models"
	"github.com/google/uuid"
)

// GenerateID returns an opaque identifier made of the given prefix and a
// random 128-bit UUID.
func GenerateID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

// ParseAccountType maps free-form input onto a known account type.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseAccountType(s string) (models.AccountType, error) {
	t := models.AccountType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidAccountType, s)
	}
	return t, nil
}
