package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/eaglebank/ledger-service/shared/models"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID("acc")
		if !strings.HasPrefix(id, "acc-") {
			t.Fatalf("expected acc- prefix, got %s", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		input   string
		want    models.AccountType
		wantErr bool
	}{
		{input: "CHECKING", want: models.AccountTypeChecking},
		{input: "savings", want: models.AccountTypeSavings},
		{input: " Checking ", want: models.AccountTypeChecking},
		{input: "", wantErr: true},
		{input: "BROKERAGE", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAccountType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidAccountType) {
					t.Fatalf("expected ErrInvalidAccountType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
