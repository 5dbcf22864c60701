package middleware

import "testing"

type sampleRequest struct {
	Name *string `json:"name" validate:"required"`
	Kind string  `json:"kind" validate:"omitempty,oneof=a b"`
}

func TestValidateRequest(t *testing.T) {
	name := "x"
	if errs := ValidateRequest(sampleRequest{Name: &name, Kind: "a"}); errs != nil {
		t.Fatalf("expected no errors, got %+v", errs)
	}

	errs := ValidateRequest(sampleRequest{Kind: "c"})
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %+v", errs)
	}
	if errs[0].Field != "Name" || errs[0].Type != "required" {
		t.Errorf("unexpected first error: %+v", errs[0])
	}
	if errs[1].Field != "Kind" || errs[1].Message != "Value must be one of: a b" {
		t.Errorf("unexpected second error: %+v", errs[1])
	}
}
