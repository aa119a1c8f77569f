package validation

import (
	"strings"
	"testing"
)

type sample struct {
	Title  string   `json:"book_title" validate:"required,notblank,max=5"`
	Rating *float64 `json:"rating" validate:"required,gte=0,lte=5"`
}

func ptr(f float64) *float64 { return &f }

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	if err := ValidateStruct(sample{Title: "ok", Rating: ptr(0)}); err != nil {
		t.Fatalf("zero rating must be accepted: %v", err)
	}

	err := ValidateStruct(sample{Title: "  ", Rating: ptr(6)})
	if err == nil || len(err.Fields) != 2 {
		t.Fatalf("err=%v", err)
	}
	if err.Fields[0].Field != "book_title" || err.Fields[0].Tag != "notblank" {
		t.Fatalf("field 0=%+v", err.Fields[0])
	}
	if err.Fields[1].Message != "rating must be less than or equal to 5" {
		t.Fatalf("message=%q", err.Fields[1].Message)
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != CodeValidation || !strings.Contains(apiErr.Message, "; ") {
		t.Fatalf("api error=%+v", apiErr)
	}
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Fatalf("details=%v", apiErr.Details)
	}
}

func TestSingleErrorDetails(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(sample{Title: "ok"})
	if err == nil {
		t.Fatalf("missing rating should fail")
	}
	apiErr := err.ToAPIError()
	if apiErr.Message != "rating is required" || apiErr.Details["field"] != "rating" {
		t.Fatalf("api error=%+v", apiErr)
	}
}
