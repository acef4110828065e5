package dto

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestErrorResponse_Error(t *testing.T) {
	e := NewErrorResponse("oops", nil)
	if e.Error() != "oops" {
		t.Fatalf("want 'oops' got %q", e.Error())
	}
	e2 := NewErrorResponse("oops", errors.New("bad"))
	if e2.Error() != "oops: bad" {
		t.Fatalf("want 'oops: bad' got %q", e2.Error())
	}
	e3 := ErrorResponse{Info: Info{Error: FieldErrors{"query.limit": {"x"}}}}
	if e3.Error() != "" {
		t.Fatalf("non-string error should render empty, got %q", e3.Error())
	}
}

func TestErrorResponse_JSONShape(t *testing.T) {
	b, err := json.Marshal(NewErrorResponse("Internal server error", errors.New("boom")))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"data":null,"info":{"error":"Internal server error: boom"}}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
}
