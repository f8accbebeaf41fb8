package http

import (
	"testing"
)

type probe struct {
	Ref    string `validate:"omitempty,refid"`
	Status string `validate:"omitempty,loanstatus"`
	Pay    string `validate:"omitempty,paystatus"`
	Risk   string `validate:"omitempty,risklevel"`
}

func TestValidator_RefID(t *testing.T) {
	cv := NewValidator()

	for _, ok := range []string{"L001", "U003", "P014", "T022"} {
		if err := cv.Validate(&probe{Ref: ok}); err != nil {
			t.Fatalf("refid %q rejected: %v", ok, err)
		}
	}
	for _, bad := range []string{"l001", "L1", "L0001", "1234", "LABC"} {
		if err := cv.Validate(&probe{Ref: bad}); err == nil {
			t.Fatalf("refid %q accepted", bad)
		}
	}
}

func TestValidator_StatusTags(t *testing.T) {
	cv := NewValidator()

	for _, ok := range []string{"pending", "approved", "active", "completed", "defaulted", "rejected"} {
		if err := cv.Validate(&probe{Status: ok}); err != nil {
			t.Fatalf("loan status %q rejected: %v", ok, err)
		}
	}
	if err := cv.Validate(&probe{Status: "proposed"}); err == nil {
		t.Fatalf("unknown loan status accepted")
	}

	for _, ok := range []string{"paid", "pending", "overdue"} {
		if err := cv.Validate(&probe{Pay: ok}); err != nil {
			t.Fatalf("payment status %q rejected: %v", ok, err)
		}
	}
	if err := cv.Validate(&probe{Pay: "late"}); err == nil {
		t.Fatalf("unknown payment status accepted")
	}

	for _, ok := range []string{"low", "medium", "high"} {
		if err := cv.Validate(&probe{Risk: ok}); err != nil {
			t.Fatalf("risk %q rejected: %v", ok, err)
		}
	}
	if err := cv.Validate(&probe{Risk: "extreme"}); err == nil {
		t.Fatalf("unknown risk accepted")
	}
}

func TestToFieldErrors_Messages(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&probe{Ref: "nope", Status: "nope"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	fes := ToFieldErrors(err)
	if len(fes) != 2 {
		t.Fatalf("field errors = %d, want 2: %+v", len(fes), fes)
	}
	if !containsFieldMsg(fes, "Ref", "uppercase letter") {
		t.Fatalf("missing refid message: %+v", fes)
	}
	if !containsFieldMsg(fes, "Status", "loan status") {
		t.Fatalf("missing status message: %+v", fes)
	}
}
