package validate

import (
	"errors"
	"testing"
)

func TestRange(t *testing.T) {
	if err := Range("rate", 8.5, 1, 20); err != nil {
		t.Fatalf("in-range value rejected: %v", err)
	}
	err := Range("rate", 25, 1, 20)
	if err == nil {
		t.Fatal("out-of-range value accepted")
	}

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if verr.Field != "rate" {
		t.Fatalf("field = %q, want rate", verr.Field)
	}
}

func TestStep(t *testing.T) {
	if err := Step("rate", 8.5, 1, 0.5); err != nil {
		t.Fatalf("on-grid value rejected: %v", err)
	}
	if err := Step("rate", 8.3, 1, 0.5); err == nil {
		t.Fatal("off-grid value accepted")
	}
	if err := Step("amount", 123.45, 0, 0); err != nil {
		t.Fatalf("zero step should disable check: %v", err)
	}
}

func TestAmount(t *testing.T) {
	v, err := Amount("amount", "9.99")
	if err != nil || v != 9.99 {
		t.Fatalf("Amount(9.99) = %v, %v", v, err)
	}

	// Rounds stray precision to cents (half away from zero).
	v, err = Amount("amount", "10.005")
	if err != nil || v != 10.01 {
		t.Fatalf("Amount(10.005) = %v, %v", v, err)
	}

	if _, err := Amount("amount", "abc"); err == nil {
		t.Fatal("non-numeric amount accepted")
	}
	if _, err := Amount("amount", "-5"); err == nil {
		t.Fatal("negative amount accepted")
	}
	if _, err := Amount("amount", "0"); err == nil {
		t.Fatal("zero amount accepted")
	}
}

func TestOneOf(t *testing.T) {
	if err := OneOf("regime", "old", "old", "new"); err != nil {
		t.Fatalf("allowed value rejected: %v", err)
	}
	if err := OneOf("regime", "flat", "old", "new"); err == nil {
		t.Fatal("disallowed value accepted")
	}
}
