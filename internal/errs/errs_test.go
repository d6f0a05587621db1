package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := Wrap(errors.New("boom"), CodeGit, "diff failed").WithContext(CtxStep, "diff computation")

	msg := err.Error()
	if !strings.Contains(msg, "GIT_ERROR") || !strings.Contains(msg, "diff failed") || !strings.Contains(msg, "boom") {
		t.Errorf("Unexpected message %q", msg)
	}
	if !strings.Contains(msg, "diff computation") {
		t.Errorf("Context missing from %q", msg)
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeNotFound, "no such symbol"))

	if !IsCode(err, CodeNotFound) {
		t.Error("Expected code to be found through wrapping")
	}
	if IsCode(err, CodeGit) {
		t.Error("Wrong code must not match")
	}
	if IsCode(errors.New("plain"), CodeNotFound) {
		t.Error("Plain error must not match any code")
	}
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := Wrap(inner, CodeInternal, "wrapped")

	if !errors.Is(err, inner) {
		t.Error("Expected errors.Is to reach the cause")
	}
}
