package errors

import (
	"strings"
	"testing"
)

func TestValidationErrorUnwrapsSentinel(t *testing.T) {
	err := ValidationError{
		Field:   "nav.max_depth",
		Value:   -1,
		Message: "must be zero or positive",
		Err:     ErrInvalidMaxDepth,
	}

	if !Is(err, ErrInvalidMaxDepth) {
		t.Error("expected errors.Is to match ErrInvalidMaxDepth")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{
		Field:   "nav.default_animation",
		Value:   "wobble",
		Message: "not a recognized animation",
		Err:     ErrUnknownAnimation,
	}

	want := `nav.default_animation: not a recognized animation (got: wobble)`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationErrorsFormatting(t *testing.T) {
	tests := []struct {
		name string
		errs ValidationErrors
		want string
	}{
		{
			name: "empty collection",
			errs: ValidationErrors{},
			want: "",
		},
		{
			name: "single error uses plain format",
			errs: ValidationErrors{
				{Field: "nav.max_depth", Value: -2, Message: "must be zero or positive"},
			},
			want: "nav.max_depth: must be zero or positive (got: -2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.errs.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationErrorsMultiple(t *testing.T) {
	errs := ValidationErrors{
		{Field: "a", Value: 1, Message: "bad"},
		{Field: "b", Value: 2, Message: "worse"},
	}

	got := errs.Error()
	if got == "" {
		t.Fatal("expected non-empty error message")
	}
	for _, fragment := range []string{"2 validation errors", "a: bad", "b: worse"} {
		if !strings.Contains(got, fragment) {
			t.Errorf("Error() missing %q in %q", fragment, got)
		}
	}
}
