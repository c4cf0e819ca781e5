package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"plain", errors.New("boom"), ExitFailure},
		{"validation", Validationf("bad reps"), ExitValidation},
		{"wrapped not found", fmt.Errorf("goal: %w", NotFoundf("no goal")), ExitNotFound},
		{"io", IOError("writing", errors.New("disk full")), ExitIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIOErrorUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := IOError("appending record", cause)
	if !errors.Is(err, cause) {
		t.Fatal("IOError should unwrap to its cause")
	}
	if err.Error() != "appending record: disk full" {
		t.Fatalf("Error() = %q", err.Error())
	}
}
