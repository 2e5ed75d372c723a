package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "validation error",
			err:      NewValidation("date", "record date %q does not match key %q", "2024-01-02", "2024-01-01"),
			expected: `Error: invalid date: record date "2024-01-02" does not match key "2024-01-01"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	result := Formatf("failed to load %s", "profile")
	if result != "Error: failed to load profile" {
		t.Errorf("Formatf() = %q", result)
	}
}

func TestValidationErrorIs(t *testing.T) {
	err := fmt.Errorf("save profile: %w", NewValidation("goals", "goal id cannot be empty"))

	if !errors.Is(err, ErrValidation) {
		t.Error("wrapped ValidationError should match ErrValidation")
	}
	if errors.Is(err, ErrPersistence) {
		t.Error("ValidationError should not match ErrPersistence")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("errors.As failed for *ValidationError")
	}
	if ve.Field != "goals" {
		t.Errorf("Field = %q, want goals", ve.Field)
	}
}

func TestPersistenceError(t *testing.T) {
	if NewPersistence("write", "dailyRecords", nil) != nil {
		t.Error("NewPersistence(nil) should be nil")
	}

	err := NewPersistence("write", "dailyRecords", ErrQuotaExceeded)
	if !errors.Is(err, ErrPersistence) {
		t.Error("expected ErrPersistence match")
	}
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Error("expected cause to unwrap to ErrQuotaExceeded")
	}
	if !strings.Contains(err.Error(), `write "dailyRecords" failed`) {
		t.Errorf("unexpected message %q", err.Error())
	}
}

// TestFatal tests the Fatal function using exec helper process
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(errors.New("test error"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != 1 {
			t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
		}
		if !strings.Contains(stderr.String(), "Error: test error") {
			t.Errorf("Fatal() stderr = %q, want to contain %q", stderr.String(), "Error: test error")
		}
	} else {
		t.Errorf("Fatal() did not exit with error: %v", err)
	}
}

// TestFatal_NilError tests that Fatal does nothing when passed a nil error
func TestFatal_NilError(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal_NilError$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")

	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit, but got error: %v", err)
	}
}
