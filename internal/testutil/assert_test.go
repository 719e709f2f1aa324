package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// Failure paths cannot be observed without a fake *testing.T, so these cover
// the success paths and the message formatter.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertScore_Tolerance(t *testing.T) {
	AssertScore(t, 0.1+0.2, 0.3)
	AssertScore(t, -1000, -1000)
}

func TestAssertErrors_Success(t *testing.T) {
	base := errors.New("base")
	AssertNoError(t, nil)
	AssertError(t, base)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
}

func TestAssertBooleansAndNil(t *testing.T) {
	var p *int
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, len("hello") == 0)
	AssertNil(t, p)
	AssertNil(t, nil)
	AssertNotNil(t, []int{1})
	AssertContains(t, "hello world", "world")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d", "test", 42}, "test 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
