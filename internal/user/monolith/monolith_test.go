package monolith

import (
	"bytes"
	"strings"
	"testing"
)

func TestIsValid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		user User
		want bool
	}{
		{"valid user", User{ID: "u123", Name: "Alice Smith", Email: "alice@example.com", Active: true}, true},
		{"blank name", User{ID: "u1", Name: "  ", Email: "a@b.c"}, false},
		{"bad email", User{ID: "u1", Name: "Bob", Email: "invalid"}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if got := tt.user.IsValid(&buf); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSaveToDatabase(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	u := User{ID: "u123", Name: "Alice Smith", Email: "alice@example.com", Active: true}

	u.SaveToDatabase(&buf)

	out := buf.String()
	if !strings.Contains(out, "Saving user Alice Smith (u123)") {
		t.Errorf("missing save line, got: %s", out)
	}
	if !strings.Contains(out, "saved to DB successfully") {
		t.Errorf("missing confirmation line, got: %s", out)
	}
}

func TestFormatForDisplay(t *testing.T) {
	t.Parallel()
	active := User{ID: "u123", Name: "Alice Smith", Email: "alice@example.com", Active: true}
	if got := active.FormatForDisplay(); !strings.Contains(got, "Status: Active") {
		t.Errorf("active user display = %q", got)
	}

	inactive := active
	inactive.Active = false
	if got := inactive.FormatForDisplay(); !strings.Contains(got, "Status: Inactive") {
		t.Errorf("inactive user display = %q", got)
	}
}
