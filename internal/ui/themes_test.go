package ui

import (
	"os"
	"testing"
)

// saveTheme snapshots the active theme and restores it when the test ends.
func saveTheme(t *testing.T) {
	t.Helper()
	prev := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(prev) })
}

func TestInitTheme_NoColorFlag(t *testing.T) {
	saveTheme(t)

	InitTheme(true)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("theme = %q, want none", got)
	}
	if GetCurrentTheme().Primary != "" {
		t.Error("no-color theme should carry no escape codes")
	}
}

func TestInitTheme_NoColorEnv(t *testing.T) {
	saveTheme(t)
	t.Setenv("NO_COLOR", "1")

	InitTheme(false)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("theme = %q, want none", got)
	}
}

func TestInitTheme_Default(t *testing.T) {
	saveTheme(t)
	if val, ok := os.LookupEnv("NO_COLOR"); ok {
		t.Cleanup(func() { os.Setenv("NO_COLOR", val) })
		os.Unsetenv("NO_COLOR")
	}

	InitTheme(false)
	if got := GetCurrentTheme().Name; got != "dark" {
		t.Errorf("theme = %q, want dark", got)
	}
}

func TestGetCurrentTUITheme(t *testing.T) {
	saveTheme(t)

	SetCurrentTheme(DarkTheme)
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("dark theme should map to the dark TUI palette")
	}

	SetCurrentTheme(NoColorTheme)
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("no-color theme should map to the no-color TUI palette")
	}
}
