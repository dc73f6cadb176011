package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	result := String()

	if !strings.Contains(result, "searxng-mcp version") {
		t.Errorf("String() = %q, should contain 'searxng-mcp version'", result)
	}
	if !strings.Contains(result, Version) {
		t.Errorf("String() = %q, should contain version %q", result, Version)
	}
	if !strings.Contains(result, "built") {
		t.Errorf("String() = %q, should contain 'built'", result)
	}
}

func TestDefaultValues(t *testing.T) {
	// Default version should be "dev"
	if Version != "dev" {
		t.Errorf("Version = %q, want 'dev'", Version)
	}

	// Default build time should be "unknown"
	if BuildTime != "unknown" {
		t.Errorf("BuildTime = %q, want 'unknown'", BuildTime)
	}
}
