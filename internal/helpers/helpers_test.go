package helpers

import (
	"testing"
)

func TestGetEnv(t *testing.T) {
	// Test case 1: Check if an existing environment variable is retrieved
	expectedValue := "/srv/templates"
	t.Setenv("STACK3D_TEST_KEY", expectedValue)

	actualValue := GetEnv("STACK3D_TEST_KEY", "fallback")
	if actualValue != expectedValue {
		t.Errorf("expected value to be [%s], but got [%s]", expectedValue, actualValue)
	}

	// Test case 2: Check if a missing environment variable falls back to the default value
	expectedValue = "fallback"
	actualValue = GetEnv("STACK3D_MISSING_KEY", expectedValue)
	if actualValue != expectedValue {
		t.Errorf("expected value to be [%s], but got [%s]", expectedValue, actualValue)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("STACK3D_VERBOSE", "true")
	if !GetEnvBool("STACK3D_VERBOSE", false) {
		t.Errorf("expected STACK3D_VERBOSE to parse as true")
	}

	t.Setenv("STACK3D_VERBOSE", "not-a-bool")
	if GetEnvBool("STACK3D_VERBOSE", false) {
		t.Errorf("expected invalid value to fall back to false")
	}

	if !GetEnvBool("STACK3D_UNSET_BOOL", true) {
		t.Errorf("expected unset value to fall back to true")
	}
}

func TestContains(t *testing.T) {
	formats := []string{"text", "yaml"}
	if !Contains(formats, "yaml") {
		t.Errorf("expected to find 'yaml' in slice, but didn't")
	}

	if Contains(formats, "json") {
		t.Errorf("expected not to find 'json' in slice, but did")
	}
}
