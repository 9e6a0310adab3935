package versions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNewerVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		newVersion string
		oldVersion string
		expected   bool
	}{
		// Valid semver comparisons
		{name: "newer major version", newVersion: "2.0.0", oldVersion: "1.0.0", expected: true},
		{name: "newer minor version", newVersion: "1.2.0", oldVersion: "1.1.0", expected: true},
		{name: "newer patch version", newVersion: "1.0.2", oldVersion: "1.0.1", expected: true},
		{name: "older major version", newVersion: "1.0.0", oldVersion: "2.0.0", expected: false},
		{name: "equal versions", newVersion: "1.0.0", oldVersion: "1.0.0", expected: false},

		// Two-component manifest versions
		{name: "newer manifest version", newVersion: "0.2", oldVersion: "0.1", expected: true},
		{name: "same manifest version", newVersion: "0.1", oldVersion: "0.1", expected: false},
		{name: "older manifest version", newVersion: "0.1", oldVersion: "0.2", expected: false},

		// Fallback to string comparison
		{name: "invalid new version", newVersion: "abc", oldVersion: "1.0.0", expected: true},
		{name: "both invalid", newVersion: "abc", oldVersion: "abd", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, IsNewerVersion(tt.newVersion, tt.oldVersion))
		})
	}
}
