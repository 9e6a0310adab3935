// Package versions provides version comparison helpers for the manifest and
// dataset info version gates.
package versions

import "github.com/Masterminds/semver/v3"

// IsNewerVersion reports whether newVersion is strictly greater than
// oldVersion. It uses semantic versioning for comparison when both strings
// are valid semver, and falls back to lexicographic string comparison
// otherwise. Two-component versions like "0.1" are accepted by the semver
// parser in coerced form.
func IsNewerVersion(newVersion, oldVersion string) bool {
	newSemver, errNew := semver.NewVersion(newVersion)
	oldSemver, errOld := semver.NewVersion(oldVersion)

	if errNew != nil || errOld != nil {
		// Fallback to string comparison if semver parsing fails
		return newVersion > oldVersion
	}

	return newSemver.GreaterThan(oldSemver)
}
