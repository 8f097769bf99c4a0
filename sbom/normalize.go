package sbom

import (
	"maps"
	"slices"
	"strings"
)

const (
	lesserGPLFragment  = "lesser general public licen"
	lesserGPLCanonical = "GNU Lesser General Public License"
)

// NormalizeLicense folds the many spellings of the LGPL into one name.
// Everything else passes through untouched.
func NormalizeLicense(license string) string {
	if strings.Contains(strings.ToLower(license), lesserGPLFragment) {
		return lesserGPLCanonical
	}
	return license
}

type licenseSet map[string]bool

func (it licenseSet) add(license string) bool {
	if len(license) == 0 || license == NoAssertion {
		return false
	}
	normalized := NormalizeLicense(license)
	if it[normalized] {
		return false
	}
	it[normalized] = true
	return true
}

func (it licenseSet) sorted() []string {
	return slices.Sorted(maps.Keys(it))
}
