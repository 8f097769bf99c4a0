// Package sbom reads CycloneDX and SPDX JSON documents tolerantly, reports
// the licenses they mention, and combines several of them into a single
// deduplicated CycloneDX document.
package sbom
