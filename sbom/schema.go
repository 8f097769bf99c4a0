package sbom

import (
	"encoding/json"
)

// node is one JSON object of a parsed document. All accessors are
// get-or-default: a missing key, a null or a value of the wrong shape
// simply yields the fallback.
type node map[string]interface{}

func asNode(value interface{}) (node, bool) {
	object, ok := value.(map[string]interface{})
	return node(object), ok
}

func (it node) has(key string) bool {
	_, ok := it[key]
	return ok
}

// text accepts strings and numbers; numbers keep their literal form.
func (it node) text(key string) (string, bool) {
	switch value := it[key].(type) {
	case string:
		return value, true
	case json.Number:
		return value.String(), true
	}
	return "", false
}

func (it node) textOr(key, fallback string) string {
	if value, ok := it.text(key); ok {
		return value
	}
	return fallback
}

func (it node) nonEmpty(key string) (string, bool) {
	value, ok := it.text(key)
	if !ok || len(value) == 0 {
		return "", false
	}
	return value, true
}

func (it node) child(key string) node {
	result, _ := asNode(it[key])
	return result
}

// children returns the object members of an array field, and how many
// members were something else.
func (it node) children(key string) ([]node, int) {
	members, ok := it[key].([]interface{})
	if !ok {
		return nil, 0
	}
	result := make([]node, 0, len(members))
	skipped := 0
	for _, member := range members {
		if object, ok := asNode(member); ok {
			result = append(result, object)
		} else {
			skipped += 1
		}
	}
	return result, skipped
}

// cyclonedxView reads the CycloneDX fields this tool cares about.
type cyclonedxView struct {
	root node
}

func (it cyclonedxView) metadataComponent() componentView {
	return componentView{it.root.child("metadata").child("component")}
}

func (it cyclonedxView) components() ([]componentView, int) {
	members, skipped := it.root.children("components")
	result := make([]componentView, 0, len(members))
	for _, member := range members {
		result = append(result, componentView{member})
	}
	return result, skipped
}

func (it cyclonedxView) identify(defaultName, defaultVersion string) (string, string) {
	component := it.metadataComponent()
	return component.entry.textOr("name", defaultName), component.entry.textOr("version", defaultVersion)
}

type componentView struct {
	entry node
}

func (it componentView) name() string {
	return it.entry.textOr("name", unnamedComponent)
}

func (it componentView) version() string {
	return it.entry.textOr("version", unknownVersion)
}

func (it componentView) hasLicenses() bool {
	return it.entry.has("licenses")
}

func (it componentView) licenses() ([]licenseEntry, int) {
	members, skipped := it.entry.children("licenses")
	result := make([]licenseEntry, 0, len(members))
	for _, member := range members {
		result = append(result, licenseEntry{member})
	}
	return result, skipped
}

// licenseEntry is one member of a CycloneDX licenses array, either
// {"license": {...}} or {"expression": "..."}.
type licenseEntry struct {
	entry node
}

const misspelledAcknowledgement = "acknowlegement"

func (it licenseEntry) license() node {
	return it.entry.child("license")
}

// display picks the reported value: name, then id, then expression.
func (it licenseEntry) display() (string, bool) {
	license := it.license()
	for _, key := range []string{"name", "id", "expression"} {
		if value, ok := license.nonEmpty(key); ok {
			return value, true
		}
	}
	return it.entry.nonEmpty("expression")
}

// canonical maps the entry onto one of the two output shapes.
func (it licenseEntry) canonical() (License, bool) {
	license := it.license()
	if id, ok := license.nonEmpty("id"); ok {
		return Identifier(id), true
	}
	if expression, ok := it.entry.nonEmpty("expression"); ok {
		return Expression(expression), true
	}
	if expression, ok := license.nonEmpty("expression"); ok {
		return Expression(expression), true
	}
	return License{}, false
}

func (it licenseEntry) misspelled() bool {
	return it.entry.has(misspelledAcknowledgement) || it.license().has(misspelledAcknowledgement)
}

// spdxView reads the SPDX fields this tool cares about.
type spdxView struct {
	root node
}

func (it spdxView) packages() ([]packageView, int) {
	members, skipped := it.root.children("packages")
	result := make([]packageView, 0, len(members))
	for _, member := range members {
		result = append(result, packageView{member})
	}
	return result, skipped
}

func (it spdxView) identify(defaultName, defaultVersion string) (string, string) {
	name := it.root.textOr("name", defaultName)
	version := defaultVersion
	if metadata := it.root.child("metadata"); metadata != nil {
		name = metadata.textOr("name", name)
		version = metadata.textOr("versionInfo", version)
	}
	return name, version
}

type packageView struct {
	entry node
}

func (it packageView) name() string {
	return it.entry.textOr("name", unnamedComponent)
}

func (it packageView) version() string {
	return it.entry.textOr("versionInfo", unknownVersion)
}

func (it packageView) spdxID() (string, bool) {
	return it.entry.nonEmpty("SPDXID")
}

func (it packageView) concluded() (string, bool) {
	return assertedLicense(it.entry, "licenseConcluded")
}

func (it packageView) declared() (string, bool) {
	return assertedLicense(it.entry, "licenseDeclared")
}

func (it packageView) rawConcluded() interface{} {
	return it.entry["licenseConcluded"]
}

func (it packageView) rawDeclared() interface{} {
	return it.entry["licenseDeclared"]
}

// assertedLicense is a license field that is present, non-empty and not
// the SPDX NOASSERTION sentinel.
func assertedLicense(entry node, key string) (string, bool) {
	value, ok := entry.nonEmpty(key)
	if !ok || value == NoAssertion {
		return "", false
	}
	return value, true
}
