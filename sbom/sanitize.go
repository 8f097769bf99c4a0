package sbom

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	cdx "github.com/CycloneDX/cyclonedx-go"
)

// sanitize copies the fields the combined document keeps and rewrites
// licenses into their canonical shapes.
func (it *Combiner) sanitize(source string, component componentView) *Component {
	entry := component.entry
	result := &Component{
		Type:        defaultType,
		Name:        component.name(),
		Group:       entry.textOr("group", ""),
		Version:     component.version(),
		Author:      entry.textOr("author", ""),
		Description: entry.textOr("description", ""),
		Purl:        entry.textOr("purl", ""),
	}
	if kind, ok := entry.nonEmpty("type"); ok {
		result.Type = kind
	}
	if ref, ok := entry.nonEmpty("bom-ref"); ok {
		result.BOMRef = ref
	} else {
		result.BOMRef = it.Identity().String()
	}
	label := result.Name + " " + result.Version

	entries, skipped := component.licenses()
	if skipped > 0 {
		it.Log.Warning("%d invalid license entries of %s in %s were dropped.", skipped, label, source)
	}
	for _, license := range entries {
		if license.misspelled() {
			it.Log.Warning("License entry of %s in %s has an %q field, which is ignored.", label, source, misspelledAcknowledgement)
		}
		canonical, ok := license.canonical()
		if !ok {
			it.Log.Warning("License entry of %s in %s has neither id nor expression; dropped.", label, source)
			continue
		}
		result.Licenses = append(result.Licenses, canonical)
	}

	result.ExternalReferences = decodeMembers[cdx.ExternalReference](it, entry, "externalReferences", referenceKeys, label, source)
	result.Properties = decodeMembers[cdx.Property](it, entry, "properties", propertyKeys, label, source)
	return result
}

// Keys of the CycloneDX 1.4 externalReference and property objects. The
// schema allows no others.
var (
	referenceKeys = []string{"type", "url", "comment", "hashes"}
	propertyKeys  = []string{"name", "value"}
)

// decodeMembers reads an array field one member at a time. A member that
// cannot be read is dropped on its own, and the rest are kept.
func decodeMembers[T any](it *Combiner, entry node, field string, known []string, label, source string) []T {
	value, ok := entry[field]
	if !ok || value == nil {
		return nil
	}
	if _, ok := value.([]interface{}); !ok {
		it.Log.Uncritical("sanitize", fmt.Errorf("%s of %s in %s is not a list; dropped", field, label, source))
		return nil
	}
	members, skipped := entry.children(field)
	if skipped > 0 {
		it.Log.Warning("%d %s entries of %s in %s are not objects and were dropped.", skipped, field, label, source)
	}
	result := make([]T, 0, len(members))
	for index, member := range members {
		content, err := json.Marshal(member)
		if err == nil {
			var decoded T
			err = json.Unmarshal(content, &decoded)
			if err == nil {
				result = append(result, decoded)
				unmodeled(it, member, known, field, index, label, source)
				continue
			}
		}
		it.Log.Uncritical("sanitize", fmt.Errorf("dropping unreadable %s entry %d of %s in %s: %w", field, index+1, label, source, err))
	}
	return result
}

func unmodeled(it *Combiner, member node, known []string, field string, index int, label, source string) {
	for _, key := range slices.Sorted(maps.Keys(member)) {
		if !slices.Contains(known, key) {
			it.Log.Warning("Key %q of %s entry %d of %s in %s is not part of CycloneDX 1.4; ignored.", key, field, index+1, label, source)
		}
	}
}
