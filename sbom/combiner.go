package sbom

import (
	"time"

	"github.com/joshyorko/sbomtool/common"
)

const (
	DefaultProjectName    = "Combined Project"
	DefaultProjectVersion = "1.0.0"
)

type Combiner struct {
	Reader         *Reader
	Log            *common.Logger
	Identity       Identity
	Clock          func() time.Time
	DefaultName    string
	DefaultVersion string
}

func NewCombiner(reader *Reader, log *common.Logger) *Combiner {
	return &Combiner{
		Reader:         reader,
		Log:            log,
		Identity:       RandomIdentity,
		Clock:          time.Now,
		DefaultName:    DefaultProjectName,
		DefaultVersion: DefaultProjectVersion,
	}
}

// index keeps first-seen order; the first component for a key wins whole.
type index struct {
	seen       map[Key]bool
	components []*Component
}

func newIndex() *index {
	return &index{
		seen:       make(map[Key]bool),
		components: make([]*Component, 0, 100),
	}
}

func (it *index) has(key Key) bool {
	return it.seen[key]
}

func (it *index) add(component *Component) {
	it.seen[component.Key()] = true
	it.components = append(it.components, component)
}

// Combine never fails: unreadable inputs are logged and contribute no
// components, and with no usable input at all the result is an empty shell.
func (it *Combiner) Combine(filenames []string, name, version string) *Combined {
	documents, failed := it.Reader.ReadAll(filenames)
	name, version = it.resolve(documents, name, version)

	components := newIndex()
	stats := Stats{Files: len(filenames), Failed: failed}
	for _, document := range documents {
		switch document.Format {
		case FormatCycloneDX:
			it.ingestCycloneDX(document, components, &stats)
		case FormatSPDX:
			it.ingestSPDX(document, components, &stats)
		}
	}
	it.Log.Debug("Combined %d unique components into SBOM", len(components.components))

	return &Combined{
		Name:         name,
		Version:      version,
		SerialNumber: it.Identity(),
		Timestamp:    it.Clock().UTC(),
		Components:   components.components,
		Stats:        stats,
	}
}

func (it *Combiner) resolve(documents []*Document, name, version string) (string, string) {
	if len(name) > 0 && len(version) > 0 {
		return name, version
	}
	for _, document := range documents {
		if document.Empty() {
			continue
		}
		foundName, foundVersion := document.Identify(it.DefaultName, it.DefaultVersion)
		it.Log.Debug("Extracted metadata from %s: name=%s, version=%s", document.Format, foundName, foundVersion)
		if len(name) == 0 {
			name = foundName
		}
		if len(version) == 0 {
			version = foundVersion
		}
		return name, version
	}
	it.Log.Warning("No valid SBOMs found to extract metadata. Using defaults.")
	if len(name) == 0 {
		name = it.DefaultName
	}
	if len(version) == 0 {
		version = it.DefaultVersion
	}
	return name, version
}

func (it *Combiner) ingestCycloneDX(document *Document, components *index, stats *Stats) {
	members, skipped := document.cyclonedx().components()
	if skipped > 0 {
		it.Log.Warning("%d components in %s are not objects and were skipped.", skipped, document.Path)
	}
	for _, member := range members {
		key := Key{Name: member.name(), Version: member.version()}
		if components.has(key) {
			stats.Skipped += 1
			it.Log.Trace("Skipped duplicate component: %s %s from %s", key.Name, key.Version, document.Path)
			continue
		}
		components.add(it.sanitize(document.Path, member))
		stats.Added += 1
		it.Log.Trace("Added CycloneDX component: %s %s from %s", key.Name, key.Version, document.Path)
	}
}

func (it *Combiner) ingestSPDX(document *Document, components *index, stats *Stats) {
	packages, skipped := document.spdx().packages()
	if skipped > 0 {
		it.Log.Warning("%d packages in %s are not objects and were skipped.", skipped, document.Path)
	}
	for _, pkg := range packages {
		key := Key{Name: pkg.name(), Version: pkg.version()}
		if components.has(key) {
			stats.Skipped += 1
			it.Log.Trace("Skipped duplicate package: %s %s from %s", key.Name, key.Version, document.Path)
			continue
		}
		components.add(it.fromPackage(pkg))
		stats.Added += 1
		it.Log.Trace("Added converted SPDX package: %s %s from %s", key.Name, key.Version, document.Path)
	}
}
