package sbom

import (
	"github.com/joshyorko/sbomtool/common"
)

// Report is the license summary of one SBOM file.
type Report struct {
	Source     string
	Name       string
	Version    string
	Own        []string
	ThirdParty []string
}

type Extractor struct {
	reader         *Reader
	log            *common.Logger
	unknownName    string
	unknownVersion string
}

func NewExtractor(reader *Reader, log *common.Logger, unknownName, unknownVersion string) *Extractor {
	return &Extractor{
		reader:         reader,
		log:            log,
		unknownName:    unknownName,
		unknownVersion: unknownVersion,
	}
}

func (it *Extractor) ExtractFile(filename string) (*Report, error) {
	document, err := it.reader.Read(filename)
	if err != nil {
		return nil, err
	}
	return it.Extract(document), nil
}

// ExtractFiles handles every file on its own; a failing file is logged
// and simply has no report.
func (it *Extractor) ExtractFiles(filenames []string) ([]*Report, int) {
	reports := make([]*Report, 0, len(filenames))
	failed := 0
	for _, filename := range filenames {
		report, err := it.ExtractFile(filename)
		if err != nil {
			it.log.Error("extract", err)
			it.log.Log("No licenses found or error occurred for %s", filename)
			failed += 1
			continue
		}
		reports = append(reports, report)
	}
	return reports, failed
}

func (it *Extractor) Extract(document *Document) *Report {
	own, thirdParty := licenseSet{}, licenseSet{}
	switch document.Format {
	case FormatCycloneDX:
		it.cyclonedxLicenses(document, own, thirdParty)
	case FormatSPDX:
		it.spdxLicenses(document, thirdParty)
	}
	name, version := document.Identify(it.unknownName, it.unknownVersion)
	return &Report{
		Source:     document.Path,
		Name:       name,
		Version:    version,
		Own:        own.sorted(),
		ThirdParty: thirdParty.sorted(),
	}
}

func (it *Extractor) collect(component componentView, label string, sink licenseSet) {
	if !component.hasLicenses() {
		it.log.Debug("No licenses field in %s", label)
		return
	}
	entries, skipped := component.licenses()
	if skipped > 0 {
		it.log.Warning("%d invalid license entries in %s were dropped.", skipped, label)
	}
	for _, entry := range entries {
		if entry.misspelled() {
			it.log.Warning("License entry in %s has an %q field, which is ignored.", label, misspelledAcknowledgement)
		}
		value, ok := entry.display()
		if !ok {
			it.log.Warning("No valid license name, id, or expression in %s; entry dropped.", label)
			continue
		}
		if sink.add(value) {
			it.log.Trace("Adding license %q from %s", value, label)
		}
	}
}

func (it *Extractor) cyclonedxLicenses(document *Document, own, thirdParty licenseSet) {
	view := document.cyclonedx()
	it.collect(view.metadataComponent(), "metadata component", own)

	components, skipped := view.components()
	if skipped > 0 {
		it.log.Warning("%d components in %s are not objects and were skipped.", skipped, document.Path)
	}
	if len(components) == 0 {
		it.log.Debug("No components found in %s (CycloneDX format)", document.Path)
	}
	for index, component := range components {
		it.log.Debug("Processing component %d: %s", index+1, component.name())
		it.collect(component, "component "+component.name(), thirdParty)
	}
	it.log.Debug("Processed %d components in %s", len(components), document.Path)
	if len(thirdParty) == 0 {
		it.log.Log("No valid licenses found in components of %s", document.Path)
	}
}

func (it *Extractor) spdxLicenses(document *Document, thirdParty licenseSet) {
	packages, skipped := document.spdx().packages()
	if skipped > 0 {
		it.log.Warning("%d packages in %s are not objects and were skipped.", skipped, document.Path)
	}
	if len(packages) == 0 {
		it.log.Debug("No packages found in %s (SPDX format)", document.Path)
	}
	for index, pkg := range packages {
		it.log.Debug("Processing package %d: %s", index+1, pkg.name())
		concluded, hasConcluded := pkg.concluded()
		if hasConcluded && thirdParty.add(concluded) {
			it.log.Trace("Adding license (concluded) %q from %s", concluded, pkg.name())
		}
		declared, hasDeclared := pkg.declared()
		if hasDeclared && thirdParty.add(declared) {
			it.log.Trace("Adding license (declared) %q from %s", declared, pkg.name())
		}
		if !hasConcluded && !hasDeclared {
			it.log.Debug("No valid licenses in package %s: licenseConcluded=%v, licenseDeclared=%v", pkg.name(), pkg.rawConcluded(), pkg.rawDeclared())
		}
	}
	it.log.Debug("Processed %d packages in %s", len(packages), document.Path)
	if len(thirdParty) == 0 {
		it.log.Log("No valid licenses found in packages of %s", document.Path)
	}
}
