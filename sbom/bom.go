package sbom

import (
	"bytes"
	"fmt"
	"io"
	"os"

	cdx "github.com/CycloneDX/cyclonedx-go"
)

const timestampLayout = "2006-01-02T15:04:05Z"

func (it License) cyclonedx() cdx.LicenseChoice {
	if it.IsExpression() {
		return cdx.LicenseChoice{Expression: it.Expression}
	}
	return cdx.LicenseChoice{License: &cdx.License{ID: it.ID}}
}

func (it *Component) cyclonedx() cdx.Component {
	result := cdx.Component{
		BOMRef:      it.BOMRef,
		Type:        cdx.ComponentType(it.Type),
		Author:      it.Author,
		Group:       it.Group,
		Name:        it.Name,
		Version:     it.Version,
		Description: it.Description,
		PackageURL:  it.Purl,
	}
	if len(it.Licenses) > 0 {
		licenses := make(cdx.Licenses, 0, len(it.Licenses))
		for _, license := range it.Licenses {
			licenses = append(licenses, license.cyclonedx())
		}
		result.Licenses = &licenses
	}
	if len(it.ExternalReferences) > 0 {
		references := append([]cdx.ExternalReference{}, it.ExternalReferences...)
		result.ExternalReferences = &references
	}
	if len(it.Properties) > 0 {
		properties := append([]cdx.Property{}, it.Properties...)
		result.Properties = &properties
	}
	return result
}

// BOM renders the combined result as a CycloneDX 1.4 document.
func (it *Combined) BOM() *cdx.BOM {
	components := make([]cdx.Component, 0, len(it.Components))
	for _, component := range it.Components {
		components = append(components, component.cyclonedx())
	}
	return &cdx.BOM{
		BOMFormat:    cdx.BOMFormat,
		SpecVersion:  cdx.SpecVersion1_4,
		Version:      1,
		SerialNumber: it.SerialNumber.URN(),
		Metadata: &cdx.Metadata{
			Timestamp: it.Timestamp.UTC().Format(timestampLayout),
			Component: &cdx.Component{
				Type:    cdx.ComponentTypeApplication,
				Name:    it.Name,
				Version: it.Version,
			},
		},
		Components: &components,
	}
}

func (it *Combined) Encode(sink io.Writer) error {
	return cdx.NewBOMEncoder(sink, cdx.BOMFileFormatJSON).SetPretty(true).Encode(it.BOM())
}

func (it *Combined) Save(filename string) error {
	var content bytes.Buffer
	if err := it.Encode(&content); err != nil {
		return fmt.Errorf("%w: encoding '%s': %v", ErrWriteFailure, filename, err)
	}
	if err := os.WriteFile(filename, content.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: '%s': %v", ErrWriteFailure, filename, err)
	}
	return nil
}
