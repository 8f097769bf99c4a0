package sbom

import (
	"time"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"
)

// Format is the SBOM dialect of a document.
type Format string

const (
	FormatCycloneDX Format = "CycloneDX"
	FormatSPDX      Format = "SPDX"
	FormatUnknown   Format = "unknown"
)

const (
	CycloneDXMediaType = "application/vnd.cyclonedx+json"
	SPDXMediaType      = "application/spdx+json"

	NoAssertion = "NOASSERTION"

	unnamedComponent = "unnamed"
	unknownVersion   = "unknown"
	defaultType      = "library"
)

func (it Format) MediaType() string {
	switch it {
	case FormatCycloneDX:
		return CycloneDXMediaType
	case FormatSPDX:
		return SPDXMediaType
	default:
		return "application/json"
	}
}

// Key identifies a component for deduplication. It is compared exactly,
// case and whitespace included.
type Key struct {
	Name    string
	Version string
}

// License is either an identifier or an SPDX expression, never both.
type License struct {
	ID         string
	Expression string
}

func Identifier(id string) License {
	return License{ID: id}
}

func Expression(expression string) License {
	return License{Expression: expression}
}

func (it License) IsExpression() bool {
	return len(it.Expression) > 0
}

func (it License) String() string {
	if it.IsExpression() {
		return it.Expression
	}
	return it.ID
}

// Component is the canonical inventory unit both dialects are mapped onto.
type Component struct {
	Type               string
	Name               string
	Group              string
	Version            string
	BOMRef             string
	Author             string
	Description        string
	Purl               string
	Licenses           []License
	ExternalReferences []cdx.ExternalReference
	Properties         []cdx.Property
}

func (it *Component) Key() Key {
	return Key{Name: it.Name, Version: it.Version}
}

// Stats counts what happened during one combine run.
type Stats struct {
	Files   int
	Failed  int
	Added   int
	Skipped int
}

// Combined is the result of one combine run.
type Combined struct {
	Name         string
	Version      string
	SerialNumber uuid.UUID
	Timestamp    time.Time
	Components   []*Component
	Stats        Stats
}
