package sbom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	ownSection          = "License of this component"
	thirdPartySection   = "Licenses of used 3rd party libraries"
	noOwnLicense        = "No license found for this component."
	noThirdPartyLicense = "No dependencies found, no licenses used."
)

func (it *Report) Markdown() string {
	var out strings.Builder
	fmt.Fprintf(&out, "# %s %s\n\n", it.Name, it.Version)
	section(&out, ownSection, it.Own, noOwnLicense)
	out.WriteString("\n")
	section(&out, thirdPartySection, it.ThirdParty, noThirdPartyLicense)
	return out.String()
}

func section(out *strings.Builder, title string, licenses []string, empty string) {
	fmt.Fprintf(out, "## %s\n\n", title)
	if len(licenses) == 0 {
		fmt.Fprintf(out, "%s\n", empty)
		return
	}
	for _, license := range licenses {
		fmt.Fprintf(out, "- %s\n", license)
	}
}

// ReportPath swaps the extension of the input for the report suffix.
func ReportPath(filename, suffix string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + suffix
}

func (it *Report) Save(suffix string) (string, error) {
	target := ReportPath(it.Source, suffix)
	err := os.WriteFile(target, []byte(it.Markdown()), 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: '%s': %v", ErrWriteFailure, target, err)
	}
	return target, nil
}
