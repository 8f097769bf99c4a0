package sbom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/joshyorko/sbomtool/common"
)

func writeFixture(t *testing.T, directory, name, content string) string {
	t.Helper()
	filename := filepath.Join(directory, name)
	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return filename
}

func capturingLogger(level common.Verbosity) (*common.Logger, *strings.Builder) {
	stderr := &strings.Builder{}
	return common.NewLogger(level, stderr, &strings.Builder{}), stderr
}

func fixedClock() time.Time {
	return time.Date(2024, time.March, 9, 14, 30, 5, 0, time.FixedZone("EET", 2*60*60))
}

func testCombiner(log *common.Logger) *Combiner {
	combiner := NewCombiner(NewReader(log), log)
	combiner.Identity = SeededIdentity("combine-test")
	combiner.Clock = fixedClock
	return combiner
}

const (
	scenarioCycloneDX = `{"bomFormat":"CycloneDX","metadata":{"component":{"name":"App","version":"1.0","licenses":[{"license":{"id":"MIT"}}]}},"components":[{"name":"lib","version":"2.0.0","licenses":[{"license":{"id":"Apache-2.0"}}]}]}`

	leftPadFirst = `{
  "bomFormat": "CycloneDX",
  "specVersion": "1.4",
  "metadata": {"component": {"name": "First", "version": "0.1"}},
  "components": [
    {"type": "library", "name": "left-pad", "version": "1.3.0", "author": "first author", "bom-ref": "pkg:npm/left-pad@1.3.0",
     "licenses": [{"license": {"id": "WTFPL"}}]},
    {"type": "library", "name": "chalk", "version": "4.1.2", "bom-ref": "chalk"}
  ]
}`

	leftPadSecond = `{
  "bomFormat": "CycloneDX",
  "specVersion": "1.5",
  "metadata": {"component": {"name": "Second", "version": "0.2"}},
  "components": [
    {"type": "library", "name": "left-pad", "version": "1.3.0", "author": "second author", "bom-ref": "other-ref",
     "licenses": [{"license": {"id": "MIT"}}]},
    {"type": "library", "name": "Left-Pad", "version": "1.3.0", "bom-ref": "capitalized"}
  ]
}`

	leftPadSPDX = `{
  "spdxVersion": "SPDX-2.3",
  "name": "spdx-doc",
  "packages": [
    {"name": "left-pad", "versionInfo": "1.3.0", "SPDXID": "SPDXRef-left-pad", "licenseConcluded": "ISC", "licenseDeclared": "NOASSERTION"},
    {"name": "tslib", "versionInfo": "2.6.2", "licenseConcluded": "0BSD", "licenseDeclared": "0BSD"}
  ]
}`
)
