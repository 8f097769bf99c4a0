package sbom

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joshyorko/sbomtool/common"
)

// Document is one classified input file. It is not modified after Read.
type Document struct {
	Path     string
	Format   Format
	Encoding Encoding
	root     node
}

func (it *Document) Empty() bool {
	return it == nil || len(it.root) == 0
}

func (it *Document) cyclonedx() cyclonedxView {
	return cyclonedxView{it.root}
}

func (it *Document) spdx() spdxView {
	return spdxView{it.root}
}

// Identify returns the name and version the document describes itself
// with, or the given defaults.
func (it *Document) Identify(defaultName, defaultVersion string) (string, string) {
	if it.Empty() {
		return defaultName, defaultVersion
	}
	switch it.Format {
	case FormatCycloneDX:
		return it.cyclonedx().identify(defaultName, defaultVersion)
	case FormatSPDX:
		return it.spdx().identify(defaultName, defaultVersion)
	}
	return defaultName, defaultVersion
}

type Reader struct {
	log *common.Logger
}

func NewReader(log *common.Logger) *Reader {
	return &Reader{log: log}
}

func (it *Reader) Read(filename string) (*Document, error) {
	content, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: '%s'", ErrFileNotFound, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("reading '%s' failed: %w", filename, err)
	}
	text, encoding, err := decodeText(content)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}
	it.log.Debug("Successfully read %s with encoding: %s", filename, encoding)

	tree, err := parseTree(text)
	if err != nil {
		return nil, fmt.Errorf("'%s' is %w: %v", filename, ErrInvalidJSON, err)
	}
	root, _ := asNode(tree)
	format := classify(root)
	if format == FormatUnknown {
		return nil, fmt.Errorf("'%s': %w", filename, ErrUnsupportedFormat)
	}
	it.log.Trace("Classified %s as %s (%s).", filename, format, format.MediaType())
	return &Document{
		Path:     filename,
		Format:   format,
		Encoding: encoding,
		root:     root,
	}, nil
}

// ReadAll reads files one by one in the given order. Every failure is
// logged and the file is left out of the result.
func (it *Reader) ReadAll(filenames []string) ([]*Document, int) {
	documents := make([]*Document, 0, len(filenames))
	failed := 0
	for _, filename := range filenames {
		document, err := it.Read(filename)
		if err != nil {
			it.log.Error("read", err)
			failed += 1
			continue
		}
		documents = append(documents, document)
	}
	return documents, failed
}
