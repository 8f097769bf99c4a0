package sbom

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names the text decoding that succeeded for a file.
type Encoding string

const (
	EncodingUTF8    Encoding = "utf-8"
	EncodingUTF8BOM Encoding = "utf-8-sig"
	EncodingLatin1  Encoding = "latin1"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// decodeText tries strict UTF-8, then UTF-8 behind a byte order mark, and
// finally ISO-8859-1. The last step maps every byte to a rune, so in
// practice it never fails.
func decodeText(content []byte) ([]byte, Encoding, error) {
	stripped, marked := bytes.CutPrefix(content, utf8BOM)
	if utf8.Valid(stripped) {
		if marked {
			return stripped, EncodingUTF8BOM, nil
		}
		return stripped, EncodingUTF8, nil
	}
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(stripped)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	return text, EncodingLatin1, nil
}

// parseTree decodes exactly one JSON value. Numbers stay json.Number so
// that they survive a later re-encoding unchanged.
func parseTree(text []byte) (interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(text))
	decoder.UseNumber()

	var tree interface{}
	if err := decoder.Decode(&tree); err != nil {
		return nil, err
	}
	var extra interface{}
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("unexpected data after top-level value")
		}
		return nil, err
	}
	return tree, nil
}

func classify(root node) Format {
	if format, ok := root.text("bomFormat"); ok && format == "CycloneDX" {
		return FormatCycloneDX
	}
	if root.has("spdxVersion") {
		return FormatSPDX
	}
	return FormatUnknown
}
