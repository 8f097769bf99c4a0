package sbom

import "errors"

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrDecodeFailure     = errors.New("unable to decode with supported encodings (utf-8, utf-8-sig, latin1)")
	ErrInvalidJSON       = errors.New("not a valid JSON file")
	ErrUnsupportedFormat = errors.New("unsupported SBOM format, expected CycloneDX or SPDX")
	ErrWriteFailure      = errors.New("write failed")
)
