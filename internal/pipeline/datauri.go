package pipeline

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// DefaultImageMIME is used when the cover image type cannot be determined.
const DefaultImageMIME = "image/png"

// ErrInvalidDataURI is returned when a string is not a base64 data URI.
var ErrInvalidDataURI = errors.New("invalid data URI")

const (
	dataURIPrefix   = "data:"
	base64Separator = ";base64,"
)

// EncodeDataURI wraps data in a data:<mime>;base64,<payload> URI using the
// standard padded alphabet. An empty mimeType falls back to DefaultImageMIME.
func EncodeDataURI(data []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = DefaultImageMIME
	}

	var buf strings.Builder
	buf.Grow(len(dataURIPrefix) + len(mimeType) + len(base64Separator) + base64.StdEncoding.EncodedLen(len(data)))
	buf.WriteString(dataURIPrefix)
	buf.WriteString(mimeType)
	buf.WriteString(base64Separator)
	buf.WriteString(base64.StdEncoding.EncodeToString(data))
	return buf.String()
}

// DecodeDataURI splits a base64 data URI into its MIME type and payload.
func DecodeDataURI(uri string) (mimeType string, data []byte, err error) {
	if !strings.HasPrefix(uri, dataURIPrefix) {
		return "", nil, fmt.Errorf("%w: missing %q prefix", ErrInvalidDataURI, dataURIPrefix)
	}

	header, payload, found := strings.Cut(uri[len(dataURIPrefix):], base64Separator)
	if !found {
		return "", nil, fmt.Errorf("%w: not base64 encoded", ErrInvalidDataURI)
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}

	return header, data, nil
}

// DetectImageMIME sniffs the image type from its leading bytes, then from the
// file extension of name, then falls back to DefaultImageMIME.
func DetectImageMIME(name string, data []byte) string {
	if sniffed := http.DetectContentType(data); strings.HasPrefix(sniffed, "image/") {
		return sniffed
	}

	if ext := filepath.Ext(name); ext != "" {
		byExt, _, _ := strings.Cut(mime.TypeByExtension(ext), ";")
		if strings.HasPrefix(byExt, "image/") {
			return byExt
		}
	}

	return DefaultImageMIME
}
