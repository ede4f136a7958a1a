package base64

import (
	stdBase64 "encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

var ErrNotDataURI = errors.New("value is not a base64 data URI")

// GetContentType returns the media type of a data URI, or "" when value is not one.
func GetContentType(value string) string {
	start := len(dataPrefix)
	end := strings.Index(value, base64Marker)

	if !strings.HasPrefix(value, dataPrefix) || end == -1 || end < start {
		return ""
	}

	return value[start:end]
}

// Decode splits a data URI into its media type and decoded payload.
func Decode(value string) (contentType string, data []byte, err error) {
	contentType = GetContentType(value)
	if contentType == "" {
		return "", nil, ErrNotDataURI
	}

	payload := value[strings.Index(value, base64Marker)+len(base64Marker):]

	data, err = stdBase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decoding data URI payload: %w", err)
	}

	return contentType, data, nil
}
