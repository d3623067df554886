package models

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DataURI is a decoded data envelope of the form
// "data:<mediaType>;base64,<encodedBytes>". Binary documents (the CV PDF,
// the profile photo) travel through the API in this format.
type DataURI struct {
	MediaType string
	Data      []byte
}

const dataURIPrefix = "data:"

// ParseDataURI parses and validates a data envelope string. The payload is
// base64-decoded; an empty payload, missing media type, or undecodable body
// is rejected.
func ParseDataURI(raw string) (*DataURI, error) {
	if !strings.HasPrefix(raw, dataURIPrefix) {
		return nil, fmt.Errorf("data URI must start with %q", dataURIPrefix)
	}

	rest := raw[len(dataURIPrefix):]
	meta, encoded, found := strings.Cut(rest, ",")
	if !found {
		return nil, fmt.Errorf("data URI missing payload separator")
	}

	mediaType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, fmt.Errorf("data URI must declare base64 encoding")
	}
	if mediaType == "" {
		return nil, fmt.Errorf("data URI missing media type")
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode data URI payload: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("data URI payload is empty")
	}

	return &DataURI{
		MediaType: mediaType,
		Data:      data,
	}, nil
}

// String re-encodes the envelope to its wire form.
func (d *DataURI) String() string {
	return fmt.Sprintf("%s%s;base64,%s", dataURIPrefix, d.MediaType, base64.StdEncoding.EncodeToString(d.Data))
}
