package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspect_RejectsNonPDFBytes(t *testing.T) {
	inspector := NewPDFInspector()

	cases := []struct {
		name string
		data []byte
	}{
		{"plain text", []byte("hello, this is not a pdf")},
		{"png magic bytes", []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}},
		{"empty", nil},
		{"truncated header only", []byte("%PDF-1.4")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info, err := inspector.Inspect(tc.data)
			assert.Error(t, err)
			assert.Nil(t, info)
		})
	}
}
