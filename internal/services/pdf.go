package services

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFInspector checks that a byte payload really is a readable PDF before
// it is sent anywhere near the model.
type PDFInspector interface {
	Inspect(data []byte) (*PDFInfo, error)
}

type PDFInfo struct {
	PageCount int
}

type pdfInspector struct{}

func NewPDFInspector() PDFInspector {
	return &pdfInspector{}
}

// Inspect implements PDFInspector.
func (p *pdfInspector) Inspect(data []byte) (*PDFInfo, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	totalPage := r.NumPage()
	if totalPage < 1 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	return &PDFInfo{PageCount: totalPage}, nil
}
