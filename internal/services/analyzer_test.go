package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/KatrinaAgni/ankAsa-Career/internal/models"
	"github.com/KatrinaAgni/ankAsa-Career/internal/validation"
)

type fakeGemini struct {
	response       string
	err            error
	calls          int
	lastPrompt     string
	lastAttachment *models.DataURI
	lastSchema     *genai.Schema
}

func (f *fakeGemini) GenerateJSON(ctx context.Context, prompt string, attachment *models.DataURI, schema *genai.Schema) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastAttachment = attachment
	f.lastSchema = schema
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeInspector struct {
	info *PDFInfo
	err  error
}

func (f *fakeInspector) Inspect(data []byte) (*PDFInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

func pdfEnvelope() string {
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake"))
}

func newAnalyzer(gemini GeminiService, inspector PDFInspector) AnalyzerService {
	return NewAnalyzerService(gemini, inspector, validation.NewValidator())
}

func TestAnalyze_Success(t *testing.T) {
	gemini := &fakeGemini{
		response: `{"strengths":"Pengalaman kuat","weaknesses":"Kurang sertifikasi","suggestions":"Tambahkan angka"}`,
	}
	analyzer := newAnalyzer(gemini, &fakeInspector{info: &PDFInfo{PageCount: 2}})

	result, err := analyzer.Analyze(context.Background(), &models.AnalyzeRequest{CVPDFDataURI: pdfEnvelope()})
	require.NoError(t, err)

	assert.Equal(t, "Pengalaman kuat", result.Strengths)
	assert.Equal(t, "Kurang sertifikasi", result.Weaknesses)
	assert.Equal(t, "Tambahkan angka", result.Suggestions)

	assert.Equal(t, 1, gemini.calls)
	require.NotNil(t, gemini.lastAttachment)
	assert.Equal(t, "application/pdf", gemini.lastAttachment.MediaType)
	assert.Equal(t, []byte("%PDF-1.4 fake"), gemini.lastAttachment.Data)
}

func TestAnalyze_EmptyStringsAllowed(t *testing.T) {
	gemini := &fakeGemini{response: `{"strengths":"","weaknesses":"","suggestions":""}`}
	analyzer := newAnalyzer(gemini, &fakeInspector{info: &PDFInfo{PageCount: 1}})

	result, err := analyzer.Analyze(context.Background(), &models.AnalyzeRequest{CVPDFDataURI: pdfEnvelope()})
	require.NoError(t, err)
	assert.Equal(t, &models.AnalyzeResult{}, result)
}

func TestAnalyze_NonPDFMediaTypeNeverReachesModel(t *testing.T) {
	gemini := &fakeGemini{}
	analyzer := newAnalyzer(gemini, &fakeInspector{info: &PDFInfo{PageCount: 1}})

	pngURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{0x89, 0x50})
	_, err := analyzer.Analyze(context.Background(), &models.AnalyzeRequest{CVPDFDataURI: pngURI})

	var validationErr *validation.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 0, gemini.calls)
}

func TestAnalyze_UnreadablePDFNeverReachesModel(t *testing.T) {
	gemini := &fakeGemini{}
	analyzer := newAnalyzer(gemini, &fakeInspector{err: fmt.Errorf("failed to open PDF")})

	_, err := analyzer.Analyze(context.Background(), &models.AnalyzeRequest{CVPDFDataURI: pdfEnvelope()})

	var validationErr *validation.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "cvPdfDataUri", validationErr.Violations[0].Field)
	assert.Equal(t, 0, gemini.calls)
}

func TestAnalyze_InvocationFailure(t *testing.T) {
	gemini := &fakeGemini{err: &InvocationError{Err: errors.New("provider unreachable")}}
	analyzer := newAnalyzer(gemini, &fakeInspector{info: &PDFInfo{PageCount: 1}})

	_, err := analyzer.Analyze(context.Background(), &models.AnalyzeRequest{CVPDFDataURI: pdfEnvelope()})

	var invocationErr *InvocationError
	assert.ErrorAs(t, err, &invocationErr)
	assert.Equal(t, 1, gemini.calls, "no retries")
}

func TestAnalyze_OutputShapeFailures(t *testing.T) {
	cases := []struct {
		name     string
		response string
	}{
		{"not json", "I cannot analyze this document."},
		{"missing strengths", `{"weaknesses":"a","suggestions":"b"}`},
		{"missing suggestions", `{"strengths":"a","weaknesses":"b"}`},
		{"null field", `{"strengths":null,"weaknesses":"b","suggestions":"c"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gemini := &fakeGemini{response: tc.response}
			analyzer := newAnalyzer(gemini, &fakeInspector{info: &PDFInfo{PageCount: 1}})

			result, err := analyzer.Analyze(context.Background(), &models.AnalyzeRequest{CVPDFDataURI: pdfEnvelope()})
			assert.Nil(t, result)

			var shapeErr *OutputShapeError
			assert.ErrorAs(t, err, &shapeErr)
		})
	}
}

func TestAnalyze_MarkdownWrappedJSON(t *testing.T) {
	gemini := &fakeGemini{
		response: "```json\n{\"strengths\":\"a\",\"weaknesses\":\"b\",\"suggestions\":\"c\"}\n```",
	}
	analyzer := newAnalyzer(gemini, &fakeInspector{info: &PDFInfo{PageCount: 1}})

	result, err := analyzer.Analyze(context.Background(), &models.AnalyzeRequest{CVPDFDataURI: pdfEnvelope()})
	require.NoError(t, err)
	assert.Equal(t, "a", result.Strengths)
}
