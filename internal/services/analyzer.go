package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/KatrinaAgni/ankAsa-Career/internal/models"
	"github.com/KatrinaAgni/ankAsa-Career/internal/validation"
)

// AnalyzerService is the "analyze" flow: it validates an uploaded CV PDF
// envelope, composes the analysis prompt, invokes the model once with the
// document attached, and validates the structured reply.
type AnalyzerService interface {
	Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalyzeResult, error)
}

type analyzerService struct {
	gemini        GeminiService
	pdfInspector  PDFInspector
	validator     validation.Validator
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(
	gemini GeminiService,
	pdfInspector PDFInspector,
	validator validation.Validator,
) AnalyzerService {
	return &analyzerService{
		gemini:        gemini,
		pdfInspector:  pdfInspector,
		validator:     validator,
		promptBuilder: NewPromptBuilder(),
	}
}

var analyzeOutputSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"strengths":   {Type: genai.TypeString, Description: "Kekuatan dari CV."},
		"weaknesses":  {Type: genai.TypeString, Description: "Kelemahan dari CV."},
		"suggestions": {Type: genai.TypeString, Description: "Saran untuk perbaikan CV."},
	},
	Required: []string{"strengths", "weaknesses", "suggestions"},
}

// Analyze implements AnalyzerService.
func (a *analyzerService) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalyzeResult, error) {
	flowID := uuid.New()
	log.Printf("🔄 [%s] Starting analyze flow\n", flowID)

	// Step 1: Validate request
	if err := a.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	document, err := models.ParseDataURI(req.CVPDFDataURI)
	if err != nil {
		return nil, &validation.ValidationError{Violations: []validation.FieldViolation{{
			Field:   "cvPdfDataUri",
			Rule:    "pdfdatauri",
			Message: fmt.Sprintf("cvPdfDataUri is not a valid data URI: %v", err),
		}}}
	}

	info, err := a.pdfInspector.Inspect(document.Data)
	if err != nil {
		return nil, &validation.ValidationError{Violations: []validation.FieldViolation{{
			Field:   "cvPdfDataUri",
			Rule:    "pdf",
			Message: fmt.Sprintf("cvPdfDataUri does not contain a readable PDF: %v", err),
		}}}
	}
	log.Printf("📄 [%s] CV document validated (%d pages, %d bytes)\n", flowID, info.PageCount, len(document.Data))

	// Step 2: Compose prompt
	prompt := a.promptBuilder.BuildAnalysisPrompt()

	// Step 3: Invoke model with the PDF attached
	log.Printf("🤖 [%s] Analyzing CV with LLM...\n", flowID)
	response, err := a.gemini.GenerateJSON(ctx, prompt, document, analyzeOutputSchema)
	if err != nil {
		log.Printf("❌ [%s] Analyze flow failed: %v\n", flowID, err)
		return nil, err
	}

	// Step 4: Validate model output
	result, err := a.parseResult(response)
	if err != nil {
		log.Printf("❌ [%s] Failed to parse analysis response: %v\n", flowID, err)
		return nil, &OutputShapeError{Err: err}
	}

	log.Printf("✅ [%s] Analyze flow completed\n", flowID)
	return result, nil
}

// parseResult decodes the model reply and checks that every field is
// present. Empty strings are allowed; absent fields are not.
func (a *analyzerService) parseResult(response string) (*models.AnalyzeResult, error) {
	var raw struct {
		Strengths   *string `json:"strengths"`
		Weaknesses  *string `json:"weaknesses"`
		Suggestions *string `json:"suggestions"`
	}

	if err := decodeModelJSON(response, &raw); err != nil {
		return nil, err
	}

	if raw.Strengths == nil {
		return nil, fmt.Errorf("response is missing field %q", "strengths")
	}
	if raw.Weaknesses == nil {
		return nil, fmt.Errorf("response is missing field %q", "weaknesses")
	}
	if raw.Suggestions == nil {
		return nil, fmt.Errorf("response is missing field %q", "suggestions")
	}

	return &models.AnalyzeResult{
		Strengths:   *raw.Strengths,
		Weaknesses:  *raw.Weaknesses,
		Suggestions: *raw.Suggestions,
	}, nil
}
