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

// BuilderService is the "build" flow: it validates structured CV form data,
// composes the rewrite prompt, invokes the model once, and validates the
// polished CV it returns.
type BuilderService interface {
	Build(ctx context.Context, req *models.CvBuildRequest) (*models.CvBuildResult, error)
}

type builderService struct {
	gemini        GeminiService
	validator     validation.Validator
	promptBuilder *PromptBuilder
}

func NewBuilderService(gemini GeminiService, validator validation.Validator) BuilderService {
	return &builderService{
		gemini:        gemini,
		validator:     validator,
		promptBuilder: NewPromptBuilder(),
	}
}

var buildOutputSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":  {Type: genai.TypeString, Description: "The full name of the person."},
		"email": {Type: genai.TypeString, Description: "The email address."},
		"phone": {Type: genai.TypeString, Description: "The phone number."},
		"linkedin": {
			Type:        genai.TypeString,
			Description: "The LinkedIn profile URL.",
		},
		"summary": {
			Type:        genai.TypeString,
			Description: "A professionally rewritten, impactful summary in the third person. Keep it concise (3-4 sentences).",
		},
		"experience": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":   {Type: genai.TypeString, Description: "The job title."},
					"company": {Type: genai.TypeString, Description: "The company name."},
					"dates":   {Type: genai.TypeString, Description: "The dates of employment."},
					"description": {
						Type:        genai.TypeString,
						Description: "A professionally rewritten description of responsibilities and achievements, using action verbs and quantifiable results. Format as a bulleted list within the string, starting each item with a hyphen (-) and ending with a semicolon (;).",
					},
				},
				Required: []string{"title", "company", "dates", "description"},
			},
			Description: "The professional experience, with improved descriptions.",
		},
		"education": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"institution": {Type: genai.TypeString, Description: "The name of the educational institution."},
					"degree":      {Type: genai.TypeString, Description: "The degree obtained."},
					"dates":       {Type: genai.TypeString, Description: "The dates of attendance."},
				},
				Required: []string{"institution", "degree", "dates"},
			},
			Description: "The education history.",
		},
		"skills": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "The list of skills.",
		},
	},
	Required: []string{"name", "email", "phone", "summary", "experience", "education", "skills"},
}

// Build implements BuilderService.
func (b *builderService) Build(ctx context.Context, req *models.CvBuildRequest) (*models.CvBuildResult, error) {
	flowID := uuid.New()
	log.Printf("🔄 [%s] Starting build flow\n", flowID)

	// Step 1: Validate request
	if err := b.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	// Step 2: Compose prompt
	prompt := b.promptBuilder.BuildCVPrompt(req)
	log.Printf("📝 [%s] Build prompt composed (%d characters)\n", flowID, len(prompt))

	// Step 3: Invoke model
	log.Printf("🤖 [%s] Building CV with LLM...\n", flowID)
	response, err := b.gemini.GenerateJSON(ctx, prompt, nil, buildOutputSchema)
	if err != nil {
		log.Printf("❌ [%s] Build flow failed: %v\n", flowID, err)
		return nil, err
	}

	// Step 4: Validate model output
	var result models.CvBuildResult
	if err := decodeModelJSON(response, &result); err != nil {
		log.Printf("❌ [%s] Failed to parse build response: %v\n", flowID, err)
		return nil, &OutputShapeError{Err: err}
	}

	if err := checkBuildResult(&result); err != nil {
		log.Printf("❌ [%s] Build response failed shape check: %v\n", flowID, err)
		return nil, &OutputShapeError{Err: err}
	}

	// Descriptions must carry the "- item;" sub-format the renderer parses.
	// The model is instructed to produce it; the flow guarantees it.
	for i := range result.Experience {
		items := SplitBullets(result.Experience[i].Description)
		if len(items) == 0 {
			return nil, &OutputShapeError{Err: fmt.Errorf("experience[%d].description contains no bullet items", i)}
		}
		result.Experience[i].Description = FormatBullets(items)
	}

	// The photo and certifications pass through from the request untouched.
	result.PhotoDataURI = req.PhotoDataURI
	result.Certifications = append([]models.CertificationEntry(nil), req.Certifications...)

	log.Printf("✅ [%s] Build flow completed\n", flowID)
	return &result, nil
}

// checkBuildResult rejects any reply with a required field missing or an
// empty section; a partially populated CV must never reach the caller.
func checkBuildResult(result *models.CvBuildResult) error {
	scalars := map[string]string{
		"name":    result.Name,
		"email":   result.Email,
		"phone":   result.Phone,
		"summary": result.Summary,
	}
	for _, field := range []string{"name", "email", "phone", "summary"} {
		if scalars[field] == "" {
			return fmt.Errorf("response is missing field %q", field)
		}
	}

	if len(result.Experience) == 0 {
		return fmt.Errorf("response has no experience entries")
	}
	for i, exp := range result.Experience {
		if exp.Title == "" || exp.Company == "" || exp.Dates == "" || exp.Description == "" {
			return fmt.Errorf("experience[%d] is incomplete", i)
		}
	}

	if len(result.Education) == 0 {
		return fmt.Errorf("response has no education entries")
	}
	for i, edu := range result.Education {
		if edu.Institution == "" || edu.Degree == "" || edu.Dates == "" {
			return fmt.Errorf("education[%d] is incomplete", i)
		}
	}

	if len(result.Skills) == 0 {
		return fmt.Errorf("response has no skills")
	}

	return nil
}
