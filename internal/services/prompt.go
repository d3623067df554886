package services

import (
	"fmt"
	"strings"

	"github.com/KatrinaAgni/ankAsa-Career/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnalysisPrompt creates the instruction for CV analysis. The CV PDF
// itself is not interpolated here; it travels to the model as an inline
// document part next to this text.
func (pb *PromptBuilder) BuildAnalysisPrompt() string {
	return `Anda adalah seorang ahli karir yang berspesialisasi dalam menganalisis CV dan memberikan umpan balik dalam Bahasa Indonesia.

Anda akan menganalisis CV dan menyoroti kekuatan serta kelemahannya. Anda juga akan memberikan saran untuk perbaikan. Rapikan hasil analisismu dalam bentuk point atau kasih jarak setiap kalimat saranmu.

Gunakan dokumen PDF terlampir sebagai sumber utama tentang CV.

Kembalikan hasilnya sebagai objek JSON dengan field "strengths", "weaknesses", dan "suggestions".`
}

// BuildCVPrompt creates the instruction for the CV build flow by
// substituting the validated request fields into a fixed template. Field
// values are treated as opaque text: they are concatenated into the buffer
// and never re-parsed as template syntax.
func (pb *PromptBuilder) BuildCVPrompt(req *models.CvBuildRequest) string {
	var b strings.Builder

	b.WriteString(`You are an expert CV writer and career coach from Indonesia. Your task is to take the user's raw CV data and transform it into a professional, polished CV.
Rewrite the summary and experience descriptions to be more impactful, using strong action verbs and quantifying achievements where possible.
The rewritten summary must be concise (3-4 sentences), impactful, and written in the third person.
For experience descriptions, format them as a bulleted list. Each bullet point should start with a hyphen and end with a semicolon. For example: - Managed a team of 5 engineers; - Increased sales by 20% in Q3;.
Do not change the certifications data, just return it as is.
Return the refined information as a structured JSON object. Do not add any new information, only enhance the provided content.

Here is the user's data:
`)

	fmt.Fprintf(&b, "Name: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	fmt.Fprintf(&b, "Phone: %s\n", req.Phone)
	if req.LinkedIn != "" {
		fmt.Fprintf(&b, "LinkedIn: %s\n", req.LinkedIn)
	}
	fmt.Fprintf(&b, "Summary: %s\n", req.Summary)

	b.WriteString("\nExperience:\n")
	for _, exp := range req.Experience {
		fmt.Fprintf(&b, "- Title: %s at %s (%s)\n", exp.Title, exp.Company, exp.Dates)
		fmt.Fprintf(&b, "  Description: %s\n", exp.Description)
	}

	b.WriteString("\nEducation:\n")
	for _, edu := range req.Education {
		fmt.Fprintf(&b, "- Degree: %s at %s (%s)\n", edu.Degree, edu.Institution, edu.Dates)
	}

	b.WriteString("\nSkills:\n")
	for _, skill := range req.Skills {
		fmt.Fprintf(&b, "- %s\n", skill)
	}

	if len(req.Certifications) > 0 {
		b.WriteString("\nCertifications:\n")
		for _, cert := range req.Certifications {
			fmt.Fprintf(&b, "- Name: %s, Organizer: %s, Date: %s\n", cert.Name, cert.Organizer, cert.Dates)
		}
	}

	return b.String()
}
