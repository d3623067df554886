package models

// ExperienceEntry is one position in the work history.
type ExperienceEntry struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Dates       string `json:"dates" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// EducationEntry is one entry in the education history.
type EducationEntry struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Dates       string `json:"dates" validate:"required"`
}

// CertificationEntry is one certification or training. Certifications pass
// through the build flow unchanged.
type CertificationEntry struct {
	Name      string `json:"name" validate:"required"`
	Organizer string `json:"organizer" validate:"required"`
	Dates     string `json:"dates" validate:"required"`
}

// CvBuildRequest is the raw CV data collected from the user.
type CvBuildRequest struct {
	PhotoDataURI   string               `json:"photoDataUri,omitempty" validate:"omitempty,datauri"`
	Name           string               `json:"name" validate:"required"`
	Email          string               `json:"email" validate:"required,email"`
	Phone          string               `json:"phone" validate:"required"`
	LinkedIn       string               `json:"linkedin,omitempty" validate:"omitempty,url"`
	Summary        string               `json:"summary" validate:"required"`
	Experience     []ExperienceEntry    `json:"experience" validate:"required,min=1,dive"`
	Education      []EducationEntry     `json:"education" validate:"required,min=1,dive"`
	Skills         []string             `json:"skills" validate:"required,min=1,dive,required"`
	Certifications []CertificationEntry `json:"certifications,omitempty" validate:"omitempty,dive"`
}

// CvBuildResult mirrors CvBuildRequest field for field. The summary is a
// rewritten 3-4 sentence version and each experience description is
// rewritten as a bulleted list within the string, each item starting with
// a hyphen and ending with a semicolon.
type CvBuildResult struct {
	PhotoDataURI   string               `json:"photoDataUri,omitempty"`
	Name           string               `json:"name"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	LinkedIn       string               `json:"linkedin,omitempty"`
	Summary        string               `json:"summary"`
	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Skills         []string             `json:"skills"`
	Certifications []CertificationEntry `json:"certifications,omitempty"`
}
