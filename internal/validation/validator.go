package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/KatrinaAgni/ankAsa-Career/internal/models"
)

// FieldViolation describes a single validation failure: the field that
// violated a rule and the rule it violated.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError enumerates every violated field of a request. It is
// always recoverable by the caller correcting its input.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return fmt.Sprintf("request validation failed: %s", strings.Join(msgs, "; "))
}

// Validator checks request objects against their declared field rules.
type Validator interface {
	ValidateStruct(s interface{}) error
}

type requestValidator struct {
	validate *validator.Validate
}

func NewValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Envelope rules for base64 data URIs. "pdfdatauri" additionally pins
	// the declared media type to application/pdf.
	v.RegisterValidation("datauri", func(fl validator.FieldLevel) bool {
		_, err := models.ParseDataURI(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("pdfdatauri", func(fl validator.FieldLevel) bool {
		uri, err := models.ParseDataURI(fl.Field().String())
		if err != nil {
			return false
		}
		return uri.MediaType == "application/pdf"
	})

	return &requestValidator{validate: v}
}

// ValidateStruct implements Validator. It does not mutate the input and
// reports every violation, not just the first.
func (r *requestValidator) ValidateStruct(s interface{}) error {
	err := r.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("failed to validate request: %w", err)
	}

	violations := make([]FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, FieldViolation{
			Field:   fieldPath(fe),
			Rule:    fe.Tag(),
			Message: violationMessage(fe),
		})
	}

	return &ValidationError{Violations: violations}
}

// fieldPath strips the top-level struct name from the namespace so callers
// see "experience[0].title" instead of "CvBuildRequest.Experience[0].Title".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, found := strings.Cut(ns, "."); found {
		ns = rest
	}

	parts := strings.Split(ns, ".")
	for i, part := range parts {
		name, suffix := part, ""
		if idx := strings.Index(part, "["); idx != -1 {
			name, suffix = part[:idx], part[idx:]
		}
		parts[i] = lowerFirst(name) + suffix
	}
	return strings.Join(parts, ".")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func violationMessage(fe validator.FieldError) string {
	field := fieldPath(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s entry", field, fe.Param())
	case "datauri":
		return fmt.Sprintf("%s must be a base64 data URI (data:<mediatype>;base64,<data>)", field)
	case "pdfdatauri":
		return fmt.Sprintf("%s must be a base64 data URI with media type application/pdf", field)
	default:
		return fmt.Sprintf("%s failed rule %q", field, fe.Tag())
	}
}
