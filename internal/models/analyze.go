package models

// AnalyzeRequest carries a CV document in PDF format, as a data URI that
// must include a MIME type and use base64 encoding. Expected format:
// "data:<mimetype>;base64,<encoded_data>".
type AnalyzeRequest struct {
	CVPDFDataURI string `json:"cvPdfDataUri" validate:"required,pdfdatauri"`
}

// AnalyzeResult is the feedback produced for an analyzed CV. All three
// fields are always present in a successful result; an empty string is
// permitted, absence is not.
type AnalyzeResult struct {
	Strengths   string `json:"strengths"`
	Weaknesses  string `json:"weaknesses"`
	Suggestions string `json:"suggestions"`
}
