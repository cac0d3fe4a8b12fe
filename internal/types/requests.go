package types

import "github.com/go-playground/validator/v10"

// AnalyzeGapRequest carries two pre-extracted skill sets for analysis.
type AnalyzeGapRequest struct {
	ResumeSkills *SkillExtractionResult `json:"resume_skills" validate:"required"`
	JDSkills     *SkillExtractionResult `json:"jd_skills" validate:"required"`

	// Optional scoring weight overrides, keyed "technical" / "soft_skills".
	Weights map[string]float64 `json:"weights,omitempty" validate:"omitempty,dive,gte=0"`
}

// AnalyzeGapFromTextRequest carries raw text (or stored session document ids)
// for both sides; extraction runs before analysis.
type AnalyzeGapFromTextRequest struct {
	ResumeText string `json:"resume_text,omitempty"`
	JDText     string `json:"jd_text,omitempty"`
	ResumeID   string `json:"resume_id,omitempty" validate:"omitempty,uuid4"`
	JDID       string `json:"jd_id,omitempty" validate:"omitempty,uuid4"`

	Weights map[string]float64 `json:"weights,omitempty" validate:"omitempty,dive,gte=0"`
}

// TextInputRequest stores raw document text in the session store.
type TextInputRequest struct {
	Text       string `json:"text" validate:"required,min=10"`
	SourceType string `json:"source_type" validate:"required,oneof=resume job_description"`
}

// TextInputResponse returns the session id for a stored document.
type TextInputResponse struct {
	ID         string `json:"id"`
	SourceType string `json:"source_type"`
	CharCount  int    `json:"char_count"`
}

// AnalyzeGapResponse wraps a report with timing information.
type AnalyzeGapResponse struct {
	Report       *SkillGapReport `json:"report"`
	AnalysisTime float64         `json:"analysis_time"` // Seconds
}

// Validate validates the AnalyzeGapRequest using the validator.
func (r *AnalyzeGapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalyzeGapFromTextRequest using the validator.
// Exactly one of text or id must be present for each side.
func (r *AnalyzeGapFromTextRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if (r.ResumeText == "") == (r.ResumeID == "") {
		return &FieldError{Field: "resume_text", Message: "exactly one of resume_text or resume_id is required"}
	}
	if (r.JDText == "") == (r.JDID == "") {
		return &FieldError{Field: "jd_text", Message: "exactly one of jd_text or jd_id is required"}
	}
	return nil
}

// Validate validates the TextInputRequest using the validator.
func (r *TextInputRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// FieldError reports a request field that failed cross-field validation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}
