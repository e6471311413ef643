// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// Template identifies a resume style preset. The preset selects the font
// family used for headings and body text in the rendered document.
type Template string

// The closed set of resume templates.
const (
	TemplateProfessional Template = "professional"
	TemplateCreative     Template = "creative"
	TemplateAcademic     Template = "academic"
	TemplateTechnical    Template = "technical"
)

// TemplateDescriptions maps each template to the short description shown
// alongside the selection prompt.
var TemplateDescriptions = map[Template]string{
	TemplateProfessional: "Professional template with a clean, minimalist design",
	TemplateCreative:     "Creative template with modern styling and accents",
	TemplateAcademic:     "Academic template focused on publications and research",
	TemplateTechnical:    "Technical template highlighting skills and projects",
}

// Templates returns the template identifiers in presentation order.
func Templates() []Template {
	return []Template{TemplateProfessional, TemplateCreative, TemplateAcademic, TemplateTechnical}
}

// ValidTemplate reports whether id is one of the known templates.
func ValidTemplate(id string) bool {
	_, ok := TemplateDescriptions[Template(id)]
	return ok
}

// Format identifies a document output format.
type Format string

// The closed set of output formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// Formats returns the output formats in presentation order.
func Formats() []Format {
	return []Format{FormatPDF, FormatDOCX}
}

// ValidFormat reports whether id is one of the known output formats.
func ValidFormat(id string) bool {
	return Format(id) == FormatPDF || Format(id) == FormatDOCX
}

// EducationEntry represents one education record parsed from user input.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"`
}

// ExperienceEntry represents one work experience record parsed from user input.
type ExperienceEntry struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

// ProjectEntry represents one project record parsed from user input.
type ProjectEntry struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Resume is the session record accumulated over one guided dialogue.
// Summary and EnhancedSkills are derived fields populated after the final
// collection step; a Resume is only valid for rendering once every field
// carrying a validate tag is set.
type Resume struct {
	FullName   string            `json:"full_name" validate:"required"`
	Email      string            `json:"email" validate:"required"`
	Phone      string            `json:"phone" validate:"required"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Skills     []string          `json:"skills"`
	Projects   []ProjectEntry    `json:"projects,omitempty"`
	Template   Template          `json:"template" validate:"required,oneof=professional creative academic technical"`
	Format     Format            `json:"format" validate:"required,oneof=pdf docx"`

	// Derived fields
	Summary        string   `json:"summary,omitempty"`
	EnhancedSkills []string `json:"enhanced_skills,omitempty"`
}

// Validate checks that the record has every field required for rendering.
// Partial records collected mid-dialogue fail validation.
func (r *Resume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
