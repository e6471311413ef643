package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResume() *Resume {
	return &Resume{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 555 0100",
		Skills:   []string{"Python"},
		Template: TemplateProfessional,
		Format:   FormatPDF,
	}
}

func TestResumeValidate_CompleteRecord(t *testing.T) {
	assert.NoError(t, validResume().Validate())
}

func TestResumeValidate_PartialRecord(t *testing.T) {
	resume := &Resume{FullName: "Jane Doe"}
	assert.Error(t, resume.Validate())
}

func TestResumeValidate_RejectsValuesOutsideEnums(t *testing.T) {
	resume := validResume()
	resume.Template = "modern"
	assert.Error(t, resume.Validate())

	resume = validResume()
	resume.Format = "html"
	assert.Error(t, resume.Validate())
}

func TestTemplates_ClosedSet(t *testing.T) {
	templates := Templates()
	require.Len(t, templates, 4)
	assert.Equal(t, TemplateProfessional, templates[0])

	for _, template := range templates {
		assert.True(t, ValidTemplate(string(template)))
		assert.NotEmpty(t, TemplateDescriptions[template])
	}
	assert.False(t, ValidTemplate("modern"))
	assert.False(t, ValidTemplate(""))
}

func TestFormats_ClosedSet(t *testing.T) {
	assert.True(t, ValidFormat("pdf"))
	assert.True(t, ValidFormat("docx"))
	assert.False(t, ValidFormat("html"))
	assert.False(t, ValidFormat(""))
}
