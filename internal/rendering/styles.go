package rendering

import "github.com/jonathan/resume-builder-bot/internal/types"

// styleFonts carries the font family a template preset maps to, named per
// output format: the PDF core font identifier and the equivalent installed
// family for word processors. Only the family varies by preset; weights and
// sizes are format-level constants.
type styleFonts struct {
	PDF  string
	DOCX string
}

var templateFonts = map[types.Template]styleFonts{
	types.TemplateProfessional: {PDF: "Helvetica", DOCX: "Arial"},
	types.TemplateCreative:     {PDF: "Helvetica", DOCX: "Arial"},
	types.TemplateAcademic:     {PDF: "Times", DOCX: "Times New Roman"},
	types.TemplateTechnical:    {PDF: "Courier", DOCX: "Courier New"},
}

// fontsFor returns the font mapping for a template, defaulting to the
// professional preset for anything unknown. Unknown templates cannot reach
// the renderer through the state machine; the default keeps direct callers
// safe.
func fontsFor(template types.Template) styleFonts {
	if fonts, ok := templateFonts[template]; ok {
		return fonts
	}
	return templateFonts[types.TemplateProfessional]
}
