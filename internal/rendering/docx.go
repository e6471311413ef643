package rendering

import (
	"archive/zip"
	"bytes"
	"text/template"

	"github.com/jonathan/resume-builder-bot/internal/types"
)

// The flowing-paragraph format is WordprocessingML generated from a markup
// template and packaged as an OOXML container. Sizes are half-points,
// mirroring the PDF layout: title 16pt, headings 12pt, body 10pt.

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

const docxDocumentTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
	`<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:rPr><w:rFonts w:ascii="{{.Font}}" w:hAnsi="{{.Font}}" w:cs="{{.Font}}"/><w:b/><w:sz w:val="32"/><w:szCs w:val="32"/></w:rPr><w:t xml:space="preserve">{{escape .Name}}</w:t></w:r></w:p>` +
	`<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:rPr><w:rFonts w:ascii="{{.Font}}" w:hAnsi="{{.Font}}" w:cs="{{.Font}}"/><w:sz w:val="20"/><w:szCs w:val="20"/></w:rPr><w:t xml:space="preserve">{{escape .Contact}}</w:t></w:r></w:p>` +
	`{{range .Sections}}` +
	`<w:p><w:pPr><w:spacing w:before="240" w:after="120"/></w:pPr><w:r><w:rPr><w:rFonts w:ascii="{{$.Font}}" w:hAnsi="{{$.Font}}" w:cs="{{$.Font}}"/><w:b/><w:sz w:val="24"/><w:szCs w:val="24"/></w:rPr><w:t xml:space="preserve">{{escape .Heading}}</w:t></w:r></w:p>` +
	`{{range .Blocks}}` +
	`<w:p>{{if .Gap}}<w:pPr><w:spacing w:after="120"/></w:pPr>{{end}}<w:r><w:rPr><w:rFonts w:ascii="{{$.Font}}" w:hAnsi="{{$.Font}}" w:cs="{{$.Font}}"/>{{if .Bold}}<w:b/>{{end}}{{if .Italic}}<w:i/>{{end}}<w:sz w:val="20"/><w:szCs w:val="20"/></w:rPr><w:t xml:space="preserve">{{escape .Text}}</w:t></w:r></w:p>` +
	`{{end}}{{end}}` +
	`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr>` +
	`</w:body></w:document>`

// docxData is the data structure passed to the WordprocessingML template.
type docxData struct {
	Font     string
	Name     string
	Contact  string
	Sections []Section
}

var docxTemplate = template.Must(template.New("document").Funcs(template.FuncMap{
	"escape": EscapeXML,
}).Parse(docxDocumentTemplate))

// renderDOCX produces the flowing-paragraph document from the same section
// model the PDF renderer uses.
func renderDOCX(resume *types.Resume) ([]byte, error) {
	data := docxData{
		Font:     fontsFor(resume.Template).DOCX,
		Name:     resume.FullName,
		Contact:  contactLine(resume),
		Sections: buildSections(resume),
	}

	var document bytes.Buffer
	if err := docxTemplate.Execute(&document, data); err != nil {
		return nil, &TemplateError{Message: "failed to execute document template", Cause: err}
	}

	parts := []struct {
		name    string
		content []byte
	}{
		{"[Content_Types].xml", []byte(docxContentTypes)},
		{"_rels/.rels", []byte(docxRels)},
		{"word/document.xml", document.Bytes()},
	}

	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)
	for _, part := range parts {
		w, err := archive.Create(part.name)
		if err != nil {
			return nil, &RenderError{Message: "failed to create archive entry " + part.name, Cause: err}
		}
		if _, err := w.Write(part.content); err != nil {
			return nil, &RenderError{Message: "failed to write archive entry " + part.name, Cause: err}
		}
	}
	if err := archive.Close(); err != nil {
		return nil, &RenderError{Message: "failed to finalize archive", Cause: err}
	}

	return buf.Bytes(), nil
}
