package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder-bot/internal/types"
)

// Document is a rendered resume: the document bytes plus the filename
// suggested for delivery. Writing it anywhere is the caller's concern.
type Document struct {
	Data     []byte
	Filename string
}

// Render converts a completed resume record into a document in the record's
// chosen output format. The record must already carry its derived fields;
// partial records are rejected before any format work happens.
func Render(resume *types.Resume) (*Document, error) {
	if err := resume.Validate(); err != nil {
		return nil, &RenderError{Message: "resume record is incomplete", Cause: err}
	}

	var (
		data []byte
		err  error
	)
	switch resume.Format {
	case types.FormatPDF:
		data, err = renderPDF(resume)
	case types.FormatDOCX:
		data, err = renderDOCX(resume)
	default:
		// Unreachable through the state machine; guards direct callers.
		return nil, &RenderError{Message: fmt.Sprintf("unsupported output format %q", resume.Format)}
	}
	if err != nil {
		return nil, err
	}

	return &Document{
		Data:     data,
		Filename: Filename(resume.FullName, resume.Format),
	}, nil
}

// Filename derives the suggested file name from the candidate's name:
// lower-cased, spaces replaced with underscores, extension matching the
// output format.
func Filename(name string, format types.Format) string {
	slug := strings.ReplaceAll(strings.ToLower(name), " ", "_")
	return fmt.Sprintf("resume_%s.%s", slug, format)
}
