// Package rendering converts a completed resume record into a formatted
// document. Both output formats consume the same section model, so the
// rendered content and section order are identical across formats; only
// layout mechanics differ.
package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder-bot/internal/types"
)

// Block is one renderable unit of body content within a section.
type Block struct {
	Text    string
	Bold    bool
	Italic  bool
	Wrapped bool // wrapped paragraph rather than a single line
	Gap     bool // vertical gap follows (ends an entry group)
}

// Section is a titled group of blocks. Sections with no blocks are not
// rendered at all, heading included.
type Section struct {
	Heading string
	Blocks  []Block
}

// buildSections assembles the document body in its fixed section order:
// summary, experience, education, skills, projects. The header (name and
// contact line) is format-specific and handled by each renderer.
func buildSections(resume *types.Resume) []Section {
	sections := []Section{}

	if resume.Summary != "" {
		sections = append(sections, Section{
			Heading: "Professional Summary",
			Blocks: []Block{
				{Text: resume.Summary, Wrapped: true, Gap: true},
			},
		})
	}

	if len(resume.Experience) > 0 {
		section := Section{Heading: "Work Experience"}
		for _, exp := range resume.Experience {
			section.Blocks = append(section.Blocks,
				Block{Text: fmt.Sprintf("%s - %s", exp.Position, exp.Company), Bold: true},
				Block{Text: exp.Duration, Italic: true},
				Block{Text: exp.Description, Wrapped: true, Gap: true},
			)
		}
		sections = append(sections, section)
	}

	if len(resume.Education) > 0 {
		section := Section{Heading: "Education"}
		for _, edu := range resume.Education {
			section.Blocks = append(section.Blocks,
				Block{Text: edu.Degree, Bold: true},
				// Year may be empty; the trailing comma is kept.
				Block{Text: fmt.Sprintf("%s, %s", edu.Institution, edu.Year), Gap: true},
			)
		}
		sections = append(sections, section)
	}

	if len(resume.EnhancedSkills) > 0 {
		sections = append(sections, Section{
			Heading: "Skills",
			Blocks: []Block{
				{Text: strings.Join(resume.EnhancedSkills, ", "), Wrapped: true, Gap: true},
			},
		})
	}

	if len(resume.Projects) > 0 {
		section := Section{Heading: "Projects"}
		for _, project := range resume.Projects {
			section.Blocks = append(section.Blocks,
				Block{Text: project.Name, Bold: true},
				Block{Text: project.Description, Wrapped: true, Gap: true},
			)
		}
		sections = append(sections, section)
	}

	return sections
}

// contactLine renders the single header line under the name.
func contactLine(resume *types.Resume) string {
	return fmt.Sprintf("Email: %s | Phone: %s", resume.Email, resume.Phone)
}
