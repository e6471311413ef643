// Package enrichment derives presentation fields from collected resume data:
// a narrative summary, an augmented skill list, and job title suggestions.
package enrichment

import (
	"fmt"
	"strings"
)

// summaryLeadSkills is how many listed skills the summary sentence cites.
const summaryLeadSkills = 3

// Summarize builds the professional summary sentence from the candidate's
// name and their first three listed skills. With fewer than three skills,
// only the available ones are joined.
func Summarize(name string, skills []string) string {
	lead := skills
	if len(lead) > summaryLeadSkills {
		lead = lead[:summaryLeadSkills]
	}
	return fmt.Sprintf(
		"%s is a dedicated professional with expertise in %s. Seeking new opportunities to apply these skills in a challenging environment.",
		name, strings.Join(lead, ", "),
	)
}
