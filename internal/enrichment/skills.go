package enrichment

// maxSkills caps the enhanced skill list length.
const maxSkills = 8

// fallbackSkills are appended, in order, to skill lists shorter than
// maxSkills. Matching against the user's skills is a case-sensitive exact
// comparison.
var fallbackSkills = []string{
	"Problem Solving",
	"Communication",
	"Teamwork",
	"Time Management",
	"Leadership",
	"Critical Thinking",
	"Adaptability",
	"Project Management",
}

// EnhanceSkills returns the user's skills, in their original order, padded
// with generic professional skills up to maxSkills entries. Fallback entries
// already present in the user's list are skipped. The input slice is not
// modified.
func EnhanceSkills(skills []string) []string {
	enhanced := make([]string, len(skills), max(len(skills), maxSkills))
	copy(enhanced, skills)

	if len(enhanced) >= maxSkills {
		return enhanced
	}

	present := make(map[string]bool, len(enhanced))
	for _, skill := range enhanced {
		present[skill] = true
	}

	for _, skill := range fallbackSkills {
		if len(enhanced) >= maxSkills {
			break
		}
		if present[skill] {
			continue
		}
		enhanced = append(enhanced, skill)
	}

	return enhanced
}
