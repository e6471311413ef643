package enrichment

import (
	"sort"
	"strings"
)

// skillToJobs maps lower-cased skill keywords to related job titles. A
// keyword matches when it is a substring of the candidate's case-folded
// skill, so "Python 3" and "Advanced SQL" both match.
var skillToJobs = map[string][]string{
	"python":             {"Python Developer", "Software Engineer", "Data Scientist", "Backend Developer"},
	"javascript":         {"Frontend Developer", "Web Developer", "Full Stack Developer", "UI Engineer"},
	"java":               {"Java Developer", "Software Engineer", "Android Developer", "Backend Developer"},
	"sql":                {"Database Administrator", "Data Analyst", "Backend Developer", "SQL Developer"},
	"data analysis":      {"Data Analyst", "Business Analyst", "Data Scientist", "Research Analyst"},
	"machine learning":   {"Machine Learning Engineer", "Data Scientist", "AI Researcher", "ML Specialist"},
	"project management": {"Project Manager", "Product Manager", "Scrum Master", "Program Manager"},
	"marketing":          {"Marketing Specialist", "Digital Marketer", "Content Strategist", "Marketing Manager"},
	"design":             {"UI/UX Designer", "Graphic Designer", "Product Designer", "Web Designer"},
}

// defaultJobs is returned when no keyword matches any skill.
var defaultJobs = []string{
	"Project Manager",
	"Software Developer",
	"Business Analyst",
	"Data Specialist",
	"Marketing Coordinator",
}

// RecommendJobs returns job titles related to the given skills. Every title
// associated with a matching keyword is included exactly once; the result is
// sorted so repeated calls on the same input yield identical output. When
// nothing matches, a fixed default list is returned.
func RecommendJobs(skills []string) []string {
	matched := make(map[string]bool)
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for keyword, titles := range skillToJobs {
			if !strings.Contains(lower, keyword) {
				continue
			}
			for _, title := range titles {
				matched[title] = true
			}
		}
	}

	if len(matched) == 0 {
		return append([]string{}, defaultJobs...)
	}

	titles := make([]string, 0, len(matched))
	for title := range matched {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}
