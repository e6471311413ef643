package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder-bot/internal/types"
)

func TestParseEducation_SingleEntry(t *testing.T) {
	entries := ParseEducation("Bachelor of Science in Computer Science, MIT, 2020")
	require.Len(t, entries, 1)
	assert.Equal(t, "Bachelor of Science in Computer Science", entries[0].Degree)
	assert.Equal(t, "MIT", entries[0].Institution)
	assert.Equal(t, "2020", entries[0].Year)
}

func TestParseEducation_YearOptional(t *testing.T) {
	entries := ParseEducation("MSc Physics, Oxford")
	require.Len(t, entries, 1)
	assert.Equal(t, "MSc Physics", entries[0].Degree)
	assert.Equal(t, "Oxford", entries[0].Institution)
	assert.Empty(t, entries[0].Year)
}

func TestParseEducation_DropsLinesBelowMinimum(t *testing.T) {
	entries := ParseEducation("BS Computer Science, MIT, 2020\nBad Line")
	require.Len(t, entries, 1)
	assert.Equal(t, "BS Computer Science", entries[0].Degree)
}

func TestParseEducation_MultipleEntriesAndBlankLines(t *testing.T) {
	input := "BS Math, Stanford, 2018\n\n  \nBA History, Yale, 2015"
	entries := ParseEducation(input)
	require.Len(t, entries, 2)
	assert.Equal(t, "Stanford", entries[0].Institution)
	assert.Equal(t, "Yale", entries[1].Institution)
}

func TestParseEducation_Empty(t *testing.T) {
	assert.Empty(t, ParseEducation(""))
	assert.Empty(t, ParseEducation("\n\n"))
}

func TestParseExperience_FullEntry(t *testing.T) {
	entries := ParseExperience("Software Engineer, Google, 2020-2022, Developed features for Google Maps")
	require.Len(t, entries, 1)
	assert.Equal(t, types.ExperienceEntry{
		Position:    "Software Engineer",
		Company:     "Google",
		Duration:    "2020-2022",
		Description: "Developed features for Google Maps",
	}, entries[0])
}

func TestParseExperience_DescriptionOptional(t *testing.T) {
	entries := ParseExperience("Analyst, Deloitte, 2019-2021")
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Description)
}

func TestParseExperience_DescriptionKeepsCommas(t *testing.T) {
	entries := ParseExperience("Engineer, Acme, 2021, Built pipelines, dashboards, and alerts")
	require.Len(t, entries, 1)
	assert.Equal(t, "Built pipelines, dashboards, and alerts", entries[0].Description)
}

func TestParseExperience_DropsLinesBelowMinimum(t *testing.T) {
	entries := ParseExperience("Engineer, Acme\nManager, Initech, 2018-2020")
	require.Len(t, entries, 1)
	assert.Equal(t, "Initech", entries[0].Company)
}

func TestParseProjects_NameOnly(t *testing.T) {
	entries := ParseProjects("Personal Website")
	require.Len(t, entries, 1)
	assert.Equal(t, "Personal Website", entries[0].Name)
	assert.Empty(t, entries[0].Description)
}

func TestParseProjects_DescriptionKeepsCommas(t *testing.T) {
	entries := ParseProjects("Personal Website, Built with React, Go, and Postgres")
	require.Len(t, entries, 1)
	assert.Equal(t, "Personal Website", entries[0].Name)
	assert.Equal(t, "Built with React, Go, and Postgres", entries[0].Description)
}

func TestParseSkills_TrimsAndDropsEmpty(t *testing.T) {
	skills := ParseSkills(" Python , JavaScript ,, Data Analysis, ")
	assert.Equal(t, []string{"Python", "JavaScript", "Data Analysis"}, skills)
}

func TestParseSkills_PreservesOrder(t *testing.T) {
	skills := ParseSkills("SQL, Python, Go")
	assert.Equal(t, []string{"SQL", "Python", "Go"}, skills)
}

func TestParseSkills_Empty(t *testing.T) {
	assert.Empty(t, ParseSkills(""))
	assert.Empty(t, ParseSkills(" , ,"))
}
