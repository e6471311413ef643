// Package parsing converts raw delimited user input into structured resume records.
package parsing

import (
	"strings"

	"github.com/jonathan/resume-builder-bot/internal/types"
)

// Minimum comma-separated fields a line must supply to produce an entry.
// Lines below the minimum are dropped silently; that is collection policy,
// not an error.
const (
	minEducationFields  = 2
	minExperienceFields = 3
	minProjectFields    = 1
)

// ParseEducation parses newline-separated education entries. Each line is
// split on commas into at most 3 fields: degree, institution, year. Year is
// optional; lines with fewer than 2 fields are dropped.
func ParseEducation(text string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	for _, line := range splitLines(text) {
		parts := splitFields(line, 3)
		if len(parts) < minEducationFields {
			continue
		}
		entry := types.EducationEntry{
			Degree:      parts[0],
			Institution: parts[1],
		}
		if len(parts) > 2 {
			entry.Year = parts[2]
		}
		entries = append(entries, entry)
	}
	return entries
}

// ParseExperience parses newline-separated experience entries. Each line is
// split on commas into at most 4 fields: position, company, duration,
// description. The description is optional and may itself contain commas
// because the split caps at 4 fields. Lines with fewer than 3 fields are
// dropped.
func ParseExperience(text string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	for _, line := range splitLines(text) {
		parts := splitFields(line, 4)
		if len(parts) < minExperienceFields {
			continue
		}
		entry := types.ExperienceEntry{
			Position: parts[0],
			Company:  parts[1],
			Duration: parts[2],
		}
		if len(parts) > 3 {
			entry.Description = parts[3]
		}
		entries = append(entries, entry)
	}
	return entries
}

// ParseProjects parses newline-separated project entries. Each line is split
// on the first comma into name and description; the description may contain
// commas.
func ParseProjects(text string) []types.ProjectEntry {
	entries := []types.ProjectEntry{}
	for _, line := range splitLines(text) {
		parts := splitFields(line, 2)
		if len(parts) < minProjectFields {
			continue
		}
		entry := types.ProjectEntry{Name: parts[0]}
		if len(parts) > 1 {
			entry.Description = parts[1]
		}
		entries = append(entries, entry)
	}
	return entries
}

// ParseSkills parses a comma-separated skill list, trimming each segment and
// dropping empty ones. Order follows the user's listing.
func ParseSkills(text string) []string {
	skills := []string{}
	for _, segment := range strings.Split(text, ",") {
		skill := strings.TrimSpace(segment)
		if skill == "" {
			continue
		}
		skills = append(skills, skill)
	}
	return skills
}

// splitLines returns the non-empty, trimmed lines of text.
func splitLines(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// splitFields splits a line on commas into at most maxFields trimmed fields.
// Fields that trim to empty are kept positionally (a line "a,," still has
// three fields) so that the minimum-field policy only counts what the user
// actually delimited.
func splitFields(line string, maxFields int) []string {
	parts := strings.SplitN(line, ",", maxFields)
	fields := make([]string, len(parts))
	for i, part := range parts {
		fields[i] = strings.TrimSpace(part)
	}
	return fields
}
