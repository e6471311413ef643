package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhanceSkills_PadsToEight(t *testing.T) {
	enhanced := EnhanceSkills([]string{"Python", "SQL"})
	require.Len(t, enhanced, 8)

	// Original skills stay first, in original order.
	assert.Equal(t, "Python", enhanced[0])
	assert.Equal(t, "SQL", enhanced[1])

	// Remainder comes from the fallback list in its fixed order.
	assert.Equal(t, []string{"Problem Solving", "Communication", "Teamwork", "Time Management", "Leadership", "Critical Thinking"}, enhanced[2:])
}

func TestEnhanceSkills_SkipsFallbacksAlreadyPresent(t *testing.T) {
	enhanced := EnhanceSkills([]string{"Communication", "Python"})
	require.Len(t, enhanced, 8)
	assert.Equal(t, "Communication", enhanced[0])

	seen := make(map[string]int)
	for _, skill := range enhanced {
		seen[skill]++
	}
	assert.Equal(t, 1, seen["Communication"], "fallback duplicate must not be appended")
}

func TestEnhanceSkills_EightOrMoreUnchanged(t *testing.T) {
	skills := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	enhanced := EnhanceSkills(skills)
	assert.Equal(t, skills, enhanced)
}

func TestEnhanceSkills_EmptyInputGetsAllFallbacks(t *testing.T) {
	enhanced := EnhanceSkills(nil)
	assert.Equal(t, fallbackSkills, enhanced)
}

func TestEnhanceSkills_DoesNotMutateInput(t *testing.T) {
	skills := []string{"Go"}
	_ = EnhanceSkills(skills)
	assert.Equal(t, []string{"Go"}, skills)
}

func TestEnhanceSkills_CaseSensitiveMatch(t *testing.T) {
	// "teamwork" differs in case from the fallback "Teamwork", so both end up
	// in the list.
	enhanced := EnhanceSkills([]string{"teamwork"})
	assert.Contains(t, enhanced, "teamwork")
	assert.Contains(t, enhanced, "Teamwork")
}
