package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"no special characters", "Jane Doe", "Jane Doe"},
		{"ampersand", "R&D", "R&amp;D"},
		{"angle brackets", "<w:p>", "&lt;w:p&gt;"},
		{"quotes", `say "hi" it's fine`, "say &quot;hi&quot; it&apos;s fine"},
		{"unicode preserved", "naïve café", "naïve café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeXML(tt.input))
		})
	}
}
