package composer

import (
	"strings"

	"github.com/matisaar/T661-Checker/internal/model"
)

// phraseCheck is one compliance check: the text must contain at least one
// of the listed phrases (case-insensitive), otherwise the suggestion is
// raised.
type phraseCheck struct {
	phrases    []string
	suggestion string
}

var checksBySection = map[string][]phraseCheck{
	model.SectionAdvancement: {
		{[]string{"technological advancement"}, "Consider adding: 'The technological advancement sought was...'"},
		{[]string{"standard practice", "competent professional"}, "Consider adding: 'This could not be achieved through standard practice because...'"},
		{[]string{"state of technology", "baseline"}, "Consider adding: 'At the outset of this project, the state of technology was...'"},
	},
	model.SectionUncertainty: {
		{[]string{"it was uncertain"}, "Frame uncertainties as: 'It was uncertain whether...'"},
		{[]string{"competent professional"}, "Add: 'A competent professional could not resolve these through standard practice because...'"},
		{[]string{"hypothes"}, "Consider adding hypotheses: 'H1: ...'"},
	},
	model.SectionWork: {
		{[]string{"systematic"}, "Add: 'A systematic investigation was conducted...'"},
		{[]string{"experiment", "test"}, "Describe specific experiments and tests performed"},
		{[]string{"iteration", "modif"}, "Describe iterations/modifications made based on results"},
	},
}

// Suggest runs the section's compliance checks over the text and appends a
// suggestions block for whatever is missing. Text that already passes every
// check comes back unchanged.
func Suggest(text, section string) string {
	textLower := strings.ToLower(text)

	var missing []string
	for _, check := range checksBySection[section] {
		found := false
		for _, phrase := range check.phrases {
			if strings.Contains(textLower, phrase) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, check.suggestion)
		}
	}

	if len(missing) == 0 {
		return text
	}

	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n--- SUGGESTED IMPROVEMENTS ---\n")
	for _, s := range missing {
		b.WriteString("• ")
		b.WriteString(s)
		b.WriteString("\n")
	}
	return b.String()
}
