package service

import (
	"fmt"
	"strings"

	"github.com/matisaar/T661-Checker/internal/model"
)

// SystemPrompt pins the model to the report-writer persona. The exporter
// replays it into SFT records so training data matches serving.
const SystemPrompt = "You are an expert SR&ED (Scientific Research and Experimental Development) report writer specializing in CRA T661 form project descriptions. You generate compliant, detailed, and technically precise descriptions for Lines 242, 244, and 246. Always use proper SR&ED terminology: technological advancement, technological uncertainty, systematic investigation, hypothesis, competent professional, standard practice."

// BuildGenerationPrompt renders the project facts as labeled lines under a
// section instruction. Title and industry always appear; empty facts are
// left out entirely.
func BuildGenerationPrompt(p *model.ProjectFacts, section string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a T661 %s for the following project:\n\n", model.SectionLabel(section))

	title := p.Title
	if title == "" {
		title = "N/A"
	}
	field := p.Field
	if field == "" {
		field = "N/A"
	}
	fmt.Fprintf(&b, "Project Title: %s\n", title)
	fmt.Fprintf(&b, "Industry: %s\n", field)

	appendFact(&b, "Objective", p.Objective)
	appendFact(&b, "Baseline Technology", p.Baseline)
	appendFact(&b, "Advancement Sought", p.Advancement)
	appendFact(&b, "Why Not Standard Practice", p.WhyNotStandard)
	appendFact(&b, "Uncertainties", p.Uncertainties)
	appendFact(&b, "Why Uncertain", p.WhyUncertain)
	appendFact(&b, "Hypotheses", p.Hypotheses)
	appendFact(&b, "Experiments", p.Experiments)
	appendFact(&b, "Iterations", p.Iterations)
	appendFact(&b, "Results", p.Results)
	appendFact(&b, "Personnel", p.Personnel)

	return b.String()
}

func appendFact(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

// BuildImprovePrompt wraps existing narrative text in the improvement
// instruction.
func BuildImprovePrompt(text, section string) string {
	return fmt.Sprintf("Improve the following T661 Line %s description to be more CRA-compliant. Fix any weak language, add missing required elements, and ensure proper SR&ED terminology is used. Keep the technical content accurate but strengthen the SR&ED compliance.\n\nOriginal text:\n%s\n\nImproved version:", section, text)
}
