// Package composer builds T661 narrative sections from project facts using
// fixed prose skeletons. It is the deterministic fallback used whenever no
// language model is available, and it never errors: absent facts simply
// drop their clauses.
package composer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matisaar/T661-Checker/internal/model"
)

// hypothesis inputs often arrive pre-labeled ("H1:", "h2)"); strip the
// label so relabeling does not produce "H1: H1: ..."
const hypothesisCutset = "Hh0123456789.-):• *"

// Compose renders the requested section(s) from the given facts. "all"
// yields all three lines; a single selector yields only that key.
func Compose(p *model.ProjectFacts, section string) model.Sections {
	sections := model.Sections{}
	if section == model.SectionAll || section == model.SectionAdvancement {
		sections[model.KeyLine242] = composeAdvancement(p)
	}
	if section == model.SectionAll || section == model.SectionUncertainty {
		sections[model.KeyLine244] = composeUncertainty(p)
	}
	if section == model.SectionAll || section == model.SectionWork {
		sections[model.KeyLine246] = composeWork(p)
	}
	return sections
}

func composeAdvancement(p *model.ProjectFacts) string {
	field := p.Field
	if field == "" {
		field = "technology"
	}

	var b strings.Builder
	b.WriteString("LINE 242 - SCIENTIFIC OR TECHNOLOGICAL ADVANCEMENT\n\n")

	if p.Objective != "" {
		fmt.Fprintf(&b, "The objective of this project was to achieve a technological advancement in the field of %s through %s.\n\n",
			field, strings.TrimRight(p.Objective, "."))
	} else {
		fmt.Fprintf(&b, "The objective of this project was to achieve a technological advancement in the field of %s.\n\n", field)
	}

	if p.Baseline != "" {
		fmt.Fprintf(&b, "At the outset of this project, the state of technology was as follows: %s\n\n", p.Baseline)
	}

	if p.Advancement != "" {
		fmt.Fprintf(&b, "The technological advancement sought was %s.\n\n", strings.TrimRight(p.Advancement, "."))
	}

	if p.WhyNotStandard != "" {
		fmt.Fprintf(&b, "This advancement could not be achieved through standard practice because %s. A competent professional in the field would not have been able to achieve this advancement using existing knowledge, publicly available information, or standard industry methodologies.",
			strings.TrimRight(p.WhyNotStandard, "."))
	}

	return strings.TrimSpace(b.String())
}

func composeUncertainty(p *model.ProjectFacts) string {
	var b strings.Builder
	b.WriteString("LINE 244 - SCIENTIFIC OR TECHNOLOGICAL UNCERTAINTY\n\n")
	b.WriteString("At the commencement of this project, the following technological uncertainties existed that could not be resolved by a competent professional in the field using standard practice, publicly available knowledge, or existing technical literature:\n\n")

	for i, item := range Items(p.Uncertainties) {
		clause := item
		if !strings.HasPrefix(strings.ToLower(clause), "it was uncertain") {
			clause = "it was uncertain " + clause
		}
		fmt.Fprintf(&b, "%d. %s\n\n", i+1, capitalize(clause))
	}

	if p.WhyUncertain != "" {
		fmt.Fprintf(&b, "These uncertainties could not be resolved by a competent professional through standard practice because %s.\n\n",
			strings.TrimRight(p.WhyUncertain, "."))
	}

	if hyps := Lines(p.Hypotheses); len(hyps) > 0 {
		b.WriteString("To address these uncertainties, the following hypotheses were formulated:\n\n")
		for i, h := range hyps {
			fmt.Fprintf(&b, "H%d: %s\n", i+1, strings.TrimSpace(strings.TrimLeft(h, hypothesisCutset)))
		}
	}

	return strings.TrimSpace(b.String())
}

func composeWork(p *model.ProjectFacts) string {
	var b strings.Builder
	b.WriteString("LINE 246 - WORK PERFORMED\n\n")

	if p.Personnel != "" {
		fmt.Fprintf(&b, "A systematic investigation was conducted by a team of %s to address the technological uncertainties identified above.\n\n", p.Personnel)
	} else {
		b.WriteString("A systematic investigation was conducted to address the technological uncertainties identified above.\n\n")
	}

	if exps := Items(p.Experiments); len(exps) > 0 {
		b.WriteString("The following experiments and tests were designed and performed as part of the systematic investigation:\n\n")
		for _, e := range exps {
			fmt.Fprintf(&b, "• %s\n", e)
		}
		b.WriteString("\n")
	}

	if iters := Items(p.Iterations); len(iters) > 0 {
		b.WriteString("Based on experimental results, the following iterations and modifications were made:\n\n")
		for _, it := range iters {
			fmt.Fprintf(&b, "• %s\n", it)
		}
		b.WriteString("\n")
	}

	if p.Results != "" {
		fmt.Fprintf(&b, "The systematic investigation yielded the following results and conclusions: %s\n\n", p.Results)
	}

	b.WriteString("The work described above constitutes a systematic investigation carried out in a field of science or technology by means of experiment or analysis.")

	return strings.TrimSpace(b.String())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
