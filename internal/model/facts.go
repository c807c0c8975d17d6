package model

// ProjectFacts carries the free-text inputs a claimant provides about one
// SR&ED project. Every field is optional; an empty field means the
// corresponding clause is omitted from the narrative, never an error.
type ProjectFacts struct {
	Title          string `json:"title"`
	Field          string `json:"field"`
	Objective      string `json:"objective"`
	Baseline       string `json:"baseline"`
	Advancement    string `json:"advancement"`
	WhyNotStandard string `json:"whyNotStandard"`
	Uncertainties  string `json:"uncertainties"`
	WhyUncertain   string `json:"whyUncertain"`
	Hypotheses     string `json:"hypotheses"`
	Experiments    string `json:"experiments"`
	Iterations     string `json:"iterations"`
	Results        string `json:"results"`
	Personnel      string `json:"personnel"`
}

// Section selectors accepted by generate requests.
const (
	SectionAdvancement = "242"
	SectionUncertainty = "244"
	SectionWork        = "246"
	SectionAll         = "all"
)

// Response keys for the three T661 narrative lines.
const (
	KeyLine242 = "line242"
	KeyLine244 = "line244"
	KeyLine246 = "line246"
)

// Sections maps line keys (line242, line244, line246) to narrative text.
type Sections map[string]string

// ValidSection reports whether s is an accepted section selector.
func ValidSection(s string) bool {
	switch s {
	case SectionAdvancement, SectionUncertainty, SectionWork, SectionAll:
		return true
	}
	return false
}

// SectionKey converts a selector like "242" to its response key "line242".
func SectionKey(section string) string {
	return "line" + section
}

// SectionLabel returns the human-readable form used in prompts.
func SectionLabel(section string) string {
	switch section {
	case SectionAdvancement:
		return "Line 242 (Scientific or Technological Advancement)"
	case SectionUncertainty:
		return "Line 244 (Scientific or Technological Uncertainty)"
	case SectionWork:
		return "Line 246 (Work Performed)"
	case SectionAll:
		return "all three sections (Lines 242, 244, and 246)"
	}
	return "complete report"
}
