package composer

import "strings"

// enumCutset covers the list markers claimants paste in front of items:
// numbering ("1.", "2)"), dashes and bullet glyphs.
const enumCutset = "0123456789.-)•* "

// Lines splits raw multi-line input into trimmed, non-empty lines.
func Lines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Items is Lines with leading enumeration markers stripped from each line,
// so re-numbered output never stacks markers. Sanitizing already-sanitized
// text is a no-op.
func Items(raw string) []string {
	lines := Lines(raw)
	for i, line := range lines {
		lines[i] = StripEnum(line)
	}
	return lines
}

// StripEnum removes a leading enumeration marker from one line.
func StripEnum(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, enumCutset))
}
