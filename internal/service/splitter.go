package service

import (
	"strings"

	"github.com/matisaar/T661-Checker/internal/model"
)

// Literal markers the model is instructed to emit when it writes all three
// sections in one reply.
const (
	marker242 = "LINE 242"
	marker244 = "LINE 244"
	marker246 = "LINE 246"
)

// SplitSections partitions a combined model reply into the three line
// sections. The reply is split only when all three markers are present in
// document order; each part keeps its own marker and is trimmed. Any other
// shape (a missing marker, markers out of order) is not guessed at: the
// whole reply lands under line242 unchanged.
func SplitSections(reply string) model.Sections {
	i242 := strings.Index(reply, marker242)
	i244 := strings.Index(reply, marker244)
	i246 := strings.Index(reply, marker246)

	if i242 < 0 || i244 < 0 || i246 < 0 || i242 > i244 || i244 > i246 {
		return model.Sections{model.KeyLine242: reply}
	}

	return model.Sections{
		model.KeyLine242: strings.TrimSpace(reply[:i244]),
		model.KeyLine244: strings.TrimSpace(reply[i244:i246]),
		model.KeyLine246: strings.TrimSpace(reply[i246:]),
	}
}
