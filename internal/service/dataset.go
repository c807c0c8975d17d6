package service

import (
	"fmt"
	"strings"
	"sync"

	"k8s.io/klog/v2"

	"github.com/matisaar/T661-Checker/internal/model"
	"github.com/matisaar/T661-Checker/internal/repository"
)

// ExportResult reports what one dataset rebuild produced.
type ExportResult struct {
	PairsWritten    int    `json:"pairs_written"`
	ExamplesWritten int    `json:"examples_written"`
	TotalFeedback   int    `json:"total_feedback_seen"`
	DPOPath         string `json:"dpo_path"`
	SFTPath         string `json:"sft_path"`
}

// DatasetService derives the DPO and SFT training datasets from the
// feedback log. Every export recomputes both files from the full log; the
// log is the sole source of truth and the datasets are safe to delete and
// rebuild at any time.
type DatasetService struct {
	mu       sync.Mutex
	feedback repository.FeedbackLogRepository
	datasets repository.DatasetRepository
}

func NewDatasetService(feedback repository.FeedbackLogRepository, datasets repository.DatasetRepository) *DatasetService {
	return &DatasetService{feedback: feedback, datasets: datasets}
}

// ratingGroup accumulates the feedback sharing one (generationId, section)
// key. Slices keep arrival order; avoidWords is deduplicated in first-seen
// order.
type ratingGroup struct {
	section    string
	ups        []string
	downs      []string
	avoidWords []string
	seenWords  map[string]bool
}

// Export rebuilds both datasets from the full feedback log and overwrites
// them. Exports are serialized under the service lock so one rebuild never
// reads the log while another rebuild's rewrite is in flight; with no new
// feedback in between, two exports produce byte-identical files.
func (s *DatasetService) Export() (*ExportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.feedback.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load feedback log: %w", err)
	}

	var pairs []model.PreferencePair
	var examples []model.SFTExample
	for _, g := range collectGroups(entries) {
		prompt := buildDatasetPrompt(g)
		if len(g.ups) > 0 && len(g.downs) > 0 {
			pairs = append(pairs, model.PreferencePair{
				Prompt:   prompt,
				Chosen:   strings.Join(g.ups, "\n\n"),
				Rejected: strings.Join(g.downs, "\n\n"),
			})
		}
		if len(g.ups) > 0 {
			examples = append(examples, model.SFTExample{
				System:      SystemPrompt,
				Instruction: prompt,
				Output:      strings.Join(g.ups, "\n\n"),
			})
		}
	}

	dpoPath, err := s.datasets.WriteDPO(pairs)
	if err != nil {
		return nil, fmt.Errorf("write DPO dataset: %w", err)
	}
	sftPath, err := s.datasets.WriteSFT(examples)
	if err != nil {
		return nil, fmt.Errorf("write SFT dataset: %w", err)
	}

	klog.V(6).Infof("[DatasetService] export done: pairs=%d, examples=%d, feedback=%d", len(pairs), len(examples), len(entries))

	return &ExportResult{
		PairsWritten:    len(pairs),
		ExamplesWritten: len(examples),
		TotalFeedback:   len(entries),
		DPOPath:         dpoPath,
		SFTPath:         sftPath,
	}, nil
}

// collectGroups buckets entries by (generationId, section) in first-seen
// order. Deterministic ordering is what keeps repeated exports
// byte-identical.
func collectGroups(entries []model.FeedbackEntry) []*ratingGroup {
	type groupKey struct {
		generationID string
		section      string
	}
	byKey := map[groupKey]*ratingGroup{}
	var order []*ratingGroup

	for i := range entries {
		e := &entries[i]
		k := groupKey{e.GenerationID, e.Section}
		g, ok := byKey[k]
		if !ok {
			g = &ratingGroup{section: e.Section, seenWords: map[string]bool{}}
			byKey[k] = g
			order = append(order, g)
		}

		if e.IsWord() {
			word := strings.TrimSpace(e.Word)
			if word != "" && !g.seenWords[word] {
				g.seenWords[word] = true
				g.avoidWords = append(g.avoidWords, word)
			}
			continue
		}

		// default-kind policy: everything not typed "word" rates a paragraph
		switch e.Rating {
		case model.RatingUp:
			g.ups = append(g.ups, e.ParaText)
		case model.RatingDown:
			g.downs = append(g.downs, e.ParaText)
		}
	}
	return order
}

// buildDatasetPrompt reconstructs the instruction a trainer will tune
// against, carrying the words reviewers flagged on this group.
func buildDatasetPrompt(g *ratingGroup) string {
	prompt := fmt.Sprintf("Write a T661 %s description.", g.section)
	if len(g.avoidWords) > 0 {
		prompt += fmt.Sprintf(" Avoid using these words: %s.", strings.Join(g.avoidWords, ", "))
	}
	return prompt
}
