package service

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/matisaar/T661-Checker/internal/model"
	"github.com/matisaar/T661-Checker/internal/repository"
)

func newTestExporter(t *testing.T) (*DatasetService, repository.FeedbackLogRepository) {
	dir := t.TempDir()
	log := repository.NewFeedbackLog(dir + "/feedback.jsonl")
	datasets := repository.NewDatasetRepository(dir + "/training")
	return NewDatasetService(log, datasets), log
}

func appendAll(t *testing.T, log repository.FeedbackLogRepository, entries ...model.FeedbackEntry) {
	t.Helper()
	for i := range entries {
		if err := log.Append(&entries[i]); err != nil {
			t.Fatalf("append error: %v", err)
		}
	}
}

func TestExportPairing(t *testing.T) {
	svc, log := newTestExporter(t)
	appendAll(t, log,
		model.FeedbackEntry{GenerationID: "g1", Section: "242", ParaText: "first good", Rating: model.RatingUp},
		model.FeedbackEntry{GenerationID: "g1", Section: "242", ParaText: "bad", Rating: model.RatingDown},
		model.FeedbackEntry{GenerationID: "g1", Section: "242", ParaText: "second good", Rating: model.RatingUp},
	)

	result, err := svc.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if result.PairsWritten != 1 || result.ExamplesWritten != 1 || result.TotalFeedback != 3 {
		t.Fatalf("unexpected counts: %+v", result)
	}

	data, err := os.ReadFile(result.DPOPath)
	if err != nil {
		t.Fatalf("read dpo error: %v", err)
	}
	var pair model.PreferencePair
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &pair); err != nil {
		t.Fatalf("unmarshal pair error: %v", err)
	}
	if pair.Prompt != "Write a T661 242 description." {
		t.Errorf("unexpected prompt: %q", pair.Prompt)
	}
	if pair.Chosen != "first good\n\nsecond good" {
		t.Errorf("chosen should join ups with a blank line, got %q", pair.Chosen)
	}
	if pair.Rejected != "bad" {
		t.Errorf("unexpected rejected: %q", pair.Rejected)
	}

	sftData, err := os.ReadFile(result.SFTPath)
	if err != nil {
		t.Fatalf("read sft error: %v", err)
	}
	var example model.SFTExample
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(sftData))), &example); err != nil {
		t.Fatalf("unmarshal example error: %v", err)
	}
	if example.System != SystemPrompt {
		t.Errorf("example should replay the system prompt")
	}
	if example.Output != "first good\n\nsecond good" {
		t.Errorf("unexpected output: %q", example.Output)
	}
}

func TestExportUpOnlyGroup(t *testing.T) {
	svc, log := newTestExporter(t)
	appendAll(t, log,
		model.FeedbackEntry{GenerationID: "g1", Section: "244", ParaText: "solid", Rating: model.RatingUp},
		model.FeedbackEntry{GenerationID: "g1", Section: "244", ParaText: "also solid", Rating: model.RatingUp},
	)

	result, err := svc.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if result.PairsWritten != 0 {
		t.Errorf("up-only group must not pair, got %d", result.PairsWritten)
	}
	if result.ExamplesWritten != 1 {
		t.Errorf("up-only group still yields one example, got %d", result.ExamplesWritten)
	}
}

func TestExportDownOnlyGroup(t *testing.T) {
	svc, log := newTestExporter(t)
	appendAll(t, log,
		model.FeedbackEntry{GenerationID: "g1", Section: "246", ParaText: "weak", Rating: model.RatingDown},
	)

	result, err := svc.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if result.PairsWritten != 0 || result.ExamplesWritten != 0 {
		t.Errorf("down-only group yields nothing, got %+v", result)
	}
}

func TestExportAvoidWords(t *testing.T) {
	svc, log := newTestExporter(t)
	appendAll(t, log,
		model.FeedbackEntry{GenerationID: "g1", Section: "242", ParaText: "good", Rating: model.RatingUp},
		model.FeedbackEntry{Type: model.FeedbackKindWord, GenerationID: "g1", Section: "242", Word: "leverage"},
		model.FeedbackEntry{Type: model.FeedbackKindWord, GenerationID: "g1", Section: "242", Word: "utilize"},
		model.FeedbackEntry{Type: model.FeedbackKindWord, GenerationID: "g1", Section: "242", Word: "leverage"},
	)

	result, err := svc.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}

	data, err := os.ReadFile(result.SFTPath)
	if err != nil {
		t.Fatalf("read sft error: %v", err)
	}
	var example model.SFTExample
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &example); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	want := "Write a T661 242 description. Avoid using these words: leverage, utilize."
	if example.Instruction != want {
		t.Errorf("expected %q, got %q", want, example.Instruction)
	}
}

func TestExportIdempotent(t *testing.T) {
	svc, log := newTestExporter(t)
	appendAll(t, log,
		model.FeedbackEntry{GenerationID: "g1", Section: "242", ParaText: "good", Rating: model.RatingUp},
		model.FeedbackEntry{GenerationID: "g1", Section: "242", ParaText: "bad", Rating: model.RatingDown},
		model.FeedbackEntry{GenerationID: "g2", Section: "244", ParaText: "fine", Rating: model.RatingUp},
		model.FeedbackEntry{Type: model.FeedbackKindWord, GenerationID: "g2", Section: "244", Word: "robust"},
	)

	first, err := svc.Export()
	if err != nil {
		t.Fatalf("first export error: %v", err)
	}
	dpo1, _ := os.ReadFile(first.DPOPath)
	sft1, _ := os.ReadFile(first.SFTPath)

	second, err := svc.Export()
	if err != nil {
		t.Fatalf("second export error: %v", err)
	}
	dpo2, _ := os.ReadFile(second.DPOPath)
	sft2, _ := os.ReadFile(second.SFTPath)

	if string(dpo1) != string(dpo2) {
		t.Errorf("DPO dataset not byte-identical across exports")
	}
	if string(sft1) != string(sft2) {
		t.Errorf("SFT dataset not byte-identical across exports")
	}
}

func TestExportDefaultKindIsParagraph(t *testing.T) {
	svc, log := newTestExporter(t)
	// no type field at all: still a paragraph rating
	appendAll(t, log,
		model.FeedbackEntry{GenerationID: "g1", Section: "242", ParaText: "untyped but good", Rating: model.RatingUp},
	)

	result, err := svc.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if result.ExamplesWritten != 1 {
		t.Errorf("untyped entry should count as a paragraph, got %+v", result)
	}
}

func TestExportGroupsAreKeyedByGenerationAndSection(t *testing.T) {
	svc, log := newTestExporter(t)
	appendAll(t, log,
		model.FeedbackEntry{GenerationID: "g1", Section: "242", ParaText: "a", Rating: model.RatingUp},
		model.FeedbackEntry{GenerationID: "g1", Section: "244", ParaText: "b", Rating: model.RatingDown},
		model.FeedbackEntry{GenerationID: "g2", Section: "242", ParaText: "c", Rating: model.RatingUp},
	)

	result, err := svc.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	// g1/242 and g2/242 are separate groups; neither pairs with g1/244
	if result.PairsWritten != 0 {
		t.Errorf("cross-group ratings must not pair, got %d", result.PairsWritten)
	}
	if result.ExamplesWritten != 2 {
		t.Errorf("expected one example per up-group, got %d", result.ExamplesWritten)
	}
}
