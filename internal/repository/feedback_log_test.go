package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matisaar/T661-Checker/internal/model"
)

func TestFeedbackLogAppendLoad(t *testing.T) {
	log := NewFeedbackLog(filepath.Join(t.TempDir(), "feedback.jsonl"))

	e1 := &model.FeedbackEntry{GenerationID: "gen-1", Section: "242", ParaText: "first paragraph", Rating: model.RatingUp}
	e2 := &model.FeedbackEntry{Type: model.FeedbackKindWord, GenerationID: "gen-1", Section: "242", Word: "leverage"}

	if err := log.Append(e1); err != nil {
		t.Fatalf("append e1 error: %v", err)
	}
	if err := log.Append(e2); err != nil {
		t.Fatalf("append e2 error: %v", err)
	}

	entries, err := log.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ParaText != "first paragraph" || entries[0].Rating != model.RatingUp {
		t.Errorf("entry 0 out of order or mangled: %+v", entries[0])
	}
	if !entries[1].IsWord() || entries[1].Word != "leverage" {
		t.Errorf("entry 1 out of order or mangled: %+v", entries[1])
	}
}

func TestFeedbackLogSkipsCorruptLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.jsonl")
	log := NewFeedbackLog(path)

	if err := log.Append(&model.FeedbackEntry{GenerationID: "gen-1", Section: "244", ParaText: "a", Rating: model.RatingUp}); err != nil {
		t.Fatalf("append error: %v", err)
	}
	if err := log.Append(&model.FeedbackEntry{GenerationID: "gen-1", Section: "244", ParaText: "b", Rating: model.RatingDown}); err != nil {
		t.Fatalf("append error: %v", err)
	}

	// simulate a torn write at the end of the file
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		t.Fatalf("open error: %v", err)
	}
	if _, err := f.WriteString("{\"generationId\": \"gen-1\", \"sec"); err != nil {
		t.Fatalf("write error: %v", err)
	}
	f.Close()

	entries, err := log.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll should not fail on corrupt lines: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 well-formed entries, got %d", len(entries))
	}

	count, err := log.Count()
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if count != 2 {
		t.Errorf("corrupt line must not count, got %d", count)
	}
}

func TestFeedbackLogMissingFile(t *testing.T) {
	log := NewFeedbackLog(filepath.Join(t.TempDir(), "nope", "feedback.jsonl"))

	entries, err := log.LoadAll()
	if err != nil {
		t.Fatalf("missing log should read as empty, got error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}

	count, err := log.Count()
	if err != nil || count != 0 {
		t.Errorf("expected count 0 with no error, got %d, %v", count, err)
	}
}

func TestFeedbackLogCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "feedback.jsonl")
	log := NewFeedbackLog(path)

	if err := log.Append(&model.FeedbackEntry{GenerationID: "gen-9", Section: "246"}); err != nil {
		t.Fatalf("append should create parent dirs: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file should exist: %v", err)
	}
}
