package repository

import (
	"os"
	"strings"
	"testing"

	"github.com/matisaar/T661-Checker/internal/model"
)

func TestDatasetRepositoryWriteDPO(t *testing.T) {
	repo := NewDatasetRepository(t.TempDir())

	pairs := []model.PreferencePair{
		{Prompt: "Write a T661 242 description.", Chosen: "good", Rejected: "bad"},
		{Prompt: "Write a T661 244 description.", Chosen: "better", Rejected: "worse"},
	}
	path, err := repo.WriteDPO(pairs)
	if err != nil {
		t.Fatalf("WriteDPO error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 records, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "\"chosen\":\"good\"") {
		t.Errorf("unexpected first record: %s", lines[0])
	}
}

func TestDatasetRepositoryOverwrites(t *testing.T) {
	repo := NewDatasetRepository(t.TempDir())

	if _, err := repo.WriteSFT([]model.SFTExample{
		{System: "sys", Instruction: "one", Output: "a"},
		{System: "sys", Instruction: "two", Output: "b"},
	}); err != nil {
		t.Fatalf("first write error: %v", err)
	}

	path, err := repo.WriteSFT([]model.SFTExample{{System: "sys", Instruction: "three", Output: "c"}})
	if err != nil {
		t.Fatalf("second write error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	content := strings.TrimSpace(string(data))
	if strings.Count(content, "\n") != 0 {
		t.Fatalf("rewrite should replace content, got %q", content)
	}
	if !strings.Contains(content, "\"instruction\":\"three\"") {
		t.Errorf("unexpected surviving record: %s", content)
	}
}

func TestDatasetRepositoryEmptyWrite(t *testing.T) {
	repo := NewDatasetRepository(t.TempDir())

	path, err := repo.WriteDPO(nil)
	if err != nil {
		t.Fatalf("empty write error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat error: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("empty dataset should truncate the file, size=%d", info.Size())
	}
}
