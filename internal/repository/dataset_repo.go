package repository

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/matisaar/T661-Checker/internal/model"
)

const (
	dpoFilename = "dpo_pairs.jsonl"
	sftFilename = "sft_dataset.jsonl"
)

// datasetRepository owns the two derived JSONL datasets. Every write is a
// full rewrite staged through a temp file and renamed into place, so a
// failed export never leaves a half-written dataset behind.
type datasetRepository struct {
	dir string
}

// NewDatasetRepository creates the dataset writer rooted at dir.
func NewDatasetRepository(dir string) DatasetRepository {
	return &datasetRepository{dir: dir}
}

func (r *datasetRepository) WriteDPO(pairs []model.PreferencePair) (string, error) {
	var buf bytes.Buffer
	for i := range pairs {
		data, err := json.Marshal(&pairs[i])
		if err != nil {
			return "", err
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}
	return r.writeFile(dpoFilename, buf.Bytes())
}

func (r *datasetRepository) WriteSFT(examples []model.SFTExample) (string, error) {
	var buf bytes.Buffer
	for i := range examples {
		data, err := json.Marshal(&examples[i])
		if err != nil {
			return "", err
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}
	return r.writeFile(sftFilename, buf.Bytes())
}

func (r *datasetRepository) writeFile(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(r.dir, filename)

	tmp, err := os.CreateTemp(r.dir, filename+".tmp-*")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	return path, nil
}
