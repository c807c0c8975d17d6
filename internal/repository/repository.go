package repository

import (
	"github.com/matisaar/T661-Checker/internal/model"
)

// GenerationRepository stores generation history. A lookup miss returns
// (nil, nil), not an error.
type GenerationRepository interface {
	Create(gen *model.Generation) error
	List(limit int) ([]model.Generation, error)
	GetByGenerationID(generationID string) (*model.Generation, error)
	Count() (int64, error)
}

// FeedbackLogRepository is the append-only rating log. Append must be
// atomic per record; LoadAll returns arrival order and silently skips
// records that fail to parse.
type FeedbackLogRepository interface {
	Append(entry *model.FeedbackEntry) error
	LoadAll() ([]model.FeedbackEntry, error)
	Count() (int, error)
	Path() string
}

// DatasetRepository rewrites the derived training datasets in full and
// returns the written file path.
type DatasetRepository interface {
	WriteDPO(pairs []model.PreferencePair) (string, error)
	WriteSFT(examples []model.SFTExample) (string, error)
}
