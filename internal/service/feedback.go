package service

import (
	"context"
	"fmt"
	"time"

	"k8s.io/klog/v2"

	"github.com/matisaar/T661-Checker/internal/eventbus"
	"github.com/matisaar/T661-Checker/internal/model"
	"github.com/matisaar/T661-Checker/internal/repository"
)

// SubmitResult reports one feedback submission: how many entries were
// stored and what the inline dataset rebuild produced.
type SubmitResult struct {
	Received        int `json:"received"`
	PairsWritten    int `json:"pairs_written"`
	ExamplesWritten int `json:"examples_written"`
	TotalFeedback   int `json:"total_feedback"`
}

// FeedbackService appends ratings to the feedback log and rebuilds both
// training datasets inline on every submission.
type FeedbackService struct {
	feedback repository.FeedbackLogRepository
	datasets *DatasetService
	bus      *eventbus.FeedbackEventBus
}

func NewFeedbackService(feedback repository.FeedbackLogRepository, datasets *DatasetService, bus *eventbus.FeedbackEventBus) *FeedbackService {
	return &FeedbackService{feedback: feedback, datasets: datasets, bus: bus}
}

// Submit stores the entries in arrival order, then rebuilds the datasets.
// A failed rebuild is reported to the caller but never rolls back entries
// already appended; they stay durable and the next export picks them up.
func (s *FeedbackService) Submit(ctx context.Context, entries []model.FeedbackEntry) (*SubmitResult, error) {
	now := time.Now()
	for i := range entries {
		if entries[i].Type != model.FeedbackKindWord {
			entries[i].Type = model.FeedbackKindParagraph
		}
		if entries[i].Timestamp.IsZero() {
			entries[i].Timestamp = now
		}
		if err := s.feedback.Append(&entries[i]); err != nil {
			return nil, fmt.Errorf("store feedback: %w", err)
		}
	}

	result, err := s.datasets.Export()
	if err != nil {
		return nil, fmt.Errorf("feedback stored, dataset rebuild failed: %w", err)
	}

	if s.bus != nil {
		pubErr := s.bus.Publish(ctx, eventbus.FeedbackReceived, eventbus.FeedbackEvent{
			Type:     eventbus.FeedbackReceived,
			Entries:  len(entries),
			Pairs:    result.PairsWritten,
			Examples: result.ExamplesWritten,
			Total:    result.TotalFeedback,
		})
		if pubErr != nil {
			klog.Errorf("[FeedbackService] publish received event failed: %v", pubErr)
		}
	}

	return &SubmitResult{
		Received:        len(entries),
		PairsWritten:    result.PairsWritten,
		ExamplesWritten: result.ExamplesWritten,
		TotalFeedback:   result.TotalFeedback,
	}, nil
}

// List returns every well-formed feedback entry in arrival order.
func (s *FeedbackService) List() ([]model.FeedbackEntry, error) {
	return s.feedback.LoadAll()
}

// Export rebuilds the datasets on demand and publishes the result.
func (s *FeedbackService) Export(ctx context.Context) (*ExportResult, error) {
	result, err := s.datasets.Export()
	if err != nil {
		return nil, err
	}

	if s.bus != nil {
		pubErr := s.bus.Publish(ctx, eventbus.DatasetsRebuilt, eventbus.FeedbackEvent{
			Type:     eventbus.DatasetsRebuilt,
			Pairs:    result.PairsWritten,
			Examples: result.ExamplesWritten,
			Total:    result.TotalFeedback,
		})
		if pubErr != nil {
			klog.Errorf("[FeedbackService] publish rebuilt event failed: %v", pubErr)
		}
	}

	return result, nil
}
