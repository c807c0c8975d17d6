package subscriber

import (
	"context"

	"k8s.io/klog/v2"

	"github.com/matisaar/T661-Checker/internal/eventbus"
)

// ActivitySubscriber logs generation and feedback activity as it happens.
// It is the only consumer of the buses today; anything that later needs to
// react to these events (notifications, metrics) registers the same way.
type ActivitySubscriber struct{}

func NewActivitySubscriber() *ActivitySubscriber {
	return &ActivitySubscriber{}
}

func (s *ActivitySubscriber) Register(genBus *eventbus.GenerationEventBus, fbBus *eventbus.FeedbackEventBus) {
	if genBus != nil {
		genBus.Subscribe(eventbus.GenerationCompleted, s.handleGenerationCompleted)
		genBus.Subscribe(eventbus.GenerationImproved, s.handleGenerationImproved)
	}
	if fbBus != nil {
		fbBus.Subscribe(eventbus.FeedbackReceived, s.handleFeedbackReceived)
		fbBus.Subscribe(eventbus.DatasetsRebuilt, s.handleDatasetsRebuilt)
	}
}

func (s *ActivitySubscriber) handleGenerationCompleted(ctx context.Context, event eventbus.GenerationEvent) error {
	klog.V(6).Infof("generation completed: id=%s, section=%s, mode=%s, sections=%d", event.GenerationID, event.Section, event.Mode, event.Sections)
	return nil
}

func (s *ActivitySubscriber) handleGenerationImproved(ctx context.Context, event eventbus.GenerationEvent) error {
	klog.V(6).Infof("text improved: section=%s, mode=%s", event.Section, event.Mode)
	return nil
}

func (s *ActivitySubscriber) handleFeedbackReceived(ctx context.Context, event eventbus.FeedbackEvent) error {
	klog.V(6).Infof("feedback received: entries=%d, total=%d", event.Entries, event.Total)
	return nil
}

func (s *ActivitySubscriber) handleDatasetsRebuilt(ctx context.Context, event eventbus.FeedbackEvent) error {
	klog.V(6).Infof("datasets rebuilt: pairs=%d, examples=%d, total=%d", event.Pairs, event.Examples, event.Total)
	return nil
}
