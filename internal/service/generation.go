package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/matisaar/T661-Checker/internal/eventbus"
	"github.com/matisaar/T661-Checker/internal/model"
	"github.com/matisaar/T661-Checker/internal/pkg/llm"
	"github.com/matisaar/T661-Checker/internal/repository"
	"github.com/matisaar/T661-Checker/internal/service/composer"
	"github.com/matisaar/T661-Checker/internal/utils"
)

// Generation modes.
const (
	ModeAI       = "ai"
	ModeTemplate = "template"
)

// Sampling defaults applied when a request leaves the knobs unset.
const (
	defaultMaxTokens          = 2048
	defaultTemperature        = 0.7
	defaultImproveTemperature = 0.5
)

// ErrEmptyText rejects improve requests with nothing to improve.
var ErrEmptyText = errors.New("no text provided")

// ErrInvalidSection rejects unknown section selectors.
var ErrInvalidSection = errors.New("invalid section, want 242, 244, 246 or all")

type GenerateRequest struct {
	Section     string             `json:"section"`
	Project     model.ProjectFacts `json:"project"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float32            `json:"temperature"`
}

type GenerateResult struct {
	Success      bool           `json:"success"`
	Mode         string         `json:"mode"`
	GenerationID string         `json:"generation_id"`
	Sections     model.Sections `json:"sections"`
}

type ImproveRequest struct {
	Text        string  `json:"text"`
	Section     string  `json:"section"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float32 `json:"temperature"`
}

type ImproveResult struct {
	Success  bool   `json:"success"`
	Mode     string `json:"mode"`
	Improved string `json:"improved"`
}

// GenerationService routes generate and improve requests between the model
// capability and the template composer. The route is fixed at construction
// time: a nil capability means template mode for the life of the process,
// and a request-time model failure surfaces to the caller instead of
// falling back to templates.
type GenerationService struct {
	capability llm.Capability
	modeReason string
	repo       repository.GenerationRepository
	bus        *eventbus.GenerationEventBus
}

func NewGenerationService(capability llm.Capability, modeReason string, repo repository.GenerationRepository, bus *eventbus.GenerationEventBus) *GenerationService {
	return &GenerationService{
		capability: capability,
		modeReason: modeReason,
		repo:       repo,
		bus:        bus,
	}
}

// Mode reports which path generate requests take.
func (s *GenerationService) Mode() string {
	if s.capability != nil {
		return ModeAI
	}
	return ModeTemplate
}

// ModeReason is the diagnostic recorded when no model could be loaded.
func (s *GenerationService) ModeReason() string {
	return s.modeReason
}

// Generate produces the requested narrative section(s) from project facts.
func (s *GenerationService) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	section := req.Section
	if section == "" {
		section = model.SectionAll
	}
	if !model.ValidSection(section) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSection, req.Section)
	}

	mode := s.Mode()

	var sections model.Sections
	if mode == ModeAI {
		reply, err := s.capability.Generate(ctx, SystemPrompt, BuildGenerationPrompt(&req.Project, section), llm.GenerateOptions{
			MaxTokens:   defaultInt(req.MaxTokens, defaultMaxTokens),
			Temperature: defaultFloat32(req.Temperature, defaultTemperature),
		})
		if err != nil {
			return nil, fmt.Errorf("model generation failed: %w", err)
		}
		if section == model.SectionAll {
			sections = SplitSections(reply)
		} else {
			sections = model.Sections{model.SectionKey(section): reply}
		}
	} else {
		sections = composer.Compose(&req.Project, section)
	}

	generationID := uuid.New().String()
	s.persist(generationID, section, mode, &req.Project, sections)

	if s.bus != nil {
		err := s.bus.Publish(ctx, eventbus.GenerationCompleted, eventbus.GenerationEvent{
			Type:         eventbus.GenerationCompleted,
			GenerationID: generationID,
			Section:      section,
			Mode:         mode,
			Sections:     len(sections),
		})
		if err != nil {
			klog.Errorf("[GenerationService] publish completed event failed: %v", err)
		}
	}

	return &GenerateResult{
		Success:      true,
		Mode:         mode,
		GenerationID: generationID,
		Sections:     sections,
	}, nil
}

// Improve strengthens existing narrative text. AI mode rewrites it through
// the model; template mode appends rule-based suggestions.
func (s *GenerationService) Improve(ctx context.Context, req *ImproveRequest) (*ImproveResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}
	section := req.Section
	if section == "" {
		section = model.SectionAdvancement
	}

	mode := s.Mode()

	var improved string
	if mode == ModeAI {
		reply, err := s.capability.Generate(ctx, SystemPrompt, BuildImprovePrompt(req.Text, section), llm.GenerateOptions{
			MaxTokens:   defaultInt(req.MaxTokens, defaultMaxTokens),
			Temperature: defaultFloat32(req.Temperature, defaultImproveTemperature),
		})
		if err != nil {
			return nil, fmt.Errorf("model improvement failed: %w", err)
		}
		improved = reply
	} else {
		improved = composer.Suggest(req.Text, section)
	}

	if s.bus != nil {
		err := s.bus.Publish(ctx, eventbus.GenerationImproved, eventbus.GenerationEvent{
			Type:    eventbus.GenerationImproved,
			Section: section,
			Mode:    mode,
		})
		if err != nil {
			klog.Errorf("[GenerationService] publish improved event failed: %v", err)
		}
	}

	return &ImproveResult{Success: true, Mode: mode, Improved: improved}, nil
}

// List returns recent generation history, newest first.
func (s *GenerationService) List(limit int) ([]model.Generation, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.List(limit)
}

// Get looks up one generation by its UUID; (nil, nil) on a miss.
func (s *GenerationService) Get(generationID string) (*model.Generation, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.GetByGenerationID(generationID)
}

// persist records the generation for later lookup. History is advisory:
// the generated text still goes back to the client if the write fails.
func (s *GenerationService) persist(generationID, section, mode string, facts *model.ProjectFacts, sections model.Sections) {
	if s.repo == nil {
		return
	}

	gen := &model.Generation{
		GenerationID: generationID,
		Section:      section,
		Mode:         mode,
		Facts:        utils.ToJSON(facts),
		Line242:      sections[model.KeyLine242],
		Line244:      sections[model.KeyLine244],
		Line246:      sections[model.KeyLine246],
	}
	if err := s.repo.Create(gen); err != nil {
		klog.Errorf("[GenerationService] persist generation %s failed: %v", generationID, err)
	}
}

func defaultInt(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

func defaultFloat32(v, fallback float32) float32 {
	if v > 0 {
		return v
	}
	return fallback
}
