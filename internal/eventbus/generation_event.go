package eventbus

type GenerationEventType string

const (
	GenerationCompleted GenerationEventType = "Completed"
	GenerationImproved  GenerationEventType = "Improved"
)

type GenerationEvent struct {
	Type         GenerationEventType
	GenerationID string
	Section      string
	Mode         string // ai, template
	Sections     int    // populated section count
}

type GenerationEventHandler = Handler[GenerationEvent]
type GenerationEventBus = Bus[GenerationEventType, GenerationEvent]

func NewGenerationEventBus() *GenerationEventBus {
	return NewBus[GenerationEventType, GenerationEvent]()
}
