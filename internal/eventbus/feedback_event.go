package eventbus

type FeedbackEventType string

const (
	FeedbackReceived FeedbackEventType = "Received"
	DatasetsRebuilt  FeedbackEventType = "DatasetsRebuilt"
)

type FeedbackEvent struct {
	Type     FeedbackEventType
	Entries  int // entries in this submission
	Pairs    int // DPO pairs in the rebuilt dataset
	Examples int // SFT examples in the rebuilt dataset
	Total    int // well-formed feedback records seen
}

type FeedbackEventHandler = Handler[FeedbackEvent]
type FeedbackEventBus = Bus[FeedbackEventType, FeedbackEvent]

func NewFeedbackEventBus() *FeedbackEventBus {
	return NewBus[FeedbackEventType, FeedbackEvent]()
}
