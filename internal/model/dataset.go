package model

// PreferencePair is one DPO training record: a prompt with a preferred and
// a rejected completion, derived from up/down paragraph ratings that share
// a (generationId, section) group.
type PreferencePair struct {
	Prompt   string `json:"prompt"`
	Chosen   string `json:"chosen"`
	Rejected string `json:"rejected"`
}

// SFTExample is one supervised fine-tuning record built from the approved
// paragraphs of a group.
type SFTExample struct {
	System      string `json:"system"`
	Instruction string `json:"instruction"`
	Output      string `json:"output"`
}
