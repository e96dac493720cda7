package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/classifier.txt
	classifierRaw string

	//go:embed template/selector.txt
	selectorRaw string

	//go:embed template/responder.txt
	responderRaw string
)

// PromptSet holds the loaded system prompts for the three model-backed stages.
type PromptSet struct {
	Classifier string
	Selector   string
	Responder  string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
// This is safe to call concurrently; the embed is compile-time, and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Classifier: strings.TrimSpace(classifierRaw),
		Selector:   strings.TrimSpace(selectorRaw),
		Responder:  strings.TrimSpace(responderRaw),
	}
}
