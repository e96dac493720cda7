package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
	groqx "github.com/tanpawarit/evo-commerce-agent/pkg/groq"
)

// Stage names the three pipeline stages that may call the model service.
type Stage string

const (
	StageClassifier Stage = "classifier"
	StageSelector   Stage = "selector"
	StageResponder  Stage = "responder"
)

// Config is the stage-aware model-service configuration. A missing API key
// means the service runs rule-only; everything else has a usable default.
type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://api.groq.com/openai/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" default:"llama-3.3-70b-versatile"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"1024"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`

	ClassifierModel       string  `envconfig:"CLASSIFIER_MODEL" split_words:"true"`
	SelectorModel         string  `envconfig:"SELECTOR_MODEL" split_words:"true"`
	ResponderModel        string  `envconfig:"RESPONDER_MODEL" split_words:"true"`
	ClassifierTemperature float32 `envconfig:"CLASSIFIER_TEMPERATURE" split_words:"true" default:"0"`
	SelectorTemperature   float32 `envconfig:"SELECTOR_TEMPERATURE" split_words:"true" default:"0"`
	ResponderTemperature  float32 `envconfig:"RESPONDER_TEMPERATURE" split_words:"true" default:"0.3"`
}

// Enabled reports whether the optional model service is configured at all.
func (c Config) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

func (c Config) Validate() error {
	if !c.Enabled() {
		return fmt.Errorf("%w: groq api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

// GroqFor maps the shared config onto one stage's model settings.
func (c Config) GroqFor(stage Stage) groqx.Config {
	modelName := strings.TrimSpace(c.Model)
	var temp float32

	switch stage {
	case StageClassifier:
		if v := strings.TrimSpace(c.ClassifierModel); v != "" {
			modelName = v
		}
		temp = c.ClassifierTemperature
	case StageSelector:
		if v := strings.TrimSpace(c.SelectorModel); v != "" {
			modelName = v
		}
		temp = c.SelectorTemperature
	case StageResponder:
		if v := strings.TrimSpace(c.ResponderModel); v != "" {
			modelName = v
		}
		temp = c.ResponderTemperature
	}

	maxCompletionToken := c.MaxCompletionToken
	return groqx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
	}
}
