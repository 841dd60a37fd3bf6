package sentiment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"analizador/pkg"

	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"
)

// LLMConfig configures the chat-model-backed classifier.
type LLMConfig struct {
	Provider    string  `yaml:"provider"` // "openai" or "ollama"
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`

	TupleDelimiter      string `yaml:"tuple_delimiter"`
	RecordDelimiter     string `yaml:"record_delimiter"`
	CompletionDelimiter string `yaml:"completion_delimiter"`
}

func (c *LLMConfig) applyDefaults() {
	if c.Provider == "" {
		c.Provider = "openai"
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 128
	}
	if c.TupleDelimiter == "" {
		c.TupleDelimiter = "<||>"
	}
	if c.RecordDelimiter == "" {
		c.RecordDelimiter = "##"
	}
	if c.CompletionDelimiter == "" {
		c.CompletionDelimiter = "<|COMPLETE|>"
	}
}

const systemTemplate = `Eres un clasificador de sentimiento para textos en español.
Evalúa el texto del usuario y asigna una valoración de 1 a 5 estrellas:
1-2 estrellas = negativo, 3 estrellas = neutral, 4-5 estrellas = positivo.

Responde ÚNICAMENTE con un registro en este formato:
(sentiment{TD}<estrellas> stars{TD}<confianza entre 0.0 y 1.0>){RD}
{CD}

Ejemplo:
(sentiment{TD}4 stars{TD}0.87){RD}
{CD}`

const userTemplate = `{input_text}`

// LLMClassifier asks a chat model for a star rating and maps it to a
// sentiment class. The heavy lifting lives in the prompt; this side only
// parses the tuple the model emits.
type LLMClassifier struct {
	config LLMConfig
	chain  compose.Runnable[map[string]any, *schema.Message]
}

// NewLLMClassifier builds the prompt-and-model chain for the configured
// provider.
func NewLLMClassifier(ctx context.Context, config LLMConfig) (*LLMClassifier, error) {
	config.applyDefaults()

	chatModel, err := newChatModel(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("error creating chat model: %v", err)
	}

	template := createSentimentTemplate(config)

	chain, err := compose.NewChain[map[string]any, *schema.Message]().
		AppendChatTemplate(template).
		AppendChatModel(chatModel).
		Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating chain: %v", err)
	}

	return &LLMClassifier{config: config, chain: chain}, nil
}

func newChatModel(ctx context.Context, config LLMConfig) (model.BaseChatModel, error) {
	switch config.Provider {
	case "ollama":
		return ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			BaseURL: config.BaseURL,
			Model:   config.Model,
		})
	case "openai":
		maxTokens := config.MaxTokens
		temperature := float32(config.Temperature)
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:      config.APIKey,
			BaseURL:     config.BaseURL,
			Model:       config.Model,
			MaxTokens:   &maxTokens,
			Temperature: &temperature,
		})
	default:
		return nil, fmt.Errorf("unknown provider: %s", config.Provider)
	}
}

// createSentimentTemplate fills the delimiter placeholders and assembles the
// chat template.
func createSentimentTemplate(config LLMConfig) prompt.ChatTemplate {
	replacer := strings.NewReplacer(
		"{TD}", config.TupleDelimiter,
		"{RD}", config.RecordDelimiter,
		"{CD}", config.CompletionDelimiter,
	)
	systemText := replacer.Replace(systemTemplate)

	messages := []schema.MessagesTemplate{
		schema.SystemMessage(systemText),
		schema.UserMessage(userTemplate),
	}
	return prompt.FromMessages(schema.FString, messages...)
}

// GetName returns the classifier name.
func (c *LLMClassifier) GetName() string {
	return "llm"
}

// Classify sends the text through the chain and parses the star rating.
func (c *LLMClassifier) Classify(ctx context.Context, text string) (*pkg.SentimentResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("input text cannot be empty")
	}
	if !utf8.ValidString(text) {
		return nil, errors.New("input text contains invalid UTF-8 characters")
	}

	out, err := c.chain.Invoke(ctx, map[string]any{"input_text": text})
	if err != nil {
		return nil, fmt.Errorf("chat model invocation failed: %v", err)
	}

	result, err := c.parseResponse(out.Content)
	if err != nil {
		log.Warn().Err(err).Str("content", out.Content).Msg("sentiment parsing failed")
		return nil, err
	}
	return result, nil
}

// parseResponse extracts the sentiment tuple from the model output.
func (c *LLMClassifier) parseResponse(content string) (*pkg.SentimentResult, error) {
	recordDelim := c.config.RecordDelimiter
	if !strings.Contains(content, recordDelim) {
		recordDelim = "##"
	}

	for _, record := range strings.Split(content, recordDelim) {
		record = strings.TrimSpace(record)
		if record == "" || record == c.config.CompletionDelimiter || record == "<|COMPLETE|>" {
			continue
		}

		result, err := c.parseTuple(record)
		if err != nil {
			log.Warn().Err(err).Str("record", record).Msg("skipping malformed tuple")
			continue
		}
		return result, nil
	}
	return nil, errors.New("no sentiment tuple in model output")
}

// parseTuple parses a single (sentiment<||>label<||>confidence) record.
func (c *LLMClassifier) parseTuple(tupleStr string) (*pkg.SentimentResult, error) {
	tupleStr = strings.Trim(tupleStr, "()")

	tupleDelim := c.config.TupleDelimiter
	if !strings.Contains(tupleStr, tupleDelim) {
		tupleDelim = "<||>"
	}

	parts := strings.Split(tupleStr, tupleDelim)
	if len(parts) < 3 {
		return nil, fmt.Errorf("invalid tuple format: expected 3 parts, got %d in: %s", len(parts), tupleStr)
	}

	if strings.TrimSpace(parts[0]) != "sentiment" {
		return nil, fmt.Errorf("invalid tuple type: %s", strings.TrimSpace(parts[0]))
	}

	label := strings.TrimSpace(parts[1])
	if label == "" {
		return nil, errors.New("tuple label cannot be empty")
	}

	confidence := 0.0
	if conf, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64); err == nil {
		confidence = conf
	}

	return &pkg.SentimentResult{
		Sentimiento: starsToSentiment(label),
		Confianza:   confidence,
		Etiqueta:    label,
	}, nil
}
