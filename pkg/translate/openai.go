package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"newsmap/pkg/domain"
)

// langNames maps target codes to the names used in the prompt
var langNames = map[domain.Lang]string{
	domain.LangEN: "English",
	domain.LangJA: "Japanese",
	domain.LangFA: "Persian",
}

// OpenAI is a fallback translator backed by a chat completion model. It is
// slower and costs money, so it sits behind the free endpoint and is only
// consulted when that one fails.
type OpenAI struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAI creates an OpenAI translator
func NewOpenAI(apiKey, model string, timeout time.Duration) *OpenAI {
	return &OpenAI{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

// Translate asks the model for a plain translation of the text
func (o *OpenAI) Translate(ctx context.Context, text string, target domain.Lang) (string, error) {
	name, ok := langNames[target]
	if !ok {
		return "", fmt.Errorf("unsupported target language %q", target)
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	prompt := fmt.Sprintf("Translate the following news text to %s. "+
		"Keep the meaning and journalistic tone. "+
		"Reply with the translation only, no comments.\n\n%s", name, text)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
