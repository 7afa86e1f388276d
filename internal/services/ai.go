package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/yukikurage/field-service-api/internal/constants"
)

// ErrAIUnavailable is returned when no OpenAI key is configured.
var ErrAIUnavailable = errors.New("instruction suggestions are not configured")

type AIService struct {
	client *openai.Client
}

// NewAIService returns a service without a client when apiKey is empty.
func NewAIService(apiKey string) *AIService {
	if apiKey == "" {
		return &AIService{}
	}
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// NewAIServiceWithConfig builds the client from a full OpenAI configuration.
func NewAIServiceWithConfig(config openai.ClientConfig) *AIService {
	return &AIService{
		client: openai.NewClientWithConfig(config),
	}
}

// Enabled reports whether suggestions can be requested.
func (s *AIService) Enabled() bool {
	return s != nil && s.client != nil
}

// SuggestInstructions turns a free-text job description into a list of
// short, ordered work instructions for a task detail.
func (s *AIService) SuggestInstructions(ctx context.Context, title, text string) ([]string, error) {
	if !s.Enabled() {
		return nil, ErrAIUnavailable
	}
	if strings.TrimSpace(text) == "" && strings.TrimSpace(title) == "" {
		return nil, newValidationError("text", "title or text required")
	}

	prompt := fmt.Sprintf(`You write work instructions for field technicians.
Turn the job below into a checklist of concrete steps, in the order they are done.

Job title: %s

Job description:
%s

Return only a JSON array of strings, one short imperative step per element.
Return at most %d steps. Return [] when nothing actionable is described.`,
		title, text, constants.MaxSuggestedInstructions)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return parseInstructions(resp.Choices[0].Message.Content)
}

// parseInstructions decodes the model answer, tolerating a markdown code
// fence around the JSON.
func parseInstructions(content string) ([]string, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var raw []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	instructions := make([]string, 0, len(raw))
	for _, step := range raw {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		instructions = append(instructions, step)
		if len(instructions) == constants.MaxSuggestedInstructions {
			break
		}
	}
	return instructions, nil
}
