package edusphere

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openaiBackend generates text with the OpenAI chat-completion API.
type openaiBackend struct {
	client *openai.Client
	model  string
}

func newOpenAIBackend(apiKey string) TextBackend {
	return &openaiBackend{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4o,
	}
}

func (o *openaiBackend) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an expert educational content generator. Follow the output format instructions exactly.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}
