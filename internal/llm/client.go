package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const intentParserSystemPrompt = `You are a precise intent classification parser for a weather system.
Today is: %s.

Your task is to extract parameters from the user's input and return a valid JSON object.

JSON FIELD SPECIFICATION:
1. 'is_weather_related': boolean.
   - Set to true if the query relates to weather, climate, atmospheric conditions, or specific weather events.
   - Set to false for unrelated topics.
2. 'city': string or null. The city name if specified.
3. 'date': string (YYYY-MM-DD) or null.
4. 'history_search': string or null. Use ONLY for past events.
   - Allowed values: 'rain', 'snow', 'wind', 'heat', 'frost', 'hail'.
5. 'record_search': string or null. Use ONLY for superlative record queries.
   - Allowed values: 'min_temp', 'max_temp', 'max_wind', 'max_snow', 'max_rain'.

Return ONLY the JSON object.`

const responseGeneratorSystemPrompt = `You are a professional weather assistant.
Answer based EXCLUSIVELY on the provided 'Context' data. Do not hallucinate.`

// Client talks to a Groq (OpenAI-compatible) chat-completions endpoint for
// both intent parsing and response generation.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a Client. baseURL may be empty to use the OpenAI default.
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// ParseIntent asks the model to classify the query and returns its raw JSON
// output. Decoding and validation happen at the pipeline boundary.
func (c *Client) ParseIntent(ctx context.Context, userText string, today time.Time) (json.RawMessage, error) {
	system := fmt.Sprintf(intentParserSystemPrompt, today.Format("2006-01-02"))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("intent completion returned no choices")
	}

	return json.RawMessage(resp.Choices[0].Message.Content), nil
}

// Respond generates the final answer grounded in contextData. An empty
// completion comes back as an empty string; the caller decides the fallback.
func (c *Client) Respond(ctx context.Context, contextData, userText string) (string, error) {
	message := fmt.Sprintf("Context %s\n\nUser Question: %s", contextData, userText)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: responseGeneratorSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: 0.7,
		MaxTokens:   300,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
