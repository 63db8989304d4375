package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// systemInstruction is the fixed system message for every completion request
const systemInstruction = "You are a helpful assistant that summarizes meeting transcripts accurately per the given instruction."

// GroqService calls the Groq chat-completions API
type GroqService struct {
	APIKey  string
	Model   string
	BaseURL string
}

func NewGroqService(apiKey, model string) *GroqService {
	if model == "" {
		model = "llama3-8b-8192"
	}
	return &GroqService{APIKey: apiKey, Model: model, BaseURL: defaultBaseURL}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// SummarizeTranscript sends the transcript and instruction to Groq and
// returns the first completion choice's text. A response without choices
// yields an empty string and no error; the caller decides the fallback.
func (g *GroqService) SummarizeTranscript(ctx context.Context, transcript, instruction string) (string, error) {
	payload := chatRequest{
		Model: g.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: fmt.Sprintf("Transcript: %s\n\nInstructions: %s", transcript, instruction)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.BaseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.APIKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", nil
	}
	return result.Choices[0].Message.Content, nil
}
