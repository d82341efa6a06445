package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/showforge/showforge/pkg/config"
	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/services"
)

// TextClient calls an OpenAI-compatible chat completions API. The planning,
// scripting, and metadata stages all go through it.
type TextClient struct {
	cfg    *config.TextProviderConfig
	client *http.Client
	usage  usageCounter
}

// TotalUsage returns the client's cumulative usage since creation.
func (c *TextClient) TotalUsage() Usage { return c.usage.Total() }

// NewTextClient creates a TextClient.
func NewTextClient(cfg *config.TextProviderConfig) *TextClient {
	return &TextClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// TextRequest is one completion call.
type TextRequest struct {
	Model  string
	System string
	Prompt string

	// JSONSchema, when set, constrains the response to a JSON object matching
	// the schema. SchemaName labels it for the provider.
	SchemaName string
	JSONSchema json.RawMessage

	Temperature float64
	MaxTokens   int
}

// TextResult is the completion plus its usage.
type TextResult struct {
	Content string
	Usage   Usage
}

// ModelFor resolves the model for a text stage: job params override the
// configured per-stage default.
func (c *TextClient) ModelFor(stage string, params *models.WorkParams) string {
	if params != nil && params.Model != "" {
		return params.Model
	}
	switch stage {
	case models.StagePlanning:
		return c.cfg.PlanningModel
	case models.StageScripting:
		return c.cfg.ScriptingModel
	case models.StageMetadata:
		return c.cfg.MetadataModel
	}
	return c.cfg.PlanningModel
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type       string          `json:"type"`
	JSONSchema *jsonSchemaSpec `json:"json_schema,omitempty"`
}

type jsonSchemaSpec struct {
	Name   string          `json:"name"`
	Strict bool            `json:"strict"`
	Schema json.RawMessage `json:"schema"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// Complete runs one chat completion and returns the assistant message.
func (c *TextClient) Complete(ctx context.Context, req TextRequest) (*TextResult, error) {
	if req.Prompt == "" {
		return nil, services.E(services.KindValidation, "prompt is required")
	}

	body := chatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: req.System})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: req.Prompt})
	if len(req.JSONSchema) > 0 {
		body.ResponseFormat = &responseFormat{
			Type: "json_schema",
			JSONSchema: &jsonSchemaSpec{
				Name:   req.SchemaName,
				Strict: true,
				Schema: req.JSONSchema,
			},
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion request: %w", err)
	}

	resp, err := doRetry(ctx, c.client, c.cfg.Retry, &c.usage, func() (*http.Request, error) {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
		httpReq.Header.Set("Content-Type", "application/json")
		return httpReq, nil
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, services.E(services.KindExternalService, "failed to decode completion response: %v", err)
	}
	if len(out.Choices) == 0 {
		return nil, services.E(services.KindExternalService, "completion response has no choices")
	}

	usage := Usage{
		InputTokens:  out.Usage.PromptTokens,
		OutputTokens: out.Usage.CompletionTokens,
	}
	usage.UnitsUsed = float64(usage.Tokens())
	usage.UnitType = "tokens"
	usage.CostUSD = float64(usage.InputTokens)/1000*c.cfg.InputCostPer1K +
		float64(usage.OutputTokens)/1000*c.cfg.OutputCostPer1K
	c.usage.record(Usage{UnitsUsed: usage.UnitsUsed, UnitType: usage.UnitType, CostUSD: usage.CostUSD,
		InputTokens: usage.InputTokens, OutputTokens: usage.OutputTokens})

	return &TextResult{
		Content: out.Choices[0].Message.Content,
		Usage:   usage,
	}, nil
}
