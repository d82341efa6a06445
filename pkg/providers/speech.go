package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/showforge/showforge/pkg/config"
	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/services"
)

// SpeechClient calls the text-to-speech provider for the audio stage.
type SpeechClient struct {
	cfg    *config.SpeechProviderConfig
	client *http.Client
	usage  usageCounter
}

// TotalUsage returns the client's cumulative usage since creation.
func (c *SpeechClient) TotalUsage() Usage { return c.usage.Total() }

// NewSpeechClient creates a SpeechClient.
func NewSpeechClient(cfg *config.SpeechProviderConfig) *SpeechClient {
	return &SpeechClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// SpeechResult is the synthesized audio.
type SpeechResult struct {
	Audio    []byte
	MimeType string
	Usage    Usage
}

type speechRequest struct {
	Text         string  `json:"text"`
	ModelID      string  `json:"model_id,omitempty"`
	Speed        float64 `json:"speed,omitempty"`
	OutputFormat string  `json:"output_format,omitempty"`
}

// Synthesize renders text with the channel's voice profile. Cost is per
// input character.
func (c *SpeechClient) Synthesize(ctx context.Context, text string, voice *models.VoiceProfile) (*SpeechResult, error) {
	if text == "" {
		return nil, services.E(services.KindValidation, "text is required")
	}
	if voice == nil || voice.VoiceID == "" {
		return nil, services.E(services.KindValidation, "voice profile with voice_id is required")
	}

	format := voice.Format
	if format == "" {
		format = "mp3"
	}
	payload, err := json.Marshal(speechRequest{
		Text:         text,
		ModelID:      voice.Model,
		Speed:        voice.Speed,
		OutputFormat: format,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal speech request: %w", err)
	}

	resp, err := doRetry(ctx, c.client, c.cfg.Retry, &c.usage, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			fmt.Sprintf("%s/text-to-speech/%s", c.cfg.BaseURL, voice.VoiceID),
			bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("xi-api-key", c.cfg.APIKey)
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, services.E(services.KindExternalService, "failed to read audio response: %v", err)
	}
	if len(audio) == 0 {
		return nil, services.E(services.KindExternalService, "provider returned empty audio")
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "audio/mpeg"
	}

	usage := Usage{
		UnitsUsed: float64(len(text)),
		UnitType:  "characters",
		CostUSD:   float64(len(text)) * c.cfg.CostPerChar,
	}
	c.usage.record(usage)

	return &SpeechResult{
		Audio:    audio,
		MimeType: mimeType,
		Usage:    usage,
	}, nil
}
