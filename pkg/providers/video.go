package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/showforge/showforge/pkg/config"
	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/services"
)

// downloadClient fetches finished renders. The signed output URLs point at a
// CDN rather than the API host, so downloads get their own transport: no API
// credentials and a transfer budget sized for video payloads.
var downloadClient = &http.Client{Timeout: 300 * time.Second}

// Both video providers follow the same submit/poll/download shape: POST a
// render task, poll its status until the provider reports completed or
// failed, then fetch the finished file from the returned URL.

// VideoResult is a finished render.
type VideoResult struct {
	Video         []byte
	MimeType      string
	ProviderJobID string
	DurationS     float64
	Usage         Usage
}

type taskResponse struct {
	ID       string  `json:"id"`
	Status   string  `json:"status"`
	VideoURL string  `json:"video_url"`
	Duration float64 `json:"duration"`
	Error    string  `json:"error"`
}

// AvatarClient renders talking-head segments for the avatar stage.
type AvatarClient struct {
	cfg    *config.AvatarProviderConfig
	client *http.Client
	usage  usageCounter
}

// TotalUsage returns the client's cumulative usage since creation.
func (c *AvatarClient) TotalUsage() Usage { return c.usage.Total() }

// NewAvatarClient creates an AvatarClient.
func NewAvatarClient(cfg *config.AvatarProviderConfig) *AvatarClient {
	return &AvatarClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type avatarRenderRequest struct {
	AvatarID   string `json:"avatar_id"`
	Script     string `json:"script"`
	AudioURL   string `json:"audio_url,omitempty"`
	Background string `json:"background,omitempty"`
	Resolution string `json:"resolution,omitempty"`
}

// Render submits an avatar render, waits for it, and downloads the result.
// audioURL, when set, lip-syncs the avatar to previously generated audio
// instead of provider-side speech.
func (c *AvatarClient) Render(ctx context.Context, script string, avatar *models.AvatarProfile, audioURL string) (*VideoResult, error) {
	if script == "" {
		return nil, services.E(services.KindValidation, "script is required")
	}
	if avatar == nil || avatar.AvatarID == "" {
		return nil, services.E(services.KindValidation, "avatar profile with avatar_id is required")
	}

	payload, err := json.Marshal(avatarRenderRequest{
		AvatarID:   avatar.AvatarID,
		Script:     script,
		AudioURL:   audioURL,
		Background: avatar.Background,
		Resolution: avatar.Resolution,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal avatar request: %w", err)
	}

	task, err := submitTask(ctx, c.client, c.cfg.Retry, &c.usage, c.cfg.BaseURL+"/video/generate", c.cfg.APIKey, payload)
	if err != nil {
		return nil, err
	}

	final, err := awaitTask(ctx, c.client, c.cfg.Retry, &c.usage, c.cfg.Poll,
		fmt.Sprintf("%s/video/%s", c.cfg.BaseURL, task.ID), c.cfg.APIKey)
	if err != nil {
		return nil, err
	}

	video, mimeType, err := downloadURL(ctx, c.cfg.Retry, &c.usage, final.VideoURL)
	if err != nil {
		return nil, err
	}

	// Billed in credits, one credit per rendered minute.
	usage := Usage{
		UnitsUsed: final.Duration / 60,
		UnitType:  "credits",
		CostUSD:   final.Duration / 60 * c.cfg.CostPerMinute,
	}
	c.usage.record(usage)

	return &VideoResult{
		Video:         video,
		MimeType:      mimeType,
		ProviderJobID: task.ID,
		DurationS:     final.Duration,
		Usage:         usage,
	}, nil
}

// VideoClient generates b-roll clips from text prompts.
type VideoClient struct {
	cfg    *config.VideoProviderConfig
	client *http.Client
	usage  usageCounter
}

// TotalUsage returns the client's cumulative usage since creation.
func (c *VideoClient) TotalUsage() Usage { return c.usage.Total() }

// NewVideoClient creates a VideoClient.
func NewVideoClient(cfg *config.VideoProviderConfig) *VideoClient {
	return &VideoClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// ClipLimit returns the per-episode clip cap.
func (c *VideoClient) ClipLimit() int { return c.cfg.ClipLimit }

type clipRequest struct {
	Prompt    string  `json:"prompt"`
	DurationS float64 `json:"duration_s,omitempty"`
}

// GenerateClip submits one b-roll prompt and waits for the rendered clip.
func (c *VideoClient) GenerateClip(ctx context.Context, prompt string, durationS float64) (*VideoResult, error) {
	if prompt == "" {
		return nil, services.E(services.KindValidation, "prompt is required")
	}

	payload, err := json.Marshal(clipRequest{Prompt: prompt, DurationS: durationS})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal clip request: %w", err)
	}

	task, err := submitTask(ctx, c.client, c.cfg.Retry, &c.usage, c.cfg.BaseURL+"/tasks", c.cfg.APIKey, payload)
	if err != nil {
		return nil, err
	}

	final, err := awaitTask(ctx, c.client, c.cfg.Retry, &c.usage, c.cfg.Poll,
		fmt.Sprintf("%s/tasks/%s", c.cfg.BaseURL, task.ID), c.cfg.APIKey)
	if err != nil {
		return nil, err
	}

	video, mimeType, err := downloadURL(ctx, c.cfg.Retry, &c.usage, final.VideoURL)
	if err != nil {
		return nil, err
	}

	// Billed by rendered seconds.
	usage := Usage{
		UnitsUsed: final.Duration,
		UnitType:  "seconds",
		CostUSD:   final.Duration * c.cfg.CostPerSecond,
	}
	c.usage.record(usage)

	return &VideoResult{
		Video:         video,
		MimeType:      mimeType,
		ProviderJobID: task.ID,
		DurationS:     final.Duration,
		Usage:         usage,
	}, nil
}

func submitTask(ctx context.Context, client *http.Client, retry config.RetrySettings, usage *usageCounter, url, apiKey string, payload []byte) (*taskResponse, error) {
	resp, err := doRetry(ctx, client, retry, usage, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+apiKey)
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var task taskResponse
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return nil, services.E(services.KindExternalService, "failed to decode task response: %v", err)
	}
	if task.ID == "" {
		return nil, services.E(services.KindExternalService, "provider returned no task id")
	}
	return &task, nil
}

// awaitTask polls the task URL until the provider reports a terminal status.
// The successful final response must carry a download URL.
func awaitTask(ctx context.Context, client *http.Client, retry config.RetrySettings, usage *usageCounter, poll config.PollSettings, url, apiKey string) (*taskResponse, error) {
	var final *taskResponse
	err := pollUntilDone(ctx, poll, func(ctx context.Context) (bool, error) {
		resp, err := doRetry(ctx, client, retry, usage, func() (*http.Request, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return nil, err
			}
			req.Header.Set("Authorization", "Bearer "+apiKey)
			return req, nil
		})
		if err != nil {
			return false, err
		}
		defer func() { _ = resp.Body.Close() }()

		var task taskResponse
		if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
			return false, services.E(services.KindExternalService, "failed to decode task status: %v", err)
		}
		switch task.Status {
		case "completed", "succeeded":
			final = &task
			return true, nil
		case "failed", "error":
			return false, services.E(services.KindExternalService, "provider task %s failed: %s", task.ID, task.Error)
		case "cancelled", "canceled":
			return false, services.E(services.KindExternalService, "provider task %s was cancelled upstream: %s", task.ID, task.Error)
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	if final.VideoURL == "" {
		return nil, services.E(services.KindExternalService, "provider task %s completed without a download url", final.ID)
	}
	return final, nil
}

func downloadURL(ctx context.Context, retry config.RetrySettings, usage *usageCounter, url string) ([]byte, string, error) {
	resp, err := doRetry(ctx, downloadClient, retry, usage, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	})
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", services.E(services.KindExternalService, "failed to download render: %v", err)
	}
	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "video/mp4"
	}
	return data, mimeType, nil
}
