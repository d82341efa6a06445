package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showforge/showforge/pkg/config"
	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/services"
)

func fastPoll() config.PollSettings {
	return config.PollSettings{Interval: 5 * time.Millisecond, MaxPollTime: time.Second}
}

// taskServer fakes a submit/poll/download provider: a POST creates the task,
// GETs report running until pollsNeeded is reached, then the final status and
// a download URL for the clip bytes.
func taskServer(t *testing.T, pollsNeeded int32, finalStatus string) *httptest.Server {
	t.Helper()
	var polls atomic.Int32
	mux := http.NewServeMux()

	var srv *httptest.Server
	mux.HandleFunc("POST /tasks", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(taskResponse{ID: "task-1", Status: "pending"})
	})
	mux.HandleFunc("POST /video/generate", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(taskResponse{ID: "task-1", Status: "pending"})
	})
	status := func(w http.ResponseWriter, r *http.Request) {
		if polls.Add(1) < pollsNeeded {
			_ = json.NewEncoder(w).Encode(taskResponse{ID: "task-1", Status: "running"})
			return
		}
		_ = json.NewEncoder(w).Encode(taskResponse{
			ID:       "task-1",
			Status:   finalStatus,
			VideoURL: srv.URL + "/download/task-1.mp4",
			Duration: 12.5,
			Error:    "render exploded",
		})
	}
	mux.HandleFunc("GET /tasks/task-1", status)
	mux.HandleFunc("GET /video/task-1", status)
	mux.HandleFunc("GET /download/task-1.mp4", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
		_, _ = w.Write([]byte("mp4-bytes"))
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestVideoClient_GenerateClip(t *testing.T) {
	srv := taskServer(t, 3, "completed")
	client := NewVideoClient(&config.VideoProviderConfig{
		APIKey:        "k",
		BaseURL:       srv.URL,
		CostPerSecond: 0.05,
		ClipLimit:     8,
		Timeout:       5 * time.Second,
		Retry:         fastRetry(1),
		Poll:          fastPoll(),
	})

	result, err := client.GenerateClip(context.Background(), "rain on a window", 4.0)
	require.NoError(t, err)

	assert.Equal(t, []byte("mp4-bytes"), result.Video)
	assert.Equal(t, "video/mp4", result.MimeType)
	assert.Equal(t, "task-1", result.ProviderJobID)
	assert.InDelta(t, 12.5, result.DurationS, 0.001)
	// 12.5 rendered seconds at $0.05 per second.
	assert.InDelta(t, 12.5*0.05, result.Usage.CostUSD, 0.0001)
	assert.Equal(t, "seconds", result.Usage.UnitType)
	assert.InDelta(t, 12.5, result.Usage.UnitsUsed, 0.001)

	total := client.TotalUsage()
	// Submit, three polls, download.
	assert.Equal(t, 5, total.Requests)
	assert.InDelta(t, 12.5*0.05, total.CostUSD, 0.0001)
}

func TestVideoClient_TaskCancelledUpstream(t *testing.T) {
	srv := taskServer(t, 1, "cancelled")
	client := NewVideoClient(&config.VideoProviderConfig{
		APIKey:  "k",
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Retry:   fastRetry(1),
		Poll:    fastPoll(),
	})

	start := time.Now()
	_, err := client.GenerateClip(context.Background(), "doomed prompt", 4.0)
	require.Error(t, err)

	assert.Equal(t, services.KindExternalService, services.KindOf(err))
	assert.Contains(t, err.Error(), "cancelled")
	assert.Less(t, time.Since(start), fastPoll().MaxPollTime,
		"a cancelled task fails on the poll that reports it, not on the poll budget")
}

func TestVideoClient_TaskFailure(t *testing.T) {
	srv := taskServer(t, 1, "failed")
	client := NewVideoClient(&config.VideoProviderConfig{
		APIKey:  "k",
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Retry:   fastRetry(1),
		Poll:    fastPoll(),
	})

	_, err := client.GenerateClip(context.Background(), "doomed prompt", 4.0)
	require.Error(t, err)
	assert.Equal(t, services.KindExternalService, services.KindOf(err))
	assert.Contains(t, err.Error(), "render exploded")
}

func TestVideoClient_EmptyPrompt(t *testing.T) {
	client := NewVideoClient(&config.VideoProviderConfig{BaseURL: "http://unused"})

	_, err := client.GenerateClip(context.Background(), "", 4.0)
	require.Error(t, err)
	assert.Equal(t, services.KindValidation, services.KindOf(err))
}

func TestAvatarClient_Render(t *testing.T) {
	srv := taskServer(t, 2, "succeeded")
	client := NewAvatarClient(&config.AvatarProviderConfig{
		APIKey:        "k",
		BaseURL:       srv.URL,
		CostPerMinute: 2.0,
		Timeout:       5 * time.Second,
		Retry:         fastRetry(1),
		Poll:          fastPoll(),
	})

	result, err := client.Render(context.Background(), "Hello viewers.",
		&models.AvatarProfile{AvatarID: "av-1"}, "https://example.com/audio.mp3")
	require.NoError(t, err)

	assert.Equal(t, []byte("mp4-bytes"), result.Video)
	assert.Equal(t, "task-1", result.ProviderJobID)
	// 12.5 seconds at $2 per minute.
	assert.InDelta(t, 12.5/60*2.0, result.Usage.CostUSD, 0.0001)
	assert.Equal(t, "credits", result.Usage.UnitType)
}

func TestAvatarClient_RequiresProfile(t *testing.T) {
	client := NewAvatarClient(&config.AvatarProviderConfig{BaseURL: "http://unused"})

	_, err := client.Render(context.Background(), "script", nil, "")
	require.Error(t, err)
	assert.Equal(t, services.KindValidation, services.KindOf(err))
}

func TestSpeechClient_Synthesize(t *testing.T) {
	var gotPath string
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	client := NewSpeechClient(&config.SpeechProviderConfig{
		APIKey:      "speech-key",
		BaseURL:     srv.URL,
		CostPerChar: 0.0001,
		Timeout:     5 * time.Second,
		Retry:       fastRetry(1),
	})

	text := "Hello there."
	result, err := client.Synthesize(context.Background(), text, &models.VoiceProfile{VoiceID: "v-9"})
	require.NoError(t, err)

	assert.Equal(t, "/text-to-speech/v-9", gotPath)
	assert.Equal(t, "speech-key", gotKey)
	assert.Equal(t, []byte("mp3-bytes"), result.Audio)
	assert.Equal(t, "audio/mpeg", result.MimeType)
	assert.InDelta(t, float64(len(text))*0.0001, result.Usage.CostUSD, 1e-9)
	assert.Equal(t, "characters", result.Usage.UnitType)
	assert.InDelta(t, float64(len(text)), result.Usage.UnitsUsed, 0.001)

	total := client.TotalUsage()
	assert.Equal(t, 1, total.Requests)
	assert.InDelta(t, result.Usage.CostUSD, total.CostUSD, 1e-9)
}

func TestSpeechClient_EmptyAudioIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewSpeechClient(&config.SpeechProviderConfig{
		APIKey:  "k",
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Retry:   fastRetry(1),
	})

	_, err := client.Synthesize(context.Background(), "text", &models.VoiceProfile{VoiceID: "v"})
	require.Error(t, err)
	assert.Equal(t, services.KindExternalService, services.KindOf(err))
}
