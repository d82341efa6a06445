package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showforge/showforge/pkg/config"
	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/services"
)

func newTextTestClient(t *testing.T, handler http.HandlerFunc) *TextClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewTextClient(&config.TextProviderConfig{
		APIKey:          "test-key",
		BaseURL:         srv.URL,
		PlanningModel:   "plan-model",
		ScriptingModel:  "script-model",
		MetadataModel:   "meta-model",
		InputCostPer1K:  0.01,
		OutputCostPer1K: 0.03,
		Timeout:         5 * time.Second,
		Retry:           fastRetry(1),
	})
}

func TestTextClient_Complete(t *testing.T) {
	var gotBody map[string]any
	var gotAuth string
	client := newTextTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `{"hook":"h"}`}},
			},
			"usage": map[string]any{"prompt_tokens": 1000, "completion_tokens": 500},
		})
	})

	result, err := client.Complete(context.Background(), TextRequest{
		Model:      "plan-model",
		System:     "you are a planner",
		Prompt:     "plan an episode",
		SchemaName: "plan",
		JSONSchema: json.RawMessage(`{"type":"object"}`),
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "plan-model", gotBody["model"])

	messages := gotBody["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])

	rf := gotBody["response_format"].(map[string]any)
	assert.Equal(t, "json_schema", rf["type"])

	assert.Equal(t, `{"hook":"h"}`, result.Content)
	assert.Equal(t, 1500, result.Usage.Tokens())
	// 1000/1000*0.01 + 500/1000*0.03
	assert.InDelta(t, 0.025, result.Usage.CostUSD, 0.0001)
	assert.Equal(t, "tokens", result.Usage.UnitType)
	assert.InDelta(t, 1500, result.Usage.UnitsUsed, 0.001)

	total := client.TotalUsage()
	assert.Equal(t, 1, total.Requests)
	assert.Equal(t, 1500, total.Tokens())
	assert.GreaterOrEqual(t, total.LatencyMS, int64(0))
}

func TestTextClient_EmptyPrompt(t *testing.T) {
	client := newTextTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.Complete(context.Background(), TextRequest{Model: "m"})
	require.Error(t, err)
	assert.Equal(t, services.KindValidation, services.KindOf(err))
}

func TestTextClient_NoChoices(t *testing.T) {
	client := newTextTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Complete(context.Background(), TextRequest{Model: "m", Prompt: "p"})
	require.Error(t, err)
	assert.Equal(t, services.KindExternalService, services.KindOf(err))
}

func TestTextClient_ModelFor(t *testing.T) {
	client := newTextTestClient(t, nil)

	assert.Equal(t, "plan-model", client.ModelFor(models.StagePlanning, nil))
	assert.Equal(t, "script-model", client.ModelFor(models.StageScripting, nil))
	assert.Equal(t, "meta-model", client.ModelFor(models.StageMetadata, nil))
	assert.Equal(t, "override", client.ModelFor(models.StageScripting, &models.WorkParams{Model: "override"}))
}
