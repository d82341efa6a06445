package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showforge/showforge/pkg/database"
	testdb "github.com/showforge/showforge/test/database"
)

func newTestServer(t *testing.T) (*gin.Engine, *database.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbc := testdb.NewTestClient(t)
	return NewServer(dbc, nil).Router(), dbc
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	rec := do(t, router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode(t, rec)["status"])
}

func TestChannelEndpoints(t *testing.T) {
	router, _ := newTestServer(t)

	rec := do(t, router, http.MethodPost, "/api/v1/channels", gin.H{
		"slug": "tech-daily",
		"name": "Tech Daily",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	chID := decode(t, rec)["id"].(string)

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/v1/channels", gin.H{
			"slug": "tech-daily",
			"name": "Copycat",
		})
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "conflict", decode(t, rec)["kind"])
	})

	t.Run("missing name is a validation error", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/v1/channels", gin.H{"slug": "no-name"})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("lookup by id and by slug", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/api/v1/channels/"+chID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, router, http.MethodGet, "/api/v1/channels/slug:tech-daily", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, chID, decode(t, rec)["id"])

		rec = do(t, router, http.MethodGet, "/api/v1/channels/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := do(t, router, http.MethodDelete, "/api/v1/channels/"+chID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, router, http.MethodGet, "/api/v1/channels/"+chID, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func createTestEpisode(t *testing.T, router *gin.Engine) string {
	t.Helper()

	rec := do(t, router, http.MethodPost, "/api/v1/channels", gin.H{
		"slug": "ch-" + t.Name(),
		"name": "Channel",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	chID := decode(t, rec)["id"].(string)

	rec = do(t, router, http.MethodPost, "/api/v1/episodes", gin.H{
		"channel_id": chID,
		"idea":       gin.H{"brief": "why caches lie"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decode(t, rec)["id"].(string)
}

func TestEpisodeEndpoints(t *testing.T) {
	router, _ := newTestServer(t)

	rec := do(t, router, http.MethodPost, "/api/v1/channels", gin.H{
		"slug": "tech-daily",
		"name": "Tech Daily",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	chID := decode(t, rec)["id"].(string)

	rec = do(t, router, http.MethodPost, "/api/v1/episodes", gin.H{
		"channel_id": chID,
		"idea":       gin.H{"brief": "why caches lie"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	epID := decode(t, rec)["id"].(string)

	t.Run("get and list", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/api/v1/episodes/"+epID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "idea", decode(t, rec)["status"])

		rec = do(t, router, http.MethodGet, "/api/v1/episodes?channel_id="+chID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.EqualValues(t, 1, decode(t, rec)["count"])

		rec = do(t, router, http.MethodGet, "/api/v1/episodes", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("pipeline status and assets", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/api/v1/episodes/"+epID+"/pipeline_status", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, epID, body["episode_id"])

		rec = do(t, router, http.MethodGet, "/api/v1/episodes/"+epID+"/assets", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.EqualValues(t, 0, decode(t, rec)["count"])
	})

	t.Run("invalid body rejected", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/v1/episodes", gin.H{
			"channel_id": chID,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestPipelineEndpoints(t *testing.T) {
	router, _ := newTestServer(t)

	t.Run("trigger a single stage", func(t *testing.T) {
		epID := createTestEpisode(t, router)

		rec := do(t, router, http.MethodPost, "/api/v1/episodes/"+epID+"/trigger", gin.H{
			"stage": "planning",
		})
		require.Equal(t, http.StatusAccepted, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "planning", body["stage"])
		assert.Equal(t, "queued", body["status"])

		// The active job blocks a second dispatch.
		rec = do(t, router, http.MethodPost, "/api/v1/episodes/"+epID+"/trigger", gin.H{
			"stage": "planning",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing stage field", func(t *testing.T) {
		epID := createTestEpisode(t, router)
		rec := do(t, router, http.MethodPost, "/api/v1/episodes/"+epID+"/trigger", gin.H{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("advance from idea", func(t *testing.T) {
		epID := createTestEpisode(t, router)
		rec := do(t, router, http.MethodPost, "/api/v1/episodes/"+epID+"/advance", nil)
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "planning", decode(t, rec)["stage"])
	})

	t.Run("chain dispatch", func(t *testing.T) {
		epID := createTestEpisode(t, router)
		rec := do(t, router, http.MethodPost, "/api/v1/episodes/"+epID+"/run_full", nil)
		require.Equal(t, http.StatusAccepted, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "full_pipeline", body["stage"])
		assert.NotEmpty(t, body["tracking_job_id"])
	})

	t.Run("stage 1 chain", func(t *testing.T) {
		epID := createTestEpisode(t, router)
		rec := do(t, router, http.MethodPost, "/api/v1/episodes/"+epID+"/run_stage_1", nil)
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "stage_1_pipeline", decode(t, rec)["stage"])
	})

	t.Run("resume rejects an incomplete prefix", func(t *testing.T) {
		epID := createTestEpisode(t, router)
		rec := do(t, router, http.MethodPost, "/api/v1/episodes/"+epID+"/run_from_stage", gin.H{
			"start": "audio",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("approve requires the review gate", func(t *testing.T) {
		epID := createTestEpisode(t, router)
		rec := do(t, router, http.MethodPost, "/api/v1/episodes/"+epID+"/approve", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("cancel episode", func(t *testing.T) {
		epID := createTestEpisode(t, router)
		rec := do(t, router, http.MethodPost, "/api/v1/episodes/"+epID+"/trigger", gin.H{
			"stage": "planning",
		})
		require.Equal(t, http.StatusAccepted, rec.Code)

		rec = do(t, router, http.MethodPost, "/api/v1/episodes/"+epID+"/cancel", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "cancelled", body["status"])
		assert.EqualValues(t, 1, body["cancelled_job_count"])
	})
}

func TestJobEndpoints(t *testing.T) {
	router, _ := newTestServer(t)
	epID := createTestEpisode(t, router)

	rec := do(t, router, http.MethodPost, "/api/v1/episodes/"+epID+"/trigger", gin.H{
		"stage": "planning",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)
	jobID := decode(t, rec)["job_id"].(string)

	t.Run("get", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/api/v1/jobs/"+jobID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "planning", decode(t, rec)["stage"])

		rec = do(t, router, http.MethodGet, "/api/v1/jobs/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("retry only applies to failed jobs", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/v1/jobs/"+jobID+"/retry", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("cancel", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/v1/jobs/"+jobID+"/cancel", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "cancelled", decode(t, rec)["status"])
	})
}
