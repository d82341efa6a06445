package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showforge/showforge/ent"
	entasset "github.com/showforge/showforge/ent/asset"
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/ent/job"
	"github.com/showforge/showforge/pkg/config"
	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/providers"
	"github.com/showforge/showforge/pkg/services"
	"github.com/showforge/showforge/pkg/storage"
	testdb "github.com/showforge/showforge/test/database"
)

const testScript = "[AVATAR: Welcome to the show.] This is the narrated intro. " +
	"[VO: Main point one.] [BROLL: server racks at night]"

// fakeObjectStore is an in-memory S3-compatible server keyed by request path
// ("/bucket/key").
type fakeObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeStore(t *testing.T) (*storage.Store, *fakeObjectStore) {
	t.Helper()
	fake := &fakeObjectStore{objects: map[string][]byte{}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.mu.Lock()
		defer fake.mu.Unlock()
		switch r.Method {
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			fake.objects[r.URL.Path] = body
			w.Header().Set("ETag", `"test"`)
		case http.MethodGet:
			if body, ok := fake.objects[r.URL.Path]; ok {
				_, _ = w.Write(body)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		case http.MethodHead:
			w.WriteHeader(http.StatusOK)
		}
	}))
	t.Cleanup(srv.Close)

	client := s3.New(s3.Options{
		Region:       "us-east-1",
		Credentials:  credentials.NewStaticCredentialsProvider("test", "test", ""),
		BaseEndpoint: aws.String(srv.URL),
		UsePathStyle: true,
	})
	return storage.NewFromClient(client, "assets", "scripts", time.Hour), fake
}

func (f *fakeObjectStore) has(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[path]
	return ok
}

// newFakeTextClient answers planning, scripting, and metadata completions by
// inspecting the requested response schema.
func newFakeTextClient(t *testing.T, fail bool) *providers.TextClient {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		body, _ := io.ReadAll(r.Body)

		var content string
		switch {
		case strings.Contains(string(body), "episode_plan"):
			content = `{"hook":"Why your cache is lying","sections":[{"title":"Intro","talking_points":["p1"]}]}`
		case strings.Contains(string(body), "episode_meta"):
			content = `{"title_variants":["Caches Lie"],"description":"An episode about caches.","tags":["caching"]}`
		default:
			content = testScript
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
			"usage": map[string]any{"prompt_tokens": 100, "completion_tokens": 50},
		})
	}))
	t.Cleanup(srv.Close)

	return providers.NewTextClient(&config.TextProviderConfig{
		APIKey:          "k",
		BaseURL:         srv.URL,
		PlanningModel:   "plan-model",
		ScriptingModel:  "script-model",
		MetadataModel:   "meta-model",
		InputCostPer1K:  0.01,
		OutputCostPer1K: 0.03,
		Timeout:         5 * time.Second,
		Retry:           config.RetrySettings{MaxRetries: 1, BackoffBase: time.Millisecond, BackoffMax: 5 * time.Millisecond},
	})
}

func newFakeSpeechClient(t *testing.T) *providers.SpeechClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	t.Cleanup(srv.Close)

	return providers.NewSpeechClient(&config.SpeechProviderConfig{
		APIKey:      "k",
		BaseURL:     srv.URL,
		CostPerChar: 0.0001,
		Timeout:     5 * time.Second,
		Retry:       config.RetrySettings{MaxRetries: 1, BackoffBase: time.Millisecond, BackoffMax: 5 * time.Millisecond},
	})
}

func seedPipelineEpisode(t *testing.T, client *ent.Client, autoAdvance bool) *ent.Episode {
	t.Helper()
	ctx := context.Background()

	ch, err := client.Channel.Create().
		SetID(uuid.New().String()).
		SetSlug("ch-" + uuid.New().String()[:8]).
		SetName("Pipeline Test").
		SetVoiceProfile(&models.VoiceProfile{VoiceID: "v-1"}).
		SetAutoAdvance(autoAdvance).
		Save(ctx)
	require.NoError(t, err)

	ep, err := client.Episode.Create().
		SetID(uuid.New().String()).
		SetChannelID(ch.ID).
		SetIdea(&models.IdeaRecord{Brief: "why caches lie"}).
		SetAutoAdvance(autoAdvance).
		Save(ctx)
	require.NoError(t, err)
	return ep
}

func TestRunStage_Planning(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	store, fake := newFakeStore(t)
	p := New(client, store, newFakeTextClient(t, false), nil, nil, nil)
	ep := seedPipelineEpisode(t, client, false)

	outcome, err := p.RunStage(ctx, ep.ID, models.StagePlanning, models.WorkParams{})
	require.NoError(t, err)
	require.Len(t, outcome.AssetIDs, 1)
	assert.False(t, outcome.Cached)
	assert.Equal(t, 150, outcome.Usage.Tokens())

	got, err := client.Episode.Get(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusPlanning, got.Status)
	require.NotNil(t, got.Plan)
	assert.Equal(t, "Why your cache is lying", got.Plan.Hook)

	state := got.PipelineState[models.StagePlanning]
	assert.Equal(t, models.StageStatusCompleted, state.Status)
	assert.Equal(t, 1, state.Attempts)
	assert.Equal(t, outcome.AssetIDs, state.AssetIDs)

	a, err := client.Asset.Get(ctx, outcome.AssetIDs[0])
	require.NoError(t, err)
	assert.Equal(t, entasset.TypePlan, a.Type)
	assert.Equal(t, 1, a.Version)
	assert.True(t, a.IsPrimary)
	assert.Equal(t, "scripts", a.Bucket)

	assert.True(t, fake.has("/scripts/episodes/"+ep.ID+"/plan_v1.json"),
		"plan artifact stored under the episode prefix")
}

func TestRunStage_CachedRerun(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	store, _ := newFakeStore(t)
	p := New(client, store, newFakeTextClient(t, false), nil, nil, nil)
	ep := seedPipelineEpisode(t, client, false)

	first, err := p.RunStage(ctx, ep.ID, models.StagePlanning, models.WorkParams{})
	require.NoError(t, err)

	again, err := p.RunStage(ctx, ep.ID, models.StagePlanning, models.WorkParams{})
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, first.AssetIDs, again.AssetIDs)

	n, err := client.Asset.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "a cached re-run produces no new artifact")

	// force re-executes and versions a fresh artifact.
	forced, err := p.RunStage(ctx, ep.ID, models.StagePlanning, models.WorkParams{Force: true})
	require.NoError(t, err)
	assert.False(t, forced.Cached)
	assert.NotEqual(t, first.AssetIDs, forced.AssetIDs)

	a, err := client.Asset.Get(ctx, forced.AssetIDs[0])
	require.NoError(t, err)
	assert.Equal(t, 2, a.Version)
}

func TestRunStage_Guards(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	store, _ := newFakeStore(t)
	p := New(client, store, newFakeTextClient(t, false), nil, nil, nil)
	ep := seedPipelineEpisode(t, client, false)

	_, err := p.RunStage(ctx, ep.ID, "publish", models.WorkParams{})
	assert.Equal(t, services.KindValidation, services.KindOf(err))

	_, err = p.RunStage(ctx, ep.ID, models.StageAudio, models.WorkParams{})
	assert.Equal(t, services.KindValidation, services.KindOf(err))

	_, err = p.RunStage(ctx, "missing", models.StagePlanning, models.WorkParams{})
	assert.Equal(t, services.KindNotFound, services.KindOf(err))

	// A media stage without its provider is a permanent dispatch error.
	require.NoError(t, client.Episode.UpdateOneID(ep.ID).
		SetStatus(episode.StatusScriptReview).
		SetScript(testScript).
		Exec(ctx))
	_, err = p.RunStage(ctx, ep.ID, models.StageAudio, models.WorkParams{})
	assert.Equal(t, services.KindValidation, services.KindOf(err))
}

func TestRunStage_ProviderFailureRecorded(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	store, _ := newFakeStore(t)
	p := New(client, store, newFakeTextClient(t, true), nil, nil, nil)
	ep := seedPipelineEpisode(t, client, false)

	_, err := p.RunStage(ctx, ep.ID, models.StagePlanning, models.WorkParams{})
	require.Error(t, err)
	assert.Equal(t, services.KindExternalService, services.KindOf(err))

	got, err := client.Episode.Get(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusIdea, got.Status, "a failed stage does not advance the lifecycle")
	require.NotNil(t, got.LastError)

	state := got.PipelineState[models.StagePlanning]
	assert.Equal(t, models.StageStatusFailed, state.Status)
	assert.Equal(t, 1, state.Attempts)
	assert.NotEmpty(t, state.Error)
}

func TestRunStage_ExternalCancelBeforeCommit(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	store, _ := newFakeStore(t)
	ep := seedPipelineEpisode(t, client, false)

	// The cancel lands on another pod while the provider call is in flight:
	// only the database rows flip, this pod's context stays live.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, client.Episode.UpdateOneID(ep.ID).
			SetStatus(episode.StatusCancelled).
			Exec(context.Background()))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `{"hook":"h","sections":[{"title":"t","talking_points":["p"]}]}`}},
			},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5},
		})
	}))
	t.Cleanup(srv.Close)

	text := providers.NewTextClient(&config.TextProviderConfig{
		APIKey:        "k",
		BaseURL:       srv.URL,
		PlanningModel: "plan-model",
		Timeout:       5 * time.Second,
		Retry:         config.RetrySettings{MaxRetries: 1, BackoffBase: time.Millisecond, BackoffMax: 5 * time.Millisecond},
	})
	p := New(client, store, text, nil, nil, nil)

	_, err := p.RunStage(ctx, ep.ID, models.StagePlanning, models.WorkParams{})
	require.ErrorIs(t, err, context.Canceled)

	got, err := client.Episode.Get(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusCancelled, got.Status, "the commit never overwrites a cancelled episode")
	assert.Nil(t, got.Plan)
	assert.Equal(t, models.StageStatusCancelled, got.PipelineState[models.StagePlanning].Status)

	n, err := client.Asset.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "nothing is committed after the cancel")
}

func TestRunStage_Audio(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	store, fake := newFakeStore(t)
	p := New(client, store, newFakeTextClient(t, false), newFakeSpeechClient(t), nil, nil)
	ep := seedPipelineEpisode(t, client, false)

	require.NoError(t, client.Episode.UpdateOneID(ep.ID).
		SetStatus(episode.StatusScriptReview).
		SetScript(testScript).
		Exec(ctx))

	outcome, err := p.RunStage(ctx, ep.ID, models.StageAudio, models.WorkParams{})
	require.NoError(t, err)
	require.Len(t, outcome.AssetIDs, 1)
	assert.Greater(t, outcome.DurationS, 0.0)

	got, err := client.Episode.Get(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusAudio, got.Status)

	a, err := client.Asset.Get(ctx, outcome.AssetIDs[0])
	require.NoError(t, err)
	assert.Equal(t, entasset.TypeAudio, a.Type)
	assert.Equal(t, "assets", a.Bucket)
	assert.Equal(t, "v-1", a.Metadata.Voice)
	assert.True(t, fake.has("/assets/episodes/"+ep.ID+"/audio_v1.mp3"))
}

func trackingJob(t *testing.T, client *ent.Client, episodeID, chainStage string) *ent.Job {
	t.Helper()
	j, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetEpisodeID(episodeID).
		SetStage(chainStage).
		SetStatus(job.StatusRunning).
		SetInputParams(&models.WorkParams{}).
		Save(context.Background())
	require.NoError(t, err)
	return j
}

func TestRunChain_PausesAtScriptReview(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	store, _ := newFakeStore(t)
	p := New(client, store, newFakeTextClient(t, false), nil, nil, nil)
	ep := seedPipelineEpisode(t, client, false)

	result, err := p.RunChain(ctx, trackingJob(t, client, ep.ID, models.ChainFullPipeline))
	require.NoError(t, err)
	assert.Equal(t,
		[]string{models.StagePlanning, models.StageScripting, models.StageMetadata},
		result.StagesCompleted,
		"the chain pauses before audio without approval")

	got, err := client.Episode.Get(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusScriptReview, got.Status)
	require.NotNil(t, got.Script)
	assert.Equal(t, testScript, *got.Script)
	require.NotNil(t, got.EpisodeMeta)
	assert.Equal(t, []string{"Caches Lie"}, got.EpisodeMeta.TitleVariants)

	// Each stage ran under its own completed job row.
	n, err := client.Job.Query().
		Where(
			job.EpisodeIDEQ(ep.ID),
			job.StatusEQ(job.StatusCompleted),
			job.StageIn(models.StagePlanning, models.StageScripting, models.StageMetadata),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRunChain_AutoAdvanceContinuesIntoAudio(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	store, _ := newFakeStore(t)
	p := New(client, store, newFakeTextClient(t, false), newFakeSpeechClient(t), nil, nil)
	ep := seedPipelineEpisode(t, client, true)

	// Avatar and broll have no providers configured, so the chain stops there;
	// the point is that auto_advance carries it past the review gate.
	result, err := p.RunChain(ctx, trackingJob(t, client, ep.ID, models.ChainFullPipeline))
	require.Error(t, err)
	assert.Nil(t, result)

	got, err := client.Episode.Get(ctx, ep.ID)
	require.NoError(t, err)
	assert.True(t, got.PipelineState.Completed(models.StageAudio),
		"audio ran without manual approval")
}

func TestRunChain_FailureAbandons(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	store, _ := newFakeStore(t)
	p := New(client, store, newFakeTextClient(t, true), nil, nil, nil)
	ep := seedPipelineEpisode(t, client, false)

	_, err := p.RunChain(ctx, trackingJob(t, client, ep.ID, models.ChainStage1Pipeline))
	require.Error(t, err)

	got, err := client.Episode.Get(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusFailed, got.Status)
	assert.Equal(t, 1, got.RetryCount)
	require.NotNil(t, got.LastError)

	n, err := client.Job.Query().
		Where(job.EpisodeIDEQ(ep.ID), job.StatusEQ(job.StatusFailed)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRunChain_SkipAndResume(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	store, _ := newFakeStore(t)
	p := New(client, store, newFakeTextClient(t, false), newFakeSpeechClient(t), nil, nil)
	ep := seedPipelineEpisode(t, client, false)

	// A failed episode with the text stages done resumes from audio.
	state := models.PipelineState{}
	for _, s := range []string{models.StagePlanning, models.StageScripting, models.StageMetadata} {
		state[s] = models.StageState{Status: models.StageStatusCompleted, UpdatedAt: time.Now()}
	}
	require.NoError(t, client.Episode.UpdateOneID(ep.ID).
		SetStatus(episode.StatusFailed).
		SetPipelineState(state).
		SetScript(testScript).
		Exec(ctx))

	tracking, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetEpisodeID(ep.ID).
		SetStage(models.ChainFromStage(models.StageAudio)).
		SetStatus(job.StatusRunning).
		SetInputParams(&models.WorkParams{
			Start: models.StageAudio,
			Skip:  []string{models.StageAvatar, models.StageBroll},
		}).
		Save(ctx)
	require.NoError(t, err)

	result, err := p.RunChain(ctx, tracking)
	require.NoError(t, err)
	assert.Equal(t, []string{models.StageAudio}, result.StagesCompleted)

	got, err := client.Episode.Get(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusAudio, got.Status)
}
