package queue

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showforge/showforge/ent"
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/ent/job"
	"github.com/showforge/showforge/pkg/config"
	"github.com/showforge/showforge/pkg/models"
	testdb "github.com/showforge/showforge/test/database"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:         2,
		MaxConcurrentJobs:   4,
		ClaimInterval:       10 * time.Millisecond,
		ClaimIntervalJitter: 2 * time.Millisecond,
		HeartbeatInterval:   10 * time.Millisecond,
		OrphanThreshold:     10 * time.Minute,
		OrphanScanInterval:  time.Minute,
		JobTimeout:          time.Minute,
	}
}

func seedQueueEpisode(t *testing.T, client *ent.Client, priority int) *ent.Episode {
	t.Helper()
	ctx := context.Background()

	ch, err := client.Channel.Create().
		SetID(uuid.New().String()).
		SetSlug("ch-" + uuid.New().String()[:8]).
		SetName("Queue Test").
		Save(ctx)
	require.NoError(t, err)

	ep, err := client.Episode.Create().
		SetID(uuid.New().String()).
		SetChannelID(ch.ID).
		SetIdea(&models.IdeaRecord{Brief: "queue test"}).
		SetPriority(priority).
		Save(ctx)
	require.NoError(t, err)
	return ep
}

func seedJob(t *testing.T, client *ent.Client, episodeID, stage string, status job.Status, age time.Duration) *ent.Job {
	t.Helper()

	builder := client.Job.Create().
		SetID(uuid.New().String()).
		SetEpisodeID(episodeID).
		SetStage(stage).
		SetStatus(status).
		SetInputParams(&models.WorkParams{}).
		SetCreatedAt(time.Now().Add(-age))
	if status == job.StatusRunning {
		builder.SetStartedAt(time.Now().Add(-age))
	}
	j, err := builder.Save(context.Background())
	require.NoError(t, err)
	return j
}

func TestReapOrphans(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	sup := NewSupervisor(client, testQueueConfig(), nil)

	ep := seedQueueEpisode(t, client, 0)
	require.NoError(t, client.Episode.UpdateOneID(ep.ID).
		SetStatus(episode.StatusAudio).
		Exec(ctx))

	// Running with a stale heartbeat: the worker is gone.
	stale := seedJob(t, client, ep.ID, models.StageAudio, job.StatusRunning, 20*time.Minute)
	require.NoError(t, client.Job.UpdateOneID(stale.ID).
		SetHeartbeatAt(time.Now().Add(-20*time.Minute)).
		Exec(ctx))

	// Queued past the threshold without ever being claimed.
	other := seedQueueEpisode(t, client, 0)
	neverClaimed := seedJob(t, client, other.ID, models.StagePlanning, job.StatusQueued, 15*time.Minute)

	// Fresh rows stay.
	young := seedJob(t, client, other.ID, models.StageScripting, job.StatusQueued, time.Minute)
	healthy := seedJob(t, client, other.ID, models.StageMetadata, job.StatusRunning, 20*time.Minute)
	require.NoError(t, client.Job.UpdateOneID(healthy.ID).
		SetHeartbeatAt(time.Now()).
		Exec(ctx))

	n, err := sup.ReapOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{stale.ID, neverClaimed.ID} {
		j, err := client.Job.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelled, j.Status, id)
		require.NotNil(t, j.ErrorMessage)
		assert.Contains(t, *j.ErrorMessage, "orphaned")
		require.NotNil(t, j.CompletedAt)
		assert.WithinDuration(t, time.Now(), *j.CompletedAt, 5*time.Second)
	}

	j, err := client.Job.Get(ctx, young.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, j.Status)

	j, err = client.Job.Get(ctx, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, j.Status)

	// The episode stuck in the orphaned stage's status goes to failed.
	got, err := client.Episode.Get(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusFailed, got.Status)
	require.NotNil(t, got.LastError)
	assert.Equal(t, "audio stage orphaned", *got.LastError)
	assert.Equal(t, 1, got.RetryCount)

	// The other episode never entered a stage status; it is untouched.
	got, err = client.Episode.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusIdea, got.Status)
}

func TestReapOrphans_SkipsEpisodesActiveOnThisPod(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	cfg := testQueueConfig()

	pool := NewWorkerPool(client, cfg, nil)
	sup := NewSupervisor(client, cfg, pool)

	ep := seedQueueEpisode(t, client, 0)
	j := seedJob(t, client, ep.ID, models.StagePlanning, job.StatusRunning, 20*time.Minute)

	// The pod is mid-execution; heartbeat lag alone must not kill the job.
	pool.RegisterJob(ep.ID, j.ID, func() {})
	defer pool.UnregisterJob(ep.ID)

	n, err := sup.ReapOrphans(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, got.Status)
}

func TestReapOrphans_BacklogSparedWhenSaturated(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	cfg := testQueueConfig()
	sup := NewSupervisor(client, cfg, nil)

	// Every slot holds a live job; nothing could have claimed the backlog.
	busy := seedQueueEpisode(t, client, 0)
	for i := 0; i < cfg.MaxConcurrentJobs; i++ {
		j := seedJob(t, client, busy.ID, models.StagePlanning, job.StatusRunning, time.Minute)
		require.NoError(t, client.Job.UpdateOneID(j.ID).
			SetHeartbeatAt(time.Now()).
			Exec(ctx))
	}

	waiting := seedQueueEpisode(t, client, 0)
	backlog := seedJob(t, client, waiting.ID, models.StagePlanning, job.StatusQueued, 15*time.Minute)

	n, err := sup.ReapOrphans(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := client.Job.Get(ctx, backlog.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, got.Status, "aged queued rows are backlog while the pool is full")
}

func TestReapOrphans_WarnsOnLostCommit(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	sup := NewSupervisor(client, testQueueConfig(), nil)

	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	// The scripting commit landed, but the worker died before finalizing its
	// job row.
	ep := seedQueueEpisode(t, client, 0)
	now := time.Now()
	require.NoError(t, client.Episode.UpdateOneID(ep.ID).
		SetStatus(episode.StatusScriptReview).
		SetPipelineState(models.PipelineState{
			models.StageScripting: {Status: models.StageStatusCompleted, CompletedAt: &now, UpdatedAt: now},
		}).
		Exec(ctx))

	j := seedJob(t, client, ep.ID, models.StageScripting, job.StatusRunning, 20*time.Minute)
	require.NoError(t, client.Job.UpdateOneID(j.ID).
		SetHeartbeatAt(time.Now().Add(-20*time.Minute)).
		Exec(ctx))

	n, err := sup.ReapOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, logs.String(), "finalize write was lost")

	// The episode already moved past the stage; its status stands.
	got, err := client.Episode.Get(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusScriptReview, got.Status)
}

func TestCleanupStartupJobs(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "showforge"
	}

	ep := seedQueueEpisode(t, client, 0)

	ours := seedJob(t, client, ep.ID, models.StagePlanning, job.StatusRunning, time.Minute)
	require.NoError(t, client.Job.UpdateOneID(ours.ID).
		SetExternalTaskID(fmt.Sprintf("%s-dead0000/worker-0", hostname)).
		Exec(ctx))

	foreign := seedJob(t, client, ep.ID, models.StageScripting, job.StatusRunning, time.Minute)
	require.NoError(t, client.Job.UpdateOneID(foreign.ID).
		SetExternalTaskID("otherhost-12345678/worker-0").
		Exec(ctx))

	require.NoError(t, CleanupStartupJobs(ctx, client))

	got, err := client.Job.Get(ctx, ours.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "orphaned", *got.ErrorMessage)

	got, err = client.Job.Get(ctx, foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, got.Status, "another host's claim is not ours to cancel")
}
