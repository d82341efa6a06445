package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showforge/showforge/ent/job"
	"github.com/showforge/showforge/pkg/models"
	testdb "github.com/showforge/showforge/test/database"
)

func TestClaimNextJob_PriorityThenFIFO(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	w := NewWorker("worker-0", "pod-1", client, testQueueConfig(), nil, nil)

	low := seedQueueEpisode(t, client, 0)
	high := seedQueueEpisode(t, client, 2)

	// The low-priority job is older, but priority outranks age.
	first := seedJob(t, client, low.ID, models.StagePlanning, job.StatusQueued, time.Hour)
	urgent := seedJob(t, client, high.ID, models.StagePlanning, job.StatusQueued, time.Minute)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, urgent.ID, claimed.ID)
	assert.Equal(t, job.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.ExternalTaskID)
	assert.Equal(t, "pod-1/worker-0", *claimed.ExternalTaskID)
	require.NotNil(t, claimed.StartedAt)
	require.NotNil(t, claimed.HeartbeatAt)

	claimed, err = w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID)

	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestFinalizeJob(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	w := NewWorker("worker-0", "pod-1", client, testQueueConfig(), nil, nil)
	ep := seedQueueEpisode(t, client, 0)

	t.Run("success writes the result", func(t *testing.T) {
		j := seedJob(t, client, ep.ID, models.StagePlanning, job.StatusRunning, time.Minute)

		result := &models.JobResult{
			AssetIDs:   []string{"as-1"},
			CostUSD:    0.12,
			TokensUsed: 900,
		}
		require.NoError(t, w.finalizeJob(ctx, ctx, j, result, nil))

		got, err := client.Job.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCompleted, got.Status)
		require.NotNil(t, got.Result)
		assert.Equal(t, []string{"as-1"}, got.Result.AssetIDs)
		assert.InDelta(t, 0.12, got.CostUsd, 0.0001)
		assert.Equal(t, 900, got.TokensUsed)
		require.NotNil(t, got.CompletedAt)
	})

	t.Run("cancellation maps to cancelled", func(t *testing.T) {
		j := seedJob(t, client, ep.ID, models.StageScripting, job.StatusRunning, time.Minute)

		require.NoError(t, w.finalizeJob(ctx, ctx, j, nil, context.Canceled))

		got, err := client.Job.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelled, got.Status)
	})

	t.Run("timeout maps to failed", func(t *testing.T) {
		j := seedJob(t, client, ep.ID, models.StageAudio, job.StatusRunning, time.Minute)

		jobCtx, cancel := context.WithTimeout(ctx, time.Nanosecond)
		defer cancel()
		<-jobCtx.Done()

		require.NoError(t, w.finalizeJob(ctx, jobCtx, j, nil, context.DeadlineExceeded))

		got, err := client.Job.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Contains(t, *got.ErrorMessage, "timed out")
	})

	t.Run("externally cancelled row keeps its terminal status", func(t *testing.T) {
		j := seedJob(t, client, ep.ID, models.StageBroll, job.StatusRunning, time.Minute)
		j, err := client.Job.UpdateOneID(j.ID).
			SetStatus(job.StatusCancelled).
			SetErrorMessage("context canceled").
			SetCompletedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)

		// The executor finished anyway; the cancel won the race and stands.
		require.NoError(t, w.finalizeJob(ctx, ctx, j, &models.JobResult{CostUSD: 0.5}, nil))

		got, err := client.Job.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelled, got.Status)
		assert.Nil(t, got.Result)
	})

	t.Run("executor error is recorded verbatim", func(t *testing.T) {
		j := seedJob(t, client, ep.ID, models.StageAvatar, job.StatusRunning, time.Minute)

		execErr := assert.AnError
		require.NoError(t, w.finalizeJob(ctx, ctx, j, nil, execErr))

		got, err := client.Job.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, execErr.Error(), *got.ErrorMessage)
	})
}

func TestRunHeartbeat_DetectsExternalCancel(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	w := NewWorker("worker-0", "pod-1", client, testQueueConfig(), nil, nil)

	ep := seedQueueEpisode(t, client, 0)
	j := seedJob(t, client, ep.ID, models.StagePlanning, job.StatusRunning, time.Minute)

	jobCtx, cancelJob := context.WithCancel(ctx)
	defer cancelJob()

	hbCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()
	done := make(chan struct{})
	go func() {
		w.runHeartbeat(hbCtx, ep.ID, j.ID, cancelJob)
		close(done)
	}()

	// Another pod serves the cancel: only the database row flips.
	require.NoError(t, client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusCancelled).
		SetCompletedAt(time.Now()).
		Exec(ctx))

	select {
	case <-jobCtx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("local execution kept running after the database cancel")
	}
	<-done
}

func TestPollInterval_Jitter(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-0", "pod-1", nil, cfg, nil, nil)

	for i := 0; i < 50; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, cfg.ClaimInterval-cfg.ClaimIntervalJitter)
		assert.LessOrEqual(t, d, cfg.ClaimInterval+cfg.ClaimIntervalJitter)
	}
}
