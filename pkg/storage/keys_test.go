package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKeys(t *testing.T) {
	assert.Equal(t, "episodes/ep-1/", EpisodePrefix("ep-1"))
	assert.Equal(t, "episodes/ep-1/script_v3.md", ObjectKey("ep-1", "script", 3, "md"))
	assert.Equal(t, "episodes/ep-1/audio_v1.mp3", ObjectKey("ep-1", "audio", 1, "mp3"))
	assert.Equal(t, "episodes/ep-1/b_roll_2_v1.mp4", BrollKey("ep-1", 2, 1))
}

func TestURIFor(t *testing.T) {
	assert.Equal(t, "s3://assets/episodes/ep-1/audio_v1.mp3",
		URIFor("assets", "episodes/ep-1/audio_v1.mp3"))
}

func TestBucketFor(t *testing.T) {
	store := NewFromClient(s3.New(s3.Options{}), "assets", "scripts", time.Hour)

	for _, textType := range []string{"script", "plan", "metadata"} {
		assert.Equal(t, "scripts", store.BucketFor(textType), textType)
	}
	for _, mediaType := range []string{"audio", "avatar_video", "b_roll", "thumbnail"} {
		assert.Equal(t, "assets", store.BucketFor(mediaType), mediaType)
	}
}

func TestClampTTL(t *testing.T) {
	store := NewFromClient(s3.New(s3.Options{}), "assets", "scripts", 2*time.Hour)

	assert.Equal(t, 2*time.Hour, store.clampTTL(0), "zero uses the default")
	assert.Equal(t, minPresignTTL, store.clampTTL(time.Second))
	assert.Equal(t, maxPresignTTL, store.clampTTL(48*time.Hour))
	assert.Equal(t, 30*time.Minute, store.clampTTL(30*time.Minute))
}

// Presigning only signs; no server is needed.
func presignTestStore() *Store {
	client := s3.New(s3.Options{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("test", "test", ""),
	})
	return NewFromClient(client, "assets", "scripts", time.Hour)
}

func TestPresignGet_DefaultTTL(t *testing.T) {
	store := presignTestStore()

	url, err := store.PresignGet(context.Background(), "assets", "episodes/ep-1/audio_v1.mp3", 0)
	require.NoError(t, err)
	assert.Contains(t, url, "episodes/ep-1/audio_v1.mp3")
	assert.Contains(t, url, "X-Amz-Expires=3600")
}

func TestPresignPut(t *testing.T) {
	store := presignTestStore()
	ctx := context.Background()

	url, err := store.PresignPut(ctx, "assets", "episodes/ep-1/final_v1.mp4", "video/mp4", 48*time.Hour)
	require.NoError(t, err)
	assert.Contains(t, url, "episodes/ep-1/final_v1.mp4")
	assert.Contains(t, url, "X-Amz-Expires=86400", "TTL past the cap is clamped")
	assert.Contains(t, strings.ToLower(url), "content-type",
		"a pinned content type must be part of the signature")

	url, err = store.PresignPut(ctx, "assets", "episodes/ep-1/blob", "", time.Second)
	require.NoError(t, err)
	assert.Contains(t, url, "X-Amz-Expires=60", "TTL below the floor is clamped")

	_, err = store.PresignPut(ctx, "assets", "", "", 0)
	require.Error(t, err)
}

func TestMimeTypeForKey(t *testing.T) {
	assert.Equal(t, "application/octet-stream", mimeTypeForKey("episodes/ep-1/blob"))
	assert.Contains(t, mimeTypeForKey("episodes/ep-1/metadata_v1.json"), "application/json")
}
