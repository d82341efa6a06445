// Package storage is the object-store gateway. Stage artifacts live in two
// S3-compatible buckets under a deterministic key layout: text artifacts
// (scripts, plans, metadata) in the scripts bucket, media in the assets
// bucket. The database stores only URIs and checksums.
package storage

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/showforge/showforge/pkg/config"
	"github.com/showforge/showforge/pkg/services"
)

const (
	minPresignTTL = 1 * time.Minute
	maxPresignTTL = 24 * time.Hour
)

// Store is the S3-backed artifact store.
type Store struct {
	client  *s3.Client
	presign *s3.PresignClient

	assetsBucket  string
	scriptsBucket string
	defaultTTL    time.Duration
}

// New creates a Store from configuration. A non-empty Endpoint points the
// client at an S3-compatible server (MinIO in development and tests).
func New(ctx context.Context, cfg *config.StorageConfig) (*Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &Store{
		client:        client,
		presign:       s3.NewPresignClient(client),
		assetsBucket:  cfg.AssetsBucket,
		scriptsBucket: cfg.ScriptsBucket,
		defaultTTL:    cfg.PresignTTL,
	}, nil
}

// NewFromClient wraps an existing S3 client (useful for testing).
func NewFromClient(client *s3.Client, assetsBucket, scriptsBucket string, defaultTTL time.Duration) *Store {
	return &Store{
		client:        client,
		presign:       s3.NewPresignClient(client),
		assetsBucket:  assetsBucket,
		scriptsBucket: scriptsBucket,
		defaultTTL:    defaultTTL,
	}
}

// BucketFor returns the bucket holding artifacts of a type: text artifacts go
// to the scripts bucket, media to the assets bucket.
func (s *Store) BucketFor(assetType string) string {
	switch assetType {
	case "script", "plan", "metadata":
		return s.scriptsBucket
	}
	return s.assetsBucket
}

// EnsureBuckets creates both buckets if they do not exist yet.
func (s *Store) EnsureBuckets(ctx context.Context) error {
	for _, bucket := range []string{s.assetsBucket, s.scriptsBucket} {
		if err := s.ensureBucket(ctx, bucket); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) ensureBucket(ctx context.Context, bucket string) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err == nil {
		return nil
	}
	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		return services.E(services.KindStorageError, "failed to check bucket %s: %v", bucket, err)
	}
	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)})
	if err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &owned) {
			return nil
		}
		return services.E(services.KindStorageError, "failed to create bucket %s: %v", bucket, err)
	}
	return nil
}

// UploadResult describes a stored object.
type UploadResult struct {
	URI      string
	Bucket   string
	Key      string
	Size     int64
	Checksum string
	MimeType string
}

// Upload writes an object and returns its URI and MD5 checksum. An empty
// mimeType is guessed from the key's extension. Zero-byte uploads are valid
// and produce the checksum of the empty string.
func (s *Store) Upload(ctx context.Context, bucket, key string, data []byte, mimeType string) (*UploadResult, error) {
	if key == "" {
		return nil, services.E(services.KindValidation, "object key is required")
	}
	if mimeType == "" {
		mimeType = mimeTypeForKey(key)
	}

	sum := md5.Sum(data)
	checksum := hex.EncodeToString(sum[:])

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return nil, services.E(services.KindStorageError, "failed to upload %s: %v", key, err)
	}

	return &UploadResult{
		URI:      URIFor(bucket, key),
		Bucket:   bucket,
		Key:      key,
		Size:     int64(len(data)),
		Checksum: checksum,
		MimeType: mimeType,
	}, nil
}

// Download reads an object in full.
func (s *Store) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, services.E(services.KindNotFound, "object %s not found", key)
		}
		return nil, services.E(services.KindStorageError, "failed to download %s: %v", key, err)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, services.E(services.KindStorageError, "failed to read %s: %v", key, err)
	}
	return data, nil
}

// PresignGet returns a time-limited download URL. ttl <= 0 uses the configured
// default; any value is clamped to [1m, 24h].
func (s *Store) PresignGet(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.clampTTL(ttl)))
	if err != nil {
		return "", services.E(services.KindStorageError, "failed to presign %s: %v", key, err)
	}
	return req.URL, nil
}

// PresignPut returns a time-limited upload URL for direct client uploads of
// externally produced artifacts. The same TTL clamp as PresignGet applies; a
// non-empty contentType is pinned into the signature so the uploader must
// send it.
func (s *Store) PresignPut(ctx context.Context, bucket, key, contentType string, ttl time.Duration) (string, error) {
	if key == "" {
		return "", services.E(services.KindValidation, "object key is required")
	}
	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	req, err := s.presign.PresignPutObject(ctx, input, s3.WithPresignExpires(s.clampTTL(ttl)))
	if err != nil {
		return "", services.E(services.KindStorageError, "failed to presign upload %s: %v", key, err)
	}
	return req.URL, nil
}

// DeleteEpisodeObjects removes every stored object under an episode's prefix
// in both buckets. Returns the number of objects deleted.
func (s *Store) DeleteEpisodeObjects(ctx context.Context, episodeID string) (int, error) {
	deleted := 0
	for _, bucket := range []string{s.assetsBucket, s.scriptsBucket} {
		n, err := s.deletePrefix(ctx, bucket, EpisodePrefix(episodeID))
		deleted += n
		if err != nil {
			return deleted, err
		}
	}
	return deleted, nil
}

func (s *Store) deletePrefix(ctx context.Context, bucket, prefix string) (int, error) {
	deleted := 0
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return deleted, services.E(services.KindStorageError, "failed to list %s: %v", prefix, err)
		}
		if len(page.Contents) == 0 {
			continue
		}
		objects := make([]types.ObjectIdentifier, len(page.Contents))
		for i, obj := range page.Contents {
			objects[i] = types.ObjectIdentifier{Key: obj.Key}
		}
		_, err = s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(bucket),
			Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
		})
		if err != nil {
			return deleted, services.E(services.KindStorageError, "failed to delete under %s: %v", prefix, err)
		}
		deleted += len(objects)
	}
	return deleted, nil
}

// URIFor returns the canonical s3:// URI for a key.
func URIFor(bucket, key string) string {
	return fmt.Sprintf("s3://%s/%s", bucket, key)
}

func (s *Store) clampTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	if ttl < minPresignTTL {
		return minPresignTTL
	}
	if ttl > maxPresignTTL {
		return maxPresignTTL
	}
	return ttl
}

func mimeTypeForKey(key string) string {
	if t := mime.TypeByExtension(path.Ext(key)); t != "" {
		return t
	}
	return "application/octet-stream"
}
