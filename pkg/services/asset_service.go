package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/showforge/showforge/ent"
	"github.com/showforge/showforge/ent/asset"
	"github.com/showforge/showforge/pkg/models"
)

// AssetService manages artifact records. Creation happens inside the stage
// executors' commit transactions, so the write methods take *ent.Tx.
type AssetService struct {
	client *ent.Client
}

// NewAssetService creates a new AssetService.
func NewAssetService(client *ent.Client) *AssetService {
	return &AssetService{client: client}
}

// NextVersion returns the next artifact version for (episode, type): one past
// the highest version ever recorded, including soft-deleted rows, so keys are
// never reused.
func (s *AssetService) NextVersion(ctx context.Context, episodeID, assetType string) (int, error) {
	latest, err := s.client.Asset.Query().
		Where(
			asset.EpisodeIDEQ(episodeID),
			asset.TypeEQ(asset.Type(assetType)),
		).
		Order(ent.Desc(asset.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to query latest asset version: %w", err)
	}
	return latest.Version + 1, nil
}

// CreateAssetTx records an artifact inside an executor's commit transaction.
// When the new row is primary, siblings of the same type are demoted in the
// same transaction, preserving the single-primary invariant.
func CreateAssetTx(ctx context.Context, tx *ent.Tx, req models.CreateAssetRequest) (*ent.Asset, error) {
	if req.EpisodeID == "" {
		return nil, E(KindValidation, "episode_id is required")
	}
	if req.URI == "" {
		return nil, E(KindValidation, "uri is required")
	}

	if req.IsPrimary {
		if _, err := tx.Asset.Update().
			Where(
				asset.EpisodeIDEQ(req.EpisodeID),
				asset.TypeEQ(asset.Type(req.Type)),
				asset.IsPrimary(true),
				asset.DeletedAtIsNil(),
			).
			SetIsPrimary(false).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to demote primary siblings: %w", err)
		}
	}

	builder := tx.Asset.Create().
		SetID(uuid.New().String()).
		SetEpisodeID(req.EpisodeID).
		SetType(asset.Type(req.Type)).
		SetURI(req.URI).
		SetBucket(req.Bucket).
		SetKey(req.Key).
		SetVersion(req.Version).
		SetSizeBytes(req.SizeBytes).
		SetIsPrimary(req.IsPrimary)

	if req.Provider != "" {
		builder.SetProvider(req.Provider)
	}
	if req.ProviderJobID != "" {
		builder.SetProviderJobID(req.ProviderJobID)
	}
	if req.MimeType != "" {
		builder.SetMimeType(req.MimeType)
	}
	if req.DurationS > 0 {
		builder.SetDurationS(req.DurationS)
	}
	md := req.Metadata
	builder.SetMetadata(&md)

	a, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, E(KindConflict, "primary asset conflict for episode %s type %s", req.EpisodeID, req.Type)
		}
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	return a, nil
}

// GetPrimary returns the primary live asset of a type for an episode.
func (s *AssetService) GetPrimary(ctx context.Context, episodeID, assetType string) (*ent.Asset, error) {
	a, err := s.client.Asset.Query().
		Where(
			asset.EpisodeIDEQ(episodeID),
			asset.TypeEQ(asset.Type(assetType)),
			asset.IsPrimary(true),
			asset.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, E(KindNotFound, "no primary %s asset for episode %s", assetType, episodeID)
		}
		return nil, fmt.Errorf("failed to get primary asset: %w", err)
	}
	return a, nil
}

// ListByEpisode returns the live assets of an episode, newest first.
func (s *AssetService) ListByEpisode(ctx context.Context, episodeID string) ([]*ent.Asset, error) {
	assets, err := s.client.Asset.Query().
		Where(asset.EpisodeIDEQ(episodeID), asset.DeletedAtIsNil()).
		Order(ent.Desc(asset.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}
