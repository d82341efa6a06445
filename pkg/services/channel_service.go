package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/showforge/showforge/ent"
	"github.com/showforge/showforge/ent/channel"
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/pkg/models"
)

// ChannelService manages channel configuration. Channels are read-only input
// to the pipeline; they are created and edited through the outer API only.
type ChannelService struct {
	client *ent.Client
}

// NewChannelService creates a new ChannelService.
func NewChannelService(client *ent.Client) *ChannelService {
	return &ChannelService{client: client}
}

// CreateChannel creates a channel. Slug must be unique among live channels.
func (s *ChannelService) CreateChannel(ctx context.Context, req models.CreateChannelRequest) (*ent.Channel, error) {
	if req.Slug == "" {
		return nil, E(KindValidation, "slug is required")
	}
	if req.Name == "" {
		return nil, E(KindValidation, "name is required")
	}

	exists, err := s.client.Channel.Query().
		Where(channel.SlugEQ(req.Slug), channel.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if exists {
		return nil, E(KindConflict, "channel slug %q already in use", req.Slug)
	}

	builder := s.client.Channel.Create().
		SetID(uuid.New().String()).
		SetSlug(req.Slug).
		SetName(req.Name).
		SetAutoAdvance(req.AutoAdvance)

	if req.PlatformID != "" {
		builder.SetPlatformID(req.PlatformID)
	}
	if req.Persona != nil {
		builder.SetPersona(req.Persona)
	}
	if req.StyleGuide != nil {
		builder.SetStyleGuide(req.StyleGuide)
	}
	if req.VoiceProfile != nil {
		builder.SetVoiceProfile(req.VoiceProfile)
	}
	if req.AvatarProfile != nil {
		builder.SetAvatarProfile(req.AvatarProfile)
	}

	ch, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, E(KindConflict, "channel slug %q already in use", req.Slug)
		}
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}
	return ch, nil
}

// GetChannel returns a live channel by id.
func (s *ChannelService) GetChannel(ctx context.Context, id string) (*ent.Channel, error) {
	ch, err := s.client.Channel.Query().
		Where(channel.IDEQ(id), channel.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, E(KindNotFound, "channel %s not found", id)
		}
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	return ch, nil
}

// GetChannelBySlug returns a live channel by slug.
func (s *ChannelService) GetChannelBySlug(ctx context.Context, slug string) (*ent.Channel, error) {
	ch, err := s.client.Channel.Query().
		Where(channel.SlugEQ(slug), channel.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, E(KindNotFound, "channel %q not found", slug)
		}
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	return ch, nil
}

// DeleteChannel soft-deletes a channel. Deleting a channel that still owns
// live episodes requires cascade=true; the episodes are then soft-deleted in
// the same transaction.
func (s *ChannelService) DeleteChannel(ctx context.Context, id string, cascade bool) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	liveEpisodes, err := tx.Episode.Query().
		Where(episode.ChannelIDEQ(id), episode.DeletedAtIsNil()).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count episodes: %w", err)
	}
	if liveEpisodes > 0 && !cascade {
		return E(KindConflict, "channel %s owns %d live episodes; pass cascade to delete them", id, liveEpisodes)
	}

	now := time.Now()
	if cascade {
		if _, err := tx.Episode.Update().
			Where(episode.ChannelIDEQ(id), episode.DeletedAtIsNil()).
			SetDeletedAt(now).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to soft-delete episodes: %w", err)
		}
	}

	n, err := tx.Channel.Update().
		Where(channel.IDEQ(id), channel.DeletedAtIsNil()).
		SetDeletedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to soft-delete channel: %w", err)
	}
	if n == 0 {
		return E(KindNotFound, "channel %s not found", id)
	}

	return tx.Commit()
}
