package pipeline

import (
	"context"
	"fmt"

	"github.com/showforge/showforge/ent"
	"github.com/showforge/showforge/ent/asset"
	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/script"
	"github.com/showforge/showforge/pkg/services"
	"github.com/showforge/showforge/pkg/storage"
)

// runAudio synthesizes the voiceover track from the script's VO and narration
// segments.
func (p *Pipeline) runAudio(ctx context.Context, in *stageInput) (*StageOutcome, error) {
	if p.speech == nil {
		return nil, services.E(services.KindValidation, "audio stage invoked but no speech provider is configured")
	}
	if in.episode.Script == nil || *in.episode.Script == "" {
		return nil, services.E(services.KindPipeline, "episode %s has no script; run scripting first", in.episode.ID)
	}
	if in.channel.VoiceProfile == nil {
		return nil, services.E(services.KindValidation, "channel %s has no voice profile", in.channel.ID)
	}

	segments := script.Parse(*in.episode.Script)
	voText := script.VoiceoverText(segments)
	if voText == "" {
		return nil, services.E(services.KindPipeline, "script has no voiceover text")
	}

	result, err := p.speech.Synthesize(ctx, voText, in.channel.VoiceProfile)
	if err != nil {
		return nil, err
	}

	version, err := services.NewAssetService(p.client).NextVersion(ctx, in.episode.ID, string(asset.TypeAudio))
	if err != nil {
		return nil, err
	}
	format := in.channel.VoiceProfile.Format
	if format == "" {
		format = "mp3"
	}
	key := storage.ObjectKey(in.episode.ID, string(asset.TypeAudio), version, format)
	stored, err := p.store.Upload(ctx, p.store.BucketFor(string(asset.TypeAudio)), key, result.Audio, result.MimeType)
	if err != nil {
		return nil, err
	}

	durationS := script.SpokenSeconds(voText)
	outcome := &StageOutcome{Usage: result.Usage, DurationS: durationS}
	err = p.commitStage(ctx, in.episode, models.StageAudio, outcome, func(tx *ent.Tx) ([]string, error) {
		a, err := services.CreateAssetTx(ctx, tx, models.CreateAssetRequest{
			EpisodeID: in.episode.ID,
			Type:      string(asset.TypeAudio),
			URI:       stored.URI,
			Bucket:    stored.Bucket,
			Key:       stored.Key,
			Version:   version,
			MimeType:  stored.MimeType,
			SizeBytes: stored.Size,
			DurationS: durationS,
			IsPrimary: true,
			Metadata: models.AssetMetadata{
				Checksum: stored.Checksum,
				Voice:    in.channel.VoiceProfile.VoiceID,
				Seconds:  durationS,
			},
		})
		if err != nil {
			return nil, err
		}
		return []string{a.ID}, nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// runAvatar renders the on-camera segments with the channel's avatar.
func (p *Pipeline) runAvatar(ctx context.Context, in *stageInput) (*StageOutcome, error) {
	if p.avatar == nil {
		return nil, services.E(services.KindValidation, "avatar stage invoked but no avatar provider is configured")
	}
	if in.episode.Script == nil || *in.episode.Script == "" {
		return nil, services.E(services.KindPipeline, "episode %s has no script; run scripting first", in.episode.ID)
	}
	if in.channel.AvatarProfile == nil {
		return nil, services.E(services.KindValidation, "channel %s has no avatar profile", in.channel.ID)
	}

	segments := script.Parse(*in.episode.Script)
	avatarText := script.AvatarText(segments)
	if avatarText == "" {
		return nil, services.E(services.KindPipeline, "script has no avatar segments")
	}

	// Lip-sync against the stage's audio track when one exists.
	audioURL := ""
	if primary, err := services.NewAssetService(p.client).GetPrimary(ctx, in.episode.ID, string(asset.TypeAudio)); err == nil {
		audioURL, err = p.store.PresignGet(ctx, primary.Bucket, primary.Key, 0)
		if err != nil {
			return nil, err
		}
	}

	result, err := p.avatar.Render(ctx, avatarText, in.channel.AvatarProfile, audioURL)
	if err != nil {
		return nil, err
	}

	version, err := services.NewAssetService(p.client).NextVersion(ctx, in.episode.ID, string(asset.TypeAvatarVideo))
	if err != nil {
		return nil, err
	}
	key := storage.ObjectKey(in.episode.ID, string(asset.TypeAvatarVideo), version, "mp4")
	stored, err := p.store.Upload(ctx, p.store.BucketFor(string(asset.TypeAvatarVideo)), key, result.Video, result.MimeType)
	if err != nil {
		return nil, err
	}

	outcome := &StageOutcome{Usage: result.Usage, DurationS: result.DurationS}
	err = p.commitStage(ctx, in.episode, models.StageAvatar, outcome, func(tx *ent.Tx) ([]string, error) {
		a, err := services.CreateAssetTx(ctx, tx, models.CreateAssetRequest{
			EpisodeID:     in.episode.ID,
			Type:          string(asset.TypeAvatarVideo),
			URI:           stored.URI,
			Bucket:        stored.Bucket,
			Key:           stored.Key,
			Version:       version,
			Provider:      "avatar",
			ProviderJobID: result.ProviderJobID,
			MimeType:      stored.MimeType,
			SizeBytes:     stored.Size,
			DurationS:     result.DurationS,
			IsPrimary:     true,
			Metadata: models.AssetMetadata{
				Checksum: stored.Checksum,
				Seconds:  result.DurationS,
			},
		})
		if err != nil {
			return nil, err
		}
		return []string{a.ID}, nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// runBroll renders one clip per BROLL cue, in script order. Clips beyond the
// provider's per-episode limit are dropped with the cue list truncated.
func (p *Pipeline) runBroll(ctx context.Context, in *stageInput) (*StageOutcome, error) {
	if p.video == nil {
		return nil, services.E(services.KindValidation, "broll stage invoked but no video provider is configured")
	}
	if in.episode.Script == nil || *in.episode.Script == "" {
		return nil, services.E(services.KindPipeline, "episode %s has no script; run scripting first", in.episode.ID)
	}

	cues := script.BrollCues(script.Parse(*in.episode.Script))
	if len(cues) == 0 {
		return nil, services.E(services.KindPipeline, "script has no b-roll cues")
	}
	if limit := p.video.ClipLimit(); limit > 0 && len(cues) > limit {
		cues = cues[:limit]
	}

	version, err := services.NewAssetService(p.client).NextVersion(ctx, in.episode.ID, string(asset.TypeBRoll))
	if err != nil {
		return nil, err
	}

	type clip struct {
		stored    *storage.UploadResult
		cue       string
		idx       int
		jobID     string
		durationS float64
	}
	var clips []clip
	outcome := &StageOutcome{}

	for i, cue := range cues {
		// Cancellation checkpoint between provider calls.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := p.video.GenerateClip(ctx, cue, script.CueSeconds(cue))
		if err != nil {
			return nil, fmt.Errorf("clip %d of %d: %w", i+1, len(cues), err)
		}
		key := storage.BrollKey(in.episode.ID, i+1, version)
		stored, err := p.store.Upload(ctx, p.store.BucketFor(string(asset.TypeBRoll)), key, result.Video, result.MimeType)
		if err != nil {
			return nil, err
		}
		clips = append(clips, clip{
			stored:    stored,
			cue:       cue,
			idx:       i + 1,
			jobID:     result.ProviderJobID,
			durationS: result.DurationS,
		})
		outcome.Usage.Add(result.Usage)
		outcome.DurationS += result.DurationS
	}

	outcome.ClipCount = len(clips)
	err = p.commitStage(ctx, in.episode, models.StageBroll, outcome, func(tx *ent.Tx) ([]string, error) {
		ids := make([]string, 0, len(clips))
		for _, c := range clips {
			a, err := services.CreateAssetTx(ctx, tx, models.CreateAssetRequest{
				EpisodeID:     in.episode.ID,
				Type:          string(asset.TypeBRoll),
				URI:           c.stored.URI,
				Bucket:        c.stored.Bucket,
				Key:           c.stored.Key,
				Version:       version,
				Provider:      "video",
				ProviderJobID: c.jobID,
				MimeType:      c.stored.MimeType,
				SizeBytes:     c.stored.Size,
				DurationS:     c.durationS,
				IsPrimary:     c.idx == 1,
				Metadata: models.AssetMetadata{
					Checksum: c.stored.Checksum,
					ClipIdx:  c.idx,
					Cue:      c.cue,
					Seconds:  c.durationS,
				},
			})
			if err != nil {
				return nil, err
			}
			ids = append(ids, a.ID)
		}
		return ids, nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}
