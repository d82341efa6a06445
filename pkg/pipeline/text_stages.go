package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/showforge/showforge/ent"
	"github.com/showforge/showforge/ent/asset"
	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/providers"
	"github.com/showforge/showforge/pkg/script"
	"github.com/showforge/showforge/pkg/services"
	"github.com/showforge/showforge/pkg/storage"
)

// planSchema constrains the planning completion to a PlanRecord.
var planSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"hook": {"type": "string"},
		"sections": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"title": {"type": "string"},
					"summary": {"type": "string"},
					"talking_points": {"type": "array", "items": {"type": "string"}},
					"broll_suggestions": {"type": "array", "items": {"type": "string"}},
					"est_duration_s": {"type": "number"}
				},
				"required": ["title"]
			}
		},
		"ctas": {"type": "array", "items": {"type": "string"}},
		"broll_suggestions": {"type": "array", "items": {"type": "string"}},
		"est_duration_s": {"type": "number"}
	},
	"required": ["hook", "sections"]
}`)

// metaSchema constrains the metadata completion to an EpisodeMeta.
var metaSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"title_variants": {"type": "array", "items": {"type": "string"}},
		"description": {"type": "string"},
		"tags": {"type": "array", "items": {"type": "string"}},
		"thumbnail_prompt": {"type": "string"}
	},
	"required": ["title_variants", "description"]
}`)

// runPlanning turns the episode's idea brief into a structured plan.
func (p *Pipeline) runPlanning(ctx context.Context, in *stageInput) (*StageOutcome, error) {
	if in.episode.Idea == nil || in.episode.Idea.Brief == "" {
		return nil, services.E(services.KindPipeline, "episode %s has no idea brief", in.episode.ID)
	}

	prompt := buildPlanningPrompt(in.channel, in.episode)
	result, err := p.text.Complete(ctx, providers.TextRequest{
		Model:      p.text.ModelFor(models.StagePlanning, &in.params),
		System:     channelSystemPrompt(in.channel),
		Prompt:     prompt,
		SchemaName: "episode_plan",
		JSONSchema: planSchema,
	})
	if err != nil {
		return nil, err
	}

	var plan models.PlanRecord
	if err := json.Unmarshal([]byte(result.Content), &plan); err != nil {
		return nil, services.E(services.KindExternalService, "planning response is not valid plan JSON: %v", err)
	}
	if plan.Hook == "" || len(plan.Sections) == 0 {
		return nil, services.E(services.KindExternalService, "planning response missing hook or sections")
	}

	version, err := services.NewAssetService(p.client).NextVersion(ctx, in.episode.ID, string(asset.TypePlan))
	if err != nil {
		return nil, err
	}
	planJSON, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}
	key := storage.ObjectKey(in.episode.ID, string(asset.TypePlan), version, "json")
	stored, err := p.store.Upload(ctx, p.store.BucketFor(string(asset.TypePlan)), key, planJSON, "")
	if err != nil {
		return nil, err
	}

	outcome := &StageOutcome{Usage: result.Usage}
	err = p.commitStage(ctx, in.episode, models.StagePlanning, outcome, func(tx *ent.Tx) ([]string, error) {
		a, err := services.CreateAssetTx(ctx, tx, models.CreateAssetRequest{
			EpisodeID: in.episode.ID,
			Type:      string(asset.TypePlan),
			URI:       stored.URI,
			Bucket:    stored.Bucket,
			Key:       stored.Key,
			Version:   version,
			MimeType:  stored.MimeType,
			SizeBytes: stored.Size,
			IsPrimary: true,
			Metadata:  models.AssetMetadata{Checksum: stored.Checksum},
		})
		if err != nil {
			return nil, err
		}
		if err := tx.Episode.UpdateOneID(in.episode.ID).
			SetPlan(&plan).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to store plan: %w", err)
		}
		return []string{a.ID}, nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// runScripting expands the plan into a marker-annotated script.
func (p *Pipeline) runScripting(ctx context.Context, in *stageInput) (*StageOutcome, error) {
	if in.episode.Plan == nil {
		return nil, services.E(services.KindPipeline, "episode %s has no plan; run planning first", in.episode.ID)
	}

	prompt, err := buildScriptingPrompt(in.channel, in.episode)
	if err != nil {
		return nil, err
	}
	result, err := p.text.Complete(ctx, providers.TextRequest{
		Model:  p.text.ModelFor(models.StageScripting, &in.params),
		System: channelSystemPrompt(in.channel),
		Prompt: prompt,
	})
	if err != nil {
		return nil, err
	}

	scriptText := strings.TrimSpace(result.Content)
	if scriptText == "" {
		return nil, services.E(services.KindExternalService, "scripting response is empty")
	}
	scriptMeta := script.Analyze(scriptText)

	version, err := services.NewAssetService(p.client).NextVersion(ctx, in.episode.ID, string(asset.TypeScript))
	if err != nil {
		return nil, err
	}
	key := storage.ObjectKey(in.episode.ID, string(asset.TypeScript), version, "md")
	stored, err := p.store.Upload(ctx, p.store.BucketFor(string(asset.TypeScript)), key, []byte(scriptText), "text/markdown")
	if err != nil {
		return nil, err
	}

	outcome := &StageOutcome{Usage: result.Usage, DurationS: scriptMeta.EstDurationS}
	err = p.commitStage(ctx, in.episode, models.StageScripting, outcome, func(tx *ent.Tx) ([]string, error) {
		a, err := services.CreateAssetTx(ctx, tx, models.CreateAssetRequest{
			EpisodeID: in.episode.ID,
			Type:      string(asset.TypeScript),
			URI:       stored.URI,
			Bucket:    stored.Bucket,
			Key:       stored.Key,
			Version:   version,
			MimeType:  stored.MimeType,
			SizeBytes: stored.Size,
			IsPrimary: true,
			Metadata:  models.AssetMetadata{Checksum: stored.Checksum},
		})
		if err != nil {
			return nil, err
		}
		if err := tx.Episode.UpdateOneID(in.episode.ID).
			SetScript(scriptText).
			SetScriptMetadata(&scriptMeta).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to store script: %w", err)
		}
		return []string{a.ID}, nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// runMetadata derives the SEO surface from script and plan. It never changes
// the lifecycle status; the episode stays paused at script_review.
func (p *Pipeline) runMetadata(ctx context.Context, in *stageInput) (*StageOutcome, error) {
	if in.episode.Script == nil || *in.episode.Script == "" {
		return nil, services.E(services.KindPipeline, "episode %s has no script; run scripting first", in.episode.ID)
	}

	prompt, err := buildMetadataPrompt(in.channel, in.episode)
	if err != nil {
		return nil, err
	}
	result, err := p.text.Complete(ctx, providers.TextRequest{
		Model:      p.text.ModelFor(models.StageMetadata, &in.params),
		System:     channelSystemPrompt(in.channel),
		Prompt:     prompt,
		SchemaName: "episode_meta",
		JSONSchema: metaSchema,
	})
	if err != nil {
		return nil, err
	}

	var meta models.EpisodeMeta
	if err := json.Unmarshal([]byte(result.Content), &meta); err != nil {
		return nil, services.E(services.KindExternalService, "metadata response is not valid JSON: %v", err)
	}
	if len(meta.TitleVariants) == 0 || meta.Description == "" {
		return nil, services.E(services.KindExternalService, "metadata response missing titles or description")
	}

	version, err := services.NewAssetService(p.client).NextVersion(ctx, in.episode.ID, string(asset.TypeMetadata))
	if err != nil {
		return nil, err
	}
	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	key := storage.ObjectKey(in.episode.ID, string(asset.TypeMetadata), version, "json")
	stored, err := p.store.Upload(ctx, p.store.BucketFor(string(asset.TypeMetadata)), key, metaJSON, "")
	if err != nil {
		return nil, err
	}

	outcome := &StageOutcome{Usage: result.Usage}
	err = p.commitStage(ctx, in.episode, models.StageMetadata, outcome, func(tx *ent.Tx) ([]string, error) {
		a, err := services.CreateAssetTx(ctx, tx, models.CreateAssetRequest{
			EpisodeID: in.episode.ID,
			Type:      string(asset.TypeMetadata),
			URI:       stored.URI,
			Bucket:    stored.Bucket,
			Key:       stored.Key,
			Version:   version,
			MimeType:  stored.MimeType,
			SizeBytes: stored.Size,
			IsPrimary: true,
			Metadata:  models.AssetMetadata{Checksum: stored.Checksum},
		})
		if err != nil {
			return nil, err
		}
		if err := tx.Episode.UpdateOneID(in.episode.ID).
			SetEpisodeMeta(&meta).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to store episode meta: %w", err)
		}
		return []string{a.ID}, nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// channelSystemPrompt renders the channel's persona and style guide as the
// system message for all text stages.
func channelSystemPrompt(ch *ent.Channel) string {
	var b strings.Builder
	b.WriteString("You write content for the channel \"")
	b.WriteString(ch.Name)
	b.WriteString("\".")
	if len(ch.Persona) > 0 {
		persona, _ := json.Marshal(ch.Persona)
		b.WriteString("\nPersona: ")
		b.Write(persona)
	}
	if len(ch.StyleGuide) > 0 {
		style, _ := json.Marshal(ch.StyleGuide)
		b.WriteString("\nStyle guide: ")
		b.Write(style)
	}
	return b.String()
}

func buildPlanningPrompt(ch *ent.Channel, ep *ent.Episode) string {
	var b strings.Builder
	b.WriteString("Create a structured episode plan for the following idea.\n\nBrief: ")
	b.WriteString(ep.Idea.Brief)
	if ep.Idea.Notes != "" {
		b.WriteString("\nNotes: ")
		b.WriteString(ep.Idea.Notes)
	}
	if ep.Title != "" {
		b.WriteString("\nWorking title: ")
		b.WriteString(ep.Title)
	}
	b.WriteString("\n\nReturn a plan with a hook, ordered sections with talking points, CTAs, and b-roll suggestions.")
	return b.String()
}

func buildScriptingPrompt(ch *ent.Channel, ep *ent.Episode) (string, error) {
	planJSON, err := json.MarshalIndent(ep.Plan, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan for prompt: %w", err)
	}
	var b strings.Builder
	b.WriteString("Write the full episode script from this plan:\n\n")
	b.Write(planJSON)
	b.WriteString("\n\nAnnotate the script with segment markers: [AVATAR: text spoken on camera], " +
		"[VO: narrated voiceover], [BROLL: visual cue for a background clip]. " +
		"Unmarked text is read as voiceover. Do not use any other markup.")
	return b.String(), nil
}

func buildMetadataPrompt(ch *ent.Channel, ep *ent.Episode) (string, error) {
	var b strings.Builder
	b.WriteString("Generate publishing metadata for this episode script:\n\n")
	b.WriteString(*ep.Script)
	if ep.Plan != nil {
		planJSON, err := json.Marshal(ep.Plan)
		if err != nil {
			return "", fmt.Errorf("failed to marshal plan for prompt: %w", err)
		}
		b.WriteString("\n\nPlan: ")
		b.Write(planJSON)
	}
	b.WriteString("\n\nReturn title variants, a description, tags, and a thumbnail prompt.")
	return b.String(), nil
}
