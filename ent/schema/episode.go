package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/showforge/showforge/pkg/models"
)

// Episode holds the schema definition for the Episode entity, the work unit
// that flows through the pipeline.
type Episode struct {
	ent.Schema
}

// Fields of the Episode.
func (Episode) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("episode_id").
			Unique().
			Immutable(),
		field.String("channel_id").
			Immutable(),
		field.String("title").
			Optional(),
		field.JSON("idea", &models.IdeaRecord{}).
			Comment("Seed brief for the planning stage"),
		field.Enum("idea_source").
			Values("manual", "pulse", "series", "followup", "repurpose").
			Default("manual"),
		field.Int("priority").
			Default(0).
			Min(-1).
			Max(2),
		field.Enum("status").
			Values(
				"idea", "planning", "scripting", "script_review",
				"audio", "avatar", "broll", "assembly", "ready",
				"publishing", "published", "failed", "cancelled",
			).
			Default("idea"),

		// Content slots. Written once per revision by their producing stage.
		field.JSON("plan", &models.PlanRecord{}).
			Optional(),
		field.Text("script").
			Optional().
			Nillable().
			Comment("Script text with [AVATAR:]/[VO:]/[BROLL:] markers"),
		field.JSON("script_metadata", &models.ScriptMetadata{}).
			Optional(),
		field.JSON("episode_meta", &models.EpisodeMeta{}).
			Optional(),

		field.JSON("pipeline_state", models.PipelineState{}).
			Optional().
			Comment("Authoritative per-stage progress record"),

		field.Bool("auto_advance").
			Default(false).
			Comment("true: run_full continues past script_review without a human gate"),
		field.Int("retry_count").
			Default(0),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("published_url").
			Optional().
			Nillable(),
		field.Time("published_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			Comment("Maintained by DB trigger on UPDATE"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Episode.
func (Episode) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("channel", Channel.Type).
			Ref("episodes").
			Field("channel_id").
			Unique().
			Required().
			Immutable(),
		edge.To("jobs", Job.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("assets", Asset.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Episode.
func (Episode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("channel_id", "status"),
		index.Fields("status", "created_at"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
