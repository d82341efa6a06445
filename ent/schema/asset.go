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

// Asset holds the schema definition for the Asset entity: an artifact a stage
// produced and stored in the object store.
type Asset struct {
	ent.Schema
}

// Fields of the Asset.
func (Asset) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("asset_id").
			Unique().
			Immutable(),
		field.String("episode_id").
			Immutable(),
		field.Enum("type").
			Values(
				"script", "audio", "avatar_video", "b_roll",
				"assembled_video", "thumbnail", "plan", "metadata",
			),
		field.String("uri"),
		field.String("bucket").
			Optional(),
		field.String("key").
			Optional(),
		field.Int("version").
			Default(1).
			Comment("Monotonic per (episode, type); owned by stage executors"),
		field.String("provider").
			Optional(),
		field.String("provider_job_id").
			Optional().
			Comment("Provider-side job handle for submit/poll assets"),
		field.String("mime_type").
			Optional(),
		field.Int64("size_bytes").
			Default(0),
		field.Float("duration_s").
			Optional().
			Nillable(),
		field.JSON("metadata", &models.AssetMetadata{}).
			Optional(),
		field.Bool("is_primary").
			Default(false).
			Comment("At most one primary per (episode, type) among live rows"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			Comment("Maintained by DB trigger on UPDATE"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete"),
	}
}

// Edges of the Asset.
func (Asset) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("episode", Episode.Type).
			Ref("assets").
			Field("episode_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Asset.
func (Asset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("episode_id", "type"),
		// Enforces the single-primary invariant at the DB level.
		index.Fields("episode_id", "type").
			Unique().
			Annotations(entsql.IndexWhere("is_primary AND deleted_at IS NULL")),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
