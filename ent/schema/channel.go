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

// Channel holds the schema definition for the Channel entity. Channels are
// configuration input to the pipeline: persona, style guide, and voice/avatar
// profiles are consumed verbatim by stage executors.
type Channel struct {
	ent.Schema
}

// Fields of the Channel.
func (Channel) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("channel_id").
			Unique().
			Immutable(),
		field.String("slug").
			Comment("URL-safe identifier; unique among live channels (partial index)"),
		field.String("name"),
		field.String("platform_id").
			Optional().
			Nillable().
			Comment("External platform channel id"),
		field.JSON("persona", map[string]interface{}{}).
			Optional().
			Comment("Free-form persona record, used verbatim in prompts"),
		field.JSON("style_guide", map[string]interface{}{}).
			Optional(),
		field.JSON("voice_profile", &models.VoiceProfile{}).
			Optional(),
		field.JSON("avatar_profile", &models.AvatarProfile{}).
			Optional(),
		field.Bool("auto_advance").
			Default(false).
			Comment("Default for new episodes: skip the script_review pause"),
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

// Edges of the Channel.
func (Channel) Edges() []ent.Edge {
	return []ent.Edge{
		// Restrict: deleting a channel with episodes must be an explicit
		// cascade request, never an accident.
		edge.To("episodes", Episode.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}

// Indexes of the Channel.
func (Channel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug").
			Unique().
			Annotations(entsql.IndexWhere("deleted_at IS NULL")),
	}
}
