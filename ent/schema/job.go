package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/showforge/showforge/pkg/models"
)

// Job holds the schema definition for the Job entity: one durable record of
// one attempt at executing one stage (or an orchestrator tracking job). Jobs
// double as the work queue; workers claim queued rows with SKIP LOCKED.
// No soft delete: jobs are immutable execution history.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("episode_id").
			Immutable(),
		field.String("stage").
			Comment("Content stage name, or full_pipeline/stage_1_pipeline/pipeline_from_<X>"),
		field.Enum("status").
			Values("queued", "running", "completed", "failed", "cancelled").
			Default("queued"),
		field.JSON("input_params", &models.WorkParams{}).
			Optional(),
		field.JSON("result", &models.JobResult{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("external_task_id").
			Optional().
			Nillable().
			Comment("Worker claim handle, for orphan interrogation"),
		field.Int("retry_count").
			Default(0),
		field.Int("max_retries").
			Default(3),
		field.Float("cost_usd").
			Default(0),
		field.Int("tokens_used").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("Worker liveness, for orphan detection"),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("episode", Episode.Type).
			Ref("jobs").
			Field("episode_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("episode_id", "status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "heartbeat_at"),
		index.Fields("stage"),
	}
}
