// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssetsColumns holds the columns for the "assets" table.
	AssetsColumns = []*schema.Column{
		{Name: "asset_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"script", "audio", "avatar_video", "b_roll", "assembled_video", "thumbnail", "plan", "metadata"}},
		{Name: "uri", Type: field.TypeString},
		{Name: "bucket", Type: field.TypeString, Nullable: true},
		{Name: "key", Type: field.TypeString, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "provider_job_id", Type: field.TypeString, Nullable: true},
		{Name: "mime_type", Type: field.TypeString, Nullable: true},
		{Name: "size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "duration_s", Type: field.TypeFloat64, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "is_primary", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "episode_id", Type: field.TypeString},
	}
	// AssetsTable holds the schema information for the "assets" table.
	AssetsTable = &schema.Table{
		Name:       "assets",
		Columns:    AssetsColumns,
		PrimaryKey: []*schema.Column{AssetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assets_episodes_assets",
				Columns:    []*schema.Column{AssetsColumns[16]},
				RefColumns: []*schema.Column{EpisodesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "asset_episode_id_type",
				Unique:  false,
				Columns: []*schema.Column{AssetsColumns[16], AssetsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "is_primary AND deleted_at IS NULL",
				},
			},
			{
				Name:    "asset_episode_id_type",
				Unique:  true,
				Columns: []*schema.Column{AssetsColumns[16], AssetsColumns[1]},
			},
			{
				Name:    "asset_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{AssetsColumns[15]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// ChannelsColumns holds the columns for the "channels" table.
	ChannelsColumns = []*schema.Column{
		{Name: "channel_id", Type: field.TypeString, Unique: true},
		{Name: "slug", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "platform_id", Type: field.TypeString, Nullable: true},
		{Name: "persona", Type: field.TypeJSON, Nullable: true},
		{Name: "style_guide", Type: field.TypeJSON, Nullable: true},
		{Name: "voice_profile", Type: field.TypeJSON, Nullable: true},
		{Name: "avatar_profile", Type: field.TypeJSON, Nullable: true},
		{Name: "auto_advance", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// ChannelsTable holds the schema information for the "channels" table.
	ChannelsTable = &schema.Table{
		Name:       "channels",
		Columns:    ChannelsColumns,
		PrimaryKey: []*schema.Column{ChannelsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "channel_slug",
				Unique:  true,
				Columns: []*schema.Column{ChannelsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NULL",
				},
			},
		},
	}
	// EpisodesColumns holds the columns for the "episodes" table.
	EpisodesColumns = []*schema.Column{
		{Name: "episode_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "idea", Type: field.TypeJSON},
		{Name: "idea_source", Type: field.TypeEnum, Enums: []string{"manual", "pulse", "series", "followup", "repurpose"}, Default: "manual"},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idea", "planning", "scripting", "script_review", "audio", "avatar", "broll", "assembly", "ready", "publishing", "published", "failed", "cancelled"}, Default: "idea"},
		{Name: "plan", Type: field.TypeJSON, Nullable: true},
		{Name: "script", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "script_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "episode_meta", Type: field.TypeJSON, Nullable: true},
		{Name: "pipeline_state", Type: field.TypeJSON, Nullable: true},
		{Name: "auto_advance", Type: field.TypeBool, Default: false},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "published_url", Type: field.TypeString, Nullable: true},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "channel_id", Type: field.TypeString},
	}
	// EpisodesTable holds the schema information for the "episodes" table.
	EpisodesTable = &schema.Table{
		Name:       "episodes",
		Columns:    EpisodesColumns,
		PrimaryKey: []*schema.Column{EpisodesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "episodes_channels_episodes",
				Columns:    []*schema.Column{EpisodesColumns[19]},
				RefColumns: []*schema.Column{ChannelsColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "episode_status",
				Unique:  false,
				Columns: []*schema.Column{EpisodesColumns[5]},
			},
			{
				Name:    "episode_channel_id_status",
				Unique:  false,
				Columns: []*schema.Column{EpisodesColumns[19], EpisodesColumns[5]},
			},
			{
				Name:    "episode_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{EpisodesColumns[5], EpisodesColumns[16]},
			},
			{
				Name:    "episode_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{EpisodesColumns[18]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "stage", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "completed", "failed", "cancelled"}, Default: "queued"},
		{Name: "input_params", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "external_task_id", Type: field.TypeString, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "episode_id", Type: field.TypeString},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_episodes_jobs",
				Columns:    []*schema.Column{JobsColumns[15]},
				RefColumns: []*schema.Column{EpisodesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_episode_id_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[15], JobsColumns[2]},
			},
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[11]},
			},
			{
				Name:    "job_status_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[14]},
			},
			{
				Name:    "job_stage",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssetsTable,
		ChannelsTable,
		EpisodesTable,
		JobsTable,
	}
)

func init() {
	AssetsTable.ForeignKeys[0].RefTable = EpisodesTable
	EpisodesTable.ForeignKeys[0].RefTable = ChannelsTable
	JobsTable.ForeignKeys[0].RefTable = EpisodesTable
}
