// Code generated by ent, DO NOT EDIT.

package episode

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the episode type in the database.
	Label = "episode"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "episode_id"
	// FieldChannelID holds the string denoting the channel_id field in the database.
	FieldChannelID = "channel_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldIdea holds the string denoting the idea field in the database.
	FieldIdea = "idea"
	// FieldIdeaSource holds the string denoting the idea_source field in the database.
	FieldIdeaSource = "idea_source"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldScript holds the string denoting the script field in the database.
	FieldScript = "script"
	// FieldScriptMetadata holds the string denoting the script_metadata field in the database.
	FieldScriptMetadata = "script_metadata"
	// FieldEpisodeMeta holds the string denoting the episode_meta field in the database.
	FieldEpisodeMeta = "episode_meta"
	// FieldPipelineState holds the string denoting the pipeline_state field in the database.
	FieldPipelineState = "pipeline_state"
	// FieldAutoAdvance holds the string denoting the auto_advance field in the database.
	FieldAutoAdvance = "auto_advance"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldPublishedURL holds the string denoting the published_url field in the database.
	FieldPublishedURL = "published_url"
	// FieldPublishedAt holds the string denoting the published_at field in the database.
	FieldPublishedAt = "published_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeChannel holds the string denoting the channel edge name in mutations.
	EdgeChannel = "channel"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// EdgeAssets holds the string denoting the assets edge name in mutations.
	EdgeAssets = "assets"
	// ChannelFieldID holds the string denoting the ID field of the Channel.
	ChannelFieldID = "channel_id"
	// JobFieldID holds the string denoting the ID field of the Job.
	JobFieldID = "job_id"
	// AssetFieldID holds the string denoting the ID field of the Asset.
	AssetFieldID = "asset_id"
	// Table holds the table name of the episode in the database.
	Table = "episodes"
	// ChannelTable is the table that holds the channel relation/edge.
	ChannelTable = "episodes"
	// ChannelInverseTable is the table name for the Channel entity.
	// It exists in this package in order to avoid circular dependency with the "channel" package.
	ChannelInverseTable = "channels"
	// ChannelColumn is the table column denoting the channel relation/edge.
	ChannelColumn = "channel_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "jobs"
	// JobsInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobsInverseTable = "jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "episode_id"
	// AssetsTable is the table that holds the assets relation/edge.
	AssetsTable = "assets"
	// AssetsInverseTable is the table name for the Asset entity.
	// It exists in this package in order to avoid circular dependency with the "asset" package.
	AssetsInverseTable = "assets"
	// AssetsColumn is the table column denoting the assets relation/edge.
	AssetsColumn = "episode_id"
)

// Columns holds all SQL columns for episode fields.
var Columns = []string{
	FieldID,
	FieldChannelID,
	FieldTitle,
	FieldIdea,
	FieldIdeaSource,
	FieldPriority,
	FieldStatus,
	FieldPlan,
	FieldScript,
	FieldScriptMetadata,
	FieldEpisodeMeta,
	FieldPipelineState,
	FieldAutoAdvance,
	FieldRetryCount,
	FieldLastError,
	FieldPublishedURL,
	FieldPublishedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	PriorityValidator func(int) error
	// DefaultAutoAdvance holds the default value on creation for the "auto_advance" field.
	DefaultAutoAdvance bool
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// IdeaSource defines the type for the "idea_source" enum field.
type IdeaSource string

// IdeaSourceManual is the default value of the IdeaSource enum.
const DefaultIdeaSource = IdeaSourceManual

// IdeaSource values.
const (
	IdeaSourceManual    IdeaSource = "manual"
	IdeaSourcePulse     IdeaSource = "pulse"
	IdeaSourceSeries    IdeaSource = "series"
	IdeaSourceFollowup  IdeaSource = "followup"
	IdeaSourceRepurpose IdeaSource = "repurpose"
)

func (is IdeaSource) String() string {
	return string(is)
}

// IdeaSourceValidator is a validator for the "idea_source" field enum values. It is called by the builders before save.
func IdeaSourceValidator(is IdeaSource) error {
	switch is {
	case IdeaSourceManual, IdeaSourcePulse, IdeaSourceSeries, IdeaSourceFollowup, IdeaSourceRepurpose:
		return nil
	default:
		return fmt.Errorf("episode: invalid enum value for idea_source field: %q", is)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusIdea is the default value of the Status enum.
const DefaultStatus = StatusIdea

// Status values.
const (
	StatusIdea         Status = "idea"
	StatusPlanning     Status = "planning"
	StatusScripting    Status = "scripting"
	StatusScriptReview Status = "script_review"
	StatusAudio        Status = "audio"
	StatusAvatar       Status = "avatar"
	StatusBroll        Status = "broll"
	StatusAssembly     Status = "assembly"
	StatusReady        Status = "ready"
	StatusPublishing   Status = "publishing"
	StatusPublished    Status = "published"
	StatusFailed       Status = "failed"
	StatusCancelled    Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusIdea, StatusPlanning, StatusScripting, StatusScriptReview, StatusAudio, StatusAvatar, StatusBroll, StatusAssembly, StatusReady, StatusPublishing, StatusPublished, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("episode: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Episode queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChannelID orders the results by the channel_id field.
func ByChannelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByIdeaSource orders the results by the idea_source field.
func ByIdeaSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdeaSource, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByScript orders the results by the script field.
func ByScript(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScript, opts...).ToFunc()
}

// ByAutoAdvance orders the results by the auto_advance field.
func ByAutoAdvance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoAdvance, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByPublishedURL orders the results by the published_url field.
func ByPublishedURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedURL, opts...).ToFunc()
}

// ByPublishedAt orders the results by the published_at field.
func ByPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByChannelField orders the results by channel field.
func ByChannelField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChannelStep(), sql.OrderByField(field, opts...))
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAssetsCount orders the results by assets count.
func ByAssetsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssetsStep(), opts...)
	}
}

// ByAssets orders the results by assets terms.
func ByAssets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssetsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newChannelStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChannelInverseTable, ChannelFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ChannelTable, ChannelColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, JobFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
func newAssetsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssetsInverseTable, AssetFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssetsTable, AssetsColumn),
	)
}
