// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/showforge/showforge/ent/asset"
	"github.com/showforge/showforge/ent/channel"
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/ent/job"
	"github.com/showforge/showforge/pkg/models"
)

// EpisodeCreate is the builder for creating a Episode entity.
type EpisodeCreate struct {
	config
	mutation *EpisodeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChannelID sets the "channel_id" field.
func (_c *EpisodeCreate) SetChannelID(v string) *EpisodeCreate {
	_c.mutation.SetChannelID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *EpisodeCreate) SetTitle(v string) *EpisodeCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableTitle(v *string) *EpisodeCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetIdea sets the "idea" field.
func (_c *EpisodeCreate) SetIdea(v *models.IdeaRecord) *EpisodeCreate {
	_c.mutation.SetIdea(v)
	return _c
}

// SetIdeaSource sets the "idea_source" field.
func (_c *EpisodeCreate) SetIdeaSource(v episode.IdeaSource) *EpisodeCreate {
	_c.mutation.SetIdeaSource(v)
	return _c
}

// SetNillableIdeaSource sets the "idea_source" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableIdeaSource(v *episode.IdeaSource) *EpisodeCreate {
	if v != nil {
		_c.SetIdeaSource(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *EpisodeCreate) SetPriority(v int) *EpisodeCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillablePriority(v *int) *EpisodeCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EpisodeCreate) SetStatus(v episode.Status) *EpisodeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableStatus(v *episode.Status) *EpisodeCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPlan sets the "plan" field.
func (_c *EpisodeCreate) SetPlan(v *models.PlanRecord) *EpisodeCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetScript sets the "script" field.
func (_c *EpisodeCreate) SetScript(v string) *EpisodeCreate {
	_c.mutation.SetScript(v)
	return _c
}

// SetNillableScript sets the "script" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableScript(v *string) *EpisodeCreate {
	if v != nil {
		_c.SetScript(*v)
	}
	return _c
}

// SetScriptMetadata sets the "script_metadata" field.
func (_c *EpisodeCreate) SetScriptMetadata(v *models.ScriptMetadata) *EpisodeCreate {
	_c.mutation.SetScriptMetadata(v)
	return _c
}

// SetEpisodeMeta sets the "episode_meta" field.
func (_c *EpisodeCreate) SetEpisodeMeta(v *models.EpisodeMeta) *EpisodeCreate {
	_c.mutation.SetEpisodeMeta(v)
	return _c
}

// SetPipelineState sets the "pipeline_state" field.
func (_c *EpisodeCreate) SetPipelineState(v models.PipelineState) *EpisodeCreate {
	_c.mutation.SetPipelineState(v)
	return _c
}

// SetAutoAdvance sets the "auto_advance" field.
func (_c *EpisodeCreate) SetAutoAdvance(v bool) *EpisodeCreate {
	_c.mutation.SetAutoAdvance(v)
	return _c
}

// SetNillableAutoAdvance sets the "auto_advance" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableAutoAdvance(v *bool) *EpisodeCreate {
	if v != nil {
		_c.SetAutoAdvance(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *EpisodeCreate) SetRetryCount(v int) *EpisodeCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableRetryCount(v *int) *EpisodeCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *EpisodeCreate) SetLastError(v string) *EpisodeCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableLastError(v *string) *EpisodeCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetPublishedURL sets the "published_url" field.
func (_c *EpisodeCreate) SetPublishedURL(v string) *EpisodeCreate {
	_c.mutation.SetPublishedURL(v)
	return _c
}

// SetNillablePublishedURL sets the "published_url" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillablePublishedURL(v *string) *EpisodeCreate {
	if v != nil {
		_c.SetPublishedURL(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *EpisodeCreate) SetPublishedAt(v time.Time) *EpisodeCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillablePublishedAt(v *time.Time) *EpisodeCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EpisodeCreate) SetCreatedAt(v time.Time) *EpisodeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableCreatedAt(v *time.Time) *EpisodeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EpisodeCreate) SetUpdatedAt(v time.Time) *EpisodeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableUpdatedAt(v *time.Time) *EpisodeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *EpisodeCreate) SetDeletedAt(v time.Time) *EpisodeCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *EpisodeCreate) SetNillableDeletedAt(v *time.Time) *EpisodeCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EpisodeCreate) SetID(v string) *EpisodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChannel sets the "channel" edge to the Channel entity.
func (_c *EpisodeCreate) SetChannel(v *Channel) *EpisodeCreate {
	return _c.SetChannelID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_c *EpisodeCreate) AddJobIDs(ids ...string) *EpisodeCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_c *EpisodeCreate) AddJobs(v ...*Job) *EpisodeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// AddAssetIDs adds the "assets" edge to the Asset entity by IDs.
func (_c *EpisodeCreate) AddAssetIDs(ids ...string) *EpisodeCreate {
	_c.mutation.AddAssetIDs(ids...)
	return _c
}

// AddAssets adds the "assets" edges to the Asset entity.
func (_c *EpisodeCreate) AddAssets(v ...*Asset) *EpisodeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssetIDs(ids...)
}

// Mutation returns the EpisodeMutation object of the builder.
func (_c *EpisodeCreate) Mutation() *EpisodeMutation {
	return _c.mutation
}

// Save creates the Episode in the database.
func (_c *EpisodeCreate) Save(ctx context.Context) (*Episode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EpisodeCreate) SaveX(ctx context.Context) *Episode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EpisodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EpisodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EpisodeCreate) defaults() {
	if _, ok := _c.mutation.IdeaSource(); !ok {
		v := episode.DefaultIdeaSource
		_c.mutation.SetIdeaSource(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := episode.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := episode.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AutoAdvance(); !ok {
		v := episode.DefaultAutoAdvance
		_c.mutation.SetAutoAdvance(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := episode.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := episode.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := episode.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EpisodeCreate) check() error {
	if _, ok := _c.mutation.ChannelID(); !ok {
		return &ValidationError{Name: "channel_id", err: errors.New(`ent: missing required field "Episode.channel_id"`)}
	}
	if _, ok := _c.mutation.Idea(); !ok {
		return &ValidationError{Name: "idea", err: errors.New(`ent: missing required field "Episode.idea"`)}
	}
	if _, ok := _c.mutation.IdeaSource(); !ok {
		return &ValidationError{Name: "idea_source", err: errors.New(`ent: missing required field "Episode.idea_source"`)}
	}
	if v, ok := _c.mutation.IdeaSource(); ok {
		if err := episode.IdeaSourceValidator(v); err != nil {
			return &ValidationError{Name: "idea_source", err: fmt.Errorf(`ent: validator failed for field "Episode.idea_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Episode.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := episode.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Episode.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Episode.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := episode.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Episode.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AutoAdvance(); !ok {
		return &ValidationError{Name: "auto_advance", err: errors.New(`ent: missing required field "Episode.auto_advance"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Episode.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Episode.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Episode.updated_at"`)}
	}
	if len(_c.mutation.ChannelIDs()) == 0 {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required edge "Episode.channel"`)}
	}
	return nil
}

func (_c *EpisodeCreate) sqlSave(ctx context.Context) (*Episode, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Episode.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EpisodeCreate) createSpec() (*Episode, *sqlgraph.CreateSpec) {
	var (
		_node = &Episode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(episode.Table, sqlgraph.NewFieldSpec(episode.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(episode.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Idea(); ok {
		_spec.SetField(episode.FieldIdea, field.TypeJSON, value)
		_node.Idea = value
	}
	if value, ok := _c.mutation.IdeaSource(); ok {
		_spec.SetField(episode.FieldIdeaSource, field.TypeEnum, value)
		_node.IdeaSource = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(episode.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(episode.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(episode.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.Script(); ok {
		_spec.SetField(episode.FieldScript, field.TypeString, value)
		_node.Script = &value
	}
	if value, ok := _c.mutation.ScriptMetadata(); ok {
		_spec.SetField(episode.FieldScriptMetadata, field.TypeJSON, value)
		_node.ScriptMetadata = value
	}
	if value, ok := _c.mutation.EpisodeMeta(); ok {
		_spec.SetField(episode.FieldEpisodeMeta, field.TypeJSON, value)
		_node.EpisodeMeta = value
	}
	if value, ok := _c.mutation.PipelineState(); ok {
		_spec.SetField(episode.FieldPipelineState, field.TypeJSON, value)
		_node.PipelineState = value
	}
	if value, ok := _c.mutation.AutoAdvance(); ok {
		_spec.SetField(episode.FieldAutoAdvance, field.TypeBool, value)
		_node.AutoAdvance = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(episode.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(episode.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.PublishedURL(); ok {
		_spec.SetField(episode.FieldPublishedURL, field.TypeString, value)
		_node.PublishedURL = &value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(episode.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(episode.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(episode.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(episode.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.ChannelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   episode.ChannelTable,
			Columns: []string{episode.ChannelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChannelID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   episode.JobsTable,
			Columns: []string{episode.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   episode.AssetsTable,
			Columns: []string{episode.AssetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(asset.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Episode.Create().
//		SetChannelID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EpisodeUpsert) {
//			SetChannelID(v+v).
//		}).
//		Exec(ctx)
func (_c *EpisodeCreate) OnConflict(opts ...sql.ConflictOption) *EpisodeUpsertOne {
	_c.conflict = opts
	return &EpisodeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Episode.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EpisodeCreate) OnConflictColumns(columns ...string) *EpisodeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EpisodeUpsertOne{
		create: _c,
	}
}

type (
	// EpisodeUpsertOne is the builder for "upsert"-ing
	//  one Episode node.
	EpisodeUpsertOne struct {
		create *EpisodeCreate
	}

	// EpisodeUpsert is the "OnConflict" setter.
	EpisodeUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *EpisodeUpsert) SetTitle(v string) *EpisodeUpsert {
	u.Set(episode.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdateTitle() *EpisodeUpsert {
	u.SetExcluded(episode.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *EpisodeUpsert) ClearTitle() *EpisodeUpsert {
	u.SetNull(episode.FieldTitle)
	return u
}

// SetIdea sets the "idea" field.
func (u *EpisodeUpsert) SetIdea(v *models.IdeaRecord) *EpisodeUpsert {
	u.Set(episode.FieldIdea, v)
	return u
}

// UpdateIdea sets the "idea" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdateIdea() *EpisodeUpsert {
	u.SetExcluded(episode.FieldIdea)
	return u
}

// SetIdeaSource sets the "idea_source" field.
func (u *EpisodeUpsert) SetIdeaSource(v episode.IdeaSource) *EpisodeUpsert {
	u.Set(episode.FieldIdeaSource, v)
	return u
}

// UpdateIdeaSource sets the "idea_source" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdateIdeaSource() *EpisodeUpsert {
	u.SetExcluded(episode.FieldIdeaSource)
	return u
}

// SetPriority sets the "priority" field.
func (u *EpisodeUpsert) SetPriority(v int) *EpisodeUpsert {
	u.Set(episode.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdatePriority() *EpisodeUpsert {
	u.SetExcluded(episode.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *EpisodeUpsert) AddPriority(v int) *EpisodeUpsert {
	u.Add(episode.FieldPriority, v)
	return u
}

// SetStatus sets the "status" field.
func (u *EpisodeUpsert) SetStatus(v episode.Status) *EpisodeUpsert {
	u.Set(episode.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdateStatus() *EpisodeUpsert {
	u.SetExcluded(episode.FieldStatus)
	return u
}

// SetPlan sets the "plan" field.
func (u *EpisodeUpsert) SetPlan(v *models.PlanRecord) *EpisodeUpsert {
	u.Set(episode.FieldPlan, v)
	return u
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdatePlan() *EpisodeUpsert {
	u.SetExcluded(episode.FieldPlan)
	return u
}

// ClearPlan clears the value of the "plan" field.
func (u *EpisodeUpsert) ClearPlan() *EpisodeUpsert {
	u.SetNull(episode.FieldPlan)
	return u
}

// SetScript sets the "script" field.
func (u *EpisodeUpsert) SetScript(v string) *EpisodeUpsert {
	u.Set(episode.FieldScript, v)
	return u
}

// UpdateScript sets the "script" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdateScript() *EpisodeUpsert {
	u.SetExcluded(episode.FieldScript)
	return u
}

// ClearScript clears the value of the "script" field.
func (u *EpisodeUpsert) ClearScript() *EpisodeUpsert {
	u.SetNull(episode.FieldScript)
	return u
}

// SetScriptMetadata sets the "script_metadata" field.
func (u *EpisodeUpsert) SetScriptMetadata(v *models.ScriptMetadata) *EpisodeUpsert {
	u.Set(episode.FieldScriptMetadata, v)
	return u
}

// UpdateScriptMetadata sets the "script_metadata" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdateScriptMetadata() *EpisodeUpsert {
	u.SetExcluded(episode.FieldScriptMetadata)
	return u
}

// ClearScriptMetadata clears the value of the "script_metadata" field.
func (u *EpisodeUpsert) ClearScriptMetadata() *EpisodeUpsert {
	u.SetNull(episode.FieldScriptMetadata)
	return u
}

// SetEpisodeMeta sets the "episode_meta" field.
func (u *EpisodeUpsert) SetEpisodeMeta(v *models.EpisodeMeta) *EpisodeUpsert {
	u.Set(episode.FieldEpisodeMeta, v)
	return u
}

// UpdateEpisodeMeta sets the "episode_meta" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdateEpisodeMeta() *EpisodeUpsert {
	u.SetExcluded(episode.FieldEpisodeMeta)
	return u
}

// ClearEpisodeMeta clears the value of the "episode_meta" field.
func (u *EpisodeUpsert) ClearEpisodeMeta() *EpisodeUpsert {
	u.SetNull(episode.FieldEpisodeMeta)
	return u
}

// SetPipelineState sets the "pipeline_state" field.
func (u *EpisodeUpsert) SetPipelineState(v models.PipelineState) *EpisodeUpsert {
	u.Set(episode.FieldPipelineState, v)
	return u
}

// UpdatePipelineState sets the "pipeline_state" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdatePipelineState() *EpisodeUpsert {
	u.SetExcluded(episode.FieldPipelineState)
	return u
}

// ClearPipelineState clears the value of the "pipeline_state" field.
func (u *EpisodeUpsert) ClearPipelineState() *EpisodeUpsert {
	u.SetNull(episode.FieldPipelineState)
	return u
}

// SetAutoAdvance sets the "auto_advance" field.
func (u *EpisodeUpsert) SetAutoAdvance(v bool) *EpisodeUpsert {
	u.Set(episode.FieldAutoAdvance, v)
	return u
}

// UpdateAutoAdvance sets the "auto_advance" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdateAutoAdvance() *EpisodeUpsert {
	u.SetExcluded(episode.FieldAutoAdvance)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *EpisodeUpsert) SetRetryCount(v int) *EpisodeUpsert {
	u.Set(episode.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdateRetryCount() *EpisodeUpsert {
	u.SetExcluded(episode.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *EpisodeUpsert) AddRetryCount(v int) *EpisodeUpsert {
	u.Add(episode.FieldRetryCount, v)
	return u
}

// SetLastError sets the "last_error" field.
func (u *EpisodeUpsert) SetLastError(v string) *EpisodeUpsert {
	u.Set(episode.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdateLastError() *EpisodeUpsert {
	u.SetExcluded(episode.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *EpisodeUpsert) ClearLastError() *EpisodeUpsert {
	u.SetNull(episode.FieldLastError)
	return u
}

// SetPublishedURL sets the "published_url" field.
func (u *EpisodeUpsert) SetPublishedURL(v string) *EpisodeUpsert {
	u.Set(episode.FieldPublishedURL, v)
	return u
}

// UpdatePublishedURL sets the "published_url" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdatePublishedURL() *EpisodeUpsert {
	u.SetExcluded(episode.FieldPublishedURL)
	return u
}

// ClearPublishedURL clears the value of the "published_url" field.
func (u *EpisodeUpsert) ClearPublishedURL() *EpisodeUpsert {
	u.SetNull(episode.FieldPublishedURL)
	return u
}

// SetPublishedAt sets the "published_at" field.
func (u *EpisodeUpsert) SetPublishedAt(v time.Time) *EpisodeUpsert {
	u.Set(episode.FieldPublishedAt, v)
	return u
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdatePublishedAt() *EpisodeUpsert {
	u.SetExcluded(episode.FieldPublishedAt)
	return u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *EpisodeUpsert) ClearPublishedAt() *EpisodeUpsert {
	u.SetNull(episode.FieldPublishedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EpisodeUpsert) SetUpdatedAt(v time.Time) *EpisodeUpsert {
	u.Set(episode.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdateUpdatedAt() *EpisodeUpsert {
	u.SetExcluded(episode.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *EpisodeUpsert) SetDeletedAt(v time.Time) *EpisodeUpsert {
	u.Set(episode.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *EpisodeUpsert) UpdateDeletedAt() *EpisodeUpsert {
	u.SetExcluded(episode.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *EpisodeUpsert) ClearDeletedAt() *EpisodeUpsert {
	u.SetNull(episode.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Episode.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(episode.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EpisodeUpsertOne) UpdateNewValues() *EpisodeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(episode.FieldID)
		}
		if _, exists := u.create.mutation.ChannelID(); exists {
			s.SetIgnore(episode.FieldChannelID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(episode.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Episode.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EpisodeUpsertOne) Ignore() *EpisodeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EpisodeUpsertOne) DoNothing() *EpisodeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EpisodeCreate.OnConflict
// documentation for more info.
func (u *EpisodeUpsertOne) Update(set func(*EpisodeUpsert)) *EpisodeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EpisodeUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *EpisodeUpsertOne) SetTitle(v string) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdateTitle() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *EpisodeUpsertOne) ClearTitle() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearTitle()
	})
}

// SetIdea sets the "idea" field.
func (u *EpisodeUpsertOne) SetIdea(v *models.IdeaRecord) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetIdea(v)
	})
}

// UpdateIdea sets the "idea" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdateIdea() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateIdea()
	})
}

// SetIdeaSource sets the "idea_source" field.
func (u *EpisodeUpsertOne) SetIdeaSource(v episode.IdeaSource) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetIdeaSource(v)
	})
}

// UpdateIdeaSource sets the "idea_source" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdateIdeaSource() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateIdeaSource()
	})
}

// SetPriority sets the "priority" field.
func (u *EpisodeUpsertOne) SetPriority(v int) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *EpisodeUpsertOne) AddPriority(v int) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdatePriority() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdatePriority()
	})
}

// SetStatus sets the "status" field.
func (u *EpisodeUpsertOne) SetStatus(v episode.Status) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdateStatus() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateStatus()
	})
}

// SetPlan sets the "plan" field.
func (u *EpisodeUpsertOne) SetPlan(v *models.PlanRecord) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdatePlan() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdatePlan()
	})
}

// ClearPlan clears the value of the "plan" field.
func (u *EpisodeUpsertOne) ClearPlan() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearPlan()
	})
}

// SetScript sets the "script" field.
func (u *EpisodeUpsertOne) SetScript(v string) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetScript(v)
	})
}

// UpdateScript sets the "script" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdateScript() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateScript()
	})
}

// ClearScript clears the value of the "script" field.
func (u *EpisodeUpsertOne) ClearScript() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearScript()
	})
}

// SetScriptMetadata sets the "script_metadata" field.
func (u *EpisodeUpsertOne) SetScriptMetadata(v *models.ScriptMetadata) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetScriptMetadata(v)
	})
}

// UpdateScriptMetadata sets the "script_metadata" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdateScriptMetadata() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateScriptMetadata()
	})
}

// ClearScriptMetadata clears the value of the "script_metadata" field.
func (u *EpisodeUpsertOne) ClearScriptMetadata() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearScriptMetadata()
	})
}

// SetEpisodeMeta sets the "episode_meta" field.
func (u *EpisodeUpsertOne) SetEpisodeMeta(v *models.EpisodeMeta) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetEpisodeMeta(v)
	})
}

// UpdateEpisodeMeta sets the "episode_meta" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdateEpisodeMeta() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateEpisodeMeta()
	})
}

// ClearEpisodeMeta clears the value of the "episode_meta" field.
func (u *EpisodeUpsertOne) ClearEpisodeMeta() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearEpisodeMeta()
	})
}

// SetPipelineState sets the "pipeline_state" field.
func (u *EpisodeUpsertOne) SetPipelineState(v models.PipelineState) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetPipelineState(v)
	})
}

// UpdatePipelineState sets the "pipeline_state" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdatePipelineState() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdatePipelineState()
	})
}

// ClearPipelineState clears the value of the "pipeline_state" field.
func (u *EpisodeUpsertOne) ClearPipelineState() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearPipelineState()
	})
}

// SetAutoAdvance sets the "auto_advance" field.
func (u *EpisodeUpsertOne) SetAutoAdvance(v bool) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetAutoAdvance(v)
	})
}

// UpdateAutoAdvance sets the "auto_advance" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdateAutoAdvance() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateAutoAdvance()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *EpisodeUpsertOne) SetRetryCount(v int) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *EpisodeUpsertOne) AddRetryCount(v int) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdateRetryCount() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateRetryCount()
	})
}

// SetLastError sets the "last_error" field.
func (u *EpisodeUpsertOne) SetLastError(v string) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdateLastError() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *EpisodeUpsertOne) ClearLastError() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearLastError()
	})
}

// SetPublishedURL sets the "published_url" field.
func (u *EpisodeUpsertOne) SetPublishedURL(v string) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetPublishedURL(v)
	})
}

// UpdatePublishedURL sets the "published_url" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdatePublishedURL() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdatePublishedURL()
	})
}

// ClearPublishedURL clears the value of the "published_url" field.
func (u *EpisodeUpsertOne) ClearPublishedURL() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearPublishedURL()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *EpisodeUpsertOne) SetPublishedAt(v time.Time) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdatePublishedAt() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *EpisodeUpsertOne) ClearPublishedAt() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearPublishedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EpisodeUpsertOne) SetUpdatedAt(v time.Time) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdateUpdatedAt() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *EpisodeUpsertOne) SetDeletedAt(v time.Time) *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *EpisodeUpsertOne) UpdateDeletedAt() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *EpisodeUpsertOne) ClearDeletedAt() *EpisodeUpsertOne {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *EpisodeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EpisodeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EpisodeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EpisodeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EpisodeUpsertOne.ID is not supported by MySQL driver. Use EpisodeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EpisodeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EpisodeCreateBulk is the builder for creating many Episode entities in bulk.
type EpisodeCreateBulk struct {
	config
	err      error
	builders []*EpisodeCreate
	conflict []sql.ConflictOption
}

// Save creates the Episode entities in the database.
func (_c *EpisodeCreateBulk) Save(ctx context.Context) ([]*Episode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Episode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EpisodeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EpisodeCreateBulk) SaveX(ctx context.Context) []*Episode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EpisodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EpisodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Episode.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EpisodeUpsert) {
//			SetChannelID(v+v).
//		}).
//		Exec(ctx)
func (_c *EpisodeCreateBulk) OnConflict(opts ...sql.ConflictOption) *EpisodeUpsertBulk {
	_c.conflict = opts
	return &EpisodeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Episode.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EpisodeCreateBulk) OnConflictColumns(columns ...string) *EpisodeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EpisodeUpsertBulk{
		create: _c,
	}
}

// EpisodeUpsertBulk is the builder for "upsert"-ing
// a bulk of Episode nodes.
type EpisodeUpsertBulk struct {
	create *EpisodeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Episode.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(episode.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EpisodeUpsertBulk) UpdateNewValues() *EpisodeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(episode.FieldID)
			}
			if _, exists := b.mutation.ChannelID(); exists {
				s.SetIgnore(episode.FieldChannelID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(episode.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Episode.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EpisodeUpsertBulk) Ignore() *EpisodeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EpisodeUpsertBulk) DoNothing() *EpisodeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EpisodeCreateBulk.OnConflict
// documentation for more info.
func (u *EpisodeUpsertBulk) Update(set func(*EpisodeUpsert)) *EpisodeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EpisodeUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *EpisodeUpsertBulk) SetTitle(v string) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdateTitle() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *EpisodeUpsertBulk) ClearTitle() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearTitle()
	})
}

// SetIdea sets the "idea" field.
func (u *EpisodeUpsertBulk) SetIdea(v *models.IdeaRecord) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetIdea(v)
	})
}

// UpdateIdea sets the "idea" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdateIdea() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateIdea()
	})
}

// SetIdeaSource sets the "idea_source" field.
func (u *EpisodeUpsertBulk) SetIdeaSource(v episode.IdeaSource) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetIdeaSource(v)
	})
}

// UpdateIdeaSource sets the "idea_source" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdateIdeaSource() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateIdeaSource()
	})
}

// SetPriority sets the "priority" field.
func (u *EpisodeUpsertBulk) SetPriority(v int) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *EpisodeUpsertBulk) AddPriority(v int) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdatePriority() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdatePriority()
	})
}

// SetStatus sets the "status" field.
func (u *EpisodeUpsertBulk) SetStatus(v episode.Status) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdateStatus() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateStatus()
	})
}

// SetPlan sets the "plan" field.
func (u *EpisodeUpsertBulk) SetPlan(v *models.PlanRecord) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdatePlan() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdatePlan()
	})
}

// ClearPlan clears the value of the "plan" field.
func (u *EpisodeUpsertBulk) ClearPlan() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearPlan()
	})
}

// SetScript sets the "script" field.
func (u *EpisodeUpsertBulk) SetScript(v string) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetScript(v)
	})
}

// UpdateScript sets the "script" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdateScript() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateScript()
	})
}

// ClearScript clears the value of the "script" field.
func (u *EpisodeUpsertBulk) ClearScript() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearScript()
	})
}

// SetScriptMetadata sets the "script_metadata" field.
func (u *EpisodeUpsertBulk) SetScriptMetadata(v *models.ScriptMetadata) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetScriptMetadata(v)
	})
}

// UpdateScriptMetadata sets the "script_metadata" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdateScriptMetadata() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateScriptMetadata()
	})
}

// ClearScriptMetadata clears the value of the "script_metadata" field.
func (u *EpisodeUpsertBulk) ClearScriptMetadata() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearScriptMetadata()
	})
}

// SetEpisodeMeta sets the "episode_meta" field.
func (u *EpisodeUpsertBulk) SetEpisodeMeta(v *models.EpisodeMeta) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetEpisodeMeta(v)
	})
}

// UpdateEpisodeMeta sets the "episode_meta" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdateEpisodeMeta() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateEpisodeMeta()
	})
}

// ClearEpisodeMeta clears the value of the "episode_meta" field.
func (u *EpisodeUpsertBulk) ClearEpisodeMeta() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearEpisodeMeta()
	})
}

// SetPipelineState sets the "pipeline_state" field.
func (u *EpisodeUpsertBulk) SetPipelineState(v models.PipelineState) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetPipelineState(v)
	})
}

// UpdatePipelineState sets the "pipeline_state" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdatePipelineState() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdatePipelineState()
	})
}

// ClearPipelineState clears the value of the "pipeline_state" field.
func (u *EpisodeUpsertBulk) ClearPipelineState() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearPipelineState()
	})
}

// SetAutoAdvance sets the "auto_advance" field.
func (u *EpisodeUpsertBulk) SetAutoAdvance(v bool) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetAutoAdvance(v)
	})
}

// UpdateAutoAdvance sets the "auto_advance" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdateAutoAdvance() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateAutoAdvance()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *EpisodeUpsertBulk) SetRetryCount(v int) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *EpisodeUpsertBulk) AddRetryCount(v int) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdateRetryCount() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateRetryCount()
	})
}

// SetLastError sets the "last_error" field.
func (u *EpisodeUpsertBulk) SetLastError(v string) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdateLastError() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *EpisodeUpsertBulk) ClearLastError() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearLastError()
	})
}

// SetPublishedURL sets the "published_url" field.
func (u *EpisodeUpsertBulk) SetPublishedURL(v string) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetPublishedURL(v)
	})
}

// UpdatePublishedURL sets the "published_url" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdatePublishedURL() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdatePublishedURL()
	})
}

// ClearPublishedURL clears the value of the "published_url" field.
func (u *EpisodeUpsertBulk) ClearPublishedURL() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearPublishedURL()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *EpisodeUpsertBulk) SetPublishedAt(v time.Time) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdatePublishedAt() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *EpisodeUpsertBulk) ClearPublishedAt() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearPublishedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EpisodeUpsertBulk) SetUpdatedAt(v time.Time) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdateUpdatedAt() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *EpisodeUpsertBulk) SetDeletedAt(v time.Time) *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *EpisodeUpsertBulk) UpdateDeletedAt() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *EpisodeUpsertBulk) ClearDeletedAt() *EpisodeUpsertBulk {
	return u.Update(func(s *EpisodeUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *EpisodeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EpisodeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EpisodeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EpisodeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
