// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/showforge/showforge/ent/asset"
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/ent/job"
	"github.com/showforge/showforge/ent/predicate"
	"github.com/showforge/showforge/pkg/models"
)

// EpisodeUpdate is the builder for updating Episode entities.
type EpisodeUpdate struct {
	config
	hooks    []Hook
	mutation *EpisodeMutation
}

// Where appends a list predicates to the EpisodeUpdate builder.
func (_u *EpisodeUpdate) Where(ps ...predicate.Episode) *EpisodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *EpisodeUpdate) SetTitle(v string) *EpisodeUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillableTitle(v *string) *EpisodeUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *EpisodeUpdate) ClearTitle() *EpisodeUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetIdea sets the "idea" field.
func (_u *EpisodeUpdate) SetIdea(v *models.IdeaRecord) *EpisodeUpdate {
	_u.mutation.SetIdea(v)
	return _u
}

// SetIdeaSource sets the "idea_source" field.
func (_u *EpisodeUpdate) SetIdeaSource(v episode.IdeaSource) *EpisodeUpdate {
	_u.mutation.SetIdeaSource(v)
	return _u
}

// SetNillableIdeaSource sets the "idea_source" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillableIdeaSource(v *episode.IdeaSource) *EpisodeUpdate {
	if v != nil {
		_u.SetIdeaSource(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *EpisodeUpdate) SetPriority(v int) *EpisodeUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillablePriority(v *int) *EpisodeUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *EpisodeUpdate) AddPriority(v int) *EpisodeUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EpisodeUpdate) SetStatus(v episode.Status) *EpisodeUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillableStatus(v *episode.Status) *EpisodeUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *EpisodeUpdate) SetPlan(v *models.PlanRecord) *EpisodeUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *EpisodeUpdate) ClearPlan() *EpisodeUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetScript sets the "script" field.
func (_u *EpisodeUpdate) SetScript(v string) *EpisodeUpdate {
	_u.mutation.SetScript(v)
	return _u
}

// SetNillableScript sets the "script" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillableScript(v *string) *EpisodeUpdate {
	if v != nil {
		_u.SetScript(*v)
	}
	return _u
}

// ClearScript clears the value of the "script" field.
func (_u *EpisodeUpdate) ClearScript() *EpisodeUpdate {
	_u.mutation.ClearScript()
	return _u
}

// SetScriptMetadata sets the "script_metadata" field.
func (_u *EpisodeUpdate) SetScriptMetadata(v *models.ScriptMetadata) *EpisodeUpdate {
	_u.mutation.SetScriptMetadata(v)
	return _u
}

// ClearScriptMetadata clears the value of the "script_metadata" field.
func (_u *EpisodeUpdate) ClearScriptMetadata() *EpisodeUpdate {
	_u.mutation.ClearScriptMetadata()
	return _u
}

// SetEpisodeMeta sets the "episode_meta" field.
func (_u *EpisodeUpdate) SetEpisodeMeta(v *models.EpisodeMeta) *EpisodeUpdate {
	_u.mutation.SetEpisodeMeta(v)
	return _u
}

// ClearEpisodeMeta clears the value of the "episode_meta" field.
func (_u *EpisodeUpdate) ClearEpisodeMeta() *EpisodeUpdate {
	_u.mutation.ClearEpisodeMeta()
	return _u
}

// SetPipelineState sets the "pipeline_state" field.
func (_u *EpisodeUpdate) SetPipelineState(v models.PipelineState) *EpisodeUpdate {
	_u.mutation.SetPipelineState(v)
	return _u
}

// ClearPipelineState clears the value of the "pipeline_state" field.
func (_u *EpisodeUpdate) ClearPipelineState() *EpisodeUpdate {
	_u.mutation.ClearPipelineState()
	return _u
}

// SetAutoAdvance sets the "auto_advance" field.
func (_u *EpisodeUpdate) SetAutoAdvance(v bool) *EpisodeUpdate {
	_u.mutation.SetAutoAdvance(v)
	return _u
}

// SetNillableAutoAdvance sets the "auto_advance" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillableAutoAdvance(v *bool) *EpisodeUpdate {
	if v != nil {
		_u.SetAutoAdvance(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *EpisodeUpdate) SetRetryCount(v int) *EpisodeUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillableRetryCount(v *int) *EpisodeUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *EpisodeUpdate) AddRetryCount(v int) *EpisodeUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *EpisodeUpdate) SetLastError(v string) *EpisodeUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillableLastError(v *string) *EpisodeUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *EpisodeUpdate) ClearLastError() *EpisodeUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetPublishedURL sets the "published_url" field.
func (_u *EpisodeUpdate) SetPublishedURL(v string) *EpisodeUpdate {
	_u.mutation.SetPublishedURL(v)
	return _u
}

// SetNillablePublishedURL sets the "published_url" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillablePublishedURL(v *string) *EpisodeUpdate {
	if v != nil {
		_u.SetPublishedURL(*v)
	}
	return _u
}

// ClearPublishedURL clears the value of the "published_url" field.
func (_u *EpisodeUpdate) ClearPublishedURL() *EpisodeUpdate {
	_u.mutation.ClearPublishedURL()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *EpisodeUpdate) SetPublishedAt(v time.Time) *EpisodeUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillablePublishedAt(v *time.Time) *EpisodeUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *EpisodeUpdate) ClearPublishedAt() *EpisodeUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EpisodeUpdate) SetUpdatedAt(v time.Time) *EpisodeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillableUpdatedAt(v *time.Time) *EpisodeUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EpisodeUpdate) SetDeletedAt(v time.Time) *EpisodeUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EpisodeUpdate) SetNillableDeletedAt(v *time.Time) *EpisodeUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EpisodeUpdate) ClearDeletedAt() *EpisodeUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *EpisodeUpdate) AddJobIDs(ids ...string) *EpisodeUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *EpisodeUpdate) AddJobs(v ...*Job) *EpisodeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// AddAssetIDs adds the "assets" edge to the Asset entity by IDs.
func (_u *EpisodeUpdate) AddAssetIDs(ids ...string) *EpisodeUpdate {
	_u.mutation.AddAssetIDs(ids...)
	return _u
}

// AddAssets adds the "assets" edges to the Asset entity.
func (_u *EpisodeUpdate) AddAssets(v ...*Asset) *EpisodeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssetIDs(ids...)
}

// Mutation returns the EpisodeMutation object of the builder.
func (_u *EpisodeUpdate) Mutation() *EpisodeMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *EpisodeUpdate) ClearJobs() *EpisodeUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *EpisodeUpdate) RemoveJobIDs(ids ...string) *EpisodeUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *EpisodeUpdate) RemoveJobs(v ...*Job) *EpisodeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearAssets clears all "assets" edges to the Asset entity.
func (_u *EpisodeUpdate) ClearAssets() *EpisodeUpdate {
	_u.mutation.ClearAssets()
	return _u
}

// RemoveAssetIDs removes the "assets" edge to Asset entities by IDs.
func (_u *EpisodeUpdate) RemoveAssetIDs(ids ...string) *EpisodeUpdate {
	_u.mutation.RemoveAssetIDs(ids...)
	return _u
}

// RemoveAssets removes "assets" edges to Asset entities.
func (_u *EpisodeUpdate) RemoveAssets(v ...*Asset) *EpisodeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssetIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EpisodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EpisodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EpisodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EpisodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EpisodeUpdate) check() error {
	if v, ok := _u.mutation.IdeaSource(); ok {
		if err := episode.IdeaSourceValidator(v); err != nil {
			return &ValidationError{Name: "idea_source", err: fmt.Errorf(`ent: validator failed for field "Episode.idea_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := episode.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Episode.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := episode.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Episode.status": %w`, err)}
		}
	}
	if _u.mutation.ChannelCleared() && len(_u.mutation.ChannelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Episode.channel"`)
	}
	return nil
}

func (_u *EpisodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(episode.Table, episode.Columns, sqlgraph.NewFieldSpec(episode.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(episode.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(episode.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Idea(); ok {
		_spec.SetField(episode.FieldIdea, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IdeaSource(); ok {
		_spec.SetField(episode.FieldIdeaSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(episode.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(episode.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(episode.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(episode.FieldPlan, field.TypeJSON, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(episode.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Script(); ok {
		_spec.SetField(episode.FieldScript, field.TypeString, value)
	}
	if _u.mutation.ScriptCleared() {
		_spec.ClearField(episode.FieldScript, field.TypeString)
	}
	if value, ok := _u.mutation.ScriptMetadata(); ok {
		_spec.SetField(episode.FieldScriptMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ScriptMetadataCleared() {
		_spec.ClearField(episode.FieldScriptMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.EpisodeMeta(); ok {
		_spec.SetField(episode.FieldEpisodeMeta, field.TypeJSON, value)
	}
	if _u.mutation.EpisodeMetaCleared() {
		_spec.ClearField(episode.FieldEpisodeMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.PipelineState(); ok {
		_spec.SetField(episode.FieldPipelineState, field.TypeJSON, value)
	}
	if _u.mutation.PipelineStateCleared() {
		_spec.ClearField(episode.FieldPipelineState, field.TypeJSON)
	}
	if value, ok := _u.mutation.AutoAdvance(); ok {
		_spec.SetField(episode.FieldAutoAdvance, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(episode.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(episode.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(episode.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(episode.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedURL(); ok {
		_spec.SetField(episode.FieldPublishedURL, field.TypeString, value)
	}
	if _u.mutation.PublishedURLCleared() {
		_spec.ClearField(episode.FieldPublishedURL, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(episode.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(episode.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(episode.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(episode.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(episode.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssetsIDs(); len(nodes) > 0 && !_u.mutation.AssetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssetsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{episode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EpisodeUpdateOne is the builder for updating a single Episode entity.
type EpisodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EpisodeMutation
}

// SetTitle sets the "title" field.
func (_u *EpisodeUpdateOne) SetTitle(v string) *EpisodeUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillableTitle(v *string) *EpisodeUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *EpisodeUpdateOne) ClearTitle() *EpisodeUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetIdea sets the "idea" field.
func (_u *EpisodeUpdateOne) SetIdea(v *models.IdeaRecord) *EpisodeUpdateOne {
	_u.mutation.SetIdea(v)
	return _u
}

// SetIdeaSource sets the "idea_source" field.
func (_u *EpisodeUpdateOne) SetIdeaSource(v episode.IdeaSource) *EpisodeUpdateOne {
	_u.mutation.SetIdeaSource(v)
	return _u
}

// SetNillableIdeaSource sets the "idea_source" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillableIdeaSource(v *episode.IdeaSource) *EpisodeUpdateOne {
	if v != nil {
		_u.SetIdeaSource(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *EpisodeUpdateOne) SetPriority(v int) *EpisodeUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillablePriority(v *int) *EpisodeUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *EpisodeUpdateOne) AddPriority(v int) *EpisodeUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EpisodeUpdateOne) SetStatus(v episode.Status) *EpisodeUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillableStatus(v *episode.Status) *EpisodeUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *EpisodeUpdateOne) SetPlan(v *models.PlanRecord) *EpisodeUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *EpisodeUpdateOne) ClearPlan() *EpisodeUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetScript sets the "script" field.
func (_u *EpisodeUpdateOne) SetScript(v string) *EpisodeUpdateOne {
	_u.mutation.SetScript(v)
	return _u
}

// SetNillableScript sets the "script" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillableScript(v *string) *EpisodeUpdateOne {
	if v != nil {
		_u.SetScript(*v)
	}
	return _u
}

// ClearScript clears the value of the "script" field.
func (_u *EpisodeUpdateOne) ClearScript() *EpisodeUpdateOne {
	_u.mutation.ClearScript()
	return _u
}

// SetScriptMetadata sets the "script_metadata" field.
func (_u *EpisodeUpdateOne) SetScriptMetadata(v *models.ScriptMetadata) *EpisodeUpdateOne {
	_u.mutation.SetScriptMetadata(v)
	return _u
}

// ClearScriptMetadata clears the value of the "script_metadata" field.
func (_u *EpisodeUpdateOne) ClearScriptMetadata() *EpisodeUpdateOne {
	_u.mutation.ClearScriptMetadata()
	return _u
}

// SetEpisodeMeta sets the "episode_meta" field.
func (_u *EpisodeUpdateOne) SetEpisodeMeta(v *models.EpisodeMeta) *EpisodeUpdateOne {
	_u.mutation.SetEpisodeMeta(v)
	return _u
}

// ClearEpisodeMeta clears the value of the "episode_meta" field.
func (_u *EpisodeUpdateOne) ClearEpisodeMeta() *EpisodeUpdateOne {
	_u.mutation.ClearEpisodeMeta()
	return _u
}

// SetPipelineState sets the "pipeline_state" field.
func (_u *EpisodeUpdateOne) SetPipelineState(v models.PipelineState) *EpisodeUpdateOne {
	_u.mutation.SetPipelineState(v)
	return _u
}

// ClearPipelineState clears the value of the "pipeline_state" field.
func (_u *EpisodeUpdateOne) ClearPipelineState() *EpisodeUpdateOne {
	_u.mutation.ClearPipelineState()
	return _u
}

// SetAutoAdvance sets the "auto_advance" field.
func (_u *EpisodeUpdateOne) SetAutoAdvance(v bool) *EpisodeUpdateOne {
	_u.mutation.SetAutoAdvance(v)
	return _u
}

// SetNillableAutoAdvance sets the "auto_advance" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillableAutoAdvance(v *bool) *EpisodeUpdateOne {
	if v != nil {
		_u.SetAutoAdvance(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *EpisodeUpdateOne) SetRetryCount(v int) *EpisodeUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillableRetryCount(v *int) *EpisodeUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *EpisodeUpdateOne) AddRetryCount(v int) *EpisodeUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *EpisodeUpdateOne) SetLastError(v string) *EpisodeUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillableLastError(v *string) *EpisodeUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *EpisodeUpdateOne) ClearLastError() *EpisodeUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetPublishedURL sets the "published_url" field.
func (_u *EpisodeUpdateOne) SetPublishedURL(v string) *EpisodeUpdateOne {
	_u.mutation.SetPublishedURL(v)
	return _u
}

// SetNillablePublishedURL sets the "published_url" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillablePublishedURL(v *string) *EpisodeUpdateOne {
	if v != nil {
		_u.SetPublishedURL(*v)
	}
	return _u
}

// ClearPublishedURL clears the value of the "published_url" field.
func (_u *EpisodeUpdateOne) ClearPublishedURL() *EpisodeUpdateOne {
	_u.mutation.ClearPublishedURL()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *EpisodeUpdateOne) SetPublishedAt(v time.Time) *EpisodeUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillablePublishedAt(v *time.Time) *EpisodeUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *EpisodeUpdateOne) ClearPublishedAt() *EpisodeUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EpisodeUpdateOne) SetUpdatedAt(v time.Time) *EpisodeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillableUpdatedAt(v *time.Time) *EpisodeUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EpisodeUpdateOne) SetDeletedAt(v time.Time) *EpisodeUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EpisodeUpdateOne) SetNillableDeletedAt(v *time.Time) *EpisodeUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EpisodeUpdateOne) ClearDeletedAt() *EpisodeUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *EpisodeUpdateOne) AddJobIDs(ids ...string) *EpisodeUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *EpisodeUpdateOne) AddJobs(v ...*Job) *EpisodeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// AddAssetIDs adds the "assets" edge to the Asset entity by IDs.
func (_u *EpisodeUpdateOne) AddAssetIDs(ids ...string) *EpisodeUpdateOne {
	_u.mutation.AddAssetIDs(ids...)
	return _u
}

// AddAssets adds the "assets" edges to the Asset entity.
func (_u *EpisodeUpdateOne) AddAssets(v ...*Asset) *EpisodeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssetIDs(ids...)
}

// Mutation returns the EpisodeMutation object of the builder.
func (_u *EpisodeUpdateOne) Mutation() *EpisodeMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *EpisodeUpdateOne) ClearJobs() *EpisodeUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *EpisodeUpdateOne) RemoveJobIDs(ids ...string) *EpisodeUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *EpisodeUpdateOne) RemoveJobs(v ...*Job) *EpisodeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearAssets clears all "assets" edges to the Asset entity.
func (_u *EpisodeUpdateOne) ClearAssets() *EpisodeUpdateOne {
	_u.mutation.ClearAssets()
	return _u
}

// RemoveAssetIDs removes the "assets" edge to Asset entities by IDs.
func (_u *EpisodeUpdateOne) RemoveAssetIDs(ids ...string) *EpisodeUpdateOne {
	_u.mutation.RemoveAssetIDs(ids...)
	return _u
}

// RemoveAssets removes "assets" edges to Asset entities.
func (_u *EpisodeUpdateOne) RemoveAssets(v ...*Asset) *EpisodeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssetIDs(ids...)
}

// Where appends a list predicates to the EpisodeUpdate builder.
func (_u *EpisodeUpdateOne) Where(ps ...predicate.Episode) *EpisodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EpisodeUpdateOne) Select(field string, fields ...string) *EpisodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Episode entity.
func (_u *EpisodeUpdateOne) Save(ctx context.Context) (*Episode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EpisodeUpdateOne) SaveX(ctx context.Context) *Episode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EpisodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EpisodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EpisodeUpdateOne) check() error {
	if v, ok := _u.mutation.IdeaSource(); ok {
		if err := episode.IdeaSourceValidator(v); err != nil {
			return &ValidationError{Name: "idea_source", err: fmt.Errorf(`ent: validator failed for field "Episode.idea_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := episode.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Episode.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := episode.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Episode.status": %w`, err)}
		}
	}
	if _u.mutation.ChannelCleared() && len(_u.mutation.ChannelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Episode.channel"`)
	}
	return nil
}

func (_u *EpisodeUpdateOne) sqlSave(ctx context.Context) (_node *Episode, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(episode.Table, episode.Columns, sqlgraph.NewFieldSpec(episode.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Episode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, episode.FieldID)
		for _, f := range fields {
			if !episode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != episode.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(episode.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(episode.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Idea(); ok {
		_spec.SetField(episode.FieldIdea, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IdeaSource(); ok {
		_spec.SetField(episode.FieldIdeaSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(episode.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(episode.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(episode.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(episode.FieldPlan, field.TypeJSON, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(episode.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Script(); ok {
		_spec.SetField(episode.FieldScript, field.TypeString, value)
	}
	if _u.mutation.ScriptCleared() {
		_spec.ClearField(episode.FieldScript, field.TypeString)
	}
	if value, ok := _u.mutation.ScriptMetadata(); ok {
		_spec.SetField(episode.FieldScriptMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ScriptMetadataCleared() {
		_spec.ClearField(episode.FieldScriptMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.EpisodeMeta(); ok {
		_spec.SetField(episode.FieldEpisodeMeta, field.TypeJSON, value)
	}
	if _u.mutation.EpisodeMetaCleared() {
		_spec.ClearField(episode.FieldEpisodeMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.PipelineState(); ok {
		_spec.SetField(episode.FieldPipelineState, field.TypeJSON, value)
	}
	if _u.mutation.PipelineStateCleared() {
		_spec.ClearField(episode.FieldPipelineState, field.TypeJSON)
	}
	if value, ok := _u.mutation.AutoAdvance(); ok {
		_spec.SetField(episode.FieldAutoAdvance, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(episode.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(episode.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(episode.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(episode.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedURL(); ok {
		_spec.SetField(episode.FieldPublishedURL, field.TypeString, value)
	}
	if _u.mutation.PublishedURLCleared() {
		_spec.ClearField(episode.FieldPublishedURL, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(episode.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(episode.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(episode.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(episode.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(episode.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssetsIDs(); len(nodes) > 0 && !_u.mutation.AssetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssetsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Episode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{episode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
