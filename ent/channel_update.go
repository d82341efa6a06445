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
	"github.com/showforge/showforge/ent/channel"
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/ent/predicate"
	"github.com/showforge/showforge/pkg/models"
)

// ChannelUpdate is the builder for updating Channel entities.
type ChannelUpdate struct {
	config
	hooks    []Hook
	mutation *ChannelMutation
}

// Where appends a list predicates to the ChannelUpdate builder.
func (_u *ChannelUpdate) Where(ps ...predicate.Channel) *ChannelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ChannelUpdate) SetSlug(v string) *ChannelUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableSlug(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ChannelUpdate) SetName(v string) *ChannelUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableName(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPlatformID sets the "platform_id" field.
func (_u *ChannelUpdate) SetPlatformID(v string) *ChannelUpdate {
	_u.mutation.SetPlatformID(v)
	return _u
}

// SetNillablePlatformID sets the "platform_id" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillablePlatformID(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetPlatformID(*v)
	}
	return _u
}

// ClearPlatformID clears the value of the "platform_id" field.
func (_u *ChannelUpdate) ClearPlatformID() *ChannelUpdate {
	_u.mutation.ClearPlatformID()
	return _u
}

// SetPersona sets the "persona" field.
func (_u *ChannelUpdate) SetPersona(v map[string]interface{}) *ChannelUpdate {
	_u.mutation.SetPersona(v)
	return _u
}

// ClearPersona clears the value of the "persona" field.
func (_u *ChannelUpdate) ClearPersona() *ChannelUpdate {
	_u.mutation.ClearPersona()
	return _u
}

// SetStyleGuide sets the "style_guide" field.
func (_u *ChannelUpdate) SetStyleGuide(v map[string]interface{}) *ChannelUpdate {
	_u.mutation.SetStyleGuide(v)
	return _u
}

// ClearStyleGuide clears the value of the "style_guide" field.
func (_u *ChannelUpdate) ClearStyleGuide() *ChannelUpdate {
	_u.mutation.ClearStyleGuide()
	return _u
}

// SetVoiceProfile sets the "voice_profile" field.
func (_u *ChannelUpdate) SetVoiceProfile(v *models.VoiceProfile) *ChannelUpdate {
	_u.mutation.SetVoiceProfile(v)
	return _u
}

// ClearVoiceProfile clears the value of the "voice_profile" field.
func (_u *ChannelUpdate) ClearVoiceProfile() *ChannelUpdate {
	_u.mutation.ClearVoiceProfile()
	return _u
}

// SetAvatarProfile sets the "avatar_profile" field.
func (_u *ChannelUpdate) SetAvatarProfile(v *models.AvatarProfile) *ChannelUpdate {
	_u.mutation.SetAvatarProfile(v)
	return _u
}

// ClearAvatarProfile clears the value of the "avatar_profile" field.
func (_u *ChannelUpdate) ClearAvatarProfile() *ChannelUpdate {
	_u.mutation.ClearAvatarProfile()
	return _u
}

// SetAutoAdvance sets the "auto_advance" field.
func (_u *ChannelUpdate) SetAutoAdvance(v bool) *ChannelUpdate {
	_u.mutation.SetAutoAdvance(v)
	return _u
}

// SetNillableAutoAdvance sets the "auto_advance" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableAutoAdvance(v *bool) *ChannelUpdate {
	if v != nil {
		_u.SetAutoAdvance(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChannelUpdate) SetUpdatedAt(v time.Time) *ChannelUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableUpdatedAt(v *time.Time) *ChannelUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ChannelUpdate) SetDeletedAt(v time.Time) *ChannelUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableDeletedAt(v *time.Time) *ChannelUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ChannelUpdate) ClearDeletedAt() *ChannelUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddEpisodeIDs adds the "episodes" edge to the Episode entity by IDs.
func (_u *ChannelUpdate) AddEpisodeIDs(ids ...string) *ChannelUpdate {
	_u.mutation.AddEpisodeIDs(ids...)
	return _u
}

// AddEpisodes adds the "episodes" edges to the Episode entity.
func (_u *ChannelUpdate) AddEpisodes(v ...*Episode) *ChannelUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEpisodeIDs(ids...)
}

// Mutation returns the ChannelMutation object of the builder.
func (_u *ChannelUpdate) Mutation() *ChannelMutation {
	return _u.mutation
}

// ClearEpisodes clears all "episodes" edges to the Episode entity.
func (_u *ChannelUpdate) ClearEpisodes() *ChannelUpdate {
	_u.mutation.ClearEpisodes()
	return _u
}

// RemoveEpisodeIDs removes the "episodes" edge to Episode entities by IDs.
func (_u *ChannelUpdate) RemoveEpisodeIDs(ids ...string) *ChannelUpdate {
	_u.mutation.RemoveEpisodeIDs(ids...)
	return _u
}

// RemoveEpisodes removes "episodes" edges to Episode entities.
func (_u *ChannelUpdate) RemoveEpisodes(v ...*Episode) *ChannelUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEpisodeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChannelUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChannelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChannelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(channel.Table, channel.Columns, sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(channel.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(channel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformID(); ok {
		_spec.SetField(channel.FieldPlatformID, field.TypeString, value)
	}
	if _u.mutation.PlatformIDCleared() {
		_spec.ClearField(channel.FieldPlatformID, field.TypeString)
	}
	if value, ok := _u.mutation.Persona(); ok {
		_spec.SetField(channel.FieldPersona, field.TypeJSON, value)
	}
	if _u.mutation.PersonaCleared() {
		_spec.ClearField(channel.FieldPersona, field.TypeJSON)
	}
	if value, ok := _u.mutation.StyleGuide(); ok {
		_spec.SetField(channel.FieldStyleGuide, field.TypeJSON, value)
	}
	if _u.mutation.StyleGuideCleared() {
		_spec.ClearField(channel.FieldStyleGuide, field.TypeJSON)
	}
	if value, ok := _u.mutation.VoiceProfile(); ok {
		_spec.SetField(channel.FieldVoiceProfile, field.TypeJSON, value)
	}
	if _u.mutation.VoiceProfileCleared() {
		_spec.ClearField(channel.FieldVoiceProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.AvatarProfile(); ok {
		_spec.SetField(channel.FieldAvatarProfile, field.TypeJSON, value)
	}
	if _u.mutation.AvatarProfileCleared() {
		_spec.ClearField(channel.FieldAvatarProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.AutoAdvance(); ok {
		_spec.SetField(channel.FieldAutoAdvance, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(channel.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(channel.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(channel.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.EpisodesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.EpisodesTable,
			Columns: []string{channel.EpisodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(episode.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEpisodesIDs(); len(nodes) > 0 && !_u.mutation.EpisodesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.EpisodesTable,
			Columns: []string{channel.EpisodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(episode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EpisodesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.EpisodesTable,
			Columns: []string{channel.EpisodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(episode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChannelUpdateOne is the builder for updating a single Channel entity.
type ChannelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChannelMutation
}

// SetSlug sets the "slug" field.
func (_u *ChannelUpdateOne) SetSlug(v string) *ChannelUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableSlug(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ChannelUpdateOne) SetName(v string) *ChannelUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableName(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPlatformID sets the "platform_id" field.
func (_u *ChannelUpdateOne) SetPlatformID(v string) *ChannelUpdateOne {
	_u.mutation.SetPlatformID(v)
	return _u
}

// SetNillablePlatformID sets the "platform_id" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillablePlatformID(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetPlatformID(*v)
	}
	return _u
}

// ClearPlatformID clears the value of the "platform_id" field.
func (_u *ChannelUpdateOne) ClearPlatformID() *ChannelUpdateOne {
	_u.mutation.ClearPlatformID()
	return _u
}

// SetPersona sets the "persona" field.
func (_u *ChannelUpdateOne) SetPersona(v map[string]interface{}) *ChannelUpdateOne {
	_u.mutation.SetPersona(v)
	return _u
}

// ClearPersona clears the value of the "persona" field.
func (_u *ChannelUpdateOne) ClearPersona() *ChannelUpdateOne {
	_u.mutation.ClearPersona()
	return _u
}

// SetStyleGuide sets the "style_guide" field.
func (_u *ChannelUpdateOne) SetStyleGuide(v map[string]interface{}) *ChannelUpdateOne {
	_u.mutation.SetStyleGuide(v)
	return _u
}

// ClearStyleGuide clears the value of the "style_guide" field.
func (_u *ChannelUpdateOne) ClearStyleGuide() *ChannelUpdateOne {
	_u.mutation.ClearStyleGuide()
	return _u
}

// SetVoiceProfile sets the "voice_profile" field.
func (_u *ChannelUpdateOne) SetVoiceProfile(v *models.VoiceProfile) *ChannelUpdateOne {
	_u.mutation.SetVoiceProfile(v)
	return _u
}

// ClearVoiceProfile clears the value of the "voice_profile" field.
func (_u *ChannelUpdateOne) ClearVoiceProfile() *ChannelUpdateOne {
	_u.mutation.ClearVoiceProfile()
	return _u
}

// SetAvatarProfile sets the "avatar_profile" field.
func (_u *ChannelUpdateOne) SetAvatarProfile(v *models.AvatarProfile) *ChannelUpdateOne {
	_u.mutation.SetAvatarProfile(v)
	return _u
}

// ClearAvatarProfile clears the value of the "avatar_profile" field.
func (_u *ChannelUpdateOne) ClearAvatarProfile() *ChannelUpdateOne {
	_u.mutation.ClearAvatarProfile()
	return _u
}

// SetAutoAdvance sets the "auto_advance" field.
func (_u *ChannelUpdateOne) SetAutoAdvance(v bool) *ChannelUpdateOne {
	_u.mutation.SetAutoAdvance(v)
	return _u
}

// SetNillableAutoAdvance sets the "auto_advance" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableAutoAdvance(v *bool) *ChannelUpdateOne {
	if v != nil {
		_u.SetAutoAdvance(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChannelUpdateOne) SetUpdatedAt(v time.Time) *ChannelUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableUpdatedAt(v *time.Time) *ChannelUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ChannelUpdateOne) SetDeletedAt(v time.Time) *ChannelUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableDeletedAt(v *time.Time) *ChannelUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ChannelUpdateOne) ClearDeletedAt() *ChannelUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddEpisodeIDs adds the "episodes" edge to the Episode entity by IDs.
func (_u *ChannelUpdateOne) AddEpisodeIDs(ids ...string) *ChannelUpdateOne {
	_u.mutation.AddEpisodeIDs(ids...)
	return _u
}

// AddEpisodes adds the "episodes" edges to the Episode entity.
func (_u *ChannelUpdateOne) AddEpisodes(v ...*Episode) *ChannelUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEpisodeIDs(ids...)
}

// Mutation returns the ChannelMutation object of the builder.
func (_u *ChannelUpdateOne) Mutation() *ChannelMutation {
	return _u.mutation
}

// ClearEpisodes clears all "episodes" edges to the Episode entity.
func (_u *ChannelUpdateOne) ClearEpisodes() *ChannelUpdateOne {
	_u.mutation.ClearEpisodes()
	return _u
}

// RemoveEpisodeIDs removes the "episodes" edge to Episode entities by IDs.
func (_u *ChannelUpdateOne) RemoveEpisodeIDs(ids ...string) *ChannelUpdateOne {
	_u.mutation.RemoveEpisodeIDs(ids...)
	return _u
}

// RemoveEpisodes removes "episodes" edges to Episode entities.
func (_u *ChannelUpdateOne) RemoveEpisodes(v ...*Episode) *ChannelUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEpisodeIDs(ids...)
}

// Where appends a list predicates to the ChannelUpdate builder.
func (_u *ChannelUpdateOne) Where(ps ...predicate.Channel) *ChannelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChannelUpdateOne) Select(field string, fields ...string) *ChannelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Channel entity.
func (_u *ChannelUpdateOne) Save(ctx context.Context) (*Channel, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelUpdateOne) SaveX(ctx context.Context) *Channel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChannelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChannelUpdateOne) sqlSave(ctx context.Context) (_node *Channel, err error) {
	_spec := sqlgraph.NewUpdateSpec(channel.Table, channel.Columns, sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Channel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, channel.FieldID)
		for _, f := range fields {
			if !channel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != channel.FieldID {
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
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(channel.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(channel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformID(); ok {
		_spec.SetField(channel.FieldPlatformID, field.TypeString, value)
	}
	if _u.mutation.PlatformIDCleared() {
		_spec.ClearField(channel.FieldPlatformID, field.TypeString)
	}
	if value, ok := _u.mutation.Persona(); ok {
		_spec.SetField(channel.FieldPersona, field.TypeJSON, value)
	}
	if _u.mutation.PersonaCleared() {
		_spec.ClearField(channel.FieldPersona, field.TypeJSON)
	}
	if value, ok := _u.mutation.StyleGuide(); ok {
		_spec.SetField(channel.FieldStyleGuide, field.TypeJSON, value)
	}
	if _u.mutation.StyleGuideCleared() {
		_spec.ClearField(channel.FieldStyleGuide, field.TypeJSON)
	}
	if value, ok := _u.mutation.VoiceProfile(); ok {
		_spec.SetField(channel.FieldVoiceProfile, field.TypeJSON, value)
	}
	if _u.mutation.VoiceProfileCleared() {
		_spec.ClearField(channel.FieldVoiceProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.AvatarProfile(); ok {
		_spec.SetField(channel.FieldAvatarProfile, field.TypeJSON, value)
	}
	if _u.mutation.AvatarProfileCleared() {
		_spec.ClearField(channel.FieldAvatarProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.AutoAdvance(); ok {
		_spec.SetField(channel.FieldAutoAdvance, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(channel.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(channel.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(channel.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.EpisodesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.EpisodesTable,
			Columns: []string{channel.EpisodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(episode.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEpisodesIDs(); len(nodes) > 0 && !_u.mutation.EpisodesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.EpisodesTable,
			Columns: []string{channel.EpisodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(episode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EpisodesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.EpisodesTable,
			Columns: []string{channel.EpisodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(episode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Channel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
